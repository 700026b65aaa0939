package handlers

import (
	userRepo "allservices/database/repository/user"
)

// HandlerBundle groups every HTTP handler plus the user repository
// needed by the auth middleware, so route registration takes a single
// dependency.
type HandlerBundle struct {
	Auth     *AuthHandler
	Services *ServiceHandler
	Bookings *BookingHandler
	Reviews  *ReviewHandler
	Storage  *StorageHandler

	UserRepo userRepo.UserRepository
}
