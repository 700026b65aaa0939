package booking

import "allservices/models"

// Access predicates consumed by the ledgers. The asymmetry is
// intentional: a client may cancel their own booking but may never
// confirm or complete it; those transitions belong to the provider.

// isBookingClient reports whether actor is the booking's client.
func isBookingClient(actorID string, b *models.Booking) bool {
	return actorID == b.ClientID
}

// isBookingProvider reports whether actor is the booking's provider.
func isBookingProvider(actorID string, b *models.Booking) bool {
	return actorID == b.ProviderID
}

// isBookingOwner reports whether actor is either party of the booking.
func isBookingOwner(actorID string, b *models.Booking) bool {
	return isBookingClient(actorID, b) || isBookingProvider(actorID, b)
}
