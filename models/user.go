package models

import "time"

// User roles.
const (
	RoleClient   = "client"
	RoleProvider = "provider"
)

// User represents a platform identity: either a client who books
// services or a provider who publishes them. Rating and TotalReviews
// are denormalized aggregates owned by the rating recompute in
// services/review; nothing else writes them.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"` // "client" or "provider"
	Phone        string    `bson:"phone" json:"phone,omitempty"`
	Address      Address   `bson:"address,omitempty" json:"address,omitzero"`
	ProfilePhoto string    `bson:"profilePhoto,omitempty" json:"profilePhoto,omitempty"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Rating       float64   `bson:"rating" json:"rating"`
	TotalReviews int       `bson:"totalReviews" json:"totalReviews"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsProvider reports whether the user holds the provider role.
func (u *User) IsProvider() bool { return u.Role == RoleProvider }

// IsClient reports whether the user holds the client role.
func (u *User) IsClient() bool { return u.Role == RoleClient }
