package models

import "time"

// Review is a client's evaluation of a completed booking. Exactly one
// review may exist per booking; ServiceID and ProviderID always match
// the referenced booking's values at creation time.
type Review struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	Rating        int       `bson:"rating" json:"rating"` // 1..5
	Comment       string    `bson:"comment" json:"comment"`
	WorkQuality   int       `bson:"workQuality,omitempty" json:"workQuality,omitempty"`
	Communication int       `bson:"communication,omitempty" json:"communication,omitempty"`
	Punctuality   int       `bson:"punctuality,omitempty" json:"punctuality,omitempty"`
	Images        []string  `bson:"images,omitempty" json:"images,omitempty"`
	IsAnonymous   bool      `bson:"isAnonymous" json:"isAnonymous"`
	Helpful       int       `bson:"helpful" json:"helpful"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidRating reports whether r is inside the 1..5 rating scale.
func ValidRating(r int) bool { return r >= 1 && r <= 5 }
