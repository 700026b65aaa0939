package models

import "time"

// Booking statuses. A booking normally moves pending -> confirmed ->
// completed, with pending/confirmed also able to reach cancelled.
// UpdateStatus only checks enum membership and the actor rule, so the
// stored status is not guaranteed to have followed those edges.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment methods.
var PaymentMethods = []string{"card", "upi", "bank_transfer", "cash"}

// Booking is a scheduled engagement between one client and one
// provider for one service. ProviderID is copied from the referenced
// service at creation and never changes. Bookings are never deleted;
// cancellation is a status.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	ClientID      string    `bson:"clientId" json:"clientId"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	Date          string    `bson:"date" json:"date"`
	StartTime     string    `bson:"startTime" json:"startTime"`
	EndTime       string    `bson:"endTime" json:"endTime"`
	Location      Address   `bson:"location,omitempty" json:"location,omitzero"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Status        string    `bson:"status" json:"status"`
	TotalPrice    float64   `bson:"totalPrice" json:"totalPrice"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod string    `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidBookingStatus reports whether s is a member of the status enum.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a recognized payment method.
func ValidPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}
