package models

import "time"

// Service categories mirror the trades offered on the platform.
var ServiceCategories = []string{
	"carpenter", "guitarist", "salon", "electrician", "technician",
	"house_keeping", "laundry", "courses", "mua", "mechanic",
	"plumber", "painter", "other",
}

// Price types.
const (
	PriceTypeHourly = "hourly"
	PriceTypeFixed  = "fixed"
	PriceTypeDaily  = "daily"
)

// DayAvailability describes working hours for a single weekday.
type DayAvailability struct {
	Start     string `bson:"start,omitempty" json:"start,omitempty"`
	End       string `bson:"end,omitempty" json:"end,omitempty"`
	Available bool   `bson:"available" json:"available"`
}

// WeeklyAvailability is the provider-declared schedule for a listing.
// It is informational only; booking creation does not check it.
type WeeklyAvailability struct {
	Monday    DayAvailability `bson:"monday,omitzero" json:"monday,omitzero"`
	Tuesday   DayAvailability `bson:"tuesday,omitzero" json:"tuesday,omitzero"`
	Wednesday DayAvailability `bson:"wednesday,omitzero" json:"wednesday,omitzero"`
	Thursday  DayAvailability `bson:"thursday,omitzero" json:"thursday,omitzero"`
	Friday    DayAvailability `bson:"friday,omitzero" json:"friday,omitzero"`
	Saturday  DayAvailability `bson:"saturday,omitzero" json:"saturday,omitzero"`
	Sunday    DayAvailability `bson:"sunday,omitzero" json:"sunday,omitzero"`
}

// WorkSample is a provider-supplied portfolio item on a listing.
type WorkSample struct {
	URL         string `bson:"url" json:"url"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Service is a provider's published offering in the catalog. Rating
// and TotalReviews are denormalized aggregates owned by the rating
// recompute in services/review.
type Service struct {
	ID           string             `bson:"id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Category     string             `bson:"category" json:"category"`
	Description  string             `bson:"description" json:"description"`
	ProviderID   string             `bson:"providerId" json:"providerId"`
	Price        float64            `bson:"price" json:"price"`
	PriceType    string             `bson:"priceType" json:"priceType"`
	Images       []string           `bson:"images,omitempty" json:"images,omitempty"`
	WorkSamples  []WorkSample       `bson:"workSamples,omitempty" json:"workSamples,omitempty"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalReviews int                `bson:"totalReviews" json:"totalReviews"`
	Availability WeeklyAvailability `bson:"availability,omitzero" json:"availability,omitzero"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidCategory reports whether c is one of the known trade categories.
func ValidCategory(c string) bool {
	for _, cat := range ServiceCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// ValidPriceType reports whether pt is a recognized pricing mode.
func ValidPriceType(pt string) bool {
	return pt == PriceTypeHourly || pt == PriceTypeFixed || pt == PriceTypeDaily
}
