package models

import "time"

// OfferType defines how an offer is scoped
type OfferType string

const (
	// OfferGeneric offers are visible to every vendor
	OfferGeneric OfferType = "GENERIC"
	// OfferVendor offers apply only to their associated-vendor set
	OfferVendor OfferType = "VENDOR"
)

// Valid reports whether t is a recognized offer scoping
func (t OfferType) Valid() bool {
	return t == OfferGeneric || t == OfferVendor
}

// Offer is a promotional offer. An offer is not exclusively owned by one
// vendor: it may be shared across its associated-vendor set and additionally
// be GENERIC.
type Offer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	OfferType     OfferType `json:"offer_type" gorm:"not null"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	Bank          string    `json:"bank"`
	Bins          []string  `json:"bins" gorm:"serializer:json"` // card-bin prefixes
	PromoType     string    `json:"promo_type"`
	Promocode     string    `json:"promocode"`
	Pincode       string    `json:"pincode"`
	MinValue      float64   `json:"min_value"`
	OfferAmount   float64   `json:"offer_amount"`
	StartValidity time.Time `json:"start_validity"`
	EndValidity   time.Time `json:"end_validity"`
	IsActive      bool      `json:"is_active"`
	Vendors       []Vendor  `json:"vendors,omitempty" gorm:"many2many:offer_vendors"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsLive reports whether the offer is active and now falls inside its
// validity window. Resolution does not apply this filter; callers opt in.
func (o *Offer) IsLive(now time.Time) bool {
	return o.IsActive && !now.Before(o.StartValidity) && !now.After(o.EndValidity)
}

// HasVendor reports whether vendorID is in the offer's associated-vendor set
func (o *Offer) HasVendor(vendorID uint) bool {
	for _, v := range o.Vendors {
		if v.ID == vendorID {
			return true
		}
	}
	return false
}
