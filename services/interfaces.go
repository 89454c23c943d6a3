package services

import (
	"context"
	"time"

	"food-vendor-api/models"
)

// OrderLifecycleAPI is the caller-facing contract for order fulfillment
type OrderLifecycleAPI interface {
	GetOrder(ctx context.Context, orderID uint) (*models.Order, error)
	ListOrders(ctx context.Context, vendorID uint) ([]models.Order, error)
	ApplyStatus(ctx context.Context, cmd StatusUpdateCommand) (*models.Order, error)
}

// OfferResolverAPI is the caller-facing contract for offer targeting
type OfferResolverAPI interface {
	OffersForVendor(ctx context.Context, vendorID uint) ([]models.Offer, error)
	CreateOffer(ctx context.Context, vendorID uint, fields OfferFields) (*models.Offer, error)
	EditOffer(ctx context.Context, offerID, vendorID uint, fields OfferFields) (*models.Offer, error)
}

// OrderRepository persists orders. Retrievals resolve nested Food references
// for line items. A missing record is (nil, nil), not an error.
type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByVendor(ctx context.Context, vendorID uint) ([]models.Order, error)
	Save(ctx context.Context, order *models.Order) error
}

// OfferRepository persists offers with their vendor references resolved
type OfferRepository interface {
	FindAll(ctx context.Context) ([]models.Offer, error)
	FindByID(ctx context.Context, id uint) (*models.Offer, error)
	Save(ctx context.Context, offer *models.Offer) error
}

// VendorDirectory resolves a vendor by id or by email; exactly one selector
// must be supplied (id != 0 xor email != ""). A missing vendor is (nil, nil).
type VendorDirectory interface {
	FindVendor(ctx context.Context, id uint, email string) (*models.Vendor, error)
}

// OfferCache is an optional cache-aside for resolved vendor offers
type OfferCache interface {
	GetVendorOffers(ctx context.Context, vendorID uint) ([]models.Offer, bool, error)
	SetVendorOffers(ctx context.Context, vendorID uint, offers []models.Offer, ttl time.Duration) error
	InvalidateVendorOffers(ctx context.Context) error
}

var _ OrderLifecycleAPI = (*OrderLifecycle)(nil)
var _ OfferResolverAPI = (*OfferResolver)(nil)
