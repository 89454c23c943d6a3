package services

import (
	"context"
	"fmt"
	"time"

	"food-vendor-api/models"
)

// OfferFields carries the mutable attributes of an offer. Values are taken
// verbatim: no validity-window ordering or numeric range checks.
type OfferFields struct {
	OfferType     models.OfferType
	Title         string
	Description   string
	Bank          string
	Bins          []string
	PromoType     string
	Promocode     string
	Pincode       string
	MinValue      float64
	OfferAmount   float64
	StartValidity time.Time
	EndValidity   time.Time
	IsActive      bool
}

// OfferResolver computes the set of offers visible to a vendor and manages
// offer creation and editing. The cache is optional; nil disables it.
type OfferResolver struct {
	offers   OfferRepository
	vendors  VendorDirectory
	cache    OfferCache
	cacheTTL time.Duration
}

const defaultOfferCacheTTL = 5 * time.Minute

func NewOfferResolver(offers OfferRepository, vendors VendorDirectory, cache OfferCache) *OfferResolver {
	return &OfferResolver{
		offers:   offers,
		vendors:  vendors,
		cache:    cache,
		cacheTTL: defaultOfferCacheTTL,
	}
}

// OffersForVendor returns every offer whose associated-vendor set contains
// vendorID plus every GENERIC offer. Both conditions are checked for each
// offer and the result is deduplicated by offer id. Order is discovery order
// from the backing store; isActive and validity dates are not consulted.
func (r *OfferResolver) OffersForVendor(ctx context.Context, vendorID uint) ([]models.Offer, error) {
	if r.cache != nil {
		if cached, ok, err := r.cache.GetVendorOffers(ctx, vendorID); err == nil && ok {
			return cached, nil
		}
	}

	all, err := r.offers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load offers: %w", err)
	}

	result := []models.Offer{}
	seen := make(map[uint]bool)
	for _, offer := range all {
		for _, v := range offer.Vendors {
			if v.ID == vendorID && !seen[offer.ID] {
				result = append(result, offer)
				seen[offer.ID] = true
			}
		}
		if offer.OfferType == models.OfferGeneric && !seen[offer.ID] {
			result = append(result, offer)
			seen[offer.ID] = true
		}
	}

	if r.cache != nil {
		_ = r.cache.SetVendorOffers(ctx, vendorID, result, r.cacheTTL)
	}
	return result, nil
}

// CreateOffer constructs a new offer scoped to exactly the creating vendor
func (r *OfferResolver) CreateOffer(ctx context.Context, vendorID uint, fields OfferFields) (*models.Offer, error) {
	if err := validateOfferFields(fields); err != nil {
		return nil, err
	}

	vendor, err := r.vendors.FindVendor(ctx, vendorID, "")
	if err != nil {
		return nil, fmt.Errorf("resolve vendor %d: %w", vendorID, err)
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}

	offer := &models.Offer{Vendors: []models.Vendor{*vendor}}
	applyOfferFields(offer, fields)

	if err := r.offers.Save(ctx, offer); err != nil {
		return nil, fmt.Errorf("persist offer: %w", err)
	}
	r.invalidate(ctx)
	return offer, nil
}

// EditOffer overwrites every mutable field of an existing offer. The editing
// vendor must resolve and be in the offer's associated-vendor set.
func (r *OfferResolver) EditOffer(ctx context.Context, offerID, vendorID uint, fields OfferFields) (*models.Offer, error) {
	if err := validateOfferFields(fields); err != nil {
		return nil, err
	}

	offer, err := r.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("load offer %d: %w", offerID, err)
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	vendor, err := r.vendors.FindVendor(ctx, vendorID, "")
	if err != nil {
		return nil, fmt.Errorf("resolve vendor %d: %w", vendorID, err)
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	if !offer.HasVendor(vendor.ID) {
		return nil, ErrVendorNotAuthorized
	}

	applyOfferFields(offer, fields)

	if err := r.offers.Save(ctx, offer); err != nil {
		return nil, fmt.Errorf("persist offer %d: %w", offerID, err)
	}
	r.invalidate(ctx)
	return offer, nil
}

func (r *OfferResolver) invalidate(ctx context.Context) {
	if r.cache != nil {
		_ = r.cache.InvalidateVendorOffers(ctx)
	}
}

func validateOfferFields(fields OfferFields) error {
	if fields.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if !fields.OfferType.Valid() {
		return fmt.Errorf("%w: offer type must be GENERIC or VENDOR", ErrValidation)
	}
	return nil
}

func applyOfferFields(offer *models.Offer, fields OfferFields) {
	offer.OfferType = fields.OfferType
	offer.Title = fields.Title
	offer.Description = fields.Description
	offer.Bank = fields.Bank
	offer.Bins = fields.Bins
	offer.PromoType = fields.PromoType
	offer.Promocode = fields.Promocode
	offer.Pincode = fields.Pincode
	offer.MinValue = fields.MinValue
	offer.OfferAmount = fields.OfferAmount
	offer.StartValidity = fields.StartValidity
	offer.EndValidity = fields.EndValidity
	offer.IsActive = fields.IsActive
}
