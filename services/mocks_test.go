package services_test

import (
	"context"
	"time"

	"food-vendor-api/models"

	"github.com/stretchr/testify/mock"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	args := m.Called(ctx, id)
	var order *models.Order
	if v := args.Get(0); v != nil {
		order = v.(*models.Order)
	}
	return order, args.Error(1)
}

func (m *mockOrderRepo) FindByVendor(ctx context.Context, vendorID uint) ([]models.Order, error) {
	args := m.Called(ctx, vendorID)
	var orders []models.Order
	if v := args.Get(0); v != nil {
		orders = v.([]models.Order)
	}
	return orders, args.Error(1)
}

func (m *mockOrderRepo) Save(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

type mockOfferRepo struct {
	mock.Mock
}

func (m *mockOfferRepo) FindAll(ctx context.Context) ([]models.Offer, error) {
	args := m.Called(ctx)
	var offers []models.Offer
	if v := args.Get(0); v != nil {
		offers = v.([]models.Offer)
	}
	return offers, args.Error(1)
}

func (m *mockOfferRepo) FindByID(ctx context.Context, id uint) (*models.Offer, error) {
	args := m.Called(ctx, id)
	var offer *models.Offer
	if v := args.Get(0); v != nil {
		offer = v.(*models.Offer)
	}
	return offer, args.Error(1)
}

func (m *mockOfferRepo) Save(ctx context.Context, offer *models.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

type mockVendorDirectory struct {
	mock.Mock
}

func (m *mockVendorDirectory) FindVendor(ctx context.Context, id uint, email string) (*models.Vendor, error) {
	args := m.Called(ctx, id, email)
	var vendor *models.Vendor
	if v := args.Get(0); v != nil {
		vendor = v.(*models.Vendor)
	}
	return vendor, args.Error(1)
}

type mockOfferCache struct {
	mock.Mock
}

func (m *mockOfferCache) GetVendorOffers(ctx context.Context, vendorID uint) ([]models.Offer, bool, error) {
	args := m.Called(ctx, vendorID)
	var offers []models.Offer
	if v := args.Get(0); v != nil {
		offers = v.([]models.Offer)
	}
	return offers, args.Bool(1), args.Error(2)
}

func (m *mockOfferCache) SetVendorOffers(ctx context.Context, vendorID uint, offers []models.Offer, ttl time.Duration) error {
	return m.Called(ctx, vendorID, offers, ttl).Error(0)
}

func (m *mockOfferCache) InvalidateVendorOffers(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
