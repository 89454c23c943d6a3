package storage

import (
	"context"
	"errors"

	"food-vendor-api/models"
	"food-vendor-api/services"

	"gorm.io/gorm"
)

// OfferRepo is the gorm-backed offer store; vendor references are resolved
// on every retrieval.
type OfferRepo struct {
	db *gorm.DB
}

func NewOfferRepo(db *gorm.DB) *OfferRepo {
	return &OfferRepo{db: db}
}

func (r *OfferRepo) FindAll(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.WithContext(ctx).
		Preload("Vendors").
		Find(&offers).Error
	if err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepo) FindByID(ctx context.Context, id uint) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.WithContext(ctx).
		Preload("Vendors").
		First(&offer, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepo) Save(ctx context.Context, offer *models.Offer) error {
	return r.db.WithContext(ctx).Save(offer).Error
}

var _ services.OfferRepository = (*OfferRepo)(nil)
