package storage

import (
	"context"
	"errors"

	"food-vendor-api/models"
	"food-vendor-api/services"

	"gorm.io/gorm"
)

// OrderRepo is the gorm-backed order store. Retrievals resolve line items
// down to their Food records.
type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Food").
		Preload("StatusHistory").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) FindByVendor(ctx context.Context, vendorID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items.Food").
		Where("vendor_id = ?", vendorID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) Save(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

var _ services.OrderRepository = (*OrderRepo)(nil)
