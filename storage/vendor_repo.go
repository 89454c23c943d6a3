package storage

import (
	"context"
	"errors"

	"food-vendor-api/models"
	"food-vendor-api/services"

	"gorm.io/gorm"
)

// VendorRepo implements the vendor directory over gorm
type VendorRepo struct {
	db *gorm.DB
}

func NewVendorRepo(db *gorm.DB) *VendorRepo {
	return &VendorRepo{db: db}
}

// FindVendor resolves a vendor by id or by email. Exactly one selector must
// be supplied; a missing vendor is (nil, nil).
func (r *VendorRepo) FindVendor(ctx context.Context, id uint, email string) (*models.Vendor, error) {
	if (id == 0) == (email == "") {
		return nil, errors.New("exactly one of id or email must be supplied")
	}

	var vendor models.Vendor
	query := r.db.WithContext(ctx)
	var err error
	if id != 0 {
		err = query.First(&vendor, id).Error
	} else {
		err = query.Where("email = ?", email).First(&vendor).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

var _ services.VendorDirectory = (*VendorRepo)(nil)
