package storage_test

import (
	"context"
	"testing"

	"food-vendor-api/models"
	"food-vendor-api/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Vendor{},
		&models.Food{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Offer{},
	))
	return db
}

func seedVendor(t *testing.T, db *gorm.DB, email string) *models.Vendor {
	t.Helper()
	vendor := &models.Vendor{
		Name:         "Tandoor House",
		Email:        email,
		PasswordHash: "x",
		Phone:        "9999999999",
	}
	require.NoError(t, db.Create(vendor).Error)
	return vendor
}

func TestOrderRepo(t *testing.T) {
	db := newTestDB(t)
	repo := storage.NewOrderRepo(db)
	ctx := context.Background()

	vendor := seedVendor(t, db, "orders@example.com")
	food := &models.Food{VendorID: vendor.ID, Name: "Paneer Roll", Price: 120, ReadyTime: 15}
	require.NoError(t, db.Create(food).Error)

	order := &models.Order{
		CustomerID: 42,
		VendorID:   vendor.ID,
		Status:     models.StatusWaiting,
		ReadyTime:  30,
		Items:      []models.OrderItem{{FoodID: food.ID, Quantity: 2}},
	}
	require.NoError(t, db.Create(order).Error)

	t.Run("find_by_id_resolves_line_items", func(t *testing.T) {
		got, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Paneer Roll", got.Items[0].Food.Name)
	})

	t.Run("find_by_id_missing_is_nil_nil", func(t *testing.T) {
		got, err := repo.FindByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("find_by_vendor", func(t *testing.T) {
		got, err := repo.FindByVendor(ctx, vendor.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Paneer Roll", got[0].Items[0].Food.Name)
	})

	t.Run("find_by_vendor_empty", func(t *testing.T) {
		got, err := repo.FindByVendor(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("save_persists_status_change", func(t *testing.T) {
		got, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)

		got.Status = models.StatusAccepted
		got.Remarks = "confirmed"
		got.StatusHistory = append(got.StatusHistory, models.OrderStatusHistory{
			OrderID:    got.ID,
			FromStatus: models.StatusWaiting,
			ToStatus:   models.StatusAccepted,
			ChangedBy:  vendor.ID,
		})
		require.NoError(t, repo.Save(ctx, got))

		reloaded, err := repo.FindByID(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, reloaded.Status)
		assert.Equal(t, "confirmed", reloaded.Remarks)
		assert.Len(t, reloaded.StatusHistory, 1)
	})
}

func TestVendorRepo(t *testing.T) {
	db := newTestDB(t)
	repo := storage.NewVendorRepo(db)
	ctx := context.Background()

	vendor := seedVendor(t, db, "dir@example.com")

	t.Run("by_id", func(t *testing.T) {
		got, err := repo.FindVendor(ctx, vendor.ID, "")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "dir@example.com", got.Email)
	})

	t.Run("by_email", func(t *testing.T) {
		got, err := repo.FindVendor(ctx, 0, "dir@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, vendor.ID, got.ID)
	})

	t.Run("missing_is_nil_nil", func(t *testing.T) {
		got, err := repo.FindVendor(ctx, 9999, "")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rejects_both_selectors", func(t *testing.T) {
		_, err := repo.FindVendor(ctx, vendor.ID, "dir@example.com")
		assert.Error(t, err)
	})

	t.Run("rejects_no_selector", func(t *testing.T) {
		_, err := repo.FindVendor(ctx, 0, "")
		assert.Error(t, err)
	})
}

func TestOfferRepo(t *testing.T) {
	db := newTestDB(t)
	repo := storage.NewOfferRepo(db)
	ctx := context.Background()

	vendor := seedVendor(t, db, "offers@example.com")

	offer := &models.Offer{
		OfferType: models.OfferVendor,
		Title:     "Weekend Special",
		Promocode: "WKND200",
		Bins:      []string{"431", "520"},
		Vendors:   []models.Vendor{*vendor},
	}
	require.NoError(t, repo.Save(ctx, offer))

	t.Run("find_all_resolves_vendor_refs", func(t *testing.T) {
		got, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Len(t, got[0].Vendors, 1)
		assert.Equal(t, vendor.ID, got[0].Vendors[0].ID)
		assert.Equal(t, []string{"431", "520"}, got[0].Bins)
	})

	t.Run("find_by_id", func(t *testing.T) {
		got, err := repo.FindByID(ctx, offer.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Weekend Special", got.Title)
	})

	t.Run("find_by_id_missing_is_nil_nil", func(t *testing.T) {
		got, err := repo.FindByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("save_roundtrips_edits", func(t *testing.T) {
		got, err := repo.FindByID(ctx, offer.ID)
		require.NoError(t, err)

		got.Title = "Weekday Special"
		got.Promocode = "WKDY100"
		require.NoError(t, repo.Save(ctx, got))

		reloaded, err := repo.FindByID(ctx, offer.ID)
		require.NoError(t, err)
		assert.Equal(t, "Weekday Special", reloaded.Title)
		assert.Equal(t, "WKDY100", reloaded.Promocode)
	})
}
