package storage_test

import (
	"context"
	"testing"
	"time"

	"food-vendor-api/models"
	"food-vendor-api/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *storage.RedisOfferCache {
	t.Helper()
	srv := miniredis.RunT(t)
	return storage.NewRedisOfferCache(redis.NewClient(&redis.Options{Addr: srv.Addr()}))
}

func TestRedisOfferCache(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	offers := []models.Offer{
		{ID: 10, OfferType: models.OfferGeneric, Title: "Everyone"},
		{ID: 11, OfferType: models.OfferVendor, Title: "Only V1"},
	}

	t.Run("miss_before_set", func(t *testing.T) {
		_, ok, err := cache.GetVendorOffers(ctx, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set_then_get", func(t *testing.T) {
		require.NoError(t, cache.SetVendorOffers(ctx, 1, offers, time.Minute))

		got, ok, err := cache.GetVendorOffers(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, got, 2)
		assert.Equal(t, uint(10), got[0].ID)
		assert.Equal(t, "Only V1", got[1].Title)
	})

	t.Run("keys_are_per_vendor", func(t *testing.T) {
		_, ok, err := cache.GetVendorOffers(ctx, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalidate_drops_all_vendor_lists", func(t *testing.T) {
		require.NoError(t, cache.SetVendorOffers(ctx, 2, offers, time.Minute))
		require.NoError(t, cache.InvalidateVendorOffers(ctx))

		for _, vendorID := range []uint{1, 2} {
			_, ok, err := cache.GetVendorOffers(ctx, vendorID)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})
}
