package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"food-vendor-api/models"
	"food-vendor-api/services"

	"github.com/redis/go-redis/v9"
)

const vendorOffersPrefix = "offers:vendor:"

// RedisOfferCache caches resolved per-vendor offer lists as JSON blobs
type RedisOfferCache struct {
	Client *redis.Client
}

func NewRedisOfferCache(client *redis.Client) *RedisOfferCache {
	return &RedisOfferCache{Client: client}
}

func vendorOffersKey(vendorID uint) string {
	return vendorOffersPrefix + strconv.FormatUint(uint64(vendorID), 10)
}

func (c *RedisOfferCache) GetVendorOffers(ctx context.Context, vendorID uint) ([]models.Offer, bool, error) {
	raw, err := c.Client.Get(ctx, vendorOffersKey(vendorID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var offers []models.Offer
	if err := json.Unmarshal(raw, &offers); err != nil {
		return nil, false, err
	}
	return offers, true, nil
}

func (c *RedisOfferCache) SetVendorOffers(ctx context.Context, vendorID uint, offers []models.Offer, ttl time.Duration) error {
	raw, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, vendorOffersKey(vendorID), raw, ttl).Err()
}

// InvalidateVendorOffers drops every cached vendor offer list. Offers can be
// shared and GENERIC ones reach all vendors, so a single create or edit can
// change any vendor's view.
func (c *RedisOfferCache) InvalidateVendorOffers(ctx context.Context) error {
	iter := c.Client.Scan(ctx, 0, vendorOffersPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

var _ services.OfferCache = (*RedisOfferCache)(nil)
