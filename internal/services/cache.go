package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"bloodlink-backend/internal/models"
)

const (
	publicFeedKey  = "feed:public"
	userStatusKey  = "user:status:"
	defaultFeedTTL = 30 * time.Second
	statusTTL      = 60 * time.Second
)

// Cache is a read-through cache for the two hottest lookups: the public
// donation-request feed and per-email account status. All methods are
// nil-receiver safe and degrade to a miss on any Redis error, so callers
// never fail because the cache is down or absent.
type Cache struct {
	rdb *redis.Client
}

func NewCache(addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *Cache) PublicFeed(ctx context.Context) ([]models.DonationRequest, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, publicFeedKey).Bytes()
	if err != nil {
		return nil, false
	}
	var reqs []models.DonationRequest
	if err := json.Unmarshal(raw, &reqs); err != nil {
		return nil, false
	}
	return reqs, true
}

func (c *Cache) SetPublicFeed(ctx context.Context, reqs []models.DonationRequest) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(reqs)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, publicFeedKey, raw, defaultFeedTTL)
}

// InvalidatePublicFeed drops the cached feed after any donation-request
// write so readers never see a stale entry longer than one round trip.
func (c *Cache) InvalidatePublicFeed(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, publicFeedKey)
}

func (c *Cache) UserStatus(ctx context.Context, email string) (string, bool) {
	if c == nil {
		return "", false
	}
	status, err := c.rdb.Get(ctx, userStatusKey+email).Result()
	if err != nil {
		return "", false
	}
	return status, true
}

func (c *Cache) SetUserStatus(ctx context.Context, email, status string) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, userStatusKey+email, status, statusTTL)
}

func (c *Cache) InvalidateUserStatus(ctx context.Context, email string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, userStatusKey+email)
}
