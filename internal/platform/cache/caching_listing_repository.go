// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"adhub_backend/internal/feature/listing/domain/entity"
	"adhub_backend/internal/feature/listing/usecase"
)

// CachingListingRepository decorates a ListingRepository with Redis
// caching. The catalog is read-heavy with rare, human-paced writes, so
// cache-aside with write-time invalidation is enough.
type CachingListingRepository struct {
	inner     usecase.ListingRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ListingRepository = (*CachingListingRepository)(nil)

// NewCachingListingRepository decorates a ListingRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "ads".
func NewCachingListingRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ListingRepository, namespace string) *CachingListingRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "ads"
	}
	return &CachingListingRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Insert writes through to the store and invalidates the namespace.
func (c *CachingListingRepository) Insert(ctx context.Context, listing *entity.Listing) error {
	if err := c.inner.Insert(ctx, listing); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a failed invalidation only shortens cache accuracy
	// until the TTL expires.
	_ = c.deleteByPattern(ctx, c.namespace+":*")
	return nil
}

// FindAll retrieves the full catalog, checking the cache first.
func (c *CachingListingRepository) FindAll(ctx context.Context) ([]entity.Listing, error) {
	return c.cached(ctx, c.namespace+":all", func() ([]entity.Listing, error) {
		return c.inner.FindAll(ctx)
	})
}

// FindByOwner retrieves the owner-scoped set, checking the cache first.
func (c *CachingListingRepository) FindByOwner(ctx context.Context, ownerID string) ([]entity.Listing, error) {
	key := fmt.Sprintf("%s:owner:%s", c.namespace, safe(ownerID))
	return c.cached(ctx, key, func() ([]entity.Listing, error) {
		return c.inner.FindByOwner(ctx, ownerID)
	})
}

// FindByID always goes to the store: detail views are rare compared to
// catalog renders and should never show an invalidation gap.
func (c *CachingListingRepository) FindByID(ctx context.Context, id uint) (*entity.Listing, error) {
	return c.inner.FindByID(ctx, id)
}

// FindFirst always goes to the store. It backs the connectivity probe;
// answering it from cache would defeat the probe.
func (c *CachingListingRepository) FindFirst(ctx context.Context) ([]entity.Listing, error) {
	return c.inner.FindFirst(ctx)
}

// cached runs the cache-aside cycle for one key.
func (c *CachingListingRepository) cached(ctx context.Context, key string, load func() ([]entity.Listing, error)) ([]entity.Listing, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Listing
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingListingRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
