// Package resolvercache wraps an EntityResolver with a redis read-through
// cache. Registry entities change rarely compared to how often bookings
// reference them, so successful lookups are kept for a short TTL. Failures
// are never cached: a missing entity is re-checked on every booking attempt.
package resolvercache

import (
	"context"
	"encoding/json"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/registry"
	"warehouse/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is the cache lifetime used when none is configured.
const DefaultTTL = 5 * time.Minute

// CachingEntityResolver decorates an EntityResolver with redis caching.
// Cache errors degrade to the underlying resolver; redis being down slows
// resolution but never fails it.
type CachingEntityResolver struct {
	next   ports.EntityResolver
	client *redis.Client
	ttl    time.Duration
}

// NewCachingEntityResolver wraps next with a redis cache. A non-positive ttl
// falls back to DefaultTTL.
func NewCachingEntityResolver(next ports.EntityResolver, client *redis.Client, ttl time.Duration) *CachingEntityResolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachingEntityResolver{next: next, client: client, ttl: ttl}
}

// ResolveItem resolves an item, serving repeated lookups from redis.
func (r *CachingEntityResolver) ResolveItem(ctx context.Context, id kernel.UUID) (registry.Item, error) {
	var item registry.Item
	if r.fromCache(ctx, ports.EntityItem, id, &item) {
		return item, nil
	}

	item, err := r.next.ResolveItem(ctx, id)
	if err != nil {
		return registry.Item{}, err
	}

	r.toCache(ctx, ports.EntityItem, id, item)
	return item, nil
}

// ResolveDriver resolves a driver, serving repeated lookups from redis.
func (r *CachingEntityResolver) ResolveDriver(ctx context.Context, id kernel.UUID) (registry.Driver, error) {
	var driver registry.Driver
	if r.fromCache(ctx, ports.EntityDriver, id, &driver) {
		return driver, nil
	}

	driver, err := r.next.ResolveDriver(ctx, id)
	if err != nil {
		return registry.Driver{}, err
	}

	r.toCache(ctx, ports.EntityDriver, id, driver)
	return driver, nil
}

// ResolveVehicle resolves a vehicle, serving repeated lookups from redis.
func (r *CachingEntityResolver) ResolveVehicle(ctx context.Context, id kernel.UUID) (registry.Vehicle, error) {
	var vehicle registry.Vehicle
	if r.fromCache(ctx, ports.EntityVehicle, id, &vehicle) {
		return vehicle, nil
	}

	vehicle, err := r.next.ResolveVehicle(ctx, id)
	if err != nil {
		return registry.Vehicle{}, err
	}

	r.toCache(ctx, ports.EntityVehicle, id, vehicle)
	return vehicle, nil
}

// ResolveStorage resolves a storage, serving repeated lookups from redis.
func (r *CachingEntityResolver) ResolveStorage(ctx context.Context, id kernel.UUID) (registry.Storage, error) {
	var storage registry.Storage
	if r.fromCache(ctx, ports.EntityStorage, id, &storage) {
		return storage, nil
	}

	storage, err := r.next.ResolveStorage(ctx, id)
	if err != nil {
		return registry.Storage{}, err
	}

	r.toCache(ctx, ports.EntityStorage, id, storage)
	return storage, nil
}

func cacheKey(kind string, id kernel.UUID) string {
	return "registry:" + kind + ":" + id.String()
}

// fromCache reports whether dest was populated from redis. Any cache failure,
// including a corrupt entry, counts as a miss.
func (r *CachingEntityResolver) fromCache(ctx context.Context, kind string, id kernel.UUID, dest any) bool {
	payload, err := r.client.Get(ctx, cacheKey(kind, id)).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(payload, dest) == nil
}

// toCache stores a resolved entity, best effort.
func (r *CachingEntityResolver) toCache(ctx context.Context, kind string, id kernel.UUID, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	r.client.Set(ctx, cacheKey(kind, id), payload, r.ttl)
}
