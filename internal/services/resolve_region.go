package services

import (
	"context"
	"log"
	"regexp"
	"time"

	"shipping-rate-service/internal/adapters/cache"
	"shipping-rate-service/internal/domain"
	"shipping-rate-service/internal/platform/obs"
	"shipping-rate-service/internal/ports"
)

// Six digits, non-zero leading digit. Anything else is rejected before
// any source is consulted.
var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// ValidPincode reports whether a pincode is even worth resolving.
func ValidPincode(pincode string) bool {
	return pincodePattern.MatchString(pincode)
}

// ChainResolver tries an ordered list of region sources and returns
// the first positive match. Sources are not combined or cross-checked;
// priority order is the whole contract.
//
// A failing source is skipped, not fatal: only when every source comes
// up empty does Resolve return (nil, nil).
type ChainResolver struct {
	Sources []ports.RegionSource
}

func NewChainResolver(sources ...ports.RegionSource) *ChainResolver {
	return &ChainResolver{Sources: sources}
}

func (c *ChainResolver) Resolve(ctx context.Context, pincode string) (_ *domain.PostalRegion, err error) {
	defer obs.Time(ctx, "resolver.chain.Resolve")(&err)

	if !ValidPincode(pincode) {
		return nil, nil
	}

	for _, src := range c.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		region, err := src.Resolve(ctx, pincode)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Printf("region source failed, trying next: pincode=%s err=%v", pincode, err)
			continue
		}
		if region != nil && region.State != "" {
			return region, nil
		}
	}

	return nil, nil
}

// CachedRegionResolver layers a TTL memory cache and an optional
// durable store in front of a resolver. Store writes are best-effort:
// a failed write is logged and the fresh result still returned.
type CachedRegionResolver struct {
	Next  ports.RegionSource
	Mem   *cache.Memory
	Store ports.RegionStore
	TTL   time.Duration
}

// NewCachedRegionResolver wires the standard lookup stack. store may
// be nil for purely in-memory deployments.
func NewCachedRegionResolver(next ports.RegionSource, mem *cache.Memory, store ports.RegionStore, ttl time.Duration) *CachedRegionResolver {
	return &CachedRegionResolver{Next: next, Mem: mem, Store: store, TTL: ttl}
}

func regionKey(pincode string) string { return "region:" + pincode }

func (r *CachedRegionResolver) Resolve(ctx context.Context, pincode string) (*domain.PostalRegion, error) {
	if !ValidPincode(pincode) {
		return nil, nil
	}

	if r.Mem != nil {
		if region, ok := cache.GetAs[domain.PostalRegion](r.Mem, regionKey(pincode)); ok {
			return &region, nil
		}
	}

	if r.Store != nil {
		region, err := r.Store.GetRegion(ctx, pincode)
		if err != nil {
			log.Printf("region store read failed: pincode=%s err=%v", pincode, err)
		} else if region != nil {
			if r.Mem != nil {
				r.Mem.Set(regionKey(pincode), *region, r.TTL)
			}
			return region, nil
		}
	}

	region, err := r.Next.Resolve(ctx, pincode)
	if err != nil || region == nil {
		return region, err
	}

	if r.Mem != nil {
		r.Mem.Set(regionKey(pincode), *region, r.TTL)
	}
	if r.Store != nil {
		if err := r.Store.PutRegion(ctx, *region); err != nil {
			log.Printf("region store write failed: pincode=%s err=%v", pincode, err)
		}
	}

	return region, nil
}
