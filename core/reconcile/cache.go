package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"item-translator/core/mappings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// ReconcileCache holds the loaded tables of both sides and their indexes.
type ReconcileCache struct {
	Left  *mappings.Tables
	Right *mappings.Tables
	Built time.Time
	TTL   time.Duration

	leftIdx, rightIdx map[entryKey]string
}

// IsExpired reports whether the cache is older than its TTL. A zero TTL
// expires immediately.
func (c *ReconcileCache) IsExpired() bool {
	if c.TTL == 0 {
		return true
	}
	return time.Since(c.Built) > c.TTL
}

// Store keeps one ReconcileCache per spec key.
type Store struct {
	mu     sync.RWMutex
	caches map[string]*ReconcileCache
	sf     singleflight.Group
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{caches: make(map[string]*ReconcileCache)}
}

var defaultStore = NewStore()

// BuildCache loads both sides concurrently. The first failure cancels the
// other load. The result is not stored.
func BuildCache(ctx context.Context, spec *Spec) (*ReconcileCache, error) {
	var left, right *mappings.Tables

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := spec.Left.Loader.Load(gctx)
		if err != nil {
			return fmt.Errorf("failed to load %s mappings: %w", spec.Left.Name, err)
		}
		left = t
		return nil
	})
	g.Go(func() error {
		t, err := spec.Right.Loader.Load(gctx)
		if err != nil {
			return fmt.Errorf("failed to load %s mappings: %w", spec.Right.Name, err)
		}
		right = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ReconcileCache{
		Left:     left,
		Right:    right,
		Built:    time.Now(),
		TTL:      spec.CacheTTL,
		leftIdx:  index(left),
		rightIdx: index(right),
	}, nil
}

// Get returns the stored cache for spec, rebuilding it when missing or
// expired. Concurrent rebuilds of one key share a single load.
func (s *Store) Get(ctx context.Context, spec *Spec) (*ReconcileCache, error) {
	key := spec.CacheKey()
	if c := s.lookup(key); c != nil {
		return c, nil
	}

	result, err, _ := s.sf.Do(key, func() (any, error) {
		if c := s.lookup(key); c != nil {
			return c, nil
		}
		c, err := BuildCache(ctx, spec)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.caches[key] = c
		s.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*ReconcileCache), nil
}

func (s *Store) lookup(key string) *ReconcileCache {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.caches[key]; ok && !c.IsExpired() {
		return c
	}
	return nil
}

// Invalidate drops the cache of spec.
func (s *Store) Invalidate(spec *Spec) {
	s.mu.Lock()
	delete(s.caches, spec.CacheKey())
	s.mu.Unlock()
}

// GetOrBuildCache reads through the package store.
func GetOrBuildCache(ctx context.Context, spec *Spec) (*ReconcileCache, error) {
	return defaultStore.Get(ctx, spec)
}

// InvalidateCache drops the package store's cache of spec.
func InvalidateCache(spec *Spec) {
	defaultStore.Invalidate(spec)
}
