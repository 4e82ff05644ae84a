package mappings

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider serves the current tables and replaces them on refresh.
// Readers holding a snapshot keep it unchanged after a swap.
type Provider struct {
	loader  Loader
	logger  *zap.Logger
	current atomic.Pointer[Tables]
	sf      singleflight.Group

	mu        sync.Mutex
	listeners []func(*Tables)
}

// NewProvider loads the initial tables and returns a ready provider.
func NewProvider(ctx context.Context, loader Loader, logger *zap.Logger) (*Provider, error) {
	p := &Provider{loader: loader, logger: logger}
	if _, err := p.Refresh(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// Tables returns the current snapshot. It never blocks.
func (p *Provider) Tables() *Tables {
	return p.current.Load()
}

// OnRefresh registers fn to run after every successful swap.
func (p *Provider) OnRefresh(fn func(*Tables)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Refresh reloads the tables and swaps them in. Concurrent calls share one load.
func (p *Provider) Refresh(ctx context.Context) (*Tables, error) {
	v, err, _ := p.sf.Do("refresh", func() (any, error) {
		t, err := p.loader.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load mappings: %w", err)
		}
		p.current.Store(t)

		p.mu.Lock()
		listeners := slices.Clone(p.listeners)
		p.mu.Unlock()
		for _, fn := range listeners {
			fn(t)
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Tables), nil
}

// Watch refreshes every interval until ctx is done. Failed refreshes are
// logged and the previous tables stay in place.
func (p *Provider) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t, err := p.Refresh(ctx)
			if err != nil {
				p.logger.Warn("Mapping refresh failed, keeping previous tables", zap.Error(err))
				continue
			}
			p.logger.Debug("Mappings refreshed", zap.String("pair", t.Pair()))
		}
	}
}
