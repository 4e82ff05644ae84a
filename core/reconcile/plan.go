package reconcile

import (
	"context"
	"fmt"

	"item-translator/core/mappings"
)

// Syncer replaces the tables stored by a mapping source.
type Syncer interface {
	Sync(ctx context.Context, t *mappings.Tables) (int, error)
}

// SyncFunc adapts a function to Syncer.
type SyncFunc func(ctx context.Context, t *mappings.Tables) (int, error)

func (f SyncFunc) Sync(ctx context.Context, t *mappings.Tables) (int, error) { return f(ctx, t) }

// ReconcileOptions controls whether a diff is pushed to the right side.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the user has confirmed overwriting the right side.
	Confirmed bool
}

// ReconcilePlan is a report plus whether applying it would write anything.
type ReconcilePlan struct {
	Report *Report `json:"report"`
	// NeedsSync is set when the right side differs from the left.
	NeedsSync bool `json:"needs_sync"`
}

// ReconcileWithPlan compares both sides and plans a sync of the right side.
func ReconcileWithPlan(ctx context.Context, spec *Spec) (*ReconcilePlan, error) {
	report, err := ReconcileAll(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &ReconcilePlan{Report: report, NeedsSync: !report.Summary.InSync()}, nil
}

// ApplyPlan overwrites the right side with the left tables. It requires
// opts.Confirmed and !opts.DryRun and returns the number of rows written.
func ApplyPlan(ctx context.Context, spec *Spec, plan *ReconcilePlan, target Syncer, opts ReconcileOptions) (int, error) {
	if !opts.Confirmed || opts.DryRun || !plan.NeedsSync {
		return 0, nil
	}

	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return 0, err
	}
	n, err := target.Sync(ctx, cache.Left)
	if err != nil {
		return 0, fmt.Errorf("failed to sync %s mappings: %w", spec.Right.Name, err)
	}
	InvalidateCache(spec)
	return n, nil
}
