package reconcile

import (
	"context"
	"errors"
	"testing"

	"item-translator/core/mappings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPlan_ConfirmationGating(t *testing.T) {
	spec := newSpec("gate", &countingLoader{tables: fileTables()}, &countingLoader{tables: dbTables()}, 0)
	plan, err := ReconcileWithPlan(context.Background(), spec)
	require.NoError(t, err)
	assert.True(t, plan.NeedsSync)

	var synced *mappings.Tables
	target := SyncFunc(func(_ context.Context, tb *mappings.Tables) (int, error) {
		synced = tb
		return 5, nil
	})

	tests := []struct {
		name string
		opts ReconcileOptions
		want int
	}{
		{"Unconfirmed", ReconcileOptions{}, 0},
		{"DryRun", ReconcileOptions{Confirmed: true, DryRun: true}, 0},
		{"Confirmed", ReconcileOptions{Confirmed: true}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ApplyPlan(context.Background(), spec, plan, target, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
	require.NotNil(t, synced)
	key, _ := synced.IDToKey(mappings.DomainEnchantment, 1)
	assert.Equal(t, "sharpness", key)
}

func TestApplyPlan_InSyncDoesNothing(t *testing.T) {
	spec := newSpec("insync", &countingLoader{tables: fileTables()}, &countingLoader{tables: fileTables()}, 0)
	plan, err := ReconcileWithPlan(context.Background(), spec)
	require.NoError(t, err)
	assert.False(t, plan.NeedsSync)

	called := false
	n, err := ApplyPlan(context.Background(), spec, plan, SyncFunc(func(context.Context, *mappings.Tables) (int, error) {
		called = true
		return 0, nil
	}), ReconcileOptions{Confirmed: true})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.False(t, called)
}

func TestApplyPlan_SyncError(t *testing.T) {
	spec := newSpec("syncerr", &countingLoader{tables: fileTables()}, &countingLoader{tables: dbTables()}, 0)
	plan, err := ReconcileWithPlan(context.Background(), spec)
	require.NoError(t, err)

	_, err = ApplyPlan(context.Background(), spec, plan, SyncFunc(func(context.Context, *mappings.Tables) (int, error) {
		return 0, errors.New("read-only")
	}), ReconcileOptions{Confirmed: true})
	assert.ErrorContains(t, err, "failed to sync syncerr-right mappings: read-only")
}
