package reconcile

import (
	"time"

	"item-translator/core/mappings"
)

// Entry domains that are not identifier registries.
const (
	DomainItemRemap         = "item_remap"
	DomainBannerPatternCode = "banner_pattern_code"
	DomainWindow            = "enchantment_window"
)

// Side is one mapping source taking part in a comparison.
type Side struct {
	// Name labels the source in results, e.g. "file" or "database".
	Name string
	// Loader produces the side's tables.
	Loader mappings.Loader
}

// Spec defines the configuration for a reconciliation operation.
type Spec struct {
	// Left is the reference source.
	Left Side
	// Right is the source checked against Left.
	Right Side
	// CacheTTL is the time-to-live for cached tables. Zero disables caching.
	CacheTTL time.Duration
}

// CacheKey returns a unique key for caching based on the compared sources.
func (s *Spec) CacheKey() string {
	return s.Left.Name + "|" + s.Right.Name
}

// ReconcileResult is the comparison outcome for one mapping entry.
type ReconcileResult struct {
	// Domain is a registry domain or one of the Domain* entry constants.
	Domain string `json:"domain"`

	// ID is the numeric id for registry and item_remap entries, or the key
	// for banner pattern codes.
	ID string `json:"id"`

	// LeftPresent indicates whether the entry exists in the left source.
	LeftPresent bool `json:"left_present"`

	// RightPresent indicates whether the entry exists in the right source.
	RightPresent bool `json:"right_present"`

	// Mismatch describes differing values, e.g. "key: left=sharpness right=smite".
	Mismatch []string `json:"mismatch"`
}

// Summary provides aggregate counts for a comparison.
type Summary struct {
	TotalEntries int  `json:"total_entries"`
	MissingLeft  int  `json:"missing_left"`
	MissingRight int  `json:"missing_right"`
	Mismatches   int  `json:"mismatches"`
	PairMismatch bool `json:"pair_mismatch"`
}

// InSync reports whether both sides carry identical tables.
func (s Summary) InSync() bool {
	return s.MissingLeft == 0 && s.MissingRight == 0 && s.Mismatches == 0 && !s.PairMismatch
}

// Report is the full comparison of two mapping sources.
type Report struct {
	Left      string            `json:"left"`
	Right     string            `json:"right"`
	LeftPair  string            `json:"left_pair"`
	RightPair string            `json:"right_pair"`
	Results   []ReconcileResult `json:"results"`
	Summary   Summary           `json:"summary"`
}
