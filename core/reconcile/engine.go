package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"item-translator/core/mappings"
)

type entryKey struct {
	domain string
	id     string
}

// index flattens tables into comparable entries.
func index(t *mappings.Tables) map[entryKey]string {
	idx := make(map[entryKey]string)
	for _, d := range mappings.Domains() {
		for _, e := range t.Entries(d) {
			idx[entryKey{string(d), strconv.Itoa(int(e.ID))}] = e.Key
		}
	}
	for _, e := range t.ItemRemap() {
		legacy, _ := t.LegacyItemID(e.ID)
		idx[entryKey{DomainItemRemap, strconv.Itoa(int(e.ID))}] = strconv.Itoa(int(legacy))
	}
	for key, code := range t.BannerPatternCodes() {
		idx[entryKey{DomainBannerPatternCode, key}] = code
	}
	w := t.EnchantmentWindow()
	idx[entryKey{DomainWindow, "anchor"}] = w.Anchor
	idx[entryKey{DomainWindow, "width"}] = strconv.Itoa(int(w.Width))
	return idx
}

// Compare builds the union of entries of both tables and reports presence
// and value differences. Results are sorted by domain, then numerically by id
// where the id is numeric.
func Compare(left, right *mappings.Tables) *Report {
	return compareIndexed(left.Pair(), right.Pair(), index(left), index(right))
}

func compareIndexed(leftPair, rightPair string, li, ri map[entryKey]string) *Report {
	union := make(map[entryKey]struct{}, len(li))
	for k := range li {
		union[k] = struct{}{}
	}
	for k := range ri {
		union[k] = struct{}{}
	}

	results := make([]ReconcileResult, 0, len(union))
	for k := range union {
		results = append(results, buildResult(k, li, ri))
	}
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Domain != b.Domain {
			return a.Domain < b.Domain
		}
		an, aerr := strconv.Atoi(a.ID)
		bn, berr := strconv.Atoi(b.ID)
		if aerr == nil && berr == nil {
			return an < bn
		}
		return a.ID < b.ID
	})

	report := &Report{
		LeftPair:  leftPair,
		RightPair: rightPair,
		Results:   results,
	}
	report.Summary = summarize(results)
	report.Summary.PairMismatch = leftPair != rightPair
	return report
}

func buildResult(k entryKey, li, ri map[entryKey]string) ReconcileResult {
	lv, lok := li[k]
	rv, rok := ri[k]
	result := ReconcileResult{
		Domain:       k.domain,
		ID:           k.id,
		LeftPresent:  lok,
		RightPresent: rok,
		Mismatch:     []string{},
	}
	if lok && rok && lv != rv {
		result.Mismatch = append(result.Mismatch, fmt.Sprintf("value: left=%s right=%s", lv, rv))
	}
	return result
}

func summarize(results []ReconcileResult) Summary {
	s := Summary{TotalEntries: len(results)}
	for _, r := range results {
		if !r.LeftPresent {
			s.MissingLeft++
		}
		if !r.RightPresent {
			s.MissingRight++
		}
		if len(r.Mismatch) > 0 {
			s.Mismatches++
		}
	}
	return s
}

// ReconcileAll loads both sides of spec (cached when CacheTTL is set) and
// compares them.
func ReconcileAll(ctx context.Context, spec *Spec) (*Report, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	report := compareIndexed(cache.Left.Pair(), cache.Right.Pair(), cache.leftIdx, cache.rightIdx)
	report.Left = spec.Left.Name
	report.Right = spec.Right.Name
	return report, nil
}

// ReconcileOne compares a single entry.
func ReconcileOne(ctx context.Context, spec *Spec, domain, id string) (*ReconcileResult, error) {
	cache, err := GetOrBuildCache(ctx, spec)
	if err != nil {
		return nil, err
	}
	result := buildResult(entryKey{domain, id}, cache.leftIdx, cache.rightIdx)
	return &result, nil
}
