package checks

import (
	"item-translator/core/mappings"
)

// MappingsReport describes gaps in the loaded mapping tables.
type MappingsReport struct {
	Pair         string   `json:"pair"`
	EmptyDomains []string `json:"empty_domains"`
	ItemRemaps   int      `json:"item_remaps"`
	// AnchorKnown is false when the window anchor is not a registered
	// enchantment. No id compaction happens in that case.
	AnchorKnown bool   `json:"anchor_known"`
	Status      string `json:"status"` // "ok", "warning"
}

// CheckMappings reports empty domains, a missing item remap and an
// unresolvable enchantment anchor. Each one makes conversions drop values.
func CheckMappings(t *mappings.Tables) MappingsReport {
	report := MappingsReport{
		Pair:         t.Pair(),
		EmptyDomains: []string{},
		ItemRemaps:   t.ItemRemapCount(),
		Status:       "ok",
	}
	for _, d := range mappings.Domains() {
		if t.Size(d) == 0 {
			report.EmptyDomains = append(report.EmptyDomains, string(d))
		}
	}
	_, report.AnchorKnown = t.KeyToID(mappings.DomainEnchantment, t.EnchantmentWindow().Anchor)

	if len(report.EmptyDomains) > 0 || report.ItemRemaps == 0 || !report.AnchorKnown {
		report.Status = "warning"
	}
	return report
}
