package models

import (
	"item-translator/core/mappings"
	"item-translator/core/nbt"
)

// TranslationResult is the legacy rendering of one structured item.
type TranslationResult struct {
	ID         int32            `json:"id"`
	Count      int32            `json:"count"`
	LegacyName string           `json:"legacy_name,omitempty"`
	Tag        *nbt.CompoundTag `json:"tag"`
	SNBT       string           `json:"snbt"`
	// Lossy is set when some components only survive in the backup sub-tree.
	Lossy bool   `json:"lossy"`
	Pair  string `json:"pair"`
}

// MappingInfo summarizes the mapping tables currently in use.
type MappingInfo struct {
	Pair              string                  `json:"pair"`
	Domains           map[mappings.Domain]int `json:"domains"`
	ItemRemaps        int                     `json:"item_remaps"`
	EnchantmentWindow mappings.Window         `json:"enchantment_window"`
}

// ComponentList lists the component kinds the converter accepts.
type ComponentList struct {
	Count      int      `json:"count"`
	Components []string `json:"components"`
}
