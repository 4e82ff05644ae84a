package mappings

import (
	"context"
	"errors"
	"fmt"

	"item-translator/core/utils"

	"gorm.io/gorm"
)

// Row domains that are not identifier registries.
const (
	rowItemRemap         = "item_remap"
	rowBannerPatternCode = "banner_pattern_code"
)

// MappingSet is the header row of one protocol pair.
type MappingSet struct {
	ID          uint   `gorm:"primaryKey"`
	Pair        string `gorm:"column:pair;uniqueIndex;size:64"`
	ShiftAnchor string `gorm:"column:shift_anchor;size:128"`
	ShiftWidth  int32  `gorm:"column:shift_width"`
}

func (MappingSet) TableName() string { return "mapping_sets" }

// MappingRow is one entry of a mapping set.
//
// Registry rows carry (NumericID, Key). item_remap rows carry the current
// item id in NumericID and the legacy id in Value. banner_pattern_code rows
// carry the pattern key in Key and the compact code in Value.
type MappingRow struct {
	ID        uint   `gorm:"primaryKey"`
	Pair      string `gorm:"column:pair;index;size:64"`
	Domain    string `gorm:"column:domain;size:32"`
	NumericID int32  `gorm:"column:numeric_id"`
	Key       string `gorm:"column:key;size:255"`
	Value     string `gorm:"column:value;size:255"`
}

func (MappingRow) TableName() string { return "mapping_rows" }

// DatabaseLoader reads a mapping set through GORM.
type DatabaseLoader struct {
	DB   *gorm.DB
	Pair string
}

func (l DatabaseLoader) Load(ctx context.Context) (*Tables, error) {
	if l.DB == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	db := l.DB.WithContext(ctx)

	var set MappingSet
	if err := db.Where("pair = ?", l.Pair).First(&set).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mapping set %q not found", l.Pair)
		}
		return nil, fmt.Errorf("failed to load mapping set: %w", err)
	}

	var rows []MappingRow
	if err := db.Where("pair = ?", l.Pair).Order("domain, numeric_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load mapping rows: %w", err)
	}

	b := NewBuilder(set.Pair)
	if set.ShiftAnchor != "" || set.ShiftWidth != 0 {
		w := Window{Anchor: set.ShiftAnchor, Width: set.ShiftWidth}
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("mapping set %q: %w", set.Pair, err)
		}
		b.Window(w)
	}
	for _, r := range rows {
		switch r.Domain {
		case rowItemRemap:
			legacy, err := utils.ToInt32(r.Value)
			if err != nil {
				return nil, fmt.Errorf("mapping row %d: %w", r.ID, err)
			}
			b.Item(r.NumericID, legacy)
		case rowBannerPatternCode:
			b.BannerPattern(r.Key, r.Value)
		default:
			d, err := ParseDomain(r.Domain)
			if err != nil {
				return nil, fmt.Errorf("mapping row %d: %w", r.ID, err)
			}
			b.Key(d, r.NumericID, r.Key)
		}
	}
	return b.Build(), nil
}

// Rows flattens tables into database rows, the inverse of DatabaseLoader.
func Rows(t *Tables) (MappingSet, []MappingRow) {
	set := MappingSet{Pair: t.pair, ShiftAnchor: t.window.Anchor, ShiftWidth: t.window.Width}
	var rows []MappingRow
	for _, d := range domains {
		for _, e := range t.Entries(d) {
			rows = append(rows, MappingRow{Pair: t.pair, Domain: string(d), NumericID: e.ID, Key: e.Key})
		}
	}
	for cur, legacy := range t.itemRemap {
		rows = append(rows, MappingRow{Pair: t.pair, Domain: rowItemRemap, NumericID: cur, Value: utils.ToString(legacy)})
	}
	for key, code := range t.bannerCompact {
		rows = append(rows, MappingRow{Pair: t.pair, Domain: rowBannerPatternCode, Key: key, Value: code})
	}
	return set, rows
}
