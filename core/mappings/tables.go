package mappings

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// Window describes the block of enchantment ids inserted after Anchor that
// the legacy registry does not know about.
type Window struct {
	Anchor string `json:"anchor" yaml:"anchor"`
	Width  int32  `json:"width" yaml:"width"`
}

// DefaultWindow is the shift applied when the table data does not carry one.
var DefaultWindow = Window{Anchor: "piercing", Width: 3}

// ErrInvalidWindow is returned when mapping data carries an incomplete window.
var ErrInvalidWindow = errors.New("invalid enchantment window")

// Validate rejects a window without an anchor or with a non-positive width.
func (w Window) Validate() error {
	if w.Anchor == "" {
		return fmt.Errorf("%w: missing anchor", ErrInvalidWindow)
	}
	if w.Width <= 0 {
		return fmt.Errorf("%w: width %d after %s", ErrInvalidWindow, w.Width, w.Anchor)
	}
	return nil
}

// Source supplies the current tables. Implementations must return
// immutable snapshots.
type Source interface {
	Tables() *Tables
}

// Tables is an immutable snapshot of every identifier registry for one
// protocol pair. All methods are safe for concurrent use.
type Tables struct {
	pair          string
	keys          map[Domain][]string
	ids           map[Domain]map[string]int32
	itemRemap     map[int32]int32
	bannerCompact map[string]string
	window        Window
	serial        uint64
}

// Tables returns t itself, so a fixed snapshot can be used as a Source.
func (t *Tables) Tables() *Tables { return t }

// Serial identifies this snapshot. Every Build yields a new serial, so it
// can key data derived from one snapshot.
func (t *Tables) Serial() uint64 { return t.serial }

// Pair returns the protocol pair label, e.g. "1.20.5->1.20.3".
func (t *Tables) Pair() string { return t.pair }

// IDToKey resolves a numeric id to its key in the given domain.
func (t *Tables) IDToKey(d Domain, id int32) (string, bool) {
	keys := t.keys[d]
	if id < 0 || int(id) >= len(keys) || keys[id] == "" {
		return "", false
	}
	return keys[id], true
}

// KeyToID resolves a key to its numeric id. The "minecraft:" namespace is optional.
func (t *Tables) KeyToID(d Domain, key string) (int32, bool) {
	id, ok := t.ids[d][normalizeKey(key)]
	return id, ok
}

// LegacyItemID maps a current item id to the legacy item id.
func (t *Tables) LegacyItemID(id int32) (int32, bool) {
	legacy, ok := t.itemRemap[id]
	return legacy, ok
}

// LegacyItemName returns the namespaced legacy name of a current item id,
// or "" when the item did not exist in the legacy version.
func (t *Tables) LegacyItemName(id int32) string {
	legacy, ok := t.LegacyItemID(id)
	if !ok {
		return ""
	}
	name, ok := t.IDToKey(DomainItem, legacy)
	if !ok {
		return ""
	}
	return namespace + name
}

// CompactBannerPattern returns the short pattern code legacy banners use.
func (t *Tables) CompactBannerPattern(key string) (string, bool) {
	code, ok := t.bannerCompact[normalizeKey(key)]
	return code, ok
}

// EnchantmentWindow returns the enchantment id shift.
func (t *Tables) EnchantmentWindow() Window { return t.window }

// Size returns the number of ids in a domain.
func (t *Tables) Size(d Domain) int { return len(t.keys[d]) }

// Sizes returns the size of every non-empty domain.
func (t *Tables) Sizes() map[Domain]int {
	return lo.MapValues(lo.PickBy(t.keys, func(_ Domain, keys []string) bool {
		return len(keys) > 0
	}), func(keys []string, _ Domain) int {
		return len(keys)
	})
}

// ItemRemapCount returns the number of remapped item ids.
func (t *Tables) ItemRemapCount() int { return len(t.itemRemap) }

// Entry is one (id, key) pair of a domain.
type Entry struct {
	ID  int32
	Key string
}

// Entries lists the populated ids of a domain in id order.
func (t *Tables) Entries(d Domain) []Entry {
	out := make([]Entry, 0, len(t.keys[d]))
	for i, k := range t.keys[d] {
		if k != "" {
			out = append(out, Entry{ID: int32(i), Key: k})
		}
	}
	return out
}

// BannerPatternCodes returns a copy of the compact banner pattern codes.
func (t *Tables) BannerPatternCodes() map[string]string {
	return lo.Assign(t.bannerCompact)
}

// ItemRemap returns a copy of the item id remapping sorted by current id.
func (t *Tables) ItemRemap() []Entry {
	out := make([]Entry, 0, len(t.itemRemap))
	for cur := range t.itemRemap {
		out = append(out, Entry{ID: cur, Key: t.LegacyItemName(cur)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
