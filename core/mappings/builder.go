package mappings

import "sync/atomic"

// Builder assembles a Tables snapshot. A Builder must not be used after Build.
type Builder struct {
	t *Tables
}

// NewBuilder starts an empty table set for the given protocol pair.
func NewBuilder(pair string) *Builder {
	return &Builder{t: &Tables{
		pair:          pair,
		keys:          make(map[Domain][]string),
		ids:           make(map[Domain]map[string]int32),
		itemRemap:     make(map[int32]int32),
		bannerCompact: make(map[string]string),
		window:        DefaultWindow,
	}}
}

// Keys appends keys to a domain; the first key appended gets the next free id.
func (b *Builder) Keys(d Domain, keys ...string) *Builder {
	for _, k := range keys {
		b.Key(d, int32(len(b.t.keys[d])), k)
	}
	return b
}

// Key sets the key of one id, growing the domain as needed. Gaps stay unresolvable.
func (b *Builder) Key(d Domain, id int32, key string) *Builder {
	if id < 0 {
		return b
	}
	key = normalizeKey(key)
	keys := b.t.keys[d]
	for int(id) >= len(keys) {
		keys = append(keys, "")
	}
	keys[id] = key
	b.t.keys[d] = keys
	if key == "" {
		return b
	}
	if b.t.ids[d] == nil {
		b.t.ids[d] = make(map[string]int32)
	}
	b.t.ids[d][key] = id
	return b
}

// Item maps a current item id to a legacy item id.
func (b *Builder) Item(current, legacy int32) *Builder {
	b.t.itemRemap[current] = legacy
	return b
}

// BannerPattern registers the compact code of a banner pattern key.
func (b *Builder) BannerPattern(key, code string) *Builder {
	b.t.bannerCompact[normalizeKey(key)] = code
	return b
}

// Window overrides the enchantment shift window.
func (b *Builder) Window(w Window) *Builder {
	b.t.window = w
	return b
}

var serials atomic.Uint64

// Build returns the finished snapshot with a process-unique serial.
func (b *Builder) Build() *Tables {
	t := b.t
	b.t = nil
	t.serial = serials.Add(1)
	return t
}
