package data

import (
	"encoding/json"
	"fmt"
)

// Item is an item stack with its ordered component entries.
type Item struct {
	ID    int32            `json:"id"`
	Count int32            `json:"count"`
	Data  []StructuredData `json:"components,omitempty"`
}

// Add appends an entry, replacing an earlier entry of the same kind in place.
func (i *Item) Add(d StructuredData) {
	for n := range i.Data {
		if i.Data[n].kind == d.kind {
			i.Data[n] = d
			return
		}
	}
	i.Data = append(i.Data, d)
}

// UnmarshalJSON decodes an item stack. A missing count means one item, at any
// nesting depth.
func (i *Item) UnmarshalJSON(b []byte) error {
	type plain Item
	aux := struct {
		plain
		Count *int32 `json:"count"`
	}{}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*i = Item(aux.plain)
	i.Count = 1
	if aux.Count != nil {
		i.Count = *aux.Count
	}
	return nil
}

// Get returns the entry of the given kind.
func (i *Item) Get(kind Kind) (StructuredData, bool) {
	for _, d := range i.Data {
		if d.kind == kind {
			return d, true
		}
	}
	return StructuredData{}, false
}

// DecodeItem parses the JSON form of an item:
//
//	{"id": 1, "count": 1, "components": [{"type": "damage", "value": 3}, {"type": "!lore"}]}
func DecodeItem(b []byte) (Item, error) {
	var it Item
	if err := json.Unmarshal(b, &it); err != nil {
		return Item{}, fmt.Errorf("decode item: %w", err)
	}
	if it.Count == 0 {
		it.Count = 1
	}
	seen := make(map[Kind]struct{}, len(it.Data))
	for _, d := range it.Data {
		if _, dup := seen[d.kind]; dup {
			return Item{}, fmt.Errorf("decode item: duplicate component %s", d.kind)
		}
		seen[d.kind] = struct{}{}
	}
	return it, nil
}
