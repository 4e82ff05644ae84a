// Package data models items as ordered sets of typed components.
//
// Every component kind has exactly one Kind constant and one Key variable
// (KeyDamage, KeyEnchantments, ...). Entries are built through the key so
// the value type always matches the kind:
//
//	item.Add(data.KeyDamage.Of(3))
//	item.Add(data.KeyLore.Removed())
//
// # JSON form
//
// Items travel as JSON over the CLI and HTTP surfaces:
//
//	{"id": 812, "count": 1, "components": [
//	    {"type": "enchantments", "value": {"levels": [{"id": 12, "level": 3}], "show_in_tooltip": true}},
//	    {"type": "!lore"}
//	]}
//
// A "!" prefix marks a removed component. Names may carry the
// "minecraft:" namespace. Text components and raw tag payloads are decoded
// into nbt tags.
package data
