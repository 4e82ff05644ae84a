// Package nbt provides the mutable tree document that legacy item data is
// folded into.
//
// The model mirrors the NBT tag family: scalar tags, typed arrays, ordered
// lists with a single element type and insertion-ordered compounds.
//
// # Shared sub-trees
//
// Several writers may contribute to the same nested compound. Use
// GetOrCreateCompound and GetOrCreateList so the first writer creates the
// sub-tree and later writers reuse it, regardless of order.
//
// # Encodings
//
//   - String renders stringified NBT (SNBT).
//   - MarshalJSON / ParseJSON convert to and from plain JSON values.
//   - ToJSONText renders a text component for display names, lore and pages.
package nbt
