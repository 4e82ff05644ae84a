package data

// Holder references a registry entry either by numeric id or by an inline
// (direct) definition.
type Holder[T any] struct {
	ID    int32 `json:"id,omitempty"`
	Value *T    `json:"value,omitempty"`
}

// HolderOf returns a by-reference holder.
func HolderOf[T any](id int32) Holder[T] {
	return Holder[T]{ID: id}
}

// DirectHolder returns a holder carrying an inline definition.
func DirectHolder[T any](v T) Holder[T] {
	return Holder[T]{Value: &v}
}

// IsDirect reports whether the holder carries an inline definition.
func (h Holder[T]) IsDirect() bool {
	return h.Value != nil
}
