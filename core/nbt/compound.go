package nbt

// CompoundTag is an insertion-ordered string-keyed map of tags.
// Re-putting an existing key replaces the value and keeps its position.
type CompoundTag struct {
	keys   []string
	values map[string]Tag
}

// NewCompound creates an empty compound.
func NewCompound() *CompoundTag {
	return &CompoundTag{values: make(map[string]Tag)}
}

func (c *CompoundTag) Type() Type { return TypeCompound }

func (c *CompoundTag) Copy() Tag {
	cp := &CompoundTag{
		keys:   append([]string(nil), c.keys...),
		values: make(map[string]Tag, len(c.values)),
	}
	for k, v := range c.values {
		cp.values[k] = v.Copy()
	}
	return cp
}

// Len returns the number of entries.
func (c *CompoundTag) Len() int { return len(c.keys) }

// Keys returns the keys in insertion order.
func (c *CompoundTag) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Contains reports whether key is present.
func (c *CompoundTag) Contains(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Get returns the tag stored under key, or nil.
func (c *CompoundTag) Get(key string) Tag {
	return c.values[key]
}

// Put stores t under key.
func (c *CompoundTag) Put(key string, t Tag) {
	if c.values == nil {
		c.values = make(map[string]Tag)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = t
}

// Remove deletes key and returns the removed tag, or nil.
func (c *CompoundTag) Remove(key string) Tag {
	t, ok := c.values[key]
	if !ok {
		return nil
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return t
}

// Each calls fn for every entry in insertion order.
func (c *CompoundTag) Each(fn func(key string, t Tag)) {
	for _, k := range c.keys {
		fn(k, c.values[k])
	}
}

func (c *CompoundTag) PutByte(key string, v int8)        { c.Put(key, ByteTag(v)) }
func (c *CompoundTag) PutShort(key string, v int16)      { c.Put(key, ShortTag(v)) }
func (c *CompoundTag) PutInt(key string, v int32)        { c.Put(key, IntTag(v)) }
func (c *CompoundTag) PutLong(key string, v int64)       { c.Put(key, LongTag(v)) }
func (c *CompoundTag) PutFloat(key string, v float32)    { c.Put(key, FloatTag(v)) }
func (c *CompoundTag) PutDouble(key string, v float64)   { c.Put(key, DoubleTag(v)) }
func (c *CompoundTag) PutString(key string, v string)    { c.Put(key, StringTag(v)) }
func (c *CompoundTag) PutBoolean(key string, v bool)     { c.Put(key, Bool(v)) }
func (c *CompoundTag) PutIntArray(key string, v []int32) { c.Put(key, IntArrayTag(v)) }

// GetInt returns the numeric value under key as int32, or 0.
func (c *CompoundTag) GetInt(key string) int32 {
	switch v := c.values[key].(type) {
	case ByteTag:
		return int32(v)
	case ShortTag:
		return int32(v)
	case IntTag:
		return int32(v)
	case LongTag:
		return int32(v)
	case FloatTag:
		return int32(v)
	case DoubleTag:
		return int32(v)
	}
	return 0
}

// GetDouble returns the numeric value under key as float64, or 0.
func (c *CompoundTag) GetDouble(key string) float64 {
	switch v := c.values[key].(type) {
	case ByteTag:
		return float64(v)
	case ShortTag:
		return float64(v)
	case IntTag:
		return float64(v)
	case LongTag:
		return float64(v)
	case FloatTag:
		return float64(v)
	case DoubleTag:
		return float64(v)
	}
	return 0
}

// GetFloat returns the numeric value under key as float32, or 0.
func (c *CompoundTag) GetFloat(key string) float32 {
	return float32(c.GetDouble(key))
}

// GetBoolean reports whether the numeric value under key is non-zero.
func (c *CompoundTag) GetBoolean(key string) bool {
	return c.GetInt(key) != 0
}

// GetString returns the string under key, or "".
func (c *CompoundTag) GetString(key string) string {
	if s, ok := c.values[key].(StringTag); ok {
		return string(s)
	}
	return ""
}

// GetCompound returns the compound under key, or nil if absent or not a compound.
func (c *CompoundTag) GetCompound(key string) *CompoundTag {
	if sub, ok := c.values[key].(*CompoundTag); ok {
		return sub
	}
	return nil
}

// GetList returns the list under key, or nil if absent or not a list.
func (c *CompoundTag) GetList(key string) *ListTag {
	if l, ok := c.values[key].(*ListTag); ok {
		return l
	}
	return nil
}

// GetOrCreateCompound returns the compound under key, inserting an empty one first if needed.
// A non-compound value under key is replaced.
func (c *CompoundTag) GetOrCreateCompound(key string) *CompoundTag {
	if sub := c.GetCompound(key); sub != nil {
		return sub
	}
	sub := NewCompound()
	c.Put(key, sub)
	return sub
}

// GetOrCreateList returns the list under key, inserting an empty list of elem first if needed.
func (c *CompoundTag) GetOrCreateList(key string, elem Type) *ListTag {
	if l := c.GetList(key); l != nil {
		return l
	}
	l := NewList(elem)
	c.Put(key, l)
	return l
}
