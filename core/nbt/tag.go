package nbt

import "errors"

// Type identifies the kind of a tag, using the binary NBT tag ids.
type Type byte

const (
	TypeEnd Type = iota
	TypeByte
	TypeShort
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeByteArray
	TypeString
	TypeList
	TypeCompound
	TypeIntArray
	TypeLongArray
)

var typeNames = [...]string{
	TypeEnd:       "end",
	TypeByte:      "byte",
	TypeShort:     "short",
	TypeInt:       "int",
	TypeLong:      "long",
	TypeFloat:     "float",
	TypeDouble:    "double",
	TypeByteArray: "byte_array",
	TypeString:    "string",
	TypeList:      "list",
	TypeCompound:  "compound",
	TypeIntArray:  "int_array",
	TypeLongArray: "long_array",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// ErrListType is returned when a tag is added to a list holding a different element type.
var ErrListType = errors.New("list element type mismatch")

// Tag is a node of the legacy tree document.
type Tag interface {
	// Type returns the tag kind.
	Type() Type
	// Copy returns a deep copy of the tag.
	Copy() Tag
	// String renders the tag as stringified NBT.
	String() string
}

type (
	ByteTag      int8
	ShortTag     int16
	IntTag       int32
	LongTag      int64
	FloatTag     float32
	DoubleTag    float64
	StringTag    string
	ByteArrayTag []int8
	IntArrayTag  []int32
	LongArrayTag []int64
)

func (ByteTag) Type() Type      { return TypeByte }
func (ShortTag) Type() Type     { return TypeShort }
func (IntTag) Type() Type       { return TypeInt }
func (LongTag) Type() Type      { return TypeLong }
func (FloatTag) Type() Type     { return TypeFloat }
func (DoubleTag) Type() Type    { return TypeDouble }
func (StringTag) Type() Type    { return TypeString }
func (ByteArrayTag) Type() Type { return TypeByteArray }
func (IntArrayTag) Type() Type  { return TypeIntArray }
func (LongArrayTag) Type() Type { return TypeLongArray }

func (t ByteTag) Copy() Tag   { return t }
func (t ShortTag) Copy() Tag  { return t }
func (t IntTag) Copy() Tag    { return t }
func (t LongTag) Copy() Tag   { return t }
func (t FloatTag) Copy() Tag  { return t }
func (t DoubleTag) Copy() Tag { return t }
func (t StringTag) Copy() Tag { return t }

func (t ByteArrayTag) Copy() Tag { return append(ByteArrayTag(nil), t...) }
func (t IntArrayTag) Copy() Tag  { return append(IntArrayTag(nil), t...) }
func (t LongArrayTag) Copy() Tag { return append(LongArrayTag(nil), t...) }

// Bool converts a boolean into the byte tag legacy documents use for flags.
func Bool(b bool) ByteTag {
	if b {
		return 1
	}
	return 0
}

// ListTag is an ordered list of tags sharing one element type.
// The element type is fixed by the first element added.
type ListTag struct {
	elem  Type
	items []Tag
}

// NewList creates an empty list. elem may be TypeEnd to let the first element decide.
func NewList(elem Type) *ListTag {
	return &ListTag{elem: elem}
}

func (l *ListTag) Type() Type { return TypeList }

// ElementType returns the element type, or TypeEnd for an untyped empty list.
func (l *ListTag) ElementType() Type { return l.elem }

// Add appends a tag. It fails if the tag type differs from the list element type.
func (l *ListTag) Add(t Tag) error {
	if l.elem == TypeEnd {
		l.elem = t.Type()
	} else if t.Type() != l.elem {
		return ErrListType
	}
	l.items = append(l.items, t)
	return nil
}

// MustAdd appends a tag and panics on a type mismatch.
func (l *ListTag) MustAdd(t Tag) {
	if err := l.Add(t); err != nil {
		panic(err)
	}
}

// Len returns the number of elements.
func (l *ListTag) Len() int { return len(l.items) }

// At returns the element at index i.
func (l *ListTag) At(i int) Tag { return l.items[i] }

// Items returns the elements. The slice must not be modified.
func (l *ListTag) Items() []Tag { return l.items }

func (l *ListTag) Copy() Tag {
	c := &ListTag{elem: l.elem, items: make([]Tag, len(l.items))}
	for i, t := range l.items {
		c.items[i] = t.Copy()
	}
	return c
}
