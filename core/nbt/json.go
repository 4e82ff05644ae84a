package nbt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

func (t ByteTag) MarshalJSON() ([]byte, error)      { return json.Marshal(int8(t)) }
func (t ShortTag) MarshalJSON() ([]byte, error)     { return json.Marshal(int16(t)) }
func (t IntTag) MarshalJSON() ([]byte, error)       { return json.Marshal(int32(t)) }
func (t LongTag) MarshalJSON() ([]byte, error)      { return json.Marshal(int64(t)) }
func (t FloatTag) MarshalJSON() ([]byte, error)     { return json.Marshal(float32(t)) }
func (t DoubleTag) MarshalJSON() ([]byte, error)    { return json.Marshal(float64(t)) }
func (t StringTag) MarshalJSON() ([]byte, error)    { return json.Marshal(string(t)) }
func (t ByteArrayTag) MarshalJSON() ([]byte, error) { return json.Marshal([]int8(t)) }
func (t IntArrayTag) MarshalJSON() ([]byte, error)  { return json.Marshal([]int32(t)) }
func (t LongArrayTag) MarshalJSON() ([]byte, error) { return json.Marshal([]int64(t)) }

func (l *ListTag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, t := range l.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON renders the compound as a JSON object, keeping insertion order.
func (c *CompoundTag) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into the compound, keeping key order.
func (c *CompoundTag) UnmarshalJSON(data []byte) error {
	t, err := ParseJSON(data)
	if err != nil {
		return err
	}
	parsed, ok := t.(*CompoundTag)
	if !ok {
		return fmt.Errorf("expected JSON object, got %s", t.Type())
	}
	*c = *parsed
	return nil
}

// ParseJSON decodes a JSON value into a tag tree. Objects become compounds
// (in document order), arrays become lists, integral numbers become ints
// (or longs when out of int range), other numbers doubles, booleans bytes.
func ParseJSON(data []byte) (Tag, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	t, err := readValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected trailing data after JSON value")
	}
	return t, nil
}

func readValue(dec *json.Decoder) (Tag, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return fromToken(dec, tok)
}

func fromToken(dec *json.Decoder, tok json.Token) (Tag, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			c := NewCompound()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("invalid object key %v", kt)
				}
				val, err := readValue(dec)
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", key, err)
				}
				c.Put(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return c, nil
		case '[':
			l := NewList(TypeEnd)
			for dec.More() {
				val, err := readValue(dec)
				if err != nil {
					return nil, err
				}
				if err := l.Add(val); err != nil {
					return nil, fmt.Errorf("array element %d: %w", l.Len(), err)
				}
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return l, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return StringTag(v), nil
	case bool:
		return Bool(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return IntTag(i), nil
			}
			return LongTag(i), nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return DoubleTag(f), nil
	case nil:
		return nil, fmt.Errorf("null is not representable as a tag")
	}
	return nil, fmt.Errorf("unsupported JSON token %T", tok)
}

// ToJSONText renders a text component tag as the JSON string legacy clients
// read from display names, lore and book pages. Byte values inside compounds
// are component flags (bold, italic, ...) and render as booleans.
func ToJSONText(t Tag) string {
	var b strings.Builder
	writeText(&b, t)
	return b.String()
}

func writeText(b *strings.Builder, t Tag) {
	switch v := t.(type) {
	case *CompoundTag:
		b.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			b.Write(kb)
			b.WriteByte(':')
			writeText(b, v.values[k])
		}
		b.WriteByte('}')
	case *ListTag:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeText(b, item)
		}
		b.WriteByte(']')
	case ByteTag:
		if v != 0 {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case nil:
		b.WriteString(`""`)
	default:
		out, err := json.Marshal(v)
		if err != nil {
			b.WriteString(`""`)
			return
		}
		b.Write(out)
	}
}
