package nbt

import (
	"strconv"
	"strings"
)

func (t ByteTag) String() string   { return strconv.Itoa(int(t)) + "b" }
func (t ShortTag) String() string  { return strconv.Itoa(int(t)) + "s" }
func (t IntTag) String() string    { return strconv.Itoa(int(t)) }
func (t LongTag) String() string   { return strconv.FormatInt(int64(t), 10) + "L" }
func (t FloatTag) String() string  { return strconv.FormatFloat(float64(t), 'g', -1, 32) + "f" }
func (t DoubleTag) String() string { return strconv.FormatFloat(float64(t), 'g', -1, 64) + "d" }
func (t StringTag) String() string { return quote(string(t)) }

func (t ByteArrayTag) String() string {
	var b strings.Builder
	b.WriteString("[B;")
	for i, v := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(ByteTag(v).String())
	}
	b.WriteByte(']')
	return b.String()
}

func (t IntArrayTag) String() string {
	var b strings.Builder
	b.WriteString("[I;")
	for i, v := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	b.WriteByte(']')
	return b.String()
}

func (t LongArrayTag) String() string {
	var b strings.Builder
	b.WriteString("[L;")
	for i, v := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(LongTag(v).String())
	}
	b.WriteByte(']')
	return b.String()
}

func (l *ListTag) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range l.items {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(t.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (c *CompoundTag) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		if isBareKey(k) {
			b.WriteString(k)
		} else {
			b.WriteString(quote(k))
		}
		b.WriteByte(':')
		b.WriteString(c.values[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

func isBareKey(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.', r == '+':
		default:
			return false
		}
	}
	return true
}

func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
