package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompound_PutKeepsInsertionOrder(t *testing.T) {
	c := NewCompound()
	c.PutInt("b", 1)
	c.PutString("a", "x")
	c.PutInt("b", 2)

	assert.Equal(t, []string{"b", "a"}, c.Keys())
	assert.Equal(t, int32(2), c.GetInt("b"))
}

func TestCompound_Remove(t *testing.T) {
	c := NewCompound()
	c.PutInt("a", 1)
	c.PutInt("b", 2)
	c.PutInt("c", 3)

	removed := c.Remove("b")
	assert.Equal(t, IntTag(2), removed)
	assert.Equal(t, []string{"a", "c"}, c.Keys())
	assert.Nil(t, c.Remove("missing"))
}

func TestCompound_TypedGetters(t *testing.T) {
	c := NewCompound()
	c.PutByte("byte", 3)
	c.PutDouble("double", 1.5)
	c.PutString("str", "hello")
	c.PutBoolean("flag", true)

	assert.Equal(t, int32(3), c.GetInt("byte"))
	assert.Equal(t, 1.5, c.GetDouble("double"))
	assert.Equal(t, "hello", c.GetString("str"))
	assert.True(t, c.GetBoolean("flag"))

	// Missing and mistyped keys fall back to zero values
	assert.Equal(t, int32(0), c.GetInt("missing"))
	assert.Equal(t, "", c.GetString("byte"))
	assert.Nil(t, c.GetCompound("str"))
	assert.Nil(t, c.GetList("str"))
}

func TestCompound_GetOrCreateCompoundIsIdempotent(t *testing.T) {
	c := NewCompound()
	first := c.GetOrCreateCompound("display")
	first.PutString("Name", "a")

	second := c.GetOrCreateCompound("display")
	second.PutInt("color", 5)

	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, []string{"Name", "color"}, first.Keys())
}

func TestCompound_CopyIsDeep(t *testing.T) {
	c := NewCompound()
	c.GetOrCreateCompound("sub").PutInt("x", 1)

	cp := c.Copy().(*CompoundTag)
	cp.GetCompound("sub").PutInt("x", 2)

	assert.Equal(t, int32(1), c.GetCompound("sub").GetInt("x"))
}

func TestList_RejectsMixedTypes(t *testing.T) {
	l := NewList(TypeEnd)
	require.NoError(t, l.Add(StringTag("a")))
	assert.Equal(t, TypeString, l.ElementType())

	err := l.Add(IntTag(1))
	assert.ErrorIs(t, err, ErrListType)
	assert.Equal(t, 1, l.Len())
}
