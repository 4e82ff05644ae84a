package legacy

import (
	"encoding/binary"

	"item-translator/core/data"
	"item-translator/core/mappings"
	"item-translator/core/nbt"

	"github.com/google/uuid"
)

func registerEnchantmentRules(cv *Converter) {
	register(cv, data.KeyEnchantments, func(c *conversion, v data.Enchantments, tag *nbt.CompoundTag) {
		c.convertEnchantments(v, tag, "Enchantments", hideEnchantments)
	})
	register(cv, data.KeyStoredEnchantments, func(c *conversion, v data.Enchantments, tag *nbt.CompoundTag) {
		c.convertEnchantments(v, tag, "StoredEnchantments", hideAdditional)
	})

	// The glint cannot be removed without dropping enchantments, so only a
	// forced glint is expressed, as an invalid entry without a level.
	register(cv, data.KeyEnchantmentGlintOverride, func(c *conversion, v bool, tag *nbt.CompoundTag) {
		if c.preserve() {
			backupTag(tag).PutBoolean("enchantment_glint_override", v)
		}
		if !v {
			return
		}
		invalid := nbt.NewCompound()
		invalid.PutString("id", "")
		tag.GetOrCreateList("Enchantments", nbt.TypeCompound).MustAdd(invalid)
	})

	register(cv, data.KeyAttributeModifiers, func(c *conversion, v data.AttributeModifiers, tag *nbt.CompoundTag) {
		modifiers := nbt.NewList(nbt.TypeCompound)
		for _, m := range v.Modifiers {
			name, ok := c.tables.IDToKey(mappings.DomainAttribute, m.Attribute)
			if !ok {
				continue
			}
			if name == "generic.jump_strength" {
				name = "horse.jump_strength"
			}
			mt := nbt.NewCompound()
			mt.PutString("AttributeName", name)
			mt.PutString("Name", m.Modifier.Name)
			mt.PutDouble("Amount", m.Modifier.Amount)
			mt.PutInt("Slot", m.SlotType)
			mt.PutInt("Operation", m.Modifier.Operation)
			mt.PutIntArray("UUID", uuidToIntArray(m.Modifier.ID))
			modifiers.MustAdd(mt)
		}
		tag.Put("AttributeModifiers", modifiers)
		if !v.ShowInTooltip {
			putHideFlag(tag, hideAttributes)
		}
	})
}

// convertEnchantments appends to an existing list so a forced glint entry
// written earlier survives.
func (c *conversion) convertEnchantments(v data.Enchantments, tag *nbt.CompoundTag, key string, hide int32) {
	list := tag.GetOrCreateList(key, nbt.TypeCompound)
	for _, e := range v.Levels {
		id, ok := c.legacyEnchantmentID(e.ID)
		if !ok {
			continue
		}
		name, ok := c.tables.IDToKey(mappings.DomainEnchantment, id)
		if !ok {
			continue
		}
		et := nbt.NewCompound()
		et.PutString("id", name)
		et.PutShort("lvl", int16(e.Level))
		list.MustAdd(et)
	}
	if !v.ShowInTooltip {
		putHideFlag(tag, hide)
	}
}

// legacyEnchantmentID compacts a current enchantment id around the block of
// ids the legacy registry lacks. Ids inside the block have no legacy id.
func (c *conversion) legacyEnchantmentID(id int32) (int32, bool) {
	w := c.tables.EnchantmentWindow()
	anchor, ok := c.tables.KeyToID(mappings.DomainEnchantment, w.Anchor)
	if !ok || id <= anchor {
		return id, true
	}
	if id <= anchor+w.Width {
		return 0, false
	}
	return id - w.Width, true
}

// uuidToIntArray splits a UUID into four big-endian ints, most significant first.
func uuidToIntArray(id uuid.UUID) []int32 {
	out := make([]int32, 4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(id[i*4:]))
	}
	return out
}
