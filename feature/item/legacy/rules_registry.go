package legacy

import (
	"item-translator/core/data"
	"item-translator/core/mappings"
	"item-translator/core/nbt"
)

// registerRegistryRules covers components whose ids resolve through a
// registry table: potions, effects, instruments and map decorations.
func registerRegistryRules(cv *Converter) {
	register(cv, data.KeyPotionContents, func(c *conversion, v data.PotionContents, tag *nbt.CompoundTag) {
		if v.Potion != nil {
			if key, ok := c.tables.IDToKey(mappings.DomainPotion, *v.Potion); ok {
				tag.PutString("Potion", key)
			}
		}
		if v.CustomColor != nil {
			tag.PutInt("CustomPotionColor", *v.CustomColor)
		}

		effects := nbt.NewList(nbt.TypeCompound)
		for _, e := range v.CustomEffects {
			et := nbt.NewCompound()
			if key, ok := c.tables.IDToKey(mappings.DomainPotionEffect, e.Effect); ok {
				et.PutString("id", key)
			}
			et.PutByte("amplifier", int8(e.Data.Amplifier))
			et.PutInt("duration", e.Data.Duration)
			et.PutBoolean("ambient", e.Data.Ambient)
			et.PutBoolean("show_particles", e.Data.ShowParticles)
			et.PutBoolean("show_icon", e.Data.ShowIcon)
			effects.MustAdd(et)
		}
		tag.Put("custom_potion_effects", effects)
	})

	register(cv, data.KeySuspiciousStewEffects, func(c *conversion, v []data.SuspiciousStewEffect, tag *nbt.CompoundTag) {
		effects := nbt.NewList(nbt.TypeCompound)
		for _, e := range v {
			et := nbt.NewCompound()
			if key, ok := c.tables.IDToKey(mappings.DomainPotionEffect, e.MobEffect); ok {
				et.PutString("id", key)
			}
			et.PutInt("duration", e.Duration)
			effects.MustAdd(et)
		}
		tag.Put("effects", effects)
	})

	// Inline instrument definitions have no legacy form.
	register(cv, data.KeyInstrument, func(c *conversion, v data.Holder[data.Instrument], tag *nbt.CompoundTag) {
		if v.IsDirect() {
			return
		}
		if key, ok := c.tables.IDToKey(mappings.DomainInstrument, v.ID); ok {
			tag.PutString("instrument", key)
		}
	})

	register(cv, data.KeyMapDecorations, func(c *conversion, v *nbt.CompoundTag, tag *nbt.CompoundTag) {
		decorations := nbt.NewList(nbt.TypeCompound)
		if v != nil {
			v.Each(func(id string, t nbt.Tag) {
				d, ok := t.(*nbt.CompoundTag)
				if !ok {
					return
				}
				typeID, ok := c.tables.KeyToID(mappings.DomainMapDecoration, d.GetString("type"))
				if !ok {
					return
				}
				dt := nbt.NewCompound()
				dt.PutString("id", id)
				dt.PutInt("type", typeID)
				dt.PutDouble("x", d.GetDouble("x"))
				dt.PutDouble("z", d.GetDouble("z"))
				dt.PutFloat("rot", d.GetFloat("rotation"))
				decorations.MustAdd(dt)
			})
		}
		tag.Put("Decorations", decorations)
	})
}
