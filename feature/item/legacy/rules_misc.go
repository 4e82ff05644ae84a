package legacy

import (
	"item-translator/core/data"
	"item-translator/core/nbt"
)

// registerScalarRules covers components that map onto plain root fields.
func registerScalarRules(cv *Converter) {
	// custom_data seeds the document in fold; the entry itself writes nothing.
	register(cv, data.KeyCustomData, func(*conversion, *nbt.CompoundTag, *nbt.CompoundTag) {})

	putInt(cv, data.KeyDamage, "Damage")
	putInt(cv, data.KeyCustomModelData, "CustomModelData")
	putInt(cv, data.KeyRepairCost, "RepairCost")
	putInt(cv, data.KeyMapID, "map")
	putInt(cv, data.KeyBaseColor, "Base")

	register(cv, data.KeyCreativeSlotLock, func(_ *conversion, _ data.Unit, tag *nbt.CompoundTag) {
		tag.Put("CustomCreativeLock", nbt.NewCompound())
	})

	register(cv, data.KeyMapPostProcessing, func(_ *conversion, v *int32, tag *nbt.CompoundTag) {
		if v == nil {
			return
		}
		switch *v {
		case 0:
			tag.PutBoolean("map_to_lock", true)
		case 1:
			tag.PutInt("map_scale_direction", 1)
		}
	})

	register(cv, data.KeyLodestoneTracker, func(_ *conversion, v data.LodestoneTracker, tag *nbt.CompoundTag) {
		if v.Pos == nil {
			tag.PutBoolean("LodestoneTracked", v.Tracked)
			return
		}
		pos := nbt.NewCompound()
		pos.PutInt("X", v.Pos.X)
		pos.PutInt("Y", v.Pos.Y)
		pos.PutInt("Z", v.Pos.Z)
		tag.Put("LodestonePos", pos)
		tag.PutBoolean("LodestoneTracked", v.Tracked)
		tag.PutString("LodestoneDimension", v.Pos.Dimension)
	})

	register(cv, data.KeyFireworks, func(_ *conversion, v data.Fireworks, tag *nbt.CompoundTag) {
		fireworks := nbt.NewCompound()
		fireworks.PutInt("Flight", v.FlightDuration)
		explosions := nbt.NewList(nbt.TypeCompound)
		for _, e := range v.Explosions {
			explosions.MustAdd(convertExplosion(e))
		}
		fireworks.Put("Explosions", explosions)
		tag.Put("Fireworks", fireworks)
	})
	register(cv, data.KeyFireworkExplosion, func(_ *conversion, v data.FireworkExplosion, tag *nbt.CompoundTag) {
		tag.Put("Explosion", convertExplosion(v))
	})

	// A profile with only a name collapses to a bare string.
	register(cv, data.KeyProfile, func(_ *conversion, v data.GameProfile, tag *nbt.CompoundTag) {
		if v.Name != nil && v.ID == nil && len(v.Properties) == 0 {
			tag.PutString("SkullOwner", *v.Name)
			return
		}
		profile := nbt.NewCompound()
		if v.Name != nil {
			profile.PutString("Name", *v.Name)
		}
		if v.ID != nil {
			profile.PutIntArray("Id", uuidToIntArray(*v.ID))
		}
		if len(v.Properties) > 0 {
			props := nbt.NewCompound()
			for _, p := range v.Properties {
				pt := nbt.NewCompound()
				pt.PutString("Value", p.Value)
				if p.Signature != nil {
					pt.PutString("Signature", *p.Signature)
				}
				props.GetOrCreateList(p.Name, nbt.TypeCompound).MustAdd(pt)
			}
			profile.Put("Properties", props)
		}
		tag.Put("SkullOwner", profile)
	})
}

func convertExplosion(e data.FireworkExplosion) *nbt.CompoundTag {
	et := nbt.NewCompound()
	et.PutInt("Type", e.Shape)
	et.PutIntArray("Colors", append([]int32{}, e.Colors...))
	et.PutIntArray("FadeColors", append([]int32{}, e.FadeColors...))
	et.PutBoolean("Trail", e.HasTrail)
	et.PutBoolean("Flicker", e.HasTwinkle)
	return et
}

func putInt(cv *Converter, k data.Key[int32], key string) {
	register(cv, k, func(_ *conversion, v int32, tag *nbt.CompoundTag) {
		tag.PutInt(key, v)
	})
}

// registerBackupRules covers components without a legacy equivalent. They
// only write into the backup sub-tree, and only when preservation is on.
func registerBackupRules(cv *Converter) {
	backupInt(cv, data.KeyMaxStackSize)
	backupInt(cv, data.KeyMaxDamage)
	backupInt(cv, data.KeyRarity)
	backupInt(cv, data.KeyOminousBottleAmplifier)

	register(cv, data.KeyFireResistant, func(c *conversion, _ data.Unit, tag *nbt.CompoundTag) {
		if c.preserve() {
			backupTag(tag).PutBoolean(data.KindFireResistant.String(), true)
		}
	})
	register(cv, data.KeyIntangibleProjectile, func(c *conversion, v data.TagValue, tag *nbt.CompoundTag) {
		if c.preserve() && v.Tag != nil {
			backupTag(tag).Put(data.KindIntangibleProjectile.String(), v.Tag.Copy())
		}
	})

	// TODO: back up food and tool once the reverse converter defines their layout.
	register(cv, data.KeyFood, func(*conversion, data.FoodProperties, *nbt.CompoundTag) {})
	register(cv, data.KeyTool, func(*conversion, data.ToolProperties, *nbt.CompoundTag) {})
}

func backupInt(cv *Converter, k data.Key[int32]) {
	name := k.String()
	register(cv, k, func(c *conversion, v int32, tag *nbt.CompoundTag) {
		if c.preserve() {
			backupTag(tag).PutInt(name, v)
		}
	})
}
