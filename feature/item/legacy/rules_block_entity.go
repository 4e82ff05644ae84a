package legacy

import (
	"sort"

	"item-translator/core/data"
	"item-translator/core/nbt"
)

// mobTags are the bucket entity fields legacy clients read from the item root.
var mobTags = []string{
	"NoAI", "Silent", "NoGravity", "Glowing", "Invulnerable",
	"Health", "Age", "Variant", "HuntingCooldown", "BucketVariantTag",
}

// registerBlockEntityRules covers raw tag payloads and the BlockEntityTag
// sub-tree. Component rules overwrite keys inside BlockEntityTag; the raw
// block_entity_data payload only fills keys nobody else wrote.
func registerBlockEntityRules(cv *Converter) {
	register(cv, data.KeyBees, func(_ *conversion, v []data.Bee, tag *nbt.CompoundTag) {
		bees := nbt.NewList(nbt.TypeCompound)
		for _, bee := range v {
			bt := nbt.NewCompound()
			if bee.EntityData != nil {
				bt.Put("EntityData", bee.EntityData.Copy())
			} else {
				bt.Put("EntityData", nbt.NewCompound())
			}
			bt.PutInt("TicksInHive", bee.TicksInHive)
			bt.PutInt("MinOccupationTicks", bee.MinTicksInHive)
			bees.MustAdd(bt)
		}
		blockEntityTag(tag).Put("Bees", bees)
	})
	register(cv, data.KeyLock, func(_ *conversion, v data.TagValue, tag *nbt.CompoundTag) {
		if v.Tag != nil {
			blockEntityTag(tag).Put("Lock", v.Tag.Copy())
		}
	})
	register(cv, data.KeyNoteBlockSound, func(_ *conversion, v string, tag *nbt.CompoundTag) {
		blockEntityTag(tag).PutString("note_block_sound", v)
	})
	// Sherds keep their face position; unknown items leave an empty name.
	register(cv, data.KeyPotDecorations, func(c *conversion, v data.PotDecorations, tag *nbt.CompoundTag) {
		sherds := nbt.NewList(nbt.TypeString)
		for _, id := range v.ItemIDs {
			sherds.MustAdd(nbt.StringTag(c.itemName(id)))
		}
		blockEntityTag(tag).Put("sherds", sherds)
	})
	register(cv, data.KeyBlockEntityData, func(_ *conversion, v *nbt.CompoundTag, tag *nbt.CompoundTag) {
		if v == nil {
			return
		}
		be := blockEntityTag(tag)
		v.Each(func(key string, t nbt.Tag) {
			if !be.Contains(key) {
				be.Put(key, t.Copy())
			}
		})
	})

	register(cv, data.KeyBlockState, func(_ *conversion, v data.BlockStateProperties, tag *nbt.CompoundTag) {
		names := make([]string, 0, len(v.Properties))
		for name := range v.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		state := nbt.NewCompound()
		for _, name := range names {
			state.PutString(name, v.Properties[name])
		}
		tag.Put("BlockStateTag", state)
	})

	putCopy(cv, data.KeyDebugStickState, "DebugProperty")
	putCopy(cv, data.KeyEntityData, "EntityTag")
	register(cv, data.KeyRecipes, func(_ *conversion, v data.TagValue, tag *nbt.CompoundTag) {
		if v.Tag != nil {
			tag.Put("Recipes", v.Tag.Copy())
		}
	})

	register(cv, data.KeyBucketEntityData, func(_ *conversion, v *nbt.CompoundTag, tag *nbt.CompoundTag) {
		if v == nil {
			return
		}
		for _, name := range mobTags {
			if t := v.Get(name); t != nil {
				tag.Put(name, t.Copy())
			}
		}
	})
	register(cv, data.KeyContainerLoot, func(_ *conversion, v *nbt.CompoundTag, tag *nbt.CompoundTag) {
		if v == nil {
			return
		}
		if t := v.Get("loot_table"); t != nil {
			tag.Put("LootTable", t.Copy())
		}
		if t := v.Get("loot_table_seed"); t != nil {
			tag.Put("LootTableSeed", t.Copy())
		}
	})
}

// putCopy registers a rule storing a copy of a raw compound under key.
func putCopy(cv *Converter, k data.Key[*nbt.CompoundTag], key string) {
	register(cv, k, func(_ *conversion, v *nbt.CompoundTag, tag *nbt.CompoundTag) {
		if v != nil {
			tag.Put(key, v.Copy())
		}
	})
}
