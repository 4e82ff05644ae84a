package legacy

import (
	"strconv"

	"item-translator/core/data"
	"item-translator/core/nbt"
)

// registerDisplayRules covers the display sub-tree, tooltip flags and books.
func registerDisplayRules(cv *Converter) {
	register(cv, data.KeyCustomName, func(_ *conversion, v data.TagValue, tag *nbt.CompoundTag) {
		displayTag(tag).PutString("Name", nbt.ToJSONText(v.Tag))
	})
	// item_name is the fallback name; a custom name always wins, whichever comes first.
	register(cv, data.KeyItemName, func(_ *conversion, v data.TagValue, tag *nbt.CompoundTag) {
		display := displayTag(tag)
		if !display.Contains("Name") {
			display.PutString("Name", nbt.ToJSONText(v.Tag))
		}
	})
	register(cv, data.KeyLore, func(_ *conversion, v []data.TagValue, tag *nbt.CompoundTag) {
		lore := nbt.NewList(nbt.TypeString)
		for _, line := range v {
			lore.MustAdd(nbt.StringTag(nbt.ToJSONText(line.Tag)))
		}
		displayTag(tag).Put("Lore", lore)
	})
	register(cv, data.KeyDyedColor, func(_ *conversion, v data.DyedColor, tag *nbt.CompoundTag) {
		displayTag(tag).PutInt("color", v.RGB)
		if !v.ShowInTooltip {
			putHideFlag(tag, hideDyeColor)
		}
	})
	register(cv, data.KeyMapColor, func(_ *conversion, v int32, tag *nbt.CompoundTag) {
		displayTag(tag).PutInt("MapColor", v)
	})

	register(cv, data.KeyUnbreakable, func(_ *conversion, v data.Unbreakable, tag *nbt.CompoundTag) {
		tag.PutBoolean("Unbreakable", true)
		if !v.ShowInTooltip {
			putHideFlag(tag, hideUnbreakable)
		}
	})
	register(cv, data.KeyHideAdditionalTooltip, func(_ *conversion, _ data.Unit, tag *nbt.CompoundTag) {
		putHideFlag(tag, hideAdditional)
	})
	register(cv, data.KeyHideTooltip, func(c *conversion, _ data.Unit, tag *nbt.CompoundTag) {
		putHideFlag(tag, hideAll)
		if c.preserve() {
			backupTag(tag).PutBoolean("hide_tooltip", true)
		}
	})

	register(cv, data.KeyWritableBookContent, func(_ *conversion, v []data.FilterableString, tag *nbt.CompoundTag) {
		pages := nbt.NewList(nbt.TypeString)
		filtered := nbt.NewCompound()
		for i, page := range v {
			pages.MustAdd(nbt.StringTag(page.Raw))
			if page.Filtered != nil {
				filtered.PutString(strconv.Itoa(i), *page.Filtered)
			}
		}
		tag.Put("pages", pages)
		tag.Put("filtered_pages", filtered)
	})
	register(cv, data.KeyWrittenBookContent, func(_ *conversion, v data.WrittenBook, tag *nbt.CompoundTag) {
		pages := nbt.NewList(nbt.TypeString)
		filtered := nbt.NewCompound()
		for i, page := range v.Pages {
			pages.MustAdd(nbt.StringTag(nbt.ToJSONText(page.Raw.Tag)))
			if page.Filtered != nil {
				filtered.PutString(strconv.Itoa(i), nbt.ToJSONText(page.Filtered.Tag))
			}
		}
		tag.Put("pages", pages)
		tag.Put("filtered_pages", filtered)

		tag.PutString("author", v.Author)
		tag.PutInt("generation", v.Generation)
		tag.PutBoolean("resolved", v.Resolved)
		tag.PutString("title", v.Title.Raw)
		if v.Title.Filtered != nil {
			tag.PutString("filtered_title", *v.Title.Filtered)
		}
	})
}
