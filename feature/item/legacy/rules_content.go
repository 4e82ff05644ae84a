package legacy

import (
	"sort"
	"strconv"
	"strings"

	"item-translator/core/data"
	"item-translator/core/mappings"
	"item-translator/core/nbt"
)

// registerContentRules covers components that reference other items or
// blocks: nested item lists, block predicates, armor trims and banners.
func registerContentRules(cv *Converter) {
	registerE(cv, data.KeyChargedProjectiles, func(c *conversion, v []data.Item, tag *nbt.CompoundTag) error {
		return c.convertItemList(v, tag, "ChargedProjectiles")
	})
	registerE(cv, data.KeyBundleContents, func(c *conversion, v []data.Item, tag *nbt.CompoundTag) error {
		return c.convertItemList(v, tag, "Items")
	})
	registerE(cv, data.KeyContainer, func(c *conversion, v []data.Item, tag *nbt.CompoundTag) error {
		return c.convertItemList(v, tag, "Items")
	})

	register(cv, data.KeyCanPlaceOn, func(c *conversion, v data.AdventureModePredicate, tag *nbt.CompoundTag) {
		c.convertBlockPredicates(v, tag, "CanPlaceOn", hideCanPlaceOn)
	})
	register(cv, data.KeyCanBreak, func(c *conversion, v data.AdventureModePredicate, tag *nbt.CompoundTag) {
		c.convertBlockPredicates(v, tag, "CanDestroy", hideCanDestroy)
	})

	register(cv, data.KeyTrim, func(c *conversion, v data.ArmorTrim, tag *nbt.CompoundTag) {
		trim, ok := c.convertTrim(v)
		if !ok {
			return
		}
		tag.Put("Trim", trim)
		if !v.ShowInTooltip {
			putHideFlag(tag, hideArmorTrim)
		}
	})

	register(cv, data.KeyBannerPatterns, func(c *conversion, v []data.BannerPatternLayer, tag *nbt.CompoundTag) {
		patterns := nbt.NewList(nbt.TypeCompound)
		for _, layer := range v {
			code, ok := c.compactPattern(layer.Pattern)
			if !ok {
				continue
			}
			pt := nbt.NewCompound()
			pt.PutString("Pattern", code)
			pt.PutInt("Color", layer.DyeColor)
			patterns.MustAdd(pt)
		}
		tag.Put("Patterns", patterns)
	})
}

// convertItemList writes nested items. Items without a legacy name are dropped.
func (c *conversion) convertItemList(items []data.Item, tag *nbt.CompoundTag, key string) error {
	list := nbt.NewList(nbt.TypeCompound)
	for _, item := range items {
		name := c.itemName(item.ID)
		if name == "" {
			continue
		}
		saved := nbt.NewCompound()
		saved.PutString("id", name)
		saved.PutByte("Count", int8(item.Count))

		itemTag, err := c.fold(item)
		if err != nil {
			return err
		}
		saved.Put("tag", itemTag)
		list.MustAdd(saved)
	}
	tag.Put(key, list)
	return nil
}

func (c *conversion) convertBlockPredicates(v data.AdventureModePredicate, tag *nbt.CompoundTag, key string, hide int32) {
	list := nbt.NewList(nbt.TypeString)
	for _, p := range v.Predicates {
		if p.Holders == nil {
			continue
		}
		if p.Holders.HasTagKey() {
			list.MustAdd(nbt.StringTag(serializeBlockPredicate(p, "#"+p.Holders.TagKey)))
			continue
		}
		for _, id := range p.Holders.IDs {
			name := c.itemName(id)
			if name == "" {
				continue
			}
			list.MustAdd(nbt.StringTag(serializeBlockPredicate(p, name)))
		}
	}
	tag.Put(key, list)
	if !v.ShowInTooltip {
		putHideFlag(tag, hide)
	}
}

// serializeBlockPredicate renders id[name=value,...]{tag}. Range matchers
// have no legacy form and are left out.
func serializeBlockPredicate(p data.BlockPredicate, identifier string) string {
	var b strings.Builder
	b.WriteString(identifier)

	exact := 0
	for _, m := range p.PropertyMatchers {
		if !m.IsExact() {
			continue
		}
		if exact == 0 {
			b.WriteByte('[')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(m.Name)
		b.WriteByte('=')
		b.WriteString(*m.Value)
		exact++
	}
	if exact > 0 {
		b.WriteByte(']')
	}
	if p.Tag != nil {
		b.WriteString(p.Tag.String())
	}
	return b.String()
}

// convertTrim builds the Trim compound. A direct material or pattern whose
// backing item has no legacy name abandons the whole component.
func (c *conversion) convertTrim(v data.ArmorTrim) (*nbt.CompoundTag, bool) {
	trim := nbt.NewCompound()

	if v.Material.IsDirect() {
		m := v.Material.Value
		ingredient := c.itemName(m.ItemID)
		if ingredient == "" {
			return nil, false
		}
		mt := nbt.NewCompound()
		mt.PutString("asset_name", m.AssetName)
		mt.PutString("ingredient", ingredient)
		mt.PutFloat("item_model_index", m.ItemModelIndex)
		if len(m.OverrideArmorMaterials) > 0 {
			ids := make([]int32, 0, len(m.OverrideArmorMaterials))
			for id := range m.OverrideArmorMaterials {
				ids = append(ids, id)
			}
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			overrides := nbt.NewCompound()
			for _, id := range ids {
				overrides.PutString(strconv.Itoa(int(id)), m.OverrideArmorMaterials[id])
			}
			mt.Put("override_armor_materials", overrides)
		}
		trim.Put("material", mt)
	} else if key, ok := c.tables.IDToKey(mappings.DomainTrimMaterial, v.Material.ID); ok {
		trim.PutString("material", key)
	}

	if v.Pattern.IsDirect() {
		p := v.Pattern.Value
		template := c.itemName(p.ItemID)
		if template == "" {
			return nil, false
		}
		pt := nbt.NewCompound()
		pt.PutString("assetId", p.AssetName)
		pt.PutString("templateItem", template)
		if p.Description.Tag != nil {
			pt.Put("description", p.Description.Tag.Copy())
		}
		pt.PutBoolean("decal", p.Decal)
		trim.Put("pattern", pt)
	} else if key, ok := c.tables.IDToKey(mappings.DomainTrimPattern, v.Pattern.ID); ok {
		trim.PutString("pattern", key)
	}

	return trim, true
}

func (c *conversion) compactPattern(h data.Holder[data.BannerPattern]) (string, bool) {
	key := ""
	if h.IsDirect() {
		key = h.Value.AssetID
	} else if k, ok := c.tables.IDToKey(mappings.DomainBannerPattern, h.ID); ok {
		key = k
	}
	if key == "" {
		return "", false
	}
	return c.tables.CompactBannerPattern(key)
}
