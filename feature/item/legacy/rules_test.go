package legacy

import (
	"testing"

	"item-translator/core/data"
	"item-translator/core/mappings"
	"item-translator/core/nbt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func i32Ptr(v int32) *int32   { return &v }

func listStrings(t *testing.T, l *nbt.ListTag) []string {
	t.Helper()
	require.NotNil(t, l)
	out := make([]string, 0, l.Len())
	for _, item := range l.Items() {
		s, ok := item.(nbt.StringTag)
		require.True(t, ok)
		out = append(out, string(s))
	}
	return out
}

func compoundAt(t *testing.T, l *nbt.ListTag, i int) *nbt.CompoundTag {
	t.Helper()
	require.NotNil(t, l)
	require.Greater(t, l.Len(), i)
	c, ok := l.At(i).(*nbt.CompoundTag)
	require.True(t, ok)
	return c
}

// TestEnchantments_WindowCompaction tests the id shift around piercing (legacy id 2).
func TestEnchantments_WindowCompaction(t *testing.T) {
	cv := newTestConverter(false)
	tag := convert(t, cv, data.KeyEnchantments.Of(data.Enchantments{
		Levels: []data.EnchantmentLevel{
			{ID: 0, Level: 4}, // protection
			{ID: 2, Level: 1}, // piercing, the anchor itself
			{ID: 3, Level: 1}, // inside the window
			{ID: 4, Level: 1},
			{ID: 5, Level: 1},
			{ID: 6, Level: 1}, // anchor+4 -> legacy 3
			{ID: 7, Level: 3}, // -> legacy 4
			{ID: 40, Level: 1},
		},
		ShowInTooltip: true,
	}))

	list := tag.GetList("Enchantments")
	require.NotNil(t, list)
	require.Equal(t, 4, list.Len())
	want := []struct {
		id  string
		lvl int16
	}{{"protection", 4}, {"piercing", 1}, {"mending", 1}, {"unbreaking", 3}}
	for i, w := range want {
		e := compoundAt(t, list, i)
		assert.Equal(t, w.id, e.GetString("id"))
		assert.Equal(t, nbt.ShortTag(w.lvl), e.Get("lvl"))
	}
}

func TestEnchantments_NoAnchor(t *testing.T) {
	tables := fixtureTables()
	cv := New(tables, Options{})
	c := &conversion{cv: cv, tables: tables}

	id, ok := c.legacyEnchantmentID(1)
	assert.True(t, ok)
	assert.Equal(t, int32(1), id)

	noAnchor := New(mappingsWithoutPiercing(), Options{})
	c = noAnchor.begin()
	id, ok = c.legacyEnchantmentID(4)
	assert.True(t, ok, "no window applies without the anchor key")
	assert.Equal(t, int32(4), id)
}

func TestEnchantments_StoredAndGlint(t *testing.T) {
	cv := newTestConverter(false)
	glint := data.KeyEnchantmentGlintOverride.Of(true)
	ench := data.KeyEnchantments.Of(data.Enchantments{Levels: []data.EnchantmentLevel{{ID: 1, Level: 5}}, ShowInTooltip: true})

	for _, order := range [][]data.StructuredData{{glint, ench}, {ench, glint}} {
		tag := convert(t, cv, order...)
		list := tag.GetList("Enchantments")
		require.NotNil(t, list)
		assert.Equal(t, 2, list.Len(), "glint entry and sharpness both survive")
	}

	tag := convert(t, cv, data.KeyStoredEnchantments.Of(data.Enchantments{Levels: []data.EnchantmentLevel{{ID: 1, Level: 2}}}))
	stored := tag.GetList("StoredEnchantments")
	assert.Equal(t, "sharpness", compoundAt(t, stored, 0).GetString("id"))
	assert.Equal(t, int32(hideAdditional), tag.GetInt("HideFlags"))

	tag = convert(t, cv, data.KeyEnchantmentGlintOverride.Of(false))
	assert.False(t, tag.Contains("Enchantments"))
}

func TestAttributeModifiers(t *testing.T) {
	id := uuid.MustParse("00000001-0000-0002-0000-000300000004")
	tag := convert(t, newTestConverter(false), data.KeyAttributeModifiers.Of(data.AttributeModifiers{
		Modifiers: []data.AttributeModifier{
			{Attribute: 1, Modifier: data.ModifierData{ID: id, Name: "jump", Amount: 0.5, Operation: 1}, SlotType: 2},
			{Attribute: 99, Modifier: data.ModifierData{Name: "unknown"}},
		},
		ShowInTooltip: true,
	}))

	list := tag.GetList("AttributeModifiers")
	require.Equal(t, 1, list.Len())
	m := compoundAt(t, list, 0)
	assert.Equal(t, "horse.jump_strength", m.GetString("AttributeName"))
	assert.Equal(t, "jump", m.GetString("Name"))
	assert.Equal(t, 0.5, m.GetDouble("Amount"))
	assert.Equal(t, int32(2), m.GetInt("Slot"))
	assert.Equal(t, int32(1), m.GetInt("Operation"))
	assert.Equal(t, nbt.IntArrayTag{1, 2, 3, 4}, m.Get("UUID"))
}

func TestProfile(t *testing.T) {
	cv := newTestConverter(false)

	t.Run("name only collapses", func(t *testing.T) {
		tag := convert(t, cv, data.KeyProfile.Of(data.GameProfile{Name: strPtr("Notch")}))
		assert.Equal(t, nbt.StringTag("Notch"), tag.Get("SkullOwner"))
	})

	t.Run("empty name collapses", func(t *testing.T) {
		tag := convert(t, cv, data.KeyProfile.Of(data.GameProfile{Name: strPtr("")}))
		assert.Equal(t, nbt.StringTag(""), tag.Get("SkullOwner"))
	})

	t.Run("with id", func(t *testing.T) {
		id := uuid.MustParse("00000001-0000-0002-0000-000300000004")
		tag := convert(t, cv, data.KeyProfile.Of(data.GameProfile{
			Name: strPtr("Notch"),
			ID:   &id,
			Properties: []data.ProfileProperty{
				{Name: "textures", Value: "abc", Signature: strPtr("sig")},
				{Name: "textures", Value: "def"},
			},
		}))
		owner := tag.GetCompound("SkullOwner")
		require.NotNil(t, owner)
		assert.Equal(t, "Notch", owner.GetString("Name"))
		assert.Equal(t, nbt.IntArrayTag{1, 2, 3, 4}, owner.Get("Id"))
		textures := owner.GetCompound("Properties").GetList("textures")
		require.Equal(t, 2, textures.Len())
		assert.Equal(t, "sig", compoundAt(t, textures, 0).GetString("Signature"))
		assert.False(t, compoundAt(t, textures, 1).Contains("Signature"))
	})

	t.Run("properties without name", func(t *testing.T) {
		tag := convert(t, cv, data.KeyProfile.Of(data.GameProfile{Properties: []data.ProfileProperty{{Name: "textures", Value: "v"}}}))
		owner := tag.GetCompound("SkullOwner")
		require.NotNil(t, owner)
		assert.False(t, owner.Contains("Name"))
	})
}

func TestBlockPredicates(t *testing.T) {
	cv := newTestConverter(false)
	raw := nbt.NewCompound()
	raw.PutInt("a", 1)

	tag := convert(t, cv, data.KeyCanPlaceOn.Of(data.AdventureModePredicate{
		Predicates: []data.BlockPredicate{
			{Holders: &data.HolderSet{TagKey: "foo:bar"}},
			{
				Holders: &data.HolderSet{IDs: []int32{1, 50, 2}},
				PropertyMatchers: []data.StatePropertyMatcher{
					{Name: "facing", Value: strPtr("north")},
					{Name: "age", Range: &data.RangedMatcher{Min: strPtr("1")}},
					{Name: "lit", Value: strPtr("true")},
				},
				Tag: raw,
			},
			{Tag: raw},
		},
		ShowInTooltip: true,
	}))

	assert.Equal(t, []string{
		"#foo:bar",
		"minecraft:stone[facing=north,lit=true]{a:1}",
		"minecraft:diamond[facing=north,lit=true]{a:1}",
	}, listStrings(t, tag.GetList("CanPlaceOn")))
	assert.False(t, tag.Contains("HideFlags"))
}

func TestItemLists(t *testing.T) {
	cv := newTestConverter(false)
	inner := data.Item{ID: 1, Count: 3, Data: []data.StructuredData{data.KeyDamage.Of(5), data.KeyLore.Removed()}}
	unknown := data.Item{ID: 50, Count: 1}

	tests := []struct {
		name  string
		entry data.StructuredData
		key   string
	}{
		{"container", data.KeyContainer.Of([]data.Item{inner, unknown}), "Items"},
		{"bundle", data.KeyBundleContents.Of([]data.Item{unknown, inner}), "Items"},
		{"charged projectiles", data.KeyChargedProjectiles.Of([]data.Item{inner}), "ChargedProjectiles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := convert(t, cv, tt.entry)
			list := tag.GetList(tt.key)
			require.Equal(t, 1, list.Len())
			saved := compoundAt(t, list, 0)
			assert.Equal(t, "minecraft:stone", saved.GetString("id"))
			assert.Equal(t, nbt.ByteTag(3), saved.Get("Count"))
			assert.Equal(t, int32(5), saved.GetCompound("tag").GetInt("Damage"))
			assert.Equal(t, 1, saved.GetCompound("tag").Len())
		})
	}
}

func TestTrim(t *testing.T) {
	cv := newTestConverter(false)
	direct := data.ArmorTrimMaterial{
		AssetName:              "amethyst",
		ItemID:                 2,
		ItemModelIndex:         0.5,
		OverrideArmorMaterials: map[int32]string{3: "diamond_darker", 1: "iron_darker"},
	}
	pattern := data.ArmorTrimPattern{
		AssetName:   "minecraft:coast",
		ItemID:      3,
		Description: data.TagOf(nbt.StringTag("Coast")),
		Decal:       true,
	}

	t.Run("by reference", func(t *testing.T) {
		tag := convert(t, cv, data.KeyTrim.Of(data.ArmorTrim{
			Material:      data.HolderOf[data.ArmorTrimMaterial](1),
			Pattern:       data.HolderOf[data.ArmorTrimPattern](1),
			ShowInTooltip: true,
		}))
		trim := tag.GetCompound("Trim")
		require.NotNil(t, trim)
		assert.Equal(t, "iron", trim.GetString("material"))
		assert.Equal(t, "dune", trim.GetString("pattern"))
	})

	t.Run("unknown references are omitted", func(t *testing.T) {
		tag := convert(t, cv, data.KeyTrim.Of(data.ArmorTrim{
			Material: data.HolderOf[data.ArmorTrimMaterial](9),
			Pattern:  data.HolderOf[data.ArmorTrimPattern](9),
		}))
		trim := tag.GetCompound("Trim")
		require.NotNil(t, trim)
		assert.Equal(t, 0, trim.Len())
	})

	t.Run("direct", func(t *testing.T) {
		tag := convert(t, cv, data.KeyTrim.Of(data.ArmorTrim{
			Material: data.DirectHolder(direct),
			Pattern:  data.DirectHolder(pattern),
		}))
		trim := tag.GetCompound("Trim")
		require.NotNil(t, trim)
		m := trim.GetCompound("material")
		assert.Equal(t, "amethyst", m.GetString("asset_name"))
		assert.Equal(t, "minecraft:diamond", m.GetString("ingredient"))
		assert.Equal(t, nbt.FloatTag(0.5), m.Get("item_model_index"))
		assert.Equal(t, []string{"1", "3"}, m.GetCompound("override_armor_materials").Keys())
		p := trim.GetCompound("pattern")
		assert.Equal(t, "minecraft:coast", p.GetString("assetId"))
		assert.Equal(t, "minecraft:stick", p.GetString("templateItem"))
		assert.Equal(t, nbt.StringTag("Coast"), p.Get("description"))
		assert.True(t, p.GetBoolean("decal"))
		assert.Equal(t, int32(hideArmorTrim), tag.GetInt("HideFlags"))
	})

	t.Run("unresolvable backing item abandons the trim", func(t *testing.T) {
		bad := direct
		bad.ItemID = 50
		tag := convert(t, cv,
			data.KeyTrim.Of(data.ArmorTrim{Material: data.DirectHolder(bad), Pattern: data.HolderOf[data.ArmorTrimPattern](0)}),
			data.KeyDamage.Of(2),
		)
		assert.False(t, tag.Contains("Trim"))
		assert.False(t, tag.Contains("HideFlags"))
		assert.Equal(t, int32(2), tag.GetInt("Damage"), "other components still convert")

		badPattern := pattern
		badPattern.ItemID = 50
		tag = convert(t, cv, data.KeyTrim.Of(data.ArmorTrim{Material: data.DirectHolder(direct), Pattern: data.DirectHolder(badPattern)}))
		assert.False(t, tag.Contains("Trim"))
	})
}

func TestBannerPatterns(t *testing.T) {
	tag := convert(t, newTestConverter(false), data.KeyBannerPatterns.Of([]data.BannerPatternLayer{
		{Pattern: data.HolderOf[data.BannerPattern](1), DyeColor: 4},
		{Pattern: data.HolderOf[data.BannerPattern](2), DyeColor: 1},  // no compact code
		{Pattern: data.HolderOf[data.BannerPattern](77), DyeColor: 1}, // no key
		{Pattern: data.DirectHolder(data.BannerPattern{AssetID: "minecraft:base"}), DyeColor: 9},
	}))

	list := tag.GetList("Patterns")
	require.Equal(t, 2, list.Len())
	assert.Equal(t, "bl", compoundAt(t, list, 0).GetString("Pattern"))
	assert.Equal(t, int32(4), compoundAt(t, list, 0).GetInt("Color"))
	assert.Equal(t, "b", compoundAt(t, list, 1).GetString("Pattern"))
}

// TestPotionContents_UnknownEffectKeepsDetails tests that only the id is dropped.
func TestPotionContents_UnknownEffectKeepsDetails(t *testing.T) {
	tag := convert(t, newTestConverter(false), data.KeyPotionContents.Of(data.PotionContents{
		Potion:      i32Ptr(1),
		CustomColor: i32Ptr(0x00FF00),
		CustomEffects: []data.PotionEffect{
			{Effect: 99, Data: data.PotionEffectData{Amplifier: 2, Duration: 200, Ambient: true, ShowParticles: true, ShowIcon: false}},
			{Effect: 0, Data: data.PotionEffectData{Duration: 20}},
		},
	}))

	assert.Equal(t, "swiftness", tag.GetString("Potion"))
	assert.Equal(t, int32(0x00FF00), tag.GetInt("CustomPotionColor"))
	effects := tag.GetList("custom_potion_effects")
	require.Equal(t, 2, effects.Len())

	e := compoundAt(t, effects, 0)
	assert.False(t, e.Contains("id"))
	assert.Equal(t, nbt.ByteTag(2), e.Get("amplifier"))
	assert.Equal(t, int32(200), e.GetInt("duration"))
	assert.True(t, e.GetBoolean("ambient"))
	assert.True(t, e.GetBoolean("show_particles"))
	assert.Equal(t, nbt.ByteTag(0), e.Get("show_icon"))

	assert.Equal(t, "speed", compoundAt(t, effects, 1).GetString("id"))
}

func TestSuspiciousStewAndInstrument(t *testing.T) {
	cv := newTestConverter(false)
	tag := convert(t, cv,
		data.KeySuspiciousStewEffects.Of([]data.SuspiciousStewEffect{{MobEffect: 1, Duration: 60}, {MobEffect: 42, Duration: 5}}),
		data.KeyInstrument.Of(data.HolderOf[data.Instrument](0)),
	)
	effects := tag.GetList("effects")
	require.Equal(t, 2, effects.Len())
	assert.Equal(t, "slowness", compoundAt(t, effects, 0).GetString("id"))
	assert.False(t, compoundAt(t, effects, 1).Contains("id"))
	assert.Equal(t, "ponder_goat_horn", tag.GetString("instrument"))

	tag = convert(t, cv, data.KeyInstrument.Of(data.DirectHolder(data.Instrument{SoundEvent: "x"})))
	assert.False(t, tag.Contains("instrument"))
}

func TestMapComponents(t *testing.T) {
	cv := newTestConverter(false)
	decorations := nbt.NewCompound()
	frame := nbt.NewCompound()
	frame.PutString("type", "minecraft:frame")
	frame.PutDouble("x", 1.5)
	frame.PutDouble("z", -2)
	frame.PutFloat("rotation", 90)
	decorations.Put("frame-1", frame)
	unknown := nbt.NewCompound()
	unknown.PutString("type", "minecraft:trial_chambers")
	decorations.Put("tc", unknown)

	tag := convert(t, cv,
		data.KeyMapID.Of(12),
		data.KeyMapColor.Of(0x123456),
		data.KeyMapDecorations.Of(decorations),
	)
	assert.Equal(t, int32(12), tag.GetInt("map"))
	assert.Equal(t, int32(0x123456), tag.GetCompound("display").GetInt("MapColor"))
	list := tag.GetList("Decorations")
	require.Equal(t, 1, list.Len())
	d := compoundAt(t, list, 0)
	assert.Equal(t, "frame-1", d.GetString("id"))
	assert.Equal(t, int32(1), d.GetInt("type"))
	assert.Equal(t, 1.5, d.GetDouble("x"))
	assert.Equal(t, -2.0, d.GetDouble("z"))
	assert.Equal(t, float32(90), d.GetFloat("rot"))
}

func TestMapPostProcessing(t *testing.T) {
	cv := newTestConverter(false)
	tests := []struct {
		name  string
		value *int32
		check func(t *testing.T, tag *nbt.CompoundTag)
	}{
		{"lock", i32Ptr(0), func(t *testing.T, tag *nbt.CompoundTag) {
			assert.True(t, tag.GetBoolean("map_to_lock"))
			assert.False(t, tag.Contains("map_scale_direction"))
		}},
		{"scale", i32Ptr(1), func(t *testing.T, tag *nbt.CompoundTag) {
			assert.Equal(t, int32(1), tag.GetInt("map_scale_direction"))
			assert.False(t, tag.Contains("map_to_lock"))
		}},
		{"other", i32Ptr(5), func(t *testing.T, tag *nbt.CompoundTag) { assert.Equal(t, 0, tag.Len()) }},
		{"none", nil, func(t *testing.T, tag *nbt.CompoundTag) { assert.Equal(t, 0, tag.Len()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, convert(t, cv, data.KeyMapPostProcessing.Of(tt.value)))
		})
	}
}

func TestBooks(t *testing.T) {
	cv := newTestConverter(false)

	tag := convert(t, cv, data.KeyWritableBookContent.Of([]data.FilterableString{
		{Raw: "one"},
		{Raw: "two", Filtered: strPtr("t*o")},
	}))
	assert.Equal(t, []string{"one", "two"}, listStrings(t, tag.GetList("pages")))
	assert.Equal(t, []string{"1"}, tag.GetCompound("filtered_pages").Keys())

	tag = convert(t, cv, data.KeyWrittenBookContent.Of(data.WrittenBook{
		Title:      data.FilterableString{Raw: "Title", Filtered: strPtr("T")},
		Author:     "Alex",
		Generation: 1,
		Pages: []data.FilterableComponent{
			{Raw: data.TagOf(nbt.StringTag("page"))},
		},
		Resolved: true,
	}))
	assert.Equal(t, []string{`"page"`}, listStrings(t, tag.GetList("pages")))
	assert.Equal(t, "Alex", tag.GetString("author"))
	assert.Equal(t, int32(1), tag.GetInt("generation"))
	assert.True(t, tag.GetBoolean("resolved"))
	assert.Equal(t, "Title", tag.GetString("title"))
	assert.Equal(t, "T", tag.GetString("filtered_title"))
}

func TestLodestoneAndFireworks(t *testing.T) {
	cv := newTestConverter(false)

	tag := convert(t, cv, data.KeyLodestoneTracker.Of(data.LodestoneTracker{
		Pos:     &data.GlobalPosition{Dimension: "minecraft:overworld", X: 1, Y: 64, Z: -3},
		Tracked: true,
	}))
	pos := tag.GetCompound("LodestonePos")
	require.NotNil(t, pos)
	assert.Equal(t, int32(64), pos.GetInt("Y"))
	assert.Equal(t, "minecraft:overworld", tag.GetString("LodestoneDimension"))
	assert.True(t, tag.GetBoolean("LodestoneTracked"))

	tag = convert(t, cv, data.KeyLodestoneTracker.Of(data.LodestoneTracker{Tracked: false}))
	assert.Equal(t, []string{"LodestoneTracked"}, tag.Keys())

	explosion := data.FireworkExplosion{Shape: 1, Colors: []int32{5}, FadeColors: []int32{6, 7}, HasTrail: true}
	tag = convert(t, cv,
		data.KeyFireworks.Of(data.Fireworks{FlightDuration: 2, Explosions: []data.FireworkExplosion{explosion}}),
		data.KeyFireworkExplosion.Of(explosion),
	)
	fw := tag.GetCompound("Fireworks")
	require.NotNil(t, fw)
	assert.Equal(t, int32(2), fw.GetInt("Flight"))
	e := compoundAt(t, fw.GetList("Explosions"), 0)
	assert.Equal(t, nbt.IntArrayTag{6, 7}, e.Get("FadeColors"))
	assert.True(t, e.GetBoolean("Trail"))
	assert.False(t, e.GetBoolean("Flicker"))
	assert.Equal(t, int32(1), tag.GetCompound("Explosion").GetInt("Type"))
}

func TestBlockEntityComponents(t *testing.T) {
	cv := newTestConverter(false)
	beeData := nbt.NewCompound()
	beeData.PutString("id", "minecraft:bee")

	tag := convert(t, cv,
		data.KeyBees.Of([]data.Bee{{EntityData: beeData, TicksInHive: 10, MinTicksInHive: 600}}),
		data.KeyPotDecorations.Of(data.PotDecorations{ItemIDs: []int32{3, 50, 1, 3}}),
		data.KeyBlockState.Of(data.BlockStateProperties{Properties: map[string]string{"waterlogged": "true", "facing": "east"}}),
	)
	be := tag.GetCompound("BlockEntityTag")
	require.NotNil(t, be)
	bee := compoundAt(t, be.GetList("Bees"), 0)
	assert.Equal(t, "minecraft:bee", bee.GetCompound("EntityData").GetString("id"))
	assert.Equal(t, int32(600), bee.GetInt("MinOccupationTicks"))
	assert.Equal(t, []string{"minecraft:stick", "", "minecraft:stone", "minecraft:stick"}, listStrings(t, be.GetList("sherds")))

	state := tag.GetCompound("BlockStateTag")
	assert.Equal(t, []string{"facing", "waterlogged"}, state.Keys())
}

func TestRawTagComponents(t *testing.T) {
	cv := newTestConverter(false)
	bucket := nbt.NewCompound()
	bucket.PutFloat("Health", 3)
	bucket.PutInt("Variant", 2)
	bucket.PutString("Ignored", "x")
	loot := nbt.NewCompound()
	loot.PutString("loot_table", "minecraft:chests/simple_dungeon")
	loot.PutLong("loot_table_seed", 42)
	debug := nbt.NewCompound()
	debug.PutString("minecraft:oak_stairs", "facing")
	recipes := nbt.NewList(nbt.TypeString)
	recipes.MustAdd(nbt.StringTag("minecraft:bread"))

	tag := convert(t, cv,
		data.KeyBucketEntityData.Of(bucket),
		data.KeyContainerLoot.Of(loot),
		data.KeyDebugStickState.Of(debug),
		data.KeyRecipes.Of(data.TagOf(recipes)),
		data.KeyCreativeSlotLock.Of(data.Unit{}),
		data.KeyCustomData.Of(nbt.NewCompound()),
		data.KeyBaseColor.Of(11),
	)
	assert.Equal(t, float32(3), tag.GetFloat("Health"))
	assert.Equal(t, int32(2), tag.GetInt("Variant"))
	assert.False(t, tag.Contains("Ignored"))
	assert.Equal(t, "minecraft:chests/simple_dungeon", tag.GetString("LootTable"))
	assert.Equal(t, nbt.LongTag(42), tag.Get("LootTableSeed"))
	assert.Equal(t, "facing", tag.GetCompound("DebugProperty").GetString("minecraft:oak_stairs"))
	assert.Equal(t, 1, tag.GetList("Recipes").Len())
	assert.Equal(t, 0, tag.GetCompound("CustomCreativeLock").Len())
	assert.Equal(t, int32(11), tag.GetInt("Base"))
}

func TestUUIDToIntArray(t *testing.T) {
	id := uuid.MustParse("ffffffff-0000-0001-8000-000000000002")
	assert.Equal(t, []int32{-1, 1, -2147483648, 2}, uuidToIntArray(id))
}

func mappingsWithoutPiercing() *mappings.Tables {
	return mappings.NewBuilder("test").
		Keys(mappings.DomainEnchantment, "protection", "sharpness").
		Build()
}
