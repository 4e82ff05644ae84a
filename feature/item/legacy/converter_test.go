package legacy

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"item-translator/core/data"
	"item-translator/core/mappings"
	"item-translator/core/nbt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTables mirrors the shape of the real tables: the legacy enchantment
// registry lacks the three ids inserted after piercing.
func fixtureTables() *mappings.Tables {
	return mappings.NewBuilder("test").
		Keys(mappings.DomainEnchantment, "protection", "sharpness", "piercing", "mending", "unbreaking").
		Keys(mappings.DomainAttribute, "generic.max_health", "generic.jump_strength", "generic.armor").
		Keys(mappings.DomainPotion, "water", "swiftness").
		Keys(mappings.DomainPotionEffect, "speed", "slowness").
		Keys(mappings.DomainInstrument, "ponder_goat_horn").
		Keys(mappings.DomainBannerPattern, "base", "square_bottom_left", "globe").
		Keys(mappings.DomainTrimMaterial, "quartz", "iron").
		Keys(mappings.DomainTrimPattern, "sentry", "dune").
		Keys(mappings.DomainMapDecoration, "player", "frame").
		Keys(mappings.DomainItem, "air", "stone", "diamond", "stick").
		Item(1, 1).
		Item(2, 2).
		Item(3, 3).
		BannerPattern("base", "b").
		BannerPattern("square_bottom_left", "bl").
		Build()
}

func newTestConverter(preserve bool) *Converter {
	return New(fixtureTables(), Options{PreserveInconvertibleData: preserve})
}

func convert(t *testing.T, cv *Converter, entries ...data.StructuredData) *nbt.CompoundTag {
	t.Helper()
	tag, err := cv.Convert(data.Item{ID: 1, Count: 1, Data: entries})
	require.NoError(t, err)
	return tag
}

func toJSON(t *testing.T, tag *nbt.CompoundTag) string {
	t.Helper()
	b, err := json.Marshal(tag)
	require.NoError(t, err)
	return string(b)
}

// TestNew_RegistersEveryKind tests that the registry covers the closed kind set.
func TestNew_RegistersEveryKind(t *testing.T) {
	cv := newTestConverter(false)
	assert.NoError(t, cv.Validate())
	for _, k := range data.Kinds() {
		assert.NotNil(t, cv.lookup(k), "missing rule for %s", k)
	}
	assert.Nil(t, cv.lookup(data.KindCount))
}

func TestRegister_DuplicatePanics(t *testing.T) {
	cv := &Converter{source: fixtureTables()}
	putInt(cv, data.KeyDamage, "Damage")
	assert.Panics(t, func() { putInt(cv, data.KeyDamage, "Damage") })
}

func TestValidate_NamesMissingKinds(t *testing.T) {
	cv := &Converter{source: fixtureTables()}
	registerScalarRules(cv)

	err := cv.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingConverter))
	assert.Contains(t, err.Error(), "enchantments")
	assert.NotContains(t, err.Error(), "repair_cost")
}

func TestConvert_MissingConverter(t *testing.T) {
	cv := &Converter{source: fixtureTables()}
	registerContentRules(cv)

	_, err := cv.Convert(data.Item{Data: []data.StructuredData{data.KeyDamage.Of(1)}})
	assert.True(t, errors.Is(err, ErrMissingConverter))
	assert.ErrorContains(t, err, "damage")

	nested := data.Item{ID: 1, Count: 1, Data: []data.StructuredData{data.KeyDamage.Of(1)}}
	_, err = cv.Convert(data.Item{Data: []data.StructuredData{data.KeyContainer.Of([]data.Item{nested})}})
	assert.True(t, errors.Is(err, ErrMissingConverter), "nested items propagate the failure")
}

func TestConvert_CustomDataSeedsDocument(t *testing.T) {
	cv := newTestConverter(false)
	custom := nbt.NewCompound()
	bukkit := nbt.NewCompound()
	bukkit.PutString("plugin:owner", "alice")
	custom.Put("PublicBukkitValues", bukkit)
	custom.PutInt("Damage", 99)

	tag := convert(t, cv, data.KeyCustomData.Of(custom), data.KeyDamage.Of(3))
	assert.Equal(t, "alice", tag.GetCompound("PublicBukkitValues").GetString("plugin:owner"))
	assert.Equal(t, int32(3), tag.GetInt("Damage"), "later entries overwrite custom keys")
	assert.Equal(t, int32(99), custom.GetInt("Damage"), "the source compound is untouched")

	t.Run("nested items", func(t *testing.T) {
		inner := data.Item{ID: 1, Count: 1, Data: []data.StructuredData{data.KeyCustomData.Of(custom), data.KeyRepairCost.Of(2)}}
		tag := convert(t, cv, data.KeyBundleContents.Of([]data.Item{inner}))
		saved := compoundAt(t, tag.GetList("Items"), 0).GetCompound("tag")
		require.NotNil(t, saved)
		assert.Equal(t, "alice", saved.GetCompound("PublicBukkitValues").GetString("plugin:owner"))
		assert.Equal(t, int32(2), saved.GetInt("RepairCost"))
	})

	t.Run("removed custom_data", func(t *testing.T) {
		tag := convert(t, cv, data.KeyCustomData.Removed())
		assert.Zero(t, tag.Len())
	})
}

func TestConvertWith_UsesGivenSnapshot(t *testing.T) {
	cv := newTestConverter(false)
	other := mappings.NewBuilder("other").
		Keys(mappings.DomainItem, "air", "gold_ingot").
		Item(1, 1).
		Build()

	inner := data.Item{ID: 1, Count: 1}
	tag, err := cv.ConvertWith(other, data.Item{ID: 1, Count: 1, Data: []data.StructuredData{data.KeyContainer.Of([]data.Item{inner})}})
	require.NoError(t, err)
	assert.Equal(t, "minecraft:gold_ingot", compoundAt(t, tag.GetList("Items"), 0).GetString("id"))
}

func TestConvert_EmptyItem(t *testing.T) {
	cv := newTestConverter(true)

	tag := convert(t, cv)
	assert.Equal(t, 0, tag.Len())
	assert.False(t, tag.Contains("HideFlags"))

	tag = convert(t, cv, data.KeyDamage.Removed(), data.KeyHideTooltip.Removed())
	assert.Equal(t, 0, tag.Len(), "removed entries are skipped")
}

// TestConvert_HideFlags tests that each hidden component sets exactly its bit.
func TestConvert_HideFlags(t *testing.T) {
	cv := newTestConverter(false)
	trim := data.ArmorTrim{
		Material: data.HolderOf[data.ArmorTrimMaterial](0),
		Pattern:  data.HolderOf[data.ArmorTrimPattern](0),
	}
	tests := []struct {
		name  string
		entry data.StructuredData
		want  int32
	}{
		{"enchantments", data.KeyEnchantments.Of(data.Enchantments{}), 1},
		{"attribute modifiers", data.KeyAttributeModifiers.Of(data.AttributeModifiers{}), 2},
		{"unbreakable", data.KeyUnbreakable.Of(data.Unbreakable{}), 4},
		{"can break", data.KeyCanBreak.Of(data.AdventureModePredicate{}), 8},
		{"can place on", data.KeyCanPlaceOn.Of(data.AdventureModePredicate{}), 16},
		{"stored enchantments", data.KeyStoredEnchantments.Of(data.Enchantments{}), 32},
		{"hide additional tooltip", data.KeyHideAdditionalTooltip.Of(data.Unit{}), 32},
		{"dyed color", data.KeyDyedColor.Of(data.DyedColor{RGB: 0xFF0000}), 64},
		{"trim", data.KeyTrim.Of(trim), 128},
		{"hide tooltip", data.KeyHideTooltip.Of(data.Unit{}), 0xFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := convert(t, cv, tt.entry)
			assert.Equal(t, tt.want, tag.GetInt("HideFlags"))
		})
	}

	t.Run("accumulates", func(t *testing.T) {
		tag := convert(t, cv,
			data.KeyUnbreakable.Of(data.Unbreakable{}),
			data.KeyDyedColor.Of(data.DyedColor{}),
			data.KeyEnchantments.Of(data.Enchantments{}),
		)
		assert.Equal(t, int32(4|64|1), tag.GetInt("HideFlags"))
	})

	t.Run("shown components leave flags alone", func(t *testing.T) {
		tag := convert(t, cv,
			data.KeyUnbreakable.Of(data.Unbreakable{ShowInTooltip: true}),
			data.KeyEnchantments.Of(data.Enchantments{ShowInTooltip: true}),
		)
		assert.False(t, tag.Contains("HideFlags"))
	})
}

// TestConvert_Backup tests the preserve policy for components without a legacy form.
func TestConvert_Backup(t *testing.T) {
	tests := []struct {
		name  string
		entry data.StructuredData
		key   string
	}{
		{"max stack size", data.KeyMaxStackSize.Of(16), "max_stack_size"},
		{"max damage", data.KeyMaxDamage.Of(100), "max_damage"},
		{"rarity", data.KeyRarity.Of(2), "rarity"},
		{"ominous bottle amplifier", data.KeyOminousBottleAmplifier.Of(3), "ominous_bottle_amplifier"},
		{"fire resistant", data.KeyFireResistant.Of(data.Unit{}), "fire_resistant"},
		{"intangible projectile", data.KeyIntangibleProjectile.Of(data.TagOf(nbt.NewCompound())), "intangible_projectile"},
		{"hide tooltip", data.KeyHideTooltip.Of(data.Unit{}), "hide_tooltip"},
		{"glint override", data.KeyEnchantmentGlintOverride.Of(false), "enchantment_glint_override"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := convert(t, newTestConverter(true), tt.entry)
			backup := tag.GetCompound(BackupTagKey)
			require.NotNil(t, backup)
			assert.True(t, backup.Contains(tt.key))

			tag = convert(t, newTestConverter(false), tt.entry)
			assert.False(t, tag.Contains(BackupTagKey))
		})
	}

	t.Run("values", func(t *testing.T) {
		tag := convert(t, newTestConverter(true), data.KeyMaxStackSize.Of(16), data.KeyFireResistant.Of(data.Unit{}))
		backup := RemoveBackupTag(tag)
		require.NotNil(t, backup)
		assert.Equal(t, int32(16), backup.GetInt("max_stack_size"))
		assert.True(t, backup.GetBoolean("fire_resistant"))
		assert.False(t, tag.Contains(BackupTagKey))
		assert.Nil(t, RemoveBackupTag(tag))
	})

	t.Run("food and tool write nothing", func(t *testing.T) {
		tag := convert(t, newTestConverter(true),
			data.KeyFood.Of(data.FoodProperties{Nutrition: 4}),
			data.KeyTool.Of(data.ToolProperties{DefaultMiningSpeed: 1}),
		)
		assert.Equal(t, 0, tag.Len())
	})
}

// TestConvert_SharedSubTreesOrderIndependent tests that rules sharing the
// display and BlockEntityTag sub-trees agree in any order.
func TestConvert_SharedSubTreesOrderIndependent(t *testing.T) {
	cv := newTestConverter(false)
	raw := nbt.NewCompound()
	raw.PutString("Lock", "from-raw")
	raw.PutInt("Extra", 1)

	entries := []data.StructuredData{
		data.KeyLore.Of([]data.TagValue{data.TagOf(nbt.StringTag("line"))}),
		data.KeyItemName.Of(data.TagOf(nbt.StringTag("Default"))),
		data.KeyCustomName.Of(data.TagOf(nbt.StringTag("Custom"))),
		data.KeyDyedColor.Of(data.DyedColor{RGB: 7, ShowInTooltip: true}),
		data.KeyBlockEntityData.Of(raw),
		data.KeyLock.Of(data.TagOf(nbt.StringTag("from-component"))),
		data.KeyNoteBlockSound.Of("harp"),
	}
	reversed := make([]data.StructuredData, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	forward := convert(t, cv, entries...)
	backward := convert(t, cv, reversed...)
	assert.JSONEq(t, toJSON(t, forward), toJSON(t, backward))

	display := forward.GetCompound("display")
	require.NotNil(t, display)
	assert.Equal(t, `"Custom"`, display.GetString("Name"))
	assert.Equal(t, int32(7), display.GetInt("color"))

	be := forward.GetCompound("BlockEntityTag")
	require.NotNil(t, be)
	assert.Equal(t, "from-component", be.GetString("Lock"))
	assert.Equal(t, int32(1), be.GetInt("Extra"))
	assert.Equal(t, "harp", be.GetString("note_block_sound"))
}

func TestConvert_ItemNameWithoutCustomName(t *testing.T) {
	tag := convert(t, newTestConverter(false), data.KeyItemName.Of(data.TagOf(nbt.StringTag("Default"))))
	assert.Equal(t, `"Default"`, tag.GetCompound("display").GetString("Name"))
}

func TestConvert_DoesNotAliasInput(t *testing.T) {
	raw := nbt.NewCompound()
	raw.PutInt("a", 1)
	tag := convert(t, newTestConverter(false), data.KeyEntityData.Of(raw))

	raw.PutInt("a", 2)
	assert.Equal(t, int32(1), tag.GetCompound("EntityTag").GetInt("a"))
}

func TestConvert_Concurrent(t *testing.T) {
	cv := newTestConverter(true)
	item := data.Item{ID: 1, Count: 1, Data: []data.StructuredData{
		data.KeyEnchantments.Of(data.Enchantments{Levels: []data.EnchantmentLevel{{ID: 0, Level: 2}, {ID: 6, Level: 1}}}),
		data.KeyCustomName.Of(data.TagOf(nbt.StringTag("x"))),
		data.KeyMaxStackSize.Of(1),
	}}
	want, err := cv.Convert(item)
	require.NoError(t, err)
	wantJSON := toJSON(t, want)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := cv.Convert(item)
			if err == nil {
				b, _ := json.Marshal(got)
				results[i] = string(b)
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.JSONEq(t, wantJSON, r)
	}
}

func TestWriteToTag(t *testing.T) {
	cv := newTestConverter(false)
	tag := nbt.NewCompound()
	require.NoError(t, cv.WriteToTag(data.KeyRepairCost.Of(3), tag))
	require.NoError(t, cv.WriteToTag(data.KeyRepairCost.Removed(), tag))
	assert.Equal(t, int32(3), tag.GetInt("RepairCost"))
	assert.Equal(t, 1, tag.Len())
}
