package data

// Kind identifies one component type of the source protocol.
// The set is closed: every kind is declared here and nowhere else.
type Kind int

const (
	KindCustomData Kind = iota
	KindMaxStackSize
	KindMaxDamage
	KindDamage
	KindUnbreakable
	KindCustomName
	KindItemName
	KindLore
	KindRarity
	KindEnchantments
	KindCanPlaceOn
	KindCanBreak
	KindAttributeModifiers
	KindCustomModelData
	KindHideAdditionalTooltip
	KindHideTooltip
	KindRepairCost
	KindCreativeSlotLock
	KindEnchantmentGlintOverride
	KindIntangibleProjectile
	KindFood
	KindFireResistant
	KindTool
	KindStoredEnchantments
	KindDyedColor
	KindMapColor
	KindMapID
	KindMapDecorations
	KindMapPostProcessing
	KindChargedProjectiles
	KindBundleContents
	KindPotionContents
	KindSuspiciousStewEffects
	KindWritableBookContent
	KindWrittenBookContent
	KindTrim
	KindDebugStickState
	KindEntityData
	KindBucketEntityData
	KindBlockEntityData
	KindInstrument
	KindOminousBottleAmplifier
	KindRecipes
	KindLodestoneTracker
	KindFireworkExplosion
	KindFireworks
	KindProfile
	KindNoteBlockSound
	KindBannerPatterns
	KindBaseColor
	KindPotDecorations
	KindContainer
	KindBlockState
	KindBees
	KindLock
	KindContainerLoot

	// KindCount is the number of declared kinds.
	KindCount
)

var kindNames = [KindCount]string{
	KindCustomData:               "custom_data",
	KindMaxStackSize:             "max_stack_size",
	KindMaxDamage:                "max_damage",
	KindDamage:                   "damage",
	KindUnbreakable:              "unbreakable",
	KindCustomName:               "custom_name",
	KindItemName:                 "item_name",
	KindLore:                     "lore",
	KindRarity:                   "rarity",
	KindEnchantments:             "enchantments",
	KindCanPlaceOn:               "can_place_on",
	KindCanBreak:                 "can_break",
	KindAttributeModifiers:       "attribute_modifiers",
	KindCustomModelData:          "custom_model_data",
	KindHideAdditionalTooltip:    "hide_additional_tooltip",
	KindHideTooltip:              "hide_tooltip",
	KindRepairCost:               "repair_cost",
	KindCreativeSlotLock:         "creative_slot_lock",
	KindEnchantmentGlintOverride: "enchantment_glint_override",
	KindIntangibleProjectile:     "intangible_projectile",
	KindFood:                     "food",
	KindFireResistant:            "fire_resistant",
	KindTool:                     "tool",
	KindStoredEnchantments:       "stored_enchantments",
	KindDyedColor:                "dyed_color",
	KindMapColor:                 "map_color",
	KindMapID:                    "map_id",
	KindMapDecorations:           "map_decorations",
	KindMapPostProcessing:        "map_post_processing",
	KindChargedProjectiles:       "charged_projectiles",
	KindBundleContents:           "bundle_contents",
	KindPotionContents:           "potion_contents",
	KindSuspiciousStewEffects:    "suspicious_stew_effects",
	KindWritableBookContent:      "writable_book_content",
	KindWrittenBookContent:       "written_book_content",
	KindTrim:                     "trim",
	KindDebugStickState:          "debug_stick_state",
	KindEntityData:               "entity_data",
	KindBucketEntityData:         "bucket_entity_data",
	KindBlockEntityData:          "block_entity_data",
	KindInstrument:               "instrument",
	KindOminousBottleAmplifier:   "ominous_bottle_amplifier",
	KindRecipes:                  "recipes",
	KindLodestoneTracker:         "lodestone_tracker",
	KindFireworkExplosion:        "firework_explosion",
	KindFireworks:                "fireworks",
	KindProfile:                  "profile",
	KindNoteBlockSound:           "note_block_sound",
	KindBannerPatterns:           "banner_patterns",
	KindBaseColor:                "base_color",
	KindPotDecorations:           "pot_decorations",
	KindContainer:                "container",
	KindBlockState:               "block_state",
	KindBees:                     "bees",
	KindLock:                     "lock",
	KindContainerLoot:            "container_loot",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, KindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// String returns the stable component name, e.g. "max_stack_size".
func (k Kind) String() string {
	if k >= 0 && k < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// KindByName resolves a component name. A "minecraft:" namespace is accepted.
func KindByName(name string) (Kind, bool) {
	k, ok := kindsByName[stripNamespace(name)]
	return k, ok
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, KindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

func stripNamespace(name string) string {
	const ns = "minecraft:"
	if len(name) > len(ns) && name[:len(ns)] == ns {
		return name[len(ns):]
	}
	return name
}
