package data

import (
	"encoding/json"

	"item-translator/core/nbt"

	"github.com/google/uuid"
)

// Unit is the value of marker components that carry no data.
type Unit struct{}

// TagValue wraps an arbitrary tag (text components, raw NBT payloads)
// so it can be decoded from JSON.
type TagValue struct {
	Tag nbt.Tag
}

// TagOf wraps t.
func TagOf(t nbt.Tag) TagValue {
	return TagValue{Tag: t}
}

func (v TagValue) MarshalJSON() ([]byte, error) {
	if v.Tag == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v.Tag)
}

func (v *TagValue) UnmarshalJSON(b []byte) error {
	t, err := nbt.ParseJSON(b)
	if err != nil {
		return err
	}
	v.Tag = t
	return nil
}

type Unbreakable struct {
	ShowInTooltip bool `json:"show_in_tooltip"`
}

// EnchantmentLevel is one entry of an enchantment list, in insertion order.
type EnchantmentLevel struct {
	ID    int32 `json:"id"`
	Level int32 `json:"level"`
}

type Enchantments struct {
	Levels        []EnchantmentLevel `json:"levels"`
	ShowInTooltip bool               `json:"show_in_tooltip"`
}

type ModifierData struct {
	ID        uuid.UUID `json:"uuid"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	Operation int32     `json:"operation"`
}

type AttributeModifier struct {
	Attribute int32        `json:"attribute"`
	Modifier  ModifierData `json:"modifier"`
	SlotType  int32        `json:"slot"`
}

type AttributeModifiers struct {
	Modifiers     []AttributeModifier `json:"modifiers"`
	ShowInTooltip bool                `json:"show_in_tooltip"`
}

type DyedColor struct {
	RGB           int32 `json:"rgb"`
	ShowInTooltip bool  `json:"show_in_tooltip"`
}

// FilterableString is a plain string with an optional filtered variant.
type FilterableString struct {
	Raw      string  `json:"raw"`
	Filtered *string `json:"filtered,omitempty"`
}

// FilterableComponent is a text component with an optional filtered variant.
type FilterableComponent struct {
	Raw      TagValue  `json:"raw"`
	Filtered *TagValue `json:"filtered,omitempty"`
}

type WrittenBook struct {
	Title      FilterableString      `json:"title"`
	Author     string                `json:"author"`
	Generation int32                 `json:"generation"`
	Pages      []FilterableComponent `json:"pages"`
	Resolved   bool                  `json:"resolved"`
}

type GlobalPosition struct {
	Dimension string `json:"dimension"`
	X         int32  `json:"x"`
	Y         int32  `json:"y"`
	Z         int32  `json:"z"`
}

type LodestoneTracker struct {
	Pos     *GlobalPosition `json:"pos,omitempty"`
	Tracked bool            `json:"tracked"`
}

type FireworkExplosion struct {
	Shape      int32   `json:"shape"`
	Colors     []int32 `json:"colors"`
	FadeColors []int32 `json:"fade_colors"`
	HasTrail   bool    `json:"has_trail"`
	HasTwinkle bool    `json:"has_twinkle"`
}

type Fireworks struct {
	FlightDuration int32               `json:"flight_duration"`
	Explosions     []FireworkExplosion `json:"explosions"`
}

type ProfileProperty struct {
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Signature *string `json:"signature,omitempty"`
}

// GameProfile identifies a player head owner. A nil Name means no name; an
// empty name is still a name.
type GameProfile struct {
	Name       *string           `json:"name,omitempty"`
	ID         *uuid.UUID        `json:"id,omitempty"`
	Properties []ProfileProperty `json:"properties,omitempty"`
}

type Instrument struct {
	SoundEvent  string  `json:"sound_event"`
	UseDuration int32   `json:"use_duration"`
	Range       float32 `json:"range"`
}

type Bee struct {
	EntityData     *nbt.CompoundTag `json:"entity_data"`
	TicksInHive    int32            `json:"ticks_in_hive"`
	MinTicksInHive int32            `json:"min_ticks_in_hive"`
}

// PotDecorations lists the sherd items of a decorated pot, in face order.
type PotDecorations struct {
	ItemIDs []int32 `json:"items"`
}

type PotionEffectData struct {
	Amplifier     int32 `json:"amplifier"`
	Duration      int32 `json:"duration"`
	Ambient       bool  `json:"ambient"`
	ShowParticles bool  `json:"show_particles"`
	ShowIcon      bool  `json:"show_icon"`
}

type PotionEffect struct {
	Effect int32            `json:"effect"`
	Data   PotionEffectData `json:"data"`
}

type PotionContents struct {
	Potion        *int32         `json:"potion,omitempty"`
	CustomColor   *int32         `json:"custom_color,omitempty"`
	CustomEffects []PotionEffect `json:"custom_effects"`
}

type SuspiciousStewEffect struct {
	MobEffect int32 `json:"effect"`
	Duration  int32 `json:"duration"`
}

type BannerPattern struct {
	AssetID        string `json:"asset_id"`
	TranslationKey string `json:"translation_key"`
}

type BannerPatternLayer struct {
	Pattern  Holder[BannerPattern] `json:"pattern"`
	DyeColor int32                 `json:"color"`
}

// HolderSet references blocks either through a tag key or explicit ids.
type HolderSet struct {
	TagKey string  `json:"tag,omitempty"`
	IDs    []int32 `json:"ids,omitempty"`
}

// HasTagKey reports whether the set references a tag group.
func (h HolderSet) HasTagKey() bool {
	return h.TagKey != ""
}

type RangedMatcher struct {
	Min *string `json:"min,omitempty"`
	Max *string `json:"max,omitempty"`
}

// StatePropertyMatcher constrains one block state property, either to an
// exact value or to a range.
type StatePropertyMatcher struct {
	Name  string         `json:"name"`
	Value *string        `json:"value,omitempty"`
	Range *RangedMatcher `json:"range,omitempty"`
}

// IsExact reports whether the matcher is an equality constraint.
func (m StatePropertyMatcher) IsExact() bool {
	return m.Value != nil
}

type BlockPredicate struct {
	Holders          *HolderSet             `json:"blocks,omitempty"`
	PropertyMatchers []StatePropertyMatcher `json:"state,omitempty"`
	Tag              *nbt.CompoundTag       `json:"nbt,omitempty"`
}

type AdventureModePredicate struct {
	Predicates    []BlockPredicate `json:"predicates"`
	ShowInTooltip bool             `json:"show_in_tooltip"`
}

type ArmorTrimMaterial struct {
	AssetName              string           `json:"asset_name"`
	ItemID                 int32            `json:"ingredient"`
	ItemModelIndex         float32          `json:"item_model_index"`
	OverrideArmorMaterials map[int32]string `json:"override_armor_materials,omitempty"`
	Description            TagValue         `json:"description"`
}

type ArmorTrimPattern struct {
	AssetName   string   `json:"asset_id"`
	ItemID      int32    `json:"template_item"`
	Description TagValue `json:"description"`
	Decal       bool     `json:"decal"`
}

type ArmorTrim struct {
	Material      Holder[ArmorTrimMaterial] `json:"material"`
	Pattern       Holder[ArmorTrimPattern]  `json:"pattern"`
	ShowInTooltip bool                      `json:"show_in_tooltip"`
}

type BlockStateProperties struct {
	Properties map[string]string `json:"properties"`
}

type FoodEffect struct {
	Effect      PotionEffect `json:"effect"`
	Probability float32      `json:"probability"`
}

type FoodProperties struct {
	Nutrition    int32        `json:"nutrition"`
	Saturation   float32      `json:"saturation"`
	CanAlwaysEat bool         `json:"can_always_eat"`
	EatSeconds   float32      `json:"eat_seconds"`
	Effects      []FoodEffect `json:"effects,omitempty"`
}

type ToolRule struct {
	Blocks          HolderSet `json:"blocks"`
	Speed           *float32  `json:"speed,omitempty"`
	CorrectForDrops *bool     `json:"correct_for_drops,omitempty"`
}

type ToolProperties struct {
	Rules              []ToolRule `json:"rules"`
	DefaultMiningSpeed float32    `json:"default_mining_speed"`
	DamagePerBlock     int32      `json:"damage_per_block"`
}
