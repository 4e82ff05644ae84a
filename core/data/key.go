package data

import (
	"encoding/json"
	"errors"
	"fmt"

	"item-translator/core/nbt"
)

// ErrUnknownComponent is returned when a component name does not match any kind.
var ErrUnknownComponent = errors.New("unknown component")

// Key is the typed handle of one component kind. Keys are only created by
// this package; entries built through a key always carry a value of T.
type Key[T any] struct {
	kind Kind
}

// Kind returns the component kind of the key.
func (k Key[T]) Kind() Kind { return k.kind }

func (k Key[T]) String() string { return k.kind.String() }

// Of builds a present entry holding v.
func (k Key[T]) Of(v T) StructuredData {
	return StructuredData{kind: k.kind, value: v}
}

// Removed builds an empty entry, marking the component as removed.
func (k Key[T]) Removed() StructuredData {
	return StructuredData{kind: k.kind, empty: true}
}

// Value extracts the typed value of d. It reports false when d belongs to
// another kind or is empty.
func (k Key[T]) Value(d StructuredData) (T, bool) {
	var zero T
	if d.kind != k.kind || d.empty {
		return zero, false
	}
	v, ok := d.value.(T)
	return v, ok
}

// StructuredData is one component entry of an item.
type StructuredData struct {
	kind  Kind
	value any
	empty bool
}

func (d StructuredData) Kind() Kind    { return d.kind }
func (d StructuredData) IsEmpty() bool { return d.empty }
func (d StructuredData) Value() any    { return d.value }

type entryJSON struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

func (d StructuredData) MarshalJSON() ([]byte, error) {
	if d.empty {
		return json.Marshal(entryJSON{Type: "!" + d.kind.String()})
	}
	raw, err := json.Marshal(d.value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", d.kind, err)
	}
	return json.Marshal(entryJSON{Type: d.kind.String(), Value: raw})
}

// UnmarshalJSON decodes {"type": name, "value": ...}. A name prefixed with
// "!" denotes a removed entry and takes no value.
func (d *StructuredData) UnmarshalJSON(b []byte) error {
	var e entryJSON
	if err := json.Unmarshal(b, &e); err != nil {
		return err
	}
	name, removed := e.Type, false
	if len(name) > 0 && name[0] == '!' {
		name, removed = name[1:], true
	}
	kind, ok := KindByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, e.Type)
	}
	if removed {
		*d = StructuredData{kind: kind, empty: true}
		return nil
	}
	if len(e.Value) == 0 {
		return fmt.Errorf("component %s: missing value", kind)
	}
	decoded, err := decoders[kind](e.Value)
	if err != nil {
		return fmt.Errorf("component %s: %w", kind, err)
	}
	*d = decoded
	return nil
}

var decoders [KindCount]func(json.RawMessage) (StructuredData, error)

func newKey[T any](kind Kind) Key[T] {
	if decoders[kind] != nil {
		panic(fmt.Sprintf("data: duplicate key for %s", kind))
	}
	k := Key[T]{kind: kind}
	decoders[kind] = func(raw json.RawMessage) (StructuredData, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return StructuredData{}, err
		}
		return k.Of(v), nil
	}
	return k
}

// Component keys, one per kind.
var (
	KeyCustomData               = newKey[*nbt.CompoundTag](KindCustomData)
	KeyMaxStackSize             = newKey[int32](KindMaxStackSize)
	KeyMaxDamage                = newKey[int32](KindMaxDamage)
	KeyDamage                   = newKey[int32](KindDamage)
	KeyUnbreakable              = newKey[Unbreakable](KindUnbreakable)
	KeyCustomName               = newKey[TagValue](KindCustomName)
	KeyItemName                 = newKey[TagValue](KindItemName)
	KeyLore                     = newKey[[]TagValue](KindLore)
	KeyRarity                   = newKey[int32](KindRarity)
	KeyEnchantments             = newKey[Enchantments](KindEnchantments)
	KeyCanPlaceOn               = newKey[AdventureModePredicate](KindCanPlaceOn)
	KeyCanBreak                 = newKey[AdventureModePredicate](KindCanBreak)
	KeyAttributeModifiers       = newKey[AttributeModifiers](KindAttributeModifiers)
	KeyCustomModelData          = newKey[int32](KindCustomModelData)
	KeyHideAdditionalTooltip    = newKey[Unit](KindHideAdditionalTooltip)
	KeyHideTooltip              = newKey[Unit](KindHideTooltip)
	KeyRepairCost               = newKey[int32](KindRepairCost)
	KeyCreativeSlotLock         = newKey[Unit](KindCreativeSlotLock)
	KeyEnchantmentGlintOverride = newKey[bool](KindEnchantmentGlintOverride)
	KeyIntangibleProjectile     = newKey[TagValue](KindIntangibleProjectile)
	KeyFood                     = newKey[FoodProperties](KindFood)
	KeyFireResistant            = newKey[Unit](KindFireResistant)
	KeyTool                     = newKey[ToolProperties](KindTool)
	KeyStoredEnchantments       = newKey[Enchantments](KindStoredEnchantments)
	KeyDyedColor                = newKey[DyedColor](KindDyedColor)
	KeyMapColor                 = newKey[int32](KindMapColor)
	KeyMapID                    = newKey[int32](KindMapID)
	KeyMapDecorations           = newKey[*nbt.CompoundTag](KindMapDecorations)
	KeyMapPostProcessing        = newKey[*int32](KindMapPostProcessing)
	KeyChargedProjectiles       = newKey[[]Item](KindChargedProjectiles)
	KeyBundleContents           = newKey[[]Item](KindBundleContents)
	KeyPotionContents           = newKey[PotionContents](KindPotionContents)
	KeySuspiciousStewEffects    = newKey[[]SuspiciousStewEffect](KindSuspiciousStewEffects)
	KeyWritableBookContent      = newKey[[]FilterableString](KindWritableBookContent)
	KeyWrittenBookContent       = newKey[WrittenBook](KindWrittenBookContent)
	KeyTrim                     = newKey[ArmorTrim](KindTrim)
	KeyDebugStickState          = newKey[*nbt.CompoundTag](KindDebugStickState)
	KeyEntityData               = newKey[*nbt.CompoundTag](KindEntityData)
	KeyBucketEntityData         = newKey[*nbt.CompoundTag](KindBucketEntityData)
	KeyBlockEntityData          = newKey[*nbt.CompoundTag](KindBlockEntityData)
	KeyInstrument               = newKey[Holder[Instrument]](KindInstrument)
	KeyOminousBottleAmplifier   = newKey[int32](KindOminousBottleAmplifier)
	KeyRecipes                  = newKey[TagValue](KindRecipes)
	KeyLodestoneTracker         = newKey[LodestoneTracker](KindLodestoneTracker)
	KeyFireworkExplosion        = newKey[FireworkExplosion](KindFireworkExplosion)
	KeyFireworks                = newKey[Fireworks](KindFireworks)
	KeyProfile                  = newKey[GameProfile](KindProfile)
	KeyNoteBlockSound           = newKey[string](KindNoteBlockSound)
	KeyBannerPatterns           = newKey[[]BannerPatternLayer](KindBannerPatterns)
	KeyBaseColor                = newKey[int32](KindBaseColor)
	KeyPotDecorations           = newKey[PotDecorations](KindPotDecorations)
	KeyContainer                = newKey[[]Item](KindContainer)
	KeyBlockState               = newKey[BlockStateProperties](KindBlockState)
	KeyBees                     = newKey[[]Bee](KindBees)
	KeyLock                     = newKey[TagValue](KindLock)
	KeyContainerLoot            = newKey[*nbt.CompoundTag](KindContainerLoot)
)
