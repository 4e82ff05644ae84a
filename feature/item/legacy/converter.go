package legacy

import (
	"errors"
	"fmt"
	"strings"

	"item-translator/core/data"
	"item-translator/core/mappings"
	"item-translator/core/nbt"
)

// ErrMissingConverter is returned when an entry's kind has no registered rule.
var ErrMissingConverter = errors.New("no converter registered")

// BackupTagKey is the root key holding values that have no legacy equivalent.
const BackupTagKey = "VV|DataComponents"

// Options controls optional conversion behavior.
type Options struct {
	// PreserveInconvertibleData writes values without a legacy equivalent
	// into the backup sub-tree instead of dropping them.
	PreserveInconvertibleData bool
}

// rule folds one component value into the legacy document.
type rule func(c *conversion, value any, tag *nbt.CompoundTag) error

// Converter folds structured items into legacy documents. It is immutable
// after New and safe for concurrent use.
type Converter struct {
	rules   [data.KindCount]rule
	source  mappings.Source
	options Options
}

// New builds a converter with every rule registered.
func New(source mappings.Source, opts Options) *Converter {
	cv := &Converter{source: source, options: opts}
	registerScalarRules(cv)
	registerDisplayRules(cv)
	registerEnchantmentRules(cv)
	registerContentRules(cv)
	registerBlockEntityRules(cv)
	registerRegistryRules(cv)
	registerBackupRules(cv)
	return cv
}

// Options returns the options the converter was built with.
func (cv *Converter) Options() Options { return cv.options }

// register binds a typed rule to a key. Registering a kind twice is a programming error.
func register[T any](cv *Converter, key data.Key[T], fn func(c *conversion, v T, tag *nbt.CompoundTag)) {
	registerE(cv, key, func(c *conversion, v T, tag *nbt.CompoundTag) error {
		fn(c, v, tag)
		return nil
	})
}

// registerE is register for rules that can fail, such as nested item lists.
func registerE[T any](cv *Converter, key data.Key[T], fn func(c *conversion, v T, tag *nbt.CompoundTag) error) {
	kind := key.Kind()
	if cv.rules[kind] != nil {
		panic(fmt.Sprintf("legacy: duplicate converter for %s", kind))
	}
	cv.rules[kind] = func(c *conversion, value any, tag *nbt.CompoundTag) error {
		return fn(c, value.(T), tag)
	}
}

func (cv *Converter) lookup(kind data.Kind) rule {
	if !kind.Valid() {
		return nil
	}
	return cv.rules[kind]
}

// Missing lists the kinds that have no rule.
func (cv *Converter) Missing() []data.Kind {
	var missing []data.Kind
	for _, k := range data.Kinds() {
		if cv.rules[k] == nil {
			missing = append(missing, k)
		}
	}
	return missing
}

// Validate reports every kind that has no rule.
func (cv *Converter) Validate() error {
	missing := cv.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, k := range missing {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrMissingConverter, strings.Join(names, ", "))
}

// Convert folds every present entry of item, in stored order, into a new
// document. Empty entries are skipped.
func (cv *Converter) Convert(item data.Item) (*nbt.CompoundTag, error) {
	return cv.ConvertWith(cv.source.Tables(), item)
}

// ConvertWith is Convert against a snapshot the caller already holds.
func (cv *Converter) ConvertWith(t *mappings.Tables, item data.Item) (*nbt.CompoundTag, error) {
	c := &conversion{cv: cv, tables: t}
	return c.fold(item)
}

// WriteToTag folds a single entry into tag.
func (cv *Converter) WriteToTag(d data.StructuredData, tag *nbt.CompoundTag) error {
	return cv.begin().write(d, tag)
}

func (cv *Converter) begin() *conversion {
	return &conversion{cv: cv, tables: cv.source.Tables()}
}

// RemoveBackupTag detaches and returns the backup sub-tree, or nil.
func RemoveBackupTag(tag *nbt.CompoundTag) *nbt.CompoundTag {
	backup := tag.GetCompound(BackupTagKey)
	if backup != nil {
		tag.Remove(BackupTagKey)
	}
	return backup
}

// conversion is the per-call state: the converter and one table snapshot.
type conversion struct {
	cv     *Converter
	tables *mappings.Tables
}

// fold starts from a copy of the item's custom_data, then applies every entry.
func (c *conversion) fold(item data.Item) (*nbt.CompoundTag, error) {
	tag := nbt.NewCompound()
	if d, ok := item.Get(data.KindCustomData); ok {
		if custom, ok := data.KeyCustomData.Value(d); ok && custom != nil {
			tag = custom.Copy().(*nbt.CompoundTag)
		}
	}
	for _, d := range item.Data {
		if err := c.write(d, tag); err != nil {
			return nil, err
		}
	}
	return tag, nil
}

func (c *conversion) write(d data.StructuredData, tag *nbt.CompoundTag) error {
	if d.IsEmpty() {
		return nil
	}
	r := c.cv.lookup(d.Kind())
	if r == nil {
		return fmt.Errorf("%w for %s", ErrMissingConverter, d.Kind())
	}
	return r(c, d.Value(), tag)
}

func (c *conversion) preserve() bool { return c.cv.options.PreserveInconvertibleData }

// itemName resolves a current item id to its legacy name, "" when unknown.
func (c *conversion) itemName(id int32) string {
	return c.tables.LegacyItemName(id)
}

func displayTag(tag *nbt.CompoundTag) *nbt.CompoundTag {
	return tag.GetOrCreateCompound("display")
}

func blockEntityTag(tag *nbt.CompoundTag) *nbt.CompoundTag {
	return tag.GetOrCreateCompound("BlockEntityTag")
}

func backupTag(tag *nbt.CompoundTag) *nbt.CompoundTag {
	return tag.GetOrCreateCompound(BackupTagKey)
}

// HideFlags bits.
const (
	hideEnchantments = 1 << iota
	hideAttributes
	hideUnbreakable
	hideCanDestroy
	hideCanPlaceOn
	hideAdditional
	hideDyeColor
	hideArmorTrim

	hideAll = 0xFF
)

func putHideFlag(tag *nbt.CompoundTag, flag int32) {
	tag.PutInt("HideFlags", tag.GetInt("HideFlags")|flag)
}
