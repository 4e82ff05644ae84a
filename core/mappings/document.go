package mappings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader produces a fresh Tables snapshot.
type Loader interface {
	Load(ctx context.Context) (*Tables, error)
}

// Document is the serialized form of a table set, shared by the file and
// storage loaders.
//
//	pair: 1.20.5->1.20.3
//	enchantment_window: {anchor: piercing, width: 3}
//	domains:
//	  enchantment: [protection, fire_protection, ...]
//	  item: [air, stone, ...]
//	item_remap: {1: 1, 2: 2}
//	banner_pattern_codes: {square_bottom_left: bl}
type Document struct {
	Pair               string              `json:"pair" yaml:"pair"`
	Window             *Window             `json:"enchantment_window,omitempty" yaml:"enchantment_window,omitempty"`
	Domains            map[string][]string `json:"domains" yaml:"domains"`
	ItemRemap          map[int32]int32     `json:"item_remap,omitempty" yaml:"item_remap,omitempty"`
	BannerPatternCodes map[string]string   `json:"banner_pattern_codes,omitempty" yaml:"banner_pattern_codes,omitempty"`
}

// Tables validates the document and builds a snapshot from it.
func (doc *Document) Tables() (*Tables, error) {
	b := NewBuilder(doc.Pair)
	names := make([]string, 0, len(doc.Domains))
	for name := range doc.Domains {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d, err := ParseDomain(name)
		if err != nil {
			return nil, err
		}
		b.Keys(d, doc.Domains[name]...)
	}
	for cur, legacy := range doc.ItemRemap {
		b.Item(cur, legacy)
	}
	for key, code := range doc.BannerPatternCodes {
		b.BannerPattern(key, code)
	}
	if doc.Window != nil {
		if err := doc.Window.Validate(); err != nil {
			return nil, err
		}
		b.Window(*doc.Window)
	}
	return b.Build(), nil
}

// DocumentOf serializes tables back into a document.
func DocumentOf(t *Tables) *Document {
	doc := &Document{
		Pair:               t.pair,
		Domains:            make(map[string][]string, len(t.keys)),
		ItemRemap:          make(map[int32]int32, len(t.itemRemap)),
		BannerPatternCodes: make(map[string]string, len(t.bannerCompact)),
	}
	w := t.window
	doc.Window = &w
	for d, keys := range t.keys {
		doc.Domains[string(d)] = append([]string(nil), keys...)
	}
	for cur, legacy := range t.itemRemap {
		doc.ItemRemap[cur] = legacy
	}
	for k, v := range t.bannerCompact {
		doc.BannerPatternCodes[k] = v
	}
	return doc
}

// Format is the encoding of a mapping document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file or object name extension.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseDocument decodes and validates a mapping document.
func ParseDocument(b []byte, f Format) (*Tables, error) {
	var doc Document
	var err error
	if f == FormatYAML {
		err = yaml.Unmarshal(b, &doc)
	} else {
		err = json.Unmarshal(b, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s mappings: %w", f, err)
	}
	return doc.Tables()
}

// EncodeDocument renders tables in the given format.
func EncodeDocument(t *Tables, f Format) ([]byte, error) {
	doc := DocumentOf(t)
	if f == FormatYAML {
		return yaml.Marshal(doc)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// FileLoader reads a mapping document from the local filesystem.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load(_ context.Context) (*Tables, error) {
	b, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mappings file: %w", err)
	}
	return ParseDocument(b, FormatOf(l.Path))
}
