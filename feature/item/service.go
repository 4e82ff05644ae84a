package item

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"item-translator/core/data"
	"item-translator/core/mappings"
	"item-translator/feature/item/legacy"
	"item-translator/feature/item/models"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// ErrInvalidItem is returned when a request body is not a valid item.
var ErrInvalidItem = errors.New("invalid item")

// DefaultCacheSize bounds the translation cache when none is configured.
const DefaultCacheSize = 1024

// refresher is implemented by sources that replace their tables at runtime.
type refresher interface {
	OnRefresh(fn func(*mappings.Tables))
}

// Service translates structured items into legacy documents.
type Service struct {
	converter *legacy.Converter
	source    mappings.Source
	logger    *zap.Logger
	cache     *lru.Cache[string, *models.TranslationResult]
}

// NewService creates a new item service. When source can refresh, cached
// results are purged on every swap.
func NewService(source mappings.Source, opts legacy.Options, logger *zap.Logger, cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *models.TranslationResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create translation cache: %w", err)
	}

	cv := legacy.New(source, opts)
	if err := cv.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		converter: cv,
		source:    source,
		logger:    logger,
		cache:     cache,
	}
	if r, ok := source.(refresher); ok {
		r.OnRefresh(func(t *mappings.Tables) {
			s.cache.Purge()
			s.logger.Info("Mappings refreshed, translation cache purged", zap.String("pair", t.Pair()))
		})
	}
	return s, nil
}

// Translate decodes a JSON item and renders its legacy document. Results
// are shared between callers and must not be modified. Cache entries are
// keyed by table serial, so a result rendered from replaced tables is never
// served after a refresh.
func (s *Service) Translate(ctx context.Context, raw []byte) (*models.TranslationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tables := s.source.Tables()
	sum := sha256.Sum256(raw)
	key := fmt.Sprintf("%d:%s", tables.Serial(), hex.EncodeToString(sum[:]))
	if res, ok := s.cache.Get(key); ok {
		return res, nil
	}

	it, err := data.DecodeItem(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	res, err := s.render(tables, it)
	if err != nil {
		return nil, err
	}
	s.cache.Add(key, res)
	return res, nil
}

// TranslateItem renders an already decoded item. It bypasses the cache.
func (s *Service) TranslateItem(it data.Item) (*models.TranslationResult, error) {
	return s.render(s.source.Tables(), it)
}

// render builds a result entirely from one table snapshot.
func (s *Service) render(tables *mappings.Tables, it data.Item) (*models.TranslationResult, error) {
	tag, err := s.converter.ConvertWith(tables, it)
	if err != nil {
		return nil, err
	}
	return &models.TranslationResult{
		ID:         it.ID,
		Count:      it.Count,
		LegacyName: tables.LegacyItemName(it.ID),
		Tag:        tag,
		SNBT:       tag.String(),
		Lossy:      tag.Contains(legacy.BackupTagKey),
		Pair:       tables.Pair(),
	}, nil
}

// Components lists every component kind the converter handles.
func (s *Service) Components() models.ComponentList {
	kinds := data.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return models.ComponentList{Count: len(names), Components: names}
}

// Mappings describes the tables currently in use.
func (s *Service) Mappings() models.MappingInfo {
	t := s.source.Tables()
	return models.MappingInfo{
		Pair:              t.Pair(),
		Domains:           t.Sizes(),
		ItemRemaps:        t.ItemRemapCount(),
		EnchantmentWindow: t.EnchantmentWindow(),
	}
}

// Converter returns the converter the service renders with.
func (s *Service) Converter() *legacy.Converter { return s.converter }

// CachedResults returns the number of cached translations.
func (s *Service) CachedResults() int {
	return s.cache.Len()
}
