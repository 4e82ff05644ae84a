package integrity

import (
	"context"
	"errors"

	"item-translator/core/mappings"
	"item-translator/core/storage"
	"item-translator/feature/integrity/checks"
	"item-translator/feature/item/legacy"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrCheckDisabled is returned by checks whose backend is not configured.
var ErrCheckDisabled = errors.New("check disabled")

// Service runs health checks against the converter and its mapping sources.
type Service struct {
	converter *legacy.Converter
	source    mappings.Source
	client    storage.Client
	bucket    string
	object    string
	db        *gorm.DB
	logger    *zap.Logger
}

// Options selects the optional backends. A nil Client or DB disables the
// matching check.
type Options struct {
	Client storage.Client
	Bucket string
	Object string
	DB     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(cv *legacy.Converter, source mappings.Source, opts Options, logger *zap.Logger) *Service {
	return &Service{
		converter: cv,
		source:    source,
		client:    opts.Client,
		bucket:    opts.Bucket,
		object:    opts.Object,
		db:        opts.DB,
		logger:    logger,
	}
}

// CheckConverter reports kinds without a conversion rule.
func (s *Service) CheckConverter() checks.ConverterReport {
	return checks.CheckConverter(s.converter)
}

// CheckMappings inspects the current mapping snapshot.
func (s *Service) CheckMappings() checks.MappingsReport {
	return checks.CheckMappings(s.source.Tables())
}

// CheckStorage looks for the mapping document in the bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrCheckDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.object)
}

// FixStorage creates the missing bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrCheckDisabled
	}
	if err := checks.FixStorage(ctx, s.client, s.bucket); err != nil {
		return err
	}
	s.logger.Info("Created bucket", zap.String("bucket", s.bucket))
	return nil
}

// CheckDatabase verifies the mapping tables.
func (s *Service) CheckDatabase() (*checks.SchemaReport, error) {
	if s.db == nil {
		return nil, ErrCheckDisabled
	}
	return checks.CheckSchema(s.db)
}
