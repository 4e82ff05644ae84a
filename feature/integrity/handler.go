package integrity

import (
	"errors"

	"item-translator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/converter", h.HandleConverterCheck)
	group.Get("/mappings", h.HandleMappingsCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
}

// HandleIntegrityCheck runs every check and combines the reports.
// @Summary Run All Integrity Checks
// @Description Performs every integrity check (Converter, Mappings, Storage, Database). Disabled checks report their status.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	report["converter"] = h.service.CheckConverter()
	report["mappings"] = h.service.CheckMappings()

	if st, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = errorReport(err)
	} else {
		report["storage"] = st
	}

	if db, err := h.service.CheckDatabase(); err != nil {
		report["database"] = errorReport(err)
	} else {
		report["database"] = db
	}

	return c.JSON(report)
}

// HandleConverterCheck reports kinds without a conversion rule.
// @Summary Check Converter
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.ConverterReport
// @Router /integrity/converter [get]
func (h *Handler) HandleConverterCheck(c *fiber.Ctx) error {
	report := h.service.CheckConverter()
	if len(report.Missing) > 0 {
		logger.WithRayID(h.service.logger, c).Warn("Converter rules missing", zap.Strings("missing", report.Missing))
	}
	return c.JSON(report)
}

// HandleMappingsCheck reports gaps in the loaded tables.
// @Summary Check Mappings
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.MappingsReport
// @Router /integrity/mappings [get]
func (h *Handler) HandleMappingsCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckMappings())
}

// HandleStorageCheck checks the mapping object and optionally creates the
// bucket with ?fix=true.
// @Summary Check Storage
// @Description Verifies the mapping bucket and object exist.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create the bucket if missing"
// @Success 200 {object} checks.StorageReport
// @Failure 503 {object} map[string]string "Check disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.UserContext())
	if err != nil {
		return h.checkError(c, l, "Storage check failed", err)
	}

	if !report.BucketExists && fix {
		l.Info("Attempting to create missing bucket", zap.String("bucket", report.Bucket))
		if err := h.service.FixStorage(c.UserContext()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to fix storage",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"status": "fixed",
			"fixed":  []string{report.Bucket},
		})
	}

	return c.JSON(report)
}

// HandleDatabaseCheck verifies the mapping tables.
// @Summary Check Database
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 503 {object} map[string]string "Check disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase()
	if err != nil {
		return h.checkError(c, l, "Database check failed", err)
	}
	if !report.Matched {
		l.Warn("Mapping schema mismatch", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

func (h *Handler) checkError(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrCheckDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func errorReport(err error) fiber.Map {
	if errors.Is(err, ErrCheckDisabled) {
		return fiber.Map{"status": "disabled"}
	}
	return fiber.Map{"status": "error", "error": err.Error()}
}
