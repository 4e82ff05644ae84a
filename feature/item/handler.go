package item

import (
	"errors"

	"item-translator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for item translation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Post("/legacy", h.HandleTranslate)
	group.Get("/components", h.HandleComponents)
	group.Get("/mappings", h.HandleMappings)
}

// HandleTranslate converts the structured item in the body to its legacy form.
// With ?format=snbt only the stringified tag is returned as plain text.
// @Summary Translate Item
// @Description Converts a structured item stack into its legacy tag document.
// @Tags items
// @Accept json
// @Produce json
// @Param format query string false "Set to snbt for a plain-text stringified tag"
// @Success 200 {object} models.TranslationResult
// @Failure 400 {object} map[string]string "Invalid item"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/legacy [post]
func (h *Handler) HandleTranslate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Translate(c.UserContext(), c.Body())
	if err != nil {
		if errors.Is(err, ErrInvalidItem) {
			l.Debug("Rejected item", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Item translation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if c.Query("format") == "snbt" {
		return c.SendString(res.SNBT)
	}
	return c.JSON(res)
}

// HandleComponents lists the supported component kinds.
// @Summary List Components
// @Tags items
// @Produce json
// @Success 200 {object} models.ComponentList
// @Router /items/components [get]
func (h *Handler) HandleComponents(c *fiber.Ctx) error {
	return c.JSON(h.service.Components())
}

// HandleMappings returns metadata about the loaded mapping tables.
// @Summary Mapping Info
// @Description Returns the protocol pair, domain sizes and enchantment window in use.
// @Tags items
// @Produce json
// @Success 200 {object} models.MappingInfo
// @Router /items/mappings [get]
func (h *Handler) HandleMappings(c *fiber.Ctx) error {
	return c.JSON(h.service.Mappings())
}
