package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Behnamfe76/aftersales-ops/internal/api/dto"
	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/service"
	apperrors "github.com/Behnamfe76/aftersales-ops/pkg/util/errorutil"
)

// SettingsHandler manages display-settings endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetSettings GET /settings.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.settings.Settings(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.SettingsResponse{Settings: settings})
}

// SetVisibility PUT /settings/:category/:entityId.
func (h *SettingsHandler) SetVisibility(c *fiber.Ctx) error {
	category := domain.VisibilityCategory(c.Params("category"))
	entityID := c.Params("entityId")

	var req dto.SetVisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	settings, err := h.settings.SetVisibility(c.UserContext(), category, entityID, req.Visible)
	if err != nil {
		return err
	}
	return c.JSON(dto.SettingsResponse{Settings: settings})
}
