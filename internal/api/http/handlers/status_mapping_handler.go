package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Behnamfe76/aftersales-ops/internal/api/dto"
	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/service"
	apperrors "github.com/Behnamfe76/aftersales-ops/pkg/util/errorutil"
)

// StatusMappingHandler manages the status classification table.
type StatusMappingHandler struct {
	mapping *service.StatusMappingService
}

// NewStatusMappingHandler constructs handler.
func NewStatusMappingHandler(mapping *service.StatusMappingService) *StatusMappingHandler {
	return &StatusMappingHandler{mapping: mapping}
}

// GetMapping GET /status-mapping.
func (h *StatusMappingHandler) GetMapping(c *fiber.Ctx) error {
	mapping, err := h.mapping.Mapping(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.StatusMappingResponse{Mapping: mapping})
}

// UpsertEntry PUT /status-mapping/:code.
func (h *StatusMappingHandler) UpsertEntry(c *fiber.Ctx) error {
	var req dto.UpsertStatusMappingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	entry := domain.StatusMappingEntry{
		TicketStatusText: req.TicketStatusText,
		FirstLevelStatus: req.FirstLevelStatus,
	}
	if err := h.mapping.Upsert(c.UserContext(), c.Params("code"), entry); err != nil {
		return err
	}

	mapping, err := h.mapping.Mapping(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.StatusMappingResponse{Mapping: mapping})
}
