package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Behnamfe76/aftersales-ops/internal/api/dto"
	"github.com/Behnamfe76/aftersales-ops/internal/service"
	apperrors "github.com/Behnamfe76/aftersales-ops/pkg/util/errorutil"
)

// LibraryHandler manages guide-library endpoints.
type LibraryHandler struct {
	library *service.LibraryService
}

// NewLibraryHandler constructs handler.
func NewLibraryHandler(library *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{library: library}
}

// Tree GET /library/tree.
func (h *LibraryHandler) Tree(c *fiber.Ctx) error {
	tree, err := h.library.Tree(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tree": tree})
}

// CreateCatalogue POST /library/catalogues.
func (h *LibraryHandler) CreateCatalogue(c *fiber.Ctx) error {
	var req dto.CreateCatalogueRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	catalogue, err := h.library.CreateCatalogue(c.UserContext(), service.CreateCatalogueInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CatalogueResponse{Catalogue: catalogue})
}

// UploadFile POST /library/files (multipart: "file" + "catalogue_id").
func (h *LibraryHandler) UploadFile(c *fiber.Ctx) error {
	catalogueID := c.FormValue("catalogue_id")
	if catalogueID == "" {
		return apperrors.NewValidationError("catalogue_id required", nil)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file required", nil)
	}
	opened, err := header.Open()
	if err != nil {
		return apperrors.NewValidationError("unreadable file", nil)
	}
	defer opened.Close()
	data, err := io.ReadAll(opened)
	if err != nil {
		return apperrors.NewValidationError("unreadable file", nil)
	}

	record, err := h.library.UploadFile(c.UserContext(), service.UploadFileInput{
		CatalogueID: catalogueID,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FileResponse{File: record})
}

// DownloadFile GET /library/files/:id/download.
func (h *LibraryHandler) DownloadFile(c *fiber.Ctx) error {
	record, object, err := h.library.DownloadFile(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, object.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+record.Name+`"`)
	return c.Send(object.Data)
}
