package dto

import "github.com/Behnamfe76/aftersales-ops/internal/domain"

// CreateCatalogueRequest payload.
type CreateCatalogueRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

// CatalogueResponse wraps one catalogue node.
type CatalogueResponse struct {
	Catalogue domain.Catalogue `json:"catalogue"`
}

// FileResponse wraps one uploaded file record.
type FileResponse struct {
	File domain.FileRecord `json:"file"`
}
