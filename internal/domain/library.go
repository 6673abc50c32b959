package domain

import "time"

// Catalogue is a node in the guide-library tree. A nil ParentID marks a root
// node.
type Catalogue struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ParentID    *string   `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FileRecord is the index entry for one uploaded guide-library file; the
// bytes themselves live in the object store under StorageKey.
type FileRecord struct {
	ID          string    `json:"id"`
	CatalogueID string    `json:"catalogueId"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	StorageKey  string    `json:"storageKey"`
	DownloadURL string    `json:"downloadUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}
