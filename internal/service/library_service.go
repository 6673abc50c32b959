package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/persistence"
	"github.com/Behnamfe76/aftersales-ops/internal/repository"
	apperrors "github.com/Behnamfe76/aftersales-ops/pkg/util/errorutil"
)

// LibraryService manages the guide-library catalogue tree and file uploads.
type LibraryService struct {
	repo        repository.LibraryRepository
	objects     persistence.ObjectStore
	maxUploadMB int
}

// NewLibraryService constructs the service.
func NewLibraryService(repo repository.LibraryRepository, objects persistence.ObjectStore, maxUploadMB int) *LibraryService {
	return &LibraryService{repo: repo, objects: objects, maxUploadMB: maxUploadMB}
}

// CreateCatalogueInput describes a new catalogue node.
type CreateCatalogueInput struct {
	Name        string
	Description string
	ParentID    *string
}

// UploadFileInput describes one file upload.
type UploadFileInput struct {
	CatalogueID string
	Name        string
	ContentType string
	Data        []byte
}

// CatalogueNode is one tree node with its children and files.
type CatalogueNode struct {
	Catalogue domain.Catalogue    `json:"catalogue"`
	Children  []*CatalogueNode    `json:"children"`
	Files     []domain.FileRecord `json:"files"`
}

// CreateCatalogue adds a catalogue node, optionally under a parent.
func (s *LibraryService) CreateCatalogue(ctx context.Context, input CreateCatalogueInput) (domain.Catalogue, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Catalogue{}, apperrors.NewValidationError("catalogue name required", nil)
	}
	if input.ParentID != nil {
		if _, err := s.repo.GetCatalogue(ctx, *input.ParentID); err != nil {
			if repository.IsNotFound(err) {
				return domain.Catalogue{}, apperrors.NewNotFound("parent catalogue", map[string]any{"id": *input.ParentID})
			}
			return domain.Catalogue{}, err
		}
	}

	catalogue := domain.Catalogue{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		ParentID:    input.ParentID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.SaveCatalogue(ctx, catalogue); err != nil {
		return domain.Catalogue{}, err
	}
	return catalogue, nil
}

// UploadFile stores the bytes in the object store and indexes the record.
func (s *LibraryService) UploadFile(ctx context.Context, input UploadFileInput) (domain.FileRecord, error) {
	if strings.TrimSpace(input.Name) == "" {
		return domain.FileRecord{}, apperrors.NewValidationError("file name required", nil)
	}
	if len(input.Data) == 0 {
		return domain.FileRecord{}, apperrors.NewValidationError("file is empty", nil)
	}
	if s.maxUploadMB > 0 && len(input.Data) > s.maxUploadMB*1024*1024 {
		return domain.FileRecord{}, apperrors.NewValidationError("file exceeds upload limit", map[string]any{"max_mb": s.maxUploadMB})
	}
	if _, err := s.repo.GetCatalogue(ctx, input.CatalogueID); err != nil {
		if repository.IsNotFound(err) {
			return domain.FileRecord{}, apperrors.NewNotFound("catalogue", map[string]any{"id": input.CatalogueID})
		}
		return domain.FileRecord{}, err
	}

	id := uuid.NewString()
	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := s.objects.Put(ctx, id, persistence.StoredObject{ContentType: contentType, Data: input.Data}); err != nil {
		return domain.FileRecord{}, err
	}

	record := domain.FileRecord{
		ID:          id,
		CatalogueID: input.CatalogueID,
		Name:        strings.TrimSpace(input.Name),
		ContentType: contentType,
		SizeBytes:   int64(len(input.Data)),
		StorageKey:  id,
		DownloadURL: s.objects.URL(id),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.SaveFile(ctx, record); err != nil {
		return domain.FileRecord{}, err
	}
	return record, nil
}

// DownloadFile returns the index record and the stored bytes.
func (s *LibraryService) DownloadFile(ctx context.Context, id string) (domain.FileRecord, persistence.StoredObject, error) {
	record, err := s.repo.GetFile(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return domain.FileRecord{}, persistence.StoredObject{}, apperrors.NewNotFound("file", map[string]any{"id": id})
		}
		return domain.FileRecord{}, persistence.StoredObject{}, err
	}
	object, err := s.objects.Get(ctx, record.StorageKey)
	if err != nil {
		return domain.FileRecord{}, persistence.StoredObject{}, err
	}
	return record, object, nil
}

// Tree assembles the catalogue hierarchy with files attached to their nodes.
func (s *LibraryService) Tree(ctx context.Context) ([]*CatalogueNode, error) {
	catalogues, err := s.repo.ListCatalogues(ctx)
	if err != nil {
		return nil, err
	}
	files, err := s.repo.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(catalogues, func(i, j int) bool { return catalogues[i].Name < catalogues[j].Name })
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	nodes := make(map[string]*CatalogueNode, len(catalogues))
	for _, catalogue := range catalogues {
		nodes[catalogue.ID] = &CatalogueNode{
			Catalogue: catalogue,
			Children:  []*CatalogueNode{},
			Files:     []domain.FileRecord{},
		}
	}
	for _, file := range files {
		if node, ok := nodes[file.CatalogueID]; ok {
			node.Files = append(node.Files, file)
		}
	}

	roots := make([]*CatalogueNode, 0)
	for _, catalogue := range catalogues {
		node := nodes[catalogue.ID]
		if catalogue.ParentID != nil {
			if parent, ok := nodes[*catalogue.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}
