package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// LibraryRepository persists guide-library catalogue nodes and file index
// records.
type LibraryRepository interface {
	SaveCatalogue(ctx context.Context, catalogue domain.Catalogue) error
	GetCatalogue(ctx context.Context, id string) (domain.Catalogue, error)
	ListCatalogues(ctx context.Context) ([]domain.Catalogue, error)
	SaveFile(ctx context.Context, file domain.FileRecord) error
	GetFile(ctx context.Context, id string) (domain.FileRecord, error)
	ListFiles(ctx context.Context) ([]domain.FileRecord, error)
}

type libraryRepository struct {
	store DocumentStore
}

// NewLibraryRepository instantiates the repository.
func NewLibraryRepository(store DocumentStore) LibraryRepository {
	return &libraryRepository{store: store}
}

func (r *libraryRepository) SaveCatalogue(ctx context.Context, catalogue domain.Catalogue) error {
	raw, err := json.Marshal(catalogue)
	if err != nil {
		return fmt.Errorf("encode catalogue: %w", err)
	}
	return r.store.Set(ctx, CollectionCatalogues, catalogue.ID, raw)
}

func (r *libraryRepository) GetCatalogue(ctx context.Context, id string) (domain.Catalogue, error) {
	raw, err := r.store.Get(ctx, CollectionCatalogues, id)
	if err != nil {
		return domain.Catalogue{}, err
	}
	var catalogue domain.Catalogue
	if err := json.Unmarshal(raw, &catalogue); err != nil {
		return domain.Catalogue{}, fmt.Errorf("decode catalogue: %w", err)
	}
	return catalogue, nil
}

func (r *libraryRepository) ListCatalogues(ctx context.Context) ([]domain.Catalogue, error) {
	docs, err := r.store.List(ctx, CollectionCatalogues)
	if err != nil {
		return nil, err
	}
	catalogues := make([]domain.Catalogue, 0, len(docs))
	for id, raw := range docs {
		var catalogue domain.Catalogue
		if err := json.Unmarshal(raw, &catalogue); err != nil {
			return nil, fmt.Errorf("decode catalogue %s: %w", id, err)
		}
		catalogues = append(catalogues, catalogue)
	}
	return catalogues, nil
}

func (r *libraryRepository) SaveFile(ctx context.Context, file domain.FileRecord) error {
	raw, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode file record: %w", err)
	}
	return r.store.Set(ctx, CollectionLibraryFiles, file.ID, raw)
}

func (r *libraryRepository) GetFile(ctx context.Context, id string) (domain.FileRecord, error) {
	raw, err := r.store.Get(ctx, CollectionLibraryFiles, id)
	if err != nil {
		return domain.FileRecord{}, err
	}
	var file domain.FileRecord
	if err := json.Unmarshal(raw, &file); err != nil {
		return domain.FileRecord{}, fmt.Errorf("decode file record: %w", err)
	}
	return file, nil
}

func (r *libraryRepository) ListFiles(ctx context.Context) ([]domain.FileRecord, error) {
	docs, err := r.store.List(ctx, CollectionLibraryFiles)
	if err != nil {
		return nil, err
	}
	files := make([]domain.FileRecord, 0, len(docs))
	for id, raw := range docs {
		var file domain.FileRecord
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("decode file record %s: %w", id, err)
		}
		files = append(files, file)
	}
	return files, nil
}
