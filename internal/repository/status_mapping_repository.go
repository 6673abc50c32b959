package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// StatusMappingRepository persists the admin-edited status mapping document.
type StatusMappingRepository interface {
	Get(ctx context.Context) (domain.StatusMapping, error)
	Upsert(ctx context.Context, code string, entry domain.StatusMappingEntry) error
}

type statusMappingRepository struct {
	store DocumentStore
}

// NewStatusMappingRepository instantiates the repository.
func NewStatusMappingRepository(store DocumentStore) StatusMappingRepository {
	return &statusMappingRepository{store: store}
}

func (r *statusMappingRepository) Get(ctx context.Context) (domain.StatusMapping, error) {
	raw, err := r.store.Get(ctx, CollectionStatusMapping, KeyStatusMapping)
	if err != nil {
		if IsNotFound(err) {
			return domain.StatusMapping{}, nil
		}
		return nil, err
	}
	mapping := domain.StatusMapping{}
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, fmt.Errorf("decode status mapping: %w", err)
	}
	return mapping, nil
}

func (r *statusMappingRepository) Upsert(ctx context.Context, code string, entry domain.StatusMappingEntry) error {
	mapping, err := r.Get(ctx)
	if err != nil {
		return err
	}
	mapping[code] = entry

	raw, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("encode status mapping: %w", err)
	}
	return r.store.Set(ctx, CollectionStatusMapping, KeyStatusMapping, raw)
}
