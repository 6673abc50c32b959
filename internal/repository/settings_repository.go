package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
)

// SettingsRepository persists the display-settings document. A missing
// document reads as all-visible defaults.
type SettingsRepository interface {
	Get(ctx context.Context) (domain.DisplaySettings, error)
	SetVisibility(ctx context.Context, category domain.VisibilityCategory, entityID string, visible bool) error
}

type settingsRepository struct {
	store DocumentStore
}

// NewSettingsRepository instantiates the repository.
func NewSettingsRepository(store DocumentStore) SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) Get(ctx context.Context) (domain.DisplaySettings, error) {
	raw, err := r.store.Get(ctx, CollectionSettings, KeyDisplaySettings)
	if err != nil {
		if IsNotFound(err) {
			return domain.NewDisplaySettings(), nil
		}
		return domain.DisplaySettings{}, err
	}
	settings := domain.NewDisplaySettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.DisplaySettings{}, fmt.Errorf("decode display settings: %w", err)
	}
	if settings.Dealerships == nil {
		settings.Dealerships = make(map[string]bool)
	}
	if settings.Employees == nil {
		settings.Employees = make(map[string]bool)
	}
	if settings.Repairs == nil {
		settings.Repairs = make(map[string]bool)
	}
	return settings, nil
}

func (r *settingsRepository) SetVisibility(ctx context.Context, category domain.VisibilityCategory, entityID string, visible bool) error {
	settings, err := r.Get(ctx)
	if err != nil {
		return err
	}
	flags := settings.Category(category)
	if flags == nil {
		return fmt.Errorf("unknown visibility category %q", category)
	}
	flags[entityID] = visible

	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode display settings: %w", err)
	}
	return r.store.Set(ctx, CollectionSettings, KeyDisplaySettings, raw)
}
