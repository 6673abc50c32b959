package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/events"
	"github.com/Behnamfe76/aftersales-ops/internal/repository"
)

// SettingsService owns the local copy of the display settings and applies
// visibility toggles optimistically: the local copy moves to the new value
// before the store write, and moves back to the prior value when the write
// fails. Toggles of different entities are independent; the whole structure
// is guarded by one mutex since toggles are rare and small.
type SettingsService struct {
	repo       repository.SettingsRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger

	mu     sync.Mutex
	loaded bool
	cached domain.DisplaySettings
}

// NewSettingsService constructs the service.
func NewSettingsService(repo repository.SettingsRepository, dispatcher events.Dispatcher, logger *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, dispatcher: dispatcher, logger: logger}
}

// Settings returns the current display settings, loading them from the store
// on first use.
func (s *SettingsService) Settings(ctx context.Context) (domain.DisplaySettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return domain.DisplaySettings{}, err
	}
	return copySettings(s.cached), nil
}

// SetVisibility toggles one entity flag. On write failure the optimistic
// local change is rolled back and the error returned to the caller.
func (s *SettingsService) SetVisibility(ctx context.Context, category domain.VisibilityCategory, entityID string, visible bool) (domain.DisplaySettings, error) {
	if entityID == "" {
		return domain.DisplaySettings{}, fmt.Errorf("entity id required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoadedLocked(ctx); err != nil {
		return domain.DisplaySettings{}, err
	}

	flags := s.cached.Category(category)
	if flags == nil {
		return domain.DisplaySettings{}, fmt.Errorf("unknown visibility category %q", category)
	}

	// Remember the prior state so a failed write can restore it.
	prior, hadPrior := flags[entityID]
	flags[entityID] = visible

	if err := s.repo.SetVisibility(ctx, category, entityID, visible); err != nil {
		if hadPrior {
			flags[entityID] = prior
		} else {
			delete(flags, entityID)
		}
		s.logger.Warn("visibility write failed, rolled back",
			zap.String("category", string(category)),
			zap.String("entity", entityID),
			zap.Error(err),
		)
		return domain.DisplaySettings{}, err
	}

	if s.dispatcher != nil {
		event := events.NewEvent(events.EventSettingsChanged, events.SettingsChangedPayload{
			Category: string(category),
			EntityID: entityID,
			Visible:  visible,
		})
		_ = s.dispatcher.Publish(ctx, event)
	}
	return copySettings(s.cached), nil
}

func (s *SettingsService) ensureLoadedLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	s.cached = settings
	s.loaded = true
	return nil
}

func copySettings(settings domain.DisplaySettings) domain.DisplaySettings {
	out := domain.NewDisplaySettings()
	for k, v := range settings.Dealerships {
		out.Dealerships[k] = v
	}
	for k, v := range settings.Employees {
		out.Employees[k] = v
	}
	for k, v := range settings.Repairs {
		out.Repairs[k] = v
	}
	return out
}
