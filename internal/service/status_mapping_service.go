package service

import (
	"context"
	"strings"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/events"
	"github.com/Behnamfe76/aftersales-ops/internal/repository"
	apperrors "github.com/Behnamfe76/aftersales-ops/pkg/util/errorutil"
)

// StatusMappingService reads and edits the status classification table.
type StatusMappingService struct {
	repo       repository.StatusMappingRepository
	dispatcher events.Dispatcher
}

// NewStatusMappingService constructs the service.
func NewStatusMappingService(repo repository.StatusMappingRepository, dispatcher events.Dispatcher) *StatusMappingService {
	return &StatusMappingService{repo: repo, dispatcher: dispatcher}
}

// Mapping returns the full mapping table.
func (s *StatusMappingService) Mapping(ctx context.Context) (domain.StatusMapping, error) {
	return s.repo.Get(ctx)
}

// Upsert stores one mapping entry keyed by status code.
func (s *StatusMappingService) Upsert(ctx context.Context, code string, entry domain.StatusMappingEntry) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apperrors.NewValidationError("status code required", nil)
	}
	entry.TicketStatusText = strings.TrimSpace(entry.TicketStatusText)
	entry.FirstLevelStatus = strings.TrimSpace(entry.FirstLevelStatus)
	if entry.TicketStatusText == "" && entry.FirstLevelStatus == "" {
		return apperrors.NewValidationError("mapping entry needs a status text or first-level status", nil)
	}

	if err := s.repo.Upsert(ctx, code, entry); err != nil {
		return err
	}
	if s.dispatcher != nil {
		event := events.NewEvent(events.EventStatusMappingChanged, events.StatusMappingChangedPayload{StatusCode: code})
		_ = s.dispatcher.Publish(ctx, event)
	}
	return nil
}
