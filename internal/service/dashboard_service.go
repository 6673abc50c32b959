package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Behnamfe76/aftersales-ops/internal/analytics"
	"github.com/Behnamfe76/aftersales-ops/internal/config"
	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/events"
	"github.com/Behnamfe76/aftersales-ops/internal/repository"
)

// QueryOptions shape a single dashboard query.
type QueryOptions struct {
	Visibility       analytics.FilterOptions
	ExcludedStatuses []string
	// TrendMonths overrides the trend window to the last N months when
	// positive.
	TrendMonths int
}

// DashboardService runs the fetch → filter → aggregate pipeline. The fetched
// collection is memoized between calls; settings, mapping and refresh events
// drop the memo.
type DashboardService struct {
	tickets    repository.TicketRepository
	settings   repository.SettingsRepository
	mapping    repository.StatusMappingRepository
	dispatcher events.Dispatcher
	reports    config.ReportsConfig
	logger     *zap.Logger

	mu   sync.Mutex
	memo domain.TicketCollection
}

// DashboardDependencies bundles collaborators for the dashboard service.
type DashboardDependencies struct {
	TicketRepo   repository.TicketRepository
	SettingsRepo repository.SettingsRepository
	MappingRepo  repository.StatusMappingRepository
	Dispatcher   events.Dispatcher
	Reports      config.ReportsConfig
	Logger       *zap.Logger
}

// NewDashboardService constructs the service and subscribes its memo
// invalidation to state-change events.
func NewDashboardService(deps DashboardDependencies) *DashboardService {
	s := &DashboardService{
		tickets:    deps.TicketRepo,
		settings:   deps.SettingsRepo,
		mapping:    deps.MappingRepo,
		dispatcher: deps.Dispatcher,
		reports:    deps.Reports,
		logger:     deps.Logger,
	}
	if deps.Dispatcher != nil {
		invalidate := func(ctx context.Context, event events.Event) error {
			s.Invalidate()
			return nil
		}
		deps.Dispatcher.Subscribe(events.EventSettingsChanged, invalidate)
		deps.Dispatcher.Subscribe(events.EventStatusMappingChanged, invalidate)
		deps.Dispatcher.Subscribe(events.EventTicketsRefreshed, invalidate)
	}
	return s
}

// DefaultQueryOptions derives the standard view options from configuration.
func (s *DashboardService) DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Visibility: analytics.FilterOptions{
			ApplyDealershipVisibility: s.reports.DealershipVisibilityOn,
			ApplyEmployeeVisibility:   s.reports.EmployeeVisibilityOn,
			ApplyRepairVisibility:     s.reports.RepairVisibilityOn,
		},
		ExcludedStatuses: s.reports.ExcludedStatuses,
	}
}

// Invalidate drops the memoized snapshot.
func (s *DashboardService) Invalidate() {
	s.mu.Lock()
	s.memo = nil
	s.mu.Unlock()
}

// Refresh re-reads the ticket collection from the store and announces it.
func (s *DashboardService) Refresh(ctx context.Context) (int, error) {
	tickets, err := s.tickets.Refresh(ctx)
	if err != nil {
		return 0, err
	}
	s.mu.Lock()
	s.memo = tickets
	s.mu.Unlock()

	if s.dispatcher != nil {
		event := events.NewEvent(events.EventTicketsRefreshed, events.TicketsRefreshedPayload{TicketCount: len(tickets)})
		_ = s.dispatcher.Publish(ctx, event)
	}
	return len(tickets), nil
}

// DealerStats returns the per-dealer rollup over the filtered collection.
func (s *DashboardService) DealerStats(ctx context.Context, opts QueryOptions) ([]domain.DealerStats, error) {
	tickets, _, err := s.prepared(ctx, opts)
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeDealers(tickets), nil
}

// EmployeeStats returns the per-employee rollup.
func (s *DashboardService) EmployeeStats(ctx context.Context, opts QueryOptions) ([]domain.EmployeeStats, error) {
	tickets, _, err := s.prepared(ctx, opts)
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeEmployees(tickets, analytics.DefaultEmployeeOptions()), nil
}

// RepairStats returns the per-repair-shop rollup.
func (s *DashboardService) RepairStats(ctx context.Context, opts QueryOptions) ([]domain.RepairStats, error) {
	tickets, _, err := s.prepared(ctx, opts)
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeRepairs(tickets), nil
}

// MonthlyTrend buckets the filtered collection per month from the configured
// start month (or twelve months back) through now; opts.TrendMonths narrows
// the window when set.
func (s *DashboardService) MonthlyTrend(ctx context.Context, opts QueryOptions) ([]domain.MonthBucket, error) {
	tickets, _, err := s.prepared(ctx, opts)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	start := now.AddDate(-1, 0, 0)
	if s.reports.TrendStartMonth != "" {
		if parsed, err := time.Parse("2006-01", s.reports.TrendStartMonth); err == nil {
			start = parsed
		}
	}
	if opts.TrendMonths > 0 {
		start = now.AddDate(0, -opts.TrendMonths, 0)
	}
	return analytics.MonthlyTrend(tickets, start, now), nil
}

// StatusMatrix builds the status×age matrix for the given claim type; an
// empty claimType falls back to the configured one.
func (s *DashboardService) StatusMatrix(ctx context.Context, claimType string, opts QueryOptions) (domain.StatusMatrix, error) {
	tickets, mapping, err := s.prepared(ctx, opts)
	if err != nil {
		return domain.StatusMatrix{}, err
	}
	if claimType == "" {
		claimType = s.reports.MatrixClaimType
	}
	now := time.Now().UTC()
	return analytics.BuildStatusMatrix(tickets, mapping, claimType, analytics.DefaultMatrixRows(now), now), nil
}

// prepared returns the memoized collection with both filters applied, plus
// the current status mapping.
func (s *DashboardService) prepared(ctx context.Context, opts QueryOptions) (domain.TicketCollection, domain.StatusMapping, error) {
	tickets, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, nil, err
	}
	mapping, err := s.mapping.Get(ctx)
	if err != nil {
		return nil, nil, err
	}

	tickets = analytics.FilterByDisplaySettings(tickets, &settings, opts.Visibility)
	tickets = analytics.FilterByFirstLevelStatus(tickets, mapping, opts.ExcludedStatuses)
	return tickets, mapping, nil
}

func (s *DashboardService) snapshot(ctx context.Context) (domain.TicketCollection, error) {
	s.mu.Lock()
	memo := s.memo
	s.mu.Unlock()
	if memo != nil {
		return memo, nil
	}

	tickets, err := s.tickets.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.memo = tickets
	s.mu.Unlock()
	return tickets, nil
}
