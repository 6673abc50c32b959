package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Behnamfe76/aftersales-ops/internal/analytics"
	"github.com/Behnamfe76/aftersales-ops/internal/config"
	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/events"
	"github.com/Behnamfe76/aftersales-ops/internal/repository"
)

type fakeTicketRepo struct {
	tickets domain.TicketCollection
	fetches int
	err     error
}

func (f *fakeTicketRepo) FetchAll(ctx context.Context) (domain.TicketCollection, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.tickets, nil
}

func (f *fakeTicketRepo) Refresh(ctx context.Context) (domain.TicketCollection, error) {
	return f.FetchAll(ctx)
}

type fakeMappingRepo struct {
	mapping domain.StatusMapping
}

func (f *fakeMappingRepo) Get(ctx context.Context) (domain.StatusMapping, error) {
	return f.mapping, nil
}

func (f *fakeMappingRepo) Upsert(ctx context.Context, code string, entry domain.StatusMappingEntry) error {
	f.mapping[code] = entry
	return nil
}

func dashboardFixture(tickets domain.TicketCollection) (*DashboardService, *fakeTicketRepo, events.Dispatcher) {
	ticketRepo := &fakeTicketRepo{tickets: tickets}
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewDashboardService(DashboardDependencies{
		TicketRepo:   ticketRepo,
		SettingsRepo: &fakeSettingsRepo{settings: domain.NewDisplaySettings()},
		MappingRepo:  &fakeMappingRepo{mapping: domain.StatusMapping{"Z9": {FirstLevelStatus: "Closed"}}},
		Dispatcher:   dispatcher,
		Reports: config.ReportsConfig{
			DealershipVisibilityOn: true,
			RepairVisibilityOn:     true,
			MatrixClaimType:        "Claim",
		},
		Logger: zap.NewNop(),
	})
	return svc, ticketRepo, dispatcher
}

func dashboardTickets() domain.TicketCollection {
	return domain.TicketCollection{
		"t1": {TicketID: "t1", StatusCode: "Z9", StatusText: "Done", AmountIncludingTax: "100",
			Roles: map[string]domain.PartyRole{
				domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
			}},
		"t2": {TicketID: "t2", StatusCode: "A1", StatusText: "Open", AmountIncludingTax: "700",
			Roles: map[string]domain.PartyRole{
				domain.RoleCodeDealer: {PartnerID: "D1", PartnerName: "Acme"},
			}},
	}
}

func TestDashboardDealerStats(t *testing.T) {
	svc, _, _ := dashboardFixture(dashboardTickets())

	stats, err := svc.DealerStats(context.Background(), svc.DefaultQueryOptions())
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "D1", stats[0].DealerID)
	assert.Equal(t, 2, stats[0].TotalTickets)
}

func TestDashboardExcludedStatuses(t *testing.T) {
	svc, _, _ := dashboardFixture(dashboardTickets())

	opts := svc.DefaultQueryOptions()
	opts.ExcludedStatuses = []string{"closed"}
	stats, err := svc.DealerStats(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].TotalTickets)
}

func TestDashboardMemoizesSnapshot(t *testing.T) {
	svc, ticketRepo, _ := dashboardFixture(dashboardTickets())
	opts := svc.DefaultQueryOptions()

	_, err := svc.DealerStats(context.Background(), opts)
	require.NoError(t, err)
	_, err = svc.RepairStats(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, ticketRepo.fetches)
}

func TestDashboardEventInvalidatesMemo(t *testing.T) {
	svc, ticketRepo, dispatcher := dashboardFixture(dashboardTickets())
	opts := svc.DefaultQueryOptions()

	_, err := svc.DealerStats(context.Background(), opts)
	require.NoError(t, err)

	event := events.NewEvent(events.EventSettingsChanged, nil)
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	_, err = svc.DealerStats(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, ticketRepo.fetches)
}

func TestDashboardPropagatesNoTicketData(t *testing.T) {
	svc, ticketRepo, _ := dashboardFixture(nil)
	ticketRepo.err = repository.ErrNoTicketData

	_, err := svc.DealerStats(context.Background(), svc.DefaultQueryOptions())
	assert.ErrorIs(t, err, repository.ErrNoTicketData)
}

func TestDashboardTrendMonthsOverride(t *testing.T) {
	svc, _, _ := dashboardFixture(dashboardTickets())

	opts := svc.DefaultQueryOptions()
	opts.TrendMonths = 2
	trend, err := svc.MonthlyTrend(context.Background(), opts)
	require.NoError(t, err)
	// Window spans the start month through the current month inclusive;
	// end-of-month date normalization may shave one bucket.
	assert.GreaterOrEqual(t, len(trend), 2)
	assert.LessOrEqual(t, len(trend), 3)
}

func TestDashboardDefaultQueryOptions(t *testing.T) {
	svc, _, _ := dashboardFixture(nil)
	opts := svc.DefaultQueryOptions()
	assert.Equal(t, analytics.FilterOptions{
		ApplyDealershipVisibility: true,
		ApplyEmployeeVisibility:   false,
		ApplyRepairVisibility:     true,
	}, opts.Visibility)
}
