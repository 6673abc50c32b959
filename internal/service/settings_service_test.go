package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/events"
)

type fakeSettingsRepo struct {
	settings  domain.DisplaySettings
	failWrite bool
	writes    int
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (domain.DisplaySettings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) SetVisibility(ctx context.Context, category domain.VisibilityCategory, entityID string, visible bool) error {
	f.writes++
	if f.failWrite {
		return errors.New("store write rejected")
	}
	f.settings.Category(category)[entityID] = visible
	return nil
}

func newSettingsFixture(failWrite bool) (*SettingsService, *fakeSettingsRepo, events.Dispatcher) {
	repo := &fakeSettingsRepo{settings: domain.NewDisplaySettings(), failWrite: failWrite}
	dispatcher := events.NewInMemoryDispatcher()
	return NewSettingsService(repo, dispatcher, zap.NewNop()), repo, dispatcher
}

func TestSetVisibilityOptimisticSuccess(t *testing.T) {
	svc, repo, _ := newSettingsFixture(false)

	settings, err := svc.SetVisibility(context.Background(), domain.VisibilityDealerships, "D1", false)
	require.NoError(t, err)
	assert.False(t, settings.Dealerships["D1"])
	assert.Equal(t, 1, repo.writes)

	// Local state is the stable optimistic value.
	settings, err = svc.Settings(context.Background())
	require.NoError(t, err)
	assert.False(t, domain.Visibility(settings.Dealerships, "D1"))
}

func TestSetVisibilityRollsBackOnWriteFailure(t *testing.T) {
	svc, _, _ := newSettingsFixture(true)

	_, err := svc.SetVisibility(context.Background(), domain.VisibilityRepairs, "R1", false)
	require.Error(t, err)

	// Rolled back to the prior state: no flag, so default-visible.
	settings, err := svc.Settings(context.Background())
	require.NoError(t, err)
	_, present := settings.Repairs["R1"]
	assert.False(t, present)
	assert.True(t, domain.Visibility(settings.Repairs, "R1"))
}

func TestSetVisibilityRollbackRestoresPriorFlag(t *testing.T) {
	repo := &fakeSettingsRepo{settings: domain.NewDisplaySettings()}
	repo.settings.Employees["E1"] = false
	svc := NewSettingsService(repo, nil, zap.NewNop())

	// Load, then make the next write fail.
	_, err := svc.Settings(context.Background())
	require.NoError(t, err)
	repo.failWrite = true

	_, err = svc.SetVisibility(context.Background(), domain.VisibilityEmployees, "E1", true)
	require.Error(t, err)

	settings, err := svc.Settings(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.Employees["E1"])
}

func TestSetVisibilityPublishesEvent(t *testing.T) {
	svc, _, dispatcher := newSettingsFixture(false)

	var received []events.Event
	dispatcher.Subscribe(events.EventSettingsChanged, func(ctx context.Context, e events.Event) error {
		received = append(received, e)
		return nil
	})

	_, err := svc.SetVisibility(context.Background(), domain.VisibilityDealerships, "D1", false)
	require.NoError(t, err)
	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(events.SettingsChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "D1", payload.EntityID)
	assert.False(t, payload.Visible)
}

func TestSetVisibilityRejectsUnknownCategory(t *testing.T) {
	svc, repo, _ := newSettingsFixture(false)
	_, err := svc.SetVisibility(context.Background(), "nonsense", "X", false)
	require.Error(t, err)
	assert.Equal(t, 0, repo.writes)
}
