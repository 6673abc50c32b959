package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Behnamfe76/aftersales-ops/internal/domain"
	"github.com/Behnamfe76/aftersales-ops/internal/persistence"
)

// ErrNoTicketData signals an empty or absent ticket collection. Retry policy
// is the caller's concern.
var ErrNoTicketData = errors.New("no ticket data available")

const ticketSnapshotKey = "tickets:snapshot"

// TicketRepository serves the ticket collection snapshot.
type TicketRepository interface {
	// FetchAll returns the full collection, from the Redis snapshot when one
	// is fresh, otherwise from the document store.
	FetchAll(ctx context.Context) (domain.TicketCollection, error)
	// Refresh bypasses and rewrites the snapshot.
	Refresh(ctx context.Context) (domain.TicketCollection, error)
}

type ticketRepository struct {
	store    DocumentStore
	cache    *redis.Client
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewTicketRepository instantiates the repository. A zero TTL disables the
// snapshot cache.
func NewTicketRepository(store DocumentStore, cache *persistence.Redis, cacheTTL time.Duration, logger *zap.Logger) TicketRepository {
	var client *redis.Client
	if cache != nil {
		client = cache.Client
	}
	return &ticketRepository{
		store:    store,
		cache:    client,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (r *ticketRepository) FetchAll(ctx context.Context) (domain.TicketCollection, error) {
	if cached, ok := r.fromCache(ctx); ok {
		return cached, nil
	}
	return r.Refresh(ctx)
}

func (r *ticketRepository) Refresh(ctx context.Context) (domain.TicketCollection, error) {
	docs, err := r.store.List(ctx, CollectionTickets)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNoTicketData
	}

	tickets := make(domain.TicketCollection, len(docs))
	for id, raw := range docs {
		var ticket domain.Ticket
		if err := json.Unmarshal(raw, &ticket); err != nil {
			// Dirty records are expected upstream; skip rather than fail the
			// whole collection.
			r.logger.Warn("skipping malformed ticket document", zap.String("id", id), zap.Error(err))
			continue
		}
		if ticket.TicketID == "" {
			ticket.TicketID = id
		}
		tickets[id] = ticket
	}
	if len(tickets) == 0 {
		return nil, ErrNoTicketData
	}

	r.toCache(ctx, tickets)
	return tickets, nil
}

func (r *ticketRepository) fromCache(ctx context.Context) (domain.TicketCollection, bool) {
	if r.cache == nil || r.cacheTTL <= 0 {
		return nil, false
	}
	raw, err := r.cache.Get(ctx, ticketSnapshotKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("ticket snapshot cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var tickets domain.TicketCollection
	if err := json.Unmarshal(raw, &tickets); err != nil {
		return nil, false
	}
	return tickets, true
}

func (r *ticketRepository) toCache(ctx context.Context, tickets domain.TicketCollection) {
	if r.cache == nil || r.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(tickets)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, ticketSnapshotKey, raw, r.cacheTTL).Err(); err != nil {
		r.logger.Warn("ticket snapshot cache write failed", zap.Error(err))
	}
}
