package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Document collections owned by this service.
const (
	CollectionTickets       = "tickets"
	CollectionSettings      = "settings"
	CollectionStatusMapping = "status-mapping"
	CollectionCatalogues    = "catalogues"
	CollectionLibraryFiles  = "library-files"
)

// Singleton document keys.
const (
	KeyDisplaySettings = "display-settings"
	KeyStatusMapping   = "status-mapping"
)

// DocumentStore is the key-value contract over the hosted document database.
type DocumentStore interface {
	Get(ctx context.Context, collection, key string) (json.RawMessage, error)
	Set(ctx context.Context, collection, key string, value json.RawMessage) error
	List(ctx context.Context, collection string) (map[string]json.RawMessage, error)
	Exists(ctx context.Context, collection, key string) (bool, error)
}

type documentStore struct {
	pool *pgxpool.Pool
}

// NewDocumentStore backs the document contract with a single JSONB table.
func NewDocumentStore(pool *pgxpool.Pool) DocumentStore {
	return &documentStore{pool: pool}
}

func (s *documentStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	const query = `SELECT value FROM documents WHERE collection=$1 AND key=$2`
	var value json.RawMessage
	if err := s.pool.QueryRow(ctx, query, collection, key).Scan(&value); err != nil {
		return nil, err
	}
	return value, nil
}

func (s *documentStore) Set(ctx context.Context, collection, key string, value json.RawMessage) error {
	const query = `
        INSERT INTO documents (collection, key, value)
        VALUES ($1,$2,$3)
        ON CONFLICT (collection, key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`
	_, err := s.pool.Exec(ctx, query, collection, key, value)
	return err
}

func (s *documentStore) List(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	const query = `SELECT key, value FROM documents WHERE collection=$1`
	rows, err := s.pool.Query(ctx, query, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]json.RawMessage)
	for rows.Next() {
		var key string
		var value json.RawMessage
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, rows.Err()
}

func (s *documentStore) Exists(ctx context.Context, collection, key string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM documents WHERE collection=$1 AND key=$2)`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, collection, key).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// IsNotFound reports whether err is the store's missing-document signal.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
