package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// StoredObject is one uploaded binary with its content type.
type StoredObject struct {
	ContentType string
	Data        []byte
}

// ObjectStore persists uploaded file bytes and issues public download URLs.
type ObjectStore interface {
	Put(ctx context.Context, key string, obj StoredObject) error
	Get(ctx context.Context, key string) (StoredObject, error)
	URL(key string) string
}

// ErrObjectNotFound is returned when no object exists under a key.
var ErrObjectNotFound = errors.New("object not found")

const objectKeyPrefix = "objects:"

type redisObjectStore struct {
	client        *redis.Client
	publicBaseURL string
}

// NewObjectStore stores objects in Redis hashes and composes download URLs
// from the configured public base.
func NewObjectStore(r *Redis, publicBaseURL string) ObjectStore {
	return &redisObjectStore{
		client:        r.Client,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *redisObjectStore) Put(ctx context.Context, key string, obj StoredObject) error {
	return s.client.HSet(ctx, objectKeyPrefix+key, map[string]any{
		"contentType": obj.ContentType,
		"data":        obj.Data,
		"storedAt":    time.Now().UTC().Format(time.RFC3339),
	}).Err()
}

func (s *redisObjectStore) Get(ctx context.Context, key string) (StoredObject, error) {
	fields, err := s.client.HGetAll(ctx, objectKeyPrefix+key).Result()
	if err != nil {
		return StoredObject{}, err
	}
	if len(fields) == 0 {
		return StoredObject{}, ErrObjectNotFound
	}
	return StoredObject{
		ContentType: fields["contentType"],
		Data:        []byte(fields["data"]),
	}, nil
}

func (s *redisObjectStore) URL(key string) string {
	return fmt.Sprintf("%s/library/files/%s/download", s.publicBaseURL, key)
}
