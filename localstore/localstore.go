package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Store is a named JSON blob store: the durable-local-state analog of
// the browser's localStorage. Each key holds one whole serialized value
// that is read and written in a single call.
type Store interface {
	Get(ctx context.Context, key string, dest any) error
	Put(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

var ErrNotFound = errors.New("localstore: key not found")

// CartKey names the cart blob for a session.
func CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// DraftKey names a form-draft blob for a session.
func DraftKey(sessionID, form string) string {
	return "draft:" + sessionID + ":" + form
}

// RedisStore persists blobs in Redis.
type RedisStore struct {
	conn *redis.Client
}

func NewRedisStore(conn *redis.Client) *RedisStore {
	return &RedisStore{conn: conn}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) error {
	b, err := s.conn.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dest)
}

func (s *RedisStore) Put(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.conn.Set(ctx, key, b, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.conn.Del(ctx, key).Err()
}

// MemoryStore keeps blobs in process memory. Used in tests and as a
// fallback when Redis is unavailable.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, dest any) error {
	s.mu.Lock()
	b, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(b, dest)
}

func (s *MemoryStore) Put(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = b
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
