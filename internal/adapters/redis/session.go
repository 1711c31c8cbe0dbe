// Package redisad persists the session slice (identity, language, dark mode)
// across client restarts. One JSON document per session key, no TTL: the
// state is restored verbatim on next launch without revalidation.
package redisad

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"jizzakh_hotels/internal/adapters/observability"
)

type Store struct {
	c   *redis.Client
	key string
}

func New(addr, pass string, db int, sessionKey string) *Store {
	return &Store{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		key: "session:" + sessionKey,
	}
}

// NewWithClient is used by tests that bring their own (miniredis-backed) client.
func NewWithClient(c *redis.Client, sessionKey string) *Store {
	return &Store{c: c, key: "session:" + sessionKey}
}

func (s *Store) Load(ctx context.Context, dst any) (bool, error) {
	v, err := s.c.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		observability.ObserveSession("restore_empty")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveSession("restore")
	return true, json.Unmarshal(v, dst)
}

func (s *Store) Save(ctx context.Context, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveSession("save")
	return s.c.Set(ctx, s.key, b, 0).Err()
}

func (s *Store) Clear(ctx context.Context) error {
	observability.ObserveSession("clear")
	return s.c.Del(ctx, s.key).Err()
}
