// Package redis implements store.Store on top of a Redis server via
// redis/go-redis/v9.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/loadq/store"
)

const defaultOpTimeout = 5 * time.Second

type Config struct {
	// Client is an optional pre-built client. When set, Addr/Username/
	// Password/DB are ignored.
	Client goredis.UniversalClient

	// CloseClient releases the client on Close. Set true only if this store
	// exclusively owns the client.
	CloseClient bool

	Addr     string
	Username string
	Password string
	DB       int

	// OpTimeout bounds every store call; 0 => 5s.
	OpTimeout time.Duration
}

// Store is a Redis-backed store.Store. The connection is long-lived and
// reused across calls; reconnect-on-failure is the caller's retry policy,
// not built in here.
type Store struct {
	rdb         goredis.UniversalClient
	closeClient bool
	opTimeout   time.Duration
	connected   atomic.Bool
}

var _ store.Store = (*Store)(nil)

// New builds the client but does not touch the network. Call Ping to
// establish and verify the connection before use.
func New(cfg Config) (*Store, error) {
	rdb := cfg.Client
	closeClient := cfg.CloseClient
	if rdb == nil {
		if cfg.Addr == "" {
			return nil, errors.New("redis store: addr or client required")
		}
		rdb = goredis.NewClient(&goredis.Options{
			Addr:     cfg.Addr,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		closeClient = true // we built it, we own it
	}
	ot := cfg.OpTimeout
	if ot <= 0 {
		ot = defaultOpTimeout
	}
	return &Store{rdb: rdb, closeClient: closeClient, opTimeout: ot}, nil
}

// Ping verifies connectivity with a single PING and marks the store
// connected on success. Never retried internally.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	s.connected.Store(true)
	return nil
}

func (s *Store) Connected() bool { return s.connected.Load() }

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !s.connected.Load() {
		return nil, false, store.ErrUnavailable
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	b, err := s.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !s.connected.Load() {
		return store.ErrUnavailable
	}
	if ttl <= 0 {
		ttl = 0 // no expiry
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *Store) Del(ctx context.Context, key string) (bool, error) {
	if !s.connected.Load() {
		return false, store.ErrUnavailable
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	n, err := s.rdb.Del(ctx, key).Result()
	return n > 0, err
}

func (s *Store) Keys(ctx context.Context, pattern string) ([]string, error) {
	if !s.connected.Load() {
		return nil, store.ErrUnavailable
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.Keys(ctx, pattern).Result()
}

func (s *Store) ListPush(ctx context.Context, key string, value []byte) error {
	if !s.connected.Load() {
		return store.ErrUnavailable
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.LPush(ctx, key, value).Err()
}

func (s *Store) ListRemove(ctx context.Context, key string, value []byte, count int64) (int64, error) {
	if !s.connected.Load() {
		return 0, store.ErrUnavailable
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	return s.rdb.LRem(ctx, key, count, value).Result()
}

func (s *Store) ListRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	if !s.connected.Load() {
		return nil, store.ErrUnavailable
	}
	ctx, cancel := s.opCtx(ctx)
	defer cancel()
	vals, err := s.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out, nil
}

// Close marks the store unavailable and releases the underlying client only
// when this store owns it. Safe to call multiple times.
func (s *Store) Close(context.Context) error {
	s.connected.Store(false)
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}
