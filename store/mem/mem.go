// Package mem implements store.Store in process memory. It mirrors the Redis
// semantics loadq relies on (per-key TTL, glob key scans, push-end list
// ordering) and is intended for tests and single-process setups where no
// Redis server is reachable.
package mem

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/unkn0wn-root/loadq/store"
)

type entry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

// Store keeps entries and lists behind one mutex. Expired entries are
// dropped lazily on access and, when a sweep interval is configured, by a
// background loop.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	lists   map[string][][]byte
	closed  bool

	ticker *time.Ticker
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

var _ store.Store = (*Store)(nil)

// New creates a ready-to-use in-memory store. sweepInterval <= 0 disables
// the background sweep; lazy expiry on access still applies.
func New(sweepInterval time.Duration) *Store {
	s := &Store{
		entries: make(map[string]entry),
		lists:   make(map[string][][]byte),
	}
	if sweepInterval > 0 {
		s.ticker = time.NewTicker(sweepInterval)
		s.stopCh = make(chan struct{})
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for {
				select {
				case <-s.ticker.C:
					s.sweep()
				case <-s.stopCh:
					return
				}
			}
		}()
	}
	return s
}

func (s *Store) Ping(context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return store.ErrUnavailable
	}
	return nil
}

func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false, store.ErrUnavailable
	}
	e, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(s.entries, key)
		return nil, false, nil
	}
	return e.v, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return store.ErrUnavailable
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.entries[key] = entry{v: value, exp: exp}
	return nil
}

func (s *Store) Del(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, store.ErrUnavailable
	}
	if _, ok := s.entries[key]; ok {
		delete(s.entries, key)
		return true, nil
	}
	if _, ok := s.lists[key]; ok {
		delete(s.lists, key)
		return true, nil
	}
	return false, nil
}

func (s *Store) Keys(_ context.Context, pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, store.ErrUnavailable
	}
	now := time.Now()
	var out []string
	for k, e := range s.entries {
		if !e.exp.IsZero() && now.After(e.exp) {
			delete(s.entries, k)
			continue
		}
		if ok, _ := path.Match(pattern, k); ok {
			out = append(out, k)
		}
	}
	for k := range s.lists {
		if ok, _ := path.Match(pattern, k); ok {
			out = append(out, k)
		}
	}
	return out, nil
}

func (s *Store) ListPush(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return store.ErrUnavailable
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.lists[key] = append([][]byte{cp}, s.lists[key]...)
	return nil
}

func (s *Store) ListRemove(_ context.Context, key string, value []byte, count int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, store.ErrUnavailable
	}
	l, ok := s.lists[key]
	if !ok {
		return 0, nil
	}
	// LREM count semantics: >0 scans from the push end, <0 from the tail,
	// 0 removes every match.
	limit := count
	if limit < 0 {
		limit = -limit
	}
	var removed int64
	keep := make([]bool, len(l))
	for i := range keep {
		keep[i] = true
	}
	if count < 0 {
		for i := len(l) - 1; i >= 0 && removed < limit; i-- {
			if string(l[i]) == string(value) {
				keep[i] = false
				removed++
			}
		}
	} else {
		for i := 0; i < len(l) && (count == 0 || removed < limit); i++ {
			if string(l[i]) == string(value) {
				keep[i] = false
				removed++
			}
		}
	}
	kept := l[:0]
	for i, v := range l {
		if keep[i] {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(s.lists, key)
	} else {
		s.lists[key] = kept
	}
	return removed, nil
}

func (s *Store) ListRange(_ context.Context, key string, start, stop int64) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, store.ErrUnavailable
	}
	l := s.lists[key]
	n := int64(len(l))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop {
		return nil, nil
	}
	out := make([][]byte, 0, stop-start+1)
	for _, v := range l[start : stop+1] {
		cp := make([]byte, len(v))
		copy(cp, v)
		out = append(out, cp)
	}
	return out, nil
}

func (s *Store) Close(context.Context) error {
	s.once.Do(func() {
		if s.stopCh != nil {
			close(s.stopCh)
			s.ticker.Stop()
			s.wg.Wait()
		}
		s.mu.Lock()
		s.closed = true
		s.entries = nil
		s.lists = nil
		s.mu.Unlock()
	})
	return nil
}

func (s *Store) sweep() {
	now := time.Now()
	s.mu.Lock()
	for k, e := range s.entries {
		if !e.exp.IsZero() && e.exp.Before(now) {
			delete(s.entries, k)
		}
	}
	s.mu.Unlock()
}
