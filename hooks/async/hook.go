// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/loadq"
//	"github.com/unkn0wn-root/loadq/hooks/async"
//	"github.com/unkn0wn-root/loadq/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    HitEvery:  100, // sample logs: ~every 100th hit
//	    MissEvery: 1,   // log every miss
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	loader, _ := loadq.NewLoader(loadq.LoaderOptions{
//	    Store: st,
//	    Hooks: hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/loadq"
)

type Hooks struct {
	inner loadq.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ loadq.Hooks = (*Hooks)(nil)

func New(inner loadq.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CacheHit(s string)     { h.try(func() { h.inner.CacheHit(s) }) }
func (h *Hooks) SelfHeal(k string)     { h.try(func() { h.inner.SelfHeal(k) }) }
func (h *Hooks) CacheMiss(s, r string) { h.try(func() { h.inner.CacheMiss(s, r) }) }
func (h *Hooks) StoreWriteFailed(k string, err error) {
	h.try(func() { h.inner.StoreWriteFailed(k, err) })
}
func (h *Hooks) TaskFailed(q string, err error) {
	h.try(func() { h.inner.TaskFailed(q, err) })
}
func (h *Hooks) TaskDecodeFailed(q string, err error) {
	h.try(func() { h.inner.TaskDecodeFailed(q, err) })
}
