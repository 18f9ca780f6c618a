package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/loadq"
)

type Options struct {
	// Sampling to avoid floods on the hit/miss hot path; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

// Hooks logs loadq events through slog, with sampling on the frequent ones.
type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ loadq.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CacheHit(sourceID string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("loadq.cache_hit",
		"source", h.redact(sourceID))
}

func (h *Hooks) CacheMiss(sourceID, reason string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("loadq.cache_miss",
		"source", h.redact(sourceID),
		"reason", reason)
}

func (h *Hooks) SelfHeal(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("loadq.self_heal",
		"key", h.redact(storageKey))
}

func (h *Hooks) StoreWriteFailed(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("loadq.store_write_failed",
		"key", h.redact(storageKey),
		"err", err)
}

func (h *Hooks) TaskFailed(queue string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("loadq.task_failed",
		"queue", queue,
		"err", err)
}

func (h *Hooks) TaskDecodeFailed(queue string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("loadq.task_decode_failed",
		"queue", queue,
		"err", err)
}
