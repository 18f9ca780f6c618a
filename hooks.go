package loadq

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the loader and dispatcher call them on hot
// paths. Wrap with hooks/async to move expensive sinks off-path.
type Hooks interface {
	// A cached snapshot was served without invoking the loader.
	CacheHit(sourceID string)

	// No usable cached snapshot; the loader will be invoked.
	// reason ∈ {"absent", "store_error", "decode"}
	CacheMiss(sourceID, reason string)

	// A corrupt entry was deleted by the loader on read.
	SelfHeal(storageKey string)

	// The write-back after a successful load failed; the load itself
	// succeeded and was returned uncached.
	StoreWriteFailed(storageKey string, err error)

	// A handler returned an error for one task; the drain continued.
	TaskFailed(queue string, err error)

	// A claimed item could not be decoded and was dropped.
	TaskDecodeFailed(queue string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CacheHit(string)                {}
func (NopHooks) CacheMiss(string, string)       {}
func (NopHooks) SelfHeal(string)                {}
func (NopHooks) StoreWriteFailed(string, error) {}
func (NopHooks) TaskFailed(string, error)       {}
func (NopHooks) TaskDecodeFailed(string, error) {}
