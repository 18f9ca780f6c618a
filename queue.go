package loadq

import (
	"context"
	"errors"

	c "github.com/unkn0wn-root/loadq/codec"
	st "github.com/unkn0wn-root/loadq/store"
)

// TaskDescriptor names one unit of deferred work: which source to load and
// which operation to run over it. It has no identity beyond its serialized
// form; enqueueing the same descriptor twice yields two independent slots.
type TaskDescriptor struct {
	SourceRef string `json:"source_ref" msgpack:"source_ref" cbor:"source_ref"`
	Operation string `json:"operation" msgpack:"operation" cbor:"operation"`
}

// Handler processes one claimed task. Errors are contained per task and
// never stop the drain.
type Handler[T any] func(ctx context.Context, task T) error

// Queue pushes serialized tasks onto a named store list and drains them one
// at a time, oldest first. The store's list primitive offers no atomic
// pop-single-item across backends, so claiming reads the current list
// snapshot, picks the element opposite the push end, and removes that exact
// value (first occurrence). Duplicate tasks lose one copy per claim.
type Queue[T any] struct {
	store st.Store
	codec c.Codec[T]
	log   Logger
	hooks Hooks
}

// Enqueue serializes task and pushes it onto the named list.
func (q *Queue[T]) Enqueue(ctx context.Context, name string, task T) error {
	b, err := q.codec.Encode(task)
	if err != nil {
		return err
	}
	if err := q.store.ListPush(ctx, name, b); err != nil {
		return err
	}
	q.log.Debug("task enqueued", Fields{"queue": name})
	return nil
}

// Len reports the current queue depth.
func (q *Queue[T]) Len(ctx context.Context, name string) (int, error) {
	items, err := q.store.ListRange(ctx, name, 0, -1)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Drain claims and processes items until a list read comes back empty. For a
// queue holding N items with no concurrent pushes this takes at most N steps,
// because each step strictly removes one occurrence. Concurrent producers can
// extend the drain indefinitely; callers needing bounded work use DrainN.
//
// Returns the number of handler invocations. Handler failures and undecodable
// items are logged and skipped. An unconnected store is observed as an empty
// queue.
func (q *Queue[T]) Drain(ctx context.Context, name string, h Handler[T]) (int, error) {
	invoked := 0
	for {
		more, err := q.step(ctx, name, h, &invoked)
		if err != nil || !more {
			return invoked, err
		}
	}
}

// DrainN is the bounded variant: it snapshots the queue depth up front and
// performs at most min(max, depth) claim steps.
func (q *Queue[T]) DrainN(ctx context.Context, name string, max int, h Handler[T]) (int, error) {
	depth, err := q.Len(ctx, name)
	if err != nil {
		if errors.Is(err, st.ErrUnavailable) {
			return 0, nil
		}
		return 0, err
	}
	if depth < max {
		max = depth
	}
	invoked := 0
	for i := 0; i < max; i++ {
		more, err := q.step(ctx, name, h, &invoked)
		if err != nil || !more {
			return invoked, err
		}
	}
	return invoked, nil
}

// step claims one item. more is false once the queue reads empty.
func (q *Queue[T]) step(ctx context.Context, name string, h Handler[T], invoked *int) (more bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	items, err := q.store.ListRange(ctx, name, 0, -1)
	if err != nil {
		if errors.Is(err, st.ErrUnavailable) {
			q.log.Warn("store unavailable, treating queue as empty", Fields{"queue": name})
			return false, nil
		}
		return false, err
	}
	if len(items) == 0 {
		return false, nil
	}

	// pushes prepend, so the tail is the oldest enqueue
	raw := items[len(items)-1]
	removed, err := q.store.ListRemove(ctx, name, raw, 1)
	if err != nil {
		return false, err
	}
	if removed == 0 {
		// another dispatcher claimed it between our read and remove
		q.log.Debug("claim lost to concurrent dispatcher", Fields{"queue": name})
		return true, nil
	}

	task, derr := q.codec.Decode(raw)
	if derr != nil {
		q.hooks.TaskDecodeFailed(name, derr)
		q.log.Error("dropping undecodable task", Fields{"queue": name, "err": derr})
		return true, nil
	}

	*invoked++
	if herr := h(ctx, task); herr != nil {
		terr := &TaskError{Queue: name, Err: herr}
		q.hooks.TaskFailed(name, herr)
		q.log.Error("task failed", Fields{"queue": name, "err": terr})
	}
	return true, nil
}
