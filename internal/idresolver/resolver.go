// Package idresolver implements the id -> instance map and deferred
// callback queues that let the Builder (internal/builder) link any forward
// or backward reference within a document, or across documents in the same
// translation, without imposing a topological ordering on the pipes that
// drive it.
package idresolver

import (
	"context"
	"sort"
	"sync"

	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/ports"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Callback is invoked once the entity registered under the awaited id
// becomes available.
type Callback func(entity model.Element)

// Resolver is the id -> instance map with deferred callback queues
// described by the core's reference-resolution pattern. The zero value is
// not usable; construct with New.
type Resolver struct {
	mu           sync.Mutex
	instanceByID map[string]model.Element
	pendingByID  map[string][]Callback
	log          ports.Logger
}

// New constructs an empty Resolver. A nil Logger is accepted; Flush then
// skips logging.
func New(log ports.Logger) *Resolver {
	return &Resolver{
		instanceByID: make(map[string]model.Element),
		pendingByID:  make(map[string][]Callback),
		log:          log,
	}
}

// Register records entity under its current id. If oldID is non-empty and
// differs from the entity's current id, the previous registration is moved
// rather than duplicated. After registration, any callbacks queued against
// the new id fire immediately, in FIFO order.
func (r *Resolver) Register(entity model.Element, oldID string) {
	r.mu.Lock()
	id := entity.ID()
	if oldID != "" && oldID != id {
		delete(r.instanceByID, oldID)
	}
	r.instanceByID[id] = entity

	queue := r.pendingByID[id]
	delete(r.pendingByID, id)
	r.mu.Unlock()

	// Callbacks run outside the lock so a callback may itself call Register,
	// Defer, or Resolve (e.g. attaching a just-registered Package element
	// that is itself awaiting a nested reference) without deadlocking.
	for _, cb := range queue {
		cb(entity)
	}
}

// Resolve returns the entity registered under id, or nil if none has been
// registered yet. It never blocks.
func (r *Resolver) Resolve(id string) model.Element {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.instanceByID[id]
}

// Defer appends cb to the queue awaiting id. If an instance is already
// registered under id, cb runs immediately instead of being queued — the
// eager-on-present variant permitted by the reference-resolution contract,
// chosen so a construct operation never needs to distinguish "resolved now"
// from "resolved later" in its own code.
func (r *Resolver) Defer(id string, cb Callback) {
	r.mu.Lock()
	if entity, ok := r.instanceByID[id]; ok {
		r.mu.Unlock()
		cb(entity)
		return
	}
	r.pendingByID[id] = append(r.pendingByID[id], cb)
	r.mu.Unlock()
}

// Flush drains every still-pending callback queue against whatever has
// since been registered. When strict is true, any id with a non-empty queue
// that still fails to resolve is collected into a single
// UnresolvedReferenceError. When strict is false, such ids are logged and
// skipped, leaving their callbacks permanently unfired.
func (r *Resolver) Flush(ctx context.Context, strict bool) error {
	type resolved struct {
		entity model.Element
		queue  []Callback
	}

	r.mu.Lock()
	ids := make([]string, 0, len(r.pendingByID))
	for id := range r.pendingByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var unresolved []string
	var toFire []resolved
	var toSkip []string
	for _, id := range ids {
		queue := r.pendingByID[id]
		delete(r.pendingByID, id)
		if len(queue) == 0 {
			continue
		}
		entity, ok := r.instanceByID[id]
		if !ok {
			if strict {
				unresolved = append(unresolved, id)
			} else {
				toSkip = append(toSkip, id)
			}
			continue
		}
		toFire = append(toFire, resolved{entity: entity, queue: queue})
	}
	r.mu.Unlock()

	// Callbacks and logging run outside the lock for the same reentrancy
	// reason as Register.
	for _, id := range toSkip {
		if r.log != nil {
			r.log.Debug(ctx, "skipping unresolved reference", "id", id)
		}
	}
	for _, item := range toFire {
		for _, cb := range item.queue {
			cb(item.entity)
		}
	}

	if len(unresolved) > 0 {
		return umlerrors.NewUnresolvedReferenceError(unresolved)
	}
	return nil
}

// Clear resets the Resolver to empty, discarding every registration and
// pending callback.
func (r *Resolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instanceByID = make(map[string]model.Element)
	r.pendingByID = make(map[string][]Callback)
}
