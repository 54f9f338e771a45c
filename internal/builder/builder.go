// Package builder implements the mutable facade over the canonical
// model.Model described by the system's component design: one construct_xxx
// operation per entity variant, each resolving or deferring its id-typed
// references through an idresolver.Resolver shared for the lifetime of a
// translation.
package builder

import (
	"context"
	"reflect"

	"github.com/umltranslator/translator-go/internal/idresolver"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/ports"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Builder is the imperative API every pipe drives to populate a Model. It
// wraps an idresolver.Resolver and is safe to share across every pipe and
// strategy participating in the same translation.
type Builder struct {
	model    *model.Model
	resolver *idresolver.Resolver
	log      ports.Logger
	strict   bool
	// err is the first error raised by any construct_xxx call. Once set,
	// every subsequent construct_xxx call is a no-op, matching the fluent
	// contract that lets pipes chain calls or stub unimplemented operations
	// without checking a return value after every one.
	err error
}

// Options configures a new Builder.
type Options struct {
	// ModelID and ModelName seed the underlying Model. ModelToExtend, when
	// set, is used instead and ModelID/ModelName are ignored.
	ModelID       string
	ModelName     string
	ModelToExtend *model.Model
	Logger        ports.Logger
	// Strict controls the reference-closure policy enforced by Build: when
	// true, any reference left unresolved after every source has been
	// processed aborts the translation with an UnresolvedReferenceError.
	Strict bool
}

// New constructs a Builder ready to accept construct_xxx calls.
func New(opts Options) *Builder {
	m := opts.ModelToExtend
	if m == nil {
		m = model.NewModel(opts.ModelID, opts.ModelName)
	}
	return &Builder{
		model:    m,
		resolver: idresolver.New(opts.Logger),
		log:      opts.Logger,
		strict:   opts.Strict,
	}
}

// Model returns the Model under construction without flushing or validating
// it; pipes needing the final, closed model must go through Build instead.
func (b *Builder) Model() *model.Model { return b.model }

// Err returns the first error raised by any construct_xxx call, or nil. Build
// also returns this error, but a pipe that wants to abort early without
// waiting for Build may check it directly.
func (b *Builder) Err() error { return b.err }

// fail records err as the builder's sticky error if none is already set, and
// returns the builder so the offending construct_xxx call can still return
// itself for chaining.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
		if b.log != nil {
			b.log.Error(context.Background(), "construct operation failed", "error", err)
		}
	}
	return b
}

// register sets the entity's owner back-reference, performs the
// id-uniqueness check, and delegates to the resolver. Two distinct entities
// registering under the same id is a DuplicateIDError unless they are
// structurally equal, in which case the second registration is treated as a
// harmless re-assertion of the first. The owner is assigned before the
// equality comparison so a re-asserted duplicate does not differ from the
// original solely by its not-yet-set back-reference. A failed register call
// sets the builder's sticky error.
func (b *Builder) register(entity model.Element, oldID string) bool {
	if owned, ok := entity.(interface{ SetOwner(*model.Model) }); ok {
		owned.SetOwner(b.model)
	}
	if existing := b.resolver.Resolve(entity.ID()); existing != nil {
		if !reflect.DeepEqual(existing, entity) {
			b.fail(umlerrors.NewDuplicateIDError(entity.ID()))
			return false
		}
	}
	b.resolver.Register(entity, oldID)
	return true
}

// resolveOrDefer looks up refID immediately; if present it calls assign
// synchronously, otherwise it queues assign to run once refID registers.
// refID may be empty, meaning "no reference supplied" — assign never runs.
func (b *Builder) resolveOrDefer(refID string, assign func(model.Element)) {
	if refID == "" {
		return
	}
	b.resolver.Defer(refID, assign)
}

// typeable adapts resolveOrDefer for the common Typeable-valued reference
// slots (Attribute.Type, Parameter.Type, Operation.ReturnType).
func (b *Builder) typeable(refID string, assign func(model.Typeable)) {
	b.resolveOrDefer(refID, func(e model.Element) {
		if t, ok := e.(model.Typeable); ok {
			assign(t)
		}
	})
}

// classifier adapts resolveOrDefer for Classifier-valued reference slots.
func (b *Builder) classifier(refID string, assign func(model.Classifier)) {
	b.resolveOrDefer(refID, func(e model.Element) {
		if c, ok := e.(model.Classifier); ok {
			assign(c)
		}
	})
}

// attachToClassifier defers attaching an Attribute or Operation to its
// owning Classifier's ordered sequence once that classifier registers;
// source order is preserved because callbacks fire FIFO per id.
func (b *Builder) attachToClassifier(classifierID string, attach func(fields *model.ClassifierFields)) {
	b.resolveOrDefer(classifierID, func(e model.Element) {
		switch c := e.(type) {
		case *model.Class:
			attach(&c.ClassifierFields)
		case *model.Interface:
			attach(&c.ClassifierFields)
		case *model.DataType:
			attach(&c.ClassifierFields)
		}
	})
}

// Build flushes every deferred callback under the configured strict policy
// and returns the completed Model. It does not clear the Builder; a caller
// that wants to keep extending the same Model across further sources should
// simply keep issuing construct_xxx calls before calling Build again.
func (b *Builder) Build(ctx context.Context) (*model.Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.resolver.Flush(ctx, b.strict); err != nil {
		return nil, err
	}
	if err := b.model.Validate(); err != nil {
		return nil, err
	}
	return b.model, nil
}

// Clear resets the Model and Id-Resolver to empty, discarding every
// construct_xxx call issued so far.
func (b *Builder) Clear() {
	id, name := b.model.ID(), b.model.Name
	b.model = model.NewModel(id, name)
	b.resolver.Clear()
	b.err = nil
}
