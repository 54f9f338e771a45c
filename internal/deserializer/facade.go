// Package deserializer implements the top-level Deserializer Facade: the
// single entry point a caller (the CLI, or any embedding program) drives to
// turn a mixed set of inputs — file paths, inlined byte batches, or
// pre-wrapped DataSources, possibly spanning several dialect files for a
// split model like Papyrus — into one canonical Model.
package deserializer

import (
	"context"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/ports"
	"github.com/umltranslator/translator-go/internal/strategy"
)

// Options configures a Facade.
type Options struct {
	// ModelID/ModelName seed the canonical Model the Facade accumulates
	// into. ModelID defaults to a generated correlation id, ModelName to
	// "model", when left empty.
	ModelID   string
	ModelName string
	Logger    ports.Logger
	// Strict, when true, makes Build fail with UnresolvedReferenceError
	// instead of silently dropping unresolved forward references.
	Strict bool
	// Registry overrides the strategy registry a Facade selects against.
	// Nil uses strategy.Default, the process-wide registry every dialect
	// package self-registers into from its own init().
	Registry *strategy.Registry
	// Format pins every source to one dialect, skipping per-source
	// detection. Left empty, each source is probed independently — the
	// natural mode for a Papyrus translation whose two halves are both
	// valid Papyrus documents but would otherwise need re-detecting.
	Format strategy.Format
}

// Facade orchestrates the format Dispatcher and the shared Builder across a
// multi-source translation. A Facade is not safe for concurrent use; build
// one per translation (or call Clear between uses from one goroutine).
type Facade struct {
	opts Options
	bld  *builder.Builder
}

// New constructs a Facade from opts.
func New(opts Options) *Facade {
	if opts.ModelID == "" {
		opts.ModelID = ports.GenerateCorrelationID()
	}
	if opts.ModelName == "" {
		opts.ModelName = "model"
	}
	return &Facade{opts: opts}
}

func (f *Facade) registry() *strategy.Registry {
	if f.opts.Registry != nil {
		return f.opts.Registry
	}
	return strategy.Default
}

func (f *Facade) builder() *builder.Builder {
	if f.bld == nil {
		f.bld = builder.New(builder.Options{
			ModelID:   f.opts.ModelID,
			ModelName: f.opts.ModelName,
			Logger:    f.opts.Logger,
			Strict:    f.opts.Strict,
		})
	}
	return f.bld
}

// Deserialize normalizes inputs into an ordered sequence of DataSources,
// selects a Strategy for each (pinned by Options.Format, or detected per
// source), and feeds every source into one shared Builder before calling
// Build once at the end. A failure at any stage — selection, retrieval, or
// the final Build — aborts the whole translation: no half-built Model is
// ever returned, and the Facade's Builder is cleared so the failed attempt
// cannot bleed into a later call.
func (f *Facade) Deserialize(ctx context.Context, inputs datasource.Inputs) (*model.Model, error) {
	sources := datasource.Normalize(inputs)
	bld := f.builder()

	for _, src := range sources {
		strat, err := f.registry().Select(ctx, src, f.opts.Format)
		if err != nil {
			f.Clear()
			return nil, err
		}
		if _, err := strat.RetrieveModel(ctx, src, bld, false); err != nil {
			f.Clear()
			return nil, err
		}
	}

	m, err := bld.Build(ctx)
	if err != nil {
		f.Clear()
		return nil, err
	}
	f.bld = nil
	return m, nil
}

// Translate is Deserialize under the name the message-consumer collaborator
// calls it by.
func (f *Facade) Translate(ctx context.Context, inputs datasource.Inputs) (*model.Model, error) {
	return f.Deserialize(ctx, inputs)
}

// Clear discards the Facade's in-progress Builder, if any, so a subsequent
// Deserialize call starts from a clean Model rather than continuing to
// accumulate into a partially-built one left over from a prior failure.
func (f *Facade) Clear() {
	if f.bld != nil {
		f.bld.Clear()
	}
	f.bld = nil
}
