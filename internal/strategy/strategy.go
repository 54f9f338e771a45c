// Package strategy implements the process-wide StrategyRegistry and
// Dispatcher described by the system's component design: each UML dialect
// (EA-XMI, Papyrus, StarUML MDJ) self-registers a Strategy, and a
// DataSource is routed to whichever strategy claims it, either by a pinned
// format symbol or by running every registered strategy's detection pipe.
package strategy

import (
	"context"
	"errors"
	"sync"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Format identifies a registered dialect, e.g. "ea-xmi", "papyrus",
// "staruml".
type Format string

// Strategy implements parsing, format detection, and model construction for
// one UML interchange dialect.
type Strategy interface {
	// Format names the dialect this strategy handles; the symbol a caller
	// may pin to skip detection.
	Format() Format
	// Parse decodes raw bytes into the dialect's intermediate
	// representation (a *xmlpipe.Element tree, a jsonpipe.Node, or
	// whatever shape this strategy's own pipe tree expects as Process's
	// Data payload).
	Parse(data []byte) (any, error)
	// DetectionPipe returns the pipe tree used to decide whether a parsed
	// document belongs to this dialect.
	DetectionPipe() pipeline.DetectionPipe
	// ProcessingPipe returns the pipe tree that actually populates a
	// Builder from a parsed document.
	ProcessingPipe() pipeline.Pipe
	// RetrieveModel orchestrates parse -> detect -> process for one
	// DataSource. When bld is supplied, RetrieveModel populates it without
	// clearing and returns its current Model; RetrieveModel constructs a
	// fresh Builder otherwise. clearAfter, when true and bld was not
	// supplied by the caller, clears the strategy's own Builder once the
	// Model has been extracted.
	RetrieveModel(ctx context.Context, source datasource.DataSource, bld *builder.Builder, clearAfter bool) (*model.Model, error)
}

// Registry is a process-wide, read-mostly map of Format to Strategy: a
// package-level map guarded by a sync.RWMutex, populated by Register calls
// strategies make from their own package init().
type Registry struct {
	mu         sync.RWMutex
	strategies map[Format]Strategy
}

// NewRegistry constructs an empty Registry. Most callers use the
// process-wide Default instead.
func NewRegistry() *Registry {
	return &Registry{strategies: make(map[Format]Strategy)}
}

// Default is the process-wide registry every strategy package registers
// itself into from its own init().
var Default = NewRegistry()

// Register adds strategy under its own Format. Re-registering an
// already-claimed Format is a StrategyError: registration must complete
// before any selection call, so a collision signals a programming error,
// not routine traffic.
func Register(strategy Strategy) error {
	return Default.Register(strategy)
}

// Register is Registry's instance form, used directly by tests that need an
// isolated registry rather than the shared Default.
func (r *Registry) Register(strategy Strategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[strategy.Format()]; exists {
		return umlerrors.NewStrategyError(string(strategy.Format()), errAlreadyRegistered)
	}
	r.strategies[strategy.Format()] = strategy
	return nil
}

var errAlreadyRegistered = errors.New("strategy already registered")

// Get looks up a strategy by its pinned Format.
func (r *Registry) Get(format Format) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[format]
	return s, ok
}

// All returns every registered strategy, in no particular order.
func (r *Registry) All() []Strategy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Strategy, 0, len(r.strategies))
	for _, s := range r.strategies {
		out = append(out, s)
	}
	return out
}

// Select chooses a Strategy for source: when format is non-empty, the
// registered strategy at that Format is used directly (an unregistered
// pinned format is an UnsupportedFormatError). Otherwise every registered
// strategy's detection pipe is run over source's parsed content; exactly
// one match selects that strategy, zero matches is an UnsupportedFormatError,
// and more than one is an AmbiguousFormatError.
func (r *Registry) Select(ctx context.Context, source datasource.DataSource, format Format) (Strategy, error) {
	path, _ := source.Path()

	if format != "" {
		s, ok := r.Get(format)
		if !ok {
			return nil, umlerrors.NewUnsupportedFormatError(string(format), path, "no strategy registered for pinned format")
		}
		return s, nil
	}

	data, err := source.Bytes()
	if err != nil {
		return nil, err
	}

	var matches []Strategy
	var matchNames []string
	for _, s := range r.All() {
		parsed, err := s.Parse(data)
		if err != nil {
			continue
		}
		ok, err := pipeline.IsSupportedFormat(ctx, s.DetectionPipe(), pipeline.DataBatch{Data: parsed})
		if err != nil {
			return nil, err
		}
		if ok {
			matches = append(matches, s)
			matchNames = append(matchNames, string(s.Format()))
		}
	}

	switch len(matches) {
	case 0:
		return nil, umlerrors.NewUnsupportedFormatError("", path, "no registered strategy accepted this source")
	case 1:
		return matches[0], nil
	default:
		return nil, umlerrors.NewAmbiguousFormatError(path, matchNames)
	}
}

// Select is the package-level form operating on the Default registry.
func Select(ctx context.Context, source datasource.DataSource, format Format) (Strategy, error) {
	return Default.Select(ctx, source, format)
}
