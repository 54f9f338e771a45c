package eaxmi

import (
	"context"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/xmlpipe"
	"github.com/umltranslator/translator-go/internal/ports"
	"github.com/umltranslator/translator-go/internal/strategy"
)

// Strategy implements the EA-XMI 2.1 dialect.
type Strategy struct {
	Logger ports.Logger
	Strict bool
}

// New constructs an EA-XMI Strategy. log may be nil; strict controls
// whether Build returns UnresolvedReferenceError for leftover deferred
// callbacks.
func New(log ports.Logger, strict bool) *Strategy {
	return &Strategy{Logger: log, Strict: strict}
}

func (s *Strategy) Format() strategy.Format { return Format }

func (s *Strategy) Parse(data []byte) (any, error) {
	return xmlpipe.Parse(data)
}

func (s *Strategy) DetectionPipe() pipeline.DetectionPipe {
	return newDetectionPipe()
}

func (s *Strategy) ProcessingPipe() pipeline.Pipe {
	return buildProcessingTree(builder.New(builder.Options{ModelID: ports.GenerateCorrelationID(), ModelName: "model", Logger: s.Logger, Strict: s.Strict}))
}

// RetrieveModel parses source, confirms it matches the dialect, walks the
// processing pipe tree against bld (constructing a fresh Builder when bld is
// nil), and returns the resulting Model. When bld was supplied by the
// caller, the Builder is left unbuilt and unmodified by clearAfter — the
// caller owns when to call Build across a multi-source translation.
func (s *Strategy) RetrieveModel(ctx context.Context, source datasource.DataSource, bld *builder.Builder, clearAfter bool) (*model.Model, error) {
	data, err := source.Bytes()
	if err != nil {
		return nil, err
	}
	parsed, err := xmlpipe.Parse(data)
	if err != nil {
		return nil, err
	}

	if err := newDetectionPipe().Detect(pipeline.DataBatch{Data: parsed}); err != nil {
		return nil, err
	}

	ownBuilder := bld == nil
	if ownBuilder {
		bld = builder.New(builder.Options{ModelID: ports.GenerateCorrelationID(), ModelName: "model", Logger: s.Logger, Strict: s.Strict})
	}

	root := buildProcessingTree(bld)
	if err := pipeline.Run(ctx, root, pipeline.DataBatch{Data: parsed}); err != nil {
		return nil, err
	}

	if !ownBuilder {
		return bld.Model(), nil
	}

	m, err := bld.Build(ctx)
	if err != nil {
		return nil, err
	}
	if clearAfter {
		bld.Clear()
	}
	return m, nil
}

func init() {
	_ = strategy.Register(New(nil, false))
}
