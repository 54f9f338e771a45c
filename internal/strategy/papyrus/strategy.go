package papyrus

import (
	"context"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/xmlpipe"
	"github.com/umltranslator/translator-go/internal/ports"
	"github.com/umltranslator/translator-go/internal/strategy"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Strategy implements the Eclipse Papyrus dialect. Unlike EA-XMI and
// StarUML, a single Papyrus model is split across two DataSources (a .uml
// document and a .notation document); RetrieveModel is expected to be
// called once per half against the same shared Builder so the notation
// half's diagram-membership references resolve against entities the uml
// half already registered (or will register later — resolution is
// order-independent via the Builder's deferred id-resolver).
type Strategy struct {
	Logger ports.Logger
	Strict bool
}

// New constructs a Papyrus Strategy. log may be nil; strict controls
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
	return buildUMLProcessingTree(builder.New(builder.Options{ModelID: ports.GenerateCorrelationID(), ModelName: "model", Logger: s.Logger, Strict: s.Strict}))
}

// RetrieveModel parses source, determines which half of the split document
// it is, and walks the matching processing tree against bld (constructing a
// fresh Builder when bld is nil). As with EA-XMI, a caller-supplied bld is
// left unbuilt — the caller calls Build once both halves have been fed in.
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

	var root pipeline.Pipe
	switch kindOf(parsed) {
	case kindUML:
		root = buildUMLProcessingTree(bld)
	case kindNotation:
		root = buildNotationProcessingTree(bld)
	default:
		return nil, umlerrors.NewInvalidFormatError(string(Format), parsed.Name.Local, "root element is neither Model nor Diagram", nil)
	}

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
