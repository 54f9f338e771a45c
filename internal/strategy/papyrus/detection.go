package papyrus

import (
	"context"
	"iter"

	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/xmlpipe"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// documentKind distinguishes the two halves of a split Papyrus model.
type documentKind int

const (
	kindUnknown documentKind = iota
	kindUML
	kindNotation
)

func kindOf(el *xmlpipe.Element) documentKind {
	switch el.Name.Local {
	case mustString("uml", "root_tag"):
		return kindUML
	case mustString("notation", "root_tag"):
		return kindNotation
	default:
		return kindUnknown
	}
}

// detectionPipe accepts either half of the split document: a root Model
// element (the .uml side) or a root Diagram element (the .notation side).
// Each DataSource is probed independently, so a translation that supplies
// only one half still detects successfully — cross-document resolution is
// the Builder's id-resolver's job, not detection's.
type detectionPipe struct {
	pipeline.Base
}

func newDetectionPipe() pipeline.DetectionPipe {
	return &detectionPipe{}
}

func (d *detectionPipe) CanProcess(batch pipeline.DataBatch) bool {
	_, ok := batch.Data.(*xmlpipe.Element)
	return ok
}

func (d *detectionPipe) Detect(batch pipeline.DataBatch) error {
	el, ok := batch.Data.(*xmlpipe.Element)
	if !ok {
		return umlerrors.NewUnsupportedFormatError(string(Format), "", "not an XML document")
	}
	if kindOf(el) == kindUnknown {
		return umlerrors.NewUnsupportedFormatError(string(Format), "", "root element is neither Model nor Diagram")
	}
	return nil
}

func (d *detectionPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	if err := d.Detect(batch); err != nil {
		return pipeline.YieldError(err)
	}
	return pipeline.YieldNone()
}
