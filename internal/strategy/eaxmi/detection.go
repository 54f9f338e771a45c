package eaxmi

import (
	"context"
	"iter"

	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/xmlpipe"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// detectionPipe implements the EA-XMI canDeserialize check: the root
// element must be named XMI with a version attribute of "2.1", and it must
// carry an immediate Documentation child whose exporter attribute names
// Enterprise Architect.
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
	if el.Name.Local != mustString("root", "tag") {
		return umlerrors.NewUnsupportedFormatError(string(Format), "", "root element is not XMI")
	}
	if v, _ := el.Attr(mustString("root", "version_attr")); v != mustString("root", "version") {
		return umlerrors.NewUnsupportedFormatError(string(Format), "", "unexpected xmi version")
	}
	for _, child := range el.Children {
		if child.Name.Local != mustString("documentation", "tag") {
			continue
		}
		if v, _ := child.Attr(mustString("documentation", "exporter_attr")); v == mustString("documentation", "exporter") {
			return nil
		}
	}
	return umlerrors.NewUnsupportedFormatError(string(Format), "", "missing Enterprise Architect documentation marker")
}

func (d *detectionPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	if err := d.Detect(batch); err != nil {
		return pipeline.YieldError(err)
	}
	return pipeline.YieldNone()
}
