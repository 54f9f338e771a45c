package staruml

import (
	"context"
	"iter"

	"github.com/umltranslator/translator-go/internal/pipeline"
	"github.com/umltranslator/translator-go/internal/pipeline/jsonpipe"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// detectionPipe accepts a document whose root node's discriminator key
// names the Project type — StarUML MDJ's top-level wrapper.
type detectionPipe struct {
	pipeline.Base
}

func newDetectionPipe() pipeline.DetectionPipe {
	return &detectionPipe{}
}

func (d *detectionPipe) CanProcess(batch pipeline.DataBatch) bool {
	_, ok := batch.Data.(jsonpipe.Node)
	return ok
}

func (d *detectionPipe) Detect(batch pipeline.DataBatch) error {
	node, ok := batch.Data.(jsonpipe.Node)
	if !ok {
		return umlerrors.NewUnsupportedFormatError(string(Format), "", "not a JSON document")
	}
	v, present := node[mustString("discriminator_key")]
	if !present {
		return umlerrors.NewUnsupportedFormatError(string(Format), "", "missing _type discriminator")
	}
	if s, _ := v.(string); s != mustString("types", "project") {
		return umlerrors.NewUnsupportedFormatError(string(Format), "", "root _type is not Project")
	}
	return nil
}

func (d *detectionPipe) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	if err := d.Detect(batch); err != nil {
		return pipeline.YieldError(err)
	}
	return pipeline.YieldNone()
}
