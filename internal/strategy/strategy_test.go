package strategy

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umltranslator/translator-go/internal/builder"
	"github.com/umltranslator/translator-go/internal/datasource"
	"github.com/umltranslator/translator-go/internal/model"
	"github.com/umltranslator/translator-go/internal/pipeline"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// stubStrategy parses raw bytes as their literal string content and claims
// sources whose content equals tag.
type stubStrategy struct {
	format Format
	tag    string
}

func (s *stubStrategy) Format() Format { return s.format }

func (s *stubStrategy) Parse(data []byte) (any, error) { return string(data), nil }

func (s *stubStrategy) DetectionPipe() pipeline.DetectionPipe {
	return &detectionAdapter{wantTag: s.tag}
}

func (s *stubStrategy) ProcessingPipe() pipeline.Pipe { return &detectionAdapter{wantTag: s.tag} }

func (s *stubStrategy) RetrieveModel(ctx context.Context, source datasource.DataSource, bld *builder.Builder, clearAfter bool) (*model.Model, error) {
	if bld == nil {
		bld = builder.New(builder.Options{ModelID: "m", ModelName: "m"})
	}
	return bld.Build(ctx)
}

// detectionAdapter implements pipeline.DetectionPipe, raising an
// UnsupportedFormatError whenever the observed tag does not match wantTag so
// pipeline.IsSupportedFormat's errors.As-based classification treats it as
// "did not match" rather than a hard failure.
type detectionAdapter struct {
	pipeline.Base
	wantTag string
}

func (d *detectionAdapter) CanProcess(batch pipeline.DataBatch) bool { return true }

func (d *detectionAdapter) Detect(batch pipeline.DataBatch) error {
	tag, _ := batch.Data.(string)
	if tag != d.wantTag {
		return umlerrors.NewUnsupportedFormatError(d.wantTag, "", "tag mismatch")
	}
	return nil
}

func (d *detectionAdapter) Process(ctx context.Context, batch pipeline.DataBatch) iter.Seq2[pipeline.DataBatch, error] {
	if err := d.Detect(batch); err != nil {
		return pipeline.YieldError(err)
	}
	return pipeline.YieldNone()
}

func TestRegisterRejectsDuplicateFormat(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(&stubStrategy{format: "xmi", tag: "xmi"}))
	err := reg.Register(&stubStrategy{format: "xmi", tag: "xmi"})
	require.Error(t, err)
}

func TestSelectUsesPinnedFormatWithoutDetection(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	xmi := &stubStrategy{format: "xmi", tag: "xmi"}
	require.NoError(t, reg.Register(xmi))

	src := datasource.NewMemorySource([]byte("not-xmi-content"))
	got, err := reg.Select(context.Background(), src, "xmi")
	require.NoError(t, err)
	require.Same(t, Strategy(xmi), got)
}

func TestSelectRejectsUnregisteredPinnedFormat(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	src := datasource.NewMemorySource([]byte("anything"))
	_, err := reg.Select(context.Background(), src, "papyrus")
	require.Error(t, err)
}

func TestSelectDetectsSingleMatch(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(&stubStrategy{format: "xmi", tag: "xmi"}))
	require.NoError(t, reg.Register(&stubStrategy{format: "mdj", tag: "mdj"}))

	src := datasource.NewMemorySource([]byte("xmi"))
	got, err := reg.Select(context.Background(), src, "")
	require.NoError(t, err)
	require.Equal(t, Format("xmi"), got.Format())
}

func TestSelectRaisesUnsupportedWhenNoStrategyAccepts(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(&stubStrategy{format: "xmi", tag: "xmi"}))

	src := datasource.NewMemorySource([]byte("neither"))
	_, err := reg.Select(context.Background(), src, "")
	require.Error(t, err)
}

func TestSelectRaisesAmbiguousWhenMultipleAccept(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(&stubStrategy{format: "xmi", tag: "same"}))
	require.NoError(t, reg.Register(&stubStrategy{format: "mdj", tag: "same"}))

	src := datasource.NewMemorySource([]byte("same"))
	_, err := reg.Select(context.Background(), src, "")
	require.Error(t, err)
}
