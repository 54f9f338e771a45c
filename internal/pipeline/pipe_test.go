package pipeline

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/umltranslator/translator-go/internal/builder"
	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// stubPipe is a minimal Pipe used only to exercise Run's tree-walking
// contract; it matches any batch whose Data is a string equal to accepts,
// and emits the batches in children verbatim.
type stubPipe struct {
	Base
	accepts  string
	children []DataBatch
	visited  *[]string
	failWith error
}

func (p *stubPipe) CanProcess(batch DataBatch) bool {
	s, ok := batch.Data.(string)
	return ok && s == p.accepts
}

func (p *stubPipe) Process(ctx context.Context, batch DataBatch) iter.Seq2[DataBatch, error] {
	if p.visited != nil {
		*p.visited = append(*p.visited, p.accepts)
	}
	if p.failWith != nil {
		return YieldError(p.failWith)
	}
	return Yield(p.children)
}

func TestRunDispatchesToMatchingSuccessor(t *testing.T) {
	t.Parallel()

	var visited []string
	root := &stubPipe{accepts: "root", visited: &visited, children: []DataBatch{{Data: "child"}}}
	child := &stubPipe{accepts: "child", visited: &visited}
	Connect(root, child)

	err := Run(context.Background(), root, DataBatch{Data: "root"})
	require.NoError(t, err)
	require.Equal(t, []string{"root", "child"}, visited)
}

func TestRunSkipsNonMatchingSuccessor(t *testing.T) {
	t.Parallel()

	var visited []string
	root := &stubPipe{accepts: "root", visited: &visited, children: []DataBatch{{Data: "unexpected"}}}
	child := &stubPipe{accepts: "child", visited: &visited}
	Connect(root, child)

	err := Run(context.Background(), root, DataBatch{Data: "root"})
	require.NoError(t, err)
	require.Equal(t, []string{"root"}, visited)
}

func TestRunPropagatesProcessError(t *testing.T) {
	t.Parallel()

	boom := umlerrors.NewInvalidFormatError("xml", "loc", "broken", nil)
	root := &stubPipe{accepts: "root", failWith: boom}

	err := Run(context.Background(), root, DataBatch{Data: "root"})
	require.ErrorIs(t, err, boom)
}

func TestConnectSharesBuilderByDefault(t *testing.T) {
	t.Parallel()

	bld := builder.New(builder.Options{ModelID: "model-1", ModelName: "Example"})
	root := &stubPipe{accepts: "root"}
	root.SetBuilder(bld)
	child := &stubPipe{accepts: "child"}
	Connect(root, child)

	require.Same(t, bld, child.Builder())
	require.Same(t, Pipe(root), child.Predecessor())
}

func TestConnectWithoutBuilderLeavesChildBuilderUntouched(t *testing.T) {
	t.Parallel()

	rootBuilder := builder.New(builder.Options{ModelID: "model-1", ModelName: "Example"})
	childBuilder := builder.New(builder.Options{ModelID: "model-2", ModelName: "Other"})
	root := &stubPipe{accepts: "root"}
	root.SetBuilder(rootBuilder)
	child := &stubPipe{accepts: "child"}
	child.SetBuilder(childBuilder)
	ConnectWithoutBuilder(root, child)

	require.Same(t, childBuilder, child.Builder())
}

func TestWithParentIDDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	base := NewContext()
	base["other"] = "value"
	extended := WithParentID(base, "class-1")

	require.Equal(t, "class-1", ParentID(extended))
	require.Equal(t, "", ParentID(base))
	require.Equal(t, "value", extended["other"])
}
