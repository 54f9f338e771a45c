// Package pipeline implements the generic pipe tree described by the
// system's component design: a directed tree of processing nodes walked
// lazily, pull-based, over a parsed document, driving a shared Builder as
// it goes.
package pipeline

import (
	"context"
	"iter"

	"github.com/umltranslator/translator-go/internal/builder"
)

// DataBatch is a unit of work flowing between pipes: an arbitrary payload
// (a sub-tree element for XML, a decoded value for JSON) plus a
// string-keyed scratch context the predecessor uses to pass information —
// most commonly parent_id, the id of the owning element a nested element is
// being deserialized into.
type DataBatch struct {
	Data   any
	Parent map[string]any
}

// NewContext returns a fresh, empty parent-context scratch map.
func NewContext() map[string]any {
	return make(map[string]any)
}

// WithParentID returns a copy of ctx with parent_id set to id. The original
// map is left untouched so a predecessor may reuse its own context across
// several children without them clobbering each other.
func WithParentID(ctx map[string]any, id string) map[string]any {
	out := make(map[string]any, len(ctx)+1)
	for k, v := range ctx {
		out[k] = v
	}
	out["parent_id"] = id
	return out
}

// ParentID extracts parent_id from a DataBatch's context, returning "" if
// absent or not a string.
func ParentID(ctx map[string]any) string {
	v, _ := ctx["parent_id"].(string)
	return v
}

// Pipe is a node in the processing tree.
type Pipe interface {
	// CanProcess is a pure predicate: does this pipe accept batch.
	CanProcess(batch DataBatch) bool
	// Process executes side effects on the Builder and lazily yields zero
	// or more child batches to distribute to successors. A non-nil error
	// yielded alongside a batch aborts the walk; iteration stops as soon as
	// the caller's range loop does not ask for more (true pull-based
	// laziness, via Go's range-over-func iterators).
	Process(ctx context.Context, batch DataBatch) iter.Seq2[DataBatch, error]

	// AddSuccessor appends child to this pipe's successor list. Pipes never
	// call this directly — use Connect/ConnectWithoutBuilder, which also
	// wire the predecessor link and Builder sharing.
	AddSuccessor(child Pipe)
	Successors() []Pipe
	SetPredecessor(p Pipe)
	Predecessor() Pipe
	Builder() *builder.Builder
	SetBuilder(b *builder.Builder)
}

// Base carries the tree-linkage and Builder handle shared by every concrete
// pipe type. Concrete pipes embed Base and implement CanProcess/Process
// themselves.
type Base struct {
	successors  []Pipe
	predecessor Pipe
	bld         *builder.Builder
}

func (b *Base) AddSuccessor(child Pipe) { b.successors = append(b.successors, child) }

func (b *Base) Successors() []Pipe { return b.successors }

func (b *Base) SetPredecessor(p Pipe) { b.predecessor = p }

func (b *Base) Predecessor() Pipe { return b.predecessor }

// Connect implements the component design's addNext(child): child becomes a
// successor of parent, child's predecessor is set to parent, and — unless
// child already carries its own Builder — parent's Builder handle is shared
// with it.
func Connect(parent, child Pipe) {
	child.SetPredecessor(parent)
	if child.Builder() == nil {
		child.SetBuilder(parent.Builder())
	}
	parent.AddSuccessor(child)
}

// ConnectWithoutBuilder is Connect's explicit opt-out: child keeps whatever
// Builder it already carries (or none), for a child constructed against a
// distinct Builder handle obtained independently — e.g. a Papyrus notation
// pipe populating the same Model through a handle passed in by the
// strategy rather than inherited from its predecessor.
func ConnectWithoutBuilder(parent, child Pipe) {
	child.SetPredecessor(parent)
	parent.AddSuccessor(child)
}

func (b *Base) Builder() *builder.Builder { return b.bld }

func (b *Base) SetBuilder(bld *builder.Builder) { b.bld = bld }

// Run walks the tree rooted at pipe, starting from batch: it pulls each
// batch pipe.Process yields, dispatches it through every successor whose
// CanProcess accepts it (recursing into that successor's own subtree)
// before pulling the next batch from pipe. The first error encountered,
// whether from Process itself or from a recursive call, aborts the walk.
func Run(ctx context.Context, pipe Pipe, batch DataBatch) error {
	var walkErr error
	for next, err := range pipe.Process(ctx, batch) {
		if err != nil {
			walkErr = err
			break
		}
		for _, succ := range pipe.Successors() {
			if succ.CanProcess(next) {
				if err := Run(ctx, succ, next); err != nil {
					walkErr = err
					break
				}
			}
		}
		if walkErr != nil {
			break
		}
	}
	return walkErr
}

// Yield constructs an iter.Seq2[DataBatch, error] from a plain slice of
// batches, the common case for a pipe whose Process has no need for true
// streaming (the full set of children is known up front once the parent
// element's attributes have been read).
func Yield(batches []DataBatch) iter.Seq2[DataBatch, error] {
	return func(yield func(DataBatch, error) bool) {
		for _, b := range batches {
			if !yield(b, nil) {
				return
			}
		}
	}
}

// YieldError constructs an iter.Seq2[DataBatch, error] that immediately
// surfaces err and yields no batches.
func YieldError(err error) iter.Seq2[DataBatch, error] {
	return func(yield func(DataBatch, error) bool) {
		yield(DataBatch{}, err)
	}
}

// YieldNone constructs an iter.Seq2[DataBatch, error] that yields nothing —
// a pipe that processed batch but has no children to distribute.
func YieldNone() iter.Seq2[DataBatch, error] {
	return func(yield func(DataBatch, error) bool) {}
}
