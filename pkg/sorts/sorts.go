package sorts

import (
	"context"
	"strings"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/sequence"
)

// Status is the outcome of an algorithm run.
type Status int

const (
	// Completed means the data is fully sorted.
	Completed Status = iota
	// Cancelled means the emitter asked the algorithm to stop.
	Cancelled
)

func (s Status) String() string {
	if s == Cancelled {
		return "cancelled"
	}
	return "completed"
}

// Kind names an algorithm.
type Kind string

// Supported algorithms.
const (
	KindBubble    Kind = "bubble"
	KindInsertion Kind = "insertion"
	KindSelection Kind = "selection"
	KindQuick     Kind = "quick"
	KindMerge     Kind = "merge"
)

// Kinds lists every algorithm in control-bar order.
var Kinds = []Kind{KindBubble, KindInsertion, KindSelection, KindQuick, KindMerge}

var titles = map[Kind]string{
	KindBubble:    "Bubble Sort",
	KindInsertion: "Insertion Sort",
	KindSelection: "Selection Sort",
	KindQuick:     "Quick Sort",
	KindMerge:     "Merge Sort",
}

// ParseKind resolves an algorithm name, case-insensitively. A trailing
// " sort" is accepted ("Merge Sort" parses as KindMerge).
func ParseKind(s string) (Kind, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), " sort")
	k := Kind(name)
	if _, ok := titles[k]; !ok {
		return "", errors.New(errors.ErrCodeUnknownAlgorithm, "unknown algorithm %q (want one of %s)", s, kindList())
	}
	return k, nil
}

func kindList() string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// Title returns the display title, e.g. "Bubble Sort".
func (k Kind) Title() string { return titles[k] }

// Mode returns the presentation mode the algorithm animates in.
func (k Kind) Mode() anim.Mode {
	if k == KindQuick || k == KindMerge {
		return anim.ModeTree
	}
	return anim.ModeBars
}

// Env is everything a running algorithm touches besides its data.
type Env struct {
	Emitter anim.Emitter

	// Relayout recomputes tree geometry after children are attached.
	// Tree algorithms call it before the frame that shows new children.
	// Optional.
	Relayout func(*calltree.Tree)
}

// emit sends one frame and reports whether the algorithm must stop.
func (e Env) emit(ctx context.Context, scene anim.Scene) bool {
	if e.Emitter == nil {
		return ctx.Err() != nil
	}
	return e.Emitter.Emit(ctx, scene) == anim.Cancel
}

func (e Env) relayout(t *calltree.Tree) {
	if e.Relayout != nil {
		e.Relayout(t)
	}
}

// Target is the data a run sorts: Values for bars algorithms, Tree for
// tree algorithms.
type Target struct {
	Values sequence.Sequence
	Tree   *calltree.Tree
}

// Sort runs the algorithm named by kind against target.
func Sort(ctx context.Context, env Env, kind Kind, target Target) (Status, error) {
	switch kind {
	case KindBubble:
		return Bubble(ctx, env, target.Values), nil
	case KindInsertion:
		return Insertion(ctx, env, target.Values), nil
	case KindSelection:
		return Selection(ctx, env, target.Values), nil
	case KindMerge, KindQuick:
		if target.Tree == nil || target.Tree.Root == nil {
			return Completed, errors.New(errors.ErrCodeInternal, "%s needs a call tree", kind.Title())
		}
		if kind == KindMerge {
			return MergeSort(ctx, env, target.Tree), nil
		}
		return QuickSort(ctx, env, target.Tree), nil
	default:
		return Completed, errors.New(errors.ErrCodeUnknownAlgorithm, "unknown algorithm %q", string(kind))
	}
}

// placed returns highlights marking indices [0, k) as placed.
func placed(k int) anim.Highlights {
	h := make(anim.Highlights, k+1)
	for i := 0; i < k; i++ {
		h[i] = anim.RolePlaced
	}
	return h
}

func pair(i, j int, role anim.Role) anim.Highlights {
	return anim.Highlights{i: role, j: role}
}
