package sorts

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/sequence"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "bubble", want: KindBubble},
		{in: "Merge Sort", want: KindMerge},
		{in: " QUICK ", want: KindQuick},
		{in: "insertion", want: KindInsertion},
		{in: "selection sort", want: KindSelection},
		{in: "heap", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeUnknownAlgorithm) {
					t.Fatalf("ParseKind(%q) error = %v, want UNKNOWN_ALGORITHM", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindMode(t *testing.T) {
	for _, k := range Kinds {
		want := anim.ModeBars
		if k == KindQuick || k == KindMerge {
			want = anim.ModeTree
		}
		if got := k.Mode(); got != want {
			t.Errorf("%s.Mode() = %v, want %v", k, got, want)
		}
		if k.Title() == "" {
			t.Errorf("%s.Title() is empty", k)
		}
	}
}

func TestSortErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := Sort(ctx, Env{}, Kind("heap"), Target{}); !errors.Is(err, errors.ErrCodeUnknownAlgorithm) {
		t.Errorf("Sort(heap) error = %v, want UNKNOWN_ALGORITHM", err)
	}
	if _, err := Sort(ctx, Env{}, KindMerge, Target{}); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Sort(merge, no tree) error = %v, want INTERNAL_ERROR", err)
	}
}

// inputs returns a fixed set of edge cases plus random sequences.
func inputs() []sequence.Sequence {
	out := []sequence.Sequence{
		{},
		{7},
		{1, 2},
		{2, 1},
		{5, 3, 1, 4, 2},
		{4, 2, 2, 3},
		{3, 3, 3, 3},
		{1, 2, 3, 4, 5, 6},
		{6, 5, 4, 3, 2, 1},
		{-2, 10, 0, -7, 3},
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		n := rng.IntN(17)
		s := make(sequence.Sequence, n)
		for i := range s {
			s[i] = rng.IntN(10)
		}
		out = append(out, s)
	}
	return out
}

func sortedCopy(s sequence.Sequence) sequence.Sequence {
	return slices.Sorted(slices.Values(s.Clone()))
}

func runKind(t *testing.T, k Kind, in sequence.Sequence, env Env) (sequence.Sequence, *calltree.Tree, Status) {
	t.Helper()
	target := Target{Values: in.Clone()}
	if k.Mode() == anim.ModeTree {
		target.Tree = calltree.New(in)
	}
	status, err := Sort(context.Background(), env, k, target)
	if err != nil {
		t.Fatalf("Sort(%s) error: %v", k, err)
	}
	if target.Tree != nil {
		return target.Tree.Root.Data, target.Tree, status
	}
	return target.Values, nil, status
}

func TestAllKindsSort(t *testing.T) {
	for _, k := range Kinds {
		t.Run(string(k), func(t *testing.T) {
			for _, in := range inputs() {
				got, _, status := runKind(t, k, in, Env{Emitter: anim.Discard})
				if status != Completed {
					t.Fatalf("%v: status = %v, want completed", in, status)
				}
				if want := sortedCopy(in); !got.Equal(want) {
					t.Errorf("%v: got %v, want %v", in, got, want)
				}
			}
		})
	}
}

func TestBarsDegenerateInputsEmitNothing(t *testing.T) {
	for _, k := range []Kind{KindBubble, KindInsertion, KindSelection} {
		for _, in := range []sequence.Sequence{{}, {9}} {
			rec := &anim.Recorder{}
			_, _, status := runKind(t, k, in, Env{Emitter: rec})
			if status != Completed || rec.Len() != 0 {
				t.Errorf("%s(%v): status %v, %d frames; want completed, 0 frames", k, in, status, rec.Len())
			}
		}
	}
}

func TestBubbleFirstPass(t *testing.T) {
	rec := &anim.Recorder{}
	seq := sequence.Sequence{5, 3, 1, 4, 2}
	Bubble(context.Background(), Env{Emitter: rec}, seq)

	// The first pass makes four comparisons and, for this input, four swaps.
	if rec.Len() < 8 {
		t.Fatalf("recorded %d frames, want at least 8", rec.Len())
	}
	endOfPass := rec.Frames[7]
	if got := endOfPass.Values[len(endOfPass.Values)-1]; got != 5 {
		t.Errorf("last value after first pass = %d, want 5", got)
	}
	if endOfPass.Highlights[3] != anim.RoleSwap || endOfPass.Highlights[4] != anim.RoleSwap {
		t.Errorf("highlights = %v, want swap at 3 and 4", endOfPass.Highlights)
	}
	if !seq.Equal(sequence.Sequence{1, 2, 3, 4, 5}) {
		t.Errorf("result = %v, want 1 2 3 4 5", seq)
	}
}

func TestBarsFramesAlternate(t *testing.T) {
	rec := &anim.Recorder{}
	Selection(context.Background(), Env{Emitter: rec}, sequence.Sequence{3, 1, 2})

	// Two passes: compare frames then one swap frame each.
	want := []anim.Role{anim.RoleCompare, anim.RoleCompare, anim.RoleSwap, anim.RoleCompare, anim.RoleSwap}
	if rec.Len() != len(want) {
		t.Fatalf("recorded %d frames, want %d", rec.Len(), len(want))
	}
	for i, f := range rec.Frames {
		for _, r := range f.Highlights {
			if r != want[i] {
				t.Errorf("frame %d role = %v, want %v", i, r, want[i])
			}
		}
		if f.Title != "Selection Sort" || f.Mode != anim.ModeBars {
			t.Errorf("frame %d = %q/%v, want Selection Sort/bars", i, f.Title, f.Mode)
		}
	}
}

type tagged struct{ value, origin int }

// TestStableSorts replays every swap frame over tagged elements and checks
// that equal values keep their input order.
func TestStableSorts(t *testing.T) {
	in := sequence.Sequence{3, 1, 3, 2, 1, 3, 2}
	for _, k := range []Kind{KindBubble, KindInsertion} {
		t.Run(string(k), func(t *testing.T) {
			rec := &anim.Recorder{}
			runKind(t, k, in, Env{Emitter: rec})

			tags := make([]tagged, len(in))
			for i, v := range in {
				tags[i] = tagged{v, i}
			}
			for n, f := range rec.Frames {
				var idx []int
				for i, r := range f.Highlights {
					if r == anim.RoleSwap {
						idx = append(idx, i)
					}
				}
				if len(idx) == 0 {
					continue
				}
				if len(idx) != 2 {
					t.Fatalf("frame %d swaps %d elements, want 2", n, len(idx))
				}
				tags[idx[0]], tags[idx[1]] = tags[idx[1]], tags[idx[0]]
				for i, tg := range tags {
					if tg.value != f.Values[i] {
						t.Fatalf("frame %d: replayed %v at %d, frame shows %v", n, tg.value, i, f.Values[i])
					}
				}
			}
			for i := 1; i < len(tags); i++ {
				if tags[i-1].value == tags[i].value && tags[i-1].origin > tags[i].origin {
					t.Errorf("equal values reordered: %v before %v", tags[i-1], tags[i])
				}
			}
		})
	}
}

func TestCancelAtEveryFrame(t *testing.T) {
	in := sequence.Sequence{5, 3, 8, 1, 4, 2, 2}
	for _, k := range Kinds {
		t.Run(string(k), func(t *testing.T) {
			full := &anim.Recorder{}
			runKind(t, k, in, Env{Emitter: full})
			if full.Len() == 0 {
				t.Fatal("no frames recorded")
			}
			for stop := 1; stop <= full.Len(); stop++ {
				rec := &anim.Recorder{CancelAt: stop}
				_, _, status := runKind(t, k, in, Env{Emitter: rec})
				if status != Cancelled {
					t.Fatalf("cancel at %d: status = %v, want cancelled", stop, status)
				}
				if rec.Len() != stop {
					t.Fatalf("cancel at %d: %d frames emitted, want no frames after cancel", stop, rec.Len())
				}
			}
		})
	}
}

func TestCancelledContextStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &anim.Recorder{}
	tree := calltree.New(sequence.Sequence{4, 3, 2, 1})
	if got := MergeSort(ctx, Env{Emitter: rec}, tree); got != Cancelled {
		t.Errorf("MergeSort() = %v, want cancelled", got)
	}
	if rec.Len() != 1 {
		t.Errorf("emitted %d frames, want 1", rec.Len())
	}
	if got := Bubble(ctx, Env{}, sequence.Sequence{2, 1}); got != Cancelled {
		t.Errorf("Bubble() without emitter = %v, want cancelled", got)
	}
}
