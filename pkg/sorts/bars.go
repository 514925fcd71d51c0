package sorts

import (
	"context"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/sequence"
)

func barsScene(title string, seq sequence.Sequence, h anim.Highlights) anim.Scene {
	return anim.Scene{Mode: anim.ModeBars, Title: title, Values: seq, Highlights: h}
}

// Bubble sorts seq in place with bubble sort. Every comparison of a
// neighbouring pair emits a compare frame; every exchange emits a swap
// frame. Equal neighbours are never exchanged, so the sort is stable.
func Bubble(ctx context.Context, env Env, seq sequence.Sequence) Status {
	title := KindBubble.Title()
	n := len(seq)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if env.emit(ctx, barsScene(title, seq, pair(j, j+1, anim.RoleCompare))) {
				return Cancelled
			}
			if seq[j] > seq[j+1] {
				seq[j], seq[j+1] = seq[j+1], seq[j]
				if env.emit(ctx, barsScene(title, seq, pair(j, j+1, anim.RoleSwap))) {
					return Cancelled
				}
			}
		}
	}
	return Completed
}

// Insertion sorts seq in place with insertion sort. The key walks left
// through adjacent exchanges until its left neighbour is not greater, so
// every intermediate frame is a permutation of the input.
func Insertion(ctx context.Context, env Env, seq sequence.Sequence) Status {
	title := KindInsertion.Title()
	for i := 1; i < len(seq); i++ {
		for j := i - 1; j >= 0; j-- {
			if env.emit(ctx, barsScene(title, seq, pair(j, j+1, anim.RoleCompare))) {
				return Cancelled
			}
			if seq[j] <= seq[j+1] {
				break
			}
			seq[j], seq[j+1] = seq[j+1], seq[j]
			if env.emit(ctx, barsScene(title, seq, pair(j, j+1, anim.RoleSwap))) {
				return Cancelled
			}
		}
	}
	return Completed
}

// Selection sorts seq in place with selection sort. Each pass compares the
// running minimum against every later element and ends with one swap frame,
// even when the minimum is already in place.
func Selection(ctx context.Context, env Env, seq sequence.Sequence) Status {
	title := KindSelection.Title()
	n := len(seq)
	for i := 0; i < n-1; i++ {
		lo := i
		for j := i + 1; j < n; j++ {
			if env.emit(ctx, barsScene(title, seq, pair(lo, j, anim.RoleCompare))) {
				return Cancelled
			}
			if seq[j] < seq[lo] {
				lo = j
			}
		}
		seq[i], seq[lo] = seq[lo], seq[i]
		if env.emit(ctx, barsScene(title, seq, pair(lo, i, anim.RoleSwap))) {
			return Cancelled
		}
	}
	return Completed
}
