// Package sorts implements the animated sorting algorithms.
//
// # Bars Mode
//
// [Bubble], [Insertion] and [Selection] sort a flat [sequence.Sequence] in
// place. They emit a frame after every comparison and, separately, after
// every swap, highlighting the indices involved.
//
// # Tree Mode
//
// [MergeSort] and [QuickSort] sort the root of a [calltree.Tree] while
// growing the tree: every recursive call becomes a child node that owns a
// copy of its slice. After each structural change the algorithm asks
// [Env.Relayout] to recompute the layout before emitting the next frame.
//
// # Cancellation
//
// Every algorithm returns a [Status]. As soon as the emitter answers
// [anim.Cancel] the algorithm returns [Cancelled] without finishing any
// remaining work, and every recursive caller propagates it unchanged. Data
// and tree are left exactly as they were at the cancelled frame; restoring
// them is the caller's job.
//
//	rec := &anim.Recorder{}
//	status := sorts.Bubble(ctx, sorts.Env{Emitter: rec}, seq)
//	if status == sorts.Cancelled {
//	    seq = snapshot.Clone()
//	}
package sorts
