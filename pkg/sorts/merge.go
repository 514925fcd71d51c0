package sorts

import (
	"context"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/calltree"
)

// treeScene builds a tree-mode frame with n as the active node.
func treeScene(title string, t *calltree.Tree, n *calltree.Node, h anim.Highlights) anim.Scene {
	return anim.Scene{Mode: anim.ModeTree, Title: title, Tree: t, Active: n, Highlights: h}
}

// settle marks a node of at most one element as sorted and emits its
// single frame.
func settle(ctx context.Context, env Env, title string, t *calltree.Tree, n *calltree.Node) Status {
	n.Sorted = true
	if env.emit(ctx, treeScene(title, t, n, nil)) {
		return Cancelled
	}
	return Completed
}

// MergeSort sorts t.Root in place with top-down merge sort, growing a child
// pair under every node it splits.
//
// Each split emits two held frames: the node marked as splitting, then the
// tree with both halves attached. Each merge step emits a compare frame with
// cursors on the current heads of both children, followed by a placement
// frame. Ties take the left element first, so the merge is stable.
func MergeSort(ctx context.Context, env Env, t *calltree.Tree) Status {
	if t == nil || t.Root == nil {
		return Completed
	}
	return mergeSort(ctx, env, t, t.Root)
}

func mergeSort(ctx context.Context, env Env, t *calltree.Tree, n *calltree.Node) Status {
	title := KindMerge.Title()
	if len(n.Data) <= 1 {
		return settle(ctx, env, title, t, n)
	}

	n.Active = true
	n.Label = calltree.LabelSplitting
	if hold(ctx, env, treeScene(title, t, n, nil)) {
		return Cancelled
	}

	m := len(n.Data) / 2
	left := t.AttachLeft(n, n.Data[:m])
	right := t.AttachRight(n, n.Data[m:])
	env.relayout(t)
	if hold(ctx, env, treeScene(title, t, n, nil)) {
		return Cancelled
	}
	n.Active = false

	if mergeSort(ctx, env, t, left) == Cancelled {
		return Cancelled
	}
	if mergeSort(ctx, env, t, right) == Cancelled {
		return Cancelled
	}

	n.Active = true
	n.Label = calltree.LabelMerging
	l, r := left.Data, right.Data
	i, j, k := 0, 0, 0
	for i < len(l) && j < len(r) {
		frame := treeScene(title, t, n, placed(k))
		frame.Cursors = map[int]anim.Highlights{
			left.ID:  {i: anim.RoleCompare},
			right.ID: {j: anim.RoleCompare},
		}
		if env.emit(ctx, frame) {
			return Cancelled
		}
		if l[i] <= r[j] {
			n.Data[k] = l[i]
			i++
		} else {
			n.Data[k] = r[j]
			j++
		}
		k++
		if emitPlacement(ctx, env, title, t, n, k) {
			return Cancelled
		}
	}
	for ; i < len(l); i++ {
		n.Data[k] = l[i]
		k++
		if emitPlacement(ctx, env, title, t, n, k) {
			return Cancelled
		}
	}
	for ; j < len(r); j++ {
		n.Data[k] = r[j]
		k++
		if emitPlacement(ctx, env, title, t, n, k) {
			return Cancelled
		}
	}

	n.Sorted = true
	n.Active = false
	if env.emit(ctx, treeScene(title, t, n, nil)) {
		return Cancelled
	}
	return Completed
}

// emitPlacement emits the frame after the k-th element of n was written:
// indices before it are placed and index k-1 is new.
func emitPlacement(ctx context.Context, env Env, title string, t *calltree.Tree, n *calltree.Node, k int) bool {
	h := placed(k - 1)
	h[k-1] = anim.RoleNew
	return env.emit(ctx, treeScene(title, t, n, h))
}

func hold(ctx context.Context, env Env, scene anim.Scene) bool {
	scene.Hold = true
	return env.emit(ctx, scene)
}
