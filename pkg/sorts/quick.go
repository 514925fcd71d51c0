package sorts

import (
	"context"
	"maps"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/calltree"
)

// QuickSort sorts t.Root in place with Lomuto-partition quick sort. The
// pivot is the last element; elements strictly less than it move left.
//
// A partitioned node gets a left child for the elements before the pivot
// and a right child for those after it, each only if non-empty. Once both
// children are sorted the node is rebuilt element by element from left
// child, pivot and right child.
func QuickSort(ctx context.Context, env Env, t *calltree.Tree) Status {
	if t == nil || t.Root == nil {
		return Completed
	}
	return quickSort(ctx, env, t, t.Root)
}

func quickSort(ctx context.Context, env Env, t *calltree.Tree, n *calltree.Node) Status {
	title := KindQuick.Title()
	if len(n.Data) <= 1 {
		return settle(ctx, env, title, t, n)
	}

	n.Active = true
	n.Label = calltree.LabelPartition
	pi, status := partition(ctx, env, t, n)
	if status == Cancelled {
		return Cancelled
	}
	n.Active = false

	pivot := n.Data[pi]
	var left, right *calltree.Node
	if pi > 0 {
		left = t.AttachLeft(n, n.Data[:pi])
	}
	if pi+1 < len(n.Data) {
		right = t.AttachRight(n, n.Data[pi+1:])
	}
	env.relayout(t)
	if hold(ctx, env, treeScene(title, t, nil, nil)) {
		return Cancelled
	}

	for _, c := range []*calltree.Node{left, right} {
		if c != nil && quickSort(ctx, env, t, c) == Cancelled {
			return Cancelled
		}
	}

	n.Active = true
	n.Label = calltree.LabelCombining
	combined := make([]int, 0, len(n.Data))
	if left != nil {
		combined = append(combined, left.Data...)
	}
	combined = append(combined, pivot)
	if right != nil {
		combined = append(combined, right.Data...)
	}
	for k, v := range combined {
		n.Data[k] = v
		if emitPlacement(ctx, env, title, t, n, k+1) {
			return Cancelled
		}
	}

	n.Sorted = true
	n.Active = false
	n.Label = calltree.LabelCombined
	if hold(ctx, env, treeScene(title, t, n, nil)) {
		return Cancelled
	}
	return Completed
}

// partition runs the Lomuto scheme over n.Data and returns the final pivot
// index. Every scan step emits a compare frame showing the pivot and the
// current boundary; every exchange emits a swap frame.
func partition(ctx context.Context, env Env, t *calltree.Tree, n *calltree.Node) (int, Status) {
	title := KindQuick.Title()
	d := n.Data
	last := len(d) - 1
	pivot := d[last]
	i := -1
	for j := 0; j < last; j++ {
		h := anim.Highlights{j: anim.RoleCompare, last: anim.RolePivot}
		if i >= 0 {
			h[i] = anim.RoleBoundary
		}
		if env.emit(ctx, treeScene(title, t, n, h)) {
			return 0, Cancelled
		}
		if d[j] < pivot {
			i++
			d[i], d[j] = d[j], d[i]
			h = maps.Clone(h)
			h[i] = anim.RoleSwap
			h[j] = anim.RoleSwap
			if env.emit(ctx, treeScene(title, t, n, h)) {
				return 0, Cancelled
			}
		}
	}
	pi := i + 1
	d[pi], d[last] = d[last], d[pi]
	if env.emit(ctx, treeScene(title, t, n, anim.Highlights{pi: anim.RolePlaced})) {
		return 0, Cancelled
	}
	return pi, Completed
}
