// Package calltree models the divide-and-conquer call tree drawn in tree mode.
//
// # Ownership
//
// Each [Node] stands for one recursive invocation of merge sort or quick sort
// and owns the slice of data that invocation works on. Children are owned
// exclusively by their parent through [Node.Left] and [Node.Right]; the
// [Node.Parent] link is a plain back-reference set by [Layout] for drawing
// connective edges and is never followed to manage lifetime. A [Tree] owns
// the root and hands out node ids, so frames can refer to nodes by id even
// after the tree has been cloned for presentation.
//
// # Layout
//
// [Layout] is a pre-order heuristic, not a collision-checking layout. Every
// node is centered at its x coordinate with a width derived from its element
// count; children sit one level lower at x minus and plus the horizontal
// spacing, and the spacing halves with every level:
//
//	ext := calltree.Layout(tree.Root, calltree.Params{
//	    CenterX: 600, TopY: 100,
//	    HSpacing: 300, VSpacing: 120,
//	    Metrics: calltree.DefaultMetrics,
//	})
//
// Because spacing depends on depth at call time, the whole tree is laid out
// again after every structural change. The returned [Extents] feed viewport
// clamping; an empty tree yields [EmptyExtents].
package calltree
