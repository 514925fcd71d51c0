package calltree

import "github.com/matzehuels/sortviz/pkg/sequence"

// Phase labels shown on nodes while an algorithm works on them.
const (
	LabelRoot      = "Root"
	LabelSplitting = "Splitting"
	LabelPartition = "Partition"
	LabelMerging   = "Merging"
	LabelCombining = "Combining"
	LabelCombined  = "Combined"
)

// Node is one recursive invocation's slice of data.
type Node struct {
	ID    int
	Data  sequence.Sequence
	Label string

	// Bounds is the node's box on the unscrolled canvas, written by Layout.
	Bounds Rect

	// Sorted means Data is in its final ascending order.
	Sorted bool
	// Active means an algorithm is currently working on this node.
	Active bool

	Left, Right *Node

	// Parent is a non-owning back-reference set by Layout for drawing edges.
	Parent *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// IsTerminal reports whether n is a leaf that cannot be subdivided further.
func (n *Node) IsTerminal() bool {
	return n.IsLeaf() && len(n.Data) <= 1
}

// Children returns the existing children of n, left first.
func (n *Node) Children() []*Node {
	var out []*Node
	if n.Left != nil {
		out = append(out, n.Left)
	}
	if n.Right != nil {
		out = append(out, n.Right)
	}
	return out
}

// Tree owns a call tree and assigns node ids.
type Tree struct {
	Root   *Node
	nextID int
}

// New creates a tree whose root holds a private copy of data.
func New(data sequence.Sequence) *Tree {
	t := &Tree{}
	t.Root = t.newNode(data)
	t.Root.Label = LabelRoot
	return t
}

func (t *Tree) newNode(data sequence.Sequence) *Node {
	n := &Node{ID: t.nextID, Data: data.Clone()}
	if n.Data == nil {
		n.Data = sequence.Sequence{}
	}
	t.nextID++
	return n
}

// AttachLeft gives parent a new left child holding a copy of data.
// Any existing left subtree is replaced.
func (t *Tree) AttachLeft(parent *Node, data sequence.Sequence) *Node {
	parent.Left = t.newNode(data)
	parent.Left.Parent = parent
	return parent.Left
}

// AttachRight gives parent a new right child holding a copy of data.
// Any existing right subtree is replaced.
func (t *Tree) AttachRight(parent *Node, data sequence.Sequence) *Node {
	parent.Right = t.newNode(data)
	parent.Right.Parent = parent
	return parent.Right
}

// Walk visits every node in pre-order until fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	if t == nil {
		return
	}
	walk(t.Root, fn)
}

func walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	return walk(n.Left, fn) && walk(n.Right, fn)
}

// Len returns the number of nodes reachable from the root.
func (t *Tree) Len() int {
	count := 0
	t.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Depth returns the number of levels in the tree; an empty tree has depth 0.
func (t *Tree) Depth() int {
	if t == nil {
		return 0
	}
	return depth(t.Root)
}

func depth(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.Left), depth(n.Right))
}

// Find returns the node with the given id, or nil.
func (t *Tree) Find(id int) *Node {
	var found *Node
	t.Walk(func(n *Node) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Clone returns a deep copy of t. Node ids, flags, labels and bounds are
// preserved; parent links in the copy point into the copy.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	return &Tree{Root: cloneNode(t.Root, nil), nextID: t.nextID}
}

func cloneNode(n, parent *Node) *Node {
	if n == nil {
		return nil
	}
	cp := *n
	cp.Data = n.Data.Clone()
	cp.Parent = parent
	cp.Left = cloneNode(n.Left, &cp)
	cp.Right = cloneNode(n.Right, &cp)
	return &cp
}

// Discard detaches every node from the tree so nothing stays reachable
// through it. The tree is empty afterwards.
func (t *Tree) Discard() {
	if t == nil {
		return
	}
	discard(t.Root)
	t.Root = nil
}

func discard(n *Node) {
	if n == nil {
		return
	}
	discard(n.Left)
	discard(n.Right)
	n.Left, n.Right, n.Parent = nil, nil, nil
}
