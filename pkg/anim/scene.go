package anim

import (
	"maps"

	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/sequence"
)

// Role is the presentation role of a highlighted element.
type Role int

// Highlight roles.
const (
	RoleNone     Role = iota
	RoleCompare       // element being compared
	RoleSwap          // element just swapped or shifted
	RolePlaced        // element already in its merged/combined position
	RoleNew           // element written by the current step
	RoleBoundary      // quick sort partition boundary i
	RolePivot         // quick sort pivot
)

var roleNames = map[Role]string{
	RoleNone:     "none",
	RoleCompare:  "compare",
	RoleSwap:     "swap",
	RolePlaced:   "placed",
	RoleNew:      "new",
	RoleBoundary: "boundary",
	RolePivot:    "pivot",
}

func (r Role) String() string {
	if s, ok := roleNames[r]; ok {
		return s
	}
	return "unknown"
}

// Highlights maps element indices to roles. It is presentation state only;
// no algorithm ever reads it back.
type Highlights map[int]Role

// Mode selects how a scene is presented.
type Mode int

const (
	ModeBars Mode = iota
	ModeTree
)

func (m Mode) String() string {
	if m == ModeTree {
		return "tree"
	}
	return "bars"
}

// Scene is the state handed to an emitter for one frame.
//
// The Values, Tree and Active fields reference live algorithm state. An
// emitter that keeps a scene beyond the Emit call, or hands it to another
// goroutine, must take a Snapshot first.
type Scene struct {
	Mode  Mode
	Title string

	// Values is the working sequence in bars mode.
	Values sequence.Sequence

	// Tree is the call tree in tree mode.
	Tree *calltree.Tree
	// Active is the node the current step works on, or nil.
	Active *calltree.Node

	// Highlights applies to Values in bars mode and to Active.Data in tree mode.
	Highlights Highlights
	// Cursors carries highlights for other tree nodes, keyed by node id.
	Cursors map[int]Highlights

	// Hold asks the pacer to linger on this frame.
	Hold bool
}

// Snapshot returns a deep copy of s that shares no memory with the live
// algorithm state. Active is re-pointed into the cloned tree.
func (s Scene) Snapshot() Scene {
	out := s
	out.Values = s.Values.Clone()
	out.Highlights = maps.Clone(s.Highlights)
	if s.Cursors != nil {
		out.Cursors = make(map[int]Highlights, len(s.Cursors))
		for id, h := range s.Cursors {
			out.Cursors[id] = maps.Clone(h)
		}
	}
	if s.Tree != nil {
		out.Tree = s.Tree.Clone()
		out.Active = nil
		if s.Active != nil {
			out.Active = out.Tree.Find(s.Active.ID)
		}
	}
	return out
}

// HighlightsFor returns the highlights that apply to node n: the scene
// highlights if n is active, else any cursor highlights for n.
func (s Scene) HighlightsFor(n *calltree.Node) Highlights {
	if n == nil {
		return nil
	}
	if s.Active != nil && s.Active.ID == n.ID {
		return s.Highlights
	}
	return s.Cursors[n.ID]
}
