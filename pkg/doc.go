// Package pkg provides the core libraries for sortviz.
//
// # Overview
//
// Sortviz animates comparison sorts one step at a time. Bubble, insertion
// and selection sort are drawn as bars; merge sort and quick sort grow a
// call tree whose nodes show each recursive invocation's slice of data.
//
// # Architecture
//
// The data flow for one run:
//
//	input text
//	     ↓
//	[sequence] (parse and validate)
//	     ↓
//	[session] controller ──→ [sorts] algorithm
//	     ↑                        ↓
//	     │                  [anim] frame (scene + highlights)
//	     │                        ↓
//	 input events           [calltree] layout ──→ [viewport] clamp
//	                              ↓
//	              [render/term] or [render/nodelink]
//
// # Main Packages
//
// [sorts] - The five algorithms. Each reports progress through an
// [anim.Emitter] and stops at the next frame when told to cancel.
//
// [calltree] - The divide-and-conquer call tree and its recursive layout.
//
// [viewport] - Pan and scroll offsets clamped to the laid-out tree.
//
// [anim] - Scenes, highlight roles, frame delays and the emitter contract.
//
// [session] - The single-goroutine controller that owns a session: it runs
// sorts, paces frames and serves input events between them.
//
// [render/term] - Terminal rendering of scenes with lipgloss.
//
// [render/nodelink] - Graphviz export of call trees (DOT, SVG, PDF, PNG).
//
// [cache] - On-disk cache for exported renders.
//
// [config] - TOML configuration with defaults and validation.
//
// # Quick Start
//
// Run merge sort headless and record every frame:
//
//	seq, _ := sequence.Parse("5 3 8 1", 0)
//	tree := calltree.New(seq)
//	rec := &anim.Recorder{}
//	env := sorts.Env{Emitter: rec}
//	status, _ := sorts.Sort(ctx, env, sorts.KindMerge, sorts.Target{Values: seq, Tree: tree})
//	fmt.Println(status, rec.Len(), tree.Root.Data)
//
// [sequence]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/sequence
// [sorts]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/sorts
// [calltree]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/calltree
// [viewport]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/viewport
// [anim]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/anim
// [anim.Emitter]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/anim#Emitter
// [session]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/session
// [render/term]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/render/term
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/sortviz/pkg/config
package pkg
