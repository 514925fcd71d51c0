// Package anim defines the contract between sorting algorithms and whatever
// presents their progress.
//
// # Frames
//
// Algorithms call [Emitter.Emit] after every unit of visible progress: one
// comparison, one swap, one element placed, one subdivision. Each call passes
// a [Scene] describing the live state (the working sequence in bars mode, the
// call tree in tree mode) plus a set of [Highlights] mapping element indices
// to presentation roles.
//
// # Cancellation
//
// Emit returns a [Signal]. [Cancel] means the user asked for a reset, a new
// array or to close the window; the algorithm must stop at once and return
// its Cancelled status up through every recursive caller. Emitters are the
// only suspension point, so cancellation is observed exactly at frame
// boundaries.
//
// # Pacing
//
// [Delay] is the adjustable step delay in milliseconds (clamped to
// [0, MaxDelay]). [Pacer] blocks for the delay between frames without busy
// waiting and returns early when the context is cancelled. Hold frames, such
// as a freshly split node, wait twice as long plus a fixed extra.
//
// # Testing
//
// [Recorder] keeps a deep snapshot of every emitted scene and can be told to
// cancel at a given frame, which makes cancellation reproducible in tests.
package anim
