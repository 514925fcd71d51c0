// Package session drives interactive sort sessions.
//
// A [Controller] owns the working and original sequences, the call tree of
// the current tree-mode run and the viewport. It runs algorithms on its own
// goroutine, one at a time, and acts as their frame emitter: every frame is
// handed to a [Presenter], paced by the current delay, and followed by a
// poll of the [Inbox] for input.
//
// # Commands
//
// Input arrives as [Event] values. Navigation events (drag, scroll) and
// speed changes are applied immediately, even mid-sort. Reset, New Array and
// Close interrupt a running sort: the emitter answers [anim.Cancel], the
// algorithm unwinds, the controller restores the original sequence and
// discards the tree, and only then is the interrupting command applied.
//
// # Lifecycle
//
//	Idle --StartSort--> Sorting --completed--> Sorted --Reset--> Idle
//	                       |
//	                       +--cancelled--> Idle (original restored)
//
// New Array without text moves to AwaitingInput; a submitted line of
// integers replaces the sequence and returns to Idle. While Sorted, sort
// commands are ignored until Reset or New Array.
package session
