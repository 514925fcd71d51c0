package anim

import "context"

// Signal is what an emitter tells the algorithm after a frame.
type Signal int

const (
	// Continue lets the algorithm proceed to its next step.
	Continue Signal = iota
	// Cancel asks the algorithm to unwind immediately.
	Cancel
)

func (s Signal) String() string {
	if s == Cancel {
		return "cancel"
	}
	return "continue"
}

// Emitter receives one frame per visible algorithmic step.
type Emitter interface {
	Emit(ctx context.Context, scene Scene) Signal
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(ctx context.Context, scene Scene) Signal

// Emit calls f(ctx, scene).
func (f EmitterFunc) Emit(ctx context.Context, scene Scene) Signal { return f(ctx, scene) }

// Discard is an emitter that presents nothing and cancels only when the
// context is done. It runs an algorithm at full speed.
var Discard Emitter = EmitterFunc(func(ctx context.Context, _ Scene) Signal {
	if ctx.Err() != nil {
		return Cancel
	}
	return Continue
})
