package anim

import "context"

// Recorder is an emitter that keeps a snapshot of every frame.
//
// If CancelAt is positive, the frame with that 1-based number (and every
// later one) is answered with Cancel. A done context also cancels.
type Recorder struct {
	Frames   []Scene
	CancelAt int
}

// Emit records a snapshot of scene.
func (r *Recorder) Emit(ctx context.Context, scene Scene) Signal {
	r.Frames = append(r.Frames, scene.Snapshot())
	if r.CancelAt > 0 && len(r.Frames) >= r.CancelAt {
		return Cancel
	}
	if ctx.Err() != nil {
		return Cancel
	}
	return Continue
}

// Len returns the number of recorded frames.
func (r *Recorder) Len() int { return len(r.Frames) }

// Last returns the most recent frame, or a zero Scene.
func (r *Recorder) Last() Scene {
	if len(r.Frames) == 0 {
		return Scene{}
	}
	return r.Frames[len(r.Frames)-1]
}
