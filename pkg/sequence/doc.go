// Package sequence holds the integer sequences the visualizer sorts.
//
// A [Sequence] is an ordered, mutable list of integers. The session controller
// keeps two of them: the working copy that algorithms mutate while animating,
// and the original snapshot that is restored on reset, new array and
// cancellation. [Sequence.Clone] produces independent copies so that a
// snapshot never aliases the working data.
//
// [Parse] is the input-parsing collaborator: it turns free text of
// whitespace-separated integers into a non-empty Sequence.
//
//	seq, err := sequence.Parse("5 3 1 4 2", sequence.DefaultMaxValues)
//	if err != nil {
//	    return err
//	}
//	snapshot := seq.Clone()
package sequence
