package sequence

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/sortviz/pkg/errors"
)

// DefaultMaxValues is the default upper bound on parsed sequence length.
// Longer inputs do not fit the tree canvas at any useful zoom level.
const DefaultMaxValues = 64

// Sequence is an ordered list of comparable integers.
type Sequence []int

// Clone returns an independent copy of s. A nil Sequence clones to nil.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// Equal reports whether s and other hold the same values in the same order.
func (s Sequence) Equal(other Sequence) bool {
	return slices.Equal(s, other)
}

// IsSorted reports whether s is in non-decreasing order.
func (s Sequence) IsSorted() bool {
	return slices.IsSorted(s)
}

// Max returns the largest value in s, or 0 for an empty sequence.
func (s Sequence) Max() int {
	if len(s) == 0 {
		return 0
	}
	return slices.Max(s)
}

// String renders s as space-separated values, the same form Parse accepts.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

// Parse reads whitespace-separated integers from text.
//
// It fails with ErrCodeEmptySequence when text holds no numbers and with
// ErrCodeInvalidInput when a field is not an integer or the sequence is
// longer than maxValues. A maxValues of zero or less means unbounded.
func Parse(text string, maxValues int) (Sequence, error) {
	if err := errors.ValidateSequenceText(text); err != nil {
		return nil, err
	}

	fields := strings.Fields(text)
	if err := errors.ValidateSequenceLength(len(fields), maxValues); err != nil {
		return nil, err
	}

	out := make(Sequence, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "not an integer: %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
