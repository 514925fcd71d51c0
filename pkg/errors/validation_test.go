package errors

import (
	"strings"
	"testing"
)

func TestValidateSequenceText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode Code
	}{
		{"valid simple", "5 3 1 4 2", ""},
		{"valid negative", "-3 7 +2", ""},
		{"valid tabs and newlines", "1\t2\n3", ""},

		{"empty", "", ErrCodeEmptySequence},
		{"blank", "   \t ", ErrCodeEmptySequence},
		{"letters", "1 2 x", ErrCodeInvalidInput},
		{"decimal point", "1.5 2", ErrCodeInvalidInput},
		{"comma", "1,2", ErrCodeInvalidInput},
		{"null byte", "1\x002", ErrCodeInvalidInput},
		{"too long", strings.Repeat("1 ", MaxInputLength), ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSequenceText(tt.input)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateSequenceText(%q) code = %v, want %v", tt.input, got, tt.wantCode)
			}
		})
	}
}

func TestValidateSequenceLength(t *testing.T) {
	tests := []struct {
		name    string
		n, max  int
		wantErr bool
	}{
		{"within bound", 5, 64, false},
		{"at bound", 64, 64, false},
		{"unbounded", 1000, 0, false},
		{"empty", 0, 64, true},
		{"over bound", 65, 64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSequenceLength(tt.n, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSequenceLength(%d, %d) error = %v, wantErr %v", tt.n, tt.max, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative file", "tree.svg", false},
		{"nested file", "out/tree.dot", false},
		{"absolute file", "/tmp/tree.svg", false},

		{"empty", "", true},
		{"directory", "out/", true},
		{"control char", "tree\x01.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
