package render

import "testing"

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"tree.svg", FormatSVG},
		{"out/TREE.DOT", FormatDOT},
		{"a.b.png", FormatPNG},
		{"report.pdf", FormatPDF},
		{"tree.jpeg", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
