package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/sortviz/pkg/sorts"
)

func TestRenderLabel(t *testing.T) {
	got := renderLabel(sorts.KindMerge, 31, 87, "svg")
	want := "Rendering Merge Sort call tree (31 nodes, 87 frames) as svg"
	if got != want {
		t.Errorf("renderLabel() = %q, want %q", got, want)
	}
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Rendering 7 nodes")
	s.Start()
	time.Sleep(3 * spinnerTick)
	took := s.Stop()

	out := ansi.Strip(buf.String())
	if !strings.Contains(out, "Rendering 7 nodes") || !strings.Contains(out, spinnerFrames[0]) {
		t.Errorf("output %q missing label or first frame", out)
	}
	if !strings.HasSuffix(out, " \r") {
		t.Errorf("output %q does not end by clearing the line", out)
	}
	if took < spinnerTick {
		t.Errorf("Stop() = %v, want at least %v", took, spinnerTick)
	}
	if s.Cancelled() {
		t.Error("a normal stop reported cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "x")
	s.Start()
	first := s.Stop()
	if again := s.Stop(); again != first {
		t.Errorf("second Stop() = %v, want %v", again, first)
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "x")
	if took := s.Stop(); took != 0 {
		t.Errorf("Stop() = %v, want 0", took)
	}
	if buf.Len() != 0 {
		t.Errorf("unstarted spinner wrote %q", buf.String())
	}
}

func TestSpinnerParentCancelled(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) }},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), spinnerTick/2)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()
			s := newSpinner(ctx, &bytes.Buffer{}, "x")
			s.Start()
			if tt.name == "cancel" {
				cancel()
			}
			select {
			case <-s.stopped:
			case <-time.After(time.Second):
				t.Fatal("spinner kept running after its context ended")
			}
			if !s.Cancelled() {
				t.Error("Cancelled() = false after the parent context ended")
			}
			s.Stop()
		})
	}
}

func TestSpinnerFail(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "x")
	s.Start()
	s.Fail("svg render of 7 nodes failed")
	if out := ansi.Strip(buf.String()); !strings.HasSuffix(out, iconError+" svg render of 7 nodes failed\n") {
		t.Errorf("output = %q", out)
	}
}
