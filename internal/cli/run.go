package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/session"
	"github.com/matzehuels/sortviz/pkg/sorts"
)

func (c *CLI) runCommand() *cobra.Command {
	var (
		flags  sortFlags
		frames bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one sort without the interactive view",
		Long: `Run one sort to completion and print the result. With --frames every
animation frame is printed as one line. The frame delay still applies;
pass --delay 0 to run at full speed.`,
		Example: `  sortviz run -a quick --values "9 8 7 6 5 4 3 2 1" --delay 0
  sortviz run -a insertion --frames`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(flags.delay)
			if err != nil {
				return err
			}
			kind, seq, err := parseInputs(flags.algo, flags.values, cfg)
			if err != nil {
				return err
			}

			opts := session.Options{
				Config: cfg,
				Logger: loggerFromContext(cmd.Context()),
				Values: seq,
			}
			if frames {
				n := 0
				opts.Presenter = session.PresenterFunc(func(f session.Frame) {
					if f.State != session.StateSorting {
						return
					}
					n++
					fmt.Printf("%4d  %s\n", n, describeScene(f.Scene))
				})
			}
			ctrl, err := session.New(opts)
			if err != nil {
				return err
			}
			return runSort(cmd.Context(), ctrl, kind)
		},
	}

	flags.register(cmd, string(sorts.KindBubble))
	cmd.Flags().BoolVar(&frames, "frames", false, "print every frame")
	return cmd
}

// runSort runs kind once and prints the outcome. A run cut short by an
// interrupt returns the context error so main can exit accordingly.
func runSort(ctx context.Context, ctrl *session.Controller, kind sorts.Kind) error {
	before := ctrl.Values()
	res, err := ctrl.StartSort(ctx, kind)
	if err != nil {
		return err
	}
	if res.Status == sorts.Cancelled {
		printWarning("%s cancelled after %d frames", kind.Title(), res.Frames)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	}

	printSuccess("%s finished", kind.Title())
	printKeyValue("Run", res.RunID)
	printKeyValue("Input", before.String())
	printKeyValue("Output", ctrl.Values().String())
	printKeyValue("Frames", fmt.Sprint(res.Frames))
	printKeyValue("Elapsed", res.Elapsed.Round(time.Millisecond).String())
	if t := ctrl.Tree(); t != nil {
		printKeyValue("Call tree", fmt.Sprintf("%d nodes, depth %d", t.Len(), t.Depth()))
	}
	return nil
}

// describeScene renders one frame as a single plain-text line.
func describeScene(s anim.Scene) string {
	if s.Mode == anim.ModeBars {
		return fmt.Sprintf("[%s]  %s", s.Values, fmtHighlights(s.Highlights))
	}
	if s.Active == nil {
		return "(idle)"
	}
	line := fmt.Sprintf("#%d %-10s [%s]  %s", s.Active.ID, s.Active.Label, s.Active.Data, fmtHighlights(s.Highlights))
	if len(s.Cursors) > 0 {
		ids := make([]int, 0, len(s.Cursors))
		for id := range s.Cursors {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		for _, id := range ids {
			line += fmt.Sprintf("  #%d:%s", id, fmtHighlights(s.Cursors[id]))
		}
	}
	return strings.TrimRight(line, " ")
}

// fmtHighlights lists highlights by index, e.g. "0=compare 3=swap".
func fmtHighlights(h anim.Highlights) string {
	idx := make([]int, 0, len(h))
	for i := range h {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	parts := make([]string, len(idx))
	for k, i := range idx {
		parts[k] = fmt.Sprintf("%d=%s", i, h[i])
	}
	return strings.Join(parts, " ")
}
