package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sortviz/pkg/anim"
	"github.com/matzehuels/sortviz/pkg/cache"
	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/config"
	"github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/render"
	"github.com/matzehuels/sortviz/pkg/render/nodelink"
	"github.com/matzehuels/sortviz/pkg/sequence"
	"github.com/matzehuels/sortviz/pkg/sorts"
)

// exportOpts holds options for the export command.
type exportOpts struct {
	sortFlags
	output   string
	format   string
	frame    int
	detailed bool
	noCache  bool
}

func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a merge or quick sort call tree to a file",
		Long: `Run a tree-mode sort without animation and write its call tree as a
Graphviz diagram. The format follows the file extension unless --format is
given. With --frame N the tree is captured as it stood at frame N.`,
		Example: `  sortviz export -a merge -o merge.svg
  sortviz export -a quick --values "3 1 2" --frame 4 -o step.dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(-1)
			if err != nil {
				return err
			}
			return c.runExport(cmd.Context(), cfg, opts)
		},
	}

	opts.sortFlags.register(cmd, string(sorts.KindMerge))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (required)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, pdf, png (default from extension)")
	cmd.Flags().IntVar(&opts.frame, "frame", 0, "capture the tree at this frame (default: finished tree)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "add node ids and sizes to labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always re-render instead of reusing a cached export")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.Flags().MarkHidden("delay")

	return cmd
}

func (c *CLI) runExport(ctx context.Context, cfg *config.Config, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	format := opts.format
	if format == "" {
		format = render.FormatFromPath(opts.output)
	}
	if format == "" {
		return errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from %q; pass --format", opts.output)
	}
	if !slices.Contains(render.Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(render.Formats, ", "))
	}
	kind, seq, err := parseInputs(opts.algo, opts.values, cfg)
	if err != nil {
		return err
	}
	if kind.Mode() != anim.ModeTree {
		return errors.New(errors.ErrCodeInvalidInput, "%s draws bars, not a call tree; export needs merge or quick", kind.Title())
	}
	if opts.frame < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--frame cannot be negative")
	}

	prog := newProgress(logger)
	renders := c.renderCache(opts.noCache)
	defer renders.Close()
	params := cfg.LayoutParams()
	key := cache.RenderKey(cache.RenderKeyOpts{
		Algorithm: string(kind),
		Values:    seq,
		Frame:     opts.frame,
		Format:    format,
		Detailed:  opts.detailed,
		BoxSize:   params.Metrics.BoxSize,
		BoxGap:    params.Metrics.BoxGap,
	})

	data, hit, err := renders.Get(ctx, key)
	if err != nil {
		logger.Debug("render cache read failed", "err", err)
	}
	if !hit {
		if data, err = renderTree(ctx, cfg, kind, seq, format, opts); err != nil {
			return err
		}
		if err := renders.Set(ctx, key, data, renderCacheTTL); err != nil {
			logger.Debug("render cache write failed", "err", err)
		}
	} else {
		logger.Debug("render cache hit", "algo", kind, "format", format)
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", opts.output)
	}
	prog.done(fmt.Sprintf("Exported %s call tree", kind.Title()))
	printFile(opts.output)
	return nil
}

// renderTree runs the sort and renders its call tree behind a spinner.
func renderTree(ctx context.Context, cfg *config.Config, kind sorts.Kind, seq sequence.Sequence, format string, opts exportOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)
	tree, frames, err := buildTree(ctx, cfg, kind, seq, opts.frame)
	if err != nil {
		return nil, err
	}
	logger.Debug("tree built", "algo", kind, "nodes", tree.Len(), "frames", frames)

	spinner := newSpinner(ctx, os.Stderr, renderLabel(kind, tree.Len(), frames, format))
	spinner.Start()
	data, err := nodelink.Render(ctx, tree, format, nodelink.Options{Detailed: opts.detailed})
	if err != nil {
		spinner.Fail(fmt.Sprintf("%s render of %d nodes failed", format, tree.Len()))
		return nil, err
	}
	logger.Debug("rendered", "format", format, "bytes", len(data), "took", spinner.Stop())
	return data, nil
}

// buildTree runs kind on seq and returns the resulting call tree. A positive
// frame stops the run there and returns the tree as that frame showed it.
func buildTree(ctx context.Context, cfg *config.Config, kind sorts.Kind, seq sequence.Sequence, frame int) (*calltree.Tree, int, error) {
	params := cfg.LayoutParams()
	tree := calltree.New(seq.Clone())
	rec := &anim.Recorder{CancelAt: frame}
	env := sorts.Env{
		Emitter:  rec,
		Relayout: func(t *calltree.Tree) { calltree.Layout(t.Root, params) },
	}
	status, err := sorts.Sort(ctx, env, kind, sorts.Target{Values: seq.Clone(), Tree: tree})
	if err != nil {
		return nil, 0, err
	}
	if status == sorts.Cancelled {
		if ctx.Err() != nil {
			return nil, rec.Len(), ctx.Err()
		}
		return rec.Last().Tree, rec.Len(), nil
	}
	if frame > rec.Len() {
		return nil, rec.Len(), errors.New(errors.ErrCodeInvalidInput, "frame %d out of range: the run has %d frames", frame, rec.Len())
	}
	return tree, rec.Len(), nil
}
