package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sortviz/pkg/calltree"
	"github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/observability"
	"github.com/matzehuels/sortviz/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the node id and element count to every label.
	Detailed bool
}

// ToDOT converts a call tree to Graphviz DOT format. A nil or empty tree
// yields a graph with no nodes.
func ToDOT(t *calltree.Tree, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	var edges []string
	t.Walk(func(n *calltree.Node) bool {
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(n), strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed)), ", "))
		for _, c := range n.Children() {
			edges = append(edges, fmt.Sprintf("  %s -> %s;\n", nodeID(n), nodeID(c)))
		}
		return true
	})

	if len(edges) > 0 {
		buf.WriteString("\n")
		for _, e := range edges {
			buf.WriteString(e)
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(n *calltree.Node) string { return "n" + strconv.Itoa(n.ID) }

func fmtLabel(n *calltree.Node, detailed bool) string {
	values := "[" + n.Data.String() + "]"
	var lines []string
	if n.Label != "" {
		lines = append(lines, n.Label)
	}
	lines = append(lines, values)
	if detailed {
		lines = append(lines, fmt.Sprintf("id: %d, n: %d", n.ID, len(n.Data)))
	}
	return strings.Join(lines, "\n")
}

func fmtAttrs(n *calltree.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case n.Active:
		attrs = append(attrs, "fillcolor=lightyellow", "penwidth=2")
	case n.Sorted:
		attrs = append(attrs, "fillcolor=palegreen")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root svg tag so the drawing starts at the
// origin and scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

// Render produces the given export format for t. The render hooks see
// every call, failed ones included.
func Render(ctx context.Context, t *calltree.Tree, format string, opts Options) ([]byte, error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, t.Len())
	start := time.Now()
	out, err := renderFormat(ctx, ToDOT(t, opts), format)
	hooks.OnRenderComplete(ctx, format, time.Since(start), err)
	return out, err
}

func renderFormat(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case render.FormatDOT:
		return []byte(dot), nil
	case render.FormatSVG:
		return RenderSVG(ctx, dot)
	case render.FormatPDF:
		return RenderPDF(ctx, dot)
	case render.FormatPNG:
		return RenderPNG(ctx, dot, 2.0)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(render.Formats, ", "))
	}
}
