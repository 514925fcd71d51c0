// Package nodelink renders call trees as node-link diagrams.
//
// Each node of a [calltree.Tree] becomes a rounded box holding its phase
// label and values; edges run from every node to its children. Sorted nodes
// are filled green, the active node yellow.
//
// # Usage
//
//	dot := nodelink.ToDOT(tree, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
