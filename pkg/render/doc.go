// Package render exports sortviz scenes outside the terminal.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Subpackages
//
//   - [nodelink]: call trees as Graphviz node-link diagrams
//   - [term]: scenes as styled terminal text
//
// [nodelink]: github.com/matzehuels/sortviz/pkg/render/nodelink
// [term]: github.com/matzehuels/sortviz/pkg/render/term
package render

import "strings"

// Supported export formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Formats lists every export format.
var Formats = []string{FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// FormatFromPath infers a format from a file extension, or "".
func FormatFromPath(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	ext := strings.ToLower(path[i+1:])
	for _, f := range Formats {
		if f == ext {
			return f
		}
	}
	return ""
}
