package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"chess-rules/board"
)

const (
	lightSquare = "fill:#f0d9b5"
	darkSquare  = "fill:#b58863"
)

// glyphs maps piece kinds to Unicode chess symbols, white then black.
var glyphs = [2][7]string{
	{"", "♔", "♙", "♘", "♗", "♖", "♕"},
	{"", "♚", "♟", "♞", "♝", "♜", "♛"},
}

type highlight struct {
	squares uint64
	style   string
}

type svgOptions struct {
	square     int
	coords     bool
	highlights []highlight
	title      string
}

// SVGOption configures SVG output.
type SVGOption func(*svgOptions)

// WithSquareSize sets the side of one square in pixels. Values below 8 are
// ignored.
func WithSquareSize(px int) SVGOption {
	return func(o *svgOptions) {
		if px >= 8 {
			o.square = px
		}
	}
}

// WithCoordinates labels files and ranks along the board edge.
func WithCoordinates() SVGOption {
	return func(o *svgOptions) { o.coords = true }
}

// WithHighlight overlays the squares in bb with a translucent colour, for
// example "#ff0000". Later highlights are drawn on top of earlier ones.
func WithHighlight(bb uint64, color string) SVGOption {
	return func(o *svgOptions) {
		o.highlights = append(o.highlights, highlight{bb, "fill:" + color + ";fill-opacity:0.45"})
	}
}

// WithTitle sets the document title.
func WithTitle(title string) SVGOption {
	return func(o *svgOptions) { o.title = title }
}

// SVG writes a diagram of b with White at the bottom.
func SVG(w io.Writer, b *board.Board, opts ...SVGOption) {
	o := svgOptions{square: 48}
	for _, opt := range opts {
		opt(&o)
	}
	margin := 0
	if o.coords {
		margin = o.square / 2
	}
	size := 8*o.square + 2*margin

	canvas := svg.New(w)
	canvas.Start(size, size)
	if o.title != "" {
		canvas.Title(o.title)
	}
	canvas.Rect(0, 0, size, size, "fill:#ffffff")

	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			x, y := margin+f*o.square, margin+(7-r)*o.square
			style := lightSquare
			if (f+r)%2 == 0 {
				style = darkSquare
			}
			canvas.Rect(x, y, o.square, o.square, style)
			sq := board.NewSquare(f, r)
			for _, h := range o.highlights {
				if h.squares&sq.Bitboard() != 0 {
					canvas.Rect(x, y, o.square, o.square, h.style)
				}
			}
			if p := b.PieceAt(sq); !p.Empty() {
				canvas.Text(x+o.square/2, y+o.square*4/5, glyphs[p.Side][p.Kind],
					fmt.Sprintf("text-anchor:middle;font-size:%dpx", o.square*4/5))
			}
		}
	}

	if o.coords {
		label := fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:#333333", o.square/3)
		for i := 0; i < 8; i++ {
			c := margin + i*o.square + o.square/2
			canvas.Text(c, size-margin/3, string(rune('a'+i)), label)
			canvas.Text(margin/2, margin+(7-i)*o.square+o.square/2+o.square/8, string(rune('1'+i)), label)
		}
	}
	canvas.End()
}

// AttackSVG is SVG with the attacked squares, the check-block mask and the
// pinned pieces of calc highlighted.
func AttackSVG(w io.Writer, b *board.Board, calc *board.AttackCalculator, opts ...SVGOption) {
	overlay := []SVGOption{
		WithHighlight(calc.Attacked(), "#e03030"),
		WithHighlight(calc.CheckBlock(), "#3060e0"),
		WithHighlight(calc.Pinned(), "#f0c000"),
	}
	SVG(w, b, append(overlay, opts...)...)
}
