package caretutil

import (
	"image"
	"image/color"

	tcellcaret "git.sr.ht/~ghost08/tcell-caret"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// Render composites the caret into dst at its frame. The shape's y-up
// coordinates are flipped into raster space, so underlines sit on the bottom
// edge of the cell. opacity scales the paint's alpha.
func Render(dst draw.Image, c *tcellcaret.Caret, opacity float64) {
	r := rasterShape(c.Frame(), c.Shape())
	if r.Empty() {
		return
	}
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	mask := image.NewUniform(color.Alpha{A: uint8(opacity*0xff + 0.5)})

	paint := c.Paint()
	if paint.Filled {
		src := image.NewUniform(toRGBA(paint.Fill))
		draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
	}
	if paint.BorderWidth > 0 {
		src := image.NewUniform(toRGBA(paint.BorderColor))
		for _, edge := range borderEdges(r, paint.BorderWidth) {
			draw.DrawMask(dst, edge, src, image.Point{}, mask, image.Point{}, draw.Over)
		}
	}
}

func rasterShape(frame, shape image.Rectangle) image.Rectangle {
	return image.Rect(
		frame.Min.X+shape.Min.X,
		frame.Max.Y-shape.Max.Y,
		frame.Min.X+shape.Max.X,
		frame.Max.Y-shape.Min.Y,
	)
}

// borderEdges splits a stroke of width bw inside r into non-overlapping
// rectangles
func borderEdges(r image.Rectangle, bw int) []image.Rectangle {
	if r.Dx() <= 2*bw || r.Dy() <= 2*bw {
		return []image.Rectangle{r}
	}
	return []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+bw),
		image.Rect(r.Min.X, r.Max.Y-bw, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+bw, r.Min.X+bw, r.Max.Y-bw),
		image.Rect(r.Max.X-bw, r.Min.Y+bw, r.Max.X, r.Max.Y-bw),
	}
}

// toRGBA resolves c for raster output. A raster has no terminal default
// colour, so colours without an RGB value use the caret's default colour.
func toRGBA(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		r, g, b = tcellcaret.DefaultColor.RGB()
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}
