package caretutil

import (
	"image"

	"github.com/mattn/go-runewidth"
)

// CellFrame returns the frame of the cell at col, row in host units. A
// caret over a wide rune covers both of its cells.
func CellFrame(col, row, cellW, cellH int, r rune) image.Rectangle {
	n := runewidth.RuneWidth(r)
	if n < 1 {
		n = 1
	}
	x := col * cellW
	y := row * cellH
	return image.Rect(x, y, x+n*cellW, y+cellH)
}
