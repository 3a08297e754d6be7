package caretutil

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellFrame(t *testing.T) {
	tests := []struct {
		name     string
		col, row int
		r        rune
		expected image.Rectangle
	}{
		{name: "origin", col: 0, row: 0, r: 'a', expected: image.Rect(0, 0, 8, 16)},
		{name: "offset", col: 3, row: 2, r: 'a', expected: image.Rect(24, 32, 32, 48)},
		{name: "wide rune", col: 1, row: 0, r: '界', expected: image.Rect(8, 0, 24, 16)},
		{name: "zero width rune", col: 1, row: 1, r: '\u0301', expected: image.Rect(8, 16, 16, 32)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, CellFrame(test.col, test.row, 8, 16, test.r))
		})
	}
}
