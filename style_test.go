package tcellcaret

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleAxes(t *testing.T) {
	tests := []struct {
		style    CursorStyle
		shape    Shape
		blinking bool
	}{
		{BlinkBlock, ShapeBlock, true},
		{SteadyBlock, ShapeBlock, false},
		{BlinkUnderline, ShapeUnderline, true},
		{SteadyUnderline, ShapeUnderline, false},
		{BlinkBar, ShapeBar, true},
		{SteadyBar, ShapeBar, false},
	}
	for _, test := range tests {
		t.Run(test.style.String(), func(t *testing.T) {
			assert.Equal(t, test.shape, test.style.Shape())
			assert.Equal(t, test.blinking, test.style.Blinking())
			assert.Equal(t, test.style, NewCursorStyle(test.shape, test.blinking))
		})
	}
}

func TestParseDECSCUSR(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected CursorStyle
		err      bool
	}{
		{name: "no params", input: nil, expected: BlinkBlock},
		{name: "zero", input: []int{0}, expected: BlinkBlock},
		{name: "blinking block", input: []int{1}, expected: BlinkBlock},
		{name: "steady block", input: []int{2}, expected: SteadyBlock},
		{name: "blinking underline", input: []int{3}, expected: BlinkUnderline},
		{name: "steady underline", input: []int{4}, expected: SteadyUnderline},
		{name: "blinking bar", input: []int{5}, expected: BlinkBar},
		{name: "steady bar", input: []int{6}, expected: SteadyBar},
		{name: "out of range", input: []int{7}, err: true},
		{name: "negative", input: []int{-1}, err: true},
		{name: "too many", input: []int{1, 2}, err: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			style, err := ParseDECSCUSR(test.input)
			if test.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, style)
		})
	}
}

func TestTCell(t *testing.T) {
	tests := []struct {
		style    CursorStyle
		expected tcell.CursorStyle
	}{
		{BlinkBlock, tcell.CursorStyleBlinkingBlock},
		{SteadyBlock, tcell.CursorStyleSteadyBlock},
		{BlinkUnderline, tcell.CursorStyleBlinkingUnderline},
		{SteadyUnderline, tcell.CursorStyleSteadyUnderline},
		{BlinkBar, tcell.CursorStyleBlinkingBar},
		{SteadyBar, tcell.CursorStyleSteadyBar},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.style.TCell(), test.style.String())
	}
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "steadyUnderline", SteadyUnderline.String())
	assert.Equal(t, "CursorStyle(9)", CursorStyle(9).String())
	assert.Equal(t, "bar", ShapeBar.String())
}
