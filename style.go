package tcellcaret

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// CursorStyle is the caret's shape and blink combination. The ordering
// follows DECSCUSR, so the zero value is a blinking block.
type CursorStyle int

const (
	BlinkBlock CursorStyle = iota
	SteadyBlock
	BlinkUnderline
	SteadyUnderline
	BlinkBar
	SteadyBar
)

// Shape is the geometry axis of a CursorStyle
type Shape int

const (
	ShapeBlock Shape = iota
	ShapeUnderline
	ShapeBar
)

// NewCursorStyle combines a shape with a blink behavior
func NewCursorStyle(shape Shape, blinking bool) CursorStyle {
	s := CursorStyle(shape) * 2
	if !blinking {
		s += 1
	}
	return s
}

// Blinking reports whether the style belongs to the blinking super-state
func (s CursorStyle) Blinking() bool {
	return s%2 == 0
}

func (s CursorStyle) Shape() Shape {
	return Shape(s / 2)
}

func (s CursorStyle) String() string {
	switch s {
	case BlinkBlock:
		return "blinkBlock"
	case SteadyBlock:
		return "steadyBlock"
	case BlinkUnderline:
		return "blinkUnderline"
	case SteadyUnderline:
		return "steadyUnderline"
	case BlinkBar:
		return "blinkBar"
	case SteadyBar:
		return "steadyBar"
	default:
		return fmt.Sprintf("CursorStyle(%d)", int(s))
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeBlock:
		return "block"
	case ShapeUnderline:
		return "underline"
	case ShapeBar:
		return "bar"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseDECSCUSR interprets the parameters of a "CSI Ps SP q" sequence. An
// empty parameter list is treated as Ps = 0.
func ParseDECSCUSR(params []int) (CursorStyle, error) {
	ps := 0
	switch len(params) {
	case 0:
	case 1:
		ps = params[0]
	default:
		return BlinkBlock, fmt.Errorf("invalid DECSCUSR parameter count: %d", len(params))
	}
	switch {
	case ps == 0:
		return BlinkBlock, nil
	case ps >= 1 && ps <= 6:
		return CursorStyle(ps - 1), nil
	default:
		return BlinkBlock, fmt.Errorf("invalid DECSCUSR parameter: %d", ps)
	}
}

// TCell returns the equivalent native tcell cursor style
func (s CursorStyle) TCell() tcell.CursorStyle {
	switch s {
	case SteadyBlock:
		return tcell.CursorStyleSteadyBlock
	case BlinkUnderline:
		return tcell.CursorStyleBlinkingUnderline
	case SteadyUnderline:
		return tcell.CursorStyleSteadyUnderline
	case BlinkBar:
		return tcell.CursorStyleBlinkingBar
	case SteadyBar:
		return tcell.CursorStyleSteadyBar
	default:
		return tcell.CursorStyleBlinkingBlock
	}
}
