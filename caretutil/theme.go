package caretutil

import (
	"fmt"
	"strconv"
	"strings"

	tcellcaret "git.sr.ht/~ghost08/tcell-caret"
	"github.com/gdamore/tcell/v2"
)

type Colour uint8

const (
	ColourBackground Colour = iota
	ColourForeground
	ColourCursor
	ColourCursorText
)

// Theme resolves the colours a caret host needs. Unset colours fall back to
// the terminal defaults, and an unset cursor colour to the caret's default.
type Theme struct {
	colourMap map[Colour]tcell.Color
}

func (t *Theme) colour(key Colour) (tcell.Color, bool) {
	if t == nil || t.colourMap == nil {
		return tcell.ColorDefault, false
	}
	c, ok := t.colourMap[key]
	return c, ok
}

func (t *Theme) Background() tcell.Color {
	if c, ok := t.colour(ColourBackground); ok {
		return c
	}
	_, bg, _ := tcell.StyleDefault.Decompose()
	return bg
}

func (t *Theme) Foreground() tcell.Color {
	if c, ok := t.colour(ColourForeground); ok {
		return c
	}
	fg, _, _ := tcell.StyleDefault.Decompose()
	return fg
}

func (t *Theme) Cursor() tcell.Color {
	if c, ok := t.colour(ColourCursor); ok {
		return c
	}
	return tcellcaret.DefaultColor
}

// CursorText is the colour of the glyph under a focused block caret
func (t *Theme) CursorText() tcell.Color {
	if c, ok := t.colour(ColourCursorText); ok {
		return c
	}
	return tcell.ColorBlack
}

// ParseColour reads a colour as given to OSC 12: an X11 "rgb:r/g/b"
// specification with 1 to 4 hex digits per component, "#rrggbb", or a
// colour name.
func ParseColour(spec string) (tcell.Color, error) {
	spec = strings.TrimSpace(spec)
	if strings.HasPrefix(spec, "rgb:") {
		parts := strings.Split(spec[4:], "/")
		if len(parts) != 3 {
			return tcell.ColorDefault, fmt.Errorf("invalid rgb colour spec: %q", spec)
		}
		var rgb [3]int32
		for i, p := range parts {
			if len(p) == 0 || len(p) > 4 {
				return tcell.ColorDefault, fmt.Errorf("invalid rgb colour spec: %q", spec)
			}
			v, err := strconv.ParseUint(p, 16, 16)
			if err != nil {
				return tcell.ColorDefault, fmt.Errorf("invalid rgb colour spec: %q", spec)
			}
			// scale to 8 bits
			full := uint64(1)<<(4*len(p)) - 1
			rgb[i] = int32((v*0xff + full/2) / full)
		}
		return tcell.NewRGBColor(rgb[0], rgb[1], rgb[2]), nil
	}
	c := tcell.GetColor(spec)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown colour: %q", spec)
	}
	return c, nil
}
