package main

import (
	"fmt"
	"log"
	"os"

	tcellcaret "git.sr.ht/~ghost08/tcell-caret"
	"git.sr.ht/~ghost08/tcell-caret/caretutil"
	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/views"
	"golang.org/x/term"
)

const text = "The quick brown fox 跳过 the lazy dog"

var palette = []tcell.Color{
	tcellcaret.DefaultColor,
	tcell.ColorOrange,
	tcell.ColorLime,
	tcell.ColorHotPink,
}

type model struct {
	s        tcell.Screen
	textView views.View
	title    *views.TextBar
	caret    *caretutil.Widget
	theme    *caretutil.Theme
	pos      int
	colour   int
	clicks   int
	native   bool
}

func (m *model) draw() {
	m.s.Clear()
	m.title.Draw()
	style := tcell.StyleDefault.Foreground(m.theme.Foreground())
	for i, r := range []rune(text) {
		m.textView.SetContent(m.column(i), 0, r, nil, style)
	}
	if m.native {
		// the terminal draws its own cursor in place of the overlay
		col, row := m.caret.Cell()
		m.s.SetCursorStyle(m.caret.Caret().Style().TCell())
		m.s.ShowCursor(col, row+2)
	} else {
		m.s.HideCursor()
		m.caret.Draw()
	}
	m.s.Show()
}

// column returns the screen column of the rune at index i
func (m *model) column(i int) int {
	col := 0
	for _, r := range []rune(text)[:i] {
		col += caretutil.CellFrame(0, 0, 1, 1, r).Dx()
	}
	return col
}

func (m *model) moveTo(i int) {
	runes := []rune(text)
	if i < 0 || i >= len(runes) {
		return
	}
	m.pos = i
	m.caret.SetCell(m.column(i), 0, runes[i])
}

func (m *model) status(s string) {
	m.title.SetLeft(s, tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

func (m *model) HandleEvent(ev tcell.Event) bool {
	c := m.caret.Caret()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			c.SetFocused(!c.Focused())
		case tcell.KeyLeft:
			m.moveTo(m.pos - 1)
		case tcell.KeyRight:
			m.moveTo(m.pos + 1)
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r >= '0' && r <= '6':
				style, err := tcellcaret.ParseDECSCUSR([]int{int(r - '0')})
				if err != nil {
					log.Println(err)
					break
				}
				c.SetStyle(style)
			case r == 'n':
				m.native = !m.native
			case r == 'p':
				c.DisableAnimations()
			case r == 'c':
				m.colour = (m.colour + 1) % len(palette)
				c.SetColor(palette[m.colour])
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			break
		}
		if m.caret.HandleEvent(ev) {
			break
		}
		// the caret never claims clicks, the text line gets them
		m.clicks++
	case *tcell.EventResize:
		m.textView.Resize(0, 2, -1, -1)
		m.caret.Resize()
		m.s.Sync()
	case *caretutil.EventBlink:
		m.caret.HandleEvent(ev)
	}
	m.status(fmt.Sprintf("style=%s focused=%t animating=%t native=%t clicks=%d",
		c.Style(), c.Focused(), c.Animating(), m.native, m.clicks))
	m.draw()
	return true
}

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "caret example needs a terminal")
		os.Exit(1)
	}
	f, err := os.Create("caret.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	tcellcaret.SetLogger(log.Printf)

	m := &model{}
	m.s, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err = m.s.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	m.s.EnableMouse()
	defer m.s.Fini()

	m.title = views.NewTextBar()
	m.title.SetView(views.NewViewPort(m.s, 0, 0, -1, 1))
	m.title.SetRight("0-6 style  tab focus  p pause  c colour  n native  ^C quit", tcell.StyleDefault)
	m.textView = views.NewViewPort(m.s, 0, 2, -1, -1)

	driver := caretutil.NewTickerDriver(m.s.PostEvent, 0)
	theme := caretutil.NewThemeFactory().
		WithColour(caretutil.ColourCursor, palette[0]).
		Build()
	c := tcellcaret.New(
		caretutil.CellFrame(0, 0, 1, 1, []rune(text)[0]),
		tcellcaret.BlinkBlock,
		tcellcaret.WithBlinkDriver(driver),
		tcellcaret.WithColor(theme.Cursor()),
		tcellcaret.WithFocused(true),
	)
	defer c.DisableAnimations()
	m.theme = theme
	m.caret = caretutil.NewWidget(c,
		caretutil.WithTheme(theme),
		caretutil.WithView(m.textView),
		caretutil.WithOpacitySource(driver),
	)
	m.moveTo(0)
	m.draw()

	for {
		ev := m.s.PollEvent()
		if ev == nil {
			break
		}
		if !m.HandleEvent(ev) {
			break
		}
	}
}
