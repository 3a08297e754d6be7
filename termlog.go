package tcellcaret

type logger struct {
	fn func(string, ...interface{})
}

var tlog logger

// SetLogger routes the caret's state transition logging to fn, for example
// log.Printf. Passing nil silences it again.
func SetLogger(fn func(format string, args ...interface{})) {
	tlog.fn = fn
}

func (l *logger) Printf(format string, args ...interface{}) {
	if l.fn == nil {
		return
	}
	l.fn("caret: "+format, args...)
}

func (l *logger) transition(from, to CursorStyle) {
	switch {
	case from == to:
		l.Printf("re-entering %s\n", to)
	case from.Blinking() != to.Blinking():
		l.Printf("%s -> %s (blink %t)\n", from, to, to.Blinking())
	default:
		l.Printf("%s -> %s\n", from, to)
	}
}
