package desk

// LineEdit is a single-line text field fed with typed runes.
type LineEdit struct {
	text    []rune
	focused bool
}

func (e *LineEdit) Focused() bool { return e.focused }

func (e *LineEdit) String() string { return string(e.text) }

// Focus starts editing a copy of s.
func (e *LineEdit) Focus(s string) {
	e.text = []rune(s)
	e.focused = true
}

// Blur stops editing and returns the edited text.
func (e *LineEdit) Blur() string {
	e.focused = false
	return string(e.text)
}

// Type appends runes while focused. Control characters are dropped.
func (e *LineEdit) Type(rs []rune) {
	if !e.focused {
		return
	}
	for _, r := range rs {
		if r >= ' ' && r != 0x7f {
			e.text = append(e.text, r)
		}
	}
}

func (e *LineEdit) Backspace() {
	if e.focused && len(e.text) > 0 {
		e.text = e.text[:len(e.text)-1]
	}
}
