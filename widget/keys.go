package widget

// Key is a keyboard key a picker reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

// KeyFromName maps DOM KeyboardEvent.key names to keys.
func KeyFromName(name string) Key {
	switch name {
	case "ArrowLeft":
		return KeyLeft
	case "ArrowRight":
		return KeyRight
	case "ArrowUp":
		return KeyUp
	case "ArrowDown":
		return KeyDown
	}
	return KeyNone
}
