package hal

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGBA8888 is 32bpp, bytes in R, G, B, A order.
	PixelFormatRGBA8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Resizer is implemented by framebuffers whose size follows the window.
type Resizer interface {
	Resize(width, height int)
}

// KeyCode is a minimal key identifier. Printable keys arrive as KeyRune.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyRune
	KeyDelete
	KeyEscape
	KeyLeft
	KeyRight
)

// EventKind identifies an input event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventPrimaryPress
	EventSecondaryPress
	EventSecondaryRelease
	EventPointerMove
	EventScroll
	EventKey
	EventResize
)

func (k EventKind) String() string {
	switch k {
	case EventPrimaryPress:
		return "primary-press"
	case EventSecondaryPress:
		return "secondary-press"
	case EventSecondaryRelease:
		return "secondary-release"
	case EventPointerMove:
		return "pointer-move"
	case EventScroll:
		return "scroll"
	case EventKey:
		return "key"
	case EventResize:
		return "resize"
	default:
		return "none"
	}
}

// Event is one input event in window pixel coordinates.
//
// X/Y are set for pointer events, Delta for scroll, Key/Rune for key presses
// and W/H for resize.
type Event struct {
	Kind  EventKind
	X, Y  float64
	Delta float64
	Key   KeyCode
	Rune  rune
	W, H  int
}

// Input provides input events in temporal order.
type Input interface {
	Events() <-chan Event
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// HAL provides the only contact point between the viewer and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
