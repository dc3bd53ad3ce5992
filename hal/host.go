package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const inputQueue = 256

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	in     *hostInput
}

// New returns a host HAL with a width x height framebuffer logging to stdout.
func New(width, height int) HAL {
	return newHost(os.Stdout, width, height)
}

func newHost(logOut io.Writer, width, height int) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: logOut},
		fb:     newHostFramebuffer(width, height),
		in:     newHostInput(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return h.in }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

// hostInput queues events produced by the window poll or a replayed script.
// Events beyond the queue size are dropped.
type hostInput struct {
	ch chan Event

	// window poll state
	lastX, lastY int
	pointerSeen  bool
}

func newHostInput() *hostInput {
	return &hostInput{ch: make(chan Event, inputQueue)}
}

func (in *hostInput) Events() <-chan Event { return in.ch }

func (in *hostInput) emit(ev Event) bool {
	select {
	case in.ch <- ev:
		return true
	default:
		return false
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
