//go:build !cgo

package hal

func (in *hostInput) poll() {
	// No pointer or keyboard support without the window backend.
}
