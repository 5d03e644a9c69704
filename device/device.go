package device

import "io"

// Device is the terminal a navigator paints screens on and reads lines from.
type Device interface {
	Clear() error
	WriteLines(lines ...string) error
	ReadLine(prompt string) (string, error)
	io.Closer
}
