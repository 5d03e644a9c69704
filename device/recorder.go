package device

import (
	"io"
	"strings"
)

// Recorder is a scripted device. It answers reads from a fixed list of lines and
// keeps every screen it was asked to paint.
type Recorder struct {
	inputs  []string
	Screens [][]string
	Prompts []string
	closed  bool
}

func NewRecorder(inputs ...string) *Recorder {
	return &Recorder{inputs: inputs, Screens: [][]string{{}}}
}

func (r *Recorder) Clear() error {
	r.Screens = append(r.Screens, []string{})
	return nil
}

func (r *Recorder) WriteLines(lines ...string) error {
	last := len(r.Screens) - 1
	r.Screens[last] = append(r.Screens[last], lines...)
	return nil
}

func (r *Recorder) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)
	if r.closed || len(r.inputs) == 0 {
		return "", io.EOF
	}
	line := r.inputs[0]
	r.inputs = r.inputs[1:]
	r.WriteLines(prompt + line)
	return line, nil
}

func (r *Recorder) Close() error {
	r.closed = true
	return nil
}

// Pending is the number of scripted lines not consumed yet.
func (r *Recorder) Pending() int {
	return len(r.inputs)
}

// Screen returns the screen painted n clears ago; 0 is the current one.
func (r *Recorder) Screen(n int) []string {
	if n < 0 || n >= len(r.Screens) {
		return nil
	}
	return r.Screens[len(r.Screens)-1-n]
}

func (r *Recorder) Contains(text string) bool {
	for _, screen := range r.Screens {
		for _, line := range screen {
			if strings.Contains(line, text) {
				return true
			}
		}
	}
	return false
}
