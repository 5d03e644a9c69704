package tcell

import (
	"context"
	"io"
	"log"
	"strings"

	"hms/lifecycle"
	"hms/stream"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"golang.org/x/text/unicode/norm"
)

// Device is a full screen terminal with a one line editor at the bottom of the output.
type Device struct {
	screen tcell.Screen
	events *stream.Stream[tcell.Event]
	lc     *lifecycle.Lifecycle
	lines  []string
	prompt string
	input  []rune
	cancel string
	closed bool
}

// NewDevice opens the terminal. Esc submits cancel as if it had been typed.
func NewDevice(cancel string) (*Device, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newDevice(screen, cancel), nil
}

func newDevice(screen tcell.Screen, cancel string) *Device {
	d := &Device{
		screen: screen,
		events: stream.NewStream[tcell.Event]("tcell"),
		lc:     lifecycle.New(),
		cancel: cancel,
	}
	d.lc.Go(d.poll)
	return d
}

// poll ends when the screen is finalized and PollEvent starts returning nil.
func (d *Device) poll(context.Context) {
	defer d.events.Close()
	for !d.lc.ShouldStop() {
		event := d.screen.PollEvent()
		if event == nil {
			return
		}
		d.events.Push(event)
	}
}

func (d *Device) Clear() error {
	d.lines = d.lines[:0]
	d.draw()
	return nil
}

func (d *Device) WriteLines(lines ...string) error {
	d.lines = append(d.lines, lines...)
	d.draw()
	return nil
}

func (d *Device) ReadLine(prompt string) (string, error) {
	if d.closed {
		return "", io.EOF
	}
	d.prompt, d.input = prompt, d.input[:0]
	d.draw()
	for {
		event, ok := d.events.Pull()
		if !ok {
			log.Printf("%s events closed", d.events.Name())
			return "", io.EOF
		}
		switch event := event.(type) {
		case *tcell.EventResize:
			d.screen.Sync()

		case *tcell.EventKey:
			switch event.Key() {
			case tcell.KeyEnter:
				return d.submit(string(d.input)), nil
			case tcell.KeyEscape:
				if d.cancel != "" {
					return d.submit(d.cancel), nil
				}
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(d.input) > 0 {
					d.input = d.input[:len(d.input)-1]
				}
			case tcell.KeyCtrlC, tcell.KeyCtrlD:
				return "", io.EOF
			case tcell.KeyRune:
				d.input = append(d.input, event.Rune())
			}

		case *tcell.EventMouse:

		default:
			log.Printf("### unhandled %s event: %#v", d.events.Name(), event)
		}
		d.draw()
	}
}

func (d *Device) submit(line string) string {
	line = norm.NFC.String(line)
	d.lines = append(d.lines, d.prompt+line)
	d.prompt, d.input = "", d.input[:0]
	d.draw()
	return line
}

func (d *Device) Close() error {
	if !d.closed {
		d.closed = true
		d.screen.Fini()
		d.lc.Stop()
	}
	return nil
}

func (d *Device) draw() {
	if d.closed {
		return
	}
	d.screen.Clear()
	width, height := d.screen.Size()
	lines := d.lines
	if visible := max(height-1, 0); len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	for y, line := range lines {
		drawLine(d.screen, y, width, line)
	}
	x := drawLine(d.screen, len(lines), width, d.prompt+string(d.input))
	d.screen.ShowCursor(x, len(lines))
	d.screen.Show()
}

func drawLine(screen tcell.Screen, y, width int, line string) int {
	x := 0
	for _, c := range cells(line) {
		w := runewidth.RuneWidth(c.r)
		if x+w > width {
			break
		}
		screen.SetContent(x, y, c.r, nil, c.style)
		x += w
	}
	return x
}

type cell struct {
	r     rune
	style tcell.Style
}

// cells turns a line with SGR sequences into styled runes; other sequences are dropped.
func cells(line string) []cell {
	style := tcell.StyleDefault
	runes := []rune(line)
	result := make([]cell, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] != ansi.Marker {
			result = append(result, cell{r: runes[i], style: style})
			continue
		}
		j := i + 1
		for j < len(runes) && !ansi.IsTerminator(runes[j]) {
			j++
		}
		if j < len(runes) && runes[j] == 'm' && i+1 < j && runes[i+1] == '[' {
			style = applySGR(style, string(runes[i+2:j]))
		}
		i = j
	}
	return result
}

func applySGR(style tcell.Style, params string) tcell.Style {
	for _, param := range strings.Split(params, ";") {
		switch param {
		case "", "0":
			style = tcell.StyleDefault
		case "1":
			style = style.Bold(true)
		case "2":
			style = style.Dim(true)
		case "3":
			style = style.Italic(true)
		case "4":
			style = style.Underline(true)
		case "7":
			style = style.Reverse(true)
		}
	}
	return style
}
