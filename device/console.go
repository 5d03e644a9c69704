package device

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/text/unicode/norm"
)

// Console is a line-mode device over a reader and a terminal output.
type Console struct {
	output *termenv.Output
	input  *bufio.Reader
	clear  bool
}

func NewConsole(in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Console {
	return &Console{
		output: termenv.NewOutput(out, opts...),
		input:  bufio.NewReader(in),
		clear:  true,
	}
}

// NoClear keeps previous screens in the scrollback instead of wiping them.
func (c *Console) NoClear() *Console {
	c.clear = false
	return c
}

func (c *Console) Profile() termenv.Profile {
	return c.output.Profile
}

func (c *Console) Clear() error {
	if !c.clear {
		_, err := fmt.Fprintln(c.output)
		return err
	}
	c.output.ClearScreen()
	c.output.MoveCursor(1, 1)
	return nil
}

func (c *Console) WriteLines(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(c.output, line); err != nil {
			return err
		}
	}
	return nil
}

// ReadLine returns io.EOF only when the input ends without a pending line.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(c.output, prompt); err != nil {
			return "", err
		}
	}
	line, err := c.input.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return norm.NFC.String(strings.TrimRight(line, "\r\n")), nil
}

func (c *Console) Close() error {
	return nil
}
