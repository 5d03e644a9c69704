package widgets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

type Widget interface {
	Render(ctx Context) []string
	String() string
	ToString(*strings.Builder, string)
}

// Context is the per-render snapshot handed down the widget tree.
// Children receive narrowed copies; nothing a child does is visible to its siblings.
type Context struct {
	Width     int
	Alignment Alignment
	Style     TextStyle
	Depth     int
	Profile   termenv.Profile
	Cancel    string
}

const DefaultCancel = "0"

func NewContext(width int) Context {
	return Context{Width: width, Profile: termenv.Ascii, Cancel: DefaultCancel}
}

// Narrow returns the context a child sees after its parent takes n columns.
func (c Context) Narrow(n int) Context {
	c.Width -= n
	c.Depth++
	return c
}

func (c Context) WithAlignment(alignment Alignment) Context {
	c.Alignment = alignment
	return c
}

func (c Context) WithStyle(style TextStyle) Context {
	c.Style |= style
	return c
}

// width is the usable budget; an exhausted budget renders as a single column.
func (c Context) width() int {
	if c.Width < 1 {
		return 1
	}
	return c.Width
}

func (c Context) String() string {
	return fmt.Sprintf("Context{Width: %d, Alignment: %s, Style: {%s}, Depth: %d}", c.Width, c.Alignment, c.Style, c.Depth)
}

var (
	ErrMissingChild = errors.New("container has no child")
	ErrCancelled    = errors.New("input cancelled")
)

type DimensionError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("table row %d has %d cells, expected %d", e.Row, e.Actual, e.Expected)
}

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func Invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func toString[W Widget](w W) string {
	buf := &strings.Builder{}
	w.ToString(buf, "")
	return buf.String()
}
