package widgets

import (
	"fmt"
	"strings"
)

type bordered struct {
	border Border
	widget Widget
}

// Bordered frames widget across the whole context width.
func Bordered(border Border, widget Widget) Widget {
	return bordered{border: border, widget: widget}
}

func (b bordered) Render(ctx Context) []string {
	inner := ctx.Narrow(2 * b.border.thickness())
	return frame(placeAll(b.widget.Render(inner), inner.width(), ctx.Alignment), inner.width(), b.border)
}

func (b bordered) String() string { return toString(b) }

func (b bordered) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sBordered(%s\n", offset, b.border)
	b.widget.ToString(buf, offset+"| ")
}

// frame expects lines already placed into width cells.
func frame(lines []string, width int, border Border) []string {
	if border == NoBorder {
		return lines
	}
	g := border.glyphs()
	result := make([]string, 0, len(lines)+2)
	result = append(result, g.TopLeft+strings.Repeat(g.Top, width)+g.TopRight)
	for _, line := range lines {
		result = append(result, g.Left+line+g.Right)
	}
	return append(result, g.BottomLeft+strings.Repeat(g.Bottom, width)+g.BottomRight)
}

type Container struct {
	child    Widget
	border   Border
	vPadding int
	hPadding int
	align    Alignment
	valign   Alignment
	height   int
	shrink   bool
}

func (c Container) Render(ctx Context) []string {
	inner := ctx.Narrow(2*c.border.thickness() + 2*c.hPadding)
	lines := c.child.Render(inner.WithAlignment(c.align))

	width := inner.width()
	if c.shrink {
		if natural := maxWidth(lines); natural < width {
			width = natural
		}
	}
	body := placeAll(lines, width, c.align)

	if c.height > 0 {
		target := c.height - 2*c.border.thickness() - 2*c.vPadding
		if extra := target - len(body); extra > 0 {
			top := 0
			switch c.valign {
			case Center:
				top = extra / 2
			case End:
				top = extra
			}
			body = append(append(blankLines(top, width), body...), blankLines(extra-top, width)...)
		}
	}

	padded := make([]string, 0, len(body)+2*c.vPadding)
	padded = append(padded, blankLines(c.vPadding, width+2*c.hPadding)...)
	for _, line := range body {
		padded = append(padded, spaces(c.hPadding)+line+spaces(c.hPadding))
	}
	padded = append(padded, blankLines(c.vPadding, width+2*c.hPadding)...)

	return frame(padded, width+2*c.hPadding, c.border)
}

func (c Container) String() string { return toString(c) }

func (c Container) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sContainer(%s, Padding: %d/%d, Align: %s/%s, Height: %d, Shrink: %v\n",
		offset, c.border, c.vPadding, c.hPadding, c.align, c.valign, c.height, c.shrink)
	c.child.ToString(buf, offset+"| ")
}

type ContainerBuilder struct {
	container Container
}

func NewContainer() *ContainerBuilder {
	return &ContainerBuilder{}
}

func (b *ContainerBuilder) Child(child Widget) *ContainerBuilder {
	b.container.child = child
	return b
}

func (b *ContainerBuilder) Border(border Border) *ContainerBuilder {
	b.container.border = border
	return b
}

func (b *ContainerBuilder) Padding(vertical, horizontal int) *ContainerBuilder {
	b.container.vPadding = max(vertical, 0)
	b.container.hPadding = max(horizontal, 0)
	return b
}

func (b *ContainerBuilder) Align(alignment Alignment) *ContainerBuilder {
	b.container.align = alignment
	return b
}

func (b *ContainerBuilder) VAlign(alignment Alignment) *ContainerBuilder {
	b.container.valign = alignment
	return b
}

func (b *ContainerBuilder) Height(height int) *ContainerBuilder {
	b.container.height = height
	return b
}

// Shrink sizes the box to its content instead of the full context width.
func (b *ContainerBuilder) Shrink() *ContainerBuilder {
	b.container.shrink = true
	return b
}

func (b *ContainerBuilder) Build() (Container, error) {
	if b.container.child == nil {
		return Container{}, ErrMissingChild
	}
	return b.container, nil
}
