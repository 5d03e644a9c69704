package widgets

import (
	"fmt"
	"strings"
)

type text struct {
	lines []string
	style TextStyle
}

// Text renders one line per newline-separated segment, truncated to the context width.
func Text(txt string) text {
	return text{lines: strings.Split(txt, "\n")}
}

func (t text) Style(style TextStyle) text {
	t.style |= style
	return t
}

func (t text) Render(ctx Context) []string {
	width := ctx.width()
	style := ctx.Style | t.style
	result := make([]string, len(t.lines))
	for i, line := range t.lines {
		result[i] = applyStyle(ctx.Profile, style, truncate(line, width))
	}
	return result
}

func (t text) String() string { return toString(t) }

func (t text) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sText(%q, {%s})\n", offset, strings.Join(t.lines, "\n"), t.style)
}

// Title is the centred bold heading shown at the top of a screen.
func Title(title string) Widget {
	return Align(Center, Text("[ "+title+" ]").Style(Bold))
}
