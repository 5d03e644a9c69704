package widgets

import (
	"fmt"
	"strings"
)

type align struct {
	alignment Alignment
	widget    Widget
}

// Align pads every line of widget to the full context width.
func Align(alignment Alignment, widget Widget) Widget {
	return align{alignment: alignment, widget: widget}
}

func (a align) Render(ctx Context) []string {
	return placeAll(a.widget.Render(ctx.WithAlignment(a.alignment)), ctx.width(), a.alignment)
}

func (a align) String() string { return toString(a) }

func (a align) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sAlign(%s\n", offset, a.alignment)
	a.widget.ToString(buf, offset+"| ")
}

type VSpacer int

func (s VSpacer) Render(ctx Context) []string {
	return blankLines(int(s), ctx.width())
}

func (s VSpacer) String() string { return toString(s) }

func (s VSpacer) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sVSpacer(%d)\n", offset, int(s))
}
