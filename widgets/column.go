package widgets

import (
	"fmt"
	"strings"
)

type column struct {
	mainAxis  MainAxisAlignment
	crossAxis CrossAxisAlignment
	height    int
	widgets   []Widget
}

func Column(widgets ...Widget) column {
	return column{widgets: widgets}
}

func (c column) MainAxis(alignment MainAxisAlignment) column {
	c.mainAxis = alignment
	return c
}

func (c column) CrossAxis(alignment CrossAxisAlignment) column {
	c.crossAxis = alignment
	return c
}

// Height sets the target height used for main axis distribution.
func (c column) Height(height int) column {
	c.height = height
	return c
}

func (c column) Render(ctx Context) []string {
	width := ctx.width()
	blocks := make([][]string, len(c.widgets))
	total := 0
	for i, widget := range c.widgets {
		blocks[i] = placeAll(widget.Render(ctx), width, c.crossAxis.alignment())
		total += len(blocks[i])
	}

	extra := c.height - total
	if extra < 0 {
		extra = 0
	}
	before, after := 0, 0
	var gaps []int
	switch c.mainAxis {
	case MainStart:
		after = extra
	case MainCenter:
		before = extra / 2
		after = extra - before
	case MainEnd:
		before = extra
	case SpaceBetween:
		if len(blocks) < 2 {
			after = extra
		} else {
			gaps = distribute(extra, len(blocks)-1)
		}
	}

	result := make([]string, 0, total+extra)
	result = append(result, blankLines(before, width)...)
	for i, block := range blocks {
		if i > 0 && gaps != nil {
			result = append(result, blankLines(gaps[i-1], width)...)
		}
		result = append(result, block...)
	}
	return append(result, blankLines(after, width)...)
}

// distribute splits total into n near-equal parts; later parts take the remainder.
func distribute(total, n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = total / n
	}
	for i := 0; i < total%n; i++ {
		result[n-1-i]++
	}
	return result
}

func (c column) String() string { return toString(c) }

func (c column) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sColumn(%s, %s, Height: %d\n", offset, c.mainAxis, c.crossAxis, c.height)
	for _, widget := range c.widgets {
		widget.ToString(buf, offset+"| ")
	}
}
