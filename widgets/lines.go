package widgets

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/termenv"
)

const ellipsis = "…"

// Width of a line in terminal cells, style sequences excluded.
func Width(line string) int {
	return ansi.PrintableRuneWidth(line)
}

// flatten keeps text on one line: control characters other than style sequences become spaces.
func flatten(line string) string {
	return strings.Map(func(r rune) rune {
		if r != ansi.Marker && unicode.IsControl(r) {
			return ' '
		}
		return r
	}, line)
}

func maxWidth(lines []string) int {
	result := 0
	for _, line := range lines {
		if w := Width(line); w > result {
			result = w
		}
	}
	return result
}

func truncate(line string, width int) string {
	if Width(line) <= width {
		return line
	}
	if width < 1 {
		return ""
	}
	limit := width - runewidth.StringWidth(ellipsis)
	buf := strings.Builder{}
	inSequence, styled := false, false
	cells := 0
	for _, r := range line {
		if r == ansi.Marker {
			inSequence, styled = true, true
			buf.WriteRune(r)
			continue
		}
		if inSequence {
			buf.WriteRune(r)
			if ansi.IsTerminator(r) {
				inSequence = false
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if cells+w > limit {
			break
		}
		buf.WriteRune(r)
		cells += w
	}
	buf.WriteString(ellipsis)
	if styled {
		buf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}
	return buf.String()
}

// place fits line into exactly width cells. Odd remainders go to the right.
func place(line string, width int, alignment Alignment) string {
	line = truncate(line, width)
	diff := width - Width(line)
	if diff <= 0 {
		return line
	}
	left := 0
	switch alignment {
	case Center:
		left = diff / 2
	case End:
		left = diff
	}
	return spaces(left) + line + spaces(diff-left)
}

func placeAll(lines []string, width int, alignment Alignment) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = place(line, width, alignment)
	}
	return result
}

func blankLines(n, width int) []string {
	result := make([]string, n)
	for i := range result {
		result[i] = spaces(width)
	}
	return result
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func applyStyle(profile termenv.Profile, style TextStyle, text string) string {
	if style == Normal || text == "" {
		return text
	}
	s := profile.String(text)
	if style&Bold == Bold {
		s = s.Bold()
	}
	if style&Faint == Faint {
		s = s.Faint()
	}
	if style&Italic == Italic {
		s = s.Italic()
	}
	if style&Underline == Underline {
		s = s.Underline()
	}
	if style&Reverse == Reverse {
		s = s.Reverse()
	}
	return s.String()
}
