package widgets

import (
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	}
	return "UNKNOWN ALIGNMENT"
}

type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainCenter
	MainEnd
	SpaceBetween
)

func (a MainAxisAlignment) String() string {
	switch a {
	case MainStart:
		return "MainStart"
	case MainCenter:
		return "MainCenter"
	case MainEnd:
		return "MainEnd"
	case SpaceBetween:
		return "SpaceBetween"
	}
	return "UNKNOWN MAIN AXIS ALIGNMENT"
}

type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (a CrossAxisAlignment) String() string {
	switch a {
	case CrossStart:
		return "CrossStart"
	case CrossCenter:
		return "CrossCenter"
	case CrossEnd:
		return "CrossEnd"
	}
	return "UNKNOWN CROSS AXIS ALIGNMENT"
}

func (a CrossAxisAlignment) alignment() Alignment {
	switch a {
	case CrossCenter:
		return Center
	case CrossEnd:
		return End
	}
	return Start
}

type Border int

const (
	NoBorder Border = iota
	Thin
	Thick
	Double
	Dashed
)

var dashedBorder = lipgloss.Border{
	Top:          "┄",
	Bottom:       "┄",
	Left:         "┆",
	Right:        "┆",
	TopLeft:      "┌",
	TopRight:     "┐",
	BottomLeft:   "└",
	BottomRight:  "┘",
	MiddleLeft:   "├",
	MiddleRight:  "┤",
	Middle:       "┼",
	MiddleTop:    "┬",
	MiddleBottom: "┴",
}

func (b Border) glyphs() lipgloss.Border {
	switch b {
	case NoBorder, Thin:
		return lipgloss.NormalBorder()
	case Thick:
		return lipgloss.ThickBorder()
	case Double:
		return lipgloss.DoubleBorder()
	case Dashed:
		return dashedBorder
	}
	log.Panicf("### unknown border: %d", b)
	return lipgloss.Border{}
}

// thickness is the number of columns the frame takes on each side.
func (b Border) thickness() int {
	if b == NoBorder {
		return 0
	}
	return 1
}

func (b Border) String() string {
	switch b {
	case NoBorder:
		return "NoBorder"
	case Thin:
		return "Thin"
	case Thick:
		return "Thick"
	case Double:
		return "Double"
	case Dashed:
		return "Dashed"
	}
	return "UNKNOWN BORDER"
}

type TextStyle byte

const (
	Normal TextStyle = 0
	Bold   TextStyle = 1 << iota
	Faint
	Italic
	Underline
	Reverse
)

func (s TextStyle) String() string {
	flags := []string{}
	if s&Bold == Bold {
		flags = append(flags, "Bold")
	}
	if s&Faint == Faint {
		flags = append(flags, "Faint")
	}
	if s&Italic == Italic {
		flags = append(flags, "Italic")
	}
	if s&Underline == Underline {
		flags = append(flags, "Underline")
	}
	if s&Reverse == Reverse {
		flags = append(flags, "Reverse")
	}
	return strings.Join(flags, ", ")
}
