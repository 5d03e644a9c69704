package widgets

import (
	"fmt"
	"strconv"
	"strings"
)

type MenuAction func()

type MenuOption struct {
	Label  string
	Action MenuAction
}

type Menu struct {
	options []MenuOption
	focused int
	prompt  string
}

func NewMenu(options ...MenuOption) *Menu {
	return &Menu{options: options, focused: -1, prompt: "Select an option"}
}

func (m *Menu) Prompt(prompt string) *Menu {
	m.prompt = prompt
	return m
}

// Focused is the index of the last selected option, or -1.
func (m *Menu) Focused() int {
	return m.focused
}

func (m *Menu) Render(ctx Context) []string {
	result := make([]string, 0, len(m.options))
	for i, option := range m.options {
		line := Text(fmt.Sprintf("%d. %s", i+1, option.Label))
		if i == m.focused {
			line = line.Style(Bold)
		}
		result = append(result, line.Render(ctx)...)
	}
	return result
}

// Select runs the option numbered by raw. Bad input is a *ValidationError and runs nothing.
func (m *Menu) Select(raw string) error {
	ordinal, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Invalid("Invalid option selected. %q is not a number.", raw)
	}
	if ordinal < 1 || ordinal > len(m.options) {
		return Invalid("Invalid option selected. Please enter a number between 1 and %d.", len(m.options))
	}
	m.focused = ordinal - 1
	if action := m.options[m.focused].Action; action != nil {
		action()
	}
	return nil
}

func (m *Menu) Capture(ctx Context, term Terminal) error {
	input := NewTextInput(m.prompt, Accept)
	for {
		raw, err := input.read(ctx, term)
		if err != nil {
			return err
		}
		err = m.Select(raw)
		if err == nil {
			return nil
		}
		if err := reject(ctx, term, err); err != nil {
			return err
		}
	}
}

func (m *Menu) String() string { return toString(m) }

func (m *Menu) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sMenu(Focused: %d\n", offset, m.focused)
	for i, option := range m.options {
		fmt.Fprintf(buf, "%s| %d. %s\n", offset, i+1, option.Label)
	}
}

type pause struct {
	message string
}

func Pause() pause {
	return pause{message: "Press any key to continue."}
}

func PauseGoBack() pause {
	return pause{message: "Press any key to go back."}
}

func (p pause) Render(ctx Context) []string {
	return append(VSpacer(1).Render(ctx), Text(p.message).Style(Bold).Render(ctx)...)
}

// Capture waits for one line and never fails; a closed input is left for the caller's next read.
func (p pause) Capture(_ Context, term Terminal) error {
	_, _ = term.ReadLine("")
	return nil
}

func (p pause) String() string { return toString(p) }

func (p pause) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sPause(%q)\n", offset, p.message)
}

const DefaultSeparator = " > "

type breadcrumbs struct {
	trail     []string
	separator string
}

func Breadcrumbs(trail ...string) breadcrumbs {
	return breadcrumbs{trail: trail, separator: DefaultSeparator}
}

func (b breadcrumbs) Separator(separator string) breadcrumbs {
	b.separator = separator
	return b
}

func (b breadcrumbs) Render(ctx Context) []string {
	if len(b.trail) == 0 {
		return nil
	}
	box, err := NewContainer().
		Child(Text(strings.Join(b.trail, b.separator))).
		Border(Double).
		Padding(0, 1).
		Shrink().
		Build()
	if err != nil {
		return nil
	}
	return Column(Align(Center, box), VSpacer(1)).Render(ctx)
}

func (b breadcrumbs) String() string { return toString(b) }

func (b breadcrumbs) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sBreadcrumbs(%q)\n", offset, strings.Join(b.trail, b.separator))
}
