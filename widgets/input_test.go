package widgets

import (
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptTerminal struct {
	inputs  []string
	prompts []string
	output  []string
}

func (s *scriptTerminal) WriteLines(lines ...string) error {
	s.output = append(s.output, lines...)
	return nil
}

func (s *scriptTerminal) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.inputs) == 0 {
		return "", io.EOF
	}
	line := s.inputs[0]
	s.inputs = s.inputs[1:]
	return line, nil
}

func number(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Invalid("%q is not a number.", raw)
	}
	return n, nil
}

func nonEmpty(raw string) (string, error) {
	if raw == "" {
		return "", Invalid("Value cannot be empty.")
	}
	return raw, nil
}

func TestTextInputRepromptsUntilValid(t *testing.T) {
	term := &scriptTerminal{inputs: []string{"abc", " 42 "}}
	value, err := NewTextInput("Age", number).Capture(NewContext(40), term)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, []string{"Age: ", "Age: "}, term.prompts)
	assert.Equal(t, []string{`"abc" is not a number.`}, term.output)
}

func TestTextInputShowsHintOnce(t *testing.T) {
	term := &scriptTerminal{inputs: []string{"x", "5"}}
	value, err := NewTextInput("Quantity", number).Hint("Whole units.").Capture(NewContext(40), term)
	require.NoError(t, err)
	assert.Equal(t, 5, value)
	assert.Equal(t, []string{"Whole units.", `"x" is not a number.`}, term.output)
}

func TestTextInputCancel(t *testing.T) {
	term := &scriptTerminal{inputs: []string{"0"}}
	_, err := NewTextInput("Name", nonEmpty).Capture(NewContext(40), term)
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestTextInputCustomCancelToken(t *testing.T) {
	ctx := NewContext(40)
	ctx.Cancel = "q"
	term := &scriptTerminal{inputs: []string{"0", "q"}}
	value, err := NewTextInput("Age", number).Capture(ctx, term)
	require.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestTextInputPropagatesEOF(t *testing.T) {
	_, err := NewTextInput("Name", nonEmpty).Capture(NewContext(40), &scriptTerminal{})
	assert.ErrorIs(t, err, io.EOF)
}

func TestMultiTextInputCommitsNothingOnCancel(t *testing.T) {
	name, age, phone := "before", -1, "before"
	form := NewMultiTextInput(
		Bind("Name", &name, nonEmpty),
		Bind("Age", &age, number),
		Bind("Phone", &phone, nonEmpty),
	)
	term := &scriptTerminal{inputs: []string{"Alice", "old", "0"}}

	err := form.Capture(NewContext(40), term)

	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, "before", name)
	assert.Equal(t, -1, age)
	assert.Equal(t, "before", phone)
	assert.Equal(t, []string{`"old" is not a number.`}, term.output)
}

func TestMultiTextInputCommitsAll(t *testing.T) {
	var name string
	var age int
	form := NewMultiTextInput(Bind("Name", &name, nonEmpty), Bind("Age", &age, number))
	term := &scriptTerminal{inputs: []string{"", "Alice", "30"}}

	require.NoError(t, form.Capture(NewContext(40), term))
	assert.Equal(t, "Alice", name)
	assert.Equal(t, 30, age)
	assert.Equal(t, []string{"Name: ", "Name: ", "Age: "}, term.prompts)
}

func TestMultiTextInputCheckRestartsForm(t *testing.T) {
	var user, password string
	form := NewMultiTextInput(Bind("User ID", &user, nonEmpty), Bind("Password", &password, nonEmpty)).
		Check(func(values Values) error {
			if values["Password"] != "secret" {
				return Invalid("Incorrect User ID or password. Please try again.")
			}
			return nil
		})
	term := &scriptTerminal{inputs: []string{"P1001", "guess", "P1001", "secret"}}

	require.NoError(t, form.Capture(NewContext(60), term))
	assert.Equal(t, "P1001", user)
	assert.Equal(t, "secret", password)
	assert.Equal(t, []string{"Incorrect User ID or password. Please try again."}, term.output)
	assert.Len(t, term.prompts, 4)
}

func TestMenuSelect(t *testing.T) {
	calls := make([]int, 3)
	menu := NewMenu(
		MenuOption{Label: "View Appointments", Action: func() { calls[0]++ }},
		MenuOption{Label: "Schedule Appointment", Action: func() { calls[1]++ }},
		MenuOption{Label: "Log out", Action: func() { calls[2]++ }},
	)

	for _, raw := range []string{"0", "4", "-1", "two", ""} {
		err := menu.Select(raw)
		var invalid *ValidationError
		assert.ErrorAs(t, err, &invalid, raw)
	}
	assert.Equal(t, []int{0, 0, 0}, calls)
	assert.Equal(t, -1, menu.Focused())

	require.NoError(t, menu.Select("2"))
	assert.Equal(t, []int{0, 1, 0}, calls)
	assert.Equal(t, 1, menu.Focused())
}

func TestMenuCapture(t *testing.T) {
	selected := 0
	menu := NewMenu(
		MenuOption{Label: "Inventory", Action: func() { selected++ }},
	)
	term := &scriptTerminal{inputs: []string{"7", "1"}}

	require.NoError(t, menu.Capture(NewContext(40), term))
	assert.Equal(t, 1, selected)
	require.Len(t, term.output, 1)
	assert.True(t, strings.HasPrefix(term.output[0], "Invalid option selected."))
	assert.Equal(t, []string{"Select an option: ", "Select an option: "}, term.prompts)

	assert.Equal(t, []string{"1. Inventory"}, menu.Render(NewContext(40)))
}

func TestMenuCaptureCancel(t *testing.T) {
	menu := NewMenu(MenuOption{Label: "Inventory", Action: func() { t.Error("unexpected action") }})
	err := menu.Capture(NewContext(40), &scriptTerminal{inputs: []string{"0"}})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPauseNeverFails(t *testing.T) {
	assert.NoError(t, Pause().Capture(NewContext(40), &scriptTerminal{}))
	assert.NoError(t, PauseGoBack().Capture(NewContext(40), &scriptTerminal{inputs: []string{"anything"}}))
	lines := Pause().Render(NewContext(30))
	require.Len(t, lines, 2)
	assert.Equal(t, "Press any key to continue.", lines[1])
}

func TestEnumeratedTablePick(t *testing.T) {
	table, err := NewEnumeratedTable([]string{"Slot"}, NewRow("09:00").WithMeta(9), NewRow("10:00").WithMeta(10))
	require.NoError(t, err)

	term := &scriptTerminal{inputs: []string{"3", "x", "2"}}
	row, err := NewTextInput("Select a slot", table.Pick).Capture(NewContext(40), term)
	require.NoError(t, err)
	assert.Equal(t, 10, row.Meta)
	assert.Len(t, term.output, 2)
}
