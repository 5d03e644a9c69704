package widgets

import (
	"fmt"
	"strings"
)

// UpdatableField binds a labelled input to the value it updates once the whole form is accepted.
type UpdatableField interface {
	Label() string
	stage(ctx Context, term Terminal) (raw string, commit func(), err error)
}

type field[T any] struct {
	input  TextInput[T]
	target *T
}

func Bind[T any](label string, target *T, validate Validator[T]) UpdatableField {
	return field[T]{input: NewTextInput(label, validate), target: target}
}

func (f field[T]) Label() string {
	return f.input.label
}

func (f field[T]) stage(ctx Context, term Terminal) (string, func(), error) {
	for {
		raw, err := f.input.read(ctx, term)
		if err != nil {
			return "", nil, err
		}
		value, err := f.input.validate(raw)
		if err == nil {
			return raw, func() { *f.target = value }, nil
		}
		if err := reject(ctx, term, err); err != nil {
			return "", nil, err
		}
	}
}

// Values holds the accepted raw lines of a form by field label.
type Values map[string]string

type MultiTextInput struct {
	title  string
	fields []UpdatableField
	check  func(Values) error
}

func NewMultiTextInput(fields ...UpdatableField) MultiTextInput {
	return MultiTextInput{fields: fields}
}

func (m MultiTextInput) Title(title string) MultiTextInput {
	m.title = title
	return m
}

// Check adds a form level rule. A failing check reports its reason and restarts the form.
func (m MultiTextInput) Check(check func(Values) error) MultiTextInput {
	m.check = check
	return m
}

func (m MultiTextInput) Render(ctx Context) []string {
	if m.title == "" {
		return nil
	}
	return Text(m.title).Style(Bold).Render(ctx)
}

// Capture commits every bound field or none of them.
func (m MultiTextInput) Capture(ctx Context, term Terminal) error {
	for {
		values := make(Values, len(m.fields))
		commits := make([]func(), 0, len(m.fields))
		for _, field := range m.fields {
			raw, commit, err := field.stage(ctx, term)
			if err != nil {
				return err
			}
			values[field.Label()] = raw
			commits = append(commits, commit)
		}
		if m.check != nil {
			if err := m.check(values); err != nil {
				if err := reject(ctx, term, err); err != nil {
					return err
				}
				continue
			}
		}
		for _, commit := range commits {
			commit()
		}
		return nil
	}
}

func (m MultiTextInput) String() string { return toString(m) }

func (m MultiTextInput) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sMultiTextInput(%q\n", offset, m.title)
	for _, field := range m.fields {
		fmt.Fprintf(buf, "%s| Field(%q)\n", offset, field.Label())
	}
}
