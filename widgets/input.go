package widgets

import (
	"errors"
	"fmt"
	"strings"
)

// Terminal is the line-oriented surface interactive widgets capture from.
type Terminal interface {
	WriteLines(lines ...string) error
	ReadLine(prompt string) (string, error)
}

// Validator accepts a raw line or rejects it with a reason.
type Validator[T any] func(raw string) (T, error)

func Accept(raw string) (string, error) {
	return raw, nil
}

type TextInput[T any] struct {
	label    string
	hint     string
	validate Validator[T]
}

func NewTextInput[T any](label string, validate Validator[T]) TextInput[T] {
	return TextInput[T]{label: label, validate: validate}
}

func (t TextInput[T]) Hint(hint string) TextInput[T] {
	t.hint = hint
	return t
}

func (t TextInput[T]) Label() string {
	return t.label
}

func (t TextInput[T]) Render(ctx Context) []string {
	if t.hint == "" {
		return nil
	}
	return Text(t.hint).Style(Faint).Render(ctx)
}

// Capture shows the hint, then reads lines until one validates. The cancel token yields ErrCancelled.
func (t TextInput[T]) Capture(ctx Context, term Terminal) (T, error) {
	var zero T
	if hint := t.Render(ctx); len(hint) > 0 {
		if err := term.WriteLines(hint...); err != nil {
			return zero, err
		}
	}
	for {
		raw, err := t.read(ctx, term)
		if err != nil {
			return zero, err
		}
		value, err := t.validate(raw)
		if err == nil {
			return value, nil
		}
		if err := reject(ctx, term, err); err != nil {
			return zero, err
		}
	}
}

func (t TextInput[T]) read(ctx Context, term Terminal) (string, error) {
	raw, err := term.ReadLine(prompt(t.label))
	if err != nil {
		return "", err
	}
	raw = strings.TrimSpace(raw)
	if ctx.Cancel != "" && raw == ctx.Cancel {
		return "", ErrCancelled
	}
	return raw, nil
}

func (t TextInput[T]) String() string { return toString(t) }

func (t TextInput[T]) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sTextInput(%q)\n", offset, t.label)
}

func prompt(label string) string {
	if label == "" {
		return "> "
	}
	return label + ": "
}

// reject reports a rejected line inline; only a failing terminal is returned.
func reject(ctx Context, term Terminal, err error) error {
	reason := err.Error()
	var invalid *ValidationError
	if errors.As(err, &invalid) {
		reason = invalid.Reason
	}
	return term.WriteLines(Text(reason).Render(ctx)...)
}
