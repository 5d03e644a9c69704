// Package validators holds the input rules shared by the clinic screens.
package validators

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hms/widgets"
)

const (
	DateLayout = "02/01/06"
	TimeLayout = "15:04"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)
	phonePattern = regexp.MustCompile(`^\d{8}$`)
)

func NonEmpty(raw string) (string, error) {
	if raw == "" {
		return "", widgets.Invalid("Input cannot be empty.")
	}
	return raw, nil
}

func Date(raw string) (time.Time, error) {
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, widgets.Invalid("Invalid date. Please use the format dd/mm/yy.")
	}
	return date, nil
}

func Time(raw string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return time.Time{}, widgets.Invalid("Invalid time. Please use the format HH:mm.")
	}
	return t, nil
}

func Int(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, widgets.Invalid("Please enter a whole number.")
	}
	return n, nil
}

// Range accepts whole numbers from lo to hi inclusive.
func Range(lo, hi int) widgets.Validator[int] {
	return func(raw string) (int, error) {
		n, err := strconv.Atoi(raw)
		if err != nil || n < lo || n > hi {
			return 0, widgets.Invalid("Please enter a number between %d and %d.", lo, hi)
		}
		return n, nil
	}
}

// Option accepts the ordinals of a list of n entries.
func Option(n int) widgets.Validator[int] {
	return Range(1, n)
}

func YesNo(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}
	return false, widgets.Invalid("Please enter Y or N.")
}

func Age(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > 150 {
		return 0, widgets.Invalid("Please enter a valid age between 0 and 150.")
	}
	return n, nil
}

func Quantity(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, widgets.Invalid("Please enter a quantity greater than 0.")
	}
	return n, nil
}

func Email(raw string) (string, error) {
	if !emailPattern.MatchString(raw) {
		return "", widgets.Invalid("Invalid email address.")
	}
	return raw, nil
}

func Phone(raw string) (string, error) {
	if !phonePattern.MatchString(raw) {
		return "", widgets.Invalid("Phone number must have 8 digits.")
	}
	return raw, nil
}

// OneOf accepts one of choices, ignoring case, and returns the canonical spelling.
func OneOf(choices ...string) widgets.Validator[string] {
	return func(raw string) (string, error) {
		for _, choice := range choices {
			if strings.EqualFold(raw, choice) {
				return choice, nil
			}
		}
		return "", widgets.Invalid("Please enter one of: %s.", strings.Join(choices, ", "))
	}
}

// Password requires at least minLength characters.
func Password(minLength int) widgets.Validator[string] {
	return func(raw string) (string, error) {
		if len([]rune(raw)) < minLength {
			return "", widgets.Invalid("Password must have at least %d characters.", minLength)
		}
		return raw, nil
	}
}
