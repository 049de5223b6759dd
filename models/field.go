package models

import "fmt"

// Field selects the contact attribute compared by a cross-book search.
type Field int

const (
	FieldCity Field = iota
	FieldState
)

func ParseField(s string) (Field, error) {
	switch Fold(s) {
	case "city":
		return FieldCity, nil
	case "state":
		return FieldState, nil
	}
	return 0, fmt.Errorf("unknown search field %q", s)
}

func (f Field) String() string {
	switch f {
	case FieldCity:
		return "city"
	case FieldState:
		return "state"
	default:
		return "unknown"
	}
}

// Value returns the contact's value for the field.
func (f Field) Value(c *Contact) string {
	switch f {
	case FieldCity:
		return c.City
	case FieldState:
		return c.State
	default:
		return ""
	}
}
