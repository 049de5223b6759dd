package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a contact or address book lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when adding an entity whose identity is already present.
	ErrDuplicate = errors.New("already exists")
)

// EntityError names the entity an ErrNotFound or ErrDuplicate refers to.
type EntityError struct {
	Kind   error
	Entity string
	Name   string
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s %q %v", e.Entity, e.Name, e.Kind)
}

func (e *EntityError) Unwrap() error {
	return e.Kind
}

func ContactNotFound(firstName, lastName string) error {
	return &EntityError{Kind: ErrNotFound, Entity: "contact", Name: fullName(firstName, lastName)}
}

func ContactExists(firstName, lastName string) error {
	return &EntityError{Kind: ErrDuplicate, Entity: "contact", Name: fullName(firstName, lastName)}
}

func BookNotFound(name string) error {
	return &EntityError{Kind: ErrNotFound, Entity: "address book", Name: name}
}

func BookExists(name string) error {
	return &EntityError{Kind: ErrDuplicate, Entity: "address book", Name: name}
}

func fullName(firstName, lastName string) string {
	return firstName + " " + lastName
}
