package models

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Details holds the contact fields that may be edited after creation.
type Details struct {
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

// Contact is a single person's details. Its identity is the first and last
// name pair compared case-insensitively; the remaining fields never take part
// in equality.
type Contact struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Details
}

// Key identifies a contact inside an address book.
type Key string

func NewContact(firstName, lastName, address, city, state, zip, phoneNumber, email string) *Contact {
	return &Contact{
		FirstName: firstName,
		LastName:  lastName,
		Details: Details{
			Address:     address,
			City:        city,
			State:       state,
			Zip:         zip,
			PhoneNumber: phoneNumber,
			Email:       email,
		},
	}
}

// KeyOf derives the identity key for a first and last name pair.
// The names are joined with a NUL so that ("Ann", "aLee") and ("Anna", "Lee")
// stay distinct.
func KeyOf(firstName, lastName string) Key {
	return Key(Fold(firstName) + "\x00" + Fold(lastName))
}

func (c *Contact) Key() Key {
	return KeyOf(c.FirstName, c.LastName)
}

// Equal reports whether both contacts share the same identity key.
func (c *Contact) Equal(other *Contact) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Key() == other.Key()
}

// Matches reports whether the contact carries the given names, ignoring case.
func (c *Contact) Matches(firstName, lastName string) bool {
	return c.Key() == KeyOf(firstName, lastName)
}

func (c *Contact) String() string {
	return fmt.Sprintf("Name: %s %s\nAddress: %s\nCity: %s, State: %s, Zip: %s\nPhone: %s\nEmail: %s",
		c.FirstName, c.LastName, c.Address, c.City, c.State, c.Zip, c.PhoneNumber, c.Email)
}

// Fold returns the Unicode case folding of s. A Caser is stateful, so a fresh
// one is used per call.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
