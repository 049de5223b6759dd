package models

import "iter"

// Book is the contact collection behind one address book name.
type Book interface {
	AddContact(c *Contact) error
	FindContact(firstName, lastName string) (*Contact, error)
	EditContact(firstName, lastName string, details Details) error
	DeleteContact(firstName, lastName string) error
	ListContacts() iter.Seq[*Contact]
	Len() int
}

// Directory is the registry of named address books.
type Directory interface {
	CreateBook(name string) error
	GetBook(name string) (Book, error)
	AddContactToBook(name string, c *Contact) error
	SearchByField(field Field, value string) []*Contact
	BookNames() []string
	Len() int
	Summary() StoreSummary
}

// StoreSummary aggregates the directory contents.
type StoreSummary struct {
	NumberOfBooks    int `json:"number_of_books"`
	NumberOfContacts int `json:"number_of_contacts"`
}
