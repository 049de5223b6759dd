package db

import (
	"iter"
	"slices"

	"addressbook/models"
)

// AddressBook keeps contacts in insertion order. It is not safe for
// concurrent use.
type AddressBook struct {
	contacts        []*models.Contact
	allowDuplicates bool
}

var _ models.Book = (*AddressBook)(nil)

// NewAddressBook returns an empty book. When allowDuplicates is false, adding
// a contact whose identity is already present fails with models.ErrDuplicate.
func NewAddressBook(allowDuplicates bool) *AddressBook {
	return &AddressBook{allowDuplicates: allowDuplicates}
}

func (book *AddressBook) AllowsDuplicates() bool {
	return book.allowDuplicates
}

func (book *AddressBook) AddContact(contact *models.Contact) error {
	if !book.allowDuplicates && book.indexOf(contact.FirstName, contact.LastName) >= 0 {
		return models.ContactExists(contact.FirstName, contact.LastName)
	}

	book.contacts = append(book.contacts, contact)
	return nil
}

// FindContact returns the earliest contact with the given names.
func (book *AddressBook) FindContact(firstName, lastName string) (*models.Contact, error) {
	i := book.indexOf(firstName, lastName)
	if i < 0 {
		return nil, models.ContactNotFound(firstName, lastName)
	}
	return book.contacts[i], nil
}

// EditContact overwrites the details of the matching contact in place. Names
// are left untouched since they form the identity key.
func (book *AddressBook) EditContact(firstName, lastName string, details models.Details) error {
	contact, err := book.FindContact(firstName, lastName)
	if err != nil {
		return err
	}
	contact.Details = details
	return nil
}

func (book *AddressBook) DeleteContact(firstName, lastName string) error {
	i := book.indexOf(firstName, lastName)
	if i < 0 {
		return models.ContactNotFound(firstName, lastName)
	}
	book.contacts = slices.Delete(book.contacts, i, i+1)
	return nil
}

// ListContacts yields the contacts in insertion order. Every call starts a
// fresh pass over the book.
func (book *AddressBook) ListContacts() iter.Seq[*models.Contact] {
	return func(yield func(*models.Contact) bool) {
		for _, contact := range book.contacts {
			if !yield(contact) {
				return
			}
		}
	}
}

func (book *AddressBook) Len() int {
	return len(book.contacts)
}

func (book *AddressBook) indexOf(firstName, lastName string) int {
	key := models.KeyOf(firstName, lastName)
	return slices.IndexFunc(book.contacts, func(c *models.Contact) bool {
		return c.Key() == key
	})
}
