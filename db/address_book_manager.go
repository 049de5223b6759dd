package db

import "addressbook/models"

// AddressBookManager maps book names to address books. Names are compared as
// exact strings and books are iterated in creation order.
type AddressBookManager struct {
	books           map[string]*AddressBook
	names           []string
	allowDuplicates bool
}

var _ models.Directory = (*AddressBookManager)(nil)

type ManagerOption func(*AddressBookManager)

// WithAllowDuplicates sets the duplicate policy of every book the manager creates.
func WithAllowDuplicates(allow bool) ManagerOption {
	return func(manager *AddressBookManager) {
		manager.allowDuplicates = allow
	}
}

func NewAddressBookManager(opts ...ManagerOption) *AddressBookManager {
	manager := &AddressBookManager{books: make(map[string]*AddressBook)}
	for _, opt := range opts {
		opt(manager)
	}
	return manager
}

func (manager *AddressBookManager) CreateBook(name string) error {
	if _, ok := manager.books[name]; ok {
		return models.BookExists(name)
	}

	manager.books[name] = NewAddressBook(manager.allowDuplicates)
	manager.names = append(manager.names, name)
	return nil
}

func (manager *AddressBookManager) GetBook(name string) (models.Book, error) {
	book, ok := manager.books[name]
	if !ok {
		return nil, models.BookNotFound(name)
	}
	return book, nil
}

func (manager *AddressBookManager) AddContactToBook(name string, contact *models.Contact) error {
	book, err := manager.GetBook(name)
	if err != nil {
		return err
	}
	return book.AddContact(contact)
}

// SearchByField returns every contact whose field equals value ignoring case,
// ordered by book creation and then by insertion within each book.
func (manager *AddressBookManager) SearchByField(field models.Field, value string) []*models.Contact {
	want := models.Fold(value)

	matches := make([]*models.Contact, 0)
	for _, name := range manager.names {
		for contact := range manager.books[name].ListContacts() {
			if models.Fold(field.Value(contact)) == want {
				matches = append(matches, contact)
			}
		}
	}
	return matches
}

// BookNames returns the book names in creation order.
func (manager *AddressBookManager) BookNames() []string {
	names := make([]string, len(manager.names))
	copy(names, manager.names)
	return names
}

func (manager *AddressBookManager) Len() int {
	return len(manager.books)
}

// Summary counts books and contacts across the directory.
func (manager *AddressBookManager) Summary() models.StoreSummary {
	summary := models.StoreSummary{NumberOfBooks: len(manager.books)}
	for _, book := range manager.books {
		summary.NumberOfContacts += book.Len()
	}
	return summary
}
