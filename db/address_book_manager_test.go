package db

import (
	"testing"

	"addressbook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_CreateBookTwice(t *testing.T) {
	manager := NewAddressBookManager()
	require.NoError(t, manager.CreateBook("Home"))

	err := manager.CreateBook("Home")
	assert.ErrorIs(t, err, models.ErrDuplicate)
	assert.Contains(t, err.Error(), "already exists")
	assert.Equal(t, 1, manager.Len())
}

func TestManager_BookNamesAreExact(t *testing.T) {
	manager := NewAddressBookManager()
	require.NoError(t, manager.CreateBook("Home"))
	require.NoError(t, manager.CreateBook("home"))
	assert.Equal(t, 2, manager.Len())

	_, err := manager.GetBook("HOME")
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.Equal(t, []string{"Home", "home"}, manager.BookNames())
}

func TestManager_AddContactToBook(t *testing.T) {
	manager := NewAddressBookManager()

	err := manager.AddContactToBook("Missing", johnDoe())
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, manager.CreateBook("Home"))
	require.NoError(t, manager.AddContactToBook("Home", johnDoe()))
	assert.ErrorIs(t, manager.AddContactToBook("Home", johnDoe()), models.ErrDuplicate)

	book, err := manager.GetBook("Home")
	require.NoError(t, err)
	assert.Equal(t, 1, book.Len())
}

func TestManager_AllowDuplicatesOption(t *testing.T) {
	manager := NewAddressBookManager(WithAllowDuplicates(true))
	require.NoError(t, manager.CreateBook("Home"))
	require.NoError(t, manager.AddContactToBook("Home", johnDoe()))
	require.NoError(t, manager.AddContactToBook("Home", johnDoe()))

	book, err := manager.GetBook("Home")
	require.NoError(t, err)
	assert.Equal(t, 2, book.Len())
}

func TestManager_SearchByCityAcrossBooks(t *testing.T) {
	manager := NewAddressBookManager()
	require.NoError(t, manager.CreateBook("Home"))
	require.NoError(t, manager.CreateBook("Work"))

	home := models.NewContact("John", "Doe", "", "Austin", "TX", "", "", "")
	work := models.NewContact("Jane", "Roe", "", "austin", "tx", "", "", "")
	other := models.NewContact("Max", "Poe", "", "Austintown", "OH", "", "", "")
	require.NoError(t, manager.AddContactToBook("Home", home))
	require.NoError(t, manager.AddContactToBook("Work", work))
	require.NoError(t, manager.AddContactToBook("Work", other))

	matches := manager.SearchByField(models.FieldCity, "AUSTIN")
	require.Len(t, matches, 2)
	assert.Same(t, home, matches[0])
	assert.Same(t, work, matches[1])

	matches = manager.SearchByField(models.FieldState, "oh")
	require.Len(t, matches, 1)
	assert.Same(t, other, matches[0])

	assert.Empty(t, manager.SearchByField(models.FieldCity, "Dallas"))
}

func TestManager_SearchFollowsBookCreationOrder(t *testing.T) {
	manager := NewAddressBookManager()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		require.NoError(t, manager.CreateBook(name))
		require.NoError(t, manager.AddContactToBook(name, models.NewContact(name, "X", "", "Reno", "NV", "", "", "")))
	}

	var got []string
	for _, c := range manager.SearchByField(models.FieldCity, "reno") {
		got = append(got, c.FirstName)
	}
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, got)
}

func TestManager_Summary(t *testing.T) {
	manager := NewAddressBookManager()
	assert.Equal(t, models.StoreSummary{}, manager.Summary())

	require.NoError(t, manager.CreateBook("Home"))
	require.NoError(t, manager.CreateBook("Work"))
	require.NoError(t, manager.AddContactToBook("Home", johnDoe()))
	require.NoError(t, manager.AddContactToBook("Work", johnDoe()))

	assert.Equal(t, models.StoreSummary{NumberOfBooks: 2, NumberOfContacts: 2}, manager.Summary())
}
