package shell

import (
	"strings"
	"testing"

	"addressbook/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, manager *db.AddressBookManager, lines ...string) string {
	t.Helper()
	var out strings.Builder
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, New(manager, input, &out, nil).Run())
	return out.String()
}

func contactLines(first, last, city, state string) []string {
	return []string{first, last, "1 Main St", city, state, "73301", "555-0100", "x@example.com"}
}

func script(parts ...any) []string {
	var lines []string
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			lines = append(lines, v)
		case []string:
			lines = append(lines, v...)
		}
	}
	return lines
}

func TestShell_CreateBookAndList(t *testing.T) {
	manager := db.NewAddressBookManager()
	out := run(t, manager,
		"3",
		"1", "Home",
		"1", "Home",
		"3",
		"6",
	)

	assert.Contains(t, out, "Welcome to Address Book Program")
	assert.Contains(t, out, "No Address Books available.")
	assert.Contains(t, out, "Address Book 'Home' created successfully.")
	assert.Contains(t, out, "An Address Book with this name already exists.")
	assert.Contains(t, out, "Available Address Books:\n- Home\n")
	assert.Contains(t, out, "Exiting...")
	assert.Equal(t, 1, manager.Len())
}

func TestShell_ManageContacts(t *testing.T) {
	manager := db.NewAddressBookManager()
	out := run(t, manager, script(
		"1", "Home",
		"2", "Home",
		"2",
		"1", contactLines("John", "Doe", "Austin", "TX"),
		"1", contactLines("john", "DOE", "Dallas", "TX"),
		"2",
		"3", "JOHN", "doe", "9 Elm St", "Dallas", "TX", "75001", "555-0199", "jd@example.com",
		"3", "Jane", "Roe",
		"4", "Jane", "Roe",
		"5",
		"6",
	)...)

	assert.Contains(t, out, "No contacts available.")
	assert.Equal(t, 1, strings.Count(out, "Contact added successfully."))
	assert.Contains(t, out, "A contact with the same name already exists.")
	assert.Contains(t, out, "Name: John Doe\nAddress: 1 Main St\nCity: Austin, State: TX, Zip: 73301\n")
	assert.Contains(t, out, "Contact updated successfully.")
	assert.Equal(t, 2, strings.Count(out, "Contact not found."))

	book, err := manager.GetBook("Home")
	require.NoError(t, err)
	contact, err := book.FindContact("John", "Doe")
	require.NoError(t, err)
	assert.Equal(t, "9 Elm St", contact.Address)
	assert.Equal(t, "Dallas", contact.City)
	assert.Equal(t, "John", contact.FirstName)
}

func TestShell_DeleteContact(t *testing.T) {
	manager := db.NewAddressBookManager()
	out := run(t, manager, script(
		"1", "Home",
		"2", "Home",
		"1", contactLines("John", "Doe", "Austin", "TX"),
		"4", "john", "doe",
		"2",
		"5",
		"6",
	)...)

	assert.Contains(t, out, "Contact deleted successfully.")
	assert.Contains(t, out, "No contacts available.")
}

func TestShell_UnknownBook(t *testing.T) {
	out := run(t, db.NewAddressBookManager(), "2", "Nowhere", "6")
	assert.Contains(t, out, "No Address Book found with this name.")
}

func TestShell_SearchAcrossBooks(t *testing.T) {
	manager := db.NewAddressBookManager()
	out := run(t, manager, script(
		"1", "Home",
		"1", "Work",
		"2", "Home", "1", contactLines("John", "Doe", "Austin", "TX"), "5",
		"2", "Work", "1", contactLines("Jane", "Roe", "austin", "tx"), "5",
		"4", "AUSTIN",
		"5", "Nevada",
		"6",
	)...)

	assert.Contains(t, out, "Contacts with city 'AUSTIN':")
	assert.Contains(t, out, "Name: John Doe")
	assert.Contains(t, out, "Name: Jane Roe")
	assert.Less(t, strings.Index(out, "Name: John Doe"), strings.Index(out, "Name: Jane Roe"))
	assert.Contains(t, out, "No contacts found with state 'Nevada'.")
}

func TestShell_InvalidOptions(t *testing.T) {
	out := run(t, db.NewAddressBookManager(), "abc", "42", "1", "Home", "2", "Home", "x", "5", "6")
	assert.Equal(t, 3, strings.Count(out, "Invalid option! Please try again."))
}

func TestShell_EndOfInputExits(t *testing.T) {
	manager := db.NewAddressBookManager()
	out := run(t, manager, "1", "Home", "2", "Home", "1", "John")

	assert.True(t, strings.HasSuffix(out, "Exiting...\n"))
	book, err := manager.GetBook("Home")
	require.NoError(t, err)
	assert.Equal(t, 0, book.Len())
}

func TestShell_AllowDuplicates(t *testing.T) {
	manager := db.NewAddressBookManager(db.WithAllowDuplicates(true))
	out := run(t, manager, script(
		"1", "Home",
		"2", "Home",
		"1", contactLines("John", "Doe", "Austin", "TX"),
		"1", contactLines("John", "Doe", "Dallas", "TX"),
		"5",
		"6",
	)...)

	assert.Equal(t, 2, strings.Count(out, "Contact added successfully."))
	book, err := manager.GetBook("Home")
	require.NoError(t, err)
	assert.Equal(t, 2, book.Len())
}

func TestShell_LongInputLine(t *testing.T) {
	manager := db.NewAddressBookManager()
	first := strings.Repeat("a", 100*1024)
	out := run(t, manager, script(
		"1", "Home",
		"2", "Home",
		"1", contactLines(first, "Doe", "Austin", "TX"),
		"5",
		"6",
	)...)

	assert.Contains(t, out, "Contact added successfully.")
	book, err := manager.GetBook("Home")
	require.NoError(t, err)
	contact, err := book.FindContact(first, "Doe")
	require.NoError(t, err)
	assert.Len(t, contact.FirstName, 100*1024)
}

func TestShell_LastLineWithoutNewline(t *testing.T) {
	manager := db.NewAddressBookManager()
	var out strings.Builder
	input := strings.NewReader("1\r\nHome\r\n6")
	require.NoError(t, New(manager, input, &out, nil).Run())

	assert.Contains(t, out.String(), "Address Book 'Home' created successfully.")
	assert.True(t, strings.HasSuffix(out.String(), "Exiting...\n"))
	assert.Equal(t, 1, manager.Len())
}
