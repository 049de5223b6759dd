// Package shell implements the numbered text menus used to manage address
// books interactively.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"addressbook/models"
	"go.uber.org/zap"
)

const separator = "----------------------------"

// Shell reads menu choices and prompts line by line from in and writes all
// output to out. The directory is owned by the caller.
type Shell struct {
	directory models.Directory
	in        *bufio.Reader
	out       io.Writer
	logger    *zap.Logger
}

func New(directory models.Directory, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		directory: directory,
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger,
	}
}

// Run shows the main menu until the user exits or the input ends.
func (s *Shell) Run() error {
	s.println("Welcome to Address Book Program")

	err := s.mainMenu()
	if errors.Is(err, io.EOF) {
		s.println("Exiting...")
		return nil
	}
	return err
}

func (s *Shell) mainMenu() error {
	for {
		s.println("\nMenu:")
		s.println("1. Add New Address Book")
		s.println("2. Select Address Book and Manage Contacts")
		s.println("3. Display All Address Books")
		s.println("4. Search Contacts by City")
		s.println("5. Search Contacts by State")
		s.println("6. Exit")

		option, err := s.option()
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = s.addBook()
		case 2:
			err = s.manageBook()
		case 3:
			s.displayBooks()
		case 4:
			err = s.search(models.FieldCity, "City")
		case 5:
			err = s.search(models.FieldState, "State")
		case 6:
			s.println("Exiting...")
			return nil
		default:
			s.println("Invalid option! Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) bookMenu(book models.Book) error {
	for {
		s.println("\nAddress Book Menu:")
		s.println("1. Add Contact")
		s.println("2. Display Contacts")
		s.println("3. Edit Contact")
		s.println("4. Delete Contact")
		s.println("5. Go Back to Main Menu")

		option, err := s.option()
		if err != nil {
			return err
		}

		switch option {
		case 1:
			err = s.addContact(book)
		case 2:
			s.displayContacts(book)
		case 3:
			err = s.editContact(book)
		case 4:
			err = s.deleteContact(book)
		case 5:
			return nil
		default:
			s.println("Invalid option! Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) addBook() error {
	name, err := s.prompt("Enter the name for the new Address Book: ")
	if err != nil {
		return err
	}

	if err := s.directory.CreateBook(name); err != nil {
		s.logger.Debug("create book rejected", zap.String("book", name), zap.Error(err))
		s.println("An Address Book with this name already exists.")
		return nil
	}
	s.printf("Address Book '%s' created successfully.\n", name)
	return nil
}

func (s *Shell) displayBooks() {
	names := s.directory.BookNames()
	if len(names) == 0 {
		s.println("No Address Books available.")
		return
	}

	s.println("Available Address Books:")
	for _, name := range names {
		s.printf("- %s\n", name)
	}
}

func (s *Shell) manageBook() error {
	name, err := s.prompt("Enter the name of the Address Book to manage: ")
	if err != nil {
		return err
	}

	book, err := s.directory.GetBook(name)
	if err != nil {
		s.println("No Address Book found with this name.")
		return nil
	}
	return s.bookMenu(book)
}

func (s *Shell) search(field models.Field, label string) error {
	value, err := s.prompt(fmt.Sprintf("Enter %s: ", label))
	if err != nil {
		return err
	}

	matches := s.directory.SearchByField(field, value)
	if len(matches) == 0 {
		s.printf("No contacts found with %s '%s'.\n", field, value)
		return nil
	}

	s.printf("Contacts with %s '%s':\n", field, value)
	for _, contact := range matches {
		s.println(contact.String())
		s.println(separator)
	}
	return nil
}

func (s *Shell) addContact(book models.Book) error {
	contact, err := s.readContact()
	if err != nil {
		return err
	}

	switch err := book.AddContact(contact); {
	case err == nil:
		s.println("Contact added successfully.")
	case errors.Is(err, models.ErrDuplicate):
		s.println("A contact with the same name already exists.")
	default:
		return err
	}
	return nil
}

func (s *Shell) displayContacts(book models.Book) {
	if book.Len() == 0 {
		s.println("No contacts available.")
		return
	}

	for contact := range book.ListContacts() {
		s.println(contact.String())
		s.println(separator)
	}
}

func (s *Shell) editContact(book models.Book) error {
	firstName, lastName, err := s.readName("edit")
	if err != nil {
		return err
	}

	if _, err := book.FindContact(firstName, lastName); err != nil {
		s.println("Contact not found.")
		return nil
	}

	var details models.Details
	fields := []struct {
		label string
		dst   *string
	}{
		{"Enter new Address: ", &details.Address},
		{"Enter new City: ", &details.City},
		{"Enter new State: ", &details.State},
		{"Enter new Zip: ", &details.Zip},
		{"Enter new Phone Number: ", &details.PhoneNumber},
		{"Enter new Email: ", &details.Email},
	}
	for _, field := range fields {
		if *field.dst, err = s.prompt(field.label); err != nil {
			return err
		}
	}

	if err := book.EditContact(firstName, lastName, details); err != nil {
		s.println("Contact not found.")
		return nil
	}
	s.println("Contact updated successfully.")
	return nil
}

func (s *Shell) deleteContact(book models.Book) error {
	firstName, lastName, err := s.readName("delete")
	if err != nil {
		return err
	}

	if err := book.DeleteContact(firstName, lastName); err != nil {
		s.println("Contact not found.")
		return nil
	}
	s.println("Contact deleted successfully.")
	return nil
}

func (s *Shell) readName(action string) (string, string, error) {
	firstName, err := s.prompt(fmt.Sprintf("Enter the First Name of the contact to %s: ", action))
	if err != nil {
		return "", "", err
	}
	lastName, err := s.prompt(fmt.Sprintf("Enter the Last Name of the contact to %s: ", action))
	if err != nil {
		return "", "", err
	}
	return firstName, lastName, nil
}

func (s *Shell) readContact() (*models.Contact, error) {
	labels := []string{
		"Enter First Name: ",
		"Enter Last Name: ",
		"Enter Address: ",
		"Enter City: ",
		"Enter State: ",
		"Enter Zip: ",
		"Enter Phone Number: ",
		"Enter Email: ",
	}

	values := make([]string, len(labels))
	for i, label := range labels {
		value, err := s.prompt(label)
		if err != nil {
			return nil, err
		}
		values[i] = value
	}
	return models.NewContact(values[0], values[1], values[2], values[3], values[4], values[5], values[6], values[7]), nil
}

// option reads a menu choice. Anything that is not a number maps to 0, which
// no menu uses.
func (s *Shell) option() (int, error) {
	line, err := s.prompt("Choose an option: ")
	if err != nil {
		return 0, err
	}
	option, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, nil
	}
	return option, nil
}

// prompt writes label and returns the next input line, or io.EOF once the
// input is exhausted. Lines have no length limit.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}
