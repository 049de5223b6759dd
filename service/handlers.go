package service

import (
	"context"
	"encoding/json"
	"net/http"

	"addressbook/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) ListBooks(c *gin.Context) {
	s.mu.Lock()
	names := s.directory.BookNames()
	s.mu.Unlock()

	c.JSON(http.StatusOK, names)
}

func (s *Server) CreateBook(c *gin.Context) {
	name := c.Param("book")

	s.mu.Lock()
	err := s.directory.CreateBook(name)
	s.mu.Unlock()

	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created", "book": name})
}

func (s *Server) ListContacts(c *gin.Context) {
	contacts, err := s.snapshot(c.Param("book"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (s *Server) CreateContact(c *gin.Context) {
	bookName := c.Param("book")

	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	stored := contact
	s.mu.Lock()
	err := s.directory.AddContactToBook(bookName, &stored)
	s.mu.Unlock()

	if err != nil {
		abortWithError(c, err)
		return
	}

	s.mirror(c, "index", func(ctx context.Context) error {
		return s.index.IndexContact(ctx, bookName, &contact)
	})

	c.JSON(http.StatusCreated, contact)
}

func (s *Server) GetContact(c *gin.Context) {
	contact, err := s.findContact(c.Param("book"), c.Param("first"), c.Param("last"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (s *Server) UpdateContact(c *gin.Context) {
	bookName, first, last := c.Param("book"), c.Param("first"), c.Param("last")

	var details models.Details
	if err := c.ShouldBindJSON(&details); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	contact, err := s.editContact(bookName, first, last, details)
	if err != nil {
		abortWithError(c, err)
		return
	}

	s.mirror(c, "index", func(ctx context.Context) error {
		return s.index.IndexContact(ctx, bookName, &contact)
	})

	c.JSON(http.StatusOK, contact)
}

func (s *Server) DeleteContact(c *gin.Context) {
	bookName, first, last := c.Param("book"), c.Param("first"), c.Param("last")

	remaining, err := s.deleteContact(bookName, first, last)
	if err != nil {
		abortWithError(c, err)
		return
	}

	// duplicates share one mirror document
	if remaining != nil {
		s.mirror(c, "index", func(ctx context.Context) error {
			return s.index.IndexContact(ctx, bookName, remaining)
		})
	} else {
		s.mirror(c, "delete", func(ctx context.Context) error {
			return s.index.DeleteContact(ctx, bookName, first, last)
		})
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) SearchContacts(c *gin.Context) {
	city, cityOk := c.GetQuery("city")
	state, stateOk := c.GetQuery("state")

	if cityOk == stateOk {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "exactly one of city or state is required for search"})
		return
	}

	field, value := models.FieldCity, city
	if stateOk {
		field, value = models.FieldState, state
	}

	s.mu.Lock()
	matches := s.directory.SearchByField(field, value)
	contacts := make([]models.Contact, len(matches))
	for i, match := range matches {
		contacts[i] = *match
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, contacts)
}

func (s *Server) Store(c *gin.Context) {
	s.mu.Lock()
	summary := s.directory.Summary()
	s.mu.Unlock()

	c.JSON(http.StatusOK, summary)
}

func (s *Server) Activity(c *gin.Context) {
	username := c.Param("username")

	userRequests, err := s.cacher.Read(username)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
		})
		return
	}

	activity := make([]models.UserRequest, 0, len(userRequests))
	for _, request := range userRequests {
		var userRequest models.UserRequest
		if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
			s.logger.Warn("skipping malformed activity entry", zap.String("username", username), zap.Error(err))
			continue
		}
		activity = append(activity, userRequest)
	}

	c.JSON(http.StatusOK, activity)
}

// snapshot copies the contacts of a book so they can be encoded without
// holding the lock.
func (s *Server) snapshot(bookName string) ([]models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.directory.GetBook(bookName)
	if err != nil {
		return nil, err
	}

	contacts := make([]models.Contact, 0, book.Len())
	for contact := range book.ListContacts() {
		contacts = append(contacts, *contact)
	}
	return contacts, nil
}

func (s *Server) findContact(bookName, first, last string) (models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.directory.GetBook(bookName)
	if err != nil {
		return models.Contact{}, err
	}
	contact, err := book.FindContact(first, last)
	if err != nil {
		return models.Contact{}, err
	}
	return *contact, nil
}

func (s *Server) editContact(bookName, first, last string, details models.Details) (models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.directory.GetBook(bookName)
	if err != nil {
		return models.Contact{}, err
	}
	if err := book.EditContact(first, last, details); err != nil {
		return models.Contact{}, err
	}
	contact, err := book.FindContact(first, last)
	if err != nil {
		return models.Contact{}, err
	}
	return *contact, nil
}

// deleteContact removes the earliest matching contact and returns a copy of
// the next contact left under the same name, if any.
func (s *Server) deleteContact(bookName, first, last string) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, err := s.directory.GetBook(bookName)
	if err != nil {
		return nil, err
	}
	if err := book.DeleteContact(first, last); err != nil {
		return nil, err
	}
	contact, err := book.FindContact(first, last)
	if err != nil {
		return nil, nil
	}
	remaining := *contact
	return &remaining, nil
}
