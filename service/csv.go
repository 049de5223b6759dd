package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"addressbook/models"
	"github.com/gin-gonic/gin"
)

var csvHeader = []string{
	"FirstName", "LastName", "Address", "City", "State", "Zip", "PhoneNumber", "Email",
}

func contactRecord(contact models.Contact) []string {
	return []string{
		contact.FirstName,
		contact.LastName,
		contact.Address,
		contact.City,
		contact.State,
		contact.Zip,
		contact.PhoneNumber,
		contact.Email,
	}
}

func isContactCSVHeader(record []string) bool {
	return len(record) >= len(csvHeader) && record[0] == csvHeader[0] && record[1] == csvHeader[1]
}

// ExportContacts writes the book as CSV. A header row is always present.
func (s *Server) ExportContacts(c *gin.Context) {
	bookName := c.Param("book")

	contacts, err := s.snapshot(bookName)
	if err != nil {
		abortWithError(c, err)
		return
	}

	b := &bytes.Buffer{}
	csvWriter := csv.NewWriter(b)
	if err := csvWriter.Write(csvHeader); err != nil {
		abortWithError(c, err)
		return
	}
	for _, contact := range contacts {
		if err := csvWriter.Write(contactRecord(contact)); err != nil {
			abortWithError(c, err)
			return
		}
	}
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("attachment;filename=%s-%s.csv", bookName, time.Now().Format("20060102T150405")))
	c.Data(http.StatusOK, "text/csv", b.Bytes())
}

// ImportResult reports how an import went. Duplicates and malformed rows are
// counted and never abort the import.
type ImportResult struct {
	Added      int      `json:"added"`
	Duplicates int      `json:"duplicates"`
	Errors     int      `json:"errors"`
	Messages   []string `json:"messages,omitempty"`
}

func (s *Server) ImportContacts(c *gin.Context) {
	bookName := c.Param("book")

	s.mu.Lock()
	_, err := s.directory.GetBook(bookName)
	s.mu.Unlock()
	if err != nil {
		abortWithError(c, err)
		return
	}

	csvReader := csv.NewReader(c.Request.Body)
	csvReader.FieldsPerRecord = -1

	var result ImportResult
	var added []models.Contact
	var bodyErr error
	for row := 1; ; row++ {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.Errors++
			result.Messages = append(result.Messages, fmt.Sprintf("row %d: %v", row, err))
			continue
		}
		if err != nil {
			// the body itself failed; later reads return the same error
			bodyErr = err
			break
		}
		if row == 1 && isContactCSVHeader(record) {
			continue
		}
		if len(record) < len(csvHeader) {
			result.Errors++
			result.Messages = append(result.Messages,
				fmt.Sprintf("row %d: expected %d fields, got %d", row, len(csvHeader), len(record)))
			continue
		}

		contact := models.NewContact(record[0], record[1], record[2], record[3], record[4], record[5], record[6], record[7])

		copied := *contact
		s.mu.Lock()
		err = s.directory.AddContactToBook(bookName, contact)
		s.mu.Unlock()

		switch {
		case err == nil:
			result.Added++
			added = append(added, copied)
		case errors.Is(err, models.ErrDuplicate):
			result.Duplicates++
			result.Messages = append(result.Messages, fmt.Sprintf("row %d: %v", row, err))
		default:
			result.Errors++
			result.Messages = append(result.Messages, fmt.Sprintf("row %d: %v", row, err))
		}
	}

	for i := range added {
		contact := added[i]
		s.mirror(c, "index", func(ctx context.Context) error {
			return s.index.IndexContact(ctx, bookName, &contact)
		})
	}

	if bodyErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": fmt.Sprintf("failed to read import body: %v", bodyErr),
			"added":   result.Added,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
