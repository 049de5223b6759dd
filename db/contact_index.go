package db

import (
	"context"

	"addressbook/models"
	"github.com/google/uuid"
	"github.com/olivere/elastic/v7"
)

const INDEX_NAME = "contacts"

// ContactIndex mirrors contact mutations to an external search index. The
// in-memory directory stays the source of truth.
type ContactIndex interface {
	IndexContact(ctx context.Context, book string, contact *models.Contact) error
	DeleteContact(ctx context.Context, book, firstName, lastName string) error
}

// NopContactIndex drops every mutation.
type NopContactIndex struct{}

func (NopContactIndex) IndexContact(context.Context, string, *models.Contact) error { return nil }

func (NopContactIndex) DeleteContact(context.Context, string, string, string) error { return nil }

// IndexedContact is the document stored for each contact.
type IndexedContact struct {
	Book string `json:"book"`
	*models.Contact
}

type ElasticContactIndex struct {
	IndexName     string
	ElasticClient *elastic.Client
}

func CreateElasticContactIndex(indexName string, client *elastic.Client) *ElasticContactIndex {
	if indexName == "" {
		indexName = INDEX_NAME
	}
	return &ElasticContactIndex{indexName, client}
}

var contactNamespace = uuid.MustParse("6f1c3a52-8f0e-4a4e-9d1b-5b0f3f7f6c11")

// DocumentId derives a stable document id from the book name and the contact's
// identity key, so re-indexing an edited contact overwrites its document.
func DocumentId(book string, key models.Key) string {
	return uuid.NewSHA1(contactNamespace, []byte(book+"\x00"+string(key))).String()
}

func (index *ElasticContactIndex) IndexContact(ctx context.Context, book string, contact *models.Contact) error {
	_, err := index.ElasticClient.Index().
		Index(index.IndexName).
		Id(DocumentId(book, contact.Key())).
		BodyJson(IndexedContact{Book: book, Contact: contact}).
		Do(ctx)

	return err
}

func (index *ElasticContactIndex) DeleteContact(ctx context.Context, book, firstName, lastName string) error {
	_, err := index.ElasticClient.
		Delete().
		Index(index.IndexName).
		Id(DocumentId(book, models.KeyOf(firstName, lastName))).
		Do(ctx)

	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}
