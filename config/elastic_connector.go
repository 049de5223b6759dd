package config

import (
	"fmt"

	"github.com/olivere/elastic/v7"
)

// SetupElasticSearch creates a client for the configured cluster. Sniffing is
// off so a single node behind a proxy works.
func SetupElasticSearch(cfg ElasticConfig, opts ...elastic.ClientOptionFunc) (*elastic.Client, error) {
	options := append([]elastic.ClientOptionFunc{
		elastic.SetURL(cfg.URL),
		elastic.SetSniff(false),
	}, opts...)

	client, err := elastic.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("elastic: could not create client for %s: %w", cfg.URL, err)
	}
	return client, nil
}
