package dataset

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"salesdash/internal/logger"
)

// Fetcher downloads CSV datasets from remote sources
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher with sane timeout and retry defaults
func NewFetcher() *Fetcher {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &Fetcher{client: client}
}

// FetchCSV downloads a CSV dataset from the given URL and parses it into a table
func (f *Fetcher) FetchCSV(ctx context.Context, url string) (*Table, error) {
	logger.Debugf("Fetching dataset from %s", url)

	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("dataset fetch failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("dataset fetch failed: HTTP %d from %s", resp.StatusCode(), url)
	}

	tbl, err := ReadCSV(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("dataset parse failed: %w", err)
	}

	logger.Infof("Fetched dataset with %d rows from %s", tbl.Len(), url)
	return tbl, nil
}
