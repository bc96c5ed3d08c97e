// Package formulae fetches and decodes the remote formula index.
package formulae

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FormulaSource = (*Client)(nil)

// Client downloads the formula index over HTTP.
type Client struct {
	client *http.Client
	url    string
	logger ports.Logger
}

// NewClient creates a Client for the index at url.
func NewClient(client *http.Client, url string, logger ports.Logger) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{client: client, url: url, logger: logger}
}

// Fetch downloads and decodes the index.
func (c *Client) Fetch(ctx context.Context) (*domain.Repository, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, c.networkError(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Info("fetching formula index")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.networkError(err, "failed to fetch formula index")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrNetwork, "unexpected response status"),
			"status", resp.StatusCode), "url", c.url)
	}

	body := &countingReader{r: resp.Body}
	repo, err := Decode(body)
	if err != nil {
		return nil, zerr.With(err, "url", c.url)
	}

	c.logger.Debug(fmt.Sprintf("formula index: %d formulae, %d bytes", repo.Len(), body.n))
	return repo, nil
}

func (c *Client) networkError(err error, msg string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrNetwork, err), msg), "url", c.url)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
