// Package client talks to the isdjobs API: POST /search and the
// PATCH-then-POST bookmark flow.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/dtos"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

// ErrNoAPIBase is the only client-side validation failure: everything else
// on the form is submitted as-is.
var ErrNoAPIBase = errors.New("api base is not configured")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Search submits the criteria and returns the new result list, replacing
// whatever the caller held before. Duplicate in-flight submissions are not
// guarded against; cancellation is the caller's context.
func (c *Client) Search(ctx context.Context, criteria models.SearchCriteria) (*dtos.SearchResponse, error) {
	if c.baseURL == "" {
		return nil, ErrNoAPIBase
	}

	body, err := json.Marshal(criteria)
	if err != nil {
		return nil, fmt.Errorf("encoding search criteria: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("search failed: %s", resp.Status)
	}

	var out dtos.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return &out, nil
}

// SaveBookmark updates the bookmark for a listing URL. A 404 from PATCH
// means the record does not exist yet, in which case exactly one POST with
// the identical body creates it. No other retry is attempted.
func (c *Client) SaveBookmark(ctx context.Context, bm dtos.BookmarkRequest) error {
	if c.baseURL == "" {
		return ErrNoAPIBase
	}

	body, err := json.Marshal(bm)
	if err != nil {
		return fmt.Errorf("encoding bookmark: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPatch, body)
	if err != nil {
		return err
	}
	resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		// Fall through to create.
	default:
		return fmt.Errorf("bookmark update failed: %s", resp.Status)
	}

	resp, err = c.send(ctx, http.MethodPost, body)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("bookmark create failed: %s", resp.Status)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/bookmarks", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bookmark request failed: %w", err)
	}
	return resp, nil
}
