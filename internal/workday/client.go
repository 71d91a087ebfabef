// Package workday fetches postings from Workday CXS job boards.
package workday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

// hostFallbacks is the order of myworkdayjobs hosts to probe when a board
// spec carries no hint. The hinted host, if any, is tried first.
var hostFallbacks = []string{"wd5", "wd1", "wd3", "wd2"}

// Board identifies one tenant's job board, parsed from "tenant|site|hostHint".
type Board struct {
	Tenant   string
	Site     string
	HostHint string
}

// ParseBoard splits a board spec. Site defaults to "External"; the host hint
// is optional.
func ParseBoard(spec string) (Board, error) {
	parts := strings.Split(spec, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 0 || parts[0] == "" {
		return Board{}, fmt.Errorf("empty board spec %q", spec)
	}
	b := Board{Tenant: parts[0], Site: "External"}
	if len(parts) > 1 && parts[1] != "" {
		b.Site = parts[1]
	}
	if len(parts) > 2 {
		b.HostHint = parts[2]
	}
	return b, nil
}

func (b Board) hostCandidates() []string {
	hosts := make([]string, 0, len(hostFallbacks)+1)
	if b.HostHint != "" {
		hosts = append(hosts, b.HostHint)
	}
	for _, h := range hostFallbacks {
		if h != b.HostHint {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

type Config struct {
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration
	RatePerSec     float64
}

type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.SugaredLogger

	// baseURL builds the board origin for a host; tests point it at a
	// local server.
	baseURL func(tenant, host string) string
}

func NewClient(cfg Config, log *zap.SugaredLogger) *Client {
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseDelay == 0 {
		cfg.BaseDelay = 1 * time.Second
	}
	if cfg.MaxDelay == 0 {
		cfg.MaxDelay = 30 * time.Second
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 25 * time.Second
	}
	if cfg.RatePerSec == 0 {
		cfg.RatePerSec = 4
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		log:     log,
		baseURL: func(tenant, host string) string {
			return fmt.Sprintf("https://%s.%s.myworkdayjobs.com", tenant, host)
		},
	}
}

type cxsRequest struct {
	AppliedFacets map[string]any `json:"appliedFacets"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
	SearchText    string         `json:"searchText"`
}

type cxsPosting struct {
	Title        string   `json:"title"`
	Locations    []string `json:"locations"`
	ExternalPath string   `json:"externalPath"`
	PostedOn     string   `json:"postedOn"`
	JobFamily    string   `json:"jobFamily"`
}

type cxsResponse struct {
	JobPostings []cxsPosting `json:"jobPostings"`
}

// FetchBoard pulls up to maxPages pages of postings for one board. Host
// candidates are tried in order and the first one that yields results wins;
// a board where every host fails returns an error, which callers treat as
// a degraded search rather than a failure.
func (c *Client) FetchBoard(ctx context.Context, board Board, searchText string, pageLimit, maxPages int) ([]models.JobListing, error) {
	if pageLimit < 1 {
		pageLimit = 1
	}
	if pageLimit > 100 {
		pageLimit = 100
	}
	if maxPages < 1 {
		maxPages = 1
	}

	var lastErr error
	for _, host := range board.hostCandidates() {
		listings, err := c.fetchHost(ctx, board, host, searchText, pageLimit, maxPages)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		if len(listings) > 0 {
			return listings, nil
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("board %s: %w", board.Tenant, lastErr)
	}
	return nil, nil
}

func (c *Client) fetchHost(ctx context.Context, board Board, host, searchText string, pageLimit, maxPages int) ([]models.JobListing, error) {
	base := c.baseURL(board.Tenant, host)
	endpoint := fmt.Sprintf("%s/wday/cxs/%s/%s/jobs", base, board.Tenant, board.Site)

	var listings []models.JobListing
	offset := 0
	for page := 0; page < maxPages; page++ {
		payload := cxsRequest{
			AppliedFacets: map[string]any{},
			Limit:         pageLimit,
			Offset:        offset,
			SearchText:    searchText,
		}
		var data cxsResponse
		if err := c.postJSON(ctx, endpoint, payload, &data); err != nil {
			return nil, err
		}
		if len(data.JobPostings) == 0 {
			break
		}
		for _, p := range data.JobPostings {
			listings = append(listings, normalize(board, base, p))
		}
		offset += len(data.JobPostings)
		if len(data.JobPostings) < pageLimit {
			break
		}
	}
	return listings, nil
}

func normalize(board Board, base string, p cxsPosting) models.JobListing {
	location := strings.Join(p.Locations, ", ")
	viewURL := ""
	if p.ExternalPath != "" {
		viewURL = fmt.Sprintf("%s/%s/job/%s", base, board.Site, strings.TrimPrefix(p.ExternalPath, "/"))
	}
	return models.JobListing{
		Source:     "workday",
		Company:    board.Tenant,
		Title:      p.Title,
		Location:   location,
		Remote:     strings.Contains(strings.ToLower(location), "remote"),
		URL:        viewURL,
		Department: p.JobFamily,
		PostedAt:   p.PostedOn,
	}
}

// postJSON sends one CXS request, retrying on network errors and 429 with
// doubling delay. Other non-2xx statuses fail immediately; Workday returns
// 404 for hosts a tenant does not live on, and retrying those is wasted time.
func (c *Client) postJSON(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	var lastErr error
	delay := c.cfg.BaseDelay
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", "isdjobs/1.0")
		req.Header.Set("Accept", "application/json, text/plain, */*")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			c.log.Debugw("workday request failed", "url", url, "attempt", attempt+1, "err", err)
		} else if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
			err = json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err
		} else if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastErr = fmt.Errorf("rate limited: %s", resp.Status)
			c.log.Debugw("workday rate limited", "url", url, "attempt", attempt+1)
		} else {
			resp.Body.Close()
			return fmt.Errorf("workday request failed: %s", resp.Status)
		}

		if attempt < c.cfg.MaxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > c.cfg.MaxDelay {
				delay = c.cfg.MaxDelay
			}
		}
	}
	return fmt.Errorf("all retry attempts failed, last error: %w", lastErr)
}
