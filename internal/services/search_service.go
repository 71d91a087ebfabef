package services

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/dtos"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/workday"
)

// BoardFetcher pulls postings for one Workday board.
type BoardFetcher interface {
	FetchBoard(ctx context.Context, board workday.Board, searchText string, pageLimit, maxPages int) ([]models.JobListing, error)
}

// BookmarkSource supplies stored bookmarks for result enrichment.
type BookmarkSource interface {
	ByURL(ctx context.Context) (map[string]models.Bookmark, error)
}

type SearchService struct {
	fetcher   BoardFetcher
	bookmarks BookmarkSource
	workers   int
	log       *zap.SugaredLogger
}

func NewSearchService(fetcher BoardFetcher, bookmarks BookmarkSource, workers int, log *zap.SugaredLogger) *SearchService {
	if workers < 1 {
		workers = 1
	}
	return &SearchService{fetcher: fetcher, bookmarks: bookmarks, workers: workers, log: log}
}

// Search fans out over the configured Workday boards, deduplicates by URL
// and echoes stored bookmark status/notes onto matching listings. A board
// that fails only shrinks the result set; the search itself succeeds.
func (s *SearchService) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.JobListing, dtos.SearchMeta, error) {
	specs := criteria.CompaniesConfig["workday"]
	searchText := strings.TrimSpace(strings.Join(criteria.Keywords, " "))

	pageLimit := criteria.WDLimit
	if pageLimit == 0 {
		pageLimit = 50
	}
	maxPages := criteria.WDMaxPages
	if maxPages == 0 {
		maxPages = 2
	}

	// Fetch boards concurrently but keep per-board buckets so the merged
	// order is deterministic regardless of which finishes first.
	buckets := make([][]models.JobListing, len(specs))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := s.workers
	if workers > len(specs) {
		workers = len(specs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				board, err := workday.ParseBoard(specs[i])
				if err != nil {
					s.log.Warnw("skipping bad board spec", "spec", specs[i], "err", err)
					continue
				}
				listings, err := s.fetcher.FetchBoard(ctx, board, searchText, pageLimit, maxPages)
				if err != nil {
					s.log.Warnw("board fetch failed", "tenant", board.Tenant, "err", err)
					continue
				}
				buckets[i] = listings
			}
		}()
	}
	for i := range specs {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, dtos.SearchMeta{}, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	results := dedupeByURL(buckets)
	s.annotateBookmarks(ctx, results)

	meta := dtos.SearchMeta{
		Count:          len(results),
		WorkdayTenants: specs,
		Keywords:       criteria.Keywords,
	}
	return results, meta, nil
}

// dedupeByURL flattens buckets in board order, keeping the first listing
// seen for each URL and dropping URL-less entries.
func dedupeByURL(buckets [][]models.JobListing) []models.JobListing {
	seen := make(map[string]bool)
	results := make([]models.JobListing, 0)
	for _, bucket := range buckets {
		for _, l := range bucket {
			if l.URL == "" || seen[l.URL] {
				continue
			}
			seen[l.URL] = true
			results = append(results, l)
		}
	}
	return results
}

func (s *SearchService) annotateBookmarks(ctx context.Context, results []models.JobListing) {
	if s.bookmarks == nil {
		return
	}
	byURL, err := s.bookmarks.ByURL(ctx)
	if err != nil {
		// Annotation is best-effort; the search result is still good.
		s.log.Warnw("bookmark lookup failed", "err", err)
		return
	}
	for i := range results {
		if bm, ok := byURL[results[i].URL]; ok {
			results[i].BookmarkStatus = bm.Status
			results[i].BookmarkNotes = bm.Notes
		}
	}
}
