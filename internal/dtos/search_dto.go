package dtos

import "github.com/mrdomrivera-isd/ISDJOBS/internal/models"

// SearchMeta echoes back what the search actually ran with.
type SearchMeta struct {
	Count          int      `json:"count"`
	WorkdayTenants []string `json:"workday_tenants"`
	Keywords       []string `json:"keywords"`
}

// SearchResponse is the body of a successful POST /search.
type SearchResponse struct {
	Results []models.JobListing `json:"results"`
	Meta    SearchMeta          `json:"meta"`
}

// BookmarkRequest is the body of POST and PATCH /bookmarks.
type BookmarkRequest struct {
	URL    string `json:"url" binding:"required"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}
