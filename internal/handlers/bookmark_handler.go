package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/dtos"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/services"
)

type BookmarkHandler struct {
	Bookmarks *services.BookmarkService
}

func NewBookmarkHandler(bookmarks *services.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{Bookmarks: bookmarks}
}

// List is the GET /bookmarks endpoint, most recently updated first.
func (h *BookmarkHandler) List(c *gin.Context) {
	bookmarks, err := h.Bookmarks.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookmarks: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}

// Create is the POST /bookmarks endpoint. It upserts by URL so resubmitting
// the form is harmless.
func (h *BookmarkHandler) Create(c *gin.Context) {
	var req dtos.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON format: " + err.Error()})
		return
	}
	bm, err := h.Bookmarks.Upsert(c.Request.Context(), req.URL, req.Status, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save bookmark: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, bm)
}

// Update is the PATCH /bookmarks endpoint. A URL that was never bookmarked
// yields 404, which drives the client's create fallback.
func (h *BookmarkHandler) Update(c *gin.Context) {
	var req dtos.BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON format: " + err.Error()})
		return
	}
	bm, err := h.Bookmarks.Update(c.Request.Context(), req.URL, req.Status, req.Notes)
	if errors.Is(err, services.ErrBookmarkNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update bookmark: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, bm)
}
