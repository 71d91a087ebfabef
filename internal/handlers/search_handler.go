package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/dtos"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/services"
)

type SearchHandler struct {
	Search *services.SearchService
}

func NewSearchHandler(search *services.SearchService) *SearchHandler {
	return &SearchHandler{Search: search}
}

// PostSearch is the POST /search endpoint. The body is the full form state;
// unknown fields and unused criteria are accepted and ignored.
func (h *SearchHandler) PostSearch(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON format: " + err.Error()})
		return
	}

	results, meta, err := h.Search.Search(c.Request.Context(), criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dtos.SearchResponse{Results: results, Meta: meta})
}

// HealthCheck is the GET /health endpoint.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"ts": time.Now().UTC().Format(time.RFC3339),
	})
}
