package httpd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jobscout/jobscout/internal/database"
	"github.com/jobscout/jobscout/internal/domain"
	"github.com/jobscout/jobscout/internal/ingest"
	"github.com/jobscout/jobscout/internal/logger"
	"github.com/jobscout/jobscout/internal/portal"
)

const (
	defaultLimit  = 50
	defaultOffset = 0
	maxLimit      = 500
)

// Ingestor executes ingestion runs. Satisfied by ingest.Service.
type Ingestor interface {
	Run(ctx context.Context, params ingest.Params) (*ingest.Summary, error)
}

// RunReader reads ingestion run records.
type RunReader interface {
	GetByID(ctx context.Context, id string) (*domain.IngestionRun, error)
	List(ctx context.Context, limit, offset int) ([]*domain.IngestionRun, error)
}

// ListingReader reads stored listings.
type ListingReader interface {
	List(ctx context.Context, filter database.ListingFilter) ([]*domain.Listing, error)
}

type handler struct {
	ingestor Ingestor
	runs     RunReader
	listings ListingReader
	log      logger.Interface
}

func newHandler(ingestor Ingestor, runs RunReader, listings ListingReader, log logger.Interface) *handler {
	return &handler{ingestor: ingestor, runs: runs, listings: listings, log: log}
}

// Health handles GET /health
func (h *handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type scrapeRequest struct {
	Portals      []string `json:"portals"`
	RelevantOnly bool     `json:"relevant_only"`
}

// Scrape handles POST /api/v1/scrape
func (h *handler) Scrape(c *gin.Context) {
	var req scrapeRequest
	// An empty body is a valid request for a full default run.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	for _, name := range req.Portals {
		if !portal.IsSupported(name) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown portal: " + name})
			return
		}
	}

	summary, err := h.ingestor.Run(c.Request.Context(), ingest.Params{
		Portals:      req.Portals,
		Kind:         domain.RunKindRealtime,
		RelevantOnly: req.RelevantOnly,
	})
	if err != nil {
		resp := gin.H{"error": err.Error()}
		if summary != nil {
			resp["run"] = summary.Run
		}
		c.JSON(http.StatusBadGateway, resp)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run":     summary.Run,
		"portals": summary.PerPortal,
	})
}

// GetRun handles GET /api/v1/runs/:id
func (h *handler) GetRun(c *gin.Context) {
	run, err := h.runs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Run not found"})
			return
		}
		h.log.Error("failed to get run", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve run"})
		return
	}

	c.JSON(http.StatusOK, run)
}

// ListRuns handles GET /api/v1/runs
func (h *handler) ListRuns(c *gin.Context) {
	limit, offset := pagination(c)

	runs, err := h.runs.List(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Error("failed to list runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve runs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs, "count": len(runs)})
}

// ListListings handles GET /api/v1/listings
func (h *handler) ListListings(c *gin.Context) {
	limit, offset := pagination(c)

	filter := database.ListingFilter{
		Portal:       c.Query("portal"),
		RelevantOnly: c.Query("relevant") == "true",
		Limit:        limit,
		Offset:       offset,
	}

	if filter.Portal != "" && !portal.IsSupported(filter.Portal) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown portal: " + filter.Portal})
		return
	}

	listings, err := h.listings.List(c.Request.Context(), filter)
	if err != nil {
		h.log.Error("failed to list listings", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve listings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"listings": listings, "count": len(listings)})
}

// pagination parses limit/offset query parameters with bounds.
func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	offset, err = strconv.Atoi(c.DefaultQuery("offset", strconv.Itoa(defaultOffset)))
	if err != nil || offset < 0 {
		offset = defaultOffset
	}

	return limit, offset
}
