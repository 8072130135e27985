package handler

import (
	"net/http"
	"strconv"

	"nagarseva/backend/internal/analytics"
	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/storage"
	"nagarseva/backend/internal/workflow"

	"github.com/gin-gonic/gin"
)

// Handler carries the dependencies shared by all HTTP handlers.
type Handler struct {
	Storage   storage.Storage
	Workflow  *workflow.Engine
	Analytics *analytics.Service
	UploadDir string
}

func NewHandler(s storage.Storage, wf *workflow.Engine, an *analytics.Service, uploadDir string) *Handler {
	return &Handler{
		Storage:   s,
		Workflow:  wf,
		Analytics: an,
		UploadDir: uploadDir,
	}
}

// pageParam reads the ?page= query parameter, defaulting to 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam reads a numeric :id-style path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Home returns the public landing payload: the latest approved testimonials
// and the list of zones.
func (h *Handler) Home(c *gin.Context) {
	testimonials, err := h.Storage.ApprovedTestimonials(config.HomeTestimonialLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load testimonials"})
		return
	}
	zones, err := h.Storage.AllZones()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load zones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"testimonials": testimonials,
		"zones":        zones,
	})
}
