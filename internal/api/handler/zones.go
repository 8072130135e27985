package handler

import (
	"errors"
	"net/http"

	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// ManageZones lists zones with case-insensitive substring search over name
// and description, 5 per page.
func (h *Handler) ManageZones(c *gin.Context) {
	search := c.Query("search")
	page := pageParam(c)

	zones, total, err := h.Storage.ListZones(search, page, config.ZonePageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load zones"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"zones":        zones,
		"total":        total,
		"page":         page,
		"search_query": search,
	})
}

type zoneInput struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

// AddZone creates a zone. The name is required and must be unique.
func (h *Handler) AddZone(c *gin.Context) {
	var input zoneInput
	if err := c.ShouldBind(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Zone name is required!"})
		return
	}

	if _, err := h.Storage.GetZoneByName(input.Name); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Zone already exists"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add zone"})
		return
	}

	zone := models.Zone{Name: input.Name, Description: input.Description}
	if err := h.Storage.CreateZone(&zone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add zone"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Zone added successfully!",
		"zone":     zone,
		"redirect": "/manage_zones/",
	})
}

// EditZone updates a zone's name and description.
func (h *Handler) EditZone(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	zone, err := h.Storage.GetZoneByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load zone"})
		return
	}

	var input zoneInput
	if err := c.ShouldBind(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Zone name is required!"})
		return
	}

	zone.Name = input.Name
	zone.Description = input.Description
	if err := h.Storage.UpdateZone(zone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update zone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Zone updated successfully!",
		"zone":     zone,
		"redirect": "/manage_zones/",
	})
}

// DeleteZone removes a zone. Complaints referencing it keep a null zone.
func (h *Handler) DeleteZone(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Storage.DeleteZone(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete zone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Zone deleted successfully!",
		"redirect": "/manage_zones/",
	})
}
