package handler

import (
	"errors"
	"net/http"

	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type testimonialInput struct {
	Content string `form:"content" json:"content" binding:"required"`
	Rating  int    `form:"rating" json:"rating" binding:"required"`
}

// SubmitTestimonial files a feedback entry from the logged-in user. It stays
// hidden until an admin approves it.
func (h *Handler) SubmitTestimonial(c *gin.Context) {
	user := CurrentUser(c)

	var input testimonialInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}
	if input.Rating < config.MinRating || input.Rating > config.MaxRating {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	testimonial := models.Testimonial{
		UserID:  user.ID,
		Content: input.Content,
		Rating:  input.Rating,
	}
	if err := h.Storage.CreateTestimonial(&testimonial); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit testimonial"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Thank you for your feedback!",
		"redirect": "/dashboard",
	})
}

// ManageTestimonials lists testimonials for moderation, searchable by the
// submitting user's name.
func (h *Handler) ManageTestimonials(c *gin.Context) {
	search := c.Query("search")
	page := pageParam(c)

	testimonials, total, err := h.Storage.SearchTestimonials(search, page, config.TestimonialPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load testimonials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"testimonials": testimonials,
		"total":        total,
		"page":         page,
		"search_query": search,
	})
}

// ToggleApproval flips a testimonial between approved and pending.
func (h *Handler) ToggleApproval(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	testimonial, err := h.Storage.GetTestimonialByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load testimonial"})
		return
	}

	testimonial.IsApproved = !testimonial.IsApproved
	if err := h.Storage.UpdateTestimonial(testimonial); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}

	state := "approved"
	if !testimonial.IsApproved {
		state = "set to pending"
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial has been " + state + "."})
}

// DeleteTestimonial removes a testimonial.
func (h *Handler) DeleteTestimonial(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Storage.DeleteTestimonial(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted successfully."})
}
