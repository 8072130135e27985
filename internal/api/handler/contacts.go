package handler

import (
	"errors"
	"net/http"

	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type contactInput struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}

// HandleContact records a message from an anonymous visitor.
func (h *Handler) HandleContact(c *gin.Context) {
	var input contactInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message are required"})
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}
	if err := h.Storage.CreateContact(&contact); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Thank you for contacting us. We'll get back to you soon!",
		"redirect": "/",
	})
}

// ManageContacts lists contact messages newest first, searchable over
// name, email and message body.
func (h *Handler) ManageContacts(c *gin.Context) {
	search := c.Query("search")
	page := pageParam(c)

	contacts, total, err := h.Storage.SearchContacts(search, page, config.ContactPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts":     contacts,
		"total":        total,
		"page":         page,
		"search_query": search,
	})
}

// DeleteContact removes a contact message.
func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.Storage.DeleteContact(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully!"})
}
