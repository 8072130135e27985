package handler

import (
	"errors"
	"net/http"

	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Dashboard routes the logged-in user to their role's dashboard payload.
func (h *Handler) Dashboard(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"role":      user.Role,
		"dashboard": string(user.Role),
		"user":      user,
	})
}

func (h *Handler) listUsers(c *gin.Context, role models.Role) {
	search := c.Query("search")
	page := pageParam(c)

	users, total, err := h.Storage.ListUsersByRole(role, search, page, config.UserPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":        users,
		"total":        total,
		"page":         page,
		"search_query": search,
	})
}

// ManageCitizens lists citizen accounts with search over name/email/aadhaar.
func (h *Handler) ManageCitizens(c *gin.Context) {
	h.listUsers(c, models.RoleCitizen)
}

// ManageOfficers lists officer accounts with search over name/email/aadhaar.
func (h *Handler) ManageOfficers(c *gin.Context) {
	h.listUsers(c, models.RoleOfficer)
}

func (h *Handler) deleteUser(c *gin.Context, message string) {
	id := c.Param("id")
	if err := h.Storage.DeleteUser(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteCitizen removes a citizen and cascades to their complaints,
// assignments and testimonials.
func (h *Handler) DeleteCitizen(c *gin.Context) {
	h.deleteUser(c, "Citizen deleted successfully!")
}

// DeleteOfficer removes an officer and cascades to their assignments.
func (h *Handler) DeleteOfficer(c *gin.Context) {
	h.deleteUser(c, "Officer deleted successfully!")
}

type profileInput struct {
	Name  string `form:"name" json:"name" binding:"required"`
	Phone string `form:"phone" json:"phone" binding:"required"`
}

// Profile returns the current user on GET and updates name/phone on POST.
func (h *Handler) Profile(c *gin.Context) {
	user := CurrentUser(c)

	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}

	var input profileInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}
	if !phoneRe.MatchString(input.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter a valid 10-digit phone number"})
		return
	}

	user.Name = input.Name
	user.Phone = input.Phone
	if err := h.Storage.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully.", "user": user})
}

type changePasswordInput struct {
	OldPassword     string `form:"old_password" json:"old_password" binding:"required"`
	NewPassword     string `form:"new_password" json:"new_password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
}

// ChangePassword replaces the password after checking the old one.
func (h *Handler) ChangePassword(c *gin.Context) {
	user := CurrentUser(c)

	var input changePasswordInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Old password is incorrect"})
		return
	}
	if len(input.NewPassword) < config.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}
	if input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	user.PasswordHash = string(hash)
	if err := h.Storage.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully.", "redirect": "/dashboard"})
}
