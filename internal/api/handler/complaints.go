package handler

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"
	"nagarseva/backend/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LodgeComplaint files a new complaint for the logged-in user. The photo is
// an optional multipart upload stored under the uploads directory with a
// UUID filename; the write to disk is synchronous.
func (h *Handler) LodgeComplaint(c *gin.Context) {
	user := CurrentUser(c)

	title := c.PostForm("title")
	description := c.PostForm("description")
	location := c.PostForm("location")
	if title == "" || description == "" || location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, description and location are required"})
		return
	}

	latitude, err := strconv.ParseFloat(c.PostForm("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid latitude"})
		return
	}
	longitude, err := strconv.ParseFloat(c.PostForm("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid longitude"})
		return
	}

	var zoneID *uint
	if raw := c.PostForm("zone_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid zone"})
			return
		}
		if _, err := h.Storage.GetZoneByID(uint(id)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Zone not found"})
			return
		}
		zid := uint(id)
		zoneID = &zid
	}

	var photoName string
	if file, err := c.FormFile("photo"); err == nil {
		photoName = uuid.New().String() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(h.UploadDir, photoName)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
			return
		}
	}

	complaint := models.Complaint{
		CitizenID:   user.ID,
		ZoneID:      zoneID,
		Title:       title,
		Description: description,
		Photo:       photoName,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		Status:      models.StatusPending,
	}
	if err := h.Storage.CreateComplaint(&complaint); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to lodge complaint"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Complaint lodged successfully.",
		"complaint": complaint,
		"redirect":  "/dashboard",
	})
}

// ViewComplaintStatus lists the logged-in citizen's own complaints, newest
// first. Other users' complaints are never visible here.
func (h *Handler) ViewComplaintStatus(c *gin.Context) {
	user := CurrentUser(c)

	complaints, err := h.Storage.ListComplaintsByCitizen(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"complaints": complaints})
}

// AdminViewComplaints searches all complaints across title, description and
// citizen name, with the current assignment attached per complaint.
func (h *Handler) AdminViewComplaints(c *gin.Context) {
	query := c.Query("q")
	page := pageParam(c)

	complaints, total, err := h.Storage.SearchComplaints(query, page, config.AdminComplaintPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaints"})
		return
	}

	ids := make([]uint, 0, len(complaints))
	for _, complaint := range complaints {
		ids = append(ids, complaint.ID)
	}
	assignments, err := h.Storage.AssignmentsForComplaints(ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load assignments"})
		return
	}
	assigned := make(map[uint]models.User, len(assignments))
	for _, a := range assignments {
		assigned[a.ComplaintID] = a.Officer
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints":  complaints,
		"assignments": assigned,
		"total":       total,
		"page":        page,
		"query":       query,
	})
}

type assignInput struct {
	OfficerID string `form:"officer_id" json:"officer_id" binding:"required"`
}

// AssignOfficer links a complaint to an officer and moves it to In Progress
// in one transactional step.
func (h *Handler) AssignOfficer(c *gin.Context) {
	complaintID, ok := idParam(c, "complaint_id")
	if !ok {
		return
	}

	var input assignInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Officer is required"})
		return
	}

	err := h.Workflow.Assign(CurrentUser(c), complaintID, input.OfficerID)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	case errors.Is(err, workflow.ErrNotOfficer):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Selected user is not an officer"})
		return
	case errors.Is(err, workflow.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign officer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Officer assigned successfully.",
		"redirect": "/admin_view_complaints/",
	})
}

// OfficerAssignedComplaints lists the complaints assigned to the logged-in
// officer, with substring search and an optional status filter.
func (h *Handler) OfficerAssignedComplaints(c *gin.Context) {
	user := CurrentUser(c)
	query := c.Query("q")
	status := models.ComplaintStatus(c.Query("status"))
	page := pageParam(c)

	if status != "" && !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	complaints, total, err := h.Storage.ListAssignedComplaints(
		user.ID, query, status, page, config.OfficerComplaintPageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load complaints"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"complaints":    complaints,
		"total":         total,
		"page":          page,
		"search_query":  query,
		"status_filter": status,
	})
}

type statusInput struct {
	Status string `form:"status" json:"status" binding:"required"`
}

// UpdateComplaintStatus moves a complaint through the workflow. The engine
// checks both the actor's capability and the transition table before writing.
func (h *Handler) UpdateComplaintStatus(c *gin.Context) {
	complaintID, ok := idParam(c, "complaint_id")
	if !ok {
		return
	}

	var input statusInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	err := h.Workflow.UpdateStatus(CurrentUser(c), complaintID, models.ComplaintStatus(input.Status))
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Complaint not found"})
		return
	case errors.Is(err, workflow.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	case errors.Is(err, workflow.ErrIllegalTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status cannot move backwards"})
		return
	case errors.Is(err, workflow.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Status updated successfully.",
		"redirect": "/officer_assigned_complaints/",
	})
}
