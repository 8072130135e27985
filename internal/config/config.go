package config

import "time"

const (
	// Pagination
	ZonePageSize             = 5
	UserPageSize             = 10
	AdminComplaintPageSize   = 10
	OfficerComplaintPageSize = 5
	TestimonialPageSize      = 10
	ContactPageSize          = 10
	HomeTestimonialLimit     = 6

	// Auth
	TokenTTL          = 72 * time.Hour
	TokenIssuer       = "nagarseva-service"
	MinPasswordLength = 8

	// Testimonials
	MinRating = 1
	MaxRating = 5

	// Uploads
	DefaultUploadDir = "uploads/complaints/photos"
)
