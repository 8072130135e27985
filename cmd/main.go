package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"nagarseva/backend/internal/analytics"
	"nagarseva/backend/internal/api/handler"
	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"
	"nagarseva/backend/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func setupDependencies() (*gorm.DB, *redis.Client) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "nagarseva"),
		getEnv("DB_PASSWORD", "nagarseva"),
		getEnv("DB_NAME", "nagarsevadb"),
		getEnv("DB_PORT", "5432"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Zone{},
		&models.Complaint{},
		&models.Assignment{},
		&models.Testimonial{},
		&models.Contact{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting NagarSeva Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	db, rdb := setupDependencies()
	s := storage.NewStorageService(db, rdb)

	wf := workflow.NewEngine(s)
	an := analytics.NewService(s)

	uploadDir := getEnv("UPLOAD_DIR", config.DefaultUploadDir)
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir %s: %v", uploadDir, err)
	}

	r := gin.Default()
	h := handler.NewHandler(s, wf, an, uploadDir)

	// Public routes
	r.GET("/", h.Home)
	r.POST("/register/", h.Register)
	r.POST("/login/", h.Login)
	r.POST("/handel_contact/", h.HandleContact) // historical path, kept for clients

	// Any authenticated user
	auth := r.Group("", h.AuthRequired())
	auth.GET("/dashboard", h.Dashboard)
	auth.POST("/logout_view/", h.Logout)
	auth.GET("/profile_view/", h.Profile)
	auth.POST("/profile_view/", h.Profile)
	auth.POST("/change_password_view/", h.ChangePassword)
	auth.POST("/lodge_complaint/", h.LodgeComplaint)
	auth.GET("/view_complaint_status/", h.ViewComplaintStatus)
	auth.POST("/submit_testimonial/", h.SubmitTestimonial)

	// Officer routes (admins pass the workflow's own capability checks too)
	officer := auth.Group("", handler.RoleRequired(models.RoleOfficer, models.RoleAdmin))
	officer.GET("/officer_assigned_complaints/", h.OfficerAssignedComplaints)
	officer.POST("/update_complaint_status/:complaint_id/", h.UpdateComplaintStatus)

	// Admin routes
	admin := auth.Group("", handler.RoleRequired(models.RoleAdmin))
	admin.GET("/manage_zones/", h.ManageZones)
	admin.POST("/add_zone/", h.AddZone)
	admin.POST("/edit_zone/:id/", h.EditZone)
	admin.POST("/delete_zone/:id/", h.DeleteZone)
	admin.GET("/manage_citizens/", h.ManageCitizens)
	admin.GET("/manage_officers/", h.ManageOfficers)
	admin.POST("/delete_citizen/:id/", h.DeleteCitizen)
	admin.POST("/delete_officer/:id/", h.DeleteOfficer)
	admin.GET("/admin_view_complaints/", h.AdminViewComplaints)
	admin.POST("/assign_officer/:complaint_id/", h.AssignOfficer)
	admin.GET("/manage_testimonials/", h.ManageTestimonials)
	admin.POST("/toggle_approval/:id/", h.ToggleApproval)
	admin.POST("/delete_testimonial/:id/", h.DeleteTestimonial)
	admin.GET("/manage_contacts/", h.ManageContacts)
	admin.POST("/delete_contact/:id/", h.DeleteContact)
	admin.GET("/complaint_analytics/", h.ComplaintAnalytics)
	admin.GET("/officer_dashboard_analytics", h.OfficerDashboardAnalytics)

	server := &http.Server{
		Addr:           ":" + getEnv("PORT", "8080"),
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
