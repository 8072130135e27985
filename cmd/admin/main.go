package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "create-admin":
		if len(os.Args) != 7 {
			fmt.Println("Usage: admin create-admin <name> <email> <phone> <aadhaar> <password>")
			os.Exit(1)
		}
		if err := createAdmin(storageSvc, os.Args[2], os.Args[3], os.Args[4], os.Args[5], os.Args[6]); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin %s created.\n", os.Args[3])
	case "approve-testimonial":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin approve-testimonial <testimonial_id>")
			os.Exit(1)
		}
		id, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("Invalid testimonial ID. Please provide an integer.")
			os.Exit(1)
		}
		if err := approveTestimonial(storageSvc, uint(id)); err != nil {
			log.Fatalf("Error approving testimonial: %v", err)
		}
		fmt.Printf("Testimonial %d has been approved.\n", id)
	case "delete-user":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete-user <user_id>")
			os.Exit(1)
		}
		if err := storageSvc.DeleteUser(os.Args[2]); err != nil {
			log.Fatalf("Error deleting user: %v", err)
		}
		fmt.Printf("User %s deleted, together with their complaints and assignments.\n", os.Args[2])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func createAdmin(s storage.Storage, name, email, phone, aadhaar, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Aadhaar:      aadhaar,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	return s.CreateUser(&user)
}

func approveTestimonial(s storage.Storage, id uint) error {
	testimonial, err := s.GetTestimonialByID(id)
	if err != nil {
		return err
	}
	testimonial.IsApproved = true
	return s.UpdateTestimonial(testimonial)
}
