package handler

import (
	"errors"
	"net/http"
	"os"
	"regexp"
	"time"

	"nagarseva/backend/internal/config"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	aadhaarRe = regexp.MustCompile(`^\d{12}$`)
)

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("nagarseva-dev-secret")
}

// generateToken issues an HS256 JWT carrying the user's identity and role.
// The jti claim lets logout revoke the token before its natural expiry.
func generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"jti":  uuid.New().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(config.TokenTTL).Unix(),
		"iss":  config.TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// tokenClaims is the parsed identity a verified token carries.
type tokenClaims struct {
	UserID string
	Role   models.Role
	JTI    string
	Expiry time.Time
}

func parseToken(tokenString string) (*tokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || jti == "" {
		return nil, errors.New("missing identity claims")
	}

	parsed := &tokenClaims{
		UserID: sub,
		Role:   models.Role(role),
		JTI:    jti,
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		parsed.Expiry = exp.Time
	}
	return parsed, nil
}

type RegisterInput struct {
	Name            string `form:"name" json:"name" binding:"required"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	Phone           string `form:"phone" json:"phone" binding:"required"`
	Aadhaar         string `form:"aadhaar" json:"aadhaar" binding:"required"`
	Role            string `form:"role" json:"role"`
	Password        string `form:"password" json:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password" binding:"required"`
}

// Register creates a new account. Validation failures come back as field
// messages the form can surface inline.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data", "detail": err.Error()})
		return
	}

	if !phoneRe.MatchString(input.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter a valid 10-digit phone number"})
		return
	}
	if !aadhaarRe.MatchString(input.Aadhaar) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Enter a valid 12-digit Aadhaar number"})
		return
	}
	if len(input.Password) < config.MinPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}
	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	role := models.Role(input.Role)
	if input.Role == "" {
		role = models.RoleCitizen
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	if _, err := h.Storage.GetUserByEmail(input.Email); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if _, err := h.Storage.GetUserByAadhaar(input.Aadhaar); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Aadhaar already registered"})
		return
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Aadhaar:      input.Aadhaar,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := h.Storage.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registered successfully",
		"user_id":  user.ID,
		"redirect": "/login/",
	})
}

type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Login authenticates by email and password. The failure message stays
// deliberately vague so accounts cannot be enumerated here.
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input data"})
		return
	}

	user, err := h.Storage.GetUserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successfully.",
		"token":    token,
		"role":     user.Role,
		"redirect": "/dashboard",
	})
}

// Logout revokes the current token by denylisting its jti until expiry.
func (h *Handler) Logout(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	if err := h.Storage.RevokeToken(claims.JTI, time.Until(claims.Expiry)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "redirect": "/login/"})
}
