package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/punjabi-rishtey/admin-api/internal/config"
	"github.com/punjabi-rishtey/admin-api/internal/dto"
	"github.com/punjabi-rishtey/admin-api/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Login authenticates a console operator and issues a signed access token.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var admin models.Admin
	if err := s.db.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateAccessToken(&admin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: token,
		Admin: dto.AdminResponse{
			ID:    admin.ID,
			Name:  admin.Name,
			Email: admin.Email,
		},
	}, nil
}

// ChangeUserPassword sets a new password on a user account. This is the
// operator-driven reset; the user is not consulted.
func (s *AuthService) ChangeUserPassword(userID uuid.UUID, newPassword string) error {
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&user).Update("password", string(hash)).Error
}

// SeedAdmin creates the bootstrap operator account when the admins table is
// empty and credentials are configured.
func (s *AuthService) SeedAdmin() error {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := s.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.Admin{
		ID:       uuid.New(),
		Name:     "Administrator",
		Email:    s.cfg.AdminEmail,
		Password: string(hash),
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	slog.Info("bootstrap admin created", "email", admin.Email)
	return nil
}

func (s *AuthService) generateAccessToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"sub":   admin.ID.String(),
		"email": admin.Email,
		"role":  "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
