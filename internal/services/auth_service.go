// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/highgrip/storefront-backend/internal/config"
	"github.com/highgrip/storefront-backend/internal/models"
	"github.com/highgrip/storefront-backend/internal/utils"
)

type AuthService struct {
	db     *gorm.DB
	config *config.Config
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		config: cfg,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var existing models.User
	err := s.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error
	if err == nil {
		return nil, errors.New("user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, errors.New("invalid credentials")
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login_at", &now)
	user.LastLoginAt = &now

	return s.issueToken(&user)
}

func (s *AuthService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateJWT(user.ID, user.Username, user.IsAdmin, s.config.JWT.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  user,
	}, nil
}
