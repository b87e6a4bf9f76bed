package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shulchan-app/shulchan-backend/internal/config"
	"github.com/shulchan-app/shulchan-backend/internal/dto"
	"github.com/shulchan-app/shulchan-backend/internal/models"
)

// AuthService owns credential records and token issuance. It is the identity
// provider of the system: everything downstream only ever sees the subject
// and display claims baked into the access token.
type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	if len(req.Password) < 8 {
		return nil, &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	var existing models.Identity
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	identity := models.Identity{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}

	if err := s.db.Create(&identity).Error; err != nil {
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	return s.generateTokenPair(&identity)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	var identity models.Identity
	if err := s.db.Where("email = ?", email).First(&identity).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(&identity)
}

func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	// Rotate: the presented token is spent either way.
	s.db.Model(&stored).Update("revoked", true)

	var identity models.Identity
	if err := s.db.First(&identity, "id = ?", stored.IdentityID).Error; err != nil {
		return nil, fmt.Errorf("identity not found: %w", err)
	}

	return s.generateTokenPair(&identity)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

// DeleteAccount removes the credential record and its refresh tokens after
// re-verifying the password. The community user row is deleted by the user
// service separately; profiles are never cascaded.
func (s *AuthService) DeleteAccount(identityID uuid.UUID, password string) error {
	var identity models.Identity
	if err := s.db.First(&identity, "id = ?", identityID).Error; err != nil {
		return ErrUserNotFound
	}

	if password == "" {
		return &ValidationError{Field: "password", Reason: "required to delete account"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("identity_id = ?", identityID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&identity).Error
	})
}

func (s *AuthService) generateTokenPair(identity *models.Identity) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(identity)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(identity)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Identity: dto.IdentityResponse{
			ID:    identity.ID,
			Email: identity.Email,
			Name:  identity.Name,
			Image: identity.Image,
		},
	}, nil
}

func (s *AuthService) generateAccessToken(identity *models.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID.String(),
		"email": identity.Email,
		"name":  identity.Name,
		"image": identity.Image,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(identity *models.Identity) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:         uuid.New(),
		IdentityID: identity.ID,
		TokenHash:  hashToken(rawToken),
		ExpiresAt:  time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// ParseIdentityID converts the JWT subject back into the identity UUID.
func ParseIdentityID(subject string) (uuid.UUID, error) {
	id, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Join(ErrUnauthenticated, err)
	}
	return id, nil
}
