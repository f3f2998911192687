package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/repositories"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/security"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// AuthService handles seller authentication workflows and JWT operations
type AuthService struct {
	userRepo repositories.UserRepository
	logger   *logging.ChanneledLogger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repositories.UserRepository, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token   string              `json:"token"`
	User    *content.SellerUser `json:"user,omitempty"`
	Success bool                `json:"success"`
	Error   string              `json:"error,omitempty"`
}

// Register creates a new seller account and returns a signed token.
func (a *AuthService) Register(email, name, password string) (*AuthResult, error) {
	if !config.AllowSignup {
		return &AuthResult{Success: false, Error: "signup is disabled"}, nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return &AuthResult{Success: false, Error: "a valid email is required"}, nil
	}
	if len(password) < 8 {
		return &AuthResult{Success: false, Error: "password must be at least 8 characters"}, nil
	}

	existing, err := a.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		a.logger.LogAuthOperation("register", email, false)
		return &AuthResult{Success: false, Error: "an account with this email already exists"}, nil
	}

	hash, err := security.HashPassword(password, config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &content.SellerUser{
		ID:           security.GenerateULID(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Created:      time.Now().UTC(),
	}
	if err := a.userRepo.Store(user); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	token, err := security.GenerateSellerToken(user.ID, user.Email, config.JWTSecret, config.SessionTokenTTL)
	if err != nil {
		return nil, err
	}

	a.logger.LogAuthOperation("register", user.ID, true)
	return &AuthResult{Token: token, User: user, Success: true}, nil
}

// Login verifies credentials and returns a signed token.
func (a *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := a.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if user == nil || !security.VerifyPassword(user.PasswordHash, password) {
		a.logger.LogAuthOperation("login", email, false)
		return &AuthResult{Success: false, Error: "invalid email or password"}, nil
	}

	token, err := security.GenerateSellerToken(user.ID, user.Email, config.JWTSecret, config.SessionTokenTTL)
	if err != nil {
		return nil, err
	}

	a.logger.LogAuthOperation("login", user.ID, true)
	return &AuthResult{Token: token, User: user, Success: true}, nil
}

// ValidateToken checks a bearer token and returns the seller id it names.
func (a *AuthService) ValidateToken(tokenString string) (string, error) {
	claims, err := security.ValidateJWT(tokenString, config.JWTSecret)
	if err != nil {
		return "", err
	}
	userID, _, err := security.SellerFromClaims(claims)
	return userID, err
}

// GenerateJWT signs arbitrary claims; used by tests and tooling.
func (a *AuthService) GenerateJWT(claims jwt.MapClaims, jwtSecret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}
