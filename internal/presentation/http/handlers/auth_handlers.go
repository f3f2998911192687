package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagemint/pagemint-go/internal/application/services"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
)

// AuthHandlers handles HTTP requests for authentication endpoints
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
	}
}

// RegisterRequest represents the signup request body
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Password string `json:"password" binding:"required"`
}

// PostRegister handles POST /api/v1/auth/register
func (h *AuthHandlers) PostRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.authService.Register(req.Email, req.Name, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PostLogin handles POST /api/v1/auth/login
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
