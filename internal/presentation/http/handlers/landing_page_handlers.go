package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagemint/pagemint-go/internal/application/services"
	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/presentation/http/middleware"
)

// LandingPageHandlers handles HTTP requests for landing page endpoints
type LandingPageHandlers struct {
	pageService *services.LandingPageService
	logger      *logging.ChanneledLogger
}

// NewLandingPageHandlers creates a new landing page handlers instance
func NewLandingPageHandlers(pageService *services.LandingPageService, logger *logging.ChanneledLogger) *LandingPageHandlers {
	return &LandingPageHandlers{
		pageService: pageService,
		logger:      logger,
	}
}

// CreatePageRequest represents the page creation request body
type CreatePageRequest struct {
	Name string       `json:"name" binding:"required"`
	Mode content.Mode `json:"mode"`
}

// PostPage handles POST /api/v1/pages
func (h *LandingPageHandlers) PostPage(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	page, err := h.pageService.Create(ownerID, req.Name, req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, page)
}

// GetPages handles GET /api/v1/pages
func (h *LandingPageHandlers) GetPages(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	pages, err := h.pageService.List(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pages)
}

// GetPage handles GET /api/v1/pages/:id
func (h *LandingPageHandlers) GetPage(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, err := h.pageService.Get(c.Param("id"), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// PutPage handles PUT /api/v1/pages/:id
func (h *LandingPageHandlers) PutPage(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req services.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	page, err := h.pageService.Update(c.Param("id"), ownerID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// DeletePage handles DELETE /api/v1/pages/:id
func (h *LandingPageHandlers) DeletePage(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := h.pageService.Delete(c.Param("id"), ownerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
