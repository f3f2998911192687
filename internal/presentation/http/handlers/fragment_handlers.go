package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pagemint/pagemint-go/internal/application/services"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
)

// FragmentHandlers handles HTTP requests for rendered page fragments.
// This is a thin wrapper around FragmentService following the established pattern
type FragmentHandlers struct {
	fragmentService *services.FragmentService
	logger          *logging.ChanneledLogger
}

// NewFragmentHandlers creates a new fragment handlers instance
func NewFragmentHandlers(fragmentService *services.FragmentService, logger *logging.ChanneledLogger) *FragmentHandlers {
	return &FragmentHandlers{
		fragmentService: fragmentService,
		logger:          logger,
	}
}

// GetPageHTML handles GET /api/v1/fragments/pages/:id
// It serves the published render of a page as an HTML document fragment.
func (h *FragmentHandlers) GetPageHTML(c *gin.Context) {
	start := time.Now()

	pageID := c.Param("id")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page ID is required"})
		return
	}
	productID := c.Query("productId")

	page, err := h.fragmentService.RenderPage(pageID, productID, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Render().Info("Page fragment request completed", "pageId", pageID, "duration", time.Since(start))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page.HTML))
}

// GetCompiledPage handles GET /api/v1/fragments/pages/:id/compiled
// It returns the compiled page together with its hydration slots; the
// storefront runtime binds event handlers from the slot list.
func (h *FragmentHandlers) GetCompiledPage(c *gin.Context) {
	pageID := c.Param("id")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page ID is required"})
		return
	}
	productID := c.Query("productId")

	page, err := h.fragmentService.RenderPage(pageID, productID, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"html":  page.HTML,
		"slots": page.Slots,
	})
}
