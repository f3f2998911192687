package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pagemint/pagemint-go/internal/application/services"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/presentation/http/middleware"
)

// BuilderHandlers handles HTTP requests for the visual builder session API.
// Every gesture endpoint maps onto exactly one builder service call.
type BuilderHandlers struct {
	builderService  *services.BuilderService
	fragmentService *services.FragmentService
	logger          *logging.ChanneledLogger
}

// NewBuilderHandlers creates a new builder handlers instance
func NewBuilderHandlers(builderService *services.BuilderService, fragmentService *services.FragmentService, logger *logging.ChanneledLogger) *BuilderHandlers {
	return &BuilderHandlers{
		builderService:  builderService,
		fragmentService: fragmentService,
		logger:          logger,
	}
}

// OpenSessionRequest represents the session open body
type OpenSessionRequest struct {
	PageID string `json:"pageId" binding:"required"`
}

// PostSession handles POST /api/v1/builder/sessions
func (h *BuilderHandlers) PostSession(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.builderService.OpenSession(req.PageID, ownerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"pageId":    session.PageID,
		"elements":  session.Tree.ToElements(),
	})
}

// DeleteSession handles DELETE /api/v1/builder/sessions/:id
func (h *BuilderHandlers) DeleteSession(c *gin.Context) {
	h.builderService.CloseSession(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// GestureRequest represents one builder gesture. Exactly the fields the
// named gesture needs are read; the rest are ignored.
type GestureRequest struct {
	Gesture   string            `json:"gesture" binding:"required"`
	Kind      tree.ElementKind  `json:"kind,omitempty"`
	ElementID string            `json:"elementId,omitempty"`
	TargetID  string            `json:"targetId,omitempty"`
	Position  tree.Position     `json:"position,omitempty"`
	Content   string            `json:"content,omitempty"`
	Style     map[string]string `json:"style,omitempty"`
	Props     map[string]string `json:"props,omitempty"`
	NodeID    string            `json:"nodeId,omitempty"`
}

// PostGesture handles POST /api/v1/builder/sessions/:id/gestures
func (h *BuilderHandlers) PostGesture(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	sessionID := c.Param("id")
	var req GestureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	var elementID string
	var err error
	switch req.Gesture {
	case "add":
		elementID, err = h.builderService.AddElement(sessionID, req.Kind)
	case "insert":
		elementID, err = h.builderService.InsertElement(sessionID, req.TargetID, req.Kind)
	case "select":
		err = h.builderService.SelectElement(sessionID, req.ElementID)
	case "update-content":
		err = h.builderService.UpdateContent(sessionID, req.ElementID, req.Content)
	case "update-style":
		err = h.builderService.UpdateStyle(sessionID, req.ElementID, req.Style)
	case "update-props":
		err = h.builderService.UpdateProps(sessionID, req.ElementID, req.Props)
	case "delete":
		err = h.builderService.DeleteElement(sessionID, req.ElementID)
	case "move":
		err = h.builderService.MoveElement(sessionID, req.ElementID, req.TargetID, req.Position)
	case "drop":
		payload := services.DropPayload{Kind: req.Kind, NodeID: req.NodeID}
		elementID, err = h.builderService.HandleDrop(sessionID, payload, req.TargetID, req.Position)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown gesture"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.builderService.Session(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"elementId":  elementID,
		"selectedId": session.SelectedID,
		"elements":   session.Tree.ToElements(),
	})
}

// PostSave handles POST /api/v1/builder/sessions/:id/save
func (h *BuilderHandlers) PostSave(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, err := h.builderService.Save(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// PreviewRequest represents the live preview body
type PreviewRequest struct {
	ProductID string `json:"productId"`
}

// PostPreview handles POST /api/v1/builder/sessions/:id/preview
// It renders the working tree and pushes the result to preview windows.
func (h *BuilderHandlers) PostPreview(c *gin.Context) {
	if _, ok := middleware.GetUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := h.builderService.Session(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if err := h.fragmentService.BroadcastPreview(session.PageID, session.Tree, req.ProductID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusAccepted)
}
