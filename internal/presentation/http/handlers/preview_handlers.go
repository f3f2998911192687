package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pagemint/pagemint-go/internal/infrastructure/messaging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
)

// PreviewHandlers handles websocket connections for live page previews
type PreviewHandlers struct {
	broadcaster *messaging.PreviewBroadcaster
	logger      *logging.ChanneledLogger
	upgrader    websocket.Upgrader
}

// NewPreviewHandlers creates a new preview handlers instance
func NewPreviewHandlers(broadcaster *messaging.PreviewBroadcaster, logger *logging.ChanneledLogger) *PreviewHandlers {
	return &PreviewHandlers{
		broadcaster: broadcaster,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The CORS middleware already restricts origins for the API; the
			// websocket endpoint accepts the same local builder origins.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// GetPreviewSocket handles GET /api/v1/preview/:pageId/ws
func (h *PreviewHandlers) GetPreviewSocket(c *gin.Context) {
	pageID := c.Param("pageId")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page ID is required"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Preview().Error("Websocket upgrade failed", "error", err.Error())
		return
	}

	client := &messaging.PreviewClient{
		Conn:   conn,
		PageID: pageID,
		Send:   make(chan []byte, 16),
	}
	if !h.broadcaster.Register(client) {
		conn.Close()
		return
	}

	// Read pump: preview windows never send data, but reading detects
	// disconnects and processes control frames.
	go func() {
		defer func() {
			h.broadcaster.Unregister(client)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
