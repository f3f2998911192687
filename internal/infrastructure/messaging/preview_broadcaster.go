// Package messaging provides the live preview broadcaster.
package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
)

// PreviewClient represents a single connected preview window.
type PreviewClient struct {
	Conn   *websocket.Conn
	PageID string
	Send   chan []byte
}

// PreviewUpdate is the payload pushed to preview windows whenever the page
// they show is re-rendered.
type PreviewUpdate struct {
	PageID string `json:"pageId"`
	HTML   string `json:"html"`
	At     string `json:"at"`
}

// PreviewBroadcaster manages page-scoped preview connections and pushes
// fresh renders to every window watching a page.
type PreviewBroadcaster struct {
	pageClients map[string]map[*PreviewClient]bool
	mu          sync.RWMutex
	logger      *logging.ChanneledLogger

	writeTimeout time.Duration
	maxClients   int
}

// NewPreviewBroadcaster creates a broadcaster instance.
func NewPreviewBroadcaster(logger *logging.ChanneledLogger, writeTimeout time.Duration, maxClients int) *PreviewBroadcaster {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	if maxClients <= 0 {
		maxClients = 64
	}
	return &PreviewBroadcaster{
		pageClients:  make(map[string]map[*PreviewClient]bool),
		logger:       logger,
		writeTimeout: writeTimeout,
		maxClients:   maxClients,
	}
}

// Register adds a preview client and starts its write pump. Registration
// fails when the connection limit is reached.
func (b *PreviewBroadcaster) Register(client *PreviewClient) bool {
	b.mu.Lock()
	total := 0
	for _, clients := range b.pageClients {
		total += len(clients)
	}
	if total >= b.maxClients {
		b.mu.Unlock()
		b.logger.Preview().Warn("Preview connection limit reached", "limit", b.maxClients)
		return false
	}

	if b.pageClients[client.PageID] == nil {
		b.pageClients[client.PageID] = make(map[*PreviewClient]bool)
	}
	b.pageClients[client.PageID][client] = true
	b.mu.Unlock()

	b.logger.Preview().Debug("Preview client registered", "pageId", client.PageID)
	go b.writePump(client)
	return true
}

// Unregister removes a preview client and closes its channel.
func (b *PreviewBroadcaster) Unregister(client *PreviewClient) {
	b.mu.Lock()
	if clients, exists := b.pageClients[client.PageID]; exists {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client.Send)
		}
		if len(clients) == 0 {
			delete(b.pageClients, client.PageID)
		}
	}
	b.mu.Unlock()

	b.logger.Preview().Debug("Preview client unregistered", "pageId", client.PageID)
}

// BroadcastPageUpdate pushes a fresh render to every window watching the page.
func (b *PreviewBroadcaster) BroadcastPageUpdate(pageID, html string) {
	payload, err := json.Marshal(PreviewUpdate{
		PageID: pageID,
		HTML:   html,
		At:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		b.logger.Preview().Error("Failed to marshal preview update", "error", err.Error(), "pageId", pageID)
		return
	}

	// Sends happen under the read lock; Unregister closes channels under
	// the write lock, so a close can never land mid-broadcast.
	b.mu.RLock()
	watching := len(b.pageClients[pageID])
	var slow []*PreviewClient
	for client := range b.pageClients[pageID] {
		select {
		case client.Send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	b.mu.RUnlock()

	// Slow consumers are dropped rather than blocked on. Unregister takes
	// the write lock, so it has to run outside the read section.
	for _, client := range slow {
		b.Unregister(client)
		client.Conn.Close()
	}

	if watching > 0 {
		b.logger.Preview().Debug("Preview update broadcast", "pageId", pageID, "clientCount", watching)
	}
}

// ClientCount reports how many windows are watching a page.
func (b *PreviewBroadcaster) ClientCount(pageID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pageClients[pageID])
}

// writePump drains the client's send channel onto its websocket connection.
func (b *PreviewBroadcaster) writePump(client *PreviewClient) {
	defer client.Conn.Close()

	for payload := range client.Send {
		client.Conn.SetWriteDeadline(time.Now().Add(b.writeTimeout))
		if err := client.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			b.logger.Preview().Debug("Preview write failed, dropping client",
				"pageId", client.PageID, "error", err.Error())
			b.Unregister(client)
			return
		}
	}
}
