// Package services provides application-level orchestration services
package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
	"github.com/pagemint/pagemint-go/internal/domain/repositories"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/security"
)

// BuilderService manages live editing sessions for the visual builder.
// Every editing gesture maps onto exactly one tree operation; the session
// holds the working tree between saves so gestures never touch the store.
type BuilderService struct {
	pageRepo repositories.LandingPageRepository
	fragment *FragmentService
	logger   *logging.ChanneledLogger

	mu       sync.RWMutex
	sessions map[string]*BuilderSession
}

// BuilderSession is one open builder tab editing one page.
type BuilderSession struct {
	ID         string
	PageID     string
	OwnerID    string
	Tree       tree.Tree
	SelectedID string
	OpenedAt   time.Time

	mu sync.Mutex
}

// NewBuilderService creates a new builder service
func NewBuilderService(pageRepo repositories.LandingPageRepository, fragment *FragmentService, logger *logging.ChanneledLogger) *BuilderService {
	return &BuilderService{
		pageRepo: pageRepo,
		fragment: fragment,
		logger:   logger,
		sessions: make(map[string]*BuilderSession),
	}
}

// OpenSession loads a page and starts an editing session on its element tree.
func (s *BuilderService) OpenSession(pageID, ownerID string) (*BuilderSession, error) {
	page, err := s.pageRepo.FindByID(pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %s: %w", pageID, err)
	}
	if page == nil {
		return nil, fmt.Errorf("page %s not found", pageID)
	}
	if page.OwnerID != ownerID {
		return nil, fmt.Errorf("page %s does not belong to this account", pageID)
	}

	session := &BuilderSession{
		ID:       security.GenerateULID(),
		PageID:   page.ID,
		OwnerID:  ownerID,
		Tree:     tree.FromElements(page.Elements),
		OpenedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.logger.Content().Debug("Builder session opened", "sessionId", session.ID, "pageId", pageID)
	return session, nil
}

// Session returns an open session by id.
func (s *BuilderService) Session(sessionID string) (*BuilderSession, error) {
	s.mu.RLock()
	session, exists := s.sessions[sessionID]
	s.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("builder session %s not found", sessionID)
	}
	return session, nil
}

// CloseSession drops a session without saving.
func (s *BuilderService) CloseSession(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// AddElement appends a brand-new element of the given kind at the top level
// and selects it.
func (s *BuilderService) AddElement(sessionID string, kind tree.ElementKind) (string, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return "", err
	}
	if !kind.Known() {
		return "", fmt.Errorf("unknown element kind %q", kind)
	}

	element := tree.NewDefaultElement(kind)

	session.mu.Lock()
	session.Tree = session.Tree.Append(element)
	session.SelectedID = element.ID
	session.mu.Unlock()

	return element.ID, nil
}

// InsertElement creates a brand-new element of the given kind inside a
// container. Dropping onto a non-container leaves the tree unchanged.
func (s *BuilderService) InsertElement(sessionID, containerID string, kind tree.ElementKind) (string, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return "", err
	}
	if !kind.Known() {
		return "", fmt.Errorf("unknown element kind %q", kind)
	}

	element := tree.NewDefaultElement(kind)

	session.mu.Lock()
	next := session.Tree.InsertInto(containerID, element)
	inserted := next.Find(element.ID) != nil
	session.Tree = next
	if inserted {
		session.SelectedID = element.ID
	}
	session.mu.Unlock()

	if !inserted {
		return "", nil
	}
	return element.ID, nil
}

// SelectElement marks an element as selected. Selecting a missing id clears
// the selection.
func (s *BuilderService) SelectElement(sessionID, elementID string) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	if session.Tree.Find(elementID) != nil {
		session.SelectedID = elementID
	} else {
		session.SelectedID = ""
	}
	session.mu.Unlock()
	return nil
}

// UpdateContent replaces the selected element's text content.
func (s *BuilderService) UpdateContent(sessionID, elementID, contentText string) error {
	return s.update(sessionID, elementID, tree.Patch{Content: &contentText})
}

// UpdateStyle shallow-merges style keys into the element.
func (s *BuilderService) UpdateStyle(sessionID, elementID string, style map[string]string) error {
	return s.update(sessionID, elementID, tree.Patch{Style: style})
}

// UpdateProps shallow-merges prop keys into the element.
func (s *BuilderService) UpdateProps(sessionID, elementID string, props map[string]string) error {
	return s.update(sessionID, elementID, tree.Patch{Props: props})
}

func (s *BuilderService) update(sessionID, elementID string, patch tree.Patch) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	session.Tree = session.Tree.Update(elementID, patch)
	session.mu.Unlock()
	return nil
}

// DeleteElement removes an element and its subtree. If the selection was
// inside the removed subtree it is cleared.
func (s *BuilderService) DeleteElement(sessionID, elementID string) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	session.Tree = session.Tree.Remove(elementID)
	if session.SelectedID != "" && session.Tree.Find(session.SelectedID) == nil {
		session.SelectedID = ""
	}
	session.mu.Unlock()
	return nil
}

// MoveElement relocates an existing element relative to a target.
func (s *BuilderService) MoveElement(sessionID, dragID, targetID string, position tree.Position) error {
	session, err := s.Session(sessionID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	session.Tree = session.Tree.Move(dragID, targetID, position)
	session.mu.Unlock()
	return nil
}

// DropPayload describes what was dropped onto the canvas: either a brand-new
// element kind from the palette, or an existing node id being dragged.
type DropPayload struct {
	Kind   tree.ElementKind `json:"kind,omitempty"`
	NodeID string           `json:"nodeId,omitempty"`
}

// HandleDrop routes a canvas drop: palette payloads create an element inside
// the target container, existing nodes are moved relative to the target.
func (s *BuilderService) HandleDrop(sessionID string, payload DropPayload, targetID string, position tree.Position) (string, error) {
	if payload.NodeID != "" {
		if err := s.MoveElement(sessionID, payload.NodeID, targetID, position); err != nil {
			return "", err
		}
		return payload.NodeID, nil
	}

	if position == tree.PositionInside {
		return s.InsertElement(sessionID, targetID, payload.Kind)
	}
	return s.AddElement(sessionID, payload.Kind)
}

// Save writes the session's working tree back onto the page and invalidates
// every fragment rendered from it.
func (s *BuilderService) Save(sessionID string) (*content.LandingPage, error) {
	session, err := s.Session(sessionID)
	if err != nil {
		return nil, err
	}

	page, err := s.pageRepo.FindByID(session.PageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %s: %w", session.PageID, err)
	}
	if page == nil {
		return nil, fmt.Errorf("page %s no longer exists", session.PageID)
	}

	session.mu.Lock()
	page.Elements = session.Tree.ToElements()
	session.mu.Unlock()

	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to save page %s: %w", page.ID, err)
	}

	s.fragment.InvalidatePage(page.ID)
	s.logger.Content().Info("Builder session saved", "sessionId", sessionID, "pageId", page.ID)
	return page, nil
}
