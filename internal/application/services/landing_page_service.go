package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
	"github.com/pagemint/pagemint-go/internal/domain/repositories"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/security"
)

// LandingPageService handles landing page CRUD and mode switching.
type LandingPageService struct {
	pageRepo repositories.LandingPageRepository
	fragment *FragmentService
	logger   *logging.ChanneledLogger
}

// NewLandingPageService creates a new landing page service
func NewLandingPageService(pageRepo repositories.LandingPageRepository, fragment *FragmentService, logger *logging.ChanneledLogger) *LandingPageService {
	return &LandingPageService{
		pageRepo: pageRepo,
		fragment: fragment,
		logger:   logger,
	}
}

// Create stores a new page. Visual pages start with a single empty section.
func (s *LandingPageService) Create(ownerID, name string, mode content.Mode) (*content.LandingPage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("page name is required")
	}
	if mode == "" {
		mode = content.ModeVisual
	}

	page := &content.LandingPage{
		ID:      security.GenerateULID(),
		OwnerID: ownerID,
		Name:    name,
		Mode:    mode,
		Created: time.Now().UTC(),
	}
	if mode != content.ModeCode {
		page.Elements = []tree.PageElement{tree.NewDefaultElement(tree.KindSection)}
	}

	if err := s.pageRepo.Store(page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	s.logger.Content().Info("Landing page created", "pageId", page.ID, "mode", string(mode))
	return page, nil
}

// Get loads a page owned by the given account.
func (s *LandingPageService) Get(pageID, ownerID string) (*content.LandingPage, error) {
	page, err := s.pageRepo.FindByID(pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %s: %w", pageID, err)
	}
	if page == nil || page.OwnerID != ownerID {
		return nil, nil
	}
	return page, nil
}

// List returns all pages owned by the account.
func (s *LandingPageService) List(ownerID string) ([]*content.LandingPage, error) {
	pages, err := s.pageRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return pages, nil
}

// UpdateRequest carries the mutable page fields. Nil members are unchanged.
type UpdateRequest struct {
	Name     *string                        `json:"name,omitempty"`
	Mode     *content.Mode                  `json:"mode,omitempty"`
	Elements []tree.PageElement             `json:"elements,omitempty"`
	Layout   map[string]content.LayoutEntry `json:"layout,omitempty"`
	HTMLCode *string                        `json:"htmlCode,omitempty"`
}

// Update applies the request to the page and invalidates its fragments.
func (s *LandingPageService) Update(pageID, ownerID string, req UpdateRequest) (*content.LandingPage, error) {
	page, err := s.Get(pageID, ownerID)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("page %s not found", pageID)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("page name is required")
		}
		page.Name = name
	}
	if req.Mode != nil {
		page.Mode = *req.Mode
	}
	if req.Elements != nil {
		page.Elements = req.Elements
	}
	if req.Layout != nil {
		page.Layout = req.Layout
	}
	if req.HTMLCode != nil {
		page.HTMLCode = *req.HTMLCode
	}

	if err := s.pageRepo.Update(page); err != nil {
		return nil, fmt.Errorf("failed to update page %s: %w", pageID, err)
	}

	s.fragment.InvalidatePage(pageID)
	return page, nil
}

// Delete removes a page and its cached fragments.
func (s *LandingPageService) Delete(pageID, ownerID string) error {
	page, err := s.Get(pageID, ownerID)
	if err != nil {
		return err
	}
	if page == nil {
		return fmt.Errorf("page %s not found", pageID)
	}

	if err := s.pageRepo.Delete(pageID); err != nil {
		return fmt.Errorf("failed to delete page %s: %w", pageID, err)
	}

	s.fragment.InvalidatePage(pageID)
	s.logger.Content().Info("Landing page deleted", "pageId", pageID)
	return nil
}
