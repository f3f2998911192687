package services

import (
	"fmt"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
	"github.com/pagemint/pagemint-go/internal/domain/entities/tree"
	"github.com/pagemint/pagemint-go/internal/domain/repositories"
	"github.com/pagemint/pagemint-go/internal/infrastructure/caching"
	"github.com/pagemint/pagemint-go/internal/infrastructure/messaging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/performance"
	"github.com/pagemint/pagemint-go/internal/presentation/templates"
)

// FragmentService orchestrates page rendering: visual and drag-drop pages go
// through the element renderers, code pages through the template compiler.
// Bare renders (no form snapshot) are cached per page and invalidated when
// the page or its product changes.
type FragmentService struct {
	pageRepo    repositories.LandingPageRepository
	productRepo repositories.ProductRepository
	fragments   *caching.FragmentStore
	broadcaster *messaging.PreviewBroadcaster
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewFragmentService creates a new fragment service
func NewFragmentService(
	pageRepo repositories.LandingPageRepository,
	productRepo repositories.ProductRepository,
	fragments *caching.FragmentStore,
	broadcaster *messaging.PreviewBroadcaster,
	logger *logging.ChanneledLogger,
	perfTracker *performance.Tracker,
) *FragmentService {
	return &FragmentService{
		pageRepo:    pageRepo,
		productRepo: productRepo,
		fragments:   fragments,
		broadcaster: broadcaster,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// RenderPage produces the full HTML for a stored page against a product.
// A nil form renders the bare page and is served from the fragment cache.
func (s *FragmentService) RenderPage(pageID, productID string, form *rendering.FormState) (*rendering.CompiledPage, error) {
	marker := s.perfTracker.StartOperation("render:page")
	defer s.perfTracker.CompleteOperation(marker)
	marker.AddMetadata("pageId", pageID)

	if form == nil {
		if cached, hit := s.fragments.Get(pageID, s.variantKey(productID)); hit {
			marker.AddCacheHit()
			return &rendering.CompiledPage{HTML: cached.HTML}, nil
		}
		marker.AddCacheMiss()
	}

	page, err := s.pageRepo.FindByID(pageID)
	if err != nil {
		marker.SetError(err)
		return nil, fmt.Errorf("failed to load page %s: %w", pageID, err)
	}
	if page == nil {
		return nil, fmt.Errorf("page %s not found", pageID)
	}

	product, err := s.loadProduct(productID)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	result, err := s.renderLoaded(page, product, form)
	if err != nil {
		marker.SetError(err)
		return nil, err
	}

	// Code-mode pages carry hydration slots alongside their HTML, so only
	// tree-rendered pages are fragment-cacheable.
	if form == nil && page.Mode != content.ModeCode {
		deps := []string{pageID}
		if product != nil {
			deps = append(deps, product.ID)
		}
		s.fragments.Set(pageID, s.variantKey(productID), result.HTML, deps)
	}

	return result, nil
}

// RenderTree renders a working element tree directly, bypassing the store
// and the cache. The builder uses this for live previews of unsaved edits.
func (s *FragmentService) RenderTree(t tree.Tree, productID string, form *rendering.FormState) (string, error) {
	marker := s.perfTracker.StartOperation("render:tree")
	defer s.perfTracker.CompleteOperation(marker)

	product, err := s.loadProduct(productID)
	if err != nil {
		marker.SetError(err)
		return "", err
	}

	ctx := rendering.NewRenderContext(t, product, form)
	return templates.NewNodeRenderer(ctx).RenderPage(), nil
}

// BroadcastPreview renders a working tree and pushes the result to every
// preview window watching the page.
func (s *FragmentService) BroadcastPreview(pageID string, t tree.Tree, productID string) error {
	html, err := s.RenderTree(t, productID, nil)
	if err != nil {
		return err
	}
	s.broadcaster.BroadcastPageUpdate(pageID, html)
	return nil
}

// InvalidatePage drops every cached fragment of a page.
func (s *FragmentService) InvalidatePage(pageID string) {
	s.fragments.InvalidatePage(pageID)
}

// InvalidateProduct drops every fragment rendered against a product.
func (s *FragmentService) InvalidateProduct(productID string) {
	s.fragments.InvalidateByDependency(productID)
}

// renderLoaded routes by authoring mode: code pages compile their HTML
// template, visual and drag-drop pages render their element tree.
func (s *FragmentService) renderLoaded(page *content.LandingPage, product *content.Product, form *rendering.FormState) (*rendering.CompiledPage, error) {
	if page.Mode == content.ModeCode {
		compiler := templates.NewTemplateCompiler(product, form)
		return compiler.Compile(page.HTMLCode), nil
	}

	t := tree.FromElements(page.Elements)
	ctx := rendering.NewRenderContext(t, product, form)
	html := templates.NewNodeRenderer(ctx).RenderPage()
	return &rendering.CompiledPage{HTML: html}, nil
}

func (s *FragmentService) loadProduct(productID string) (*content.Product, error) {
	if productID == "" {
		return nil, nil
	}
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	return product, nil
}

func (s *FragmentService) variantKey(productID string) string {
	if productID == "" {
		return ""
	}
	return "product-" + productID
}
