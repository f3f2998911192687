package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/repositories"
	"github.com/pagemint/pagemint-go/internal/infrastructure/media"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/security"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// ProductService handles product CRUD and media uploads.
type ProductService struct {
	productRepo repositories.ProductRepository
	processor   *media.ImageProcessor
	fragment    *FragmentService
	logger      *logging.ChanneledLogger
}

// NewProductService creates a new product service
func NewProductService(productRepo repositories.ProductRepository, processor *media.ImageProcessor, fragment *FragmentService, logger *logging.ChanneledLogger) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		processor:   processor,
		fragment:    fragment,
		logger:      logger,
	}
}

// Create validates and stores a new product.
func (s *ProductService) Create(ownerID string, product *content.Product) (*content.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	product.ID = security.GenerateULID()
	product.OwnerID = ownerID
	product.Created = time.Now().UTC()
	if product.Currency == "" {
		product.Currency = config.DefaultCurrency
	}

	if err := s.productRepo.Store(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Content().Info("Product created", "productId", product.ID)
	return product, nil
}

// Get loads a product owned by the given account.
func (s *ProductService) Get(productID, ownerID string) (*content.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	if product == nil || product.OwnerID != ownerID {
		return nil, nil
	}
	return product, nil
}

// List returns all products owned by the account.
func (s *ProductService) List(ownerID string) ([]*content.Product, error) {
	products, err := s.productRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Update replaces the product's mutable fields and invalidates every page
// fragment rendered against it.
func (s *ProductService) Update(ownerID string, product *content.Product) (*content.Product, error) {
	existing, err := s.Get(product.ID, ownerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("product %s not found", product.ID)
	}
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	product.OwnerID = existing.OwnerID
	product.Created = existing.Created

	if err := s.productRepo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}

	s.fragment.InvalidateProduct(product.ID)
	return product, nil
}

// Delete removes a product and invalidates dependent fragments.
func (s *ProductService) Delete(productID, ownerID string) error {
	existing, err := s.Get(productID, ownerID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("product %s not found", productID)
	}

	if err := s.productRepo.Delete(productID); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}

	s.fragment.InvalidateProduct(productID)
	s.logger.Content().Info("Product deleted", "productId", productID)
	return nil
}

// UploadImage processes a base64 product image, generates thumbnails, and
// appends the stored path to the product's image list.
func (s *ProductService) UploadImage(productID, ownerID, base64Data string) (string, error) {
	product, err := s.Get(productID, ownerID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", fmt.Errorf("product %s not found", productID)
	}

	originalPath, thumbnails, err := s.processor.ProcessProductImageWithThumbnails(base64Data, productID)
	if err != nil {
		return "", fmt.Errorf("failed to process product image: %w", err)
	}
	s.logger.Media().Info("Product image stored",
		"productId", productID, "path", originalPath, "thumbnails", len(thumbnails))

	product.Images = append(product.Images, originalPath)
	if err := s.productRepo.Update(product); err != nil {
		return "", fmt.Errorf("failed to attach image to product %s: %w", productID, err)
	}

	s.fragment.InvalidateProduct(productID)
	return originalPath, nil
}

func validateProduct(product *content.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}
	if product.Price < 0 {
		return fmt.Errorf("product price must not be negative")
	}
	if product.RegularPrice != nil && *product.RegularPrice < 0 {
		return fmt.Errorf("regular price must not be negative")
	}
	for _, attribute := range product.Attributes {
		if strings.TrimSpace(attribute.Name) == "" {
			return fmt.Errorf("attribute name is required")
		}
		if len(attribute.Options) == 0 {
			return fmt.Errorf("attribute %q needs at least one option", attribute.Name)
		}
	}
	for _, review := range product.Reviews {
		if review.Rating < 1 || review.Rating > 5 {
			return fmt.Errorf("review rating must be between 1 and 5")
		}
	}
	return nil
}
