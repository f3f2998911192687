package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
	"github.com/pagemint/pagemint-go/internal/domain/repositories"
	"github.com/pagemint/pagemint-go/internal/infrastructure/email"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/security"
)

// Order lifecycle statuses. New orders always start as StatusNew.
const (
	StatusNew       = "new"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDone      = "done"
	StatusCanceled  = "canceled"
)

var statusTransitions = map[string][]string{
	StatusNew:       {StatusConfirmed, StatusCanceled},
	StatusConfirmed: {StatusShipped, StatusCanceled},
	StatusShipped:   {StatusDone, StatusCanceled},
}

// OrderService handles order intake from published pages and order
// management for sellers.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	emailSvc    email.Service
	logger      *logging.ChanneledLogger
}

// NewOrderService creates a new order service. A nil email service disables
// seller notifications.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	emailSvc email.Service,
	logger *logging.ChanneledLogger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		logger:      logger,
	}
}

// PlaceOrder validates a submit event from a published page and stores the
// resulting order. Full name and phone are required; attribute selections
// must name real options of the product.
func (s *OrderService) PlaceOrder(productID, pageID string, submit rendering.SubmitEvent) (*content.Order, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s: %w", productID, err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s not found", productID)
	}

	if strings.TrimSpace(submit.Fields.FullName) == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if strings.TrimSpace(submit.Fields.Phone) == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if err := validateSelections(product, submit.Attributes); err != nil {
		return nil, err
	}

	order := &content.Order{
		ID:         security.GenerateULID(),
		ProductID:  product.ID,
		FullName:   strings.TrimSpace(submit.Fields.FullName),
		Phone:      strings.TrimSpace(submit.Fields.Phone),
		City:       strings.TrimSpace(submit.Fields.City),
		Address:    strings.TrimSpace(submit.Fields.Address),
		Attributes: submit.Attributes,
		Status:     StatusNew,
		Created:    time.Now().UTC(),
	}
	if pageID != "" {
		order.PageID = &pageID
	}

	if err := s.orderRepo.Store(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	s.logger.Order().Info("Order placed", "orderId", order.ID, "productId", product.ID)
	s.notifySeller(order, product)
	return order, nil
}

// ListForOwner returns every order placed against the owner's products.
func (s *OrderService) ListForOwner(ownerID string) ([]*content.Order, error) {
	orders, err := s.orderRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus advances an order along the allowed status transitions.
func (s *OrderService) UpdateStatus(orderID, ownerID, status string) error {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	if order == nil {
		return fmt.Errorf("order %s not found", orderID)
	}

	product, err := s.productRepo.FindByID(order.ProductID)
	if err != nil {
		return fmt.Errorf("failed to load product for order %s: %w", orderID, err)
	}
	if product == nil || product.OwnerID != ownerID {
		return fmt.Errorf("order %s not found", orderID)
	}

	allowed := false
	for _, next := range statusTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("cannot move order from %s to %s", order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return fmt.Errorf("failed to update order %s: %w", orderID, err)
	}

	s.logger.Order().Info("Order status updated", "orderId", orderID, "status", status)
	return nil
}

// notifySeller emails the product owner about the new order. Notification
// failures are logged, never surfaced to the buyer.
func (s *OrderService) notifySeller(order *content.Order, product *content.Product) {
	if s.emailSvc == nil {
		return
	}

	seller, err := s.userRepo.FindByID(product.OwnerID)
	if err != nil || seller == nil {
		s.logger.Order().Warn("Could not resolve seller for order notification",
			"orderId", order.ID, "ownerId", product.OwnerID)
		return
	}

	go func() {
		if err := s.emailSvc.SendOrderNotificationEmail(seller.Email, order, product); err != nil {
			s.logger.Order().Error("Order notification email failed",
				"orderId", order.ID, "error", err.Error())
		}
	}()
}

func validateSelections(product *content.Product, selections map[string]string) error {
	for name, value := range selections {
		var attribute *content.ProductAttribute
		for i := range product.Attributes {
			if product.Attributes[i].Name == name {
				attribute = &product.Attributes[i]
				break
			}
		}
		if attribute == nil {
			return fmt.Errorf("unknown attribute %q", name)
		}

		valid := false
		for _, option := range attribute.Options {
			if option == value {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid option %q for attribute %q", value, name)
		}
	}
	return nil
}
