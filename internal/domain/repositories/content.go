// Package repositories defines the repository interfaces for content entities.
// These repositories abstract the data persistence details, ensuring the core
// application is clean and decoupled from the database.
package repositories

import (
	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
)

type LandingPageRepository interface {
	FindByID(id string) (*content.LandingPage, error)
	FindByOwner(ownerID string) ([]*content.LandingPage, error)
	Store(page *content.LandingPage) error
	Update(page *content.LandingPage) error
	Delete(id string) error
}

type ProductRepository interface {
	FindByID(id string) (*content.Product, error)
	FindByOwner(ownerID string) ([]*content.Product, error)
	Store(product *content.Product) error
	Update(product *content.Product) error
	Delete(id string) error
}

type OrderRepository interface {
	FindByID(id string) (*content.Order, error)
	FindByProduct(productID string) ([]*content.Order, error)
	FindByOwner(ownerID string) ([]*content.Order, error)
	Store(order *content.Order) error
	UpdateStatus(id, status string) error
}

type UserRepository interface {
	FindByID(id string) (*content.SellerUser, error)
	FindByEmail(email string) (*content.SellerUser, error)
	Store(user *content.SellerUser) error
}
