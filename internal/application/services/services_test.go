package services

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/infrastructure/caching"
	"github.com/pagemint/pagemint-go/internal/infrastructure/messaging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/performance"
	"github.com/pagemint/pagemint-go/pkg/config"
)

func TestMain(m *testing.M) {
	config.JWTSecret = "test-secret"
	config.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

// In-memory repository fakes shared by the service tests.

type fakePageRepo struct {
	pages     map[string]*content.LandingPage
	findCalls int
	updated   []*content.LandingPage
}

func newFakePageRepo(pages ...*content.LandingPage) *fakePageRepo {
	repo := &fakePageRepo{pages: map[string]*content.LandingPage{}}
	for _, page := range pages {
		repo.pages[page.ID] = page
	}
	return repo
}

func (r *fakePageRepo) FindByID(id string) (*content.LandingPage, error) {
	r.findCalls++
	return r.pages[id], nil
}

func (r *fakePageRepo) FindByOwner(ownerID string) ([]*content.LandingPage, error) {
	var owned []*content.LandingPage
	for _, page := range r.pages {
		if page.OwnerID == ownerID {
			owned = append(owned, page)
		}
	}
	return owned, nil
}

func (r *fakePageRepo) Store(page *content.LandingPage) error {
	r.pages[page.ID] = page
	return nil
}

func (r *fakePageRepo) Update(page *content.LandingPage) error {
	r.pages[page.ID] = page
	r.updated = append(r.updated, page)
	return nil
}

func (r *fakePageRepo) Delete(id string) error {
	delete(r.pages, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*content.Product
}

func newFakeProductRepo(products ...*content.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: map[string]*content.Product{}}
	for _, product := range products {
		repo.products[product.ID] = product
	}
	return repo
}

func (r *fakeProductRepo) FindByID(id string) (*content.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) FindByOwner(ownerID string) ([]*content.Product, error) {
	var owned []*content.Product
	for _, product := range r.products {
		if product.OwnerID == ownerID {
			owned = append(owned, product)
		}
	}
	return owned, nil
}

func (r *fakeProductRepo) Store(product *content.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Update(product *content.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeOrderRepo struct {
	orders        map[string]*content.Order
	statusUpdates map[string]string
}

func newFakeOrderRepo(orders ...*content.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{
		orders:        map[string]*content.Order{},
		statusUpdates: map[string]string{},
	}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return repo
}

func (r *fakeOrderRepo) FindByID(id string) (*content.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) FindByProduct(productID string) ([]*content.Order, error) {
	var matched []*content.Order
	for _, order := range r.orders {
		if order.ProductID == productID {
			matched = append(matched, order)
		}
	}
	return matched, nil
}

func (r *fakeOrderRepo) FindByOwner(ownerID string) ([]*content.Order, error) {
	var all []*content.Order
	for _, order := range r.orders {
		all = append(all, order)
	}
	return all, nil
}

func (r *fakeOrderRepo) Store(order *content.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status string) error {
	r.statusUpdates[id] = status
	if order, ok := r.orders[id]; ok {
		order.Status = status
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*content.SellerUser
}

func newFakeUserRepo(users ...*content.SellerUser) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*content.SellerUser{}}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) FindByID(id string) (*content.SellerUser, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*content.SellerUser, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Store(user *content.SellerUser) error {
	r.users[user.ID] = user
	return nil
}

// newTestLogger builds a console-only logger that stays quiet below errors.
func newTestLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: true,
		DefaultLevel:    slog.LevelError,
		ChannelLevels:   map[logging.Channel]slog.Level{},
	})
	require.NoError(t, err)
	return logger
}

func newTestFragmentService(t *testing.T, pageRepo *fakePageRepo, productRepo *fakeProductRepo) *FragmentService {
	t.Helper()
	logger := newTestLogger(t)
	return NewFragmentService(
		pageRepo,
		productRepo,
		caching.NewFragmentStore(time.Minute),
		messaging.NewPreviewBroadcaster(logger, time.Second, 4),
		logger,
		performance.NewTracker(nil),
	)
}
