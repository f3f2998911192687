// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/pagemint/pagemint-go/internal/application/services"
	"github.com/pagemint/pagemint-go/internal/domain/repositories"
	"github.com/pagemint/pagemint-go/internal/infrastructure/caching"
	"github.com/pagemint/pagemint-go/internal/infrastructure/email"
	"github.com/pagemint/pagemint-go/internal/infrastructure/media"
	"github.com/pagemint/pagemint-go/internal/infrastructure/messaging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/logging"
	"github.com/pagemint/pagemint-go/internal/infrastructure/observability/performance"
	persistencecontent "github.com/pagemint/pagemint-go/internal/infrastructure/persistence/content"
	"github.com/pagemint/pagemint-go/internal/infrastructure/persistence/database"
	persistenceuser "github.com/pagemint/pagemint-go/internal/infrastructure/persistence/user"
	"github.com/pagemint/pagemint-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services
	AuthService        *services.AuthService
	LandingPageService *services.LandingPageService
	ProductService     *services.ProductService
	OrderService       *services.OrderService
	BuilderService     *services.BuilderService
	FragmentService    *services.FragmentService

	// Repositories
	PageRepo    repositories.LandingPageRepository
	ProductRepo repositories.ProductRepository
	OrderRepo   repositories.OrderRepository
	UserRepo    repositories.UserRepository

	// Infrastructure
	DB                 *database.DB
	Logger             *logging.ChanneledLogger
	PerfTracker        *performance.Tracker
	Fragments          *caching.FragmentStore
	PreviewBroadcaster *messaging.PreviewBroadcaster
	ImageProcessor     *media.ImageProcessor
	EmailService       email.Service
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.DB, logger *logging.ChanneledLogger) *Container {
	perfTracker := performance.NewTracker(performance.DefaultTrackerConfig())
	fragments := caching.NewFragmentStore(config.FragmentCacheTTL)
	broadcaster := messaging.NewPreviewBroadcaster(logger, config.PreviewWriteTimeout, config.PreviewMaxConnections)
	processor := media.NewImageProcessor(config.MediaDirectory, config.ThumbnailWidths, config.WebPQuality)

	pageRepo := persistencecontent.NewLandingPageRepository(db.DB)
	productRepo := persistencecontent.NewProductRepository(db.DB)
	orderRepo := persistencecontent.NewOrderRepository(db.DB)
	userRepo := persistenceuser.NewUserRepository(db.DB)

	var emailSvc email.Service
	if config.OrderEmailEnable {
		svc, err := email.NewService()
		if err != nil {
			logger.System().Warn("Order notifications disabled", "error", err.Error())
		} else {
			emailSvc = svc
		}
	}

	fragmentService := services.NewFragmentService(pageRepo, productRepo, fragments, broadcaster, logger, perfTracker)

	return &Container{
		AuthService:        services.NewAuthService(userRepo, logger),
		LandingPageService: services.NewLandingPageService(pageRepo, fragmentService, logger),
		ProductService:     services.NewProductService(productRepo, processor, fragmentService, logger),
		OrderService:       services.NewOrderService(orderRepo, productRepo, userRepo, emailSvc, logger),
		BuilderService:     services.NewBuilderService(pageRepo, fragmentService, logger),
		FragmentService:    fragmentService,

		PageRepo:    pageRepo,
		ProductRepo: productRepo,
		OrderRepo:   orderRepo,
		UserRepo:    userRepo,

		DB:                 db,
		Logger:             logger,
		PerfTracker:        perfTracker,
		Fragments:          fragments,
		PreviewBroadcaster: broadcaster,
		ImageProcessor:     processor,
		EmailService:       emailSvc,
	}
}
