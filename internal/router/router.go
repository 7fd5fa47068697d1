package router

import (
	"github.com/codeLord61/Exchangify/internal/handlers"
	"github.com/codeLord61/Exchangify/internal/middleware"
	"github.com/codeLord61/Exchangify/internal/models"
	"github.com/codeLord61/Exchangify/internal/repositories"
	"github.com/codeLord61/Exchangify/internal/services"
	"github.com/codeLord61/Exchangify/pkg/config"
	"github.com/codeLord61/Exchangify/pkg/storage"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware.
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.BodyLimit("16M"))
}

// SetupRoutes migrates the schema, wires repositories, services and handlers,
// and mounts every route group.
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, store *storage.Store, log *zap.SugaredLogger) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Trade{},
		&models.Donation{},
		&models.Installment{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.ChatMessage{},
		&models.Notification{},
		&models.Review{},
		&models.UserReview{},
	)
	if err != nil {
		return err
	}
	log.Info("auto-migrations completed")

	// Repositories
	userRepo := repositories.NewPostgresUserRepository(db)
	listingRepo := repositories.NewPostgresListingRepository(db)
	categoryRepo := repositories.NewPostgresCategoryRepository(db)
	tradeRepo := repositories.NewPostgresTradeRepository(db)
	donationRepo := repositories.NewPostgresDonationRepository(db)
	installmentRepo := repositories.NewPostgresInstallmentRepository(db)
	cartRepo := repositories.NewPostgresCartRepository(db)
	wishlistRepo := repositories.NewPostgresWishlistRepository(db)
	chatRepo := repositories.NewPostgresChatRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	reviewRepo := repositories.NewPostgresReviewRepository(db)
	userReviewRepo := repositories.NewPostgresUserReviewRepository(db)

	// Services
	tradeService := services.NewTradeService(db)
	donationService := services.NewDonationService(db)
	installmentService := services.NewInstallmentService(db)
	checkoutService := services.NewCheckoutService(db)
	chatService := services.NewChatService(db)
	reviewService := services.NewReviewService(db)
	categoryService := services.NewCategoryService(categoryRepo)
	searchService := services.NewListingSearchService(listingRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, store, cfg.JWTSecret)
	userHandler := handlers.NewUserHandler(userRepo, userReviewRepo, listingRepo,
		installmentRepo, donationRepo, tradeRepo, notificationRepo, cartRepo,
		wishlistRepo, chatRepo, store)
	listingHandler := handlers.NewListingHandler(listingRepo, categoryRepo,
		wishlistRepo, userRepo, searchService, store)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, categoryService)
	tradeHandler := handlers.NewTradeHandler(tradeRepo, listingRepo, tradeService)
	donationHandler := handlers.NewDonationHandler(donationRepo, donationService, store)
	installmentHandler := handlers.NewInstallmentHandler(installmentRepo, installmentService)
	cartHandler := handlers.NewCartHandler(cartRepo, listingRepo, checkoutService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistRepo, listingRepo)
	chatHandler := handlers.NewChatHandler(chatRepo, userRepo, notificationRepo, chatService, store)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	reviewHandler := handlers.NewReviewHandler(reviewRepo, reviewService)
	adminHandler := handlers.NewAdminHandler(userRepo, listingRepo, tradeRepo,
		donationRepo, installmentRepo, reviewRepo, installmentService)
	healthHandler := handlers.NewHealthHandler(db)

	healthHandler.RegisterRoutes(e)
	e.Static("/static/uploads", cfg.UploadRoot)

	// Public surface. Listing reads take an optional token so radius search
	// and wishlist flags can use the caller's identity when present.
	public := e.Group("/api")
	public.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
	authHandler.RegisterAuthRoutes(public)
	listingHandler.RegisterPublicRoutes(public)
	categoryHandler.RegisterPublicRoutes(public)
	userHandler.RegisterPublicRoutes(public)
	reviewHandler.RegisterPublicRoutes(public)

	// Authenticated surface.
	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	authHandler.RegisterSessionRoutes(api)
	userHandler.RegisterProfileRoutes(api)
	listingHandler.RegisterProtectedRoutes(api)
	tradeHandler.RegisterRoutes(api)
	donationHandler.RegisterRoutes(api)
	installmentHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	wishlistHandler.RegisterRoutes(api)
	chatHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)
	reviewHandler.RegisterProtectedRoutes(api)

	// Admin surface.
	admin := e.Group("/api/admin")
	admin.Use(middleware.JWTAuth(cfg.JWTSecret), middleware.RequireAdmin())
	adminHandler.RegisterRoutes(admin)
	categoryHandler.RegisterAdminRoutes(admin)

	log.Info("routes configured")
	return nil
}
