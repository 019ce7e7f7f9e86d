package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/movemate/movemate-backend/internal/config"
	httpdelivery "github.com/movemate/movemate-backend/internal/delivery/http"
	"github.com/movemate/movemate-backend/internal/delivery/http/handler"
	"github.com/movemate/movemate-backend/internal/delivery/http/middleware"
	"github.com/movemate/movemate-backend/internal/infrastructure/database"
	"github.com/movemate/movemate-backend/internal/infrastructure/server"
	"github.com/movemate/movemate-backend/internal/repository/postgres"
	"github.com/movemate/movemate-backend/internal/repository/redisstore"
	"github.com/movemate/movemate-backend/internal/usecase/auth"
	"github.com/movemate/movemate-backend/internal/usecase/coach"
	"github.com/movemate/movemate-backend/internal/usecase/community"
	"github.com/movemate/movemate-backend/internal/usecase/dashboard"
	"github.com/movemate/movemate-backend/internal/usecase/messages"
	"github.com/movemate/movemate-backend/internal/usecase/onboarding"
	"github.com/movemate/movemate-backend/internal/usecase/profile"
	"github.com/movemate/movemate-backend/internal/usecase/seed"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Log    *zap.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, log *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	prefRepo := postgres.NewPreferenceRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	convRepo := postgres.NewConversationRepository(db)
	communityRepo := postgres.NewCommunityRepository(db)
	exchangeRepo := postgres.NewSkillExchangeRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	badgeRepo := postgres.NewBadgeRepository(db)
	sessionStore := redisstore.NewSessionStore(redisClient)

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		profileRepo,
		sessionStore,
		cfg.JWT.Secret,
		cfg.JWT.SessionExpiry,
		log,
	)

	seeder := seed.NewGenerator(
		activityRepo,
		convRepo,
		userRepo,
		profileRepo,
		messageRepo,
		cfg.Seed,
		log,
	)

	onboardingUseCase := onboarding.NewOnboardingUseCase(prefRepo, seeder)
	dashboardUseCase := dashboard.NewDashboardUseCase(activityRepo)
	coachUseCase := coach.NewCoachUseCase(prefRepo, convRepo)
	communityUseCase := community.NewCommunityUseCase(communityRepo, exchangeRepo, log)
	messageUseCase := messages.NewMessageUseCase(messageRepo, profileRepo)
	profileUseCase := profile.NewProfileUseCase(profileRepo, prefRepo, badgeRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	onboardingHandler := handler.NewOnboardingHandler(onboardingUseCase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUseCase)
	coachHandler := handler.NewCoachHandler(coachUseCase)
	communityHandler := handler.NewCommunityHandler(communityUseCase)
	messageHandler := handler.NewMessageHandler(messageUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := httpdelivery.NewRouter(
		authHandler,
		onboardingHandler,
		dashboardHandler,
		coachHandler,
		communityHandler,
		messageHandler,
		profileHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Log:    log,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Log.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
