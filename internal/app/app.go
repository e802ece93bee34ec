package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maths_point_backend/internal/config"
	"maths_point_backend/internal/controller"
	"maths_point_backend/internal/repository"
	"maths_point_backend/internal/service"
	"maths_point_backend/pkg/database"
	"maths_point_backend/pkg/logger"
	"maths_point_backend/pkg/monitoring"
	"maths_point_backend/pkg/security"
	"maths_point_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user        *repository.UserRepository
	test        *repository.TestRepository
	question    *repository.QuestionRepository
	attempt     *repository.AttemptRepository
	testimonial *repository.TestimonialRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	test        *service.TestService
	question    *service.QuestionService
	attempt     *service.AttemptService
	leaderboard *service.LeaderboardService
	testimonial *service.TestimonialService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	test        *controller.TestController
	question    *controller.QuestionController
	attempt     *controller.AttemptController
	leaderboard *controller.LeaderboardController
	testimonial *controller.TestimonialController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		test:        repository.NewTestRepository(db),
		question:    repository.NewQuestionRepository(db),
		attempt:     repository.NewAttemptRepository(db),
		testimonial: repository.NewTestimonialRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	return &services{
		auth:        service.NewAuthService(repos.user, rdb, cfg),
		user:        service.NewUserService(repos.user),
		test:        service.NewTestService(repos.test),
		question:    service.NewQuestionService(repos.question, repos.test),
		attempt:     service.NewAttemptService(repos.test, repos.question, repos.attempt),
		leaderboard: service.NewLeaderboardService(repos.attempt),
		testimonial: service.NewTestimonialService(repos.testimonial),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth, a.Config),
		user:        controller.NewUserController(s.user),
		test:        controller.NewTestController(s.test),
		question:    controller.NewQuestionController(s.question),
		attempt:     controller.NewAttemptController(s.attempt),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		testimonial: controller.NewTestimonialController(s.testimonial),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("maths-point", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
