package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skillpath_backend/internal/config"
	"skillpath_backend/internal/controller"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/service"
	"skillpath_backend/pkg/database"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"
	"skillpath_backend/pkg/security"
	"skillpath_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	roadmap      *repository.RoadmapRepository
	resource     *repository.ResourceRepository
	quiz         *repository.QuizRepository
	attempt      *repository.AttemptRepository
	progress     *repository.ProgressRepository
	achievement  *repository.AchievementRepository
	project      *repository.ProjectRepository
	savedRoadmap *repository.SavedRoadmapRepository
	chat         *repository.ChatRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	roadmapAPI   *service.RoadmapAPIClient
	catalog      *service.CatalogService
	achievement  *service.AchievementService
	progress     *service.ProgressService
	quiz         *service.QuizService
	leaderboard  *service.LeaderboardService
	project      *service.ProjectService
	savedRoadmap *service.SavedRoadmapService
	chat         *service.ChatService
	content      *service.ContentService
}

type controllers struct {
	health      *controller.HealthController
	auth        *controller.AuthController
	user        *controller.UserController
	roadmap     *controller.RoadmapController
	progress    *controller.ProgressController
	quiz        *controller.QuizController
	leaderboard *controller.LeaderboardController
	achievement *controller.AchievementController
	project     *controller.ProjectController
	chat        *controller.ChatController
	content     *controller.ContentController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 应用热更新后的配置并通知注册方
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		roadmap:      repository.NewRoadmapRepository(db),
		resource:     repository.NewResourceRepository(db),
		quiz:         repository.NewQuizRepository(db),
		attempt:      repository.NewAttemptRepository(db),
		progress:     repository.NewProgressRepository(db),
		achievement:  repository.NewAchievementRepository(db),
		project:      repository.NewProjectRepository(db),
		savedRoadmap: repository.NewSavedRoadmapRepository(db),
		chat:         repository.NewChatRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.roadmapAPI = service.NewRoadmapAPIClient(cfg.RoadmapAPI, rdb)
	s.catalog = service.NewCatalogService(repos.roadmap, s.roadmapAPI)
	s.achievement = service.NewAchievementService(repos.achievement)
	s.progress = service.NewProgressService(repos.progress, repos.resource, s.catalog, s.achievement)
	s.quiz = service.NewQuizService(repos.quiz, repos.attempt, s.achievement, s.roadmapAPI)
	s.leaderboard = service.NewLeaderboardService(repos.attempt, repos.user, rdb)
	s.project = service.NewProjectService(repos.project)
	s.savedRoadmap = service.NewSavedRoadmapService(repos.savedRoadmap, s.catalog)
	s.chat = service.NewChatService(cfg.AI, repos.chat)
	s.content = service.NewContentService(repos.roadmap, repos.resource, repos.quiz, s.storage)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		health:      controller.NewHealthController(db, rdb),
		auth:        controller.NewAuthController(s.auth, s.user),
		user:        controller.NewUserController(s.user, s.storage),
		roadmap:     controller.NewRoadmapController(s.catalog, s.savedRoadmap),
		progress:    controller.NewProgressController(s.progress),
		quiz:        controller.NewQuizController(s.quiz),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		achievement: controller.NewAchievementController(s.achievement),
		project:     controller.NewProjectController(s.project),
		chat:        controller.NewChatController(s.chat),
		content:     controller.NewContentController(s.content),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 6000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
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

	// release 模式下默认跳过自动迁移，需通过 -migrate 显式开启
	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.MigrateOnly {
		logger.Log.Info("Migration completed, exiting (migrate-only mode)")
		os.Exit(0)
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
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillpath-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
