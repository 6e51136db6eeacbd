package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mediastorage/backend/internal/application/catalog"
	identityapp "github.com/mediastorage/backend/internal/application/identity"
	"github.com/mediastorage/backend/internal/domain/catalog"
	"github.com/mediastorage/backend/internal/infrastructure/auth"
	"github.com/mediastorage/backend/internal/infrastructure/config"
	"github.com/mediastorage/backend/internal/infrastructure/logger"
	"github.com/mediastorage/backend/internal/infrastructure/persistence"
	"github.com/mediastorage/backend/internal/interfaces/http/handler"
	"github.com/mediastorage/backend/internal/interfaces/http/middleware"
	"github.com/mediastorage/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting MediaStorage Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	libraryReader := persistence.NewGormLibraryReadRepository(db.DB)
	libraryWriter := persistence.NewGormLibraryWriteRepository(db.DB)
	departmentReader := persistence.NewGormDepartmentReadRepository(db.DB)
	departmentWriter := persistence.NewGormDepartmentWriteRepository(db.DB)
	materialTypeReader := persistence.NewGormMaterialTypeReadRepository(db.DB)
	materialTypeWriter := persistence.NewGormMaterialTypeWriteRepository(db.DB)
	userReader := persistence.NewGormUserReadRepository(db.DB)
	userWriter := persistence.NewGormUserWriteRepository(db.DB)

	// Initialize application services
	configProvider := config.NewProvider(cfg)
	libraryService := catalogapp.NewLibraryService(libraryReader, libraryWriter, departmentReader, departmentWriter, log)
	departmentService := catalogapp.NewDepartmentService(departmentReader, departmentWriter, log)
	materialTypeStore := catalogapp.NewMaterialTypeStore(materialTypeReader, materialTypeWriter)
	materialTypeService := catalogapp.NewMaterialTypeService(materialTypeStore, log)
	userService := identityapp.NewUserService(userReader, userWriter, log)

	// Menu and tag services stage mutations into a unit of work, so each
	// request gets a fresh one
	newMenuService := func() *catalogapp.MenuService {
		uow := persistence.NewGormUnitOfWork(db.DB)
		return catalogapp.NewMenuService(
			uow,
			persistence.NewGormRepository[catalog.Menu](db.DB, uow),
			persistence.NewGormRepository[catalog.MenuItem](db.DB, uow),
			configProvider,
			log,
		)
	}
	newTagService := func() *catalogapp.TagService {
		uow := persistence.NewGormUnitOfWork(db.DB)
		return catalogapp.NewTagService(uow, persistence.NewGormRepository[catalog.Tag](db.DB, uow), log)
	}

	// Initialize JWT service
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.JWTAuthMiddleware(jwtService),
	)

	// Register routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(db)).
		Register(handler.NewAuthHandler(userService, jwtService)).
		Register(handler.NewLibraryHandler(libraryService)).
		Register(handler.NewDepartmentHandler(departmentService)).
		Register(handler.NewMaterialTypeHandler(materialTypeService)).
		Register(handler.NewMenuHandler(newMenuService)).
		Register(handler.NewTagHandler(newTagService)).
		Register(handler.NewUserHandler(userService))
	r.Setup()

	// Start HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
