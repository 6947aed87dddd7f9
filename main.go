package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"contatorapido_backend/internals/configs"
	"contatorapido_backend/internals/data"
	database "contatorapido_backend/internals/databases"
	"contatorapido_backend/internals/features/students/directory/loader"
	"contatorapido_backend/internals/features/students/directory/service"
	sessionService "contatorapido_backend/internals/features/users/session/service"
	middlewares "contatorapido_backend/internals/middlewares"
	routes "contatorapido_backend/internals/route"
	"contatorapido_backend/internals/seeds"
	"contatorapido_backend/internals/views"
)

func main() {
	configs.LoadEnv()

	logger, err := configs.NewLogger(configs.LogLevel, configs.LogFormat)
	if err != nil {
		log.Fatalf("❌ logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	session, err := sessionService.NewManager(sessionService.Options{
		Secret:         configs.JWTSecret,
		TTL:            configs.SessionTTL,
		AccessCodeHash: configs.AccessCodeHash,
		SecureCookie:   configs.SecureCookie,
	})
	if err != nil {
		logger.Fatal("session setup failed", zap.Error(err))
	}

	// 🔌 DB only when the directory lives in Postgres
	var db *gorm.DB
	if configs.DataSource == configs.SourceDB {
		db, err = database.ConnectDB(logger)
		if err != nil {
			logger.Fatal("db connect failed", zap.Error(err))
		}
		if err := database.TunePool(db); err != nil {
			logger.Warn("pool tune failed", zap.Error(err))
		}
		if err := database.Migrate(db); err != nil {
			logger.Fatal("db migrate failed", zap.Error(err))
		}
		if configs.RunSeeds {
			seeds.RunAllSeeds(context.Background(), db, data.Students(), logger)
		}
	}

	// 📚 Load the directory once, before serving
	src, err := newSource(db)
	if err != nil {
		logger.Fatal("data source setup failed", zap.String("source", configs.DataSource), zap.Error(err))
	}
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	directory := service.NewDirectoryFromSource(loadCtx, src, logger)
	cancelLoad()

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		Views:                 views.NewEngine(),
		ViewsLayout:           views.Layout,
		ErrorHandler:          middlewares.ErrorHandler(logger),
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app, configs.CorsAllowOrigins)

	routes.SetupRoutes(app, routes.Deps{
		DB:        db,
		Directory: directory,
		Session:   session,
		Log:       logger,
	})

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		logger.Info("✅ listening", zap.String("port", configs.Port), zap.Int("students", directory.Len()))
		if err := app.Listen("0.0.0.0:" + configs.Port); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown + close DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	database.Close(db)
}

func newSource(db *gorm.DB) (loader.Source, error) {
	switch configs.DataSource {
	case configs.SourceDB:
		return loader.NewDBSource(db), nil
	case configs.SourceDir:
		return loader.NewFSSource(os.DirFS(configs.StudentDataDir), configs.StudentDataDir), nil
	case configs.SourceOSS:
		return loader.NewOSSSource(loader.OSSConfig{
			Endpoint:      configs.OSSEndpoint,
			AccessKey:     configs.OSSAccessKey,
			SecretKey:     configs.OSSSecretKey,
			SecurityToken: configs.OSSSecurityToken,
			Bucket:        configs.OSSBucket,
			Prefix:        configs.OSSPrefix,
		})
	default:
		return loader.NewFSSource(data.Students(), configs.SourceEmbed), nil
	}
}
