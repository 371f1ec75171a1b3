package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	_ "flashcard-rest/docs"
	"flashcard-rest/src/config"
	"flashcard-rest/src/controllers"
	"flashcard-rest/src/database"
	"flashcard-rest/src/routes"
	"flashcard-rest/src/services/questionnaires"
	"flashcard-rest/src/utils"

	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// @title        Flashcard Questionnaire API
// @version      1.0
// @description  CRUD API for questionnaires (flashcard sets).
// @BasePath     /
func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ invalid configuration:", err)
		os.Exit(1)
	}

	log, err := utils.NewLogger(cfg.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
	defer log.Sync()

	if !envLoaded {
		log.Warn("⚠️ No .env file found")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	validator := questionnaires.NewValidator(cfg.RejectBlankTitle)

	// สร้าง app instance
	app := routes.NewApp(log, cfg.AllowedOrigins)

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Handlers{
		Questionnaires: controllers.NewQuestionnaireController(repo, validator, log),
		Pages:          controllers.NewQuestionnairePageController(repo, routes.WebBasePath, log),
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Server is running", zap.String("port", cfg.Port), zap.String("storage", cfg.Storage))
	return app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.Port)))
}

// openRepository connects the backend selected by STORAGE. The returned func
// releases its connection.
func openRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (questionnaires.Repository, func(), error) {
	switch cfg.Storage {
	case config.StorageMongo:
		client, err := database.ConnectMongoDB(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, nil, err
		}
		collection := database.GetCollection(client, cfg.MongoDatabase, cfg.MongoCollection)
		return questionnaires.NewMongoRepository(collection, cfg.RepositoryTimeout), func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("mongodb disconnect", zap.Error(err))
			}
		}, nil

	case config.StorageRedis:
		client, err := database.ConnectRedis(ctx, cfg.RedisURI, cfg.RedisPassword, cfg.RedisDB, log)
		if err != nil {
			return nil, nil, err
		}
		return questionnaires.NewRedisRepository(client, cfg.RepositoryTimeout), func() {
			if err := client.Close(); err != nil {
				log.Error("redis close", zap.Error(err))
			}
		}, nil

	case config.StorageSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info("✅ SQLite ready", zap.String("path", cfg.SQLitePath))
		return questionnaires.NewSQLiteRepository(db, cfg.RepositoryTimeout), func() {
			if err := db.Close(); err != nil {
				log.Error("sqlite close", zap.Error(err))
			}
		}, nil

	default:
		log.Warn("⚠️ Using in-memory storage, data is lost on restart")
		return questionnaires.NewMemoryRepository(), func() {}, nil
	}
}
