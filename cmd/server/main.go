package main

import (
	"net/http"

	"go.uber.org/zap"

	"LostAndFound/internal/blobstore"
	"LostAndFound/internal/config"
	"LostAndFound/internal/handlers"
	"LostAndFound/internal/middleware"
	"LostAndFound/internal/repo"
	"LostAndFound/internal/service"
)

func main() {
	cfg := config.NewConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	blobs, err := blobstore.NewDisk(cfg.BlobDir, cfg.PublicBaseURL+"/files", blobstore.Bucket)
	if err != nil {
		sugar.Fatalw("failed to initialize blob storage", "error", err, "dir", cfg.BlobDir)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)
	userService := service.NewUserService(userRepo)
	registry := service.NewRegistryService(itemRepo, blobs, sugar)

	h := handlers.NewHandler(userService, registry, sugar, cfg)

	addr := cfg.BaseURL
	sugar.Infow("Starting server", "addr", addr)
	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"BlobDir", cfg.BlobDir,
		"PublicBaseURL", cfg.PublicBaseURL,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
