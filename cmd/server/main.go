package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"adhub_backend/internal/app/router"
	"adhub_backend/internal/config"
	"adhub_backend/internal/feature/listing/adapters"
	"adhub_backend/internal/feature/listing/transport/handler"
	"adhub_backend/internal/feature/listing/usecase"
	"adhub_backend/internal/platform/cache"
	infradb "adhub_backend/internal/platform/db"
	infraredis "adhub_backend/internal/platform/redis"
)

func main() {
	// Missing storage credentials are fatal before any request is served.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Missing Supabase URL or Key. Check .env file: ", err)
	}

	db := infradb.OpenDB(cfg)

	// Redis is optional; the catalog runs uncached without it.
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	listingRepo := adapters.NewListingRepository(db)
	cachedRepo := cache.NewCachingListingRepository(rdb, 0, listingRepo, "ads")

	// Usecase
	listingUC := usecase.NewListingUsecase(cachedRepo)

	// Handler
	adsH := handler.NewAdsHandler(listingUC)

	router := router.NewRouter(adsH)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
