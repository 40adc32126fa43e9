package db

import (
	"fmt"
	"log"
	"time"

	"adhub_backend/internal/config"
	"adhub_backend/internal/feature/listing/domain/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB connects to the Supabase Postgres instance, retrying for up
// to a minute so the process survives a store that is still coming up.
func OpenDB(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=postgres password=%s dbname=postgres port=5432 sslmode=require",
		cfg.SupabaseDBURL, cfg.SupabaseDBKey)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(&entity.Listing{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
