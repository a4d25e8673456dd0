package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/techstore-mx/techstore-backend/internal/seed"
	"github.com/techstore-mx/techstore-backend/pkg/config"
	"github.com/techstore-mx/techstore-backend/pkg/db"
	"github.com/techstore-mx/techstore-backend/pkg/logger"
)

// Loads the demo catalog, categories and orders into the configured SQL
// database. Safe to re-run: rows are upserted by primary key.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	wipe := flag.Bool("wipe", false, "delete existing rows before seeding")
	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if cfg.DB.Driver == config.DBDriverMemory {
		fmt.Fprintln(os.Stderr, "seed requires TECHSTORE_DB_DRIVER=sqlite or postgres")
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	now := time.Now().UTC()
	products := seed.Products(now)
	categories := seed.Categories(now)
	orders := seed.Orders()

	if err := seed.Validate(products, categories, orders); err != nil {
		logg.Error(ctx, "seed fixtures failed validation", err)
		os.Exit(1)
	}

	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if *wipe {
			if err := tx.Exec("DELETE FROM orders").Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM categories").Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM products").Error; err != nil {
				return err
			}
		}

		upsert := clause.OnConflict{UpdateAll: true}
		if err := tx.Clauses(upsert).Create(&products).Error; err != nil {
			return fmt.Errorf("seeding products: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&categories).Error; err != nil {
			return fmt.Errorf("seeding categories: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&orders).Error; err != nil {
			return fmt.Errorf("seeding orders: %w", err)
		}
		return nil
	})
	if err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"products":   len(products),
		"categories": len(categories),
		"orders":     len(orders),
	})
	logg.Info(ctx, "seed complete")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
