package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/adapter"
	"trivia-api/internal/cache"
	"trivia-api/internal/config"
	"trivia-api/internal/database"
	"trivia-api/internal/logger"
	"trivia-api/internal/repository"
	"trivia-api/internal/service"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/trivia.json"

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the JSON seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN(), cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(byteValue, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully unmarshalled seed data", zap.Int("categories_loaded", len(seedCategories)))

	s := &seeder{
		tm:         repository.NewTransactionManagerAdapter(db),
		categories: repository.NewCategoryDatabaseAdapter(db),
		questions:  repository.NewQuestionDatabaseAdapter(db),
		log:        log,
	}
	stats, err := s.run(ctx, seedCategories)
	if err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Initial data seeding process completed.",
		zap.Int("categories_created", stats.CategoriesCreated),
		zap.Int("categories_skipped", stats.CategoriesSkipped),
		zap.Int("questions_created", stats.QuestionsCreated),
	)

	if stats.CategoriesCreated > 0 {
		invalidateCategoryCache(ctx, cfg, s)
	}
}

// invalidateCategoryCache drops the cached category list so the API sees
// the new categories before the TTL runs out.
func invalidateCategoryCache(ctx context.Context, cfg *config.Config, s *seeder) {
	if cfg.Redis.Address == "" {
		return
	}
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		s.log.Warn("Could not reach Redis, category cache left to expire", zap.Error(err))
		return
	}
	defer redisClient.Close()

	categoryCache := service.NewCategoryCacheService(s.categories, adapter.NewRedisCacheAdapter(redisClient), 0)
	if err := categoryCache.Invalidate(ctx); err != nil {
		s.log.Warn("Failed to invalidate category cache", zap.Error(err))
		return
	}
	s.log.Info("Invalidated category cache", zap.String("key", service.CategoryCacheKey))
}
