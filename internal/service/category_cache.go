package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// categoryLoadTimeout bounds a shared category load on a cache miss.
const categoryLoadTimeout = 5 * time.Second

// CategoryCacheKey holds the JSON-encoded category list.
var CategoryCacheKey = cache.Key("category", "list", "all")

// CategoryCacheService serves the category list, caching it when a cache is available.
type CategoryCacheService interface {
	GetAll(ctx context.Context) ([]*domain.Category, error)
	Invalidate(ctx context.Context) error
}

type cachedCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type categoryCacheServiceImpl struct {
	repo  domain.CategoryRepository
	cache domain.Cache
	ttl   time.Duration
	load  singleflight.Group
}

// NewCategoryCacheService creates a CategoryCacheService. A nil cache
// disables caching and every call goes to the repository.
func NewCategoryCacheService(repo domain.CategoryRepository, c domain.Cache, ttl time.Duration) CategoryCacheService {
	if c == nil {
		logger.Get().Warn("CategoryCacheService initialized with nil cache. Categories will be read from the database on every request.")
		return &passthroughCategoryService{repo: repo}
	}
	return &categoryCacheServiceImpl{repo: repo, cache: c, ttl: ttl}
}

// GetAll returns the cached category list, loading and caching it on a miss.
// Concurrent misses share one repository call. Cache failures are logged and
// fall back to the repository.
func (s *categoryCacheServiceImpl) GetAll(ctx context.Context) ([]*domain.Category, error) {
	if categories, ok := s.fromCache(ctx); ok {
		return categories, nil
	}

	v, err, _ := s.load.Do(CategoryCacheKey, func() (interface{}, error) {
		// The load is shared, so one caller's cancellation must not fail the others.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), categoryLoadTimeout)
		defer cancel()
		categories, err := s.repo.GetAll(loadCtx)
		if err != nil {
			return nil, err
		}
		s.store(loadCtx, categories)
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.Category), nil
}

func (s *categoryCacheServiceImpl) fromCache(ctx context.Context) ([]*domain.Category, bool) {
	data, err := s.cache.Get(ctx, CategoryCacheKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Error("Failed to get categories from cache", zap.Error(err), zap.String("key", CategoryCacheKey))
		} else {
			logger.Get().Debug("Category cache miss", zap.String("key", CategoryCacheKey))
		}
		return nil, false
	}

	var cached []cachedCategory
	if err := json.Unmarshal([]byte(data), &cached); err != nil {
		logger.Get().Error("Failed to unmarshal categories from cache", zap.Error(err), zap.String("key", CategoryCacheKey))
		return nil, false
	}

	categories := make([]*domain.Category, len(cached))
	for i, c := range cached {
		categories[i] = &domain.Category{ID: c.ID, Type: c.Type}
	}
	return categories, true
}

func (s *categoryCacheServiceImpl) store(ctx context.Context, categories []*domain.Category) {
	cached := make([]cachedCategory, len(categories))
	for i, c := range categories {
		cached[i] = cachedCategory{ID: c.ID, Type: c.Type}
	}

	data, err := json.Marshal(cached)
	if err != nil {
		logger.Get().Error("Failed to marshal categories for caching", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, CategoryCacheKey, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache categories", zap.Error(err), zap.String("key", CategoryCacheKey))
		return
	}
	logger.Get().Debug("Cached categories", zap.Int("count", len(categories)), zap.Duration("ttl", s.ttl))
}

// Invalidate drops the cached category list.
func (s *categoryCacheServiceImpl) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, CategoryCacheKey)
}

type passthroughCategoryService struct {
	repo domain.CategoryRepository
}

func (s *passthroughCategoryService) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return s.repo.GetAll(ctx)
}

func (s *passthroughCategoryService) Invalidate(ctx context.Context) error {
	return nil
}
