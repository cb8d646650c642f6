package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx
type CategoryDatabaseAdapter struct {
	db DBTX
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db DBTX) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

// GetAll returns all categories
func (r *CategoryDatabaseAdapter) GetAll(ctx context.Context) ([]*domain.Category, error) {
	var categories []models.Category
	query := `SELECT id, type FROM categories ORDER BY id ASC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	domainCategories := make([]*domain.Category, len(categories))
	for i := range categories {
		domainCategories[i] = convertToDomainCategory(&categories[i])
	}
	return domainCategories, nil
}

// GetByType returns the category with the given type, or nil when absent
func (r *CategoryDatabaseAdapter) GetByType(ctx context.Context, categoryType string) (*domain.Category, error) {
	var category models.Category
	query := `SELECT id, type FROM categories WHERE type = $1 ORDER BY id ASC LIMIT 1`
	err := GetExecutor(ctx, r.db).GetContext(ctx, &category, query, categoryType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get category %q: %w", categoryType, err)
	}
	return convertToDomainCategory(&category), nil
}

// Save persists a new category
func (r *CategoryDatabaseAdapter) Save(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return fmt.Errorf("cannot save nil category")
	}
	modelCategory := convertToModelCategory(category)

	var id int64
	query := `INSERT INTO categories (type) VALUES ($1) RETURNING id`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &id, query, modelCategory.Type); err != nil {
		return fmt.Errorf("failed to save category %q: %w", category.Type, err)
	}
	category.ID = id
	return nil
}

func convertToDomainCategory(category *models.Category) *domain.Category {
	return &domain.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}

func convertToModelCategory(category *domain.Category) *models.Category {
	return &models.Category{
		ID:   category.ID,
		Type: category.Type,
	}
}
