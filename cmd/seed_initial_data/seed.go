package main

import (
	"context"
	"fmt"

	"trivia-api/cmd/seed_initial_data/internal/seedmodels"
	"trivia-api/internal/domain"

	"go.uber.org/zap"
)

// seedStats reports what a seeding run wrote.
type seedStats struct {
	CategoriesCreated int
	CategoriesSkipped int
	QuestionsCreated  int
}

// seeder writes seed categories and their questions in a single transaction.
// Categories that already exist by type are left untouched along with their
// questions, so the run can be repeated.
type seeder struct {
	tm         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	log        *zap.Logger
}

func (s *seeder) run(ctx context.Context, seedCategories []seedmodels.SeedCategory) (stats seedStats, err error) {
	err = s.tm.WithTransaction(ctx, func(txCtx context.Context) error {
		stats = seedStats{}
		for _, sc := range seedCategories {
			if err := s.seedCategory(txCtx, sc, &stats); err != nil {
				return err
			}
		}
		return nil
	})
	return stats, err
}

func (s *seeder) seedCategory(ctx context.Context, sc seedmodels.SeedCategory, stats *seedStats) error {
	existing, err := s.categories.GetByType(ctx, sc.Type)
	if err != nil {
		return fmt.Errorf("error checking category %s: %w", sc.Type, err)
	}
	if existing != nil {
		s.log.Info("Category exists, skipping.", zap.Int64("id", existing.ID), zap.String("type", existing.Type))
		stats.CategoriesSkipped++
		return nil
	}

	category := domain.NewCategory(sc.Type)
	if err := s.categories.Save(ctx, category); err != nil {
		return fmt.Errorf("failed to save category %s: %w", sc.Type, err)
	}
	s.log.Info("Created category.", zap.Int64("id", category.ID), zap.String("type", category.Type))
	stats.CategoriesCreated++

	for _, sq := range sc.Questions {
		question := domain.NewQuestion(sq.Question, sq.Answer, category.ID, sq.Difficulty)
		if err := s.questions.Save(ctx, question); err != nil {
			return fmt.Errorf("failed to save question %q: %w", firstN(sq.Question, 20), err)
		}
		stats.QuestionsCreated++
	}
	return nil
}

// firstN truncates s to n runes so error messages never split a UTF-8 sequence.
func firstN(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
