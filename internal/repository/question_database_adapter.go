package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id, question, answer, category, difficulty`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx
type QuestionDatabaseAdapter struct {
	db DBTX
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db DBTX) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

// List implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) List(ctx context.Context, categoryID *int64, limit, offset int) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var rows []models.Question
	var err error
	if categoryID != nil {
		query := `SELECT ` + questionColumns + ` FROM questions WHERE category = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`
		err = exec.SelectContext(ctx, &rows, query, *categoryID, limit, offset)
	} else {
		query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id ASC LIMIT $1 OFFSET $2`
		err = exec.SelectContext(ctx, &rows, query, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// Count implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Count(ctx context.Context, categoryID *int64) (int, error) {
	exec := GetExecutor(ctx, a.db)

	var count int
	var err error
	if categoryID != nil {
		err = exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions WHERE category = $1`, *categoryID)
	} else {
		err = exec.GetContext(ctx, &count, `SELECT COUNT(*) FROM questions`)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// GetByID implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	var row models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question by ID %d: %w", id, err)
	}
	return toDomainQuestion(&row), nil
}

// Save implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Save(ctx context.Context, question *domain.Question) error {
	if question == nil {
		return fmt.Errorf("cannot save nil question")
	}
	row := toModelQuestion(question)

	query := `INSERT INTO questions (question, answer, category, difficulty)
	VALUES ($1, $2, $3, $4)
	RETURNING id`

	var id int64
	err := GetExecutor(ctx, a.db).GetContext(ctx, &id, query,
		row.Question,
		row.Answer,
		row.Category,
		row.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("failed to save question: %w", err)
	}

	question.ID = id
	return nil
}

// Delete implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// Search implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Search(ctx context.Context, term string, limit, offset int) ([]*domain.Question, error) {
	var rows []models.Question
	query := `SELECT ` + questionColumns + ` FROM questions
	WHERE question ILIKE $1 ESCAPE '\'
	ORDER BY id ASC
	LIMIT $2 OFFSET $3`

	err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, likePattern(term), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return toDomainQuestions(rows), nil
}

// CountSearch implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) CountSearch(ctx context.Context, term string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM questions WHERE question ILIKE $1 ESCAPE '\'`

	err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query, likePattern(term))
	if err != nil {
		return 0, fmt.Errorf("failed to count search results: %w", err)
	}
	return count, nil
}

// GetRandom implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) GetRandom(ctx context.Context, categoryID *int64, excludedIDs []int64) (*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)

	var conditions []string
	var args []interface{}
	if categoryID != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *categoryID)
	}
	if len(excludedIDs) > 0 {
		conditions = append(conditions, "id NOT IN (?)")
		args = append(args, excludedIDs)
	}

	query := `SELECT ` + questionColumns + ` FROM questions`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY RANDOM() LIMIT 1`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build random question query: %w", err)
	}

	var row models.Question
	err = exec.GetContext(ctx, &row, exec.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get random question: %w", err)
	}
	return toDomainQuestion(&row), nil
}

// likePattern turns term into a literal substring pattern for ILIKE.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func toDomainQuestion(m *models.Question) *domain.Question {
	return &domain.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions
}

func toModelQuestion(d *domain.Question) *models.Question {
	return &models.Question{
		ID:         d.ID,
		Question:   d.Question,
		Answer:     d.Answer,
		Category:   d.Category,
		Difficulty: d.Difficulty,
	}
}
