package domain

import "context"

// QuestionRepository defines the interface for question persistence.
// Lookups that find nothing return a nil result and a nil error.
type QuestionRepository interface {
	// List returns questions ordered by id, optionally restricted to a category.
	List(ctx context.Context, categoryID *int64, limit, offset int) ([]*Question, error)

	// Count returns the number of questions, optionally restricted to a category.
	Count(ctx context.Context, categoryID *int64) (int, error)

	// GetByID retrieves a question by its ID
	GetByID(ctx context.Context, id int64) (*Question, error)

	// Save inserts a new question and sets its ID
	Save(ctx context.Context, question *Question) error

	// Delete removes a question and reports whether a row was removed
	Delete(ctx context.Context, id int64) (bool, error)

	// Search returns questions whose text contains term, case-insensitively
	Search(ctx context.Context, term string, limit, offset int) ([]*Question, error)

	// CountSearch returns the number of questions Search would match in total
	CountSearch(ctx context.Context, term string) (int, error)

	// GetRandom returns a random question not in excludedIDs, optionally
	// restricted to a category
	GetRandom(ctx context.Context, categoryID *int64, excludedIDs []int64) (*Question, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// GetAll returns all categories ordered by id
	GetAll(ctx context.Context) ([]*Category, error)

	// GetByType returns the category with the given type, or nil
	GetByType(ctx context.Context, categoryType string) (*Category, error)

	// Save inserts a new category and sets its ID
	Save(ctx context.Context, category *Category) error
}

// TransactionManager runs fn inside a database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
