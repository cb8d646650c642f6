package domain

import "math"

// QuestionsPerPage is the fixed page size for question listings and search.
const QuestionsPerPage = 10

// AllCategories selects questions from every category in a quiz round.
const AllCategories int64 = 0

// Category is a labeled grouping for questions, e.g. "Science".
type Category struct {
	ID   int64
	Type string
}

// NewCategory creates a new Category instance
func NewCategory(categoryType string) *Category {
	return &Category{Type: categoryType}
}

// Question is a quiz item. Category references Category.ID but is not
// checked against the categories table.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a new Question instance; ID is assigned on save.
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// Pagination is a 1-based page over a result set.
type Pagination struct {
	Page    int
	PerPage int
}

// NewPagination returns the page for a requested page number. Pages below 1
// are kept as-is and produce an empty result.
func NewPagination(page int) Pagination {
	return Pagination{Page: page, PerPage: QuestionsPerPage}
}

// Limit is the maximum number of rows on the page.
func (p Pagination) Limit() int {
	return p.PerPage
}

// Offset is the number of rows before the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Valid reports whether the page can contain any rows. Pages whose offset
// would overflow an int are out of range.
func (p Pagination) Valid() bool {
	return p.PerPage > 0 && p.Page >= 1 && p.Page <= math.MaxInt/p.PerPage
}

// QuestionPage is one page of questions and the totals around it.
type QuestionPage struct {
	Questions []*Question
	// TotalQuestions counts the whole questions table regardless of filter.
	TotalQuestions int
	// TotalFiltered counts rows matching the active filter.
	TotalFiltered int
	Categories    []*Category
}

// SearchResult is one page of search matches and the total match count.
type SearchResult struct {
	Questions    []*Question
	TotalResults int
}

// QuizRound is the request for the next question of a quiz round.
type QuizRound struct {
	Category          int64
	PreviousQuestions []int64
}

// CategoryFilter returns the category to restrict to, or nil for all.
func (r QuizRound) CategoryFilter() *int64 {
	if r.Category == AllCategories {
		return nil
	}
	c := r.Category
	return &c
}
