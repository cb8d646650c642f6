package dto

import "trivia-api/internal/domain"

// CategoryResponse represents a category in the API response
// @Description Category information
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// CategoriesResponse is the body of GET /categories
type CategoriesResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// QuestionResponse represents a question in the API response
// @Description Question information
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// QuestionsResponse is the body of GET /questions.
// TotalQuestions counts every question; TotalFiltered counts the active filter.
type QuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	TotalFiltered   int                `json:"total_filtered"`
	Categories      []CategoryResponse `json:"categories"`
	CurrentCategory int64              `json:"current_category"`
}

// DeleteQuestionResponse is the body of DELETE /questions/{id}
type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// CreateQuestionRequest is the body of POST /questions
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Difficulty int    `json:"difficulty" validate:"required,min=1,max=5"`
	Category   int64  `json:"category" validate:"required,min=1"`
}

// CreateQuestionResponse is the body returned after creating a question
type CreateQuestionResponse struct {
	Success bool  `json:"success"`
	Created int64 `json:"created"`
}

// SearchQuestionsRequest is the body of POST /questions/search.
// Keyword is a pointer so an absent keyword can be told from an empty one.
type SearchQuestionsRequest struct {
	Keyword *string `json:"keyword" validate:"required"`
}

// SearchQuestionsResponse is the body returned by a search
type SearchQuestionsResponse struct {
	Success      bool               `json:"success"`
	Questions    []QuestionResponse `json:"questions"`
	TotalResults int                `json:"total_results"`
}

// QuizQuestionRequest is the body of POST /get-question. Category 0 means
// any category.
// @Description Request body for the next quiz question
type QuizQuestionRequest struct {
	Category          *int64  `json:"category" validate:"required,gte=0"`
	PreviousQuestions []int64 `json:"previous_questions" validate:"required"`
}

// QuizQuestionResponse carries the next question, or null when none remain
type QuizQuestionResponse struct {
	Success           bool              `json:"success"`
	Question          *QuestionResponse `json:"question"`
	PreviousQuestions []int64           `json:"previous_questions"`
}

// ErrorResponse is the fixed error envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// HealthResponse reports the state of the service's dependencies
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// NewCategoryResponses converts domain categories to their response form
func NewCategoryResponses(categories []*domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{ID: c.ID, Type: c.Type})
	}
	return out
}

// NewQuestionResponse converts a domain question to its response form
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses converts domain questions to their response form
func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, NewQuestionResponse(q))
	}
	return out
}
