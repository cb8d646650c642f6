package service

import (
	"context"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// currentCategory is reported by the question listing regardless of filter.
const currentCategory int64 = 1

// TriviaService defines the trivia operations behind the HTTP API
type TriviaService interface {
	GetCategories(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestions(ctx context.Context, categoryID *int64, page int) (*dto.QuestionsResponse, error)
	DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
	CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	SearchQuestions(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error)
	NextQuizQuestion(ctx context.Context, round domain.QuizRound) (*dto.QuizQuestionResponse, error)
}

type triviaService struct {
	questions  domain.QuestionRepository
	categories CategoryCacheService
}

// NewTriviaService creates a new instance of triviaService
func NewTriviaService(questions domain.QuestionRepository, categories CategoryCacheService) TriviaService {
	return &triviaService{
		questions:  questions,
		categories: categories,
	}
}

// GetCategories implements TriviaService
func (s *triviaService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to get categories", err)
	}

	formatted := dto.NewCategoryResponses(categories)
	return &dto.CategoriesResponse{
		Success:    true,
		Categories: formatted,
		Total:      len(formatted),
	}, nil
}

// ListQuestions implements TriviaService. An empty page is a not-found error.
func (s *triviaService) ListQuestions(ctx context.Context, categoryID *int64, page int) (*dto.QuestionsResponse, error) {
	pagination := domain.NewPagination(page)
	if !pagination.Valid() {
		return nil, domain.NewNotFoundError("page out of range").WithContext("page", page)
	}

	var result domain.QuestionPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		questions, err := s.questions.List(gctx, categoryID, pagination.Limit(), pagination.Offset())
		result.Questions = questions
		return err
	})
	g.Go(func() error {
		total, err := s.questions.Count(gctx, nil)
		result.TotalQuestions = total
		return err
	})
	if categoryID != nil {
		g.Go(func() error {
			filtered, err := s.questions.Count(gctx, categoryID)
			result.TotalFiltered = filtered
			return err
		})
	}
	g.Go(func() error {
		categories, err := s.categories.GetAll(gctx)
		result.Categories = categories
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("failed to list questions", err)
	}
	if categoryID == nil {
		result.TotalFiltered = result.TotalQuestions
	}

	if len(result.Questions) == 0 {
		notFound := domain.NewNotFoundError("no questions on page").WithContext("page", page)
		if categoryID != nil {
			notFound.WithContext("category_id", *categoryID)
		}
		return nil, notFound
	}

	return &dto.QuestionsResponse{
		Success:         true,
		Questions:       dto.NewQuestionResponses(result.Questions),
		TotalQuestions:  result.TotalQuestions,
		TotalFiltered:   result.TotalFiltered,
		Categories:      dto.NewCategoryResponses(result.Categories),
		CurrentCategory: currentCategory,
	}, nil
}

// DeleteQuestion implements TriviaService
func (s *triviaService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	question, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to look up question", err).WithContext("question_id", id)
	}
	if question == nil {
		return nil, domain.NewQuestionNotFoundError(id)
	}

	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to delete question", err).WithContext("question_id", id)
	}
	if !deleted {
		// removed by a concurrent request between lookup and delete
		return nil, domain.NewQuestionNotFoundError(id)
	}

	logger.Get().Info("Deleted question", zap.Int64("question_id", id))
	return &dto.DeleteQuestionResponse{Success: true, Deleted: id}, nil
}

// CreateQuestion implements TriviaService
func (s *triviaService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	question := domain.NewQuestion(req.Question, req.Answer, req.Category, req.Difficulty)
	if err := s.questions.Save(ctx, question); err != nil {
		return nil, domain.NewUnprocessableError("failed to create question", err)
	}

	logger.Get().Info("Created question", zap.Int64("question_id", question.ID), zap.Int64("category", question.Category))
	return &dto.CreateQuestionResponse{Success: true, Created: question.ID}, nil
}

// SearchQuestions implements TriviaService. Unlike ListQuestions, an empty
// result is a successful response.
func (s *triviaService) SearchQuestions(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error) {
	pagination := domain.NewPagination(page)

	var result domain.SearchResult
	g, gctx := errgroup.WithContext(ctx)
	if pagination.Valid() {
		g.Go(func() error {
			questions, err := s.questions.Search(gctx, keyword, pagination.Limit(), pagination.Offset())
			result.Questions = questions
			return err
		})
	}
	g.Go(func() error {
		total, err := s.questions.CountSearch(gctx, keyword)
		result.TotalResults = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domain.NewUnprocessableError("failed to search questions", err).WithContext("keyword", keyword)
	}

	return &dto.SearchQuestionsResponse{
		Success:      true,
		Questions:    dto.NewQuestionResponses(result.Questions),
		TotalResults: result.TotalResults,
	}, nil
}

// NextQuizQuestion implements TriviaService. When every eligible question
// has been seen the response carries a null question.
func (s *triviaService) NextQuizQuestion(ctx context.Context, round domain.QuizRound) (*dto.QuizQuestionResponse, error) {
	question, err := s.questions.GetRandom(ctx, round.CategoryFilter(), round.PreviousQuestions)
	if err != nil {
		return nil, domain.NewUnprocessableError("failed to select quiz question", err).
			WithContext("category", round.Category)
	}

	previous := round.PreviousQuestions
	if previous == nil {
		previous = []int64{}
	}

	resp := &dto.QuizQuestionResponse{
		Success:           true,
		PreviousQuestions: previous,
	}
	if question != nil {
		q := dto.NewQuestionResponse(question)
		resp.Question = &q
	}
	return resp, nil
}
