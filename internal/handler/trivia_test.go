package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockTriviaService
type MockTriviaService struct {
	GetCategoriesFunc    func(ctx context.Context) (*dto.CategoriesResponse, error)
	ListQuestionsFunc    func(ctx context.Context, categoryID *int64, page int) (*dto.QuestionsResponse, error)
	DeleteQuestionFunc   func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error)
	CreateQuestionFunc   func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error)
	SearchQuestionsFunc  func(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error)
	NextQuizQuestionFunc func(ctx context.Context, round domain.QuizRound) (*dto.QuizQuestionResponse, error)
}

func (m *MockTriviaService) GetCategories(ctx context.Context) (*dto.CategoriesResponse, error) {
	if m.GetCategoriesFunc != nil {
		return m.GetCategoriesFunc(ctx)
	}
	panic("MockTriviaService.GetCategoriesFunc not implemented")
}
func (m *MockTriviaService) ListQuestions(ctx context.Context, categoryID *int64, page int) (*dto.QuestionsResponse, error) {
	if m.ListQuestionsFunc != nil {
		return m.ListQuestionsFunc(ctx, categoryID, page)
	}
	panic("MockTriviaService.ListQuestionsFunc not implemented")
}
func (m *MockTriviaService) DeleteQuestion(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
	if m.DeleteQuestionFunc != nil {
		return m.DeleteQuestionFunc(ctx, id)
	}
	panic("MockTriviaService.DeleteQuestionFunc not implemented")
}
func (m *MockTriviaService) CreateQuestion(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
	if m.CreateQuestionFunc != nil {
		return m.CreateQuestionFunc(ctx, req)
	}
	panic("MockTriviaService.CreateQuestionFunc not implemented")
}
func (m *MockTriviaService) SearchQuestions(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error) {
	if m.SearchQuestionsFunc != nil {
		return m.SearchQuestionsFunc(ctx, keyword, page)
	}
	panic("MockTriviaService.SearchQuestionsFunc not implemented")
}
func (m *MockTriviaService) NextQuizQuestion(ctx context.Context, round domain.QuizRound) (*dto.QuizQuestionResponse, error) {
	if m.NextQuizQuestionFunc != nil {
		return m.NextQuizQuestionFunc(ctx, round)
	}
	panic("MockTriviaService.NextQuizQuestionFunc not implemented")
}

func setupApp(svc *MockTriviaService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	handler.NewTriviaHandler(svc).RegisterRoutes(app.Group("/api"))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewBuffer(raw)
		}
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func assertErrorEnvelope(t *testing.T, resp *http.Response, status int, message string) {
	t.Helper()
	assert.Equal(t, status, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, dto.ErrorResponse{Success: false, Error: status, Message: message}, body)
}

func TestTriviaHandler_GetCategories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockTriviaService{
			GetCategoriesFunc: func(ctx context.Context) (*dto.CategoriesResponse, error) {
				return &dto.CategoriesResponse{
					Success:    true,
					Categories: []dto.CategoryResponse{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}},
					Total:      2,
				}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodGet, "/api/categories", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body dto.CategoriesResponse
		decode(t, resp, &body)
		assert.True(t, body.Success)
		assert.Equal(t, 2, body.Total)
		assert.Equal(t, "Science", body.Categories[0].Type)
	})

	t.Run("ServiceError", func(t *testing.T) {
		svc := &MockTriviaService{
			GetCategoriesFunc: func(ctx context.Context) (*dto.CategoriesResponse, error) {
				return nil, domain.NewInternalError("failed to get categories", errors.New("db down"))
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodGet, "/api/categories", nil)

		assertErrorEnvelope(t, resp, http.StatusInternalServerError, "internal server error")
	})
}

func TestTriviaHandler_GetQuestions(t *testing.T) {
	t.Run("DefaultsToFirstPageWithoutFilter", func(t *testing.T) {
		var gotCategory *int64
		var gotPage int
		svc := &MockTriviaService{
			ListQuestionsFunc: func(ctx context.Context, categoryID *int64, page int) (*dto.QuestionsResponse, error) {
				gotCategory, gotPage = categoryID, page
				return &dto.QuestionsResponse{
					Success:         true,
					Questions:       []dto.QuestionResponse{{ID: 1, Question: "Q", Answer: "A", Category: 1, Difficulty: 2}},
					TotalQuestions:  19,
					TotalFiltered:   19,
					Categories:      []dto.CategoryResponse{{ID: 1, Type: "Science"}},
					CurrentCategory: 1,
				}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodGet, "/api/questions", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Nil(t, gotCategory)
		assert.Equal(t, 1, gotPage)
		var body map[string]interface{}
		decode(t, resp, &body)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, float64(19), body["total_questions"])
		assert.Equal(t, float64(1), body["current_category"])
		assert.Len(t, body["questions"], 1)
	})

	t.Run("PassesCategoryAndPage", func(t *testing.T) {
		var gotCategory *int64
		var gotPage int
		svc := &MockTriviaService{
			ListQuestionsFunc: func(ctx context.Context, categoryID *int64, page int) (*dto.QuestionsResponse, error) {
				gotCategory, gotPage = categoryID, page
				return &dto.QuestionsResponse{Success: true}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodGet, "/api/questions?category_id=3&page=2", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, gotCategory)
		assert.Equal(t, int64(3), *gotCategory)
		assert.Equal(t, 2, gotPage)
	})

	t.Run("EmptyPageIsNotFound", func(t *testing.T) {
		svc := &MockTriviaService{
			ListQuestionsFunc: func(ctx context.Context, categoryID *int64, page int) (*dto.QuestionsResponse, error) {
				return nil, domain.NewNotFoundError("no questions on page")
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodGet, "/api/questions?page=1000", nil)

		assertErrorEnvelope(t, resp, http.StatusNotFound, "resource not found")
	})

	t.Run("NonNumericCategoryIsBadRequest", func(t *testing.T) {
		resp := doRequest(t, setupApp(&MockTriviaService{}), http.MethodGet, "/api/questions?category_id=science", nil)

		assertErrorEnvelope(t, resp, http.StatusBadRequest, "bad request")
	})
}

func TestTriviaHandler_DeleteQuestion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotID int64
		svc := &MockTriviaService{
			DeleteQuestionFunc: func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
				gotID = id
				return &dto.DeleteQuestionResponse{Success: true, Deleted: id}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodDelete, "/api/questions/11", nil)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int64(11), gotID)
		var body dto.DeleteQuestionResponse
		decode(t, resp, &body)
		assert.Equal(t, dto.DeleteQuestionResponse{Success: true, Deleted: 11}, body)
	})

	t.Run("MissingIsNotFound", func(t *testing.T) {
		svc := &MockTriviaService{
			DeleteQuestionFunc: func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
				return nil, domain.NewQuestionNotFoundError(id)
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodDelete, "/api/questions/2000", nil)

		assertErrorEnvelope(t, resp, http.StatusNotFound, "resource not found")
	})

	t.Run("StoreErrorIsUnprocessable", func(t *testing.T) {
		svc := &MockTriviaService{
			DeleteQuestionFunc: func(ctx context.Context, id int64) (*dto.DeleteQuestionResponse, error) {
				return nil, domain.NewUnprocessableError("failed to delete question", errors.New("lock timeout"))
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodDelete, "/api/questions/11", nil)

		assertErrorEnvelope(t, resp, http.StatusUnprocessableEntity, "unprocessable")
	})

	t.Run("NonNumericIDIsNotFound", func(t *testing.T) {
		resp := doRequest(t, setupApp(&MockTriviaService{}), http.MethodDelete, "/api/questions/abc", nil)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestTriviaHandler_CreateQuestion(t *testing.T) {
	valid := map[string]interface{}{
		"question":   "question_test",
		"answer":     "answer2",
		"difficulty": 4,
		"category":   2,
	}

	t.Run("Success", func(t *testing.T) {
		var got *dto.CreateQuestionRequest
		svc := &MockTriviaService{
			CreateQuestionFunc: func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
				got = req
				return &dto.CreateQuestionResponse{Success: true, Created: 24}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/questions", valid)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, got)
		assert.Equal(t, dto.CreateQuestionRequest{Question: "question_test", Answer: "answer2", Difficulty: 4, Category: 2}, *got)
		var body dto.CreateQuestionResponse
		decode(t, resp, &body)
		assert.Equal(t, dto.CreateQuestionResponse{Success: true, Created: 24}, body)
	})

	t.Run("StoreErrorIsUnprocessable", func(t *testing.T) {
		svc := &MockTriviaService{
			CreateQuestionFunc: func(ctx context.Context, req *dto.CreateQuestionRequest) (*dto.CreateQuestionResponse, error) {
				return nil, domain.NewUnprocessableError("failed to create question", errors.New("insert failed"))
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/questions", valid)

		assertErrorEnvelope(t, resp, http.StatusUnprocessableEntity, "unprocessable")
	})

	badBodies := map[string]interface{}{
		"MalformedJSON":      `{"question": `,
		"MissingAnswer":      map[string]interface{}{"question": "q", "difficulty": 1, "category": 1},
		"DifficultyTooHigh":  map[string]interface{}{"question": "q", "answer": "a", "difficulty": 6, "category": 1},
		"CategoryNotInteger": map[string]interface{}{"question": "q", "answer": "a", "difficulty": 1, "category": "one"},
	}
	for name, body := range badBodies {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, setupApp(&MockTriviaService{}), http.MethodPost, "/api/questions", body)

			assertErrorEnvelope(t, resp, http.StatusBadRequest, "bad request")
		})
	}
}

func TestTriviaHandler_SearchQuestions(t *testing.T) {
	t.Run("Matches", func(t *testing.T) {
		var gotKeyword string
		var gotPage int
		svc := &MockTriviaService{
			SearchQuestionsFunc: func(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error) {
				gotKeyword, gotPage = keyword, page
				return &dto.SearchQuestionsResponse{
					Success:      true,
					Questions:    []dto.QuestionResponse{{ID: 9, Question: "What boxer's original name is Cassius Clay?"}},
					TotalResults: 1,
				}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/questions/search?page=1", map[string]string{"keyword": "what"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "what", gotKeyword)
		assert.Equal(t, 1, gotPage)
		var body dto.SearchQuestionsResponse
		decode(t, resp, &body)
		assert.Equal(t, 1, body.TotalResults)
	})

	t.Run("NoMatchesIsSuccess", func(t *testing.T) {
		svc := &MockTriviaService{
			SearchQuestionsFunc: func(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error) {
				return &dto.SearchQuestionsResponse{Success: true, Questions: []dto.QuestionResponse{}, TotalResults: 0}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/questions/search", map[string]string{"keyword": "title"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]interface{}
		decode(t, resp, &body)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, []interface{}{}, body["questions"])
		assert.Equal(t, float64(0), body["total_results"])
	})

	t.Run("CategoryQueryIsIgnored", func(t *testing.T) {
		var gotPage int
		svc := &MockTriviaService{
			SearchQuestionsFunc: func(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error) {
				gotPage = page
				return &dto.SearchQuestionsResponse{Success: true, Questions: []dto.QuestionResponse{}}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/questions/search?category_id=science&page=3", map[string]string{"keyword": "what"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 3, gotPage)
	})

	t.Run("MissingKeywordIsBadRequest", func(t *testing.T) {
		resp := doRequest(t, setupApp(&MockTriviaService{}), http.MethodPost, "/api/questions/search", map[string]string{})

		assertErrorEnvelope(t, resp, http.StatusBadRequest, "bad request")
	})

	t.Run("StoreErrorIsUnprocessable", func(t *testing.T) {
		svc := &MockTriviaService{
			SearchQuestionsFunc: func(ctx context.Context, keyword string, page int) (*dto.SearchQuestionsResponse, error) {
				return nil, domain.NewUnprocessableError("failed to search questions", errors.New("db down"))
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/questions/search", map[string]string{"keyword": "what"})

		assertErrorEnvelope(t, resp, http.StatusUnprocessableEntity, "unprocessable")
	})
}

func TestTriviaHandler_GetQuizQuestion(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got domain.QuizRound
		svc := &MockTriviaService{
			NextQuizQuestionFunc: func(ctx context.Context, round domain.QuizRound) (*dto.QuizQuestionResponse, error) {
				got = round
				return &dto.QuizQuestionResponse{
					Success:           true,
					Question:          &dto.QuestionResponse{ID: 22, Question: "Q", Answer: "A", Category: 2, Difficulty: 4},
					PreviousQuestions: round.PreviousQuestions,
				}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/get-question", map[string]interface{}{
			"category":           2,
			"previous_questions": []int64{20, 21},
		})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, domain.QuizRound{Category: 2, PreviousQuestions: []int64{20, 21}}, got)
		var body dto.QuizQuestionResponse
		decode(t, resp, &body)
		require.NotNil(t, body.Question)
		assert.Equal(t, int64(22), body.Question.ID)
	})

	t.Run("AnyCategoryWithEmptyHistory", func(t *testing.T) {
		var got domain.QuizRound
		svc := &MockTriviaService{
			NextQuizQuestionFunc: func(ctx context.Context, round domain.QuizRound) (*dto.QuizQuestionResponse, error) {
				got = round
				return &dto.QuizQuestionResponse{Success: true, PreviousQuestions: round.PreviousQuestions}, nil
			},
		}

		resp := doRequest(t, setupApp(svc), http.MethodPost, "/api/get-question", `{"category": 0, "previous_questions": []}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int64(0), got.Category)
		assert.Empty(t, got.PreviousQuestions)
		var body map[string]interface{}
		decode(t, resp, &body)
		assert.Nil(t, body["question"])
	})

	badBodies := map[string]string{
		"MissingCategory":          `{"previous_questions": []}`,
		"MissingPreviousQuestions": `{"category": 1}`,
		"NegativeCategory":         `{"category": -1, "previous_questions": []}`,
		"Malformed":                `not json`,
	}
	for name, body := range badBodies {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, setupApp(&MockTriviaService{}), http.MethodPost, "/api/get-question", body)

			assertErrorEnvelope(t, resp, http.StatusBadRequest, "bad request")
		})
	}
}
