package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TriviaHandler handles trivia-related HTTP requests
type TriviaHandler struct {
	service   service.TriviaService
	validator *validation.Validator
}

// NewTriviaHandler creates a new TriviaHandler instance
func NewTriviaHandler(service service.TriviaService) *TriviaHandler {
	return &TriviaHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// RegisterRoutes mounts the trivia endpoints on r
func (h *TriviaHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/categories", h.GetCategories)
	r.Get("/questions", middleware.ParseListQuery(), h.GetQuestions)
	r.Post("/questions", h.CreateQuestion)
	r.Delete("/questions/:id<int>", h.DeleteQuestion)
	r.Post("/questions/search", middleware.ParsePageQuery(), h.SearchQuestions)
	r.Post("/get-question", h.GetQuizQuestion)
}

// GetCategories godoc
// @Summary List categories
// @Description Returns every category ordered by id
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *TriviaHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.service.GetCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions godoc
// @Summary List questions
// @Description Returns a page of ten questions ordered by id, optionally restricted to one category
// @Tags questions
// @Produce json
// @Param category_id query int false "Category ID"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *TriviaHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.ListQuestions(c.UserContext(), middleware.CategoryID(c), middleware.Page(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *TriviaHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return domain.NewNotFoundError("invalid question id")
	}

	resp, err := h.service.DeleteQuestion(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuestion godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question details"
// @Success 200 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *TriviaHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateQuestion(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text, ten results per page
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.SearchQuestionsRequest true "Search term"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.SearchQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /questions/search [post]
func (h *TriviaHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchQuestionsRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.SearchQuestions(c.UserContext(), *req.Keyword, middleware.Page(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuizQuestion godoc
// @Summary Next quiz question
// @Description Returns a random question not in previous_questions. Category 0 means any category; question is null once the pool is exhausted.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.QuizQuestionRequest true "Quiz round"
// @Success 200 {object} dto.QuizQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /get-question [post]
func (h *TriviaHandler) GetQuizQuestion(c *fiber.Ctx) error {
	var req dto.QuizQuestionRequest
	if err := h.parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.service.NextQuizQuestion(c.UserContext(), domain.QuizRound{
		Category:          *req.Category,
		PreviousQuestions: req.PreviousQuestions,
	})
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// parseBody decodes the JSON body into req and runs its validate tags
func (h *TriviaHandler) parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewBadRequestError("invalid request body", err)
	}
	return h.validator.ValidateStruct(req)
}
