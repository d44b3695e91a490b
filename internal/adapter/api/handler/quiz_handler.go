package handler

import (
	"net/http"

	"dressly/internal/domain/entity"
	"dressly/internal/usecase"
	"dressly/pkg/logger"
	"dressly/pkg/response"

	"github.com/labstack/echo/v4"
)

type QuizHandler struct {
	quizUseCase *usecase.QuizUseCase
}

func NewQuizHandler(quizUseCase *usecase.QuizUseCase) *QuizHandler {
	return &QuizHandler{
		quizUseCase: quizUseCase,
	}
}

func (h *QuizHandler) Submit(c echo.Context) error {
	var answers entity.QuizAnswers
	if err := c.Bind(&answers); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	logger.Info("Quiz received with %d answers", len(answers))

	result, err := h.quizUseCase.Submit(c.Request().Context(), answers)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
