package router

import (
	"dressly/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupQuizRouter(e *echo.Echo, quizHandler *handler.QuizHandler) {
	e.POST("/quiz/submit", quizHandler.Submit)
}
