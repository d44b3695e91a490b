package router

import (
	"dressly/internal/adapter/api/handler"
	"dressly/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func Setup(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	quizHandler *handler.QuizHandler,
	wishlistHandler *handler.WishlistHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	SetupAuthRouter(e, authHandler, authMiddleware)
	SetupQuizRouter(e, quizHandler)
	SetupWishlistRouter(e, wishlistHandler, authMiddleware)
	SetupHealthRouter(e, healthHandler)
}
