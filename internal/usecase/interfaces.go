package usecase

import (
	"context"

	"dressly/internal/domain/entity"
	"dressly/internal/domain/service"
)

// StyleGenerator produces styling advice and category terms from quiz
// answers.
type StyleGenerator interface {
	Generate(ctx context.Context, answers entity.QuizAnswers) (*service.StyleResult, error)
}

// CatalogClient fetches one page of raw product listings for a category.
type CatalogClient interface {
	ListProducts(ctx context.Context, categoryID string, page, size int) (map[string]interface{}, error)
}

// TokenProvider issues and verifies bearer tokens for authenticated routes.
type TokenProvider interface {
	CreateToken(userID string) (string, error)
	VerifyToken(token string) (string, error)
}
