package usecase

import (
	"context"

	"dressly/internal/domain/entity"
	"dressly/internal/domain/service"
	"dressly/pkg/logger"
)

const (
	catalogPageSize = 30
	maxQuizProducts = 12
)

// QuizUseCase runs the quiz submission flow: style generation, category
// resolution, one catalog fetch, normalization, and response assembly.
// All outbound calls run sequentially within the request.
type QuizUseCase struct {
	styleGenerator   StyleGenerator
	catalogClient    CatalogClient
	categoryResolver *service.CategoryResolver
}

func NewQuizUseCase(
	styleGenerator StyleGenerator,
	catalogClient CatalogClient,
	categoryResolver *service.CategoryResolver,
) *QuizUseCase {
	return &QuizUseCase{
		styleGenerator:   styleGenerator,
		catalogClient:    catalogClient,
		categoryResolver: categoryResolver,
	}
}

type QuizResult struct {
	Status             string                    `json:"status"`
	Input              entity.QuizAnswers        `json:"input"`
	Recommendation     string                    `json:"recommendation"`
	Products           []entity.CanonicalProduct `json:"products"`
	CategoriesSearched []string                  `json:"categories_searched"`
}

// Submit processes one quiz submission. A failed catalog fetch degrades to
// zero products and the request still succeeds; a style-generation failure
// beyond the handled model-not-found case is returned to the caller.
func (uc *QuizUseCase) Submit(ctx context.Context, answers entity.QuizAnswers) (*QuizResult, error) {
	styleResult, err := uc.styleGenerator.Generate(ctx, answers)
	if err != nil {
		return nil, err
	}

	category := uc.categoryResolver.Resolve(styleResult.Categories)
	logger.Info("Fetching products from category: %s", category)

	products := []entity.CanonicalProduct{}
	raw, err := uc.catalogClient.ListProducts(ctx, category, 1, catalogPageSize)
	if err != nil {
		logger.Warn("Failed to fetch products: %v", err)
	} else {
		normalized := service.NormalizeCatalogResponse(raw)
		logger.Info("Normalized %d products, skipped %d", len(normalized.Products), normalized.Skipped)
		products = normalized.Products
	}

	if len(products) > maxQuizProducts {
		products = products[:maxQuizProducts]
	}

	return &QuizResult{
		Status:             "success",
		Input:              answers,
		Recommendation:     styleResult.Text,
		Products:           products,
		CategoriesSearched: styleResult.Categories,
	}, nil
}
