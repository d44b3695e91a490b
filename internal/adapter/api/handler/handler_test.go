package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dressly/internal/adapter/api"
	"dressly/internal/adapter/api/middleware"
	"dressly/internal/domain/entity"
	"dressly/internal/domain/service"
	"dressly/internal/infrastructure/auth"
	"dressly/internal/usecase"
	"dressly/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type fakeWishlistRepo struct {
	items map[string]*entity.WishlistItem
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: map[string]*entity.WishlistItem{}}
}

func (r *fakeWishlistRepo) Add(ctx context.Context, item *entity.WishlistItem) error {
	item.ID = item.UserID + "_" + item.ProductCode
	r.items[item.ID] = item
	return nil
}

func (r *fakeWishlistRepo) Exists(ctx context.Context, userID, productCode string) (bool, error) {
	_, ok := r.items[userID+"_"+productCode]
	return ok, nil
}

func (r *fakeWishlistRepo) ListByUser(ctx context.Context, userID string) ([]entity.WishlistItem, error) {
	var out []entity.WishlistItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) Remove(ctx context.Context, userID, productCode string) error {
	key := userID + "_" + productCode
	if _, ok := r.items[key]; !ok {
		return errors.NotFound("Item", nil)
	}
	delete(r.items, key)
	return nil
}

type fakeStyleGenerator struct{}

func (fakeStyleGenerator) Generate(ctx context.Context, answers entity.QuizAnswers) (*service.StyleResult, error) {
	return &service.StyleResult{
		Text:       "Linen everything.",
		Categories: []string{"women_dresses"},
	}, nil
}

type fakeCatalogClient struct{}

func (fakeCatalogClient) ListProducts(ctx context.Context, categoryID string, page, size int) (map[string]interface{}, error) {
	return map[string]interface{}{
		"plpList": map[string]interface{}{
			"productList": []interface{}{
				map[string]interface{}{"articleCode": "100", "productName": "Dress"},
			},
		},
	}, nil
}

func newTestServer() (*echo.Echo, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", 3600)
	authMiddleware := middleware.NewAuthMiddleware(tokens)

	wishlistUC := usecase.NewWishlistUseCase(newFakeWishlistRepo())
	quizUC := usecase.NewQuizUseCase(fakeStyleGenerator{}, fakeCatalogClient{}, service.NewCategoryResolver())

	wishlistHandler := NewWishlistHandler(wishlistUC)
	quizHandler := NewQuizHandler(quizUC)

	e := echo.New()
	e.Validator = api.NewValidator()

	e.POST("/quiz/submit", quizHandler.Submit)

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(authMiddleware.Authenticate)
	wishlistGroup.POST("", wishlistHandler.Add)
	wishlistGroup.GET("", wishlistHandler.List)
	wishlistGroup.DELETE("/:code", wishlistHandler.Remove)

	return e, tokens
}

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestQuizSubmitEndpoint(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodPost, "/quiz/submit", "", `{"occasion": ["Casual"], "style": "minimal"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Linen everything.", body["recommendation"])
	assert.NotEmpty(t, body["products"])
	assert.Equal(t, []interface{}{"women_dresses"}, body["categories_searched"])

	// The submitted answers are echoed back
	input, ok := body["input"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "minimal", input["style"])
}

func TestWishlistRequiresAuth(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodGet, "/wishlist", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(e, http.MethodPost, "/wishlist", "", `{"code": "1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWishlistRejectsBadToken(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(e, http.MethodGet, "/wishlist", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWishlistAddListRemoveFlow(t *testing.T) {
	e, tokens := newTestServer()
	token, err := tokens.CreateToken("user-1")
	assert.NoError(t, err)

	item := `{"code": "100", "name": "Dress", "price": {"formattedValue": "$39.99", "currencyIso": "USD"}, "images": [{"url": "https://img/dress.jpg"}]}`

	rec := doRequest(e, http.MethodPost, "/wishlist", token, item)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item added to wishlist")

	// Second add of the same (user, code) is a no-op
	rec = doRequest(e, http.MethodPost, "/wishlist", token, item)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item already in wishlist")

	rec = doRequest(e, http.MethodGet, "/wishlist", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var listBody struct {
		Items []entity.CanonicalProduct `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listBody))
	assert.Len(t, listBody.Items, 1)
	assert.Equal(t, "100", listBody.Items[0].Code)

	rec = doRequest(e, http.MethodDelete, "/wishlist/100", token, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item removed from wishlist")

	rec = doRequest(e, http.MethodGet, "/wishlist", token, "")
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listBody))
	assert.Empty(t, listBody.Items)
}

func TestWishlistRemoveMissingReturns404(t *testing.T) {
	e, tokens := newTestServer()
	token, err := tokens.CreateToken("user-1")
	assert.NoError(t, err)

	rec := doRequest(e, http.MethodDelete, "/wishlist/nope", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistAddRequiresCode(t *testing.T) {
	e, tokens := newTestServer()
	token, err := tokens.CreateToken("user-1")
	assert.NoError(t, err)

	rec := doRequest(e, http.MethodPost, "/wishlist", token, `{"name": "No Code"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
