package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dressly/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestParseStyleResponseWithMarker(t *testing.T) {
	text := `RECOMMENDATIONS:
Wear a navy blazer with white sneakers.

CATEGORIES:
men_blazerssuits, men_shirts, men_shoes, men_trousers, men_accessories`

	result := parseStyleResponse(text, entity.QuizAnswers{})

	assert.Equal(t, "Wear a navy blazer with white sneakers.", result.Text)
	// Truncated to the first 3 terms
	assert.Equal(t, []string{"men_blazerssuits", "men_shirts", "men_shoes"}, result.Categories)
}

func TestParseStyleResponseWithoutMarkerUsesOccasionRule(t *testing.T) {
	answers := entity.QuizAnswers{"occasion": []interface{}{"Work"}}

	result := parseStyleResponse("Some free-form advice.", answers)

	assert.Equal(t, "Some free-form advice.", result.Text)
	assert.Equal(t, []string{"men_blazerssuits", "women_blazerssuits", "men_trousers"}, result.Categories)
}

func TestParseStyleResponseCasualRule(t *testing.T) {
	answers := entity.QuizAnswers{"occasion": []interface{}{"Casual"}}

	result := parseStyleResponse("Advice.", answers)

	assert.Equal(t, []string{"men_jeans", "women_jeans", "men_tshirtstanks"}, result.Categories)
}

func TestParseStyleResponseDefaultRule(t *testing.T) {
	result := parseStyleResponse("Advice.", entity.QuizAnswers{"occasion": []interface{}{"Party"}})

	assert.Equal(t, []string{"men_clothing", "women_clothing"}, result.Categories)
}

func TestFallbackStyleResultWork(t *testing.T) {
	answers := entity.QuizAnswers{"occasion": []interface{}{"Work"}}

	result := fallbackStyleResult(answers)

	assert.Equal(t, []string{"women_blazerssuits", "men_blazerssuits", "men_trousers"}, result.Categories)
	assert.NotEmpty(t, result.Text)
	assert.Contains(t, result.Text, "tailored")
}

func TestFallbackStyleResultCasual(t *testing.T) {
	answers := entity.QuizAnswers{"occasion": "Casual"}

	result := fallbackStyleResult(answers)

	assert.Equal(t, []string{"women_jeans", "men_jeans", "women_tops"}, result.Categories)
	assert.NotEmpty(t, result.Text)
}

func TestFallbackStyleResultDefault(t *testing.T) {
	result := fallbackStyleResult(entity.QuizAnswers{})

	assert.Equal(t, []string{"women_clothing", "men_clothing", "women_tops"}, result.Categories)
	assert.NotEmpty(t, result.Text)
}

func newTestGeminiService(serverURL string) *GeminiStyleService {
	svc := NewGeminiStyleService("test-key", "test-model")
	svc.baseURL = serverURL
	return svc
}

func TestGenerateParsesGeminiReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "test-model:generateContent")

		reply := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{
						{"text": "RECOMMENDATIONS:\nGo monochrome.\nCATEGORIES:\nwomen_dresses, women_shoes"},
					},
				}},
			},
		}
		json.NewEncoder(w).Encode(reply)
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)
	result, err := svc.Generate(context.Background(), entity.QuizAnswers{"style": "minimal"})

	assert.NoError(t, err)
	assert.Equal(t, "Go monochrome.", result.Text)
	assert.Equal(t, []string{"women_dresses", "women_shoes"}, result.Categories)
}

func TestGenerateModelNotFoundFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 404, "status": "NOT_FOUND"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)
	result, err := svc.Generate(context.Background(), entity.QuizAnswers{"occasion": []interface{}{"Work"}})

	assert.NoError(t, err)
	assert.Equal(t, []string{"women_blazerssuits", "men_blazerssuits", "men_trousers"}, result.Categories)
	assert.NotEmpty(t, result.Text)
}

func TestGenerateOtherErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := newTestGeminiService(server.URL)
	result, err := svc.Generate(context.Background(), entity.QuizAnswers{})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestBuildStylePromptEmbedsAnswers(t *testing.T) {
	prompt := buildStylePrompt(entity.QuizAnswers{"occasion": "Work", "budget": "mid"})

	assert.Contains(t, prompt, "professional fashion stylist")
	assert.Contains(t, prompt, `"occasion":"Work"`)
	assert.Contains(t, prompt, "RECOMMENDATIONS:")
	assert.Contains(t, prompt, "CATEGORIES:")
}
