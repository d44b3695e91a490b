package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"dressly/internal/domain/entity"
	"dressly/pkg/logger"
)

// StyleResult is what the recommendation generator hands to the quiz flow:
// the advice prose plus up to three category search terms.
type StyleResult struct {
	Text       string
	Categories []string
}

// GeminiStyleService generates styling advice from quiz answers using the
// Gemini generateContent REST API.
type GeminiStyleService struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiStyleService(apiKey, model string) *GeminiStyleService {
	return &GeminiStyleService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{},
	}
}

// SetBaseURL points the client at a different API host.
func (s *GeminiStyleService) SetBaseURL(url string) {
	s.baseURL = url
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate builds the stylist prompt from the quiz answers, calls Gemini
// and parses the two labeled sections out of the reply. A model-not-found
// response degrades to a deterministic rule-based result; any other failure
// is returned to the caller.
func (s *GeminiStyleService) Generate(ctx context.Context, answers entity.QuizAnswers) (*StyleResult, error) {
	prompt := buildStylePrompt(answers)

	text, err := s.generateContent(ctx, prompt)
	if err != nil {
		if err == errModelNotFound {
			logger.Warn("Gemini model %s not available, returning fallback recommendations", s.model)
			return fallbackStyleResult(answers), nil
		}
		logger.Error("AI generation error: %v", err)
		return nil, err
	}

	return parseStyleResponse(text, answers), nil
}

var errModelNotFound = fmt.Errorf("model not found")

func (s *GeminiStyleService) generateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	requestURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", requestURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Gemini response: %v", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return "", errModelNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(body))
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %v", err)
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini response contained no candidates")
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, nil
}

func buildStylePrompt(answers entity.QuizAnswers) string {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		answersJSON = []byte("{}")
	}

	return fmt.Sprintf(`You are a professional fashion stylist.

Here are the user's quiz answers:
%s

Based on this, generate:
1. A complete outfit suggestion for their occasion
2. 3 personalized styling tips
3. A color palette recommendation
4. Clothing items to avoid

Then, list 3-5 specific H&M product categories to search for (like "men_trousers", "women_dresses", "men_shirts", "women_tops", etc.)

Format your response as:
RECOMMENDATIONS:
[Your style recommendations here]

CATEGORIES:
category1, category2, category3

Make it short & practical.`, answersJSON)
}

// parseStyleResponse splits the reply on the CATEGORIES: marker. Without
// the marker the whole reply is the recommendation and the categories come
// from the occasion rule instead.
func parseStyleResponse(text string, answers entity.QuizAnswers) *StyleResult {
	if strings.Contains(text, "CATEGORIES:") {
		parts := strings.SplitN(text, "CATEGORIES:", 2)
		recommendations := strings.TrimSpace(strings.ReplaceAll(parts[0], "RECOMMENDATIONS:", ""))

		var categories []string
		for _, cat := range strings.Split(strings.TrimSpace(parts[1]), ",") {
			categories = append(categories, strings.TrimSpace(cat))
		}

		return &StyleResult{
			Text:       recommendations,
			Categories: limitCategories(categories),
		}
	}

	var categories []string
	switch {
	case answers.HasOccasion("Work", "Formal"):
		categories = []string{"men_blazerssuits", "women_blazerssuits", "men_trousers"}
	case answers.HasOccasion("Casual"):
		categories = []string{"men_jeans", "women_jeans", "men_tshirtstanks"}
	default:
		categories = []string{"men_clothing", "women_clothing"}
	}

	return &StyleResult{
		Text:       text,
		Categories: limitCategories(categories),
	}
}

// fallbackStyleResult needs no external dependency at all: fixed prose and
// category triples per occasion branch.
func fallbackStyleResult(answers entity.QuizAnswers) *StyleResult {
	var categories []string
	var recommendations string

	switch {
	case answers.HasOccasion("Work", "Formal"):
		categories = []string{"women_blazerssuits", "men_blazerssuits", "men_trousers"}
		recommendations = "Classic tailored outfit: blazer, crisp shirt, and tailored trousers. Colors: neutrals with a pop of color. Avoid overly casual items."
	case answers.HasOccasion("Casual"):
		categories = []string{"women_jeans", "men_jeans", "women_tops"}
		recommendations = "Casual outfit: well-fitted jeans, comfortable top, and layered outerwear. Colors: denim and earth tones. Avoid formal fabrics."
	default:
		categories = []string{"women_clothing", "men_clothing", "women_tops"}
		recommendations = "Versatile outfit suggestion: mix basics with one statement piece. Stick to a coherent color palette and consider proportion."
	}

	return &StyleResult{
		Text:       recommendations,
		Categories: limitCategories(categories),
	}
}

func limitCategories(categories []string) []string {
	if len(categories) > 3 {
		return categories[:3]
	}
	return categories
}
