package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dressly/pkg/logger"
)

// HMCatalogService fetches product listings from the H&M catalog via the
// RapidAPI gateway.
type HMCatalogService struct {
	apiKey  string
	apiHost string
	country string
	lang    string
	baseURL string
	client  *http.Client
}

func NewHMCatalogService(apiKey, apiHost, country, lang string) *HMCatalogService {
	return &HMCatalogService{
		apiKey:  apiKey,
		apiHost: apiHost,
		country: country,
		lang:    lang,
		baseURL: "https://" + apiHost,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// ListProducts fetches one page of product listings for a category. Pages
// are 1-indexed. The response is returned as-is; its shape varies by
// category and gateway version, so normalization happens elsewhere.
func (s *HMCatalogService) ListProducts(ctx context.Context, categoryID string, page, size int) (map[string]interface{}, error) {
	params := url.Values{}
	params.Set("country", s.country)
	params.Set("lang", s.lang)
	params.Set("currentPage", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(size))
	params.Set("categoryId", categoryID)

	requestURL := s.baseURL + "/products/v2/list?" + params.Encode()
	logger.Info("Calling H&M API: category=%s page=%d size=%d", categoryID, page, size)

	httpReq, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	httpReq.Header.Set("X-RapidAPI-Key", s.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", s.apiHost)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call H&M API: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read H&M API response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("H&M API error %d for category=%s: %s", resp.StatusCode, categoryID, string(body))
		return nil, fmt.Errorf("H&M API returned status %d", resp.StatusCode)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse H&M API response: %v", err)
	}

	logger.Debug("H&M API OK: %d top-level keys", len(data))
	return data, nil
}
