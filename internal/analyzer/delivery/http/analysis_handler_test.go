package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-stock-sentiment/internal/analyzer/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzerService struct {
	calls []string
}

func (f *fakeAnalyzerService) AnalyzeTicker(_ context.Context, ticker string) *entity.AggregateResult {
	f.calls = append(f.calls, ticker)
	return &entity.AggregateResult{
		Ticker:          ticker,
		Verdict:         entity.VerdictBuy,
		ConfidenceScore: 7.5,
		Stats:           entity.SentimentStats{Bullish: 2, Neutral: 1},
		TopComments:     []entity.Excerpt{{Text: "Apple rallies", Score: 0.6, Sentiment: entity.SentimentBullish, Source: entity.NewsSourceBingNews, TimeAgo: "3h ago", HoursOld: 3.2}},
		AdvancedStats:   &entity.AdvancedStats{BullishRatio: 0.667},
		StockInfo:       entity.StockInfo{Name: "Apple Inc.", Sector: "Technology", CurrentPrice: 190.1},
		AnalyzedAt:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func newTestServer(svc *fakeAnalyzerService) *echo.Echo {
	e := echo.New()
	h := NewAnalysisHandler(svc, logger.NewNop(), "test")
	e.GET("/", h.Health)
	h.RegisterRoutes(e.Group("/api/v1"))
	return e
}

func TestAnalyzeTicker(t *testing.T) {
	svc := &fakeAnalyzerService{}
	e := newTestServer(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyze/aapl", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"AAPL"}, svc.calls)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BUY", body["verdict"])
	assert.Equal(t, 7.5, body["confidence_score"])
	assert.Equal(t, "2024-05-01T10:00:00Z", body["analyzed_at"])

	comments := body["top_comments"].([]interface{})
	require.Len(t, comments, 1)
	first := comments[0].(map[string]interface{})
	assert.Equal(t, "3h ago", first["time_ago"])
	assert.Equal(t, "bullish", first["sentiment"])
	assert.Equal(t, "Bing News", first["source"])
}

func TestAnalyzeTickerRejectsInvalidTicker(t *testing.T) {
	svc := &fakeAnalyzerService{}
	e := newTestServer(svc)

	for _, path := range []string{"/api/v1/analyze/%20%20", "/api/v1/analyze/ABCDEFGHIJK"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		var errResp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "Invalid ticker symbol", errResp.Error)
	}
	assert.Empty(t, svc.calls)
}

func TestHealth(t *testing.T) {
	e := newTestServer(&fakeAnalyzerService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "test", health.Version)
	assert.Contains(t, health.Message, "running")
}
