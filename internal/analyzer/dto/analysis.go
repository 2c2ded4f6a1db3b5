package dto

import "golang-stock-sentiment/internal/entity"

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the root endpoint.
type HealthResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// AnalysisResponse is the body of GET /analyze/{ticker}.
type AnalysisResponse struct {
	Ticker          string                `json:"ticker"`
	Verdict         string                `json:"verdict"`
	ConfidenceScore float64               `json:"confidence_score"`
	Stats           entity.SentimentStats `json:"stats"`
	TopComments     []entity.Excerpt      `json:"top_comments"`
	AdvancedStats   *entity.AdvancedStats `json:"advanced_stats,omitempty"`
	StockInfo       entity.StockInfo      `json:"stock_info"`
	ArticlesFetched int                   `json:"articles_fetched"`
	AnalyzedAt      string                `json:"analyzed_at"`
}

// NewAnalysisResponse maps an aggregate result onto the wire shape.
func NewAnalysisResponse(r *entity.AggregateResult) AnalysisResponse {
	comments := r.TopComments
	if comments == nil {
		comments = []entity.Excerpt{}
	}
	return AnalysisResponse{
		Ticker:          r.Ticker,
		Verdict:         string(r.Verdict),
		ConfidenceScore: r.ConfidenceScore,
		Stats:           r.Stats,
		TopComments:     comments,
		AdvancedStats:   r.AdvancedStats,
		StockInfo:       r.StockInfo,
		ArticlesFetched: r.ArticlesFetched,
		AnalyzedAt:      r.AnalyzedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
