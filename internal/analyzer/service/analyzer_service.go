package service

import (
	"context"
	"strings"
	"time"

	"golang-stock-sentiment/internal/analyzer/repository"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// AnalyzerService runs the full news sentiment pipeline for a ticker.
type AnalyzerService interface {
	AnalyzeTicker(ctx context.Context, ticker string) *entity.AggregateResult
}

type analyzerService struct {
	stockInfoRepo repository.StockInfoRepository
	fetchService  FetchService
	aggregator    Aggregator
	ranker        EvidenceRanker
	logger        *logger.Logger
	now           func() time.Time
}

// NewAnalyzerService wires the pipeline stages together.
func NewAnalyzerService(
	stockInfoRepo repository.StockInfoRepository,
	fetchService FetchService,
	aggregator Aggregator,
	ranker EvidenceRanker,
	log *logger.Logger,
) AnalyzerService {
	return &analyzerService{
		stockInfoRepo: stockInfoRepo,
		fetchService:  fetchService,
		aggregator:    aggregator,
		ranker:        ranker,
		logger:        log,
		now:           time.Now,
	}
}

// AnalyzeTicker always returns a result; when nothing usable was collected
// the verdict is INSUFFICIENT DATA.
func (s *analyzerService) AnalyzeTicker(ctx context.Context, ticker string) *entity.AggregateResult {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	ctx, span := tracing.StartSpan(ctx, "AnalyzerService.AnalyzeTicker")
	defer span.End()
	span.SetAttributes(attribute.String("ticker", ticker))

	info := s.stockInfoRepo.Lookup(ctx, ticker)

	s.logger.InfoContext(ctx, "Fetching news", logger.StringField("ticker", ticker), logger.StringField("company", info.Name))
	articles := s.fetchService.FetchAll(ctx, ticker, info.Name)

	now := s.now()
	if len(articles) == 0 {
		s.logger.InfoContext(ctx, "No articles collected", logger.StringField("ticker", ticker))
		return entity.InsufficientData(ticker, info, 0, now)
	}

	scored := s.aggregator.Score(ctx, articles, now)
	if len(scored) == 0 {
		s.logger.InfoContext(ctx, "All articles filtered as noise",
			logger.StringField("ticker", ticker),
			logger.IntField("fetched", len(articles)),
		)
		return entity.InsufficientData(ticker, info, len(articles), now)
	}

	agg := s.aggregator.Aggregate(scored)
	advanced := agg.AdvancedStats

	result := &entity.AggregateResult{
		Ticker:          ticker,
		Verdict:         agg.Verdict,
		ConfidenceScore: agg.ConfidenceScore,
		Stats:           agg.Stats,
		TopComments:     s.ranker.Rank(scored),
		AdvancedStats:   &advanced,
		StockInfo:       info,
		ArticlesFetched: len(articles),
		AnalyzedAt:      now,
	}

	span.SetAttributes(
		attribute.String("verdict", string(result.Verdict)),
		attribute.Float64("final_metric", agg.FinalMetric),
		attribute.Int("retained", len(scored)),
	)
	s.logger.InfoContext(ctx, "Analysis complete",
		logger.StringField("ticker", ticker),
		logger.StringField("verdict", string(result.Verdict)),
		logger.Float64Field("confidence_score", result.ConfidenceScore),
		logger.IntField("fetched", len(articles)),
		logger.IntField("retained", len(scored)),
	)
	return result
}
