package service

import (
	"context"
	"time"

	"golang-stock-sentiment/internal/analyzer/strategy"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/tracing"
	"golang-stock-sentiment/pkg/utils"

	"go.opentelemetry.io/otel/attribute"
)

// FetchService fans a ticker out to every configured news source.
type FetchService interface {
	FetchAll(ctx context.Context, ticker string, companyName string) []entity.RawArticle
}

type fetchService struct {
	strategies   []strategy.NewsSourceStrategy
	fetchTimeout time.Duration
	logger       *logger.Logger
}

// NewFetchService creates a FetchService. fetchTimeout bounds each source
// from the outside and should exceed the sources' own request timeout.
func NewFetchService(strategies []strategy.NewsSourceStrategy, fetchTimeout time.Duration, log *logger.Logger) FetchService {
	return &fetchService{
		strategies:   strategies,
		fetchTimeout: fetchTimeout,
		logger:       log,
	}
}

// FetchAll runs all sources concurrently and merges whatever arrived in time.
// A source that panics or overruns its deadline contributes nothing.
func (s *fetchService) FetchAll(ctx context.Context, ticker string, companyName string) []entity.RawArticle {
	ctx, span := tracing.StartSpan(ctx, "FetchService.FetchAll")
	defer span.End()

	slots := make([]chan []entity.RawArticle, len(s.strategies))
	deadlines := make([]context.Context, len(s.strategies))

	for i, src := range s.strategies {
		taskCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()

		slot := make(chan []entity.RawArticle, 1)
		slots[i] = slot
		deadlines[i] = taskCtx

		src := src
		utils.GoSafe(s.logger, func() {
			slot <- s.fetchSource(taskCtx, src, ticker, companyName)
		})
	}

	var articles []entity.RawArticle
	for i, slot := range slots {
		select {
		case result := <-slot:
			articles = append(articles, result...)
		case <-deadlines[i].Done():
			// A result can be ready by the time an earlier slot releases us.
			select {
			case result := <-slot:
				articles = append(articles, result...)
				continue
			default:
			}
			s.logger.WarnContext(ctx, "News source timed out, discarding its result",
				logger.StringField("source", string(s.strategies[i].GetSource())),
				logger.StringField("ticker", ticker),
				logger.DurationField("timeout", s.fetchTimeout),
			)
		}
	}

	span.SetAttributes(
		attribute.String("ticker", ticker),
		attribute.Int("sources", len(s.strategies)),
		attribute.Int("articles", len(articles)),
	)
	s.logger.InfoContext(ctx, "Collected news articles",
		logger.StringField("ticker", ticker),
		logger.IntField("total", len(articles)),
	)
	return articles
}

func (s *fetchService) fetchSource(ctx context.Context, src strategy.NewsSourceStrategy, ticker, companyName string) []entity.RawArticle {
	ctx, span := tracing.StartSpan(ctx, "NewsSource.Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("source", string(src.GetSource())))

	start := time.Now()
	var articles []entity.RawArticle
	if err := utils.SafeCall(func() {
		articles = src.Fetch(ctx, ticker, companyName)
	}); err != nil {
		s.logger.ErrorContext(ctx, "News source failed",
			logger.StringField("source", string(src.GetSource())),
			logger.StringField("ticker", ticker),
			logger.ErrorField(err),
		)
		return nil
	}

	s.logger.DebugContext(ctx, "News source finished",
		logger.StringField("source", string(src.GetSource())),
		logger.IntField("count", len(articles)),
		logger.DurationField("elapsed", time.Since(start)),
	)
	return articles
}
