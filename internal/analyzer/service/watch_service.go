package service

import (
	"context"
	"fmt"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/telegram"

	"github.com/robfig/cron/v3"
)

// WatchService periodically analyses a watchlist and posts a digest.
type WatchService interface {
	Start(ctx context.Context) error
	RunOnce(ctx context.Context) error
}

type watchService struct {
	analyzer  AnalyzerService
	notifier  telegram.Notifier
	watchlist []string
	spec      string
	logger    *logger.Logger
}

// NewWatchService creates a WatchService running on the given cron spec.
func NewWatchService(analyzer AnalyzerService, notifier telegram.Notifier, watchlist []string, spec string, log *logger.Logger) WatchService {
	return &watchService{
		analyzer:  analyzer,
		notifier:  notifier,
		watchlist: watchlist,
		spec:      spec,
		logger:    log,
	}
}

// Start blocks until ctx is cancelled, running the watchlist on schedule.
func (s *watchService) Start(ctx context.Context) error {
	if len(s.watchlist) == 0 {
		return fmt.Errorf("watchlist is empty")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))
	if _, err := c.AddFunc(s.spec, func() {
		if err := s.RunOnce(ctx); err != nil {
			s.logger.ErrorContext(ctx, "Watchlist run failed", logger.ErrorField(err))
		}
	}); err != nil {
		return fmt.Errorf("invalid watch schedule %q: %w", s.spec, err)
	}

	s.logger.Info("Watch service started",
		logger.StringField("schedule", s.spec),
		logger.IntField("tickers", len(s.watchlist)),
	)
	c.Start()
	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("Watch service stopped")
	return nil
}

// RunOnce analyses every ticker on the watchlist and sends the digest.
func (s *watchService) RunOnce(ctx context.Context) error {
	results := make([]*entity.AggregateResult, 0, len(s.watchlist))
	for _, ticker := range s.watchlist {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		results = append(results, s.analyzer.AnalyzeTicker(ctx, ticker))
	}

	for _, msg := range telegram.FormatWatchlistDigest(results) {
		if err := s.notifier.SendMessage(msg); err != nil {
			return fmt.Errorf("failed to send watchlist digest: %w", err)
		}
	}

	s.logger.InfoContext(ctx, "Watchlist digest sent", logger.IntField("tickers", len(results)))
	return nil
}
