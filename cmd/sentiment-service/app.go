package main

import (
	"context"
	"fmt"

	"golang-stock-sentiment/internal/analyzer/config"
	"golang-stock-sentiment/internal/analyzer/repository"
	"golang-stock-sentiment/internal/analyzer/service"
	"golang-stock-sentiment/internal/analyzer/strategy"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/tracing"

	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

// app bundles the wired dependencies shared by every command.
type app struct {
	cfg      *config.Config
	logger   *logger.Logger
	analyzer service.AnalyzerService
	shutdown func(context.Context) error
}

func bootstrap(ctx context.Context, path string) (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	shutdownTracing, err := tracing.Init(cfg.Tracing, cfg.App.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	// Initialize sentiment model
	var model repository.SentimentModel
	switch cfg.Scorer.Provider {
	case "", "lexicon":
		model = repository.NewLexiconSentimentRepository()
	case "gemini":
		genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		model, err = repository.NewGeminiSentimentRepository(cfg.Gemini, appLogger, genAiClient)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini sentiment repository: %w", err)
		}
	default:
		return nil, fmt.Errorf("invalid scorer provider %q", cfg.Scorer.Provider)
	}

	// Initialize pipeline
	strategies := strategy.NewNewsSourceStrategies(cfg.Sources, cfg.Analyzer.SourceTimeout, appLogger)
	stockInfoRepo := repository.NewStockInfoRepository(cfg.YahooFinance, appLogger)
	scorer := service.NewSentimentScorer(model, appLogger)
	analyzerSvc := service.NewAnalyzerService(
		stockInfoRepo,
		service.NewFetchService(strategies, cfg.Analyzer.FetchTimeout, appLogger),
		service.NewAggregator(scorer, cfg.Analyzer.ScoreTimeout, appLogger),
		service.NewEvidenceRanker(cfg.Analyzer.MaxExcerpts),
		appLogger,
	)

	appLogger.Info("Sentiment pipeline initialized",
		logger.StringField("scorer", model.Name()),
		logger.IntField("sources", len(strategies)),
		logger.DurationField("fetch_timeout", cfg.Analyzer.FetchTimeout),
		logger.DurationField("score_timeout", cfg.Analyzer.ScoreTimeout),
	)

	return &app{
		cfg:      cfg,
		logger:   appLogger,
		analyzer: analyzerSvc,
		shutdown: shutdownTracing,
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.shutdown(ctx); err != nil {
		a.logger.Warn("Failed to shutdown tracing", logger.ErrorField(err))
	}
	_ = a.logger.Sync()
}
