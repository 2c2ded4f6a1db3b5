package service

import (
	"context"
	"math"

	"golang-stock-sentiment/internal/analyzer/repository"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"
)

// SentimentScorer maps free text to a compound polarity in [-1, 1].
type SentimentScorer interface {
	Score(ctx context.Context, text string) float64
}

type sentimentScorer struct {
	model  repository.SentimentModel
	logger *logger.Logger
}

// NewSentimentScorer creates a SentimentScorer over the given model.
func NewSentimentScorer(model repository.SentimentModel, log *logger.Logger) SentimentScorer {
	return &sentimentScorer{model: model, logger: log}
}

// Score normalizes text and scores it. Empty text and model failures score 0.
func (s *sentimentScorer) Score(ctx context.Context, text string) float64 {
	cleaned := utils.CleanText(text)
	if cleaned == "" {
		return 0
	}

	score, err := s.model.PolarityScore(ctx, cleaned)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to score text", logger.StringField("model", s.model.Name()), logger.ErrorField(err))
		return 0
	}
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(-1, math.Min(1, score))
}
