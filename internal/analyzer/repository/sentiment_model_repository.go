package repository

import (
	"context"

	"github.com/jonreiter/govader"
)

// SentimentModel scores a cleaned, non-empty text with a compound polarity in [-1, 1].
type SentimentModel interface {
	PolarityScore(ctx context.Context, text string) (float64, error)
	Name() string
}

type lexiconSentimentRepository struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewLexiconSentimentRepository returns the default in-process VADER model.
func NewLexiconSentimentRepository() SentimentModel {
	return &lexiconSentimentRepository{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (r *lexiconSentimentRepository) PolarityScore(_ context.Context, text string) (float64, error) {
	return r.analyzer.PolarityScores(text).Compound, nil
}

func (r *lexiconSentimentRepository) Name() string {
	return "lexicon"
}
