package service

import (
	"context"
	"math"
	"sort"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"
)

const (
	noiseThreshold     = 0.02
	sentimentThreshold = 0.05
	strongThreshold    = 0.2
	maxRecencyDays     = 7
	momentumWindow     = 3
)

// Aggregation is the statistical summary of a retained article set.
type Aggregation struct {
	FinalMetric     float64
	Verdict         entity.Verdict
	ConfidenceScore float64
	Stats           entity.SentimentStats
	AdvancedStats   entity.AdvancedStats
}

// Aggregator scores raw articles and reduces them to a verdict.
type Aggregator interface {
	Score(ctx context.Context, articles []entity.RawArticle, now time.Time) []entity.ScoredArticle
	Aggregate(scored []entity.ScoredArticle) Aggregation
}

type aggregator struct {
	scorer       SentimentScorer
	scoreTimeout time.Duration
	logger       *logger.Logger
}

// NewAggregator creates an Aggregator using scorer for per-article polarity.
// A positive scoreTimeout bounds the whole scoring pass; articles not reached
// in time are left out.
func NewAggregator(scorer SentimentScorer, scoreTimeout time.Duration, log *logger.Logger) Aggregator {
	return &aggregator{scorer: scorer, scoreTimeout: scoreTimeout, logger: log}
}

// Score rates each article and drops those whose |compound| is below the noise threshold.
func (a *aggregator) Score(ctx context.Context, articles []entity.RawArticle, now time.Time) []entity.ScoredArticle {
	if a.scoreTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.scoreTimeout)
		defer cancel()
	}

	scored := make([]entity.ScoredArticle, 0, len(articles))
	for i, article := range articles {
		if ctx.Err() != nil {
			a.logger.WarnContext(ctx, "Scoring deadline reached, skipping remaining articles",
				logger.IntField("scored", i),
				logger.IntField("skipped", len(articles)-i),
				logger.DurationField("timeout", a.scoreTimeout),
			)
			break
		}

		compound := a.scorer.Score(ctx, article.Title+" "+article.Summary)
		if math.Abs(compound) < noiseThreshold {
			continue
		}

		hoursOld := utils.HoursSince(article.Published, now)
		daysOld := hoursOld / 24

		scored = append(scored, entity.ScoredArticle{
			RawArticle:    article,
			Compound:      compound,
			WeightedScore: WeightedScore(compound, daysOld),
			SentimentType: ClassifySentiment(compound),
			HoursOld:      hoursOld,
			DaysOld:       daysOld,
		})
	}
	return scored
}

// Aggregate computes the verdict and statistics of a non-empty scored set.
func (a *aggregator) Aggregate(scored []entity.ScoredArticle) Aggregation {
	n := len(scored)
	if n == 0 {
		return Aggregation{Verdict: entity.VerdictInsufficientData}
	}

	weighted := make([]float64, n)
	compounds := make([]float64, n)
	var stats entity.SentimentStats
	var compounds24h, compounds7d []float64

	for i, item := range scored {
		weighted[i] = item.WeightedScore
		compounds[i] = item.Compound

		switch item.SentimentType {
		case entity.SentimentBullish:
			stats.Bullish++
		case entity.SentimentBearish:
			stats.Bearish++
		default:
			stats.Neutral++
		}

		if item.HoursOld <= 24 {
			compounds24h = append(compounds24h, item.Compound)
		}
		if item.DaysOld <= 7 {
			compounds7d = append(compounds7d, item.Compound)
		}
	}

	finalMetric := utils.Mean(weighted)
	avg, volatility := utils.MeanStd(compounds)
	dominant := stats.Bullish
	if stats.Bearish > dominant {
		dominant = stats.Bearish
	}

	return Aggregation{
		FinalMetric:     finalMetric,
		Verdict:         VerdictFor(finalMetric),
		ConfidenceScore: utils.Round(math.Min(math.Abs(finalMetric)*100, 100), 2),
		Stats:           stats,
		AdvancedStats: entity.AdvancedStats{
			AvgSentiment:      utils.Round(avg, 4),
			Volatility:        utils.Round(volatility, 4),
			Momentum:          utils.Round(momentum(scored), 4),
			Sentiment24h:      utils.Round(utils.Mean(compounds24h), 4),
			Sentiment7d:       utils.Round(utils.Mean(compounds7d), 4),
			Articles24h:       len(compounds24h),
			Articles7d:        len(compounds7d),
			BullishRatio:      utils.Round(float64(stats.Bullish)/float64(n), 3),
			BearishRatio:      utils.Round(float64(stats.Bearish)/float64(n), 3),
			ConsensusStrength: utils.Round(float64(dominant)/float64(n), 3),
		},
	}
}

// WeightedScore scales compound by ln(weight+1), where weight decays from 7
// for same-day articles down to 1 for articles six or more days old.
func WeightedScore(compound, daysOld float64) float64 {
	recencyDays := math.Min(math.Floor(daysOld), maxRecencyDays)
	weight := math.Max(1, maxRecencyDays-recencyDays)
	return compound * math.Log(weight+1)
}

// ClassifySentiment buckets a compound score.
func ClassifySentiment(compound float64) entity.SentimentType {
	switch {
	case compound > sentimentThreshold:
		return entity.SentimentBullish
	case compound < -sentimentThreshold:
		return entity.SentimentBearish
	default:
		return entity.SentimentNeutral
	}
}

// VerdictFor maps the final metric onto a recommendation.
func VerdictFor(finalMetric float64) entity.Verdict {
	switch {
	case finalMetric > strongThreshold:
		return entity.VerdictStrongBuy
	case finalMetric > sentimentThreshold:
		return entity.VerdictBuy
	case finalMetric < -strongThreshold:
		return entity.VerdictStrongSell
	case finalMetric < -sentimentThreshold:
		return entity.VerdictSell
	default:
		return entity.VerdictHold
	}
}

// momentum is mean compound of the three newest minus the three oldest items.
// The two windows overlap when fewer than six items are present.
func momentum(scored []entity.ScoredArticle) float64 {
	if len(scored) < momentumWindow {
		return 0
	}
	byAge := make([]entity.ScoredArticle, len(scored))
	copy(byAge, scored)
	sort.SliceStable(byAge, func(i, j int) bool {
		return byAge[i].HoursOld < byAge[j].HoursOld
	})

	var recent, older float64
	for i := 0; i < momentumWindow; i++ {
		recent += byAge[i].Compound
		older += byAge[len(byAge)-momentumWindow+i].Compound
	}
	return (recent - older) / momentumWindow
}
