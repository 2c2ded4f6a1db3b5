package service

import (
	"math"
	"sort"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/utils"
)

const (
	defaultMaxExcerpts = 15
	maxExcerptLength   = 200
)

// EvidenceRanker selects the articles that contributed most to a verdict.
type EvidenceRanker interface {
	Rank(scored []entity.ScoredArticle) []entity.Excerpt
}

type evidenceRanker struct {
	maxExcerpts int
}

// NewEvidenceRanker creates an EvidenceRanker returning at most maxExcerpts items.
func NewEvidenceRanker(maxExcerpts int) EvidenceRanker {
	if maxExcerpts <= 0 {
		maxExcerpts = defaultMaxExcerpts
	}
	return &evidenceRanker{maxExcerpts: maxExcerpts}
}

// Rank orders by |weighted score| descending, keeping input order on ties.
func (r *evidenceRanker) Rank(scored []entity.ScoredArticle) []entity.Excerpt {
	ranked := make([]entity.ScoredArticle, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return math.Abs(ranked[i].WeightedScore) > math.Abs(ranked[j].WeightedScore)
	})
	if len(ranked) > r.maxExcerpts {
		ranked = ranked[:r.maxExcerpts]
	}

	excerpts := make([]entity.Excerpt, 0, len(ranked))
	for _, item := range ranked {
		excerpts = append(excerpts, entity.Excerpt{
			Text:      utils.Truncate(item.Title, maxExcerptLength),
			Score:     utils.Round(item.Compound, 3),
			Sentiment: item.SentimentType,
			Source:    item.Source,
			TimeAgo:   utils.TimeAgo(item.HoursOld),
			HoursOld:  utils.Round(item.HoursOld, 1),
		})
	}
	return excerpts
}
