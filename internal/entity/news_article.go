package entity

import "time"

// NewsSource identifies the provider an article was fetched from.
type NewsSource string

const (
	NewsSourceGoogleNews   NewsSource = "Google News"
	NewsSourceBingNews     NewsSource = "Bing News"
	NewsSourceYahooFinance NewsSource = "Yahoo Finance"
	NewsSourceFinnhub      NewsSource = "Finnhub"
	NewsSourceMarketaux    NewsSource = "Marketaux"
	NewsSourceSeekingAlpha NewsSource = "Seeking Alpha"
	NewsSourceAlphaVantage NewsSource = "Alpha Vantage"
)

// SentimentType is the bucket a single article falls into.
type SentimentType string

const (
	SentimentBullish SentimentType = "bullish"
	SentimentBearish SentimentType = "bearish"
	SentimentNeutral SentimentType = "neutral"
)

// RawArticle is a news item as returned by a source adapter.
type RawArticle struct {
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Source    NewsSource `json:"source"`
	Published time.Time  `json:"published"`
}

// ScoredArticle is a RawArticle enriched with its sentiment and recency weighting.
type ScoredArticle struct {
	RawArticle
	Compound      float64       `json:"compound"`
	WeightedScore float64       `json:"weighted_score"`
	SentimentType SentimentType `json:"sentiment_type"`
	HoursOld      float64       `json:"hours_old"`
	DaysOld       float64       `json:"days_old"`
}
