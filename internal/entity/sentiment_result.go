package entity

import "time"

// Verdict is the trading recommendation derived from the final metric.
type Verdict string

const (
	VerdictStrongBuy        Verdict = "STRONG BUY"
	VerdictBuy              Verdict = "BUY"
	VerdictHold             Verdict = "HOLD"
	VerdictSell             Verdict = "SELL"
	VerdictStrongSell       Verdict = "STRONG SELL"
	VerdictInsufficientData Verdict = "INSUFFICIENT DATA"
)

// SentimentStats counts retained articles per sentiment bucket.
type SentimentStats struct {
	Bullish int `json:"bullish"`
	Bearish int `json:"bearish"`
	Neutral int `json:"neutral"`
}

// Total returns the number of articles counted.
func (s SentimentStats) Total() int {
	return s.Bullish + s.Bearish + s.Neutral
}

// AdvancedStats holds the secondary statistics over the retained set.
type AdvancedStats struct {
	AvgSentiment      float64 `json:"avg_sentiment"`
	Volatility        float64 `json:"volatility"`
	Momentum          float64 `json:"momentum"`
	Sentiment24h      float64 `json:"sentiment_24h"`
	Sentiment7d       float64 `json:"sentiment_7d"`
	Articles24h       int     `json:"articles_24h"`
	Articles7d        int     `json:"articles_7d"`
	BullishRatio      float64 `json:"bullish_ratio"`
	BearishRatio      float64 `json:"bearish_ratio"`
	ConsensusStrength float64 `json:"consensus_strength"`
}

// Excerpt is a ranked piece of evidence shown alongside a verdict.
type Excerpt struct {
	Text      string        `json:"text"`
	Score     float64       `json:"score"`
	Sentiment SentimentType `json:"sentiment"`
	Source    NewsSource    `json:"source"`
	TimeAgo   string        `json:"time_ago"`
	HoursOld  float64       `json:"hours_old"`
}

// StockInfo is descriptive metadata about the analysed ticker.
type StockInfo struct {
	Name         string  `json:"name"`
	Sector       string  `json:"sector"`
	CurrentPrice float64 `json:"current_price"`
}

// DefaultStockInfo is returned when the metadata lookup fails.
func DefaultStockInfo(ticker string) StockInfo {
	return StockInfo{Name: ticker, Sector: "Unknown", CurrentPrice: 0}
}

// AggregateResult is the outcome of one analysis run.
type AggregateResult struct {
	Ticker          string         `json:"ticker"`
	Verdict         Verdict        `json:"verdict"`
	ConfidenceScore float64        `json:"confidence_score"`
	Stats           SentimentStats `json:"stats"`
	TopComments     []Excerpt      `json:"top_comments"`
	AdvancedStats   *AdvancedStats `json:"advanced_stats,omitempty"`
	StockInfo       StockInfo      `json:"stock_info"`
	ArticlesFetched int            `json:"articles_fetched"`
	AnalyzedAt      time.Time      `json:"analyzed_at"`
}

// InsufficientData builds the terminal result used when nothing survived fetching or filtering.
func InsufficientData(ticker string, info StockInfo, fetched int, analyzedAt time.Time) *AggregateResult {
	return &AggregateResult{
		Ticker:          ticker,
		Verdict:         VerdictInsufficientData,
		ConfidenceScore: 0,
		Stats:           SentimentStats{},
		TopComments:     []Excerpt{},
		StockInfo:       info,
		ArticlesFetched: fetched,
		AnalyzedAt:      analyzedAt,
	}
}
