package dto

// FinnhubNewsItem is one element of the Finnhub company-news response.
type FinnhubNewsItem struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary"`
	Datetime int64  `json:"datetime"`
	Source   string `json:"source"`
	URL      string `json:"url"`
}

// MarketauxResponse is the Marketaux news/all response.
type MarketauxResponse struct {
	Data []MarketauxArticle `json:"data"`
}

// MarketauxArticle is one Marketaux article.
type MarketauxArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url"`
}

// AlphaVantageNewsResponse is the NEWS_SENTIMENT response.
type AlphaVantageNewsResponse struct {
	Feed        []AlphaVantageFeedItem `json:"feed"`
	Information string                 `json:"Information,omitempty"`
	Note        string                 `json:"Note,omitempty"`
}

// AlphaVantageFeedItem is one NEWS_SENTIMENT feed entry.
type AlphaVantageFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	TimePublished string `json:"time_published"`
	URL           string `json:"url"`
}

// YahooQuoteResponse is the v7 finance quote response.
type YahooQuoteResponse struct {
	QuoteResponse struct {
		Result []YahooQuote `json:"result"`
	} `json:"quoteResponse"`
}

// YahooQuote carries the fields used for stock metadata.
type YahooQuote struct {
	Symbol             string   `json:"symbol"`
	LongName           string   `json:"longName"`
	ShortName          string   `json:"shortName"`
	Sector             string   `json:"sector"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
}
