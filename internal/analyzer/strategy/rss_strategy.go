package strategy

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/utils"

	"github.com/mmcdole/gofeed"
)

// rssNewsStrategy reads an RSS/Atom feed and maps its items to articles.
type rssNewsStrategy struct {
	baseStrategy
	source   entity.NewsSource
	maxLimit int
	feedURL  func(ticker, companyName string) string
}

// NewGoogleNewsStrategy searches Google News RSS for "<company or ticker> stock".
func NewGoogleNewsStrategy(base baseStrategy) NewsSourceStrategy {
	return &rssNewsStrategy{
		baseStrategy: base,
		source:       entity.NewsSourceGoogleNews,
		maxLimit:     base.maxItems(15),
		feedURL: func(ticker, companyName string) string {
			q := url.Values{}
			q.Set("q", searchQuery(ticker, companyName)+" stock")
			q.Set("hl", "en-US")
			q.Set("gl", "US")
			q.Set("ceid", "US:en")
			return base.cfg.BaseURL + "?" + q.Encode()
		},
	}
}

// NewBingNewsStrategy searches Bing News RSS for "<company or ticker> stock".
func NewBingNewsStrategy(base baseStrategy) NewsSourceStrategy {
	return &rssNewsStrategy{
		baseStrategy: base,
		source:       entity.NewsSourceBingNews,
		maxLimit:     base.maxItems(10),
		feedURL: func(ticker, companyName string) string {
			q := url.Values{}
			q.Set("q", searchQuery(ticker, companyName)+" stock")
			q.Set("format", "rss")
			return base.cfg.BaseURL + "?" + q.Encode()
		},
	}
}

// NewSeekingAlphaStrategy reads the combined Seeking Alpha feed of a ticker.
func NewSeekingAlphaStrategy(base baseStrategy) NewsSourceStrategy {
	return &rssNewsStrategy{
		baseStrategy: base,
		source:       entity.NewsSourceSeekingAlpha,
		maxLimit:     base.maxItems(10),
		feedURL: func(ticker, _ string) string {
			return fmt.Sprintf("%s/%s.xml", strings.TrimRight(base.cfg.BaseURL, "/"), url.PathEscape(ticker))
		},
	}
}

func (s *rssNewsStrategy) GetSource() entity.NewsSource {
	return s.source
}

func (s *rssNewsStrategy) Fetch(ctx context.Context, ticker string, companyName string) []entity.RawArticle {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = s.httpClient

	feedURL := s.feedURL(ticker, companyName)
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		s.logFailure(ctx, s.source, ticker, err)
		return nil
	}

	items := feed.Items
	if len(items) > s.maxLimit {
		items = items[:s.maxLimit]
	}

	now := time.Now()
	articles := make([]entity.RawArticle, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		published := item.PublishedParsed
		if published == nil {
			published = item.UpdatedParsed
		}
		articles = append(articles, entity.RawArticle{
			Title:     title,
			Summary:   utils.StripHTML(item.Description),
			Source:    s.source,
			Published: publishedOrNow(published, now),
		})
	}

	s.log.DebugContext(ctx, "Fetched feed articles",
		logger.StringField("source", string(s.source)),
		logger.StringField("ticker", ticker),
		logger.IntField("count", len(articles)),
	)
	return articles
}
