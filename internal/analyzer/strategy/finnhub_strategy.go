package strategy

import (
	"context"
	"net/url"
	"strings"
	"time"

	"golang-stock-sentiment/internal/analyzer/dto"
	"golang-stock-sentiment/internal/entity"
)

type finnhubStrategy struct {
	baseStrategy
	maxLimit int
}

// NewFinnhubStrategy reads the last seven days of Finnhub company news.
func NewFinnhubStrategy(base baseStrategy) NewsSourceStrategy {
	return &finnhubStrategy{baseStrategy: base, maxLimit: base.maxItems(10)}
}

func (s *finnhubStrategy) GetSource() entity.NewsSource {
	return entity.NewsSourceFinnhub
}

func (s *finnhubStrategy) Fetch(ctx context.Context, ticker string, _ string) []entity.RawArticle {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := time.Now()
	q := url.Values{}
	q.Set("symbol", ticker)
	q.Set("from", now.AddDate(0, 0, -7).Format("2006-01-02"))
	q.Set("to", now.Format("2006-01-02"))
	q.Set("token", s.cfg.APIKey)

	var items []dto.FinnhubNewsItem
	if err := s.getJSON(ctx, strings.TrimRight(s.cfg.BaseURL, "/")+"/company-news?"+q.Encode(), &items); err != nil {
		s.logFailure(ctx, s.GetSource(), ticker, err)
		return nil
	}

	if len(items) > s.maxLimit {
		items = items[:s.maxLimit]
	}

	articles := make([]entity.RawArticle, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Headline)
		if title == "" {
			continue
		}
		published := now
		if item.Datetime > 0 {
			published = time.Unix(item.Datetime, 0)
		}
		articles = append(articles, entity.RawArticle{
			Title:     title,
			Summary:   item.Summary,
			Source:    entity.NewsSourceFinnhub,
			Published: published,
		})
	}
	return articles
}
