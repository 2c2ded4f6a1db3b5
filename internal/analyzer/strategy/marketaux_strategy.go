package strategy

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang-stock-sentiment/internal/analyzer/dto"
	"golang-stock-sentiment/internal/entity"
)

type marketauxStrategy struct {
	baseStrategy
	maxLimit int
}

// NewMarketauxStrategy queries the Marketaux news/all endpoint filtered on the ticker entity.
func NewMarketauxStrategy(base baseStrategy) NewsSourceStrategy {
	return &marketauxStrategy{baseStrategy: base, maxLimit: base.maxItems(10)}
}

func (s *marketauxStrategy) GetSource() entity.NewsSource {
	return entity.NewsSourceMarketaux
}

func (s *marketauxStrategy) Fetch(ctx context.Context, ticker string, _ string) []entity.RawArticle {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q := url.Values{}
	q.Set("symbols", ticker)
	q.Set("filter_entities", "true")
	q.Set("language", "en")
	q.Set("limit", strconv.Itoa(s.maxLimit))
	if s.cfg.APIKey != "" && s.cfg.APIKey != "demo" {
		q.Set("api_token", s.cfg.APIKey)
	}

	var resp dto.MarketauxResponse
	if err := s.getJSON(ctx, strings.TrimRight(s.cfg.BaseURL, "/")+"/news/all?"+q.Encode(), &resp); err != nil {
		s.logFailure(ctx, s.GetSource(), ticker, err)
		return nil
	}

	now := time.Now()
	articles := make([]entity.RawArticle, 0, len(resp.Data))
	for _, a := range resp.Data {
		if len(articles) >= s.maxLimit {
			break
		}
		title := strings.TrimSpace(a.Title)
		if title == "" {
			continue
		}
		published := now
		if a.PublishedAt != "" {
			if t, err := parseISOTime(a.PublishedAt); err == nil {
				published = t
			}
		}
		articles = append(articles, entity.RawArticle{
			Title:     title,
			Summary:   a.Description,
			Source:    entity.NewsSourceMarketaux,
			Published: published,
		})
	}
	return articles
}

func parseISOTime(s string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000000Z0700", "2006-01-02T15:04:05"}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
