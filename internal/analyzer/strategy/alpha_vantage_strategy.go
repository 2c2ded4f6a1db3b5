package strategy

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"golang-stock-sentiment/internal/analyzer/dto"
	"golang-stock-sentiment/internal/entity"
)

const alphaVantageTimeLayout = "20060102T150405"

// Alpha Vantage stamps time_published in US/Eastern without an offset.
var alphaVantageLocation = loadLocation("America/New_York", -5*60*60)

func loadLocation(name string, fallbackOffset int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(name, fallbackOffset)
	}
	return loc
}

type alphaVantageStrategy struct {
	baseStrategy
	maxLimit int
}

// NewAlphaVantageStrategy reads the Alpha Vantage NEWS_SENTIMENT feed for the ticker.
func NewAlphaVantageStrategy(base baseStrategy) NewsSourceStrategy {
	return &alphaVantageStrategy{baseStrategy: base, maxLimit: base.maxItems(15)}
}

func (s *alphaVantageStrategy) GetSource() entity.NewsSource {
	return entity.NewsSourceAlphaVantage
}

func (s *alphaVantageStrategy) Fetch(ctx context.Context, ticker string, _ string) []entity.RawArticle {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	q := url.Values{}
	q.Set("function", "NEWS_SENTIMENT")
	q.Set("tickers", ticker)
	q.Set("apikey", s.cfg.APIKey)

	var resp dto.AlphaVantageNewsResponse
	if err := s.getJSON(ctx, s.cfg.BaseURL+"?"+q.Encode(), &resp); err != nil {
		s.logFailure(ctx, s.GetSource(), ticker, err)
		return nil
	}
	if len(resp.Feed) == 0 && (resp.Information != "" || resp.Note != "") {
		s.logFailure(ctx, s.GetSource(), ticker, errors.New(resp.Information+resp.Note))
		return nil
	}

	feed := resp.Feed
	if len(feed) > s.maxLimit {
		feed = feed[:s.maxLimit]
	}

	now := time.Now()
	articles := make([]entity.RawArticle, 0, len(feed))
	for _, item := range feed {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}
		published := now
		if t, err := time.ParseInLocation(alphaVantageTimeLayout, item.TimePublished, alphaVantageLocation); err == nil {
			published = t
		}
		articles = append(articles, entity.RawArticle{
			Title:     title,
			Summary:   item.Summary,
			Source:    entity.NewsSourceAlphaVantage,
			Published: published,
		})
	}
	return articles
}
