package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"golang-stock-sentiment/internal/analyzer/strategy"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	source   entity.NewsSource
	articles []entity.RawArticle
	delay    time.Duration
	panics   bool
}

func (f *fakeSource) GetSource() entity.NewsSource { return f.source }

func (f *fakeSource) Fetch(_ context.Context, ticker string, _ string) []entity.RawArticle {
	if f.panics {
		panic("adapter exploded for " + ticker)
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.articles
}

func titles(articles []entity.RawArticle) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title)
	}
	return out
}

func TestFetchAllMergesAllSources(t *testing.T) {
	sources := []strategy.NewsSourceStrategy{
		&fakeSource{source: entity.NewsSourceGoogleNews, articles: []entity.RawArticle{{Title: "g1"}, {Title: "g2"}}},
		&fakeSource{source: entity.NewsSourceFinnhub, articles: []entity.RawArticle{{Title: "f1"}}},
		&fakeSource{source: entity.NewsSourceMarketaux},
	}

	svc := NewFetchService(sources, time.Second, logger.NewNop())
	got := svc.FetchAll(context.Background(), "AAPL", "Apple")
	assert.ElementsMatch(t, []string{"g1", "g2", "f1"}, titles(got))
}

func TestFetchAllIsolatesPanickingSource(t *testing.T) {
	sources := []strategy.NewsSourceStrategy{
		&fakeSource{source: entity.NewsSourceYahooFinance, panics: true},
		&fakeSource{source: entity.NewsSourceBingNews, articles: []entity.RawArticle{{Title: "b1"}}},
		&fakeSource{source: entity.NewsSourceAlphaVantage, articles: []entity.RawArticle{{Title: "a1"}}},
	}

	svc := NewFetchService(sources, time.Second, logger.NewNop())
	got := svc.FetchAll(context.Background(), "AAPL", "")
	assert.ElementsMatch(t, []string{"b1", "a1"}, titles(got))
}

func TestFetchAllAbandonsSlowSource(t *testing.T) {
	sources := []strategy.NewsSourceStrategy{
		&fakeSource{source: entity.NewsSourceSeekingAlpha, delay: 2 * time.Second, articles: []entity.RawArticle{{Title: "late"}}},
		&fakeSource{source: entity.NewsSourceGoogleNews, articles: []entity.RawArticle{{Title: "on time"}}},
	}

	svc := NewFetchService(sources, 100*time.Millisecond, logger.NewNop())
	start := time.Now()
	got := svc.FetchAll(context.Background(), "AAPL", "")

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, []string{"on time"}, titles(got))
}

func TestFetchAllKeepsReadyResultsBehindSlowSource(t *testing.T) {
	sources := []strategy.NewsSourceStrategy{
		&fakeSource{source: entity.NewsSourceSeekingAlpha, delay: time.Second, articles: []entity.RawArticle{{Title: "late"}}},
	}
	var want []string
	for i := 0; i < 6; i++ {
		title := fmt.Sprintf("fast-%d", i)
		want = append(want, title)
		sources = append(sources, &fakeSource{source: entity.NewsSourceGoogleNews, articles: []entity.RawArticle{{Title: title}}})
	}

	svc := NewFetchService(sources, 100*time.Millisecond, logger.NewNop())
	for run := 0; run < 20; run++ {
		got := svc.FetchAll(context.Background(), "AAPL", "")
		assert.Equal(t, want, titles(got), "run %d", run)
	}
}

func TestFetchAllWithoutSources(t *testing.T) {
	svc := NewFetchService(nil, time.Second, logger.NewNop())
	assert.Empty(t, svc.FetchAll(context.Background(), "AAPL", ""))
}
