package strategy

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/PuerkitoBio/goquery"
)

const minHeadlineLength = 10

type yahooFinanceStrategy struct {
	baseStrategy
	maxLimit int
}

// NewYahooFinanceStrategy scrapes headlines from the Yahoo Finance quote news page.
func NewYahooFinanceStrategy(base baseStrategy) NewsSourceStrategy {
	return &yahooFinanceStrategy{baseStrategy: base, maxLimit: base.maxItems(15)}
}

func (s *yahooFinanceStrategy) GetSource() entity.NewsSource {
	return entity.NewsSourceYahooFinance
}

func (s *yahooFinanceStrategy) Fetch(ctx context.Context, ticker string, _ string) []entity.RawArticle {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pageURL := fmt.Sprintf("%s/quote/%s/news", strings.TrimRight(s.cfg.BaseURL, "/"), url.PathEscape(ticker))
	body, err := s.getBody(ctx, pageURL)
	if err != nil {
		s.logFailure(ctx, s.GetSource(), ticker, err)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.logFailure(ctx, s.GetSource(), ticker, err)
		return nil
	}

	now := time.Now()
	var articles []entity.RawArticle
	doc.Find("h3").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= s.maxLimit {
			return false
		}
		title := strings.Join(strings.Fields(sel.Text()), " ")
		if utf8.RuneCountInString(title) > minHeadlineLength {
			articles = append(articles, entity.RawArticle{
				Title:     title,
				Source:    entity.NewsSourceYahooFinance,
				Published: now,
			})
		}
		return true
	})

	s.log.DebugContext(ctx, "Scraped headlines",
		logger.StringField("source", string(entity.NewsSourceYahooFinance)),
		logger.StringField("ticker", ticker),
		logger.IntField("count", len(articles)),
	)
	return articles
}
