package strategy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-stock-sentiment/internal/analyzer/config"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// NewsSourceStrategy fetches recent articles about a ticker from one provider.
// Implementations never return errors: failures are logged and yield an empty slice.
type NewsSourceStrategy interface {
	Fetch(ctx context.Context, ticker string, companyName string) []entity.RawArticle
	GetSource() entity.NewsSource
}

// NewNewsSourceStrategies builds the enabled adapters in configuration order.
func NewNewsSourceStrategies(sources []config.Source, timeout time.Duration, log *logger.Logger) []NewsSourceStrategy {
	httpClient := &http.Client{Timeout: timeout}

	strategies := make([]NewsSourceStrategy, 0, len(sources))
	for _, src := range sources {
		if !src.Enabled {
			continue
		}
		base := baseStrategy{cfg: src, timeout: timeout, httpClient: httpClient, log: log}
		switch src.Name {
		case config.SourceGoogleNews:
			strategies = append(strategies, NewGoogleNewsStrategy(base))
		case config.SourceBingNews:
			strategies = append(strategies, NewBingNewsStrategy(base))
		case config.SourceSeekingAlpha:
			strategies = append(strategies, NewSeekingAlphaStrategy(base))
		case config.SourceYahooFinance:
			strategies = append(strategies, NewYahooFinanceStrategy(base))
		case config.SourceFinnhub:
			strategies = append(strategies, NewFinnhubStrategy(base))
		case config.SourceMarketaux:
			strategies = append(strategies, NewMarketauxStrategy(base))
		case config.SourceAlphaVantage:
			strategies = append(strategies, NewAlphaVantageStrategy(base))
		default:
			log.Warn("Unknown news source in configuration, skipping", logger.StringField("source", src.Name))
		}
	}
	return strategies
}

// baseStrategy carries what every adapter needs.
type baseStrategy struct {
	cfg        config.Source
	timeout    time.Duration
	httpClient *http.Client
	log        *logger.Logger
}

func (b baseStrategy) maxItems(fallback int) int {
	if b.cfg.MaxItems > 0 {
		return b.cfg.MaxItems
	}
	return fallback
}

func (b baseStrategy) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, b.timeout)
}

func (b baseStrategy) getBody(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/html, application/xml;q=0.9, */*;q=0.8")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

func (b baseStrategy) getJSON(ctx context.Context, url string, out interface{}) error {
	body, err := b.getBody(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (b baseStrategy) logFailure(ctx context.Context, source entity.NewsSource, ticker string, err error) {
	b.log.WarnContext(ctx, "Failed to fetch news",
		logger.StringField("source", string(source)),
		logger.StringField("ticker", ticker),
		logger.ErrorField(err),
	)
}

func searchQuery(ticker, companyName string) string {
	if companyName != "" {
		return companyName
	}
	return ticker
}

func publishedOrNow(t *time.Time, now time.Time) time.Time {
	if t == nil || t.IsZero() {
		return now
	}
	return *t
}
