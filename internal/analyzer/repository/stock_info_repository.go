package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-stock-sentiment/internal/analyzer/config"
	"golang-stock-sentiment/internal/analyzer/dto"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// StockInfoRepository resolves descriptive metadata for a ticker.
type StockInfoRepository interface {
	// Lookup never fails; unknown tickers get entity.DefaultStockInfo.
	Lookup(ctx context.Context, ticker string) entity.StockInfo
}

type stockInfoRepository struct {
	cfg        config.YahooFinance
	log        *logger.Logger
	httpClient *http.Client
	cache      *cache.Cache
}

// NewStockInfoRepository creates a Yahoo Finance quote backed StockInfoRepository.
func NewStockInfoRepository(cfg config.YahooFinance, log *logger.Logger) StockInfoRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &stockInfoRepository{
		cfg:        cfg,
		log:        log,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache.New(ttl, 2*ttl),
	}
}

func (r *stockInfoRepository) Lookup(ctx context.Context, ticker string) entity.StockInfo {
	if cached, found := r.cache.Get(ticker); found {
		return cached.(entity.StockInfo)
	}

	info, err := r.fetchQuote(ctx, ticker)
	if err != nil {
		r.log.WarnContext(ctx, "Failed to lookup stock info, using defaults", logger.StringField("ticker", ticker), logger.ErrorField(err))
		return entity.DefaultStockInfo(ticker)
	}

	r.cache.Set(ticker, info, cache.DefaultExpiration)
	return info
}

func (r *stockInfoRepository) fetchQuote(ctx context.Context, ticker string) (entity.StockInfo, error) {
	quoteURL := fmt.Sprintf("%s/v7/finance/quote?symbols=%s", strings.TrimRight(r.cfg.BaseURL, "/"), url.QueryEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, quoteURL, nil)
	if err != nil {
		return entity.StockInfo{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return entity.StockInfo{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.StockInfo{}, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.StockInfo{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var quoteResp dto.YahooQuoteResponse
	if err := json.Unmarshal(body, &quoteResp); err != nil {
		return entity.StockInfo{}, fmt.Errorf("failed to decode quote response: %w", err)
	}
	if len(quoteResp.QuoteResponse.Result) == 0 {
		return entity.StockInfo{}, fmt.Errorf("no quote found for %s", ticker)
	}

	quote := quoteResp.QuoteResponse.Result[0]
	info := entity.DefaultStockInfo(ticker)
	switch {
	case quote.LongName != "":
		info.Name = quote.LongName
	case quote.ShortName != "":
		info.Name = quote.ShortName
	}
	if quote.Sector != "" {
		info.Sector = quote.Sector
	}
	if quote.RegularMarketPrice != nil {
		info.CurrentPrice = *quote.RegularMarketPrice
	}
	return info, nil
}
