package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang-stock-sentiment/internal/analyzer/config"
	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func TestStockInfoRepositoryLookup(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v7/finance/quote", r.URL.Path)
		switch r.URL.Query().Get("symbols") {
		case "AAPL":
			_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"AAPL","longName":"Apple Inc.","shortName":"Apple","sector":"Technology","regularMarketPrice":189.5}]}}`))
		case "XYZ":
			_, _ = w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"XYZ","shortName":"Xyz Corp"}]}}`))
		case "NONE":
			_, _ = w.Write([]byte(`{"quoteResponse":{"result":[]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	repo := NewStockInfoRepository(config.YahooFinance{BaseURL: srv.URL, CacheTTL: time.Minute, Timeout: time.Second}, logger.NewNop())
	ctx := context.Background()

	assert.Equal(t, entity.StockInfo{Name: "Apple Inc.", Sector: "Technology", CurrentPrice: 189.5}, repo.Lookup(ctx, "AAPL"))
	assert.Equal(t, entity.StockInfo{Name: "Apple Inc.", Sector: "Technology", CurrentPrice: 189.5}, repo.Lookup(ctx, "AAPL"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	assert.Equal(t, entity.StockInfo{Name: "Xyz Corp", Sector: "Unknown", CurrentPrice: 0}, repo.Lookup(ctx, "XYZ"))
	assert.Equal(t, entity.DefaultStockInfo("NONE"), repo.Lookup(ctx, "NONE"))
	assert.Equal(t, entity.DefaultStockInfo("MISSING"), repo.Lookup(ctx, "MISSING"))
}

func TestStockInfoRepositoryUnreachable(t *testing.T) {
	repo := NewStockInfoRepository(config.YahooFinance{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}, logger.NewNop())
	assert.Equal(t, entity.StockInfo{Name: "AAPL", Sector: "Unknown", CurrentPrice: 0}, repo.Lookup(context.Background(), "AAPL"))
}
