package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang-stock-sentiment/internal/entity"
)

// stubScorer returns a fixed compound per trimmed text, 0 when unknown.
type stubScorer map[string]float64

func (s stubScorer) Score(_ context.Context, text string) float64 {
	return s[strings.TrimSpace(text)]
}

type stubModel struct {
	mu     sync.Mutex
	score  float64
	err    error
	calls  int
	inputs []string
}

func (m *stubModel) PolarityScore(_ context.Context, text string) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.inputs = append(m.inputs, text)
	return m.score, m.err
}

func (m *stubModel) Name() string { return "stub" }

var errStub = errors.New("stub failure")

type stubStockInfoRepo struct {
	info entity.StockInfo
}

func (r stubStockInfoRepo) Lookup(_ context.Context, ticker string) entity.StockInfo {
	if r.info.Name == "" {
		return entity.DefaultStockInfo(ticker)
	}
	return r.info
}

type stubFetchService struct {
	articles   []entity.RawArticle
	gotTicker  string
	gotCompany string
}

func (f *stubFetchService) FetchAll(_ context.Context, ticker string, companyName string) []entity.RawArticle {
	f.gotTicker = ticker
	f.gotCompany = companyName
	return f.articles
}
