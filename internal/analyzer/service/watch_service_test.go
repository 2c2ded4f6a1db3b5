package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	tickers []string
}

func (f *fakeAnalyzer) AnalyzeTicker(_ context.Context, ticker string) *entity.AggregateResult {
	f.tickers = append(f.tickers, ticker)
	return entity.InsufficientData(ticker, entity.DefaultStockInfo(ticker), 0, time.Now())
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (n *fakeNotifier) SendMessage(text string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, text)
	return nil
}

func TestWatchServiceRunOnce(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	notifier := &fakeNotifier{}
	svc := NewWatchService(analyzer, notifier, []string{"AAPL", "MSFT"}, "@hourly", logger.NewNop())

	require.NoError(t, svc.RunOnce(context.Background()))
	assert.Equal(t, []string{"AAPL", "MSFT"}, analyzer.tickers)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "AAPL")
	assert.Contains(t, notifier.messages[0], "MSFT")

	notifier.err = errors.New("telegram down")
	assert.ErrorContains(t, svc.RunOnce(context.Background()), "telegram down")
}

func TestWatchServiceStartValidation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	empty := NewWatchService(&fakeAnalyzer{}, &fakeNotifier{}, nil, "@hourly", logger.NewNop())
	assert.Error(t, empty.Start(ctx))

	badSpec := NewWatchService(&fakeAnalyzer{}, &fakeNotifier{}, []string{"AAPL"}, "every tuesday", logger.NewNop())
	assert.Error(t, badSpec.Start(ctx))

	ok := NewWatchService(&fakeAnalyzer{}, &fakeNotifier{}, []string{"AAPL"}, "@hourly", logger.NewNop())
	assert.NoError(t, ok.Start(ctx))
}
