package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
app:
  name: sentiment-test
analyzer:
  source_timeout: 2s
  fetch_timeout: 1s
  watchlist: [" aapl ", "msft"]
sources:
  - name: Google_News
    enabled: true
    base_url: http://localhost/rss
    max_items: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sentiment-test", cfg.App.Name)
	assert.Equal(t, 2*time.Second, cfg.Analyzer.SourceTimeout)
	assert.Equal(t, 3*time.Second, cfg.Analyzer.FetchTimeout)
	assert.Equal(t, 15*time.Second, cfg.Analyzer.ScoreTimeout)
	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Analyzer.Watchlist)
	assert.Equal(t, 15, cfg.Analyzer.MaxExcerpts)
	assert.Equal(t, "lexicon", cfg.Scorer.Provider)
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, SourceGoogleNews, cfg.Sources[0].Name)
	assert.Equal(t, 5, cfg.Sources[0].MaxItems)
}

func TestDefaultSources(t *testing.T) {
	sources := DefaultSources()
	assert.Len(t, sources, 7)
	for _, s := range sources {
		assert.True(t, s.Enabled, s.Name)
		assert.NotEmpty(t, s.BaseURL, s.Name)
		assert.Positive(t, s.MaxItems, s.Name)
	}
}
