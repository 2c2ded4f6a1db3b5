package config

import (
	"strings"
	"time"

	"golang-stock-sentiment/pkg/config"
	"golang-stock-sentiment/pkg/tracing"

	"github.com/spf13/viper"
)

// Analyzer holds pipeline tuning.
type Analyzer struct {
	SourceTimeout time.Duration `mapstructure:"source_timeout"`
	FetchTimeout  time.Duration `mapstructure:"fetch_timeout"`
	ScoreTimeout  time.Duration `mapstructure:"score_timeout"`
	MaxExcerpts   int           `mapstructure:"max_excerpts"`
	Watchlist     []string      `mapstructure:"watchlist"`
	WatchCron     string        `mapstructure:"watch_cron"`
}

// Source configures one news source adapter.
type Source struct {
	Name     string `mapstructure:"name"`
	Enabled  bool   `mapstructure:"enabled"`
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
	MaxItems int    `mapstructure:"max_items"`
}

// Scorer selects the sentiment model.
type Scorer struct {
	Provider string `mapstructure:"provider"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// YahooFinance holds the configuration for the Yahoo Finance quote API.
type YahooFinance struct {
	BaseURL  string        `mapstructure:"base_url"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Config holds the full configuration for the sentiment service.
type Config struct {
	App          config.App     `mapstructure:"app"`
	Logger       config.Logger  `mapstructure:"logger"`
	API          config.API     `mapstructure:"api"`
	Analyzer     Analyzer       `mapstructure:"analyzer"`
	Scorer       Scorer         `mapstructure:"scorer"`
	Gemini       Gemini         `mapstructure:"gemini"`
	Telegram     Telegram       `mapstructure:"telegram"`
	YahooFinance YahooFinance   `mapstructure:"yahoo_finance"`
	Tracing      tracing.Config `mapstructure:"tracing"`
	Sources      []Source       `mapstructure:"sources"`
}

// Source names understood by the adapter registry.
const (
	SourceGoogleNews   = "google_news"
	SourceBingNews     = "bing_news"
	SourceYahooFinance = "yahoo_finance"
	SourceFinnhub      = "finnhub"
	SourceMarketaux    = "marketaux"
	SourceSeekingAlpha = "seeking_alpha"
	SourceAlphaVantage = "alpha_vantage"
)

// DefaultSources is the adapter set used when none is configured.
func DefaultSources() []Source {
	return []Source{
		{Name: SourceGoogleNews, Enabled: true, BaseURL: "https://news.google.com/rss/search", MaxItems: 15},
		{Name: SourceBingNews, Enabled: true, BaseURL: "https://www.bing.com/news/search", MaxItems: 10},
		{Name: SourceYahooFinance, Enabled: true, BaseURL: "https://finance.yahoo.com", MaxItems: 15},
		{Name: SourceFinnhub, Enabled: true, BaseURL: "https://finnhub.io/api/v1", APIKey: "demo", MaxItems: 10},
		{Name: SourceMarketaux, Enabled: true, BaseURL: "https://api.marketaux.com/v1", APIKey: "demo", MaxItems: 10},
		{Name: SourceSeekingAlpha, Enabled: true, BaseURL: "https://seekingalpha.com/api/sa/combined", MaxItems: 10},
		{Name: SourceAlphaVantage, Enabled: true, BaseURL: "https://www.alphavantage.co/query", APIKey: "demo", MaxItems: 15},
	}
}

func setDefaults() {
	viper.SetDefault("app.name", "sentiment-service")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.host", "0.0.0.0")
	viper.SetDefault("api.port", 8000)
	viper.SetDefault("api.allow_origins", []string{"*"})
	viper.SetDefault("api.read_timeout", 15*time.Second)
	viper.SetDefault("api.write_timeout", 30*time.Second)
	viper.SetDefault("analyzer.source_timeout", 5*time.Second)
	viper.SetDefault("analyzer.fetch_timeout", 6*time.Second)
	viper.SetDefault("analyzer.score_timeout", 15*time.Second)
	viper.SetDefault("analyzer.max_excerpts", 15)
	viper.SetDefault("analyzer.watchlist", []string{})
	viper.SetDefault("analyzer.watch_cron", "0 */4 * * *")
	viper.SetDefault("scorer.provider", "lexicon")
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("gemini.max_request_per_minute", 15)
	viper.SetDefault("telegram.bot_token", "")
	viper.SetDefault("telegram.chat_id", 0)
	viper.SetDefault("yahoo_finance.base_url", "https://query1.finance.yahoo.com")
	viper.SetDefault("yahoo_finance.cache_ttl", time.Hour)
	viper.SetDefault("yahoo_finance.timeout", 5*time.Second)
	viper.SetDefault("tracing.enabled", false)
	viper.SetDefault("tracing.pretty_print", false)
	viper.SetDefault("tracing.service_name", "sentiment-service")
}

// Load loads the sentiment service configuration from the given path.
func Load(path string) (*Config, error) {
	setDefaults()

	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = DefaultSources()
	}
	for i := range cfg.Sources {
		cfg.Sources[i].Name = strings.ToLower(strings.TrimSpace(cfg.Sources[i].Name))
	}
	if cfg.Analyzer.FetchTimeout <= cfg.Analyzer.SourceTimeout {
		cfg.Analyzer.FetchTimeout = cfg.Analyzer.SourceTimeout + time.Second
	}
	for i, t := range cfg.Analyzer.Watchlist {
		cfg.Analyzer.Watchlist[i] = strings.ToUpper(strings.TrimSpace(t))
	}
	return &cfg, nil
}
