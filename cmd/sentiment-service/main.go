package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	delivery "golang-stock-sentiment/internal/analyzer/delivery/http"
	_ "golang-stock-sentiment/internal/analyzer/docs"
	"golang-stock-sentiment/internal/analyzer/dto"
	"golang-stock-sentiment/internal/analyzer/service"
	"golang-stock-sentiment/pkg/logger"
	"golang-stock-sentiment/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var (
	configPath string
	notify     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the sentiment HTTP API",
	Run:   runServe,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [TICKER]",
	Short: "Analyzes a single ticker and prints the result as JSON",
	Args:  cobra.ExactArgs(1),
	Run:   runAnalyze,
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Analyzes the configured watchlist on a schedule and posts digests to Telegram",
	Run:   runWatch,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.close(context.Background())

	a.logger.Info("Starting Sentiment Service", logger.Field("name", a.cfg.App.Name))

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = a.cfg.API.ReadTimeout
	e.Server.WriteTimeout = a.cfg.API.WriteTimeout
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: a.cfg.API.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	// Initialize handlers and routes
	analysisHandler := delivery.NewAnalysisHandler(a.analyzer, a.logger, a.cfg.App.Version)
	e.GET("/", analysisHandler.Health)
	analysisHandler.RegisterRoutes(e.Group(""))
	analysisHandler.RegisterRoutes(e.Group("/api/v1"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", a.cfg.API.Host, a.cfg.API.Port)
		a.logger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	a.logger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	a.logger.Info("Server exiting")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := strings.ToUpper(strings.TrimSpace(args[0]))
	if ticker == "" || len(ticker) > 10 {
		log.Fatalf("Invalid ticker symbol %q", args[0])
	}

	a, err := bootstrap(ctx, configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.close(context.Background())

	result := a.analyzer.AnalyzeTicker(ctx, ticker)

	out, err := json.MarshalIndent(dto.NewAnalysisResponse(result), "", "  ")
	if err != nil {
		a.logger.Fatal("Failed to encode result", logger.ErrorField(err))
	}
	fmt.Println(string(out))

	if notify {
		notifier, err := telegram.NewClient(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID)
		if err != nil {
			a.logger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		if err := notifier.SendMessage(telegram.FormatAnalysisForTelegram(result)); err != nil {
			a.logger.Error("Failed to send Telegram message", logger.ErrorField(err))
		}
	}
}

func runWatch(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, configPath)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer a.close(context.Background())

	notifier, err := telegram.NewClient(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID)
	if err != nil {
		a.logger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
	}

	watchSvc := service.NewWatchService(a.analyzer, notifier, a.cfg.Analyzer.Watchlist, a.cfg.Analyzer.WatchCron, a.logger)
	if err := watchSvc.Start(ctx); err != nil {
		a.logger.Error("Watch service failed", logger.ErrorField(err))
		if msgErr := notifier.SendMessage(telegram.FormatErrorAlertMessage(time.Now(), "watch", err.Error(), strings.Join(a.cfg.Analyzer.Watchlist, ","))); msgErr != nil {
			a.logger.Error("Failed to send error alert", logger.ErrorField(msgErr))
		}
	}
}

// @title Stock Sentiment Analyzer API
// @version 1.0
// @description Aggregates news sentiment for a stock ticker into a trading verdict.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "sentiment-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-sentiment.yaml", "Path to the configuration file")
	analyzeCmd.Flags().BoolVar(&notify, "notify", false, "Send the result to the configured Telegram chat")

	rootCmd.AddCommand(serveCmd, analyzeCmd, watchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing sentiment-service CLI: %s\n", err)
		os.Exit(1)
	}
}
