package http

import (
	"net/http"
	"strings"

	"golang-stock-sentiment/internal/analyzer/dto"
	"golang-stock-sentiment/internal/analyzer/service"
	"golang-stock-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

const maxTickerLength = 10

// AnalysisHandler handles HTTP requests for ticker analysis.
type AnalysisHandler struct {
	analyzerService service.AnalyzerService
	logger          *logger.Logger
	version         string
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analyzerService service.AnalyzerService, logger *logger.Logger, version string) *AnalysisHandler {
	return &AnalysisHandler{analyzerService: analyzerService, logger: logger, version: version}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalysisHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/analyze/:ticker", h.AnalyzeTicker)
}

// Health godoc
// @Summary Service health
// @Description Reports that the API is running
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Router / [get]
func (h *AnalysisHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.HealthResponse{Message: "Stock Sentiment Analyzer API is running", Version: h.version})
}

// AnalyzeTicker godoc
// @Summary Analyze news sentiment for a ticker
// @Description Fetches recent news from all configured sources, scores it and returns a verdict
// @Tags analysis
// @Produce  json
// @Param   ticker  path    string  true    "Ticker symbol, at most 10 characters"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /analyze/{ticker} [get]
func (h *AnalysisHandler) AnalyzeTicker(c echo.Context) error {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
	if ticker == "" || len(ticker) > maxTickerLength {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid ticker symbol"})
	}

	result := h.analyzerService.AnalyzeTicker(c.Request().Context(), ticker)
	return c.JSON(http.StatusOK, dto.NewAnalysisResponse(result))
}
