package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-stock-sentiment/internal/analyzer/config"
	"golang-stock-sentiment/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const sentimentPrompt = `You are a financial news sentiment rater.
Rate the market sentiment of the headline below for the company it mentions.
Respond with JSON only, in the form {"compound": <number>} where the number is between -1 (very bearish) and 1 (very bullish) and 0 is neutral.

Headline: %s`

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiSentimentRepository struct {
	cfg            config.Gemini
	logger         *logger.Logger
	generator      contentGenerator
	requestLimiter *rate.Limiter
}

type geminiSentimentReply struct {
	Compound *float64 `json:"compound"`
}

// NewGeminiSentimentRepository returns a SentimentModel backed by a Gemini model.
func NewGeminiSentimentRepository(cfg config.Gemini, log *logger.Logger, genAiClient *genai.Client) (SentimentModel, error) {
	if genAiClient == nil {
		return nil, errors.New("gemini client is required")
	}
	return newGeminiSentimentRepository(cfg, log, genAiClient.Models), nil
}

func newGeminiSentimentRepository(cfg config.Gemini, log *logger.Logger, generator contentGenerator) *geminiSentimentRepository {
	perMinute := cfg.MaxRequestPerMinute
	if perMinute <= 0 {
		perMinute = 15
	}
	return &geminiSentimentRepository{
		cfg:            cfg,
		logger:         log,
		generator:      generator,
		requestLimiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

func (r *geminiSentimentRepository) Name() string {
	return "gemini"
}

func (r *geminiSentimentRepository) PolarityScore(ctx context.Context, text string) (float64, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(sentimentPrompt, text), "user"),
	}
	resp, err := r.generator.GenerateContent(ctx, r.cfg.Model, contents, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0)),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to generate sentiment with Gemini", logger.ErrorField(err), logger.StringField("model", r.cfg.Model))
		return 0, fmt.Errorf("failed to generate content: %w", err)
	}

	return parseCompound(resp.Text())
}

func parseCompound(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, errors.New("empty response from Gemini")
	}

	var reply geminiSentimentReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return 0, fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}
	if reply.Compound == nil {
		return 0, errors.New("gemini response has no compound score")
	}

	score := *reply.Compound
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}
	return score, nil
}
