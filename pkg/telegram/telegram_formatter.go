package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-sentiment/internal/entity"
	"golang-stock-sentiment/pkg/utils"
)

const (
	maxMessageLength  = 4090
	excerptsInMessage = 3
)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// FormatAnalysisForTelegram renders a single analysis as a Markdown message.
func FormatAnalysisForTelegram(r *entity.AggregateResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📊 *Sentiment for %s*", r.Ticker))
	if r.StockInfo.Name != "" && r.StockInfo.Name != r.Ticker {
		sb.WriteString(fmt.Sprintf(" (%s)", markdownEscaper.Replace(r.StockInfo.Name)))
	}
	sb.WriteString("\n")
	if r.StockInfo.CurrentPrice > 0 {
		sb.WriteString(fmt.Sprintf("💵 Price: $%.2f | %s\n", r.StockInfo.CurrentPrice, markdownEscaper.Replace(r.StockInfo.Sector)))
	}

	sb.WriteString(fmt.Sprintf("%s *Verdict:* %s\n", verdictIcon(r.Verdict), r.Verdict))
	if r.Verdict == entity.VerdictInsufficientData {
		sb.WriteString("ℹ️ Not enough news to form an opinion.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("🎯 *Confidence:* %.2f%%\n", r.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("😊 %d bullish | 😟 %d bearish | 😐 %d neutral\n", r.Stats.Bullish, r.Stats.Bearish, r.Stats.Neutral))

	if adv := r.AdvancedStats; adv != nil {
		sb.WriteString(fmt.Sprintf("📈 Momentum: %+.4f | Volatility: %.4f\n", adv.Momentum, adv.Volatility))
		sb.WriteString(fmt.Sprintf("🕒 24h: %+.4f (%d) | 7d: %+.4f (%d)\n", adv.Sentiment24h, adv.Articles24h, adv.Sentiment7d, adv.Articles7d))
	}

	n := len(r.TopComments)
	if n > excerptsInMessage {
		n = excerptsInMessage
	}
	if n > 0 {
		sb.WriteString("📰 *Top headlines:*\n")
		for _, e := range r.TopComments[:n] {
			sb.WriteString(fmt.Sprintf("  • %s _%s, %s_ (%+.3f)\n", markdownEscaper.Replace(e.Text), e.Source, e.TimeAgo, e.Score))
		}
	}
	return sb.String()
}

// FormatWatchlistDigest renders several analyses, split into messages that
// fit Telegram's size limit.
func FormatWatchlistDigest(results []*entity.AggregateResult) []string {
	if len(results) == 0 {
		return []string{"No tickers were analysed."}
	}

	var messages []string
	var current strings.Builder
	part := 1

	startNewPart := func() {
		current.Reset()
		if part == 1 {
			current.WriteString(fmt.Sprintf("🗞 *News Sentiment Digest* 🗞\n%s\n\n", utils.PrettyDate(time.Now())))
		} else {
			current.WriteString(fmt.Sprintf("---*News Sentiment Digest Part %d*---\n\n", part))
		}
	}
	startNewPart()

	for _, r := range results {
		entry := FormatAnalysisForTelegram(r) + "\n"
		if current.Len()+len(entry) > maxMessageLength {
			messages = append(messages, current.String())
			part++
			startNewPart()
		}
		current.WriteString(entry)
	}
	messages = append(messages, current.String())
	return messages
}

// FormatErrorAlertMessage renders an operational error for the chat.
func FormatErrorAlertMessage(at time.Time, errType string, errMsg string, data string) string {
	return fmt.Sprintf("📛 [ERROR ALERT]\n%s\n🔧 %s\n⚠️ %s\n\n📄 Data: %s\n", utils.PrettyDate(at), errType, errMsg, data)
}

func verdictIcon(v entity.Verdict) string {
	switch v {
	case entity.VerdictStrongBuy:
		return "🚀"
	case entity.VerdictBuy:
		return "🟢"
	case entity.VerdictSell:
		return "🔴"
	case entity.VerdictStrongSell:
		return "🆘"
	case entity.VerdictHold:
		return "🟡"
	default:
		return "⚪️"
	}
}
