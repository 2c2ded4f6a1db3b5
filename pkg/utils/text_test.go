package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"url removed", "Stock soars! See https://x.co/abc now", "Stock soars! See  now"},
		{"www removed", "read www.example.com/news today", "read  today"},
		{"symbols stripped", "  Apple (AAPL) up 5% @ $190 #win  ", "Apple AAPL up 5  190 win"},
		{"punctuation kept", "Beats, misses? Maybe-not!", "Beats, misses? Maybe-not!"},
		{"unicode letters kept", "Nestlé gains", "Nestlé gains"},
		{"combining marks kept", "Nestle\u0301 gains", "Nestle\u0301 gains"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Shares rally on earnings", StripHTML(`<a href="x">Shares  rally</a>&nbsp;<b>on earnings</b>`))
	assert.Equal(t, "plain text", StripHTML("  plain \n text "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "ab", Truncate("ab", 3))
	assert.Equal(t, "éé", Truncate("ééé", 2))
	assert.Equal(t, "", Truncate("abc", 0))
}
