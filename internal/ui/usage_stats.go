package ui

import (
	"fmt"

	"github.com/mate-labs/matepr/internal/domain/models"
	"github.com/mate-labs/matepr/internal/i18n"
)

// PrintUsageStats prints the provider's token usage and estimated cost.
// Providers without usage reporting (basic) pass nil and nothing is printed.
func PrintUsageStats(usage *models.TokenUsage, t *i18n.Translations) {
	if usage == nil {
		return
	}

	line := t.GetMessage("usage_stats_line", 0, map[string]interface{}{
		"InputTokens":  usage.InputTokens,
		"OutputTokens": usage.OutputTokens,
		"Cost":         fmt.Sprintf("%.4f", usage.CostUSD),
	})
	fmt.Printf("%s %s\n", StatsEmoji, line)

	if usage.Model != "" || usage.DurationMs > 0 {
		details := usage.Model
		if usage.DurationMs > 0 {
			if details != "" {
				details += ", "
			}
			details += fmt.Sprintf("%dms", usage.DurationMs)
		}
		_, _ = Dim.Printf("   %s\n", details)
	}
}
