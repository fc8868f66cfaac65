package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"sales-insight-backend/internal/model"
)

const SalesAnalystSystemPrompt = "You are a sales analytics assistant with access to the company's sales data. " +
	"Analyze the provided data to give accurate, data-driven responses. " +
	"When appropriate, include specific numbers, trends, and insights from the data."

// BuildContext renders the user message sent to the LLM: the summary, every rep
// as indented JSON and the question itself. reps is only read.
func BuildContext(summary *model.SalesSummary, reps []json.RawMessage, question string) (string, error) {
	detail, err := json.MarshalIndent(reps, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render sales reps: %w", err)
	}

	return fmt.Sprintf(`
Sales Team Overview:
- Total Sales Representatives: %d
- Regions Covered: %s
- Total Deals: %d (Won: %d, Lost: %d, In Progress: %d)
- Total Deal Value: $%s
- Top Performer: %s ($%s in closed deals)

Detailed Sales Representatives Data:
%s

Please analyze this sales data to answer the following question: %s
`,
		summary.TotalReps,
		strings.Join(summary.Regions, ", "),
		summary.TotalDeals, summary.WonDeals, summary.LostDeals, summary.InProgressDeals,
		FormatMoney(summary.TotalValue),
		summary.TopPerformer.Name, FormatMoney(summary.TopPerformer.WonValue),
		detail,
		question,
	), nil
}

// FormatMoney groups the integer part in thousands ("1234567.5" -> "1,234,567.5").
func FormatMoney(d decimal.Decimal) string {
	s := d.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(frac)
	return b.String()
}
