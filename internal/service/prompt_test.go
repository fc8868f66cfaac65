package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-insight-backend/internal/model"
)

func TestBuildContext(t *testing.T) {
	summary := &model.SalesSummary{
		TotalReps:       2,
		Regions:         []string{"North", "South"},
		TotalDeals:      4,
		TotalValue:      decimal.NewFromInt(1234567),
		WonDeals:        2,
		LostDeals:       1,
		InProgressDeals: 1,
		TopPerformer:    model.RepPerformance{Name: "Bob", WonValue: decimal.NewFromInt(500000)},
	}
	reps := []json.RawMessage{
		json.RawMessage(`{"name":"Alice","skills":["CRM"]}`),
		json.RawMessage(`{"name":"Bob"}`),
	}
	before := string(reps[0])

	prompt, err := BuildContext(summary, reps, "Who is doing best?")
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Total Sales Representatives: 2\n")
	assert.Contains(t, prompt, "- Regions Covered: North, South\n")
	assert.Contains(t, prompt, "- Total Deals: 4 (Won: 2, Lost: 1, In Progress: 1)\n")
	assert.Contains(t, prompt, "- Total Deal Value: $1,234,567\n")
	assert.Contains(t, prompt, "- Top Performer: Bob ($500,000 in closed deals)\n")
	assert.Contains(t, prompt, "Detailed Sales Representatives Data:\n[\n  {\n    \"name\": \"Alice\",\n    \"skills\": [\n      \"CRM\"\n    ]\n  },")
	assert.True(t, strings.HasSuffix(prompt,
		"Please analyze this sales data to answer the following question: Who is doing best?\n"))
	assert.True(t, strings.HasPrefix(prompt, "\nSales Team Overview:\n"))
	assert.Equal(t, before, string(reps[0]), "reps must not be modified")
}

func TestBuildContext_NoReps(t *testing.T) {
	prompt, err := BuildContext(&model.SalesSummary{}, []json.RawMessage{}, "q")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Detailed Sales Representatives Data:\n[]\n")
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"1234567.5", "1,234,567.5"},
		{"100000", "100,000"},
		{"-1234.25", "-1,234.25"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}
