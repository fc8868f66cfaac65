package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insightReps = `[
  {"name": "A", "region": "North", "deals": [{"value": 100, "status": "Closed Won"}]},
  {"name": "B", "region": "South", "deals": [{"value": 500, "status": "Closed Won"}], "role": "AE"}
]`

func TestInsightService_AnswerQuestion(t *testing.T) {
	llm := &fakeLLM{answer: "B is the top performer."}
	svc := NewInsightService(newFakeSalesRepo(insightReps), llm)

	answer, err := svc.AnswerQuestion(context.Background(), "Who is on top?")
	require.NoError(t, err)

	assert.Equal(t, "B is the top performer.", answer)
	assert.Equal(t, 1, llm.calls)
	assert.Equal(t, SalesAnalystSystemPrompt, llm.lastSystem)
	assert.Contains(t, llm.lastUser, "- Top Performer: B ($500 in closed deals)")
	assert.Contains(t, llm.lastUser, `"role": "AE"`)
	assert.Contains(t, llm.lastUser, "answer the following question: Who is on top?")
}

func TestInsightService_LLMErrorPassesThrough(t *testing.T) {
	llm := &fakeLLM{err: &LLMError{Err: errors.New("401 Unauthorized")}}
	svc := NewInsightService(newFakeSalesRepo(insightReps), llm)

	_, err := svc.AnswerQuestion(context.Background(), "q")

	var llmErr *LLMError
	require.True(t, errors.As(err, &llmErr))
	assert.Equal(t, "401 Unauthorized", err.Error())
}

func TestInsightService_NoReps(t *testing.T) {
	llm := &fakeLLM{answer: "unused"}
	svc := NewInsightService(newFakeSalesRepo(`[]`), llm)

	_, err := svc.AnswerQuestion(context.Background(), "q")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, llm.calls)
}

func TestSalesQueryService(t *testing.T) {
	repo := newFakeSalesRepo(insightReps)
	svc := NewSalesQueryService(repo)

	assert.Len(t, svc.GetSalesReps(), 2)
	assert.NotEmpty(t, svc.GetDocument())

	summary, err := svc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalReps)

	_, err = NewSalesQueryService(newFakeSalesRepo(`[]`)).GetSummary()
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestSalesQueryService_GetHealth(t *testing.T) {
	health := NewSalesQueryService(newFakeSalesRepo(insightReps)).GetHealth()
	assert.Equal(t, 2, health.SalesReps)
	assert.Equal(t, "0001-01-01T00:00:00Z", health.LoadedAt)
}
