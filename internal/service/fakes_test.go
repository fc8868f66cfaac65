package service

import (
	"context"
	"encoding/json"
	"time"

	"sales-insight-backend/internal/model"
)

type fakeSalesRepo struct {
	raw  []json.RawMessage
	reps []model.SalesRep
}

// newFakeSalesRepo builds both views of reps from the same JSON text.
func newFakeSalesRepo(repsJSON string) *fakeSalesRepo {
	repo := &fakeSalesRepo{}
	if err := json.Unmarshal([]byte(repsJSON), &repo.raw); err != nil {
		panic(err)
	}
	if err := json.Unmarshal([]byte(repsJSON), &repo.reps); err != nil {
		panic(err)
	}
	return repo
}

func (f *fakeSalesRepo) Document() json.RawMessage {
	doc, _ := json.Marshal(map[string]interface{}{"salesReps": f.raw})
	return doc
}
func (f *fakeSalesRepo) RawSalesReps() []json.RawMessage { return f.raw }
func (f *fakeSalesRepo) SalesReps() []model.SalesRep     { return f.reps }
func (f *fakeSalesRepo) LoadedAt() time.Time             { return time.Time{} }

type fakeLLM struct {
	answer string
	err    error

	calls      int
	lastSystem string
	lastUser   string
}

func (f *fakeLLM) Ask(ctx context.Context, systemInstruction, userContent string) (string, error) {
	f.calls++
	f.lastSystem = systemInstruction
	f.lastUser = userContent
	return f.answer, f.err
}
