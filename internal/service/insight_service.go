package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sales-insight-backend/internal/repository"
)

// InsightService answers free-form questions about the loaded sales data.
type InsightService interface {
	AnswerQuestion(ctx context.Context, question string) (string, error)
}

type insightService struct {
	salesRepo  repository.SalesRepository
	llmService LLMService
}

func NewInsightService(salesRepo repository.SalesRepository, llmService LLMService) InsightService {
	return &insightService{
		salesRepo:  salesRepo,
		llmService: llmService,
	}
}

// AnswerQuestion errors are either *LLMError (the provider call failed) or
// anything else, which callers should treat as unexpected.
func (s *insightService) AnswerQuestion(ctx context.Context, question string) (string, error) {
	summary, err := Summarize(s.salesRepo.SalesReps())
	if err != nil {
		log.Warn().Err(err).Msg("Cannot summarize sales data for AI question")
		return "", err
	}

	prompt, err := BuildContext(summary, s.salesRepo.RawSalesReps(), question)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	log.Debug().
		Int("total_reps", summary.TotalReps).
		Int("total_deals", summary.TotalDeals).
		Str("top_performer", summary.TopPerformer.Name).
		Msg("Built sales context for AI question")

	return s.llmService.Ask(ctx, SalesAnalystSystemPrompt, prompt)
}
