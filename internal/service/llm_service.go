package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/rs/zerolog/log"

	"sales-insight-backend/config"
)

// LLMError is the only error type LLMService returns. It wraps whatever went
// wrong talking to the provider: transport, status code or response shape.
type LLMError struct {
	Err error
}

func (e *LLMError) Error() string { return e.Err.Error() }
func (e *LLMError) Unwrap() error { return e.Err }

type LLMService interface {
	Ask(ctx context.Context, systemInstruction, userContent string) (string, error)
}

type openAILLMService struct {
	client  openai.Client
	modelID string
}

// NewOpenAILLMService talks to any OpenAI-compatible chat completion endpoint.
// The SDK's built-in retries are turned off: one failed call is one error.
func NewOpenAILLMService(cfg *config.Config) LLMService {
	client := openai.NewClient(
		option.WithBaseURL(cfg.LLM.BaseURL),
		option.WithAPIKey(cfg.LLM.APIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: cfg.LLM.Timeout}),
	)
	return &openAILLMService{
		client:  client,
		modelID: cfg.LLM.Model,
	}
}

func (s *openAILLMService) Ask(ctx context.Context, systemInstruction, userContent string) (string, error) {
	start := time.Now()
	log.Info().Str("model", s.modelID).Int("prompt_chars", len(userContent)).Msg("LLM Service: sending chat completion")

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.modelID),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemInstruction),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userContent),
					},
				},
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("LLM chat completion failed")
		return "", &LLMError{Err: err}
	}

	if len(resp.Choices) == 0 {
		log.Error().Str("response_id", resp.ID).Msg("LLM response has no choices")
		return "", &LLMError{Err: errors.New("received empty response from LLM: no choices")}
	}

	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Info().Dur("elapsed", time.Since(start)).Int("answer_chars", len(answer)).Msg("LLM Service: received answer")
	return answer, nil
}
