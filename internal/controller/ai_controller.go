package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"sales-insight-backend/internal/dto"
	"sales-insight-backend/internal/kafka"
	"sales-insight-backend/internal/model"
	"sales-insight-backend/internal/router"
	"sales-insight-backend/internal/service"
)

// AIController always answers with HTTP 200 and an "answer" body; failures are
// reported in the answer text so existing clients keep working.
type AIController struct {
	insightService service.InsightService
	auditProducer  kafka.AuditProducer
}

func NewAIController(insightService service.InsightService, auditProducer kafka.AuditProducer) *AIController {
	return &AIController{
		insightService: insightService,
		auditProducer:  auditProducer,
	}
}

func RegisterAIRoutes(router *gin.Engine, controller *AIController) {
	api := router.Group("/api")
	{
		api.POST("/ai", gin.CustomRecovery(controller.recoverAsAnswer), controller.HandleAIQuestion)
	}
}

// HandleAIQuestion godoc
// @Summary      Ask a question about the sales data
// @Description  Summarizes the loaded sales data, sends it with the question to the configured LLM and returns the model's answer. Every outcome, including errors, is a 200 with the message in "answer".
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request body dto.AIQuestionRequest true "The question to ask"
// @Success      200 {object} dto.AIAnswerResponse "Model answer or a human-readable error"
// @Router       /api/ai [post]
func (c *AIController) HandleAIQuestion(ctx *gin.Context) {
	start := time.Now()

	body, err := ctx.GetRawData()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read AI request body")
		c.respond(ctx, start, "", dto.AnswerUnexpectedPrefix+err.Error(), model.AuditOutcomeUnexpected)
		return
	}

	var req dto.AIQuestionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || len(bytes.TrimSpace(body)) == 0 {
			log.Warn().Err(err).Msg("Invalid JSON in AI request body")
			c.respond(ctx, start, "", dto.AnswerInvalidJSON, model.AuditOutcomeRejected)
			return
		}
		log.Warn().Err(err).Msg("AI request body has an unexpected shape")
		c.respond(ctx, start, "", dto.AnswerUnexpectedPrefix+err.Error(), model.AuditOutcomeUnexpected)
		return
	}

	if req.Question == "" {
		c.respond(ctx, start, "", dto.AnswerMissingQuestion, model.AuditOutcomeRejected)
		return
	}

	answer, err := c.insightService.AnswerQuestion(ctx.Request.Context(), req.Question)
	if err != nil {
		var llmErr *service.LLMError
		if errors.As(err, &llmErr) {
			log.Error().Err(err).Str("question", req.Question).Msg("LLM API error")
			c.respond(ctx, start, req.Question, dto.AnswerLLMErrorPrefix+llmErr.Error(), model.AuditOutcomeLLMError)
			return
		}
		log.Error().Err(err).Str("question", req.Question).Msg("Unexpected error answering AI question")
		c.respond(ctx, start, req.Question, dto.AnswerUnexpectedPrefix+err.Error(), model.AuditOutcomeUnexpected)
		return
	}

	c.respond(ctx, start, req.Question, answer, model.AuditOutcomeAnswered)
}

func (c *AIController) recoverAsAnswer(ctx *gin.Context, recovered interface{}) {
	log.Error().Interface("panic", recovered).Msg("Recovered panic in AI handler")
	c.respond(ctx, time.Now(), "", dto.AnswerUnexpectedPrefix+fmt.Sprint(recovered), model.AuditOutcomeUnexpected)
}

func (c *AIController) respond(ctx *gin.Context, start time.Time, question, answer, outcome string) {
	ctx.JSON(http.StatusOK, dto.AIAnswerResponse{Answer: answer})

	c.auditProducer.Publish(ctx.Request.Context(), model.AIAuditEvent{
		ID:        uuid.NewString(),
		RequestID: ctx.GetString(router.RequestIDKey),
		Time:      start.UTC(),
		Question:  question,
		Answer:    answer,
		Outcome:   outcome,
		LatencyMS: time.Since(start).Milliseconds(),
	})
}
