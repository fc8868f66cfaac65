package model

import "time"

const (
	AuditOutcomeAnswered   = "answered"
	AuditOutcomeRejected   = "rejected"
	AuditOutcomeLLMError   = "llm_error"
	AuditOutcomeUnexpected = "unexpected_error"
)

// AIAuditEvent records one /api/ai request and how it was resolved.
type AIAuditEvent struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id,omitempty"`
	Time      time.Time `json:"time"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Outcome   string    `json:"outcome"`
	LatencyMS int64     `json:"latency_ms"`
}
