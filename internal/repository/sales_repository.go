package repository

import (
	"encoding/json"
	"time"

	"sales-insight-backend/internal/model"
)

// SalesRepository is read-only access to the sales document loaded at startup.
// Callers must treat every returned slice as immutable.
type SalesRepository interface {
	Document() json.RawMessage
	RawSalesReps() []json.RawMessage
	SalesReps() []model.SalesRep
	LoadedAt() time.Time
}
