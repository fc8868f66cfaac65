package service

import (
	"encoding/json"
	"time"

	"sales-insight-backend/internal/dto"
	"sales-insight-backend/internal/model"
	"sales-insight-backend/internal/repository"
)

type SalesQueryService interface {
	GetDocument() json.RawMessage
	GetSalesReps() []json.RawMessage
	GetSummary() (*model.SalesSummary, error)
	GetHealth() *dto.HealthResponse
}

type salesQueryService struct {
	salesRepo repository.SalesRepository
}

func NewSalesQueryService(salesRepo repository.SalesRepository) SalesQueryService {
	return &salesQueryService{
		salesRepo: salesRepo,
	}
}

func (s *salesQueryService) GetDocument() json.RawMessage {
	return s.salesRepo.Document()
}

func (s *salesQueryService) GetSalesReps() []json.RawMessage {
	return s.salesRepo.RawSalesReps()
}

func (s *salesQueryService) GetSummary() (*model.SalesSummary, error) {
	return Summarize(s.salesRepo.SalesReps())
}

func (s *salesQueryService) GetHealth() *dto.HealthResponse {
	return &dto.HealthResponse{
		SalesReps: len(s.salesRepo.RawSalesReps()),
		LoadedAt:  s.salesRepo.LoadedAt().Format(time.RFC3339),
	}
}
