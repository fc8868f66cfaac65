package dto

import (
	"encoding/json"

	"sales-insight-backend/internal/model"
)

type SalesRepsResponse struct {
	SalesReps []json.RawMessage `json:"salesReps" swaggertype:"array,object"`
}

type TopPerformerResponse struct {
	Name     string  `json:"name"`
	WonValue float64 `json:"wonValue"`
}

// SalesSummaryResponse renders money as plain JSON numbers.
type SalesSummaryResponse struct {
	TotalReps       int                  `json:"totalReps"`
	Regions         []string             `json:"regions"`
	TotalDeals      int                  `json:"totalDeals"`
	TotalValue      float64              `json:"totalValue"`
	WonDeals        int                  `json:"wonDeals"`
	LostDeals       int                  `json:"lostDeals"`
	InProgressDeals int                  `json:"inProgressDeals"`
	TopPerformer    TopPerformerResponse `json:"topPerformer"`
}

func NewSalesSummaryResponse(s *model.SalesSummary) SalesSummaryResponse {
	return SalesSummaryResponse{
		TotalReps:       s.TotalReps,
		Regions:         s.Regions,
		TotalDeals:      s.TotalDeals,
		TotalValue:      s.TotalValue.InexactFloat64(),
		WonDeals:        s.WonDeals,
		LostDeals:       s.LostDeals,
		InProgressDeals: s.InProgressDeals,
		TopPerformer: TopPerformerResponse{
			Name:     s.TopPerformer.Name,
			WonValue: s.TopPerformer.WonValue.InexactFloat64(),
		},
	}
}

type HealthResponse struct {
	SalesReps int    `json:"salesReps"`
	LoadedAt  string `json:"loadedAt"`
}
