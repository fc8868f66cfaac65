package model

import "github.com/shopspring/decimal"

// SalesSummary is derived from the loaded reps on every request and never stored.
type SalesSummary struct {
	TotalReps       int
	Regions         []string // deduplicated, order not meaningful
	TotalDeals      int
	TotalValue      decimal.Decimal
	WonDeals        int
	LostDeals       int
	InProgressDeals int
	TopPerformer    RepPerformance
}

type RepPerformance struct {
	Name     string
	WonValue decimal.Decimal
}
