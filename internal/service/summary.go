package service

import (
	"errors"

	"github.com/shopspring/decimal"

	"sales-insight-backend/internal/model"
)

// ErrEmptyInput is returned by Summarize when there is no rep to pick a top
// performer from.
var ErrEmptyInput = errors.New("no sales representatives to summarize")

// Summarize computes the aggregate view of reps. Deals whose status is none of
// the three known values still count toward TotalDeals and TotalValue but toward
// none of the status counters. Ties for top performer go to the earliest rep.
func Summarize(reps []model.SalesRep) (*model.SalesSummary, error) {
	if len(reps) == 0 {
		return nil, ErrEmptyInput
	}

	summary := &model.SalesSummary{
		TotalReps:  len(reps),
		Regions:    make([]string, 0, len(reps)),
		TotalValue: decimal.Zero,
	}
	seenRegions := make(map[string]struct{}, len(reps))

	for i, rep := range reps {
		if _, ok := seenRegions[rep.Region]; !ok {
			seenRegions[rep.Region] = struct{}{}
			summary.Regions = append(summary.Regions, rep.Region)
		}

		wonValue := decimal.Zero
		for _, deal := range rep.Deals {
			summary.TotalDeals++
			summary.TotalValue = summary.TotalValue.Add(deal.Value)

			switch deal.Status {
			case model.DealStatusWon:
				summary.WonDeals++
				wonValue = wonValue.Add(deal.Value)
			case model.DealStatusLost:
				summary.LostDeals++
			case model.DealStatusInProgress:
				summary.InProgressDeals++
			}
		}

		if i == 0 || wonValue.GreaterThan(summary.TopPerformer.WonValue) {
			summary.TopPerformer = model.RepPerformance{Name: rep.Name, WonValue: wonValue}
		}
	}

	return summary, nil
}
