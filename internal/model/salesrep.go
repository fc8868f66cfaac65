package model

import "github.com/shopspring/decimal"

const (
	DealStatusWon        = "Closed Won"
	DealStatusLost       = "Closed Lost"
	DealStatusInProgress = "In Progress"
)

// SalesRep is the typed view of one entry of the "salesReps" array. Fields not
// listed here stay in the raw document and are served verbatim.
type SalesRep struct {
	Name   string `json:"name"`
	Region string `json:"region"`
	Deals  []Deal `json:"deals"`
}

// Deal.Status is an open set; the DealStatus* constants are the values seen so far.
type Deal struct {
	Client string          `json:"client,omitempty"`
	Value  decimal.Decimal `json:"value"`
	Status string          `json:"status"`
}
