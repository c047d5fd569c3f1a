package models

import (
	"math"
	"time"
)

const (
	// NoMinBid is the running minimum of a project that has not seen a bid yet
	NoMinBid int64 = math.MaxInt64
	// NoBidID is the running minimum holder of a project that has not seen a bid yet
	NoBidID = ""
)

// BidStatus is the auction outcome of a project
type BidStatus string

const (
	StatusNone            BidStatus = "NONE"              // deadline not reached or not evaluated yet
	StatusMinimumFound    BidStatus = "MINIMUM_FOUND"     // lowest bid is within budget
	StatusMinimumTooHigh  BidStatus = "MINIMUM_TOO_HIGH"  // lowest bid exceeds the budget
	StatusMinimumNotFound BidStatus = "MINIMUM_NOT_FOUND" // no bid was admitted before the deadline
)

// IsTerminal reports whether the status can no longer change
func (s BidStatus) IsTerminal() bool {
	switch s {
	case StatusMinimumFound, StatusMinimumTooHigh, StatusMinimumNotFound:
		return true
	default:
		return false
	}
}

// ValidBidStatus reports whether s is a known status value
func ValidBidStatus(s BidStatus) bool {
	return s == StatusNone || s.IsTerminal()
}

// Buyer represents a participant who bids on projects
type Buyer struct {
	BuyerID string `json:"buyer_id"`
	Name    string `json:"name"`
}

// Seller represents a participant who posts projects
type Seller struct {
	SellerID string `json:"seller_id"`
	Name     string `json:"name"`
}

// Project represents a job posted for a reverse auction
type Project struct {
	ProjectID   string    `json:"project_id"`
	SellerID    string    `json:"seller_id"`
	Description string    `json:"description"`
	MaxBudget   int64     `json:"max_budget"` // whole currency units
	BidDeadline time.Time `json:"bid_deadline"`
	CreatedAt   time.Time `json:"created_at"`

	// running result, recomputed lazily on evaluation
	MinBid   int64     `json:"min_bid"`
	MinBidID string    `json:"min_bid_id"`
	Status   BidStatus `json:"status"`
}

// HasMinBid reports whether any bid has been folded into the running minimum
func (p Project) HasMinBid() bool {
	return p.MinBid != NoMinBid
}

// DeadlinePassed reports whether now is strictly after the bid deadline
func (p Project) DeadlinePassed(now time.Time) bool {
	return now.After(p.BidDeadline)
}

// Bid represents a buyer's offer on a project
type Bid struct {
	BidID       string    `json:"bid_id"`
	ProjectID   string    `json:"project_id"`
	BuyerID     string    `json:"buyer_id"`
	Amount      int64     `json:"amount"`
	SubmittedAt time.Time `json:"submitted_at"`
	Seq         int64     `json:"seq"` // submission order, assigned by the store

	Processed     bool  `json:"processed"`
	IsProxy       bool  `json:"is_proxy"`
	ProxyFloor    int64 `json:"proxy_floor"`
	WinningAmount int64 `json:"winning_amount"` // zero unless won through proxy resolution
}
