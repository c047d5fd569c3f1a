package helpers

import (
	"time"

	model "job-marketplace/internal/models"
)

// Request/Response DTOs
type CreateParticipantRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateProjectRequest struct {
	SellerID    string `json:"seller_id" binding:"required"`
	Description string `json:"description"`
	MaxBudget   int64  `json:"max_budget" binding:"required,gt=0"`
	BidDeadline string `json:"bid_deadline" binding:"required"` // RFC3339
}

type PlaceBidRequest struct {
	ProjectID  string `json:"project_id" binding:"required"`
	BuyerID    string `json:"buyer_id" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	IsProxy    bool   `json:"is_proxy"`
	ProxyFloor int64  `json:"proxy_floor" binding:"gte=0"`
}

// ProjectResponse renders the running minimum as null until a bid sets it
type ProjectResponse struct {
	ProjectID   string  `json:"project_id"`
	SellerID    string  `json:"seller_id"`
	Description string  `json:"description"`
	MaxBudget   int64   `json:"max_budget"`
	BidDeadline string  `json:"bid_deadline"`
	CreatedAt   string  `json:"created_at"`
	MinBid      *int64  `json:"min_bid"`
	MinBidID    *string `json:"min_bid_id"`
	Status      string  `json:"status"`
}

type BidResponse struct {
	BidID         string `json:"bid_id"`
	ProjectID     string `json:"project_id"`
	BuyerID       string `json:"buyer_id"`
	Amount        int64  `json:"amount"`
	IsProxy       bool   `json:"is_proxy"`
	ProxyFloor    int64  `json:"proxy_floor,omitempty"`
	SubmittedAt   string `json:"submitted_at"`
	Processed     bool   `json:"processed"`
	WinningAmount *int64 `json:"winning_amount"`
}

// NewProjectResponse converts a stored project for the wire
func NewProjectResponse(p model.Project) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:   p.ProjectID,
		SellerID:    p.SellerID,
		Description: p.Description,
		MaxBudget:   p.MaxBudget,
		BidDeadline: p.BidDeadline.UTC().Format(time.RFC3339),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		Status:      string(p.Status),
	}
	if p.HasMinBid() {
		minBid, minBidID := p.MinBid, p.MinBidID
		resp.MinBid = &minBid
		resp.MinBidID = &minBidID
	}
	return resp
}

// NewBidResponse converts a stored bid for the wire
func NewBidResponse(b model.Bid) BidResponse {
	resp := BidResponse{
		BidID:       b.BidID,
		ProjectID:   b.ProjectID,
		BuyerID:     b.BuyerID,
		Amount:      b.Amount,
		IsProxy:     b.IsProxy,
		ProxyFloor:  b.ProxyFloor,
		SubmittedAt: b.SubmittedAt.UTC().Format(time.RFC3339Nano),
		Processed:   b.Processed,
	}
	if b.WinningAmount != 0 {
		won := b.WinningAmount
		resp.WinningAmount = &won
	}
	return resp
}

func NewProjectResponses(projects []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}
