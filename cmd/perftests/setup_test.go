package perftests

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	bidding "job-marketplace/internal/biddingService"
	"job-marketplace/internal/clock"
	"job-marketplace/internal/repository"
	"job-marketplace/utils"
)

var benchStart = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func init() {
	utils.SetOutput(io.Discard)
}

// market is a service preloaded with buyers and open projects
type market struct {
	svc      *bidding.BiddingService
	clock    *clock.Manual
	projects []string
	buyers   []string
}

// newMarket creates numProjects projects, all open for an hour, and numBuyers buyers
func newMarket(b *testing.B, repo repository.AuctionDB, numProjects, numBuyers int) *market {
	b.Helper()

	ctx := context.Background()
	clk := clock.NewManual(benchStart)
	m := &market{svc: bidding.NewBiddingService(repo, bidding.WithClock(clk)), clock: clk}

	seller, err := m.svc.AddSeller(ctx, "bench seller")
	if err != nil {
		b.Fatalf("failed to add seller: %v", err)
	}
	for i := 0; i < numBuyers; i++ {
		buyer, err := m.svc.AddBuyer(ctx, fmt.Sprintf("buyer_%d", i))
		if err != nil {
			b.Fatalf("failed to add buyer: %v", err)
		}
		m.buyers = append(m.buyers, buyer.BuyerID)
	}
	for i := 0; i < numProjects; i++ {
		project, err := m.svc.CreateProject(ctx, bidding.ProjectRequest{
			SellerID:    seller.SellerID,
			Description: fmt.Sprintf("project_%d", i),
			MaxBudget:   1000,
			BidDeadline: benchStart.Add(time.Hour),
		})
		if err != nil {
			b.Fatalf("failed to create project: %v", err)
		}
		m.projects = append(m.projects, project.ProjectID)
	}
	return m
}

func (m *market) bid(ctx context.Context, project, buyer int, amount int64, proxy bool) error {
	req := bidding.BidRequest{
		ProjectID: m.projects[project],
		BuyerID:   m.buyers[buyer],
		Amount:    amount,
	}
	if proxy {
		req.IsProxy = true
		req.ProxyFloor = amount/2 + 1
	}
	_, err := m.svc.SubmitBid(ctx, req)
	return err
}
