package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"job-marketplace/internal/biddingerrors"
	model "job-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

var testDeadline = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

// Helper to create a new open Project
func newProject(projectID, sellerID string, budget int64) model.Project {
	return model.Project{
		ProjectID:   projectID,
		SellerID:    sellerID,
		Description: fmt.Sprintf("%s description", projectID),
		MaxBudget:   budget,
		BidDeadline: testDeadline,
		CreatedAt:   testDeadline.Add(-time.Hour),
		MinBid:      model.NoMinBid,
		MinBidID:    model.NoBidID,
		Status:      model.StatusNone,
	}
}

// Helper to create a new Bid
func newBid(bidID, projectID, buyerID string, amount int64) model.Bid {
	return model.Bid{
		BidID:       bidID,
		ProjectID:   projectID,
		BuyerID:     buyerID,
		Amount:      amount,
		SubmittedAt: testDeadline.Add(-time.Minute),
	}
}

// Helper to create a new proxy Bid
func newProxyBid(bidID, projectID, buyerID string, amount, floor int64) model.Bid {
	b := newBid(bidID, projectID, buyerID, amount)
	b.IsProxy = true
	b.ProxyFloor = floor
	return b
}

type storeFactory func(t *testing.T) AuctionDB

// stores lists every AuctionDB implementation the contract tests run against
func stores() map[string]storeFactory {
	return map[string]storeFactory{
		"memory": func(t *testing.T) AuctionDB { return NewMemoryRepo() },
		"sqlite": func(t *testing.T) AuctionDB { return openTestSQLite(t) },
	}
}

func forEachStore(t *testing.T, fn func(t *testing.T, repo AuctionDB)) {
	t.Helper()
	for name, factory := range stores() {
		factory := factory
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			fn(t, factory(t))
		})
	}
}

func TestAuctionDB_Participants(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, repo AuctionDB) {
		ctx := context.Background()

		require.NoError(t, repo.AddBuyer(ctx, model.Buyer{BuyerID: "b1", Name: "Buyer1"}))
		require.NoError(t, repo.AddBuyer(ctx, model.Buyer{BuyerID: "b2", Name: "Buyer2"}))
		require.NoError(t, repo.AddSeller(ctx, model.Seller{SellerID: "s1", Name: "Seller1"}))

		err := repo.AddBuyer(ctx, model.Buyer{BuyerID: "b1", Name: "again"})
		require.True(t, errors.Is(err, biddingerrors.ErrInvalidArgument), "got: %v", err)
		err = repo.AddSeller(ctx, model.Seller{SellerID: "s1", Name: "again"})
		require.True(t, errors.Is(err, biddingerrors.ErrInvalidArgument), "got: %v", err)

		buyer, err := repo.FindBuyer(ctx, "b2")
		require.NoError(t, err)
		require.Equal(t, "Buyer2", buyer.Name)

		_, err = repo.FindBuyer(ctx, "ghost")
		require.True(t, errors.Is(err, biddingerrors.ErrBuyerNotFound))
		require.True(t, errors.Is(err, biddingerrors.ErrNotFound))
		_, err = repo.FindSeller(ctx, "ghost")
		require.True(t, errors.Is(err, biddingerrors.ErrSellerNotFound))

		buyers, err := repo.ListBuyers(ctx)
		require.NoError(t, err)
		require.Equal(t, []model.Buyer{{BuyerID: "b1", Name: "Buyer1"}, {BuyerID: "b2", Name: "Buyer2"}}, buyers)

		sellers, err := repo.ListSellers(ctx)
		require.NoError(t, err)
		require.Equal(t, []model.Seller{{SellerID: "s1", Name: "Seller1"}}, sellers)
	})
}

func TestAuctionDB_Projects(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, repo AuctionDB) {
		ctx := context.Background()

		p1 := newProject("p1", "s1", 100)
		p2 := newProject("p2", "s1", 200)
		require.NoError(t, repo.CreateProject(ctx, p1))
		require.NoError(t, repo.CreateProject(ctx, p2))

		err := repo.CreateProject(ctx, p1)
		require.True(t, errors.Is(err, biddingerrors.ErrInvalidArgument), "got: %v", err)

		got, err := repo.FindProject(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, p1, got)

		_, err = repo.FindProject(ctx, "missing")
		require.True(t, errors.Is(err, biddingerrors.ErrProjectNotFound))

		p1.MinBid = 42
		p1.MinBidID = "bid-42"
		p1.Status = model.StatusMinimumFound
		require.NoError(t, repo.PersistProject(ctx, p1))

		got, err = repo.FindProject(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, p1, got)

		err = repo.PersistProject(ctx, newProject("missing", "s1", 1))
		require.True(t, errors.Is(err, biddingerrors.ErrProjectNotFound))

		projects, err := repo.ListProjects(ctx)
		require.NoError(t, err)
		require.Equal(t, []model.Project{p1, p2}, projects)
	})
}

func TestAuctionDB_Bids(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bid       model.Bid
		wantError error
	}{
		{name: "valid_bid", bid: newBid("bid1", "p1", "b1", 100)},
		{name: "valid_proxy_bid", bid: newProxyBid("bid2", "p1", "b1", 90, 40)},
		{name: "project_not_found", bid: newBid("bid3", "pX", "b1", 50), wantError: biddingerrors.ErrProjectNotFound},
		{name: "empty_projectID", bid: newBid("bid4", "", "b1", 50), wantError: biddingerrors.ErrProjectNotFound},
	}

	forEachStore(t, func(t *testing.T, repo AuctionDB) {
		ctx := context.Background()
		require.NoError(t, repo.CreateProject(ctx, newProject("p1", "s1", 100)))

		var stored []model.Bid
		for _, tc := range tests {
			bid, err := repo.AppendBid(ctx, tc.bid)
			if tc.wantError != nil {
				require.True(t, errors.Is(err, tc.wantError), "%s: got %v", tc.name, err)
				continue
			}
			require.NoError(t, err, tc.name)
			require.Positive(t, bid.Seq, tc.name)
			stored = append(stored, bid)
		}
		require.Less(t, stored[0].Seq, stored[1].Seq)

		// duplicate bid id
		_, err := repo.AppendBid(ctx, newBid("bid1", "p1", "b1", 10))
		require.True(t, errors.Is(err, biddingerrors.ErrInvalidArgument), "got: %v", err)

		bids, err := repo.BidsByProject(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, stored, bids)

		all, err := repo.ListBids(ctx)
		require.NoError(t, err)
		require.Equal(t, stored, all)

		none, err := repo.BidsByProject(ctx, "pX")
		require.NoError(t, err)
		require.Empty(t, none)

		err = repo.PersistBid(ctx, newBid("ghost", "p1", "b1", 10))
		require.True(t, errors.Is(err, biddingerrors.ErrBidNotFound))
	})
}

func TestAuctionDB_UnprocessedBids(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, repo AuctionDB) {
		ctx := context.Background()
		require.NoError(t, repo.CreateProject(ctx, newProject("p1", "s1", 100)))
		require.NoError(t, repo.CreateProject(ctx, newProject("p2", "s1", 100)))

		var p1Bids []model.Bid
		for i, amount := range []int64{30, 10, 20} {
			b, err := repo.AppendBid(ctx, newBid(fmt.Sprintf("p1-bid-%d", i), "p1", "b1", amount))
			require.NoError(t, err)
			p1Bids = append(p1Bids, b)
		}
		_, err := repo.AppendBid(ctx, newBid("p2-bid", "p2", "b1", 5))
		require.NoError(t, err)

		unprocessed, err := repo.UnprocessedBids(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, p1Bids, unprocessed, "unprocessed bids must come back in submission order")

		p1Bids[1].Processed = true
		require.NoError(t, repo.PersistBid(ctx, p1Bids[1]))

		unprocessed, err = repo.UnprocessedBids(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, []model.Bid{p1Bids[0], p1Bids[2]}, unprocessed)

		others, err := repo.UnprocessedBids(ctx, "p2")
		require.NoError(t, err)
		require.Len(t, others, 1)
	})
}

func TestAuctionDB_ProxyBidsAscendingByFloor(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, repo AuctionDB) {
		ctx := context.Background()
		require.NoError(t, repo.CreateProject(ctx, newProject("p1", "s1", 100)))

		input := []model.Bid{
			newProxyBid("high", "p1", "b1", 90, 60),
			newBid("fixed", "p1", "b1", 10),
			newProxyBid("tie-first", "p1", "b2", 80, 20),
			newProxyBid("low", "p1", "b3", 70, 5),
			newProxyBid("tie-second", "p1", "b4", 85, 20),
		}
		for _, b := range input {
			_, err := repo.AppendBid(ctx, b)
			require.NoError(t, err)
		}

		proxies, err := repo.ProxyBidsAscendingByFloor(ctx, "p1")
		require.NoError(t, err)

		var ids []string
		for _, b := range proxies {
			require.True(t, b.IsProxy)
			ids = append(ids, b.BidID)
		}
		require.Equal(t, []string{"low", "tie-first", "tie-second", "high"}, ids)
	})
}

func TestAuctionDB_RecordWinningBid(t *testing.T) {
	t.Parallel()

	forEachStore(t, func(t *testing.T, repo AuctionDB) {
		ctx := context.Background()
		project := newProject("p1", "s1", 100)
		require.NoError(t, repo.CreateProject(ctx, project))
		bid, err := repo.AppendBid(ctx, newProxyBid("proxy", "p1", "b1", 50, 10))
		require.NoError(t, err)

		bid.WinningAmount = 39
		project.MinBid = 39
		project.MinBidID = bid.BidID
		require.NoError(t, repo.RecordWinningBid(ctx, project, bid))

		gotProject, err := repo.FindProject(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, int64(39), gotProject.MinBid)
		require.Equal(t, "proxy", gotProject.MinBidID)

		bids, err := repo.BidsByProject(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, []model.Bid{bid}, bids)

		// an unknown bid leaves the project untouched
		ghost := newProxyBid("ghost", "p1", "b1", 50, 10)
		changed := gotProject
		changed.MinBid = 1
		err = repo.RecordWinningBid(ctx, changed, ghost)
		require.True(t, errors.Is(err, biddingerrors.ErrBidNotFound), "got: %v", err)

		gotProject, err = repo.FindProject(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, int64(39), gotProject.MinBid)
	})
}

// concurrency test
func TestMemoryRepo_ConcurrentAppends(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	repo.projects["p1"] = newProject("p1", "s1", 100)
	repo.projectOrder = append(repo.projectOrder, "p1")

	var wg sync.WaitGroup
	concurrentCount := 50

	for i := 0; i < concurrentCount; i++ {
		wg.Add(1)
		i := i
		go func() {
			defer wg.Done()
			b := newBid(fmt.Sprintf("bid-%d", i), "p1", fmt.Sprintf("buyer-%d", i), int64(100+i))
			_, err := repo.AppendBid(context.Background(), b)
			require.NoError(t, err)
		}()
	}

	wg.Wait()

	require.Len(t, repo.bids["p1"], concurrentCount)
	require.Len(t, repo.bidIndex, concurrentCount)
	require.Equal(t, int64(concurrentCount), repo.seq)
	for i, b := range repo.bids["p1"] {
		require.Equal(t, int64(i+1), b.Seq)
		require.Equal(t, i, repo.bidIndex[b.BidID].index)
	}
}

// Concurrent read test
func TestMemoryRepo_ConcurrentReads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateProject(ctx, newProject("p1", "s1", 100)))

	bid1, err := repo.AppendBid(ctx, newBid("bid1", "p1", "b1", 100))
	require.NoError(t, err)
	bid2, err := repo.AppendBid(ctx, newBid("bid2", "p1", "b2", 150))
	require.NoError(t, err)

	var wg sync.WaitGroup
	readCount := 50

	for i := 0; i < readCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bids, err := repo.BidsByProject(ctx, "p1")
			require.NoError(t, err)
			require.Equal(t, []model.Bid{bid1, bid2}, bids)
		}()
	}

	wg.Wait()
}

func TestMemoryRepo_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryRepo()
	require.NoError(t, repo.CreateProject(ctx, newProject("p1", "s1", 100)))
	_, err := repo.AppendBid(ctx, newBid("bid1", "p1", "b1", 100))
	require.NoError(t, err)

	bids, err := repo.BidsByProject(ctx, "p1")
	require.NoError(t, err)
	bids[0].Amount = 1

	require.Equal(t, int64(100), repo.bids["p1"][0].Amount)
}
