package bidding

import (
	"errors"
	"testing"

	"job-marketplace/internal/biddingerrors"
	"job-marketplace/internal/models"

	"github.com/stretchr/testify/require"
)

func proxyBid(id string, amount, floor int64) models.Bid {
	return models.Bid{BidID: id, Amount: amount, IsProxy: true, ProxyFloor: floor}
}

func openProject(minBid int64, minBidID string) models.Project {
	return models.Project{ProjectID: "p1", MaxBudget: 100, MinBid: minBid, MinBidID: minBidID, Status: models.StatusNone}
}

func TestClassifyProxyBids(t *testing.T) {
	t.Parallel()

	require.Equal(t, noProxyBids, classifyProxyBids(nil).kind)

	single := classifyProxyBids([]models.Bid{proxyBid("a", 5, 1)})
	require.Equal(t, singleProxyBid, single.kind)
	require.Equal(t, "a", single.leader.BidID)

	contested := classifyProxyBids([]models.Bid{proxyBid("a", 5, 1), proxyBid("b", 5, 4), proxyBid("c", 9, 8)})
	require.Equal(t, contestedProxyBids, contested.kind)
	require.Equal(t, "a", contested.leader.BidID)
	require.Equal(t, "b", contested.runnerUp.BidID)
}

func TestProxyField_WinningAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bids       []models.Bid
		project    models.Project
		wantAmount int64
		wantOK     bool
		wantErr    error
	}{
		{
			name:    "no_proxy_bids",
			project: openProject(5, "fixed"),
		},
		{
			name:       "single_undercuts_fixed_minimum",
			bids:       []models.Bid{proxyBid("a", 5, 1)},
			project:    openProject(5, "fixed"),
			wantAmount: 4,
			wantOK:     true,
		},
		{
			name:       "single_floor_exactly_one_below",
			bids:       []models.Bid{proxyBid("a", 9, 4)},
			project:    openProject(5, "fixed"),
			wantAmount: 4,
			wantOK:     true,
		},
		{
			name:    "single_floor_too_high",
			bids:    []models.Bid{proxyBid("a", 9, 5)},
			project: openProject(5, "fixed"),
		},
		{
			name:    "single_already_holds_minimum",
			bids:    []models.Bid{proxyBid("a", 5, 4)},
			project: openProject(5, "a"),
		},
		{
			name:    "single_without_minimum",
			bids:    []models.Bid{proxyBid("a", 5, 4)},
			project: openProject(models.NoMinBid, models.NoBidID),
		},
		{
			name:       "contested_undercuts_runner_up_floor",
			bids:       []models.Bid{proxyBid("a", 5, 1), proxyBid("b", 5, 4)},
			project:    openProject(5, "fixed"),
			wantAmount: 3,
			wantOK:     true,
		},
		{
			name:       "contested_equal_floors",
			bids:       []models.Bid{proxyBid("a", 9, 4), proxyBid("b", 8, 4)},
			project:    openProject(8, "b"),
			wantAmount: 4,
			wantOK:     true,
		},
		{
			name:    "contested_loses_to_fixed_minimum",
			bids:    []models.Bid{proxyBid("a", 5, 4), proxyBid("b", 6, 4)},
			project: openProject(3, "fixed"),
		},
		{
			name:    "contested_candidate_equal_to_minimum",
			bids:    []models.Bid{proxyBid("a", 5, 1), proxyBid("b", 9, 4)},
			project: openProject(3, "fixed"),
		},
		{
			name:    "contested_out_of_order",
			bids:    []models.Bid{proxyBid("a", 9, 6), proxyBid("b", 9, 2)},
			project: openProject(9, "a"),
			wantErr: biddingerrors.ErrProxyOrderViolated,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			amount, ok, err := classifyProxyBids(tc.bids).winningAmount(tc.project)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected error: %v, got: %v", tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.wantAmount, amount)
		})
	}
}

func TestFinalStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		minBid int64
		want   models.BidStatus
	}{
		{name: "no_bids", minBid: models.NoMinBid, want: models.StatusMinimumNotFound},
		{name: "above_budget", minBid: 101, want: models.StatusMinimumTooHigh},
		{name: "at_budget", minBid: 100, want: models.StatusMinimumFound},
		{name: "below_budget", minBid: 1, want: models.StatusMinimumFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, finalStatus(models.Project{MaxBudget: 100, MinBid: tc.minBid}))
		})
	}
}
