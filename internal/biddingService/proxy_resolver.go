package bidding

import (
	"context"
	"fmt"
	"time"

	"job-marketplace/internal/biddingerrors"
	"job-marketplace/internal/models"
	"job-marketplace/utils"
)

// ProxyOffset is the step by which a proxy bid undercuts its closest competitor
const ProxyOffset int64 = 1

type proxyFieldKind int

const (
	noProxyBids proxyFieldKind = iota
	singleProxyBid
	contestedProxyBids
)

// proxyField is the part of the proxy bids that decides the outcome:
// the lowest floor and, when contested, the second lowest.
type proxyField struct {
	kind     proxyFieldKind
	leader   models.Bid
	runnerUp models.Bid
}

// classifyProxyBids expects bids ordered by ascending floor
func classifyProxyBids(bids []models.Bid) proxyField {
	switch len(bids) {
	case 0:
		return proxyField{kind: noProxyBids}
	case 1:
		return proxyField{kind: singleProxyBid, leader: bids[0]}
	default:
		return proxyField{kind: contestedProxyBids, leader: bids[0], runnerUp: bids[1]}
	}
}

// winningAmount returns the amount the leader takes the project at, if it beats
// the project's current minimum.
func (f proxyField) winningAmount(project models.Project) (int64, bool, error) {
	switch f.kind {
	case singleProxyBid:
		if project.MinBidID == f.leader.BidID || !project.HasMinBid() {
			return 0, false, nil
		}
		target := project.MinBid - ProxyOffset
		if f.leader.ProxyFloor > target {
			return 0, false, nil
		}
		return target, true, nil

	case contestedProxyBids:
		var amount int64
		switch {
		case f.leader.ProxyFloor <= f.runnerUp.ProxyFloor-ProxyOffset:
			amount = f.runnerUp.ProxyFloor - ProxyOffset
		case f.leader.ProxyFloor == f.runnerUp.ProxyFloor:
			amount = f.leader.ProxyFloor
		default:
			return 0, false, fmt.Errorf("service: %w - bid %s floor %d ahead of bid %s floor %d",
				biddingerrors.ErrProxyOrderViolated,
				f.leader.BidID, f.leader.ProxyFloor, f.runnerUp.BidID, f.runnerUp.ProxyFloor)
		}
		if amount >= project.MinBid {
			return 0, false, nil
		}
		return amount, true, nil

	default:
		return 0, false, nil
	}
}

// resolveProxyBids lets the best proxy bid undercut the running minimum once bidding has closed
func (s *BiddingService) resolveProxyBids(ctx context.Context, project models.Project, now time.Time) (models.Project, error) {
	if project.Status != models.StatusNone || !project.DeadlinePassed(now) {
		return project, nil
	}

	bids, err := s.repo.ProxyBidsAscendingByFloor(ctx, project.ProjectID)
	if err != nil {
		return project, fmt.Errorf("service: failed to get proxy bids for project %s: %w", project.ProjectID, err)
	}

	field := classifyProxyBids(bids)
	amount, ok, err := field.winningAmount(project)
	if err != nil {
		utils.Error("proxy resolution aborted", map[string]any{
			"project_id": project.ProjectID,
			"error":      err.Error(),
		})
		return project, err
	}
	if !ok {
		return project, nil
	}

	winner := field.leader
	winner.WinningAmount = amount
	updated := project
	updated.MinBid = amount
	updated.MinBidID = winner.BidID

	if err := s.repo.RecordWinningBid(ctx, updated, winner); err != nil {
		return project, fmt.Errorf("service: failed to record proxy winner %s for project %s: %w", winner.BidID, project.ProjectID, err)
	}

	utils.Info("proxy bid undercut running minimum", map[string]any{
		"project_id":     updated.ProjectID,
		"bid_id":         winner.BidID,
		"previous_min":   project.MinBid,
		"winning_amount": amount,
	})
	return updated, nil
}
