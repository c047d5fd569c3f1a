package bidding

import (
	"context"
	"fmt"

	"job-marketplace/internal/models"
	"job-marketplace/utils"
)

// applyNewBids folds every unprocessed bid into the project's running minimum.
// Proxy bids count at face amount here; their floors only matter after the deadline.
func (s *BiddingService) applyNewBids(ctx context.Context, project models.Project) (models.Project, error) {
	bids, err := s.repo.UnprocessedBids(ctx, project.ProjectID)
	if err != nil {
		return project, fmt.Errorf("service: failed to get unprocessed bids for project %s: %w", project.ProjectID, err)
	}
	if len(bids) == 0 {
		return project, nil
	}

	updated := project
	for _, bid := range bids {
		if bid.Amount < updated.MinBid {
			updated.MinBid = bid.Amount
			updated.MinBidID = bid.BidID
		}
	}

	// minimum first, then flags: rescanning a bid already folded in is a no-op
	if updated.MinBid != project.MinBid {
		if err := s.repo.PersistProject(ctx, updated); err != nil {
			return project, fmt.Errorf("service: failed to persist minimum for project %s: %w", project.ProjectID, err)
		}
		utils.Info("running minimum updated", map[string]any{
			"project_id": updated.ProjectID,
			"min_bid":    updated.MinBid,
			"min_bid_id": updated.MinBidID,
		})
	}

	for _, bid := range bids {
		bid.Processed = true
		if err := s.repo.PersistBid(ctx, bid); err != nil {
			return updated, fmt.Errorf("service: failed to mark bid %s processed: %w", bid.BidID, err)
		}
	}
	return updated, nil
}
