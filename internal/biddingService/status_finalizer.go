package bidding

import (
	"context"
	"fmt"
	"time"

	"job-marketplace/internal/models"
	"job-marketplace/utils"
)

// finalStatus maps a closed project's minimum to its outcome.
// A minimum exactly at the budget is within budget.
func finalStatus(project models.Project) models.BidStatus {
	switch {
	case !project.HasMinBid():
		return models.StatusMinimumNotFound
	case project.MinBid > project.MaxBudget:
		return models.StatusMinimumTooHigh
	default:
		return models.StatusMinimumFound
	}
}

// finalizeStatus settles the outcome of a closed project exactly once
func (s *BiddingService) finalizeStatus(ctx context.Context, project models.Project, now time.Time) (models.Project, error) {
	if project.Status != models.StatusNone || !project.DeadlinePassed(now) {
		return project, nil
	}

	updated := project
	updated.Status = finalStatus(project)
	if err := s.repo.PersistProject(ctx, updated); err != nil {
		return project, fmt.Errorf("service: failed to persist status for project %s: %w", project.ProjectID, err)
	}

	utils.Info("auction closed", map[string]any{
		"project_id": updated.ProjectID,
		"status":     updated.Status,
		"min_bid":    updated.MinBid,
		"max_budget": updated.MaxBudget,
	})
	return updated, nil
}
