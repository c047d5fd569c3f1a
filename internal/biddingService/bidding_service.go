package bidding

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-marketplace/internal/biddingerrors"
	"job-marketplace/internal/clock"
	"job-marketplace/internal/locking"
	"job-marketplace/internal/models"
	"job-marketplace/internal/repository"
	"job-marketplace/utils"
)

// BiddingService defines the business logic for the job marketplace auction
type BiddingService struct {
	repo   repository.AuctionDB
	locker locking.Locker
	clock  clock.Clock
}

// Option customizes a BiddingService
type Option func(*BiddingService)

// WithClock replaces the wall clock
func WithClock(c clock.Clock) Option {
	return func(s *BiddingService) { s.clock = c }
}

// WithLocker replaces the in-process per-project lock
func WithLocker(l locking.Locker) Option {
	return func(s *BiddingService) { s.locker = l }
}

// NewBiddingService creates a new BiddingService instance
func NewBiddingService(repo repository.AuctionDB, opts ...Option) *BiddingService {
	s := &BiddingService{
		repo:   repo,
		locker: locking.NewKeyedMutex(),
		clock:  clock.System{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ProjectRequest carries the fields a seller supplies when posting a project
type ProjectRequest struct {
	SellerID    string
	Description string
	MaxBudget   int64
	BidDeadline time.Time
}

// BidRequest carries the fields a buyer supplies when bidding
type BidRequest struct {
	ProjectID  string
	BuyerID    string
	Amount     int64
	IsProxy    bool
	ProxyFloor int64
}

// AddBuyer registers a new buyer
func (s *BiddingService) AddBuyer(ctx context.Context, name string) (models.Buyer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Buyer{}, fmt.Errorf("service: %w - empty buyer name", biddingerrors.ErrInvalidArgument)
	}

	buyer := models.Buyer{BuyerID: utils.GenerateID(), Name: name}
	if err := s.repo.AddBuyer(ctx, buyer); err != nil {
		return models.Buyer{}, fmt.Errorf("service: failed to add buyer %q: %w", name, err)
	}
	return buyer, nil
}

// AddSeller registers a new seller
func (s *BiddingService) AddSeller(ctx context.Context, name string) (models.Seller, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Seller{}, fmt.Errorf("service: %w - empty seller name", biddingerrors.ErrInvalidArgument)
	}

	seller := models.Seller{SellerID: utils.GenerateID(), Name: name}
	if err := s.repo.AddSeller(ctx, seller); err != nil {
		return models.Seller{}, fmt.Errorf("service: failed to add seller %q: %w", name, err)
	}
	return seller, nil
}

// CreateProject validates and stores a new project with an open auction
func (s *BiddingService) CreateProject(ctx context.Context, req ProjectRequest) (models.Project, error) {
	if req.SellerID == "" {
		return models.Project{}, fmt.Errorf("service: %w - missing sellerID", biddingerrors.ErrInvalidArgument)
	}
	if _, err := s.repo.FindSeller(ctx, req.SellerID); err != nil {
		return models.Project{}, fmt.Errorf("service: failed to find seller %s: %w", req.SellerID, err)
	}
	if req.MaxBudget <= 0 {
		return models.Project{}, fmt.Errorf("service: %w - non-positive max budget", biddingerrors.ErrInvalidArgument)
	}
	if req.BidDeadline.IsZero() {
		return models.Project{}, fmt.Errorf("service: %w - missing bid deadline", biddingerrors.ErrInvalidArgument)
	}

	project := models.Project{
		ProjectID:   utils.GenerateID(),
		SellerID:    req.SellerID,
		Description: strings.TrimSpace(req.Description),
		MaxBudget:   req.MaxBudget,
		BidDeadline: req.BidDeadline.UTC(),
		CreatedAt:   s.clock.Now(),
		MinBid:      models.NoMinBid,
		MinBidID:    models.NoBidID,
		Status:      models.StatusNone,
	}
	if err := s.repo.CreateProject(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("service: failed to create project for seller %s: %w", req.SellerID, err)
	}
	return project, nil
}

// SubmitBid validates and records a buyer's bid on a project.
// The project's running minimum is left untouched until the next Evaluate.
func (s *BiddingService) SubmitBid(ctx context.Context, req BidRequest) (models.Bid, error) {
	if err := validateBidRequest(req); err != nil {
		return models.Bid{}, err
	}

	unlock, err := s.locker.Lock(ctx, req.ProjectID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to lock project %s: %w", req.ProjectID, err)
	}
	defer unlock()

	// read under the lock so a concurrent close is always observed
	now := s.clock.Now()

	project, err := s.repo.FindProject(ctx, req.ProjectID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to find project %s: %w", req.ProjectID, err)
	}
	if _, err := s.repo.FindBuyer(ctx, req.BuyerID); err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to find buyer %s: %w", req.BuyerID, err)
	}
	if project.DeadlinePassed(now) {
		return models.Bid{}, fmt.Errorf("service: %w - project %s closed at %s",
			biddingerrors.ErrDeadlinePassed, project.ProjectID, project.BidDeadline.Format(time.RFC3339))
	}

	bid := models.Bid{
		BidID:       utils.GenerateID(),
		ProjectID:   req.ProjectID,
		BuyerID:     req.BuyerID,
		Amount:      req.Amount,
		SubmittedAt: now,
		IsProxy:     req.IsProxy,
	}
	if req.IsProxy {
		bid.ProxyFloor = req.ProxyFloor
	}

	stored, err := s.repo.AppendBid(ctx, bid)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid for project %s by buyer %s: %w", req.ProjectID, req.BuyerID, err)
	}
	return stored, nil
}

// validateBidRequest checks the request shape before any lookup
func validateBidRequest(req BidRequest) error {
	if req.ProjectID == "" || req.BuyerID == "" {
		return fmt.Errorf("service: %w - missing projectID or buyerID", biddingerrors.ErrInvalidArgument)
	}
	if req.Amount <= 0 {
		return fmt.Errorf("service: %w - non-positive bid amount", biddingerrors.ErrInvalidArgument)
	}
	if !req.IsProxy {
		return nil
	}
	if req.ProxyFloor <= 0 {
		return fmt.Errorf("service: %w - non-positive proxy floor", biddingerrors.ErrInvalidArgument)
	}
	if req.Amount < req.ProxyFloor {
		return fmt.Errorf("service: %w - amount %d below proxy floor %d", biddingerrors.ErrInvalidArgument, req.Amount, req.ProxyFloor)
	}
	return nil
}

// Evaluate folds new bids into the project's running minimum and, once the
// deadline has passed, resolves proxy bids and settles the final status.
func (s *BiddingService) Evaluate(ctx context.Context, projectID string) (models.Project, error) {
	if projectID == "" {
		return models.Project{}, fmt.Errorf("service: %w - empty project ID", biddingerrors.ErrInvalidArgument)
	}

	unlock, err := s.locker.Lock(ctx, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to lock project %s: %w", projectID, err)
	}
	defer unlock()

	now := s.clock.Now()

	project, err := s.repo.FindProject(ctx, projectID)
	if err != nil {
		return models.Project{}, fmt.Errorf("service: failed to find project %s: %w", projectID, err)
	}

	// closed auctions are never rescanned
	if project.DeadlinePassed(now) && project.Status != models.StatusNone {
		return project, nil
	}

	if project, err = s.applyNewBids(ctx, project); err != nil {
		return models.Project{}, err
	}
	if !project.DeadlinePassed(now) {
		return project, nil
	}

	if project, err = s.resolveProxyBids(ctx, project, now); err != nil {
		return models.Project{}, err
	}
	if project, err = s.finalizeStatus(ctx, project, now); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// GetBidsForProject returns all bids submitted on a project
func (s *BiddingService) GetBidsForProject(ctx context.Context, projectID string) ([]models.Bid, error) {
	if projectID == "" {
		return nil, fmt.Errorf("service: %w - empty project ID", biddingerrors.ErrInvalidArgument)
	}
	if _, err := s.repo.FindProject(ctx, projectID); err != nil {
		return nil, fmt.Errorf("service: failed to find project %s: %w", projectID, err)
	}

	bids, err := s.repo.BidsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for project %s: %w", projectID, err)
	}
	return bids, nil
}

// ListProjects returns all projects as stored, without evaluating them
func (s *BiddingService) ListProjects(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list projects: %w", err)
	}
	return projects, nil
}

// ListBuyers returns all registered buyers
func (s *BiddingService) ListBuyers(ctx context.Context) ([]models.Buyer, error) {
	buyers, err := s.repo.ListBuyers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list buyers: %w", err)
	}
	return buyers, nil
}

// ListSellers returns all registered sellers
func (s *BiddingService) ListSellers(ctx context.Context) ([]models.Seller, error) {
	sellers, err := s.repo.ListSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list sellers: %w", err)
	}
	return sellers, nil
}

// ListBids returns every bid across all projects
func (s *BiddingService) ListBids(ctx context.Context) ([]models.Bid, error) {
	bids, err := s.repo.ListBids(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bids: %w", err)
	}
	return bids, nil
}
