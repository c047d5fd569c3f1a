package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"job-marketplace/internal/biddingerrors"
	model "job-marketplace/internal/models"
)

// AuctionDB defines the storage interface for the job marketplace
type AuctionDB interface {
	AddBuyer(ctx context.Context, buyer model.Buyer) error
	FindBuyer(ctx context.Context, buyerID string) (model.Buyer, error)
	ListBuyers(ctx context.Context) ([]model.Buyer, error)

	AddSeller(ctx context.Context, seller model.Seller) error
	FindSeller(ctx context.Context, sellerID string) (model.Seller, error)
	ListSellers(ctx context.Context) ([]model.Seller, error)

	CreateProject(ctx context.Context, project model.Project) error
	FindProject(ctx context.Context, projectID string) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	PersistProject(ctx context.Context, project model.Project) error

	// AppendBid stores a new bid and returns it with its submission sequence set
	AppendBid(ctx context.Context, bid model.Bid) (model.Bid, error)
	PersistBid(ctx context.Context, bid model.Bid) error
	ListBids(ctx context.Context) ([]model.Bid, error)
	BidsByProject(ctx context.Context, projectID string) ([]model.Bid, error)
	// UnprocessedBids returns the project's bids not yet folded into its minimum, in submission order
	UnprocessedBids(ctx context.Context, projectID string) ([]model.Bid, error)
	// ProxyBidsAscendingByFloor returns proxy bids by floor, ties in submission order
	ProxyBidsAscendingByFloor(ctx context.Context, projectID string) ([]model.Bid, error)
	// RecordWinningBid stores the bid's winning amount and the project's new minimum together
	RecordWinningBid(ctx context.Context, project model.Project, bid model.Bid) error
}

type bidRef struct {
	projectID string
	index     int
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu       sync.RWMutex
	buyers   map[string]model.Buyer
	sellers  map[string]model.Seller
	projects map[string]model.Project
	bids     map[string][]model.Bid // key: projectID -> value: bids in submission order
	bidIndex map[string]bidRef      // key: bidID -> value: position in bids

	buyerOrder   []string
	sellerOrder  []string
	projectOrder []string
	seq          int64
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		buyers:   make(map[string]model.Buyer),
		sellers:  make(map[string]model.Seller),
		projects: make(map[string]model.Project),
		bids:     make(map[string][]model.Bid),
		bidIndex: make(map[string]bidRef),
	}
}

// AddBuyer registers a buyer
func (r *MemoryRepo) AddBuyer(ctx context.Context, buyer model.Buyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.buyers[buyer.BuyerID]; ok {
		return fmt.Errorf("add buyer %s: %w - duplicate id", buyer.BuyerID, biddingerrors.ErrInvalidArgument)
	}
	r.buyers[buyer.BuyerID] = buyer
	r.buyerOrder = append(r.buyerOrder, buyer.BuyerID)
	return nil
}

// FindBuyer returns a buyer by id
func (r *MemoryRepo) FindBuyer(ctx context.Context, buyerID string) (model.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buyer, ok := r.buyers[buyerID]
	if !ok {
		return model.Buyer{}, fmt.Errorf("find buyer %s: %w", buyerID, biddingerrors.ErrBuyerNotFound)
	}
	return buyer, nil
}

// ListBuyers returns all buyers in registration order
func (r *MemoryRepo) ListBuyers(ctx context.Context) ([]model.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	buyers := make([]model.Buyer, 0, len(r.buyerOrder))
	for _, id := range r.buyerOrder {
		buyers = append(buyers, r.buyers[id])
	}
	return buyers, nil
}

// AddSeller registers a seller
func (r *MemoryRepo) AddSeller(ctx context.Context, seller model.Seller) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sellers[seller.SellerID]; ok {
		return fmt.Errorf("add seller %s: %w - duplicate id", seller.SellerID, biddingerrors.ErrInvalidArgument)
	}
	r.sellers[seller.SellerID] = seller
	r.sellerOrder = append(r.sellerOrder, seller.SellerID)
	return nil
}

// FindSeller returns a seller by id
func (r *MemoryRepo) FindSeller(ctx context.Context, sellerID string) (model.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seller, ok := r.sellers[sellerID]
	if !ok {
		return model.Seller{}, fmt.Errorf("find seller %s: %w", sellerID, biddingerrors.ErrSellerNotFound)
	}
	return seller, nil
}

// ListSellers returns all sellers in registration order
func (r *MemoryRepo) ListSellers(ctx context.Context) ([]model.Seller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sellers := make([]model.Seller, 0, len(r.sellerOrder))
	for _, id := range r.sellerOrder {
		sellers = append(sellers, r.sellers[id])
	}
	return sellers, nil
}

// CreateProject stores a new project
func (r *MemoryRepo) CreateProject(ctx context.Context, project model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ProjectID]; ok {
		return fmt.Errorf("create project %s: %w - duplicate id", project.ProjectID, biddingerrors.ErrInvalidArgument)
	}
	r.projects[project.ProjectID] = project
	r.projectOrder = append(r.projectOrder, project.ProjectID)
	return nil
}

// FindProject returns a project by id
func (r *MemoryRepo) FindProject(ctx context.Context, projectID string) (model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.projects[projectID]
	if !ok {
		return model.Project{}, fmt.Errorf("find project %s: %w", projectID, biddingerrors.ErrProjectNotFound)
	}
	return project, nil
}

// ListProjects returns all projects in creation order
func (r *MemoryRepo) ListProjects(ctx context.Context) ([]model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]model.Project, 0, len(r.projectOrder))
	for _, id := range r.projectOrder {
		projects = append(projects, r.projects[id])
	}
	return projects, nil
}

// PersistProject overwrites an existing project
func (r *MemoryRepo) PersistProject(ctx context.Context, project model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ProjectID]; !ok {
		return fmt.Errorf("persist project %s: %w", project.ProjectID, biddingerrors.ErrProjectNotFound)
	}
	r.projects[project.ProjectID] = project
	return nil
}

// AppendBid records a new bid on a project
func (r *MemoryRepo) AppendBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[bid.ProjectID]; !ok {
		return model.Bid{}, fmt.Errorf("append bid for project %s: %w", bid.ProjectID, biddingerrors.ErrProjectNotFound)
	}
	if _, ok := r.bidIndex[bid.BidID]; ok {
		return model.Bid{}, fmt.Errorf("append bid %s: %w - duplicate id", bid.BidID, biddingerrors.ErrInvalidArgument)
	}

	r.seq++
	bid.Seq = r.seq
	r.bids[bid.ProjectID] = append(r.bids[bid.ProjectID], bid)
	r.bidIndex[bid.BidID] = bidRef{projectID: bid.ProjectID, index: len(r.bids[bid.ProjectID]) - 1}
	return bid, nil
}

// PersistBid overwrites an existing bid
func (r *MemoryRepo) PersistBid(ctx context.Context, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persistBidLocked(bid)
}

func (r *MemoryRepo) persistBidLocked(bid model.Bid) error {
	ref, ok := r.bidIndex[bid.BidID]
	if !ok || ref.projectID != bid.ProjectID {
		return fmt.Errorf("persist bid %s: %w", bid.BidID, biddingerrors.ErrBidNotFound)
	}
	r.bids[ref.projectID][ref.index] = bid
	return nil
}

// ListBids returns every bid in submission order
func (r *MemoryRepo) ListBids(ctx context.Context) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids := make([]model.Bid, 0, len(r.bidIndex))
	for _, projectBids := range r.bids {
		bids = append(bids, projectBids...)
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].Seq < bids[j].Seq })
	return bids, nil
}

// BidsByProject returns all bids for a project in submission order
func (r *MemoryRepo) BidsByProject(ctx context.Context, projectID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]model.Bid{}, r.bids[projectID]...), nil
}

// UnprocessedBids returns the bids of a project that have not been evaluated yet
func (r *MemoryRepo) UnprocessedBids(ctx context.Context, projectID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	for _, b := range r.bids[projectID] {
		if !b.Processed {
			bids = append(bids, b)
		}
	}
	return bids, nil
}

// ProxyBidsAscendingByFloor returns the proxy bids of a project ordered by floor
func (r *MemoryRepo) ProxyBidsAscendingByFloor(ctx context.Context, projectID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var bids []model.Bid
	for _, b := range r.bids[projectID] {
		if b.IsProxy {
			bids = append(bids, b)
		}
	}
	sort.SliceStable(bids, func(i, j int) bool { return bids[i].ProxyFloor < bids[j].ProxyFloor })
	return bids, nil
}

// RecordWinningBid updates a proxy winner and its project under one lock
func (r *MemoryRepo) RecordWinningBid(ctx context.Context, project model.Project, bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ProjectID]; !ok {
		return fmt.Errorf("record winning bid for project %s: %w", project.ProjectID, biddingerrors.ErrProjectNotFound)
	}
	if err := r.persistBidLocked(bid); err != nil {
		return fmt.Errorf("record winning bid: %w", err)
	}
	r.projects[project.ProjectID] = project
	return nil
}
