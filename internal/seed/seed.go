package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	bidding "job-marketplace/internal/biddingService"
	"job-marketplace/internal/biddingerrors"
	"job-marketplace/internal/models"
	"job-marketplace/utils"
)

// Engine is the subset of the bidding service a seed file is replayed through
type Engine interface {
	AddBuyer(ctx context.Context, name string) (models.Buyer, error)
	AddSeller(ctx context.Context, name string) (models.Seller, error)
	CreateProject(ctx context.Context, req bidding.ProjectRequest) (models.Project, error)
	SubmitBid(ctx context.Context, req bidding.BidRequest) (models.Bid, error)
}

// File is the YAML layout of a seed file. Entries refer to each other by key;
// ids are assigned by the engine when the file is applied.
type File struct {
	Buyers   []Participant `yaml:"buyers"`
	Sellers  []Participant `yaml:"sellers"`
	Projects []Project     `yaml:"projects"`
	Bids     []Bid         `yaml:"bids"`
}

type Participant struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

// Project.DeadlineIn is relative to the moment the file is applied
type Project struct {
	Key         string        `yaml:"key"`
	Seller      string        `yaml:"seller"`
	Description string        `yaml:"description"`
	MaxBudget   int64         `yaml:"max_budget"`
	DeadlineIn  time.Duration `yaml:"deadline_in"`
}

type Bid struct {
	Project    string `yaml:"project"`
	Buyer      string `yaml:"buyer"`
	Amount     int64  `yaml:"amount"`
	Proxy      bool   `yaml:"proxy"`
	ProxyFloor int64  `yaml:"proxy_floor"`
}

// Result maps seed keys to the ids the engine assigned
type Result struct {
	Buyers   map[string]string
	Sellers  map[string]string
	Projects map[string]string
	Bids     int
}

// Parse decodes a seed file, rejecting unknown fields
func Parse(raw []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse seed file: %w", err)
	}
	return f, nil
}

// ReadFile loads and decodes the seed file at path
func ReadFile(path string) (File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Apply replays f through engine in file order: buyers, sellers, projects, bids.
// It stops at the first failure; entries applied before it stay applied.
func Apply(ctx context.Context, engine Engine, f File, now time.Time) (Result, error) {
	res := Result{
		Buyers:   make(map[string]string, len(f.Buyers)),
		Sellers:  make(map[string]string, len(f.Sellers)),
		Projects: make(map[string]string, len(f.Projects)),
	}

	for _, p := range f.Buyers {
		if err := checkKey("buyer", p.Key, res.Buyers); err != nil {
			return res, err
		}
		buyer, err := engine.AddBuyer(ctx, p.Name)
		if err != nil {
			return res, fmt.Errorf("seed buyer %s: %w", p.Key, err)
		}
		res.Buyers[p.Key] = buyer.BuyerID
	}

	for _, p := range f.Sellers {
		if err := checkKey("seller", p.Key, res.Sellers); err != nil {
			return res, err
		}
		seller, err := engine.AddSeller(ctx, p.Name)
		if err != nil {
			return res, fmt.Errorf("seed seller %s: %w", p.Key, err)
		}
		res.Sellers[p.Key] = seller.SellerID
	}

	for _, p := range f.Projects {
		if err := checkKey("project", p.Key, res.Projects); err != nil {
			return res, err
		}
		sellerID, ok := res.Sellers[p.Seller]
		if !ok {
			return res, fmt.Errorf("seed project %s: %w - unknown seller key %q", p.Key, biddingerrors.ErrSellerNotFound, p.Seller)
		}
		project, err := engine.CreateProject(ctx, bidding.ProjectRequest{
			SellerID:    sellerID,
			Description: p.Description,
			MaxBudget:   p.MaxBudget,
			BidDeadline: now.Add(p.DeadlineIn),
		})
		if err != nil {
			return res, fmt.Errorf("seed project %s: %w", p.Key, err)
		}
		res.Projects[p.Key] = project.ProjectID
	}

	for i, b := range f.Bids {
		projectID, ok := res.Projects[b.Project]
		if !ok {
			return res, fmt.Errorf("seed bid %d: %w - unknown project key %q", i, biddingerrors.ErrProjectNotFound, b.Project)
		}
		buyerID, ok := res.Buyers[b.Buyer]
		if !ok {
			return res, fmt.Errorf("seed bid %d: %w - unknown buyer key %q", i, biddingerrors.ErrBuyerNotFound, b.Buyer)
		}
		if _, err := engine.SubmitBid(ctx, bidding.BidRequest{
			ProjectID:  projectID,
			BuyerID:    buyerID,
			Amount:     b.Amount,
			IsProxy:    b.Proxy,
			ProxyFloor: b.ProxyFloor,
		}); err != nil {
			return res, fmt.Errorf("seed bid %d: %w", i, err)
		}
		res.Bids++
	}

	utils.Info("seed data loaded", map[string]any{
		"buyers":   len(res.Buyers),
		"sellers":  len(res.Sellers),
		"projects": len(res.Projects),
		"bids":     res.Bids,
	})
	return res, nil
}

func checkKey(kind, key string, seen map[string]string) error {
	if key == "" {
		return fmt.Errorf("seed %s: %w - empty key", kind, biddingerrors.ErrInvalidArgument)
	}
	if _, dup := seen[key]; dup {
		return fmt.Errorf("seed %s %s: %w - duplicate key", kind, key, biddingerrors.ErrInvalidArgument)
	}
	return nil
}
