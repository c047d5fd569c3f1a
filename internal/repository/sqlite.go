package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"job-marketplace/internal/biddingerrors"
	model "job-marketplace/internal/models"
	"job-marketplace/internal/repository/migrations"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const bidColumns = `seq, id, project_id, buyer_id, amount, submitted_at,
       processed, is_proxy, proxy_floor, winning_amount`

const projectColumns = `id, seller_id, description, max_budget, bid_deadline, created_at,
       min_bid, min_bid_id, status`

// SQLiteRepo persists marketplace state in a SQLite file
type SQLiteRepo struct {
	sqlDB *sql.DB
}

func toNanos(value time.Time) int64 {
	return value.UTC().UnixNano()
}

func fromNanos(value int64) time.Time {
	return time.Unix(0, value).UTC()
}

// OpenSQLiteRepo opens the database at path and applies embedded migrations
func OpenSQLiteRepo(ctx context.Context, path string) (*SQLiteRepo, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("open sqlite repo: %w - storage path is required", biddingerrors.ErrInvalidArgument)
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// a single connection serializes writers inside this process
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &SQLiteRepo{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (r *SQLiteRepo) Close() error {
	if r == nil || r.sqlDB == nil {
		return nil
	}
	return r.sqlDB.Close()
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// AddBuyer registers a buyer
func (r *SQLiteRepo) AddBuyer(ctx context.Context, buyer model.Buyer) error {
	_, err := r.sqlDB.ExecContext(ctx, `INSERT INTO buyers (id, name) VALUES (?, ?)`, buyer.BuyerID, buyer.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("add buyer %s: %w - duplicate id", buyer.BuyerID, biddingerrors.ErrInvalidArgument)
		}
		return fmt.Errorf("add buyer %s: %w", buyer.BuyerID, err)
	}
	return nil
}

// FindBuyer returns a buyer by id
func (r *SQLiteRepo) FindBuyer(ctx context.Context, buyerID string) (model.Buyer, error) {
	var buyer model.Buyer
	err := r.sqlDB.QueryRowContext(ctx, `SELECT id, name FROM buyers WHERE id = ?`, buyerID).
		Scan(&buyer.BuyerID, &buyer.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Buyer{}, fmt.Errorf("find buyer %s: %w", buyerID, biddingerrors.ErrBuyerNotFound)
		}
		return model.Buyer{}, fmt.Errorf("find buyer %s: %w", buyerID, err)
	}
	return buyer, nil
}

// ListBuyers returns all buyers in registration order
func (r *SQLiteRepo) ListBuyers(ctx context.Context) ([]model.Buyer, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `SELECT id, name FROM buyers ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	defer rows.Close()

	buyers := []model.Buyer{}
	for rows.Next() {
		var buyer model.Buyer
		if err := rows.Scan(&buyer.BuyerID, &buyer.Name); err != nil {
			return nil, fmt.Errorf("scan buyer: %w", err)
		}
		buyers = append(buyers, buyer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	return buyers, nil
}

// AddSeller registers a seller
func (r *SQLiteRepo) AddSeller(ctx context.Context, seller model.Seller) error {
	_, err := r.sqlDB.ExecContext(ctx, `INSERT INTO sellers (id, name) VALUES (?, ?)`, seller.SellerID, seller.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("add seller %s: %w - duplicate id", seller.SellerID, biddingerrors.ErrInvalidArgument)
		}
		return fmt.Errorf("add seller %s: %w", seller.SellerID, err)
	}
	return nil
}

// FindSeller returns a seller by id
func (r *SQLiteRepo) FindSeller(ctx context.Context, sellerID string) (model.Seller, error) {
	var seller model.Seller
	err := r.sqlDB.QueryRowContext(ctx, `SELECT id, name FROM sellers WHERE id = ?`, sellerID).
		Scan(&seller.SellerID, &seller.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Seller{}, fmt.Errorf("find seller %s: %w", sellerID, biddingerrors.ErrSellerNotFound)
		}
		return model.Seller{}, fmt.Errorf("find seller %s: %w", sellerID, err)
	}
	return seller, nil
}

// ListSellers returns all sellers in registration order
func (r *SQLiteRepo) ListSellers(ctx context.Context) ([]model.Seller, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `SELECT id, name FROM sellers ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	sellers := []model.Seller{}
	for rows.Next() {
		var seller model.Seller
		if err := rows.Scan(&seller.SellerID, &seller.Name); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		sellers = append(sellers, seller)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	return sellers, nil
}

// CreateProject stores a new project
func (r *SQLiteRepo) CreateProject(ctx context.Context, project model.Project) error {
	_, err := r.sqlDB.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ProjectID,
		project.SellerID,
		project.Description,
		project.MaxBudget,
		toNanos(project.BidDeadline),
		toNanos(project.CreatedAt),
		project.MinBid,
		project.MinBidID,
		string(project.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create project %s: %w - duplicate id", project.ProjectID, biddingerrors.ErrInvalidArgument)
		}
		return fmt.Errorf("create project %s: %w", project.ProjectID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (model.Project, error) {
	var (
		project   model.Project
		deadline  int64
		createdAt int64
		status    string
	)
	err := row.Scan(
		&project.ProjectID,
		&project.SellerID,
		&project.Description,
		&project.MaxBudget,
		&deadline,
		&createdAt,
		&project.MinBid,
		&project.MinBidID,
		&status,
	)
	if err != nil {
		return model.Project{}, err
	}
	project.BidDeadline = fromNanos(deadline)
	project.CreatedAt = fromNanos(createdAt)
	project.Status = model.BidStatus(status)
	return project, nil
}

// FindProject returns a project by id
func (r *SQLiteRepo) FindProject(ctx context.Context, projectID string) (model.Project, error) {
	row := r.sqlDB.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, projectID)
	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Project{}, fmt.Errorf("find project %s: %w", projectID, biddingerrors.ErrProjectNotFound)
		}
		return model.Project{}, fmt.Errorf("find project %s: %w", projectID, err)
	}
	return project, nil
}

// ListProjects returns all projects in creation order
func (r *SQLiteRepo) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := r.sqlDB.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func updateProject(ctx context.Context, db execer, project model.Project) error {
	res, err := db.ExecContext(ctx,
		`UPDATE projects
		    SET description = ?, max_budget = ?, bid_deadline = ?,
		        min_bid = ?, min_bid_id = ?, status = ?
		  WHERE id = ?`,
		project.Description,
		project.MaxBudget,
		toNanos(project.BidDeadline),
		project.MinBid,
		project.MinBidID,
		string(project.Status),
		project.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("persist project %s: %w", project.ProjectID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("persist project %s: %w", project.ProjectID, biddingerrors.ErrProjectNotFound)
	}
	return nil
}

func updateBid(ctx context.Context, db execer, bid model.Bid) error {
	res, err := db.ExecContext(ctx,
		`UPDATE bids
		    SET processed = ?, winning_amount = ?
		  WHERE id = ? AND project_id = ?`,
		boolToInt(bid.Processed),
		bid.WinningAmount,
		bid.BidID,
		bid.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("persist bid %s: %w", bid.BidID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("persist bid %s: %w", bid.BidID, biddingerrors.ErrBidNotFound)
	}
	return nil
}

// PersistProject overwrites the mutable fields of an existing project
func (r *SQLiteRepo) PersistProject(ctx context.Context, project model.Project) error {
	return updateProject(ctx, r.sqlDB, project)
}

// AppendBid records a new bid on a project
func (r *SQLiteRepo) AppendBid(ctx context.Context, bid model.Bid) (model.Bid, error) {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return model.Bid{}, fmt.Errorf("begin append bid: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM projects WHERE id = ?`, bid.ProjectID).Scan(&exists); err != nil {
		return model.Bid{}, fmt.Errorf("append bid for project %s: %w", bid.ProjectID, err)
	}
	if exists == 0 {
		return model.Bid{}, fmt.Errorf("append bid for project %s: %w", bid.ProjectID, biddingerrors.ErrProjectNotFound)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bids (id, project_id, buyer_id, amount, submitted_at,
		                   processed, is_proxy, proxy_floor, winning_amount)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bid.BidID,
		bid.ProjectID,
		bid.BuyerID,
		bid.Amount,
		toNanos(bid.SubmittedAt),
		boolToInt(bid.Processed),
		boolToInt(bid.IsProxy),
		bid.ProxyFloor,
		bid.WinningAmount,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Bid{}, fmt.Errorf("append bid %s: %w - duplicate id", bid.BidID, biddingerrors.ErrInvalidArgument)
		}
		return model.Bid{}, fmt.Errorf("append bid %s: %w", bid.BidID, err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return model.Bid{}, fmt.Errorf("append bid %s: read sequence: %w", bid.BidID, err)
	}
	if err := tx.Commit(); err != nil {
		return model.Bid{}, fmt.Errorf("commit append bid %s: %w", bid.BidID, err)
	}

	bid.Seq = seq
	return bid, nil
}

// PersistBid overwrites the mutable fields of an existing bid
func (r *SQLiteRepo) PersistBid(ctx context.Context, bid model.Bid) error {
	return updateBid(ctx, r.sqlDB, bid)
}

func (r *SQLiteRepo) queryBids(ctx context.Context, query string, args ...any) ([]model.Bid, error) {
	rows, err := r.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := []model.Bid{}
	for rows.Next() {
		var (
			bid         model.Bid
			submittedAt int64
			processed   int
			isProxy     int
		)
		if err := rows.Scan(
			&bid.Seq,
			&bid.BidID,
			&bid.ProjectID,
			&bid.BuyerID,
			&bid.Amount,
			&submittedAt,
			&processed,
			&isProxy,
			&bid.ProxyFloor,
			&bid.WinningAmount,
		); err != nil {
			return nil, fmt.Errorf("scan bid: %w", err)
		}
		bid.SubmittedAt = fromNanos(submittedAt)
		bid.Processed = processed != 0
		bid.IsProxy = isProxy != 0
		bids = append(bids, bid)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bids, nil
}

// ListBids returns every bid in submission order
func (r *SQLiteRepo) ListBids(ctx context.Context) ([]model.Bid, error) {
	bids, err := r.queryBids(ctx, `SELECT `+bidColumns+` FROM bids ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list bids: %w", err)
	}
	return bids, nil
}

// BidsByProject returns all bids for a project in submission order
func (r *SQLiteRepo) BidsByProject(ctx context.Context, projectID string) ([]model.Bid, error) {
	bids, err := r.queryBids(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE project_id = ? ORDER BY seq ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("get bids for project %s: %w", projectID, err)
	}
	return bids, nil
}

// UnprocessedBids returns the bids of a project that have not been evaluated yet
func (r *SQLiteRepo) UnprocessedBids(ctx context.Context, projectID string) ([]model.Bid, error) {
	bids, err := r.queryBids(ctx,
		`SELECT `+bidColumns+` FROM bids WHERE project_id = ? AND processed = 0 ORDER BY seq ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("get unprocessed bids for project %s: %w", projectID, err)
	}
	return bids, nil
}

// ProxyBidsAscendingByFloor returns the proxy bids of a project ordered by floor
func (r *SQLiteRepo) ProxyBidsAscendingByFloor(ctx context.Context, projectID string) ([]model.Bid, error) {
	bids, err := r.queryBids(ctx,
		`SELECT `+bidColumns+` FROM bids
		  WHERE project_id = ? AND is_proxy = 1
		  ORDER BY proxy_floor ASC, seq ASC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("get proxy bids for project %s: %w", projectID, err)
	}
	return bids, nil
}

// RecordWinningBid updates a proxy winner and its project in one transaction
func (r *SQLiteRepo) RecordWinningBid(ctx context.Context, project model.Project, bid model.Bid) error {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record winning bid: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := updateBid(ctx, tx, bid); err != nil {
		return fmt.Errorf("record winning bid: %w", err)
	}
	if err := updateProject(ctx, tx, project); err != nil {
		return fmt.Errorf("record winning bid: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record winning bid: %w", err)
	}
	return nil
}

var _ AuctionDB = (*SQLiteRepo)(nil)
var _ AuctionDB = (*MemoryRepo)(nil)
