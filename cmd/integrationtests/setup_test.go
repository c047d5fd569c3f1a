package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	bidding "job-marketplace/internal/biddingService"
	"job-marketplace/internal/clock"
	"job-marketplace/internal/repository"
	"job-marketplace/internal/server"
	"job-marketplace/services/bidding/helpers"
	"job-marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var startTime = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func init() {
	utils.SetOutput(io.Discard)
}

// testServer is a router over a real service whose clock the test controls
type testServer struct {
	router *gin.Engine
	clock  *clock.Manual
}

// SetupTestRouter initializes the router with an in-memory repository for integration testing.
func SetupTestRouter(t *testing.T) *testServer {
	t.Helper()
	return setupWithRepo(repository.NewMemoryRepo())
}

// SetupSQLiteTestRouter initializes the router over a SQLite file in a temp dir.
func SetupSQLiteTestRouter(t *testing.T) *testServer {
	t.Helper()
	repo, err := repository.OpenSQLiteRepo(context.Background(), filepath.Join(t.TempDir(), "marketplace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return setupWithRepo(repo)
}

func setupWithRepo(repo repository.AuctionDB) *testServer {
	gin.SetMode(gin.TestMode)
	clk := clock.NewManual(startTime)
	service := bidding.NewBiddingService(repo, bidding.WithClock(clk))
	return &testServer{router: server.SetupRouter(service), clock: clk}
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == http.StatusCreated {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}

func (s *testServer) createBuyer(t *testing.T, name string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, s.router, http.MethodPost, "/buyers", helpers.CreateParticipantRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["buyer_id"].(string)
}

func (s *testServer) createSeller(t *testing.T, name string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, s.router, http.MethodPost, "/sellers", helpers.CreateParticipantRequest{Name: name})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["seller_id"].(string)
}

func (s *testServer) createProject(t *testing.T, sellerID string, budget int64, deadline time.Time) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, s.router, http.MethodPost, "/projects", helpers.CreateProjectRequest{
		SellerID:    sellerID,
		Description: "integration project",
		MaxBudget:   budget,
		BidDeadline: deadline.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return resp["project_id"].(string)
}

func (s *testServer) placeBid(t *testing.T, req helpers.PlaceBidRequest) *httptest.ResponseRecorder {
	t.Helper()
	_, w := ExecuteRequestAndParse(t, s.router, http.MethodPost, "/bids", req)
	return w
}

func (s *testServer) getProject(t *testing.T, projectID string) map[string]any {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, s.router, http.MethodGet, "/projects/"+projectID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return resp["data"].(map[string]any)
}
