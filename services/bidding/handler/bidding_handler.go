package handler

//go:generate mockgen -source=bidding_handler.go -destination=mock_handler.go -package=handler

import (
	"context"
	"net/http"

	bidding "job-marketplace/internal/biddingService"
	model "job-marketplace/internal/models"
	"job-marketplace/services/bidding/helpers"
	"job-marketplace/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	AddBuyer(ctx context.Context, name string) (model.Buyer, error)
	AddSeller(ctx context.Context, name string) (model.Seller, error)
	ListBuyers(ctx context.Context) ([]model.Buyer, error)
	ListSellers(ctx context.Context) ([]model.Seller, error)

	CreateProject(ctx context.Context, req bidding.ProjectRequest) (model.Project, error)
	ListProjects(ctx context.Context) ([]model.Project, error)
	Evaluate(ctx context.Context, projectID string) (model.Project, error)
	GetBidsForProject(ctx context.Context, projectID string) ([]model.Bid, error)

	SubmitBid(ctx context.Context, req bidding.BidRequest) (model.Bid, error)
	ListBids(ctx context.Context) ([]model.Bid, error)
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// SubmitBidHandler handles POST /bids
func (h *BiddingHandler) SubmitBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(c.Request.Context(), bidding.BidRequest{
		ProjectID:  req.ProjectID,
		BuyerID:    req.BuyerID,
		Amount:     req.Amount,
		IsProxy:    req.IsProxy,
		ProxyFloor: req.ProxyFloor,
	})
	if err != nil {
		helpers.HandleServiceError(c, "SubmitBidHandler", "submit bid", err, map[string]any{
			"project_id": req.ProjectID,
			"buyer_id":   req.BuyerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid submitted successfully")
	helpers.LogSuccess("SubmitBidHandler", "bid submitted successfully", map[string]any{
		"bid_id":     bid.BidID,
		"project_id": bid.ProjectID,
		"buyer_id":   bid.BuyerID,
		"amount":     bid.Amount,
		"is_proxy":   bid.IsProxy,
	})
}

// ListBidsHandler handles GET /bids
func (h *BiddingHandler) ListBidsHandler(c *gin.Context) {
	bids, err := h.service.ListBids(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListBidsHandler", "list bids", err, nil)
		return
	}

	resp := helpers.NewBidResponses(bids)
	utils.JSONList(c, http.StatusOK, resp, len(resp), "bids retrieved successfully")
	helpers.LogSuccess("ListBidsHandler", "bids retrieved successfully", map[string]any{"count": len(resp)})
}

// CreateProjectHandler handles POST /projects
func (h *BiddingHandler) CreateProjectHandler(c *gin.Context) {
	var req helpers.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProjectHandler", err)
		return
	}
	deadline, err := helpers.ParseDeadline(req.BidDeadline)
	if err != nil {
		helpers.HandleBindError(c, "CreateProjectHandler", err)
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), bidding.ProjectRequest{
		SellerID:    req.SellerID,
		Description: req.Description,
		MaxBudget:   req.MaxBudget,
		BidDeadline: deadline,
	})
	if err != nil {
		helpers.HandleServiceError(c, "CreateProjectHandler", "create project", err, map[string]any{
			"seller_id": req.SellerID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewProjectResponse(project), "project created successfully")
	helpers.LogSuccess("CreateProjectHandler", "project created successfully", map[string]any{
		"project_id":   project.ProjectID,
		"seller_id":    project.SellerID,
		"max_budget":   project.MaxBudget,
		"bid_deadline": project.BidDeadline,
	})
}

// ListProjectsHandler handles GET /projects
func (h *BiddingHandler) ListProjectsHandler(c *gin.Context) {
	projects, err := h.service.ListProjects(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListProjectsHandler", "list projects", err, nil)
		return
	}

	resp := helpers.NewProjectResponses(projects)
	utils.JSONList(c, http.StatusOK, resp, len(resp), "projects retrieved successfully")
	helpers.LogSuccess("ListProjectsHandler", "projects retrieved successfully", map[string]any{"count": len(resp)})
}

// GetProjectHandler handles GET /projects/:project_id.
// Reading a project evaluates it, so the response always reflects every bid so far.
func (h *BiddingHandler) GetProjectHandler(c *gin.Context) {
	projectID, ok := helpers.IDParam(c, "GetProjectHandler", "project_id")
	if !ok {
		return
	}

	project, err := h.service.Evaluate(c.Request.Context(), projectID)
	if err != nil {
		helpers.HandleServiceError(c, "GetProjectHandler", "evaluate project", err, map[string]any{
			"project_id": projectID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProjectResponse(project), "project retrieved successfully")
	helpers.LogSuccess("GetProjectHandler", "project retrieved successfully", map[string]any{
		"project_id": project.ProjectID,
		"status":     project.Status,
	})
}

// GetBidsByProjectHandler handles GET /projects/:project_id/bids
func (h *BiddingHandler) GetBidsByProjectHandler(c *gin.Context) {
	projectID, ok := helpers.IDParam(c, "GetBidsByProjectHandler", "project_id")
	if !ok {
		return
	}

	bids, err := h.service.GetBidsForProject(c.Request.Context(), projectID)
	if err != nil {
		helpers.HandleServiceError(c, "GetBidsByProjectHandler", "retrieve bids", err, map[string]any{
			"project_id": projectID,
		})
		return
	}

	resp := helpers.NewBidResponses(bids)
	utils.JSONList(c, http.StatusOK, resp, len(resp), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByProjectHandler", "bids retrieved successfully", map[string]any{
		"project_id": projectID,
		"count":      len(resp),
	})
}
