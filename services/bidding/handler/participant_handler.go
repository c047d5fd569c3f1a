package handler

import (
	"net/http"

	"job-marketplace/services/bidding/helpers"
	"job-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// CreateBuyerHandler handles POST /buyers
func (h *BiddingHandler) CreateBuyerHandler(c *gin.Context) {
	var req helpers.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateBuyerHandler", err)
		return
	}

	buyer, err := h.service.AddBuyer(c.Request.Context(), req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "CreateBuyerHandler", "add buyer", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, buyer, "buyer created successfully")
	helpers.LogSuccess("CreateBuyerHandler", "buyer created successfully", map[string]any{"buyer_id": buyer.BuyerID})
}

// ListBuyersHandler handles GET /buyers
func (h *BiddingHandler) ListBuyersHandler(c *gin.Context) {
	buyers, err := h.service.ListBuyers(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListBuyersHandler", "list buyers", err, nil)
		return
	}

	utils.JSONList(c, http.StatusOK, buyers, len(buyers), "buyers retrieved successfully")
	helpers.LogSuccess("ListBuyersHandler", "buyers retrieved successfully", map[string]any{"count": len(buyers)})
}

// CreateSellerHandler handles POST /sellers
func (h *BiddingHandler) CreateSellerHandler(c *gin.Context) {
	var req helpers.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateSellerHandler", err)
		return
	}

	seller, err := h.service.AddSeller(c.Request.Context(), req.Name)
	if err != nil {
		helpers.HandleServiceError(c, "CreateSellerHandler", "add seller", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, seller, "seller created successfully")
	helpers.LogSuccess("CreateSellerHandler", "seller created successfully", map[string]any{"seller_id": seller.SellerID})
}

// ListSellersHandler handles GET /sellers
func (h *BiddingHandler) ListSellersHandler(c *gin.Context) {
	sellers, err := h.service.ListSellers(c.Request.Context())
	if err != nil {
		helpers.HandleServiceError(c, "ListSellersHandler", "list sellers", err, nil)
		return
	}

	utils.JSONList(c, http.StatusOK, sellers, len(sellers), "sellers retrieved successfully")
	helpers.LogSuccess("ListSellersHandler", "sellers retrieved successfully", map[string]any{"count": len(sellers)})
}
