package server

import (
	handler "job-marketplace/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.BiddingServiceInterface) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.NoRoute(notFound)

	biddingHandler := handler.NewBiddingHandler(service)

	buyers := router.Group("/buyers")
	{
		buyers.POST("", biddingHandler.CreateBuyerHandler)
		buyers.GET("", biddingHandler.ListBuyersHandler)
	}

	sellers := router.Group("/sellers")
	{
		sellers.POST("", biddingHandler.CreateSellerHandler)
		sellers.GET("", biddingHandler.ListSellersHandler)
	}

	projects := router.Group("/projects")
	{
		projects.POST("", biddingHandler.CreateProjectHandler)
		projects.GET("", biddingHandler.ListProjectsHandler)
		projects.GET("/:project_id", biddingHandler.GetProjectHandler)
		projects.GET("/:project_id/bids", biddingHandler.GetBidsByProjectHandler)
	}

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.SubmitBidHandler)
		bids.GET("", biddingHandler.ListBidsHandler)
	}

	return router
}
