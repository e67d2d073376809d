package router

import (
	"github.com/labstack/echo/v4"

	"replyrush/internal/adapter/api/handler"
	"replyrush/internal/adapter/api/middleware"
)

// Setup registers every route group. Merchant dashboard routes sit behind
// the Firebase auth middleware; the inbound message boundary does not (a
// real message channel has no merchant session).
func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, streamHandler *handler.StreamHandler) {
	SetupCatalogRouter(e, authMiddleware)
	SetupBusinessRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupConversationRouter(e, authMiddleware)

	dashboard := e.Group("/v1/dashboard")
	dashboard.Use(authMiddleware.Authenticate)
	dashboard.GET("/summary", handler.GetDashboardHandler().GetSummary)

	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", handler.GetUserHandler().GetMe)

	// Event stream (token auth happens inside the handler)
	e.GET("/v1/stream", streamHandler.Subscribe)
}

func SetupCatalogRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()
	faqHandler := handler.GetFAQHandler()

	products := e.Group("/v1/products")
	products.Use(authMiddleware.Authenticate)
	products.GET("", productHandler.ListProducts)
	products.POST("", productHandler.UpsertProduct)
	products.DELETE("/:id", productHandler.DeleteProduct)

	faqs := e.Group("/v1/faqs")
	faqs.Use(authMiddleware.Authenticate)
	faqs.GET("", faqHandler.ListFAQs)
	faqs.POST("", faqHandler.UpsertFAQ)
	faqs.DELETE("/:id", faqHandler.DeleteFAQ)
}

func SetupBusinessRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	businessHandler := handler.GetBusinessHandler()

	business := e.Group("/v1/business")
	business.Use(authMiddleware.Authenticate)
	business.GET("", businessHandler.GetBusiness)
	business.PUT("", businessHandler.UpdateBusiness)
}

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
}

func SetupConversationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	conversationHandler := handler.GetConversationHandler()

	conversations := e.Group("/v1/conversations")
	conversations.Use(authMiddleware.Authenticate)
	conversations.GET("", conversationHandler.ListConversations)
	conversations.GET("/:id", conversationHandler.GetConversation)
	conversations.POST("/:id/replies", conversationHandler.SendMerchantReply)
	conversations.PUT("/:id/handled-by", conversationHandler.SetHandledBy)

	// Offline stand-in for the message channel; merchant-only.
	simulator := e.Group("/v1/simulator")
	simulator.Use(authMiddleware.Authenticate)
	simulator.POST("/messages", conversationHandler.HandleSimulatorMessage)

	// Inbound customer turns from the (future) message channel webhook.
	e.POST("/v1/inbound/messages", conversationHandler.HandleInboundMessage)
}
