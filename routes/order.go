package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/kutu95/kamelie-greenhouse-sub001/controllers/order"
	"github.com/kutu95/kamelie-greenhouse-sub001/middleware"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Place a new order from the session's cart
		orders.POST("/", middleware.ValidateSession, orderControllers.PlaceOrderHandler(db))

		// Order confirmation lookup by reference
		orders.GET("/:orderRef", orderControllers.GetOrderHandler(db))

		// Admin: full order list, status updates, live feed
		orders.GET("/", middleware.ValidateAPIKey, orderControllers.GetAllOrdersHandler(db))
		orders.PUT("/:orderRef/status", middleware.ValidateAPIKey, orderControllers.UpdateOrderStatusHandler(db))
		orders.PUT("/:orderRef/payment-status", middleware.ValidateAPIKey, orderControllers.UpdatePaymentStatusHandler(db))
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
