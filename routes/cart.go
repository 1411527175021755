package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/kutu95/kamelie-greenhouse-sub001/controllers/cart"
	"github.com/kutu95/kamelie-greenhouse-sub001/middleware"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/cart/*" endpoints. Requires a session token.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateSession)
	{
		cartGroup.GET("/", cartControllers.GetCart(db))                 // GET /cart
		cartGroup.POST("/varieties", cartControllers.AddVariety(db))    // POST /cart/varieties
		cartGroup.POST("/products", cartControllers.AddProduct(db))     // POST /cart/products
		cartGroup.PUT("/items/:key", cartControllers.SetQuantity(db))   // PUT /cart/items/:key
		cartGroup.DELETE("/items/:key", cartControllers.RemoveItem(db)) // DELETE /cart/items/:key
		cartGroup.DELETE("/", cartControllers.ClearCart(db))            // DELETE /cart
	}
}
