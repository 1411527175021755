package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/kutu95/kamelie-greenhouse-sub001/controllers/catalog"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers all "/catalog/*" endpoints. Public, read-only.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	catalog := r.Group("/catalog")
	{
		catalog.GET("/cultivars", catalogControllers.GetCultivars(db))        // GET /catalog/cultivars
		catalog.GET("/cultivars/:id", catalogControllers.GetCultivarByID(db)) // GET /catalog/cultivars/:id
		catalog.GET("/products", catalogControllers.GetProducts(db))          // GET /catalog/products
		catalog.GET("/products/:id", catalogControllers.GetProductByID(db))   // GET /catalog/products/:id
		catalog.GET("/price", catalogControllers.QuotePrice(db))              // GET /catalog/price?group=&age=&size=
	}
}
