package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/kutu95/kamelie-greenhouse-sub001/controllers/admin"
	"github.com/kutu95/kamelie-greenhouse-sub001/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Cultivars ────────────────
		admin.POST("/cultivars", adminControllers.CreateCultivar(db))
		admin.PUT("/cultivars/:id", adminControllers.UpdateCultivar(db))
		admin.DELETE("/cultivars/:id", adminControllers.DeleteCultivar(db))

		// ──────────────── Products ────────────────
		admin.POST("/products", adminControllers.CreateProduct(db))
		admin.PUT("/products/:id", adminControllers.UpdateProduct(db))
		admin.DELETE("/products/:id", adminControllers.DeleteProduct(db))

		// ──────────────── Price Matrix ────────────────
		admin.GET("/matrix", adminControllers.GetMatrix(db))
		admin.POST("/matrix", adminControllers.UpsertMatrixEntry(db))
		admin.DELETE("/matrix/:id", adminControllers.DeleteMatrixEntry(db))

		// ──────────────── Exports ────────────────
		admin.GET("/export/matrix", adminControllers.ExportMatrixToExcel(db))
		admin.GET("/export/cultivars", adminControllers.ExportCultivarsToExcel(db))
	}
}
