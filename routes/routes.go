package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kutu95/kamelie-greenhouse-sub001/auth"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public catalog,
// the session-scoped cart and checkout, and the admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Anonymous session tokens (no middleware)
	r.POST("/auth/session", auth.CreateSession())

	// Public catalog
	SetupCatalogRoutes(r, db)

	// Cart + checkout (session-token protected)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)

	// Admin CRUD + exports (API-key protected)
	SetupAdminRoutes(r, db)
}
