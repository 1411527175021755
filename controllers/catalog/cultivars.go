package catalogControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
	"gorm.io/gorm"
)

// GET /catalog/cultivars?group=rare
// Lists cultivars together with per-group price ranges so the storefront
// can render "from €X" without a lookup per row.
func GetCultivars(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Cultivar{}).Order("name")
		if g := c.Query("group"); g != "" {
			group, ok := pricing.GroupFromString(g)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price group"})
				return
			}
			query = query.Where("price_group = ?", string(group))
		}

		var cultivars []models.Cultivar
		if err := query.Find(&cultivars).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cultivars"})
			return
		}

		resolver := pricing.NewResolver(pricing.NewGormMatrix(db))
		ranges := map[string]pricing.Range{}
		for _, g := range []pricing.Group{pricing.GroupCommon, pricing.GroupMedium, pricing.GroupRare} {
			if rng, err := resolver.Range(g); err == nil {
				ranges[string(g)] = rng
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"cultivars":    cultivars,
			"price_ranges": ranges,
		})
	}
}

// GET /catalog/cultivars/:id
func GetCultivarByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cultivar models.Cultivar
		if err := db.First(&cultivar, "id = ?", c.Param("id")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cultivar not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cultivar"})
			}
			return
		}

		resp := gin.H{"cultivar": cultivar}
		if group, ok := pricing.GroupOf(cultivar); ok {
			resolver := pricing.NewResolver(pricing.NewGormMatrix(db))
			if rng, err := resolver.Range(group); err == nil {
				resp["price_range"] = rng
			}
		} else {
			resp["orderable"] = false
		}

		c.JSON(http.StatusOK, resp)
	}
}
