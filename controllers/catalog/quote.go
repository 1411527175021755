package catalogControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
	"gorm.io/gorm"
)

// GET /catalog/price?group=rare&age=7&size=10L
// Quotes a single (group, age, size) combination, the same resolution the
// cart uses when a variety is added.
func QuotePrice(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		group, ok := pricing.GroupFromString(c.Query("group"))
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price group"})
			return
		}

		age, err := strconv.Atoi(c.Query("age"))
		if err != nil || age < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid age"})
			return
		}

		resolver := pricing.NewResolver(pricing.NewGormMatrix(db))
		price, err := resolver.Price(group, age, c.Query("size"))
		if err != nil {
			if errors.Is(err, pricing.ErrUnpriceable) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "This combination cannot be priced"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve price"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"group": group,
			"age":   age,
			"size":  c.Query("size"),
			"price": price,
		})
	}
}
