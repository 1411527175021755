package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutu95/kamelie-greenhouse-sub001/cart"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
	"gorm.io/gorm"
)

type AddVarietyInput struct {
	CultivarID string `json:"cultivar_id" binding:"required"`
	AgeYears   int    `json:"age_years" binding:"required,min=1"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

type AddProductInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

// sessionStore loads the caller's swept cart from its session blob.
func sessionStore(c *gin.Context, db *gorm.DB) (*cart.Store, bool) {
	sessionIDVal, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	sessionID := sessionIDVal.(string)

	storage := cart.NewDBStorage(db, sessionID)
	resolver := pricing.NewResolver(pricing.NewGormMatrix(db))
	return cart.Load(storage, resolver), true
}

func cartResponse(s *cart.Store) gin.H {
	return gin.H{
		"items":          s.Items(),
		"item_count":     s.ItemCount(),
		"total":          s.Total(),
		"prices_pending": s.HasPendingPrices(),
	}
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(s))
	}
}

// POST /cart/varieties
func AddVariety(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddVarietyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			input.Quantity = 1
		}

		var cultivar models.Cultivar
		if err := db.First(&cultivar, "id = ?", input.CultivarID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate cultivar"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Cultivar does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		s, ok := sessionStore(c, db)
		if !ok {
			return
		}

		line, err := s.AddVariety(cultivar, input.AgeYears, input.Size, input.Quantity)
		if err != nil {
			if errors.Is(err, cart.ErrNotOrderable) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "This cultivar cannot be added to the cart"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"item": line, "cart": cartResponse(s)})
	}
}

// POST /cart/products
func AddProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity < 1 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		s, ok := sessionStore(c, db)
		if !ok {
			return
		}

		line, err := s.AddProduct(product, input.Quantity)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"item": line, "cart": cartResponse(s)})
	}
}

// PUT /cart/items/:key
func SetQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s, ok := sessionStore(c, db)
		if !ok {
			return
		}

		s.SetQuantity(c.Param("key"), input.Quantity)
		c.JSON(http.StatusOK, cartResponse(s))
	}
}

// DELETE /cart/items/:key
func RemoveItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, db)
		if !ok {
			return
		}

		s.Remove(c.Param("key"))
		c.JSON(http.StatusOK, cartResponse(s))
	}
}

// DELETE /cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := sessionStore(c, db)
		if !ok {
			return
		}

		s.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
