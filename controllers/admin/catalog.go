package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
	"gorm.io/gorm"
)

type CultivarInput struct {
	Name        string `json:"name" binding:"required"`
	Species     string `json:"species"`
	Breeder     string `json:"breeder"`
	FlowerColor string `json:"flower_color"`
	FlowerForm  string `json:"flower_form"`
	Description string `json:"description"`
	PriceGroup  string `json:"price_group"` // empty = not for sale
	Image       string `json:"image"`
}

type ProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

// POST /admin/cultivars
func CreateCultivar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CultivarInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PriceGroup != "" {
			if _, ok := pricing.GroupFromString(input.PriceGroup); !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price group"})
				return
			}
		}

		cultivar := models.Cultivar{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Species:     input.Species,
			Breeder:     input.Breeder,
			FlowerColor: input.FlowerColor,
			FlowerForm:  input.FlowerForm,
			Description: input.Description,
			PriceGroup:  input.PriceGroup,
			Image:       input.Image,
		}
		if err := db.Create(&cultivar).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cultivar"})
			return
		}
		c.JSON(http.StatusCreated, cultivar)
	}
}

// PUT /admin/cultivars/:id
func UpdateCultivar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cultivar models.Cultivar
		if err := db.First(&cultivar, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cultivar not found"})
			return
		}

		var input CultivarInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.PriceGroup != "" {
			if _, ok := pricing.GroupFromString(input.PriceGroup); !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price group"})
				return
			}
		}

		cultivar.Name = input.Name
		cultivar.Species = input.Species
		cultivar.Breeder = input.Breeder
		cultivar.FlowerColor = input.FlowerColor
		cultivar.FlowerForm = input.FlowerForm
		cultivar.Description = input.Description
		cultivar.PriceGroup = input.PriceGroup
		cultivar.Image = input.Image
		if err := db.Save(&cultivar).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cultivar"})
			return
		}
		c.JSON(http.StatusOK, cultivar)
	}
}

// DELETE /admin/cultivars/:id
func DeleteCultivar(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Cultivar{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cultivar"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cultivar not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cultivar deleted"})
	}
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Stock:       input.Stock,
			Image:       input.Image,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Stock = input.Stock
		product.Image = input.Image
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Product{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
