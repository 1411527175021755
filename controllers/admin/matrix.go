package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/kutu95/kamelie-greenhouse-sub001/pricing"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MatrixEntryInput struct {
	PriceGroup string  `json:"price_group" binding:"required"`
	AgeYears   int     `json:"age_years" binding:"min=0"`
	Size       string  `json:"size" binding:"required"`
	Price      float64 `json:"price" binding:"min=0"`
	Available  *bool   `json:"available"`
}

// GET /admin/matrix?group=rare
func GetMatrix(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.PriceMatrixEntry{}).Order("price_group, age_years, size")
		if g := c.Query("group"); g != "" {
			group, ok := pricing.GroupFromString(g)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price group"})
				return
			}
			query = query.Where("price_group = ?", string(group))
		}

		var entries []models.PriceMatrixEntry
		if err := query.Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve price matrix"})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}

// POST /admin/matrix — creates or replaces the cell for (group, age, size).
func UpsertMatrixEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MatrixEntryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		group, ok := pricing.GroupFromString(input.PriceGroup)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price group"})
			return
		}

		available := true
		if input.Available != nil {
			available = *input.Available
		}

		entry := models.PriceMatrixEntry{
			PriceGroup: string(group),
			AgeYears:   input.AgeYears,
			Size:       input.Size,
			Price:      input.Price,
			Available:  available,
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "price_group"}, {Name: "age_years"}, {Name: "size"}},
			DoUpdates: clause.AssignmentColumns([]string{"price", "available", "updated_at"}),
		}).Create(&entry).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save matrix entry"})
			return
		}
		c.JSON(http.StatusCreated, entry)
	}
}

// DELETE /admin/matrix/:id
func DeleteMatrixEntry(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid matrix entry ID"})
			return
		}

		result := db.Delete(&models.PriceMatrixEntry{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete matrix entry"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Matrix entry not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Matrix entry deleted"})
	}
}
