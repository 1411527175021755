package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kutu95/kamelie-greenhouse-sub001/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/export/matrix — price matrix as a spreadsheet, the format the
// nursery maintains its price lists in.
func ExportMatrixToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var entries []models.PriceMatrixEntry
		if err := db.Order("price_group, age_years, size").Find(&entries).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch price matrix"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("PriceMatrix")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"PriceGroup", "AgeYears", "Size", "Price", "Available"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, e := range entries {
			row := sheet.AddRow()
			row.AddCell().SetValue(e.PriceGroup)
			row.AddCell().SetValue(e.AgeYears)
			row.AddCell().SetValue(e.Size)
			row.AddCell().SetValue(e.Price)
			row.AddCell().SetValue(e.Available)
		}

		writeExcel(c, file, "price_matrix.xlsx")
	}
}

// GET /admin/export/cultivars
func ExportCultivarsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cultivars []models.Cultivar
		if err := db.Order("name").Find(&cultivars).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cultivars"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Cultivars")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{"ID", "Name", "Species", "Breeder", "FlowerColor", "FlowerForm", "PriceGroup", "CreatedAt"}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, cv := range cultivars {
			row := sheet.AddRow()
			row.AddCell().SetValue(cv.ID)
			row.AddCell().SetValue(cv.Name)
			row.AddCell().SetValue(cv.Species)
			row.AddCell().SetValue(cv.Breeder)
			row.AddCell().SetValue(cv.FlowerColor)
			row.AddCell().SetValue(cv.FlowerForm)
			row.AddCell().SetValue(cv.PriceGroup)
			row.AddCell().SetValue(cv.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		writeExcel(c, file, "cultivars.xlsx")
	}
}

func writeExcel(c *gin.Context, file *xlsx.File, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
