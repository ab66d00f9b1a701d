package controllers

import (
	"fmt"
	"time"

	"github.com/furkancybercore/PyShop/config"
	"github.com/furkancybercore/PyShop/models"
	"github.com/furkancybercore/PyShop/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/tealeg/xlsx"
)

// Admin: Download the product table as Excel
func DownloadProductsExcel(c *gin.Context) {
	utils.LogInfo("DownloadProductsExcel called")

	var products []models.Product
	if err := config.DB.Order("id").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d products for Excel export", len(products))

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		utils.LogError("Failed to create Excel sheet: %v", err)
		utils.InternalServerError(c, "Failed to create Excel sheet", err.Error())
		return
	}

	titleRow := sheet.AddRow()
	titleRow.AddCell().SetString("PYSHOP - Product Catalog")
	dateRow := sheet.AddRow()
	dateRow.AddCell().SetString("Generated: " + time.Now().Format("2006-01-02 15:04"))
	sheet.AddRow() // spacing

	headers := []string{"ID", "Name", "Price", "Stock", "Image URL"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, product := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(product.ID))
		row.AddCell().SetString(product.Name)
		row.AddCell().SetFloat(product.Price)
		row.AddCell().SetInt(product.Stock)
		row.AddCell().SetString(product.ImageURL)
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	if err := file.Write(c.Writer); err != nil {
		utils.LogError("Failed to write Excel file: %v", err)
		utils.InternalServerError(c, "Failed to write Excel file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated Excel export with %d products", len(products))
}

// Admin: Download the product table as PDF
func DownloadProductsPDF(c *gin.Context) {
	utils.LogInfo("DownloadProductsPDF called")

	var products []models.Product
	if err := config.DB.Order("id").Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Failed to fetch products", err.Error())
		return
	}
	utils.LogDebug("Retrieved %d products for PDF export", len(products))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, "PYSHOP - Product Catalog")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	headers := []string{"ID", "Name", "Price", "Stock"}
	colWidths := []float64{20, 90, 35, 25}
	pdf.SetFont("Arial", "B", 11)
	for i, h := range headers {
		pdf.SetFillColor(200, 200, 200)
		pdf.CellFormat(colWidths[i], 9, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	fill := false
	for _, product := range products {
		pdf.SetFillColor(245, 245, 245)
		if fill {
			pdf.SetFillColor(230, 240, 255)
		}
		fill = !fill
		pdf.CellFormat(colWidths[0], 8, fmt.Sprintf("%d", product.ID), "1", 0, "C", fill, 0, "")
		pdf.CellFormat(colWidths[1], 8, product.Name, "1", 0, "L", fill, 0, "")
		pdf.CellFormat(colWidths[2], 8, fmt.Sprintf("%.2f", product.Price), "1", 0, "R", fill, 0, "")
		pdf.CellFormat(colWidths[3], 8, fmt.Sprintf("%d", product.Stock), "1", 0, "C", fill, 0, "")
		pdf.Ln(-1)
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "attachment; filename=products.pdf")
	if err := pdf.Output(c.Writer); err != nil {
		utils.LogError("Failed to write PDF file: %v", err)
		utils.InternalServerError(c, "Failed to write PDF file", err.Error())
		return
	}
	utils.LogInfo("Successfully generated PDF export with %d products", len(products))
}
