package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"finanzas/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler exporta los gastos a CSV y Excel
type ExportHandler struct {
	db *gorm.DB
}

// NewExportHandler crea el handler de exportación
func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

func (h *ExportHandler) fetchExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	err := h.db.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

// ExportCSV exporta los gastos como CSV
// @Summary Exportar gastos a CSV
// @Description Devuelve todos los gastos en un archivo CSV (UTF-8 con BOM para Excel)
// @Tags Exportación
// @Produce text/csv
// @Success 200 {file} file "Archivo CSV"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, err := h.fetchExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar los gastos"))
		return
	}

	buf := new(bytes.Buffer)
	// BOM para que Excel muestre bien los acentos
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Monto", "Descripción", "Categoría", "Fecha", "Estado", "Usuario"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "Error al generar el CSV")
		return
	}

	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			fmt.Sprintf("%.2f", expense.Amount),
			expense.Description,
			expense.Category,
			expense.Date.Format("2006-01-02"),
			expense.Status,
			fmt.Sprintf("%d", expense.UserID),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "Error al generar el CSV")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "Error al generar el CSV")
		return
	}

	filename := fmt.Sprintf("gastos_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel exporta los gastos como Excel
// @Summary Exportar gastos a Excel
// @Description Devuelve todos los gastos en un archivo XLSX con una fila de totales
// @Tags Exportación
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Archivo Excel"
// @Failure 500 {object} ErrorResponse "Error del servidor"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	expenses, err := h.fetchExpenses()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Error al consultar los gastos"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Gastos"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 35)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 14)
	f.SetColWidth(sheetName, "F", "F", 12)

	headers := []string{"ID", "Monto", "Descripción", "Categoría", "Fecha", "Estado"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalAmount float64
	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.Status)
		totalAmount += expense.Amount
	}

	// Fila de totales
	summaryRow := len(expenses) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), totalAmount)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "Error al generar el Excel")
		return
	}

	filename := fmt.Sprintf("gastos_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
