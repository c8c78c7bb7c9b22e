package infra

// excel.go — xlsx price report generation using excelize.
// Same content as the PDF board; some downstream consumers (the municipal
// statistics office) want a spreadsheet they can pivot on.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/21edclique/preciosMayorista/internal/dto"

	"github.com/xuri/excelize/v2"
)

// GenerateReportePreciosXLSX writes the daily price board as a spreadsheet.
// Returns the absolute path to the generated file.
func GenerateReportePreciosXLSX(fecha string, rows []dto.PrecioResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("excel: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("precios_%s.xlsx", fecha)
	filePath := filepath.Join(storagePath, fileName)

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Precios"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E6E6E6"}},
	})
	if err != nil {
		return "", fmt.Errorf("excel: header style: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Fecha")
	f.SetCellValue(sheet, "B1", "Producto")
	f.SetCellValue(sheet, "C1", "Presentación")
	f.SetCellValue(sheet, "D1", "Peso (kg)")
	f.SetCellValue(sheet, "E1", "Precio ($)")
	f.SetCellStyle(sheet, "A1", "E1", headerStyle)

	for i, row := range rows {
		n := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", n), row.Fecha)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", n), row.ProductoNombre)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", n), row.PresentacionNombre)
		// InexactFloat64 keeps the cells numeric so the sheet stays pivotable
		f.SetCellValue(sheet, fmt.Sprintf("D%d", n), row.Peso.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", n), row.Precio.InexactFloat64())
	}

	f.SetColWidth(sheet, "B", "C", 28)
	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "D", "E", 12)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("excel: write file: %w", err)
	}
	return filePath, nil
}
