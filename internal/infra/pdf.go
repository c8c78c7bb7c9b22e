package infra

// pdf.go — report generation using go-pdf/fpdf.
// Two layouts:
//   - the daily price board ("REGISTRO DE PRECIOS"): one A4 page per ~40
//     rows, Producto / Presentación / Peso / Precio columns
//   - the bitácora printout: one bordered block per entry
// Output files land under the configured export directory.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/21edclique/preciosMayorista/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateReportePreciosPDF writes the daily price board for one date.
// Returns the absolute path to the generated file.
func GenerateReportePreciosPDF(fecha string, rows []dto.PrecioResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("precios_%s.pdf", fecha)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; product names carry accents, so translate.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "EP-EMA  Mercado Mayorista", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, "REGISTRO DE PRECIOS", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Fecha: "+fecha, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.38 // producto
	col2 := contentW * 0.28 // presentación
	col3 := contentW * 0.16 // peso
	col4 := contentW * 0.18 // precio

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(col1, 7, "Producto", "1", 0, "L", true, 0, "")
		pdf.CellFormat(col2, 7, tr("Presentación"), "1", 0, "L", true, 0, "")
		pdf.CellFormat(col3, 7, "Peso (kg)", "1", 0, "R", true, 0, "")
		pdf.CellFormat(col4, 7, "Precio ($)", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	writeHeader()

	for _, row := range rows {
		_, pageH := pdf.GetPageSize()
		if pdf.GetY() > pageH-25 {
			pdf.AddPage()
			writeHeader()
		}
		nombre := row.ProductoNombre
		// Truncate by runes so accented names never split mid-sequence.
		if runes := []rune(nombre); len(runes) > 40 {
			nombre = string(runes[:40]) + "..."
		}
		pdf.CellFormat(col1, 6, tr(nombre), "1", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, tr(row.PresentacionNombre), "1", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, row.Peso.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, row.Precio.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 8, "Sin precios registrados para esta fecha", "1", 1, "C", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Total de registros: %d", len(rows)), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

// GenerateInformeBitacoraPDF writes the activity-log printout: one bordered
// block per entry, newest first, matching the order the caller passes.
func GenerateInformeBitacoraPDF(entries []dto.BitacoraResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("bitacora_%d.pdf", os.Getpid())
	if len(entries) > 0 {
		fileName = fmt.Sprintf("bitacora_%s.pdf", entries[0].Fecha)
	}
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "EP-EMA  Mercado Mayorista", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, tr("INFORME DE BITÁCORA"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, entry := range entries {
		_, pageH := pdf.GetPageSize()
		if pdf.GetY() > pageH-60 {
			pdf.AddPage()
		}

		startY := pdf.GetY()
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 6, fmt.Sprintf("%s  %s  /  Turno %d", entry.Fecha, entry.Hora, entry.Turno), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		colega := "-"
		if entry.NombreColega != nil {
			colega = *entry.NombreColega
		}
		pdf.CellFormat(contentW, 5, tr("Registrado por: "+entry.Nombres+"    Colega: "+colega), "", 1, "L", false, 0, "")
		pdf.CellFormat(contentW, 5, tr("Nave: "+entry.NombreNave+"    Cámara: "+entry.Camara), "", 1, "L", false, 0, "")
		pdf.MultiCell(contentW, 5, tr("Novedad: "+entry.Novedad), "", "L", false)
		pdf.CellFormat(contentW, 5, tr("Resultado: "+entry.Resultado+"    Referencia: "+entry.Referencia), "", 1, "L", false, 0, "")

		pdf.Rect(15, startY-1, contentW, pdf.GetY()-startY+2, "D")
		pdf.Ln(4)
	}

	if len(entries) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, 8, "Sin registros", "", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
