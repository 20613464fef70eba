package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"ecommerce-dashboard/models"
)

// FileName builds a unique export file name such as
// rfm_20240102_150405_1a2b3c4d.csv.
func FileName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", prefix, time.Now().Format("20060102_150405"), uuid.NewString()[:8], ext)
}

// Files are the paths WriteAll produced.
type Files struct {
	CSV  string
	XLSX string
	PDF  string
}

// Step names reported to the progress callback of WriteAll.
const (
	StepCSV  = "csv"
	StepXLSX = "xlsx"
	StepPDF  = "pdf"
)

// WriteAll writes the RFM CSV, the workbook and the PDF report of v into
// dir. progress, when set, is called after each file.
func WriteAll(dir string, v *models.DashboardView, progress func(step string)) (Files, error) {
	if progress == nil {
		progress = func(string) {}
	}
	var out Files

	out.CSV = filepath.Join(dir, FileName("rfm", "csv"))
	w, err := CreateRFMFile(out.CSV)
	if err != nil {
		return out, err
	}
	if err := w.Write(v.RFM); err != nil {
		_ = w.Close()
		return out, err
	}
	if err := w.Close(); err != nil {
		return out, fmt.Errorf("csv: close: %w", err)
	}
	progress(StepCSV)

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, v); err != nil {
		return out, err
	}
	out.XLSX = filepath.Join(dir, FileName("dashboard", "xlsx"))
	if err := os.WriteFile(out.XLSX, buf.Bytes(), 0644); err != nil {
		return out, fmt.Errorf("xlsx: write file: %w", err)
	}
	progress(StepXLSX)

	pdf, err := PDFReport(v)
	if err != nil {
		return out, err
	}
	out.PDF = filepath.Join(dir, FileName("report", "pdf"))
	if err := os.WriteFile(out.PDF, pdf, 0644); err != nil {
		return out, fmt.Errorf("pdf: write file: %w", err)
	}
	progress(StepPDF)

	return out, nil
}
