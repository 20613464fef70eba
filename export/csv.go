package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"ecommerce-dashboard/models"
)

var rfmHeader = []string{"customer_unique_id", "recency", "frequency", "monetary"}

// RFMWriter writes RFM rows as CSV.
// It is safe for concurrent use.
type RFMWriter struct {
	mu     sync.Mutex
	closer io.Closer
	writer *csv.Writer
}

// NewRFMWriter wraps w and writes the header row.
func NewRFMWriter(w io.Writer) (*RFMWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(rfmHeader); err != nil {
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	cw.Flush()
	return &RFMWriter{writer: cw}, nil
}

// CreateRFMFile creates (or truncates) the CSV file at path and writes the
// header row. Intermediate directories are created automatically.
func CreateRFMFile(path string) (*RFMWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w, err := NewRFMWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.closer = f
	return w, nil
}

// Write appends rows in the order given.
func (c *RFMWriter) Write(rows []models.RFMRow) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, r := range rows {
		record := []string{
			r.CustomerUniqueID,
			strconv.Itoa(r.Recency),
			strconv.Itoa(r.Frequency),
			strconv.FormatFloat(r.Monetary, 'f', 2, 64),
		}
		if err := c.writer.Write(record); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file, if any.
func (c *RFMWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Flush()
	if c.closer == nil {
		return c.writer.Error()
	}
	if err := c.writer.Error(); err != nil {
		_ = c.closer.Close()
		return fmt.Errorf("csv: flush: %w", err)
	}
	return c.closer.Close()
}
