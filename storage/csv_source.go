package storage

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/utils"
)

// CSVSource reads the extracts from <dir>/<name>.csv.
type CSVSource struct {
	dir      string
	logger   *utils.Logger
	progress ProgressFunc
}

// NewCSVSource returns a CSVSource rooted at dir. The directory must exist.
func NewCSVSource(dir string, logger *utils.Logger) (*CSVSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("csv: data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("csv: data dir %q is not a directory", dir)
	}
	return &CSVSource{dir: dir, logger: logger}, nil
}

// OnProgress registers a callback fired as each extract finishes.
func (s *CSVSource) OnProgress(fn ProgressFunc) {
	s.progress = fn
}

// Load reads and parses all four extracts.
func (s *CSVSource) Load(ctx context.Context) (*models.Dataset, error) {
	return loadDataset(ctx, s, s.logger, s.progress)
}

func (s *CSVSource) readTable(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, name+".csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer f.Close()

	// Everything is read as text; the parser owns typing.
	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		if strings.Contains(df.Err.Error(), "empty DataFrame") {
			return s.headerOnly(f, name, path)
		}
		return nil, fmt.Errorf("csv: read %q: %w", path, df.Err)
	}

	s.logger.Debug("[csv] %s: %d rows x %d columns", name, df.Nrow(), df.Ncol())
	return NewTable(name, df.Records())
}

// headerOnly builds an empty table from a file whose only record is the
// header. gota refuses to build a DataFrame without data rows.
func (s *CSVSource) headerOnly(f *os.File, name, path string) (*Table, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("csv: rewind %q: %w", path, err)
	}
	header, err := csv.NewReader(f).Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header %q: %w", path, err)
	}

	s.logger.Warn("[csv] %s has no data rows", name)
	return NewTable(name, [][]string{header})
}

// Close is a no-op; files are closed after each read.
func (s *CSVSource) Close() error {
	return nil
}
