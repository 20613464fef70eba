package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/utils"
)

var tableNameRegexp = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SQLSource reads the extracts from same-named tables of a SQL database.
// Supported drivers: "postgres", "mysql" and "sqlite".
type SQLSource struct {
	db       *sql.DB
	driver   string
	logger   *utils.Logger
	progress ProgressFunc
}

// NewSQLSource opens a connection and waits for the database to answer.
func NewSQLSource(ctx context.Context, driver, dsn string, retry *utils.RetryConfig, logger *utils.Logger) (*SQLSource, error) {
	switch driver {
	case "postgres", "mysql", "sqlite":
	default:
		return nil, fmt.Errorf("sql: unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", driver, err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	err = retry.Do(ctx, driver+"-ping", func(ctx context.Context) error {
		return db.PingContext(ctx)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping: %w", driver, err)
	}

	return &SQLSource{db: db, driver: driver, logger: logger}, nil
}

// NewSQLSourceFromDB wraps an already open handle.
func NewSQLSourceFromDB(db *sql.DB, driver string, logger *utils.Logger) *SQLSource {
	return &SQLSource{db: db, driver: driver, logger: logger}
}

// OnProgress registers a callback fired as each extract finishes.
func (s *SQLSource) OnProgress(fn ProgressFunc) {
	s.progress = fn
}

// Load reads and parses all four extracts.
func (s *SQLSource) Load(ctx context.Context) (*models.Dataset, error) {
	return loadDataset(ctx, s, s.logger, s.progress)
}

func (s *SQLSource) readTable(ctx context.Context, name string) (*Table, error) {
	if !tableNameRegexp.MatchString(name) {
		return nil, fmt.Errorf("%s: invalid table name %q", s.driver, name)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+name)
	if err != nil {
		return nil, fmt.Errorf("%s: query %s: %w", s.driver, name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%s: columns %s: %w", s.driver, name, err)
	}

	records := [][]string{cols}
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%s: scan %s: %w", s.driver, name, err)
		}

		rec := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				rec[i] = v.String
			}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows %s: %w", s.driver, name, err)
	}

	s.logger.Debug("[%s] %s: %d rows", s.driver, name, len(records)-1)
	return NewTable(name, records)
}

// Close closes the database handle.
func (s *SQLSource) Close() error {
	return s.db.Close()
}
