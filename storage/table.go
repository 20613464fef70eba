package storage

import (
	"fmt"
	"strings"
)

// Extract names. CSV files are <name>.csv and SQL tables carry the same name.
const (
	MonthlyOrdersExtract  = "monthly_orders_df"
	MonthlyRevenueExtract = "monthly_revenue_order_df"
	PaymentsExtract       = "customers_orders_and_payment"
	GeoExtract            = "orders_customers_geolocation_df"
)

// Table is an untyped extract: a header plus string cells, as read from
// disk or a database before parsing.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string

	index map[string]int
}

// NewTable builds a Table from records whose first row is the header.
func NewTable(name string, records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: no header row", name)
	}
	t := &Table{
		Name:   name,
		Header: records[0],
		Rows:   records[1:],
		index:  make(map[string]int, len(records[0])),
	}
	for i, col := range t.Header {
		key := strings.ToLower(strings.TrimSpace(col))
		if _, dup := t.index[key]; !dup {
			t.index[key] = i
		}
	}
	return t, nil
}

// Column returns the position of a named column.
func (t *Table) Column(name string) (int, error) {
	i, ok := t.index[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%s: missing column %q", t.Name, name)
	}
	return i, nil
}

// columns resolves several names at once, failing on the first missing one.
func (t *Table) columns(names ...string) (map[string]int, error) {
	out := make(map[string]int, len(names))
	for _, n := range names {
		i, err := t.Column(n)
		if err != nil {
			return nil, err
		}
		out[n] = i
	}
	return out, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[i])
	if v == "NaN" || v == "NaT" {
		return ""
	}
	return v
}
