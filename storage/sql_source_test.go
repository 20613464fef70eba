package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"ecommerce-dashboard/utils"
)

func seedSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "extracts.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	stmts := []string{
		`CREATE TABLE monthly_orders_df (order_delivered_customer_date TEXT, total_orders INTEGER)`,
		`INSERT INTO monthly_orders_df VALUES ('October - 2017', 120), ('November - 2017', 150)`,
		`CREATE TABLE monthly_revenue_order_df (order_delivered_customer_date TEXT, total_revenue REAL)`,
		`INSERT INTO monthly_revenue_order_df VALUES ('October - 2017', 1500.25), ('November - 2017', 1800)`,
		`CREATE TABLE customers_orders_and_payment (order_id TEXT, customer_unique_id TEXT,
			order_delivered_customer_date TEXT, payment_type TEXT, payment_value REAL,
			customer_state TEXT, kelompok_payment_value TEXT)`,
		`INSERT INTO customers_orders_and_payment VALUES
			('o1', 'c1', '2017-10-02 10:00:00', 'credit_card', 10.5, 'SP', 'Sangat tinggi'),
			('o2', 'c2', NULL, 'boleto', 20, 'RJ', 'Rendah')`,
		`CREATE TABLE orders_customers_geolocation_df (order_id TEXT, customer_unique_id TEXT,
			order_delivered_customer_date TEXT, customer_zip_code_prefix INTEGER, customer_city TEXT,
			customer_state TEXT, geolocation_lat REAL, geolocation_lng REAL)`,
		`INSERT INTO orders_customers_geolocation_df VALUES
			('o1', 'c1', '2017-10-02 10:00:00', 1037, 'sao paulo', 'SP', -23.54, -46.63)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	return db
}

func TestSQLSourceLoadSQLite(t *testing.T) {
	db := seedSQLite(t)
	src := NewSQLSourceFromDB(db, "sqlite", utils.NewDiscardLogger())

	ds, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ds.MonthlyOrders) != 2 || ds.MonthlyOrders[0].TotalOrders != 120 {
		t.Errorf("MonthlyOrders: got %+v", ds.MonthlyOrders)
	}
	if ds.MonthlyRevenue[0].TotalRevenue != 1500.25 {
		t.Errorf("TotalRevenue: got %.2f, want 1500.25", ds.MonthlyRevenue[0].TotalRevenue)
	}
	if len(ds.Payments) != 1 {
		t.Errorf("Payments: got %d, want 1 (NULL delivery dropped)", len(ds.Payments))
	}
	if len(ds.Geo) != 1 || ds.Geo[0].ZipCodePrefix != "01037" {
		t.Errorf("Geo: got %+v", ds.Geo)
	}
}

func TestSQLSourceMissingTable(t *testing.T) {
	db := seedSQLite(t)
	if _, err := db.Exec(`DROP TABLE orders_customers_geolocation_df`); err != nil {
		t.Fatalf("drop: %v", err)
	}
	src := NewSQLSourceFromDB(db, "sqlite", utils.NewDiscardLogger())
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestNewSQLSourceRejectsDriver(t *testing.T) {
	retry := &utils.RetryConfig{MaxAttempts: 1, Logger: utils.NewDiscardLogger()}
	if _, err := NewSQLSource(context.Background(), "oracle", "", retry, utils.NewDiscardLogger()); err == nil {
		t.Fatal("expected unsupported driver error")
	}
}

func TestNewSQLSourceSQLiteFile(t *testing.T) {
	retry := &utils.RetryConfig{MaxAttempts: 1, Logger: utils.NewDiscardLogger()}
	src, err := NewSQLSource(context.Background(), "sqlite", filepath.Join(t.TempDir(), "x.db"), retry, utils.NewDiscardLogger())
	if err != nil {
		t.Fatalf("NewSQLSource: %v", err)
	}
	defer src.Close()
}
