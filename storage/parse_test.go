package storage

import (
	"strings"
	"testing"
	"time"

	"ecommerce-dashboard/utils"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"October - 2017", time.Date(2017, 10, 1, 0, 0, 0, 0, time.UTC), false},
		{"january - 2018", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"  March  -  2018 ", time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"2018-03", time.Time{}, true},
		{"", time.Time{}, true},
	}

	for _, tt := range tests {
		got, err := parseMonth(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseMonth(%q) error = %v; wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseMonth(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2017-10-10 21:25:13", time.Date(2017, 10, 10, 21, 25, 13, 0, time.UTC)},
		{"2017-10-10", time.Date(2017, 10, 10, 0, 0, 0, 0, time.UTC)},
		{"2017-10-10T21:25:13Z", time.Date(2017, 10, 10, 21, 25, 13, 0, time.UTC)},
		{"2017-10-10T23:00:00-03:00", time.Date(2017, 10, 11, 2, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := parseTimestamp(tt.raw)
		if err != nil {
			t.Errorf("parseTimestamp(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("parseTimestamp(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}

	if _, err := parseTimestamp("10/10/2017"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{"12", 12, false},
		{"12.0", 12, false},
		{"", 0, false},
		{"12.5", 0, true},
		{"many", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCount(tt.raw)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseCount(%q) = %d, %v; want %d, wantErr %v", tt.raw, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestNormaliseZip(t *testing.T) {
	tests := map[string]string{
		"1037":   "01037",
		"1037.0": "01037",
		"20040":  "20040",
		"":       "",
		"ABC12":  "ABC12",
	}
	for in, want := range tests {
		if got := normaliseZip(in); got != want {
			t.Errorf("normaliseZip(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestParserPaymentsDropsUndelivered(t *testing.T) {
	p := NewParser(utils.NewDiscardLogger())
	tbl, err := NewTable(PaymentsExtract, [][]string{
		{"order_id", "customer_unique_id", "order_delivered_customer_date", "payment_type", "payment_value", "customer_state", "kelompok_payment_value"},
		{"o1", "c1", "2017-10-02 10:00:00", "credit_card", "10.5", "sp", "Sangat  tinggi"},
		{"o2", "c1", "NaN", "boleto", "20", "SP", "Rendah"},
	})
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	rows, err := p.Payments(tbl)
	if err != nil {
		t.Fatalf("Payments: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	if rows[0].CustomerState != "SP" {
		t.Errorf("CustomerState: got %q, want %q", rows[0].CustomerState, "SP")
	}
	if rows[0].ValueTier != "Sangat tinggi" {
		t.Errorf("ValueTier: got %q, want %q", rows[0].ValueTier, "Sangat tinggi")
	}
	if rows[0].PaymentValue != 10.5 {
		t.Errorf("PaymentValue: got %.2f, want 10.5", rows[0].PaymentValue)
	}
}

func TestParserReportsLine(t *testing.T) {
	p := NewParser(utils.NewDiscardLogger())
	tbl, _ := NewTable(MonthlyRevenueExtract, [][]string{
		{"order_delivered_customer_date", "total_revenue"},
		{"October - 2017", "100"},
		{"November - 2017", "lots"},
	})

	_, err := p.MonthlyRevenue(tbl)
	if err == nil {
		t.Fatal("expected error for malformed revenue")
	}
	if !strings.Contains(err.Error(), "line 3") || !strings.Contains(err.Error(), "total_revenue") {
		t.Errorf("error should name line and column, got %q", err)
	}
}

func TestParserMissingColumn(t *testing.T) {
	p := NewParser(utils.NewDiscardLogger())
	tbl, _ := NewTable(GeoExtract, [][]string{
		{"order_id", "customer_unique_id"},
		{"o1", "c1"},
	})
	if _, err := p.GeoOrders(tbl); err == nil {
		t.Fatal("expected missing column error")
	}
}
