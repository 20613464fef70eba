package storage

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/utils"
)

const (
	colDeliveredAt  = "order_delivered_customer_date"
	colTotalOrders  = "total_orders"
	colTotalRevenue = "total_revenue"
	colOrderID      = "order_id"
	colCustomerID   = "customer_unique_id"
	colPaymentType  = "payment_type"
	colPaymentValue = "payment_value"
	colState        = "customer_state"
	colValueTier    = "kelompok_payment_value"
	colZipPrefix    = "customer_zip_code_prefix"
	colCity         = "customer_city"
	colLat          = "geolocation_lat"
	colLng          = "geolocation_lng"
)

// monthLayout matches "October - 2017".
const monthLayout = "January - 2006"

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02",
}

// Parser turns raw extract tables into typed records.
type Parser struct {
	logger *utils.Logger
}

// NewParser creates a Parser with the given logger.
func NewParser(logger *utils.Logger) *Parser {
	return &Parser{logger: logger}
}

// MonthlyOrders parses the monthly order-count extract.
func (p *Parser) MonthlyOrders(t *Table) ([]models.MonthlyOrders, error) {
	cols, err := t.columns(colDeliveredAt, colTotalOrders)
	if err != nil {
		return nil, err
	}

	out := make([]models.MonthlyOrders, 0, len(t.Rows))
	for i, row := range t.Rows {
		month, err := parseMonth(cell(row, cols[colDeliveredAt]))
		if err != nil {
			return nil, rowError(t, i, colDeliveredAt, err)
		}
		n, err := parseCount(cell(row, cols[colTotalOrders]))
		if err != nil {
			return nil, rowError(t, i, colTotalOrders, err)
		}
		out = append(out, models.MonthlyOrders{Month: month, TotalOrders: n})
	}

	p.logger.Debug("[parser] %s: %d months", t.Name, len(out))
	return out, nil
}

// MonthlyRevenue parses the monthly revenue extract.
func (p *Parser) MonthlyRevenue(t *Table) ([]models.MonthlyRevenue, error) {
	cols, err := t.columns(colDeliveredAt, colTotalRevenue)
	if err != nil {
		return nil, err
	}

	out := make([]models.MonthlyRevenue, 0, len(t.Rows))
	for i, row := range t.Rows {
		month, err := parseMonth(cell(row, cols[colDeliveredAt]))
		if err != nil {
			return nil, rowError(t, i, colDeliveredAt, err)
		}
		v, err := parseDecimal(cell(row, cols[colTotalRevenue]))
		if err != nil {
			return nil, rowError(t, i, colTotalRevenue, err)
		}
		out = append(out, models.MonthlyRevenue{Month: month, TotalRevenue: v})
	}

	p.logger.Debug("[parser] %s: %d months", t.Name, len(out))
	return out, nil
}

// Payments parses the customers/orders/payments extract. Rows without a
// delivery date can never fall inside a date range, so they are dropped.
func (p *Parser) Payments(t *Table) ([]models.OrderPayment, error) {
	cols, err := t.columns(colOrderID, colCustomerID, colDeliveredAt,
		colPaymentType, colPaymentValue, colState, colValueTier)
	if err != nil {
		return nil, err
	}

	out := make([]models.OrderPayment, 0, len(t.Rows))
	undelivered := 0
	for i, row := range t.Rows {
		raw := cell(row, cols[colDeliveredAt])
		if raw == "" {
			undelivered++
			continue
		}
		at, err := parseTimestamp(raw)
		if err != nil {
			return nil, rowError(t, i, colDeliveredAt, err)
		}
		value, err := parseDecimal(cell(row, cols[colPaymentValue]))
		if err != nil {
			return nil, rowError(t, i, colPaymentValue, err)
		}
		out = append(out, models.OrderPayment{
			OrderID:          cell(row, cols[colOrderID]),
			CustomerUniqueID: cell(row, cols[colCustomerID]),
			DeliveredAt:      at,
			PaymentType:      normaliseText(cell(row, cols[colPaymentType])),
			PaymentValue:     value,
			CustomerState:    strings.ToUpper(cell(row, cols[colState])),
			ValueTier:        normaliseText(cell(row, cols[colValueTier])),
		})
	}

	p.logRows(t, len(out), undelivered)
	return out, nil
}

// GeoOrders parses the orders/customers/geolocation extract.
func (p *Parser) GeoOrders(t *Table) ([]models.GeoOrder, error) {
	cols, err := t.columns(colOrderID, colCustomerID, colDeliveredAt,
		colZipPrefix, colCity, colState, colLat, colLng)
	if err != nil {
		return nil, err
	}

	out := make([]models.GeoOrder, 0, len(t.Rows))
	undelivered := 0
	for i, row := range t.Rows {
		raw := cell(row, cols[colDeliveredAt])
		if raw == "" {
			undelivered++
			continue
		}
		at, err := parseTimestamp(raw)
		if err != nil {
			return nil, rowError(t, i, colDeliveredAt, err)
		}
		lat, err := parseDecimal(cell(row, cols[colLat]))
		if err != nil {
			return nil, rowError(t, i, colLat, err)
		}
		lng, err := parseDecimal(cell(row, cols[colLng]))
		if err != nil {
			return nil, rowError(t, i, colLng, err)
		}
		out = append(out, models.GeoOrder{
			OrderID:          cell(row, cols[colOrderID]),
			CustomerUniqueID: cell(row, cols[colCustomerID]),
			DeliveredAt:      at,
			ZipCodePrefix:    normaliseZip(cell(row, cols[colZipPrefix])),
			City:             normaliseText(cell(row, cols[colCity])),
			State:            strings.ToUpper(cell(row, cols[colState])),
			Lat:              lat,
			Lng:              lng,
		})
	}

	p.logRows(t, len(out), undelivered)
	return out, nil
}

func (p *Parser) logRows(t *Table, kept, undelivered int) {
	if undelivered > 0 {
		p.logger.Warn("[parser] %s: dropped %d rows without a delivery date", t.Name, undelivered)
	}
	p.logger.Debug("[parser] %s: %d rows", t.Name, kept)
}

func rowError(t *Table, i int, col string, err error) error {
	// +2: one for the header, one for 1-based line numbers
	return fmt.Errorf("%s: line %d, column %s: %w", t.Name, i+2, col, err)
}

// parseMonth parses "Month - Year" into the first day of that month.
func parseMonth(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty month")
	}
	t, err := time.Parse(monthLayout, normaliseText(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q", raw)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// parseTimestamp accepts the ISO-like forms the extracts and SQL drivers produce.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

// parseDecimal parses a decimal cell. Empty cells read as zero.
func parseDecimal(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

// parseCount parses an integer cell. Counts written as "12.0" are accepted.
func parseCount(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("invalid count %q", raw)
	}
	return int(f), nil
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}

// normaliseZip restores the leading zeros a numeric reader may have dropped.
func normaliseZip(s string) string {
	s = strings.TrimSuffix(s, ".0")
	if s == "" {
		return s
	}
	if _, err := strconv.Atoi(s); err == nil && len(s) < 5 {
		return strings.Repeat("0", 5-len(s)) + s
	}
	return s
}
