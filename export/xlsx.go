package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/services"
)

// Sheet names of the dashboard workbook, in tab order.
const (
	SheetTrend    = "Trend"
	SheetStates   = "States"
	SheetRFM      = "RFM"
	SheetSegments = "Segments"
)

// Workbook builds an XLSX workbook holding the tables of a view.
func Workbook(v *models.DashboardView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetTrend); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	for _, name := range []string{SheetStates, SheetRFM, SheetSegments} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("xlsx: new sheet %s: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#72BCD4"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: header style: %w", err)
	}

	sheets := []struct {
		name    string
		columns []string
		rows    [][]interface{}
	}{
		{SheetTrend, []string{"Month", "Total Orders", "Total Revenue"}, trendRows(v)},
		{SheetStates, []string{"State", "Total Orders", "Share (%)"}, stateRows(v)},
		{SheetRFM, []string{"Customer", "Recency (days)", "Frequency", "Monetary"}, rfmRows(v)},
		{SheetSegments, []string{"Payment Type", "Tier", "Total Orders", "Unique Customers", "Top States", "Mean Payment"}, segmentRows(v)},
	}

	for _, s := range sheets {
		if err := writeSheet(f, s.name, s.columns, s.rows, header); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// WriteXLSX writes the workbook of v to w.
func WriteXLSX(w io.Writer, v *models.DashboardView) error {
	f, err := Workbook(v)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, columns []string, rows [][]interface{}, headerStyle int) error {
	for i, title := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("xlsx: %s header: %w", sheet, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("xlsx: %s style: %w", sheet, err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return fmt.Errorf("xlsx: %s width: %w", sheet, err)
	}

	for r, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("xlsx: %s row %d: %w", sheet, r+2, err)
		}
	}
	return nil
}

// trendRows merges both monthly series on the month.
func trendRows(v *models.DashboardView) [][]interface{} {
	type pair struct {
		orders  float64
		revenue float64
	}
	byMonth := map[time.Time]*pair{}
	get := func(m time.Time) *pair {
		if p, ok := byMonth[m]; ok {
			return p
		}
		p := &pair{}
		byMonth[m] = p
		return p
	}
	for _, p := range v.OrdersTrend {
		get(p.Month).orders = p.Value
	}
	for _, p := range v.RevenueTrend {
		get(p.Month).revenue = p.Value
	}

	months := make([]time.Time, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	rows := make([][]interface{}, 0, len(months))
	for _, m := range months {
		p := byMonth[m]
		rows = append(rows, []interface{}{m.Format("January - 2006"), int(p.orders), p.revenue})
	}
	return rows
}

func stateRows(v *models.DashboardView) [][]interface{} {
	shares := services.Share(v.Regions)
	rows := make([][]interface{}, len(v.Regions))
	for i, r := range v.Regions {
		rows[i] = []interface{}{r.State, r.TotalOrders, shares[i]}
	}
	return rows
}

func rfmRows(v *models.DashboardView) [][]interface{} {
	rows := make([][]interface{}, len(v.RFM))
	for i, r := range v.RFM {
		rows[i] = []interface{}{r.CustomerUniqueID, r.Recency, r.Frequency, r.Monetary}
	}
	return rows
}

func segmentRows(v *models.DashboardView) [][]interface{} {
	rows := make([][]interface{}, len(v.Segments))
	for i, s := range v.Segments {
		rows[i] = []interface{}{s.PaymentType, s.ValueTier, s.TotalOrders, s.UniqueCustomers, s.TopStates, s.MeanPayment}
	}
	return rows
}
