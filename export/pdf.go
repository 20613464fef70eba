package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"ecommerce-dashboard/charts"
	"ecommerce-dashboard/models"
)

var (
	titleColor = &props.Color{Red: 0x72, Green: 0xBC, Blue: 0xD4}
	mutedColor = &props.Color{Red: 100, Green: 116, Blue: 139}
)

// PDFReport renders a printable report of a view: range, headline totals,
// every chart and the segmentation table.
func PDFReport(v *models.DashboardView) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, v)
	addTotals(m, v.Totals)

	for _, name := range charts.Names {
		png, err := charts.Render(name, v)
		if err != nil {
			return nil, fmt.Errorf("pdf: %w", err)
		}
		addChart(m, png)
	}

	addSegments(m, v.Segments)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate: %w", err)
	}
	return document.GetBytes(), nil
}

func addHeader(m core.Maroto, v *models.DashboardView) {
	m.AddRow(20,
		col.New(12).Add(
			text.New("E-Commerce Public Dashboard", props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  titleColor,
			}),
		),
	)
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("%s to %s", v.Range.Start.Format("2006-01-02"), v.Range.End.Format("2006-01-02")), props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Align:  align.Center,
				Color:  mutedColor,
			}),
		),
	)
	m.AddRow(5)
}

func addTotals(m core.Maroto, t models.Totals) {
	addSection(m, "Overview")

	metrics := []string{
		fmt.Sprintf("Orders: %d", t.TrendOrders),
		fmt.Sprintf("Revenue: %.2f", t.TrendRevenue),
		fmt.Sprintf("Payment rows: %d", t.PaymentRows),
		fmt.Sprintf("Unique customers: %d", t.UniqueCustomers),
	}
	cols := make([]core.Col, 0, len(metrics))
	for _, s := range metrics {
		cols = append(cols, col.New(3).Add(text.New(s, props.Text{Family: fontfamily.Arial, Size: 9})))
	}
	m.AddRow(8, cols...)
	m.AddRow(5)
}

func addChart(m core.Maroto, png []byte) {
	m.AddRow(80,
		col.New(12).Add(
			image.NewFromBytes(png, extension.Png),
		),
	)
	m.AddRow(5)
}

func addSegments(m core.Maroto, rows []models.SegmentRow) {
	addSection(m, "Highest Value Customer Groups")

	if len(rows) == 0 {
		m.AddRow(8, col.New(12).Add(text.New("No data", props.Text{Family: fontfamily.Arial, Size: 9, Color: mutedColor})))
		return
	}

	headers := []string{"Payment Type", "Tier", "Orders", "Customers", "Top States", "Mean Payment"}
	cols := make([]core.Col, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, col.New(2).Add(text.New(h, props.Text{Family: fontfamily.Arial, Size: 8, Style: fontstyle.Bold})))
	}
	m.AddRow(8, cols...)

	for _, r := range rows {
		cells := []string{
			r.PaymentType,
			r.ValueTier,
			fmt.Sprintf("%d", r.TotalOrders),
			fmt.Sprintf("%d", r.UniqueCustomers),
			r.TopStates,
			fmt.Sprintf("%.2f", r.MeanPayment),
		}
		cols := make([]core.Col, 0, len(cells))
		for _, c := range cells {
			cols = append(cols, col.New(2).Add(text.New(c, props.Text{Family: fontfamily.Arial, Size: 8})))
		}
		m.AddRow(8, cols...)
	}
}

func addSection(m core.Maroto, title string) {
	m.AddRow(8,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
			}),
		),
	)
}
