package charts

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ecommerce-dashboard/models"
)

// Names of the charts the dashboard renders.
const (
	Orders    = "orders"
	Revenue   = "revenue"
	States    = "states"
	Recency   = "recency"
	Frequency = "frequency"
	Monetary  = "monetary"
)

// Names lists every chart in page order.
var Names = []string{Orders, Revenue, States, Recency, Frequency, Monetary}

var barColor = color.RGBA{R: 0x72, G: 0xBC, B: 0xD4, A: 0xFF}

const (
	width  = 10 * vg.Inch
	height = 5 * vg.Inch
)

// Render draws the named chart for a view and returns it as PNG bytes.
// Empty data produces a chart with only its title.
func Render(name string, v *models.DashboardView) ([]byte, error) {
	var (
		p   *plot.Plot
		err error
	)
	switch name {
	case Orders:
		p, err = trend("Number of Orders per Month", "Number of Orders", v.OrdersTrend)
	case Revenue:
		p, err = trend("Total Revenue per Month", "Total Revenue", v.RevenueTrend)
	case States:
		p, err = statesPie(v.Regions)
	case Recency:
		p, err = rfmBars("By Recency (days)", v.Ranking.ByRecency, func(r models.RFMRow) float64 { return float64(r.Recency) })
	case Frequency:
		p, err = rfmBars("By Frequency", v.Ranking.ByFrequency, func(r models.RFMRow) float64 { return float64(r.Frequency) })
	case Monetary:
		p, err = rfmBars("By Monetary", v.Ranking.ByMonetary, func(r models.RFMRow) float64 { return r.Monetary })
	default:
		return nil, fmt.Errorf("charts: unknown chart %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("charts: %s: %w", name, err)
	}
	return encode(p, name)
}

// Known reports whether name is a chart Render understands.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(15)
	return p
}

func encode(p *plot.Plot, name string) ([]byte, error) {
	w, h := width, height
	if name == States {
		w = h
	}
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("charts: %s: %w", name, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("charts: %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func trend(title, yLabel string, points []models.TrendPoint) (*plot.Plot, error) {
	p := newPlot(title)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "Jan 2006"}
	if len(points) == 0 {
		return p, nil
	}

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = float64(pt.Month.Unix())
		xys[i].Y = pt.Value
	}

	line, marks, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = barColor
	line.Width = vg.Points(2)
	marks.Color = barColor
	marks.Shape = draw.CircleGlyph{}

	p.Add(plotter.NewGrid(), line, marks)
	return p, nil
}

func rfmBars(title string, rows []models.RFMRow, value func(models.RFMRow) float64) (*plot.Plot, error) {
	p := newPlot(title)
	if len(rows) == 0 {
		return p, nil
	}

	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		values[i] = value(r)
		names[i] = shortID(r.CustomerUniqueID)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return nil, err
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalX(names...)
	p.Y.Min = 0
	return p, nil
}

// shortID keeps customer ids readable under a bar.
func shortID(id string) string {
	if len(id) <= 10 {
		return id
	}
	return id[:8] + ".."
}
