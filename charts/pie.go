package charts

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"ecommerce-dashboard/models"
	"ecommerce-dashboard/services"
)

// pie draws wedges around the origin of a unit data square.
type pie struct {
	values []float64
}

const (
	pieExtent = 1.3
	arcSteps  = 64
)

func (w pie) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)

	total := 0.0
	for _, v := range w.values {
		total += v
	}
	if total == 0 {
		return
	}

	start := math.Pi / 2
	for i, v := range w.values {
		if v == 0 {
			continue
		}
		sweep := 2 * math.Pi * v / total
		steps := int(math.Ceil(arcSteps * sweep / (2 * math.Pi)))
		if steps < 2 {
			steps = 2
		}

		pts := []vg.Point{{X: trX(0), Y: trY(0)}}
		for s := 0; s <= steps; s++ {
			a := start - sweep*float64(s)/float64(steps)
			pts = append(pts, vg.Point{X: trX(math.Cos(a)), Y: trY(math.Sin(a))})
		}
		c.FillPolygon(plotutil.Color(i), pts)
		start -= sweep
	}
}

func (w pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return -pieExtent, pieExtent, -pieExtent, pieExtent
}

// labelPositions places one label just outside the middle of each wedge.
func labelPositions(values []float64) plotter.XYs {
	total := 0.0
	for _, v := range values {
		total += v
	}
	xys := make(plotter.XYs, len(values))
	if total == 0 {
		return xys
	}
	start := math.Pi / 2
	for i, v := range values {
		sweep := 2 * math.Pi * v / total
		mid := start - sweep/2
		xys[i] = plotter.XY{X: 1.15 * math.Cos(mid), Y: 1.15 * math.Sin(mid)}
		start -= sweep
	}
	return xys
}

func statesPie(regions []models.RegionRow) (*plot.Plot, error) {
	p := newPlot("Top 5 States by Orders + Others")
	p.HideAxes()
	if len(regions) == 0 {
		return p, nil
	}

	values := make([]float64, len(regions))
	for i, r := range regions {
		values[i] = float64(r.TotalOrders)
	}
	shares := services.Share(regions)

	labels := make([]string, len(regions))
	for i, r := range regions {
		labels[i] = fmt.Sprintf("%s %.1f%%", r.State, shares[i])
	}

	text, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    labelPositions(values),
		Labels: labels,
	})
	if err != nil {
		return nil, err
	}
	for i := range text.TextStyle {
		text.TextStyle[i].XAlign = draw.XCenter
		text.TextStyle[i].YAlign = draw.YCenter
	}

	p.Add(pie{values: values}, text)
	return p, nil
}
