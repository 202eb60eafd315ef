package render

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"time"

	"github.com/gnames/idmdash/pkg/idm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Chart geometry, in points.
const (
	ChartWidth   = 720
	ChartHeight  = 360
	LegendHeight = 28
	// BandAlpha is the opacity of tier bands.
	BandAlpha = 0.2
)

// DefaultPoorFloor is the lower bound of the Poor band.
const DefaultPoorFloor = 40.0

var seriesColors = []string{"#1F77B4", "#FF7F0E", "#2CA02C"}

// SeriesRow is one point of the chart tagged with the name of its
// series.
type SeriesRow struct {
	Tag  string    `json:"tag"`
	Date time.Time `json:"date"`
	IDM  float64   `json:"idm"`
}

// BandArea is a horizontal band that marks a tier on the chart.
type BandArea struct {
	Tier  idm.Tier `json:"tier"`
	Label string   `json:"label"`
	Low   float64  `json:"low"`
	High  float64  `json:"high"`
	Color string   `json:"color"`
	Alpha float64  `json:"alpha"`
}

// Legend describes where the chart legend goes.
type Legend struct {
	Orientation string `json:"orientation"`
	Position    string `json:"position"`
}

// ChartVisual is the time-series chart of a department.
type ChartVisual struct {
	Title      string      `json:"title"`
	Department string      `json:"department"`
	Series     []string    `json:"series"`
	Rows       []SeriesRow `json:"rows"`
	Bands      []BandArea  `json:"bands"`
	Legend     Legend      `json:"legend"`
}

// Bands returns tier bands from the top down. The Poor band starts at
// floor, values below it are not highlighted.
func Bands(floor float64) []BandArea {
	return []BandArea{
		{Tier: idm.Excellent, Low: idm.ExcellentMin, High: 100, Color: "#008000"},
		{Tier: idm.Good, Low: idm.GoodMin, High: idm.ExcellentMin, Color: "#FFFF00"},
		{Tier: idm.Fair, Low: idm.FairMin, High: idm.GoodMin, Color: "#FFA500"},
		{Tier: idm.Poor, Low: floor, High: idm.FairMin, Color: "#FF0000"},
	}
}

// NewTimeSeries gathers hospital, health center and health post series
// of a department. Series are not limited by the selected year.
func NewTimeSeries(
	series map[idm.Scope][]idm.SeriesPoint,
	department string,
	floor float64,
) ChartVisual {
	res := ChartVisual{
		Title:      "Evolución del IDM - " + department,
		Department: department,
		Rows:       []SeriesRow{},
		Bands:      Bands(floor),
		Legend:     Legend{Orientation: "horizontal", Position: "bottom"},
	}
	for i := range res.Bands {
		res.Bands[i].Label = res.Bands[i].Tier.Label()
		res.Bands[i].Alpha = BandAlpha
	}

	for _, s := range idm.SeriesScopes {
		tag := s.SeriesLabel()
		res.Series = append(res.Series, tag)
		pts := idm.FilterSeries(series[s], department)
		slices.SortStableFunc(pts, func(a, b idm.SeriesPoint) int {
			return a.Date.Compare(b.Date)
		})
		for _, v := range pts {
			res.Rows = append(res.Rows, SeriesRow{Tag: tag, Date: v.Date, IDM: v.IDM})
		}
	}
	return res
}

// SVG draws the chart with its legend below the plot area.
func (c ChartVisual) SVG() ([]byte, error) {
	p, err := c.plot()
	if err != nil {
		return nil, err
	}

	w, h := vg.Points(ChartWidth), vg.Points(ChartHeight)
	cnv := vgsvg.New(w, h)
	dc := draw.New(cnv)

	p.Draw(draw.Crop(dc, 0, 0, vg.Points(LegendHeight), 0))
	c.drawLegend(dc)

	return svgBytes(cnv)
}

func (c ChartVisual) xRange() (float64, float64, bool) {
	if len(c.Rows) == 0 {
		return 0, 1, false
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range c.Rows {
		x := float64(v.Date.Unix())
		lo = math.Min(lo, x)
		hi = math.Max(hi, x)
	}
	if lo == hi {
		// a single date still needs some width
		lo -= 15 * 24 * 3600
		hi += 15 * 24 * 3600
	}
	return lo, hi, true
}

func (c ChartVisual) plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "Fecha"
	p.Y.Label.Text = "IDM (%)"

	xmin, xmax, hasData := c.xRange()
	if hasData {
		p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	} else {
		p.X.Tick.Marker = plot.ConstantTicks{}
		p.Title.Text += " (sin datos)"
	}

	ymin, ymax := 100.0, 100.0
	for _, b := range c.Bands {
		ymin = math.Min(ymin, b.Low)
	}

	for _, b := range c.Bands {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: xmin, Y: b.Low}, {X: xmax, Y: b.Low},
			{X: xmax, Y: b.High}, {X: xmin, Y: b.High},
		})
		if err != nil {
			return nil, fmt.Errorf("cannot draw band %s: %w", b.Tier, err)
		}
		poly.Color = hexColor(b.Color, uint8(b.Alpha*255))
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	for i, tag := range c.Series {
		var xys plotter.XYs
		for _, v := range c.Rows {
			if v.Tag != tag {
				continue
			}
			xys = append(xys, plotter.XY{X: float64(v.Date.Unix()), Y: v.IDM})
			ymin = math.Min(ymin, v.IDM)
			ymax = math.Max(ymax, v.IDM)
		}
		if len(xys) == 0 {
			continue
		}
		line, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("cannot draw series %s: %w", tag, err)
		}
		clr := seriesColor(i)
		line.Color = clr
		line.Width = vg.Points(1.5)
		pts.Shape = draw.CircleGlyph{}
		pts.Color = clr
		pts.Radius = vg.Points(2.5)
		p.Add(line, pts)
	}

	p.X.Min, p.X.Max = xmin, xmax
	p.Y.Min, p.Y.Max = ymin, ymax
	return p, nil
}

func seriesColor(i int) color.Color {
	return hexColor(seriesColors[i%len(seriesColors)], 255)
}

type legendEntry struct {
	name string
	line color.Color
	fill color.Color
}

func (c ChartVisual) legendEntries() []legendEntry {
	var res []legendEntry
	for i, v := range c.Series {
		res = append(res, legendEntry{name: v, line: seriesColor(i)})
	}
	for _, b := range c.Bands {
		res = append(res, legendEntry{
			name: b.Label,
			fill: hexColor(b.Color, uint8(b.Alpha*255)),
		})
	}
	return res
}

// drawLegend puts legend entries in one row centered under the plot.
func (c ChartVisual) drawLegend(dc draw.Canvas) {
	sty := draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(font.Font{Typeface: "Liberation", Variant: "Sans"}, vg.Points(10)),
		XAlign:  draw.XLeft,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	thumb := vg.Points(18)
	gap := vg.Points(4)
	space := vg.Points(14)

	entries := c.legendEntries()
	var total vg.Length
	for i, v := range entries {
		total += thumb + gap + sty.Width(v.name)
		if i > 0 {
			total += space
		}
	}

	x := dc.Min.X + (dc.Max.X-dc.Min.X-total)/2
	y := dc.Min.Y + vg.Points(LegendHeight)/2
	for _, v := range entries {
		if v.line != nil {
			ls := draw.LineStyle{Color: v.line, Width: vg.Points(1.5)}
			dc.StrokeLine2(ls, x, y, x+thumb, y)
		} else {
			half := vg.Points(5)
			dc.FillPolygon(v.fill, []vg.Point{
				{X: x, Y: y - half}, {X: x + thumb, Y: y - half},
				{X: x + thumb, Y: y + half}, {X: x, Y: y + half},
			})
		}
		dc.FillText(sty, vg.Point{X: x + thumb + gap, Y: y}, v.name)
		x += thumb + gap + sty.Width(v.name) + space
	}
}
