package render

import (
	"fmt"
	"math"

	"github.com/gnames/idmdash/pkg/idm"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Gauge geometry, in points.
const (
	GaugeSize                   = 130
	GaugeInnerRadius            = 45
	GaugeCornerRadius           = 25
	GaugeBackgroundCornerRadius = 20
	GaugeFontSize               = 32
)

// NoDataText is shown by gauges of absent (department, year) pairs.
const NoDataText = "Sin datos"

// Gauge is a donut showing one IDM value over a full ring.
type Gauge struct {
	Scope      string      `json:"scope"`
	Label      string      `json:"label"`
	Department string      `json:"department"`
	Year       int         `json:"year"`
	Value      idm.Value   `json:"value"`
	Band       idm.Banding `json:"band"`
	// Text is drawn in the middle of the ring.
	Text string `json:"text"`
	// Fraction is the part of the ring covered by the value arc.
	Fraction float64 `json:"fraction"`
}

// NewGauge creates the gauge of a looked up value.
func NewGauge(scope idm.Scope, year int, department string, v idm.Value) Gauge {
	res := Gauge{
		Scope:      scope.String(),
		Label:      scope.Label(),
		Department: department,
		Year:       year,
		Value:      v,
		Band:       idm.Band(v),
		Text:       NoDataText,
	}
	if v.Found {
		res.Text = fmt.Sprintf("%d %%", v.IDM)
		res.Fraction = math.Min(math.Max(float64(v.IDM)/100, 0), 1)
	}
	return res
}

// SVG draws the gauge: a ring in the dark shade of the tier, an arc of
// the value in the bright shade and the value in the middle.
func (g Gauge) SVG() ([]byte, error) {
	size := vg.Points(GaugeSize)
	cnv := vgsvg.New(size, size)
	dc := draw.New(cnv)

	center := vg.Point{X: size / 2, Y: size / 2}
	outer := size / 2
	inner := vg.Points(GaugeInnerRadius)

	dark := hexColor(g.Band.Dark, 255)
	bright := hexColor(g.Band.Primary, 255)

	// background ring
	dc.SetColor(dark)
	dc.Fill(ringPath(center, inner, outer, math.Pi/2, -2*math.Pi))

	if g.Fraction > 0 {
		sweep := -2 * math.Pi * g.Fraction
		dc.SetColor(bright)
		dc.Fill(ringPath(center, inner, outer, math.Pi/2, sweep))
		if g.Fraction < 1 {
			capR := min(vg.Points(GaugeCornerRadius), (outer-inner)/2)
			mid := (outer + inner) / 2
			for _, a := range []float64{math.Pi / 2, math.Pi/2 + sweep} {
				dc.Fill(circlePath(polar(center, mid, a), capR))
			}
		}
	}

	sty := draw.TextStyle{
		Color: bright,
		Font: font.From(font.Font{
			Typeface: "Liberation",
			Variant:  "Sans",
			Style:    xfont.StyleItalic,
			Weight:   xfont.WeightBold,
		}, vg.Points(gaugeFontSize(g.Text))),
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
		Handler: plot.DefaultTextHandler,
	}
	dc.FillText(sty, center, g.Text)

	return svgBytes(cnv)
}

// gaugeFontSize shrinks long captions so they fit into the hole.
func gaugeFontSize(txt string) float64 {
	if len(txt) > 5 {
		return GaugeFontSize / 2.5
	}
	return GaugeFontSize
}

func polar(c vg.Point, r vg.Length, angle float64) vg.Point {
	return vg.Point{
		X: c.X + r*vg.Length(math.Cos(angle)),
		Y: c.Y + r*vg.Length(math.Sin(angle)),
	}
}

// ringPath is a closed sector of an annulus. Outer and inner arcs go in
// opposite directions so a full ring keeps its hole.
func ringPath(c vg.Point, inner, outer vg.Length, start, sweep float64) vg.Path {
	var p vg.Path
	p.Move(polar(c, outer, start))
	p.Arc(c, outer, start, sweep)
	p.Line(polar(c, inner, start+sweep))
	p.Arc(c, inner, start+sweep, -sweep)
	p.Close()
	return p
}

func circlePath(c vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(polar(c, r, 0))
	p.Arc(c, r, 0, 2*math.Pi)
	p.Close()
	return p
}
