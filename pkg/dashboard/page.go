package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log/slog"

	"github.com/gnames/idmdash/pkg/idm"
	"github.com/gnames/idmdash/pkg/render"
	"github.com/gnames/idmdash/pkg/templates"
)

var page = template.Must(
	template.New("dashboard").Funcs(template.FuncMap{
		"percent": func(f float64) string {
			return fmt.Sprintf("%.0f%%", f*100)
		},
		"count": func(f *float64) string {
			if f == nil {
				return "sin dato"
			}
			return fmt.Sprintf("%.0f", *f)
		},
	}).Parse(templates.DashboardHTML),
)

type gaugeView struct {
	Label string
	Tier  string
	SVG   template.HTML
}

type pageData struct {
	Static    bool
	Selection Selection
	Filters   idm.Filters
	Gauges    []gaugeView
	Chart     template.HTML
	ChartName string
	MapError  string
	GeoJSON   template.JS
	Ranking   render.RankingVisual
}

// Page writes the complete dashboard as HTML. A static page has no
// selection form, it is used for exported snapshots of a selection.
func Page(w io.Writer, m RenderModel, f idm.Filters, static bool) error {
	data := pageData{
		Static:    static,
		Selection: m.Selection,
		Filters:   f,
		Gauges:    make([]gaugeView, len(m.Gauges)),
		ChartName: m.TimeSeries.Title,
		MapError:  m.MapError,
		Ranking:   m.Ranking,
	}

	for i, g := range m.Gauges {
		svg, err := g.SVG()
		if err != nil {
			return RenderError("gauge "+g.Scope, err)
		}
		data.Gauges[i] = gaugeView{
			Label: g.Label,
			Tier:  g.Band.Tier.Label(),
			SVG:   inlineSVG(svg),
		}
	}

	chart, err := m.TimeSeries.SVG()
	if err != nil {
		return RenderError("time series", err)
	}
	data.Chart = inlineSVG(chart)

	// a broken map stays inside its section
	if data.MapError == "" {
		geo, err := m.Map.GeoJSON()
		if err != nil {
			slog.Error("Cannot draw facility map", "error", err)
			data.MapError = "No se pudo dibujar el mapa: " + err.Error()
		} else {
			data.GeoJSON = template.JS(geo)
		}
	}

	var buf bytes.Buffer
	if err = page.Execute(&buf, data); err != nil {
		return RenderError("page", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// inlineSVG drops the XML prolog so the drawing can sit inside HTML.
func inlineSVG(b []byte) template.HTML {
	if i := bytes.Index(b, []byte("<svg")); i > 0 {
		b = b[i:]
	}
	return template.HTML(b)
}
