package ioweb

import (
	"bytes"
	"net/http"

	idmdash "github.com/gnames/idmdash/pkg"
	"github.com/gnames/idmdash/pkg/dashboard"
	"github.com/gnames/idmdash/pkg/idm"
	"github.com/labstack/echo/v4"
)

const (
	mimeSVG     = "image/svg+xml"
	mimeGeoJSON = "application/geo+json"
)

// selectionRequest holds optional query parameters. Absent values are
// taken from the current selection.
type selectionRequest struct {
	Year       int    `query:"year"`
	Department string `query:"department"`
}

func (s *Server) selection(c echo.Context) (dashboard.Selection, error) {
	var req selectionRequest
	if err := c.Bind(&req); err != nil {
		return dashboard.Selection{}, err
	}

	res := s.ctrl.Selection()
	if req.Year != 0 {
		res.Year = req.Year
	}
	if req.Department != "" {
		res.Department = req.Department
	}
	if err := c.Validate(res); err != nil {
		return res, dashboard.InvalidSelectionError(res, err)
	}
	return res, nil
}

func (s *Server) model(c echo.Context) (dashboard.RenderModel, error) {
	sel, err := s.selection(c)
	if err != nil {
		return dashboard.RenderModel{}, err
	}
	return s.ctrl.Recompute(sel), nil
}

// page renders the dashboard. Unlike API routes it changes the current
// selection, the next page without query opens with it.
func (s *Server) page(c echo.Context) error {
	sel, err := s.selection(c)
	if err != nil {
		return err
	}
	m, err := s.ctrl.Select(sel)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = dashboard.Page(&buf, m, s.ctrl.Filters(), false); err != nil {
		return err
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": idmdash.Version,
	})
}

func (s *Server) filters(c echo.Context) error {
	return c.JSON(http.StatusOK, s.ctrl.Filters())
}

func (s *Server) dashboardJSON(c echo.Context) error {
	m, err := s.model(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) gauge(c echo.Context) error {
	scope, ok := idm.ParseScope(c.Param("scope"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound,
			"unknown gauge scope "+c.Param("scope"))
	}
	m, err := s.model(c)
	if err != nil {
		return err
	}
	g, _ := m.Gauge(scope)
	svg, err := g.SVG()
	if err != nil {
		return dashboard.RenderError("gauge "+g.Scope, err)
	}
	return c.Blob(http.StatusOK, mimeSVG, svg)
}

func (s *Server) timeSeries(c echo.Context) error {
	m, err := s.model(c)
	if err != nil {
		return err
	}
	svg, err := m.TimeSeries.SVG()
	if err != nil {
		return dashboard.RenderError("time series", err)
	}
	return c.Blob(http.StatusOK, mimeSVG, svg)
}

func (s *Server) geoJSON(c echo.Context) error {
	m, err := s.model(c)
	if err != nil {
		return err
	}
	if m.MapError != "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, m.MapError)
	}
	res, err := m.Map.GeoJSON()
	if err != nil {
		return dashboard.RenderError("map", err)
	}
	return c.Blob(http.StatusOK, mimeGeoJSON, res)
}

func (s *Server) ranking(c echo.Context) error {
	m, err := s.model(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m.Ranking)
}
