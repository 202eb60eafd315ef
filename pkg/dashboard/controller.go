package dashboard

import (
	"log/slog"
	"sync"

	"github.com/gnames/idmdash/pkg/idm"
	"github.com/gnames/idmdash/pkg/render"
)

// RenderModel is everything the dashboard shows for one selection.
type RenderModel struct {
	Selection Selection        `json:"selection"`
	Gauges    []render.Gauge   `json:"gauges"`
	Map       render.MapVisual `json:"map"`
	// MapError explains why the map has no markers when the facility
	// dataset failed validation.
	MapError   string               `json:"map_error,omitempty"`
	TimeSeries render.ChartVisual   `json:"time_series"`
	Ranking    render.RankingVisual `json:"ranking"`
}

// Gauge returns the gauge of a scope.
func (m RenderModel) Gauge(s idm.Scope) (render.Gauge, bool) {
	for _, v := range m.Gauges {
		if v.Scope == s.String() {
			return v, true
		}
	}
	return render.Gauge{}, false
}

// Controller keeps the selection state and recomputes the dashboard.
type Controller struct {
	data      *Data
	opts      Options
	validator *Validator

	mu  sync.RWMutex
	sel Selection
}

// New creates a Controller with the default selection.
func New(data *Data, opts Options) *Controller {
	if opts.TopLimit <= 0 {
		opts.TopLimit = DefaultOptions().TopLimit
	}
	if opts.PoorFloor <= 0 || opts.PoorFloor >= idm.FairMin {
		opts.PoorFloor = render.DefaultPoorFloor
	}
	if opts.Centering != render.CenterFirstRecord {
		opts.Centering = render.CenterNational
	}
	res := &Controller{
		data:      data,
		opts:      opts,
		validator: NewValidator(data.Filters),
	}
	res.sel = res.Default()
	return res
}

// Filters returns years and departments a user can choose from.
func (c *Controller) Filters() idm.Filters {
	return c.data.Filters
}

// Validator returns the selection validator of the controller.
func (c *Controller) Validator() *Validator {
	return c.validator
}

// Default returns the selection shown before a user picks anything:
// the configured year and department when they are offered, the
// latest year and the first department otherwise.
func (c *Controller) Default() Selection {
	f := c.data.Filters
	res := Selection{Year: f.LatestYear()}
	if f.HasYear(c.opts.DefaultYear) {
		res.Year = c.opts.DefaultYear
	}
	switch {
	case f.HasDepartment(c.opts.DefaultDepartment):
		res.Department = c.opts.DefaultDepartment
	case len(f.Departments) > 0:
		res.Department = f.Departments[0]
	}
	return res
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sel
}

// Validate checks that a selection uses offered values.
func (c *Controller) Validate(sel Selection) error {
	if err := c.validator.Validate(sel); err != nil {
		return InvalidSelectionError(sel, err)
	}
	return nil
}

// Select changes the selection and recomputes the dashboard. Invalid
// selections leave the state unchanged.
func (c *Controller) Select(sel Selection) (RenderModel, error) {
	if err := c.Validate(sel); err != nil {
		return RenderModel{}, err
	}
	c.mu.Lock()
	c.sel = sel
	c.mu.Unlock()

	slog.Debug("Selection changed", "year", sel.Year, "department", sel.Department)
	return c.Recompute(sel), nil
}

// Recompute builds the complete render model of a selection. It does
// not validate the selection: values outside of the data simply
// produce NotFound gauges and empty visuals.
func (c *Controller) Recompute(sel Selection) RenderModel {
	res := RenderModel{
		Selection: sel,
		Gauges:    make([]render.Gauge, len(idm.Scopes)),
	}

	for i, s := range idm.Scopes {
		v := idm.Lookup(c.data.Annual[s], sel.Year, sel.Department)
		res.Gauges[i] = render.NewGauge(s, sel.Year, sel.Department, v)
	}

	if c.data.GeoErr != nil {
		res.Map = render.EmptyMap()
		res.MapError = idm.ErrorMessage(c.data.GeoErr)
	} else {
		res.Map = render.NewMap(
			c.data.Facilities, sel.Year, sel.Department, c.opts.Centering,
		)
	}

	res.TimeSeries = render.NewTimeSeries(
		c.data.Series, sel.Department, c.opts.PoorFloor,
	)
	res.Ranking = render.NewRanking(
		c.data.Shortages, sel.Year, sel.Department, c.opts.TopLimit,
	)
	return res
}
