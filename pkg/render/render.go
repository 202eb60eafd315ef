// Package render turns filtered IDM data into visual models: gauges,
// the facility map, the time-series chart and the shortage ranking.
//
// Models are plain data that can be sent as JSON. Gauges and the chart
// can also draw themselves as SVG using gonum/plot.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"gonum.org/v1/plot/vg/vgsvg"
)

// svgBytes serializes a finished SVG canvas.
func svgBytes(c *vgsvg.Canvas) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("cannot write svg: %w", err)
	}
	return buf.Bytes(), nil
}

// hexColor parses "#RRGGBB" colors of the palette.
func hexColor(s string, alpha uint8) color.NRGBA {
	res := color.NRGBA{A: alpha}
	if len(s) != 7 || s[0] != '#' {
		return res
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return res
	}
	res.R = uint8(v >> 16)
	res.G = uint8(v >> 8)
	res.B = uint8(v)
	return res
}
