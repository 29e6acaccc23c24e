// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders pivoted benchmark series as line charts
// and tabular reports.
package benchchart

import (
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"benchplot/aliasing"
)

// Canvas size of the rendered charts.
const (
	chartWidth  = 15 * vg.Inch
	chartHeight = 10 * vg.Inch
)

// errPoints couples a series' points with its error-bar ranges.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// PNG renders p as a line chart, one line per benchmark with y error
// bars, and writes it to a PNG file at path. Missing cells (NaN) are
// skipped, so a benchmark with holes in its index still draws as one
// line.
func PNG(p *aliasing.Pivot, title, path string) error {
	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = aliasing.RWOffsetCol
	pl.Legend.Top = true

	for i, bench := range p.Benchmarks {
		pts := seriesPoints(p, bench)
		if len(pts.XYs) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(pts.XYs)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		points.Color = line.Color

		bars, err := plotter.NewYErrorBars(pts)
		if err != nil {
			return err
		}
		bars.LineStyle.Color = line.Color

		pl.Add(line, points, bars)
		pl.Legend.Add(bench, line, points)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(chartWidth, chartHeight),
		vgimg.UseBackgroundColor(color.White),
	)}
	pl.Draw(draw.New(can))
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// seriesPoints extracts the finite cells of one benchmark's series.
func seriesPoints(p *aliasing.Pivot, bench string) errPoints {
	var pts errPoints
	scores, errs := p.Score[bench], p.Error[bench]
	for i, off := range p.Offsets {
		if math.IsNaN(scores[i]) {
			continue
		}
		e := errs[i]
		if math.IsNaN(e) {
			e = 0
		}
		pts.XYs = append(pts.XYs, plotter.XY{X: off, Y: scores[i]})
		pts.YErrors = append(pts.YErrors, struct{ Low, High float64 }{e, e})
	}
	return pts
}
