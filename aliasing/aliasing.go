// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aliasing derives the 4K-aliasing comparison views from raw
// intersection benchmark results.
//
// The benchmarks measure set-intersection runs at fixed offsets
// between the source and target arrays (0, 256, 512 and 768 words),
// once as plain throughput runs and once perf-normalized against the
// ld_blocks_partial.address_alias stall counter. This package tags
// each row with its offset, derives the "r/w offset" distance metric,
// splits the rows into the two views, and pivots each view into
// per-benchmark series keyed by that metric.
package aliasing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-gg/table"
)

// AliasMarker is the substring that identifies rows measuring the
// ld_blocks_partial.address_alias counter rather than throughput.
const AliasMarker = "ld_blocks_partial.address_alias"

// RWOffsetCol is the name of the derived distance column: the gap, in
// bits, between the read and write positions of the intersection loop.
const RWOffsetCol = "r/w offset"

// benchOffsets maps each measured benchmark name to the constant
// offset, in words, between its source and target arrays. Each variant
// appears twice: once plain and once suffixed with the alias counter.
var benchOffsets = map[string]float64{}

func init() {
	base := map[string]float64{
		"intersectionNoOffset":              0,
		"intersectionWithConstantOffset0":   0,
		"intersectionWithConstantOffset256": 256,
		"intersectionWithConstantOffset512": 512,
		"intersectionWithConstantOffset768": 768,
	}
	for name, off := range base {
		benchOffsets[name] = off
		benchOffsets[name+":"+AliasMarker] = off
	}
}

// Offset returns the source/target offset for a measured benchmark
// name, or NaN if the name is not one of the known variants. Rows with
// a NaN offset drop out of both pivots.
func Offset(name string) float64 {
	if off, ok := benchOffsets[name]; ok {
		return off
	}
	return math.NaN()
}

// requiredCols must be present in the input table. All but
// "benchmark" must be numeric.
var requiredCols = []string{"benchmark", "score", "error", "sourcesize", "targetsize", "padding"}

// droppedCols are harness metadata with no use downstream. They must
// be present in the input and are removed by Transform.
var droppedCols = []string{"mode", "threads", "samples", "unit"}

// Transform prepares a normalized result table (see package benchcsv)
// for pivoting. It removes the metadata columns, adds an "offset"
// column from the benchmark name, zeroes the error of alias-counter
// rows, and adds the derived r/w offset column.
//
// The offset and size parameter columns stay in the returned table;
// nothing downstream reads them, but the original analysis carried
// them through and so does this one.
func Transform(t *table.Table) (*table.Table, error) {
	if t.Len() == 0 {
		return nil, errors.New("no benchmark rows")
	}
	if err := checkColumns(t); err != nil {
		return nil, err
	}

	g := table.Grouping(t)
	for _, col := range droppedCols {
		g = table.Remove(g, col)
	}

	names := t.MustColumn("benchmark").([]string)

	offs := make([]float64, len(names))
	for i, name := range names {
		offs[i] = Offset(name)
	}

	// The confidence intervals reported for the perf-normalized
	// stall counts are not meaningful; zero them so those series
	// render without error bars.
	errs := append([]float64(nil), t.MustColumn("error").([]float64)...)
	for i, name := range names {
		if strings.Contains(name, AliasMarker) {
			errs[i] = 0
		}
	}

	src := t.MustColumn("sourcesize").([]float64)
	pad := t.MustColumn("padding").([]float64)
	rw := make([]float64, len(names))
	for i := range rw {
		rw[i] = (src[i]-offs[i]+pad[i])*8 + 16
	}

	nt := table.NewBuilder(g.Table(table.RootGroupID)).
		Add("error", errs).
		Add("offset", offs).
		Add(RWOffsetCol, rw).
		Done()
	return nt, nil
}

func checkColumns(t *table.Table) error {
	for _, col := range requiredCols {
		if t.Column(col) == nil {
			return fmt.Errorf("missing column %q", col)
		}
	}
	for _, col := range droppedCols {
		if t.Column(col) == nil {
			return fmt.Errorf("missing column %q", col)
		}
	}
	if _, ok := t.Column("benchmark").([]string); !ok {
		return fmt.Errorf("column %q is not a string column", "benchmark")
	}
	for _, col := range requiredCols[1:] {
		if _, ok := t.Column(col).([]float64); !ok {
			return fmt.Errorf("column %q is not numeric", col)
		}
	}
	return nil
}
