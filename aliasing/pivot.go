// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aliasing

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
)

// A Pivot is the wide form of one comparison view: for each distinct
// r/w offset, the score and error of every benchmark at that offset.
// Duplicate cells are aggregated by mean; cells with no sample are
// NaN.
type Pivot struct {
	// Offsets is the row index, in ascending order.
	Offsets []float64

	// Benchmarks is the column index, in lexical order.
	Benchmarks []string

	// Score and Error map each benchmark to its series, aligned
	// with Offsets.
	Score map[string][]float64
	Error map[string][]float64
}

// Pivots transforms a normalized result table (see Transform) and
// splits it into the two comparison views: the alias-counter rows, and
// the throughput rows with error >= 1.0 discarded as noise.
func Pivots(t *table.Table) (aliases, throughput *Pivot, err error) {
	t, err = Transform(t)
	if err != nil {
		return nil, nil, err
	}

	isAlias := func(name string) bool { return strings.Contains(name, AliasMarker) }
	alias := table.Filter(t, isAlias, "benchmark")
	thrpt := table.Filter(t, func(name string) bool { return !isAlias(name) }, "benchmark")
	thrpt = table.Filter(thrpt, func(e float64) bool { return e < 1.0 }, "error")

	if aliases, err = makePivot(alias); err != nil {
		return nil, nil, fmt.Errorf("alias view: %w", err)
	}
	if throughput, err = makePivot(thrpt); err != nil {
		return nil, nil, fmt.Errorf("throughput view: %w", err)
	}
	return aliases, throughput, nil
}

// makePivot reshapes rows into one row per distinct r/w offset with a
// column pair per benchmark. Rows whose benchmark name was not
// recognized have a NaN r/w offset and are excluded.
func makePivot(g table.Grouping) (*Pivot, error) {
	g = table.Filter(g, func(off float64) bool { return !math.IsNaN(off) }, RWOffsetCol)
	if rowCount(g) == 0 {
		return nil, errors.New("no rows to pivot")
	}
	g = table.SortBy(g, RWOffsetCol, "benchmark")
	g = ggstat.Agg(RWOffsetCol, "benchmark")(ggstat.AggMean("score", "error")).F(g)

	ser := &series{across: "benchmark", values: []string{"mean score", "mean error"}}
	g = ggstat.Agg(RWOffsetCol)(ser.agg).F(g)

	t := g.Table(table.RootGroupID)
	p := &Pivot{
		Offsets:    t.MustColumn(RWOffsetCol).([]float64),
		Benchmarks: ser.prefixes,
		Score:      make(map[string][]float64),
		Error:      make(map[string][]float64),
	}
	for _, bench := range p.Benchmarks {
		p.Score[bench] = t.MustColumn(bench + "/mean score").([]float64)
		p.Error[bench] = t.MustColumn(bench + "/mean error").([]float64)
	}
	return p, nil
}

func rowCount(g table.Grouping) int {
	n := 0
	for _, gid := range g.Tables() {
		n += g.Table(gid).Len()
	}
	return n
}

// series reshapes benchmark rows into columns, one "<benchmark>/<value>"
// column per distinct benchmark, filling NaN where a benchmark has no
// sample at an offset. It is used with ggstat.Agg, which calls agg with
// the input grouped by r/w offset; each group becomes one output row.
type series struct {
	across string
	values []string

	// prefixes is the sorted set of distinct across values, filled
	// in by agg.
	prefixes []string
}

func (s *series) agg(input table.Grouping, output *table.Builder) {
	var prefixes []string
	rows := len(input.Tables())
	columns := make(map[string][]float64)
	for i, gid := range input.Tables() {
		var vs [][]float64
		for _, col := range s.values {
			vs = append(vs, input.Table(gid).MustColumn(col).([]float64))
		}
		names := input.Table(gid).MustColumn(s.across).([]string)
		for j, name := range names {
			for k, col := range s.values {
				key := name + "/" + col
				if columns[key] == nil {
					if k == 0 {
						prefixes = append(prefixes, name)
					}
					columns[key] = make([]float64, rows)
					for i := range columns[key] {
						columns[key][i] = math.NaN()
					}
				}
				columns[key][i] = vs[k][j]
			}
		}
	}
	sort.Strings(prefixes)
	s.prefixes = prefixes
	for _, name := range prefixes {
		for _, col := range s.values {
			output.Add(name+"/"+col, columns[name+"/"+col])
		}
	}
}
