// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads benchmark results from CSV files into
// column-oriented tables.
//
// The expected input is the CSV report written by a benchmark harness:
// one header row naming the columns, then one row per measurement.
// Read normalizes the header and coerces every column whose cells all
// parse as numbers to []float64; other columns are kept as []string.
package benchcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// rawErrorColumn is the header cell the harness uses for the width of
// the 99.9% confidence interval around the score.
const rawErrorColumn = "Score Error (99.9%)"

// NormalizeColumn returns the canonical name for a raw header cell.
// The score-error column is renamed "error"; every other name is
// lowercased and has the "param: " marker the harness puts in front of
// parameter columns removed.
func NormalizeColumn(name string) string {
	if name == rawErrorColumn {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(name), "param: ", "")
}

// ReadFile reads the CSV results file at path. See Read.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read reads CSV benchmark results from r into a table. The first
// record is the header; its cells are normalized with NormalizeColumn.
// If two raw names normalize to the same column name, the last one
// wins.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("no header row")
	}
	header, rows := recs[0], recs[1:]

	var b table.Builder
	for i, name := range header {
		cells := make([]string, len(rows))
		for j, row := range rows {
			cells[j] = row[i]
		}
		col := NormalizeColumn(name)
		if nums, ok := coerce(cells); ok {
			b.Add(col, nums)
		} else {
			b.Add(col, cells)
		}
	}
	return b.Done(), nil
}

// coerce converts cells to float64s if every cell parses as a number.
func coerce(cells []string) ([]float64, bool) {
	if len(cells) == 0 {
		return nil, false
	}
	nums := make([]float64, len(cells))
	for i, s := range cells {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		nums[i] = v
	}
	return nums, true
}
