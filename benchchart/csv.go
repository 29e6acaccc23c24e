// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"benchplot/aliasing"
)

// WriteCSV writes p in wide CSV form: the r/w offset index followed by
// a score and error column per benchmark. NaN cells are written as
// empty fields.
func WriteCSV(w io.Writer, p *aliasing.Pivot) error {
	cw := csv.NewWriter(w)

	header := []string{aliasing.RWOffsetCol}
	for _, bench := range p.Benchmarks {
		header = append(header, bench+" score", bench+" error")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for i, off := range p.Offsets {
		row = append(row[:0], formatCell(off))
		for _, bench := range p.Benchmarks {
			row = append(row, formatCell(p.Score[bench][i]), formatCell(p.Error[bench][i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
