// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"benchplot/aliasing"
)

// testPivot has a gap in the second benchmark's series and a NaN error
// cell, the shapes PNG and the report writers must tolerate.
func testPivot() *aliasing.Pivot {
	return &aliasing.Pivot{
		Offsets:    []float64{-1200, 848, 1648},
		Benchmarks: []string{"intersectionNoOffset", "intersectionWithConstantOffset256"},
		Score: map[string][]float64{
			"intersectionNoOffset":              {10, 11, 12},
			"intersectionWithConstantOffset256": {9, math.NaN(), math.NaN()},
		},
		Error: map[string][]float64{
			"intersectionNoOffset":              {0.5, math.NaN(), 0.25},
			"intersectionWithConstantOffset256": {0.1, math.NaN(), math.NaN()},
		},
	}
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "throughput.png")
	if err := PNG(testPivot(), "Throughput (ops/μs)", path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("wrote empty PNG")
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output does not start with a PNG signature")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testPivot()); err != nil {
		t.Fatal(err)
	}
	want := `r/w offset,intersectionNoOffset score,intersectionNoOffset error,intersectionWithConstantOffset256 score,intersectionWithConstantOffset256 error
-1200,10,0.5,9,0.1
848,11,,,
1648,12,0.25,,
`
	if got := buf.String(); got != want {
		t.Errorf("WriteCSV:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	views := []View{
		{Title: "Throughput (ops/μs)", Image: "throughput.png", Pivot: testPivot()},
	}
	if err := WriteHTML(&buf, views); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"<h2>Throughput (ops/μs)</h2>",
		`<img src="throughput.png"`,
		"intersectionNoOffset",
		"<td>-1200",
		"<td>0.25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}
