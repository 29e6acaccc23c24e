// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeColumn(t *testing.T) {
	test := func(raw, want string) {
		t.Helper()
		if got := NormalizeColumn(raw); got != want {
			t.Errorf("NormalizeColumn(%q) = %q, want %q", raw, got, want)
		}
	}

	test("Score Error (99.9%)", "error")
	test("Benchmark", "benchmark")
	test("Score", "score")
	test("Param: sourcesize", "sourcesize")
	test("param: targetsize", "targetsize")
	test("Param: padding", "padding")
	test("Mode", "mode")
	// The marker is removed wherever it appears, not just as a
	// prefix.
	test("x param: y", "x y")
}

func TestRead(t *testing.T) {
	const input = `Benchmark,Mode,Score,Score Error (99.9%),Param: sourcesize
intersectionNoOffset,thrpt,10.5,0.25,100
intersectionWithConstantOffset256,thrpt,9,0.5,100
`
	tab, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	wantCols := []string{"benchmark", "mode", "score", "error", "sourcesize"}
	if got := tab.Columns(); !reflect.DeepEqual(got, wantCols) {
		t.Errorf("columns = %q, want %q", got, wantCols)
	}
	if tab.Len() != 2 {
		t.Fatalf("got %d rows, want 2", tab.Len())
	}

	bench, ok := tab.Column("benchmark").([]string)
	if !ok {
		t.Fatalf("benchmark column is %T, want []string", tab.Column("benchmark"))
	}
	if want := []string{"intersectionNoOffset", "intersectionWithConstantOffset256"}; !reflect.DeepEqual(bench, want) {
		t.Errorf("benchmark = %q, want %q", bench, want)
	}

	score, ok := tab.Column("score").([]float64)
	if !ok {
		t.Fatalf("score column is %T, want []float64", tab.Column("score"))
	}
	if want := []float64{10.5, 9}; !reflect.DeepEqual(score, want) {
		t.Errorf("score = %v, want %v", score, want)
	}

	errs, ok := tab.Column("error").([]float64)
	if !ok {
		t.Fatalf("error column is %T, want []float64", tab.Column("error"))
	}
	if want := []float64{0.25, 0.5}; !reflect.DeepEqual(errs, want) {
		t.Errorf("error = %v, want %v", errs, want)
	}

	if _, ok := tab.Column("mode").([]string); !ok {
		t.Errorf("mode column is %T, want []string", tab.Column("mode"))
	}
}

func TestReadErrors(t *testing.T) {
	test := func(name, input string) {
		t.Helper()
		if _, err := Read(strings.NewReader(input)); err == nil {
			t.Errorf("%s: Read succeeded, want error", name)
		}
	}

	test("empty input", "")
	test("ragged row", "a,b\n1,2\n3\n")
}

func TestReadHeaderOnly(t *testing.T) {
	tab, err := Read(strings.NewReader("Benchmark,Score\n"))
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 0 {
		t.Errorf("got %d rows, want 0", tab.Len())
	}
	if got, want := tab.Columns(), []string{"benchmark", "score"}; !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %q, want %q", got, want)
	}
}
