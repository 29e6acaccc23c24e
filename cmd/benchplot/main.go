// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot charts the 4K-aliasing intersection benchmarks.
//
// It reads a benchmark-results CSV (perfnorm.csv by default) and
// writes two charts into the output directory: throughput.png, score
// versus the derived r/w offset for the throughput runs, and
// aliases.png, the ld_blocks_partial.address_alias stall counts over
// the same index. Existing output files are overwritten.
//
// Usage:
//
//	benchplot [-input file] [-dir directory] [-csv] [-html]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"benchplot/aliasing"
	"benchplot/benchchart"
	"benchplot/benchcsv"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: benchplot [flags]

benchplot reads benchmark results from a CSV file and writes the
aliases and throughput comparison charts as PNG files.
`)
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)

	input := flag.String("input", "perfnorm.csv", "read benchmark results from CSV `file`")
	dir := flag.String("dir", ".", "write output files into `directory`")
	csvOut := flag.Bool("csv", false, "also write the pivot tables as CSV files")
	htmlOut := flag.Bool("html", false, "also write an HTML report")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		usage()
		os.Exit(2)
	}

	t, err := benchcsv.ReadFile(*input)
	if err != nil {
		log.Fatal(err)
	}
	aliases, throughput, err := aliasing.Pivots(t)
	if err != nil {
		log.Fatal(err)
	}

	views := []benchchart.View{
		{Title: aliasing.AliasMarker, Image: "aliases.png", Pivot: aliases},
		{Title: "Throughput (ops/μs)", Image: "throughput.png", Pivot: throughput},
	}

	for _, v := range views {
		if err := benchchart.PNG(v.Pivot, v.Title, filepath.Join(*dir, v.Image)); err != nil {
			log.Fatal("writing chart: ", err)
		}
	}

	if *csvOut {
		for _, v := range views {
			name := strings.TrimSuffix(v.Image, ".png") + ".csv"
			if err := writeFile(filepath.Join(*dir, name), func(f *os.File) error {
				return benchchart.WriteCSV(f, v.Pivot)
			}); err != nil {
				log.Fatal("writing pivot CSV: ", err)
			}
		}
	}

	if *htmlOut {
		if err := writeFile(filepath.Join(*dir, "report.html"), func(f *os.File) error {
			return benchchart.WriteHTML(f, views)
		}); err != nil {
			log.Fatal("writing report: ", err)
		}
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
