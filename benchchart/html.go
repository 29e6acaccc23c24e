// Copyright 2020 The benchplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"html/template"
	"io"

	"benchplot/aliasing"
)

// A View pairs one rendered chart with the pivot behind it.
type View struct {
	Title string
	Image string // chart file name, relative to the report
	Pivot *aliasing.Pivot
}

var htmlTemplate = template.Must(template.New("").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>4K aliasing benchmarks</title>
</head>
<body>
{{- range .}}
<h2>{{.Title}}</h2>
<img src="{{.Image}}" alt="{{.Title}}">
<table border="1">
<tr><th>r/w offset{{range .Benchmarks}}<th colspan="2">{{.}}{{end}}
<tr><th>{{range .Benchmarks}}<th>score<th>error{{end}}
{{range .Rows -}}
<tr><td>{{.Offset}}{{range .Cells}}<td>{{.}}{{end}}
{{end -}}
</table>
{{end}}
</body>
</html>
`))

// htmlView is the template payload for one pivot table.
type htmlView struct {
	Title      string
	Image      string
	Benchmarks []string
	Rows       []htmlRow
}

type htmlRow struct {
	Offset string
	Cells  []string // score, error pairs in benchmark order
}

// WriteHTML writes an HTML report showing each view's chart followed
// by its pivot table.
func WriteHTML(w io.Writer, views []View) error {
	data := make([]htmlView, len(views))
	for i, v := range views {
		hv := htmlView{Title: v.Title, Image: v.Image, Benchmarks: v.Pivot.Benchmarks}
		for j, off := range v.Pivot.Offsets {
			row := htmlRow{Offset: formatCell(off)}
			for _, bench := range v.Pivot.Benchmarks {
				row.Cells = append(row.Cells,
					formatCell(v.Pivot.Score[bench][j]),
					formatCell(v.Pivot.Error[bench][j]))
			}
			hv.Rows = append(hv.Rows, row)
		}
		data[i] = hv
	}
	return htmlTemplate.Execute(w, data)
}
