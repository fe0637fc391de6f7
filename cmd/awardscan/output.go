package main

import (
	"io"
	"strconv"
	"strings"

	"github.com/cjubb39/awardscan"
	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// renderRecords prints records as a table with one column per attribute
// found in any record.
func renderRecords(w io.Writer, records []awardscan.Record) {
	var columns awardscan.CellValue
	for _, r := range records {
		for _, k := range r.Keys() {
			columns.Add(k)
		}
	}

	t := newTable(w)
	header := table.Row{}
	for _, c := range columns.Values() {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, r := range records {
		row := table.Row{}
		for _, c := range columns.Values() {
			row = append(row, r[c])
		}
		t.AppendRow(row)
	}
	t.Render()
	io.WriteString(w, strconv.Itoa(len(records))+" records\n")
}

func renderPeople(w io.Writer, people []awardscan.Person) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Name", "Movie", "Link"})
	for _, p := range people {
		t.AppendRow(table.Row{p.Name, p.Movie, p.Link})
	}
	t.Render()
}

func renderList(w io.Writer, items []string) {
	io.WriteString(w, strings.Join(items, "\n"))
	if len(items) > 0 {
		io.WriteString(w, "\n")
	}
}
