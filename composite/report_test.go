package composite

import (
	"fmt"

	"gioui.org/layout"
	"git.sr.ht/~gioverse/datasource/source"
)

type report struct {
	ID   int
	Name string
}

// generateReports returns reports with ids from..to inclusive.
func generateReports(from, to int, name string) []report {
	var out []report
	for id := from; id <= to; id++ {
		out = append(out, report{ID: id, Name: fmt.Sprintf("%s-%d", name, id)})
	}
	return out
}

// reportCell is embedded by the concrete cell types so that each report
// data source dequeues a distinct type.
type reportCell struct {
	reports []report
	paths   []source.IndexPath
}

func (c *reportCell) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Dimensions{}
}

func (c *reportCell) configure(r report, path source.IndexPath) {
	c.reports = append(c.reports, r)
	c.paths = append(c.paths, path)
}

func (c *reportCell) contains(r report, path source.IndexPath) bool {
	for i := range c.reports {
		if c.reports[i] == r && c.paths[i] == path {
			return true
		}
	}
	return false
}

type pdfCell struct{ reportCell }

type textCell struct{ reportCell }

type configurer interface {
	configure(report, source.IndexPath)
}

func newReports[C interface {
	source.Cell
	configurer
}](identifier string, alloc func() C, reports []report) *source.Basic[report, C] {
	ds := source.NewBasic[report](identifier, alloc)
	ds.Values = reports
	ds.Configure = func(v source.View, cell C, r report, path source.IndexPath) {
		cell.configure(r, path)
	}
	return ds
}

func newPDFReports(reports []report) *source.Basic[report, *pdfCell] {
	return newReports("pdf", func() *pdfCell { return &pdfCell{} }, reports)
}

func newTextReports(reports []report) *source.Basic[report, *textCell] {
	return newReports("text", func() *textCell { return &textCell{} }, reports)
}

// mockSelector records the most recent call made to each of its hooks.
type mockSelector[C source.Cell] struct {
	calls map[string]int
	cell  C
	item  report
	path  source.IndexPath
}

func newMockSelector[C source.Cell]() *mockSelector[C] {
	return &mockSelector[C]{calls: make(map[string]int)}
}

func (m *mockSelector[C]) record(hook string, item report, path source.IndexPath) {
	m.calls[hook]++
	m.item = item
	m.path = path
}

func (m *mockSelector[C]) called(hook string) bool {
	return m.calls[hook] > 0
}

func (m *mockSelector[C]) reset() {
	m.calls = make(map[string]int)
}

func (m *mockSelector[C]) Configure(v source.View, cell C, item report, path source.IndexPath) {
	m.record("Configure", item, path)
	m.cell = cell
}

func (m *mockSelector[C]) ShouldHighlight(v source.View, item report, path source.IndexPath) bool {
	m.record("ShouldHighlight", item, path)
	return true
}

func (m *mockSelector[C]) DidHighlight(v source.View, item report, path source.IndexPath) {
	m.record("DidHighlight", item, path)
}

func (m *mockSelector[C]) DidUnhighlight(v source.View, item report, path source.IndexPath) {
	m.record("DidUnhighlight", item, path)
}

func (m *mockSelector[C]) ShouldSelect(v source.View, item report, path source.IndexPath) bool {
	m.record("ShouldSelect", item, path)
	return true
}

func (m *mockSelector[C]) DidSelect(v source.View, item report, path source.IndexPath) {
	m.record("DidSelect", item, path)
}

func (m *mockSelector[C]) ShouldDeselect(v source.View, item report, path source.IndexPath) bool {
	m.record("ShouldDeselect", item, path)
	return true
}

func (m *mockSelector[C]) DidDeselect(v source.View, item report, path source.IndexPath) {
	m.record("DidDeselect", item, path)
}
