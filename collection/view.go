/*
Package collection hosts a source.DataSource in a Gio window.

View flattens the sections of its data source into the rows of a
vertically scrolling list, optionally framing each section with a header
and a footer supplementary view. Cells are sized by the data source and
persist across frames: View hands the same cell back for the same reuse
identifier and index path until Reload is called, much like a list.Manager
keeps element state by serial.

Highlight and selection follow the data source's Should* hooks: a press
highlights an item, a click toggles its selection.
*/
package collection

import (
	"fmt"
	"sort"

	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/datasource/debug"
	chatlayout "git.sr.ht/~gioverse/datasource/layout"
	"git.sr.ht/~gioverse/datasource/source"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

type reuseKey struct {
	kind, identifier string
}

type cellKey struct {
	reuseKey
	path source.IndexPath
}

type rowKind uint8

const (
	itemRow rowKind = iota
	headerRow
	footerRow
)

// row is one entry of the flattened list.
type row struct {
	kind rowKind
	path source.IndexPath
}

// View is a collection widget presenting a source.DataSource.
//
// Cells handed to the View by allocators must be comparable, since the
// View maps them back to the paths they present.
type View struct {
	// Source supplies sections, items and cells.
	Source source.DataSource
	// Headers and Footers request a source.Header or source.Footer
	// supplementary view for every section.
	Headers, Footers bool
	// Multiple allows more than one item to be selected at a time. When
	// false, selecting an item deselects the previous selection.
	Multiple bool
	// Spacing separates consecutive rows.
	Spacing chatlayout.Spacing
	// Style colors highlighted and selected items.
	Style Style
	// Invalidator triggers a new frame in the window displaying the
	// collection.
	Invalidator func()
	// Debug outlines every cell and labels it with its path.
	Debug bool
	// List holds the scroll state.
	widget.List

	registered  bool
	rows        []row
	allocs      map[reuseKey]source.Allocator
	cells       map[cellKey]source.Cell
	paths       map[source.Cell]source.IndexPath
	clicks      map[source.IndexPath]*widget.Clickable
	selected    map[source.IndexPath]bool
	highlighted map[source.IndexPath]bool
	// refused holds pressed items whose highlight the source refused,
	// until the press ends.
	refused map[source.IndexPath]bool
}

var _ source.View = (*View)(nil)

// New constructs a View presenting src. This constructor will panic if
// src is nil.
func New(src source.DataSource) *View {
	if src == nil {
		panic(fmt.Errorf("must provide a data source"))
	}
	return &View{
		Source:      src,
		List:        widget.List{List: layout.List{Axis: layout.Vertical}},
		allocs:      make(map[reuseKey]source.Allocator),
		cells:       make(map[cellKey]source.Cell),
		paths:       make(map[source.Cell]source.IndexPath),
		clicks:      make(map[source.IndexPath]*widget.Clickable),
		selected:    make(map[source.IndexPath]bool),
		highlighted: make(map[source.IndexPath]bool),
		refused:     make(map[source.IndexPath]bool),
	}
}

func (v *View) Register(identifier string, alloc source.Allocator) {
	v.register(reuseKey{identifier: identifier}, alloc)
}

func (v *View) RegisterSupplementary(kind, identifier string, alloc source.Allocator) {
	v.register(reuseKey{kind: kind, identifier: identifier}, alloc)
}

func (v *View) register(key reuseKey, alloc source.Allocator) {
	if alloc == nil {
		panic(fmt.Errorf("collection: nil allocator for %q", key.identifier))
	}
	v.allocs[key] = alloc
}

func (v *View) Dequeue(identifier string, path source.IndexPath) source.Cell {
	return v.dequeue(cellKey{reuseKey: reuseKey{identifier: identifier}, path: path})
}

func (v *View) DequeueSupplementary(kind, identifier string, path source.IndexPath) source.Cell {
	return v.dequeue(cellKey{reuseKey: reuseKey{kind: kind, identifier: identifier}, path: path})
}

func (v *View) dequeue(key cellKey) source.Cell {
	if cell, ok := v.cells[key]; ok {
		return cell
	}
	alloc, ok := v.allocs[key.reuseKey]
	if !ok {
		if key.kind == "" {
			panic(fmt.Errorf("collection: no cell registered for identifier %q", key.identifier))
		}
		panic(fmt.Errorf("collection: no %s registered for identifier %q", key.kind, key.identifier))
	}
	cell := alloc()
	v.cells[key] = cell
	v.paths[cell] = key.path
	return cell
}

func (v *View) IndexPath(cell source.Cell) (source.IndexPath, bool) {
	path, ok := v.paths[cell]
	return path, ok
}

func (v *View) IsSelected(path source.IndexPath) bool {
	return v.selected[path]
}

func (v *View) Invalidate() {
	if v.Invalidator != nil {
		v.Invalidator()
	}
}

// Selected returns the selected paths in section-major order.
func (v *View) Selected() []source.IndexPath {
	out := make([]source.IndexPath, 0, len(v.selected))
	for path := range v.selected {
		out = append(out, path)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Highlighted reports whether the item at path is highlighted.
func (v *View) Highlighted(path source.IndexPath) bool {
	return v.highlighted[path]
}

// Reload discards every cell, the selection and the highlight. Call it
// after the data source's contents change in a way that moves items to
// different paths.
func (v *View) Reload() {
	v.cells = make(map[cellKey]source.Cell)
	v.paths = make(map[source.Cell]source.IndexPath)
	v.clicks = make(map[source.IndexPath]*widget.Clickable)
	v.selected = make(map[source.IndexPath]bool)
	v.highlighted = make(map[source.IndexPath]bool)
	v.refused = make(map[source.IndexPath]bool)
	v.Invalidate()
}

// UpdatedLen registers the data source on first use, rebuilds the list of
// rows from the data source's current counts and returns its length.
func (v *View) UpdatedLen() int {
	if !v.registered {
		v.Source.Register(v)
		v.registered = true
	}
	v.rows = v.rows[:0]
	for s := 0; s < v.Source.Sections(); s++ {
		if v.Headers {
			v.rows = append(v.rows, row{kind: headerRow, path: source.Path(s, 0)})
		}
		for i, n := 0, v.Source.Items(s); i < n; i++ {
			v.rows = append(v.rows, row{kind: itemRow, path: source.Path(s, i)})
		}
		if v.Footers {
			v.rows = append(v.rows, row{kind: footerRow, path: source.Path(s, 0)})
		}
	}
	return len(v.rows)
}

// Layout the collection.
func (v *View) Layout(gtx C, th *material.Theme) D {
	return material.List(th, &v.List).Layout(gtx, v.UpdatedLen(), func(gtx C, index int) D {
		return v.Spacing.Layout(gtx, func(gtx C) D {
			return v.layoutRow(gtx, th, index)
		})
	})
}

func (v *View) layoutRow(gtx C, th *material.Theme, index int) D {
	r := v.rows[index]
	switch r.kind {
	case headerRow, footerRow:
		kind := source.Header
		if r.kind == footerRow {
			kind = source.Footer
		}
		size := v.Source.SupplementarySize(v, kind, r.path)
		cell := v.Source.Supplementary(v, kind, r.path)
		return v.layoutCell(gtx, th, fmt.Sprintf("%s %d", kind, r.path.Section), size, cell)
	default:
		return v.layoutItem(gtx, th, r.path)
	}
}

func (v *View) layoutItem(gtx C, th *material.Theme, path source.IndexPath) D {
	click := v.clickable(path)
	v.update(path, click)
	size := v.Source.Size(v, path)
	cell := v.Source.Cell(v, path)
	bg := v.Style.background(v.highlighted[path], v.selected[path])
	return click.Layout(gtx, func(gtx C) D {
		return fill(gtx, bg, func(gtx C) D {
			return v.layoutCell(gtx, th, fmt.Sprintf("%d.%d", path.Section, path.Item), size, cell)
		})
	})
}

// layoutCell lays cell out at exactly size. A zero width fills the
// available width.
func (v *View) layoutCell(gtx C, th *material.Theme, label string, size source.Size, cell source.Cell) D {
	px := size.Point(gtx.Metric)
	if px.X <= 0 || px.X > gtx.Constraints.Max.X {
		px.X = gtx.Constraints.Max.X
	}
	gtx.Constraints = layout.Exact(px)
	w := func(gtx C) D {
		dims := cell.Layout(gtx)
		return D{Size: px, Baseline: dims.Baseline}
	}
	if v.Debug {
		return debug.Label(gtx, th, label, w)
	}
	return w(gtx)
}

func (v *View) clickable(path source.IndexPath) *widget.Clickable {
	click, ok := v.clicks[path]
	if !ok {
		click = new(widget.Clickable)
		v.clicks[path] = click
	}
	return click
}

// update translates the pointer state of an item's clickable into
// highlight and selection changes.
func (v *View) update(path source.IndexPath, click *widget.Clickable) {
	v.track(path, click.Pressed())
	for click.Clicked() {
		v.Tap(path)
	}
}

// track follows the pressed state of an item across frames. The source is
// asked once per press whether the item may be highlighted.
func (v *View) track(path source.IndexPath, pressed bool) {
	if !pressed {
		delete(v.refused, path)
		v.Release(path)
		return
	}
	if v.highlighted[path] || v.refused[path] {
		return
	}
	if !v.Press(path) {
		v.refused[path] = true
	}
}

// Press highlights the item at path if the data source allows it.
func (v *View) Press(path source.IndexPath) bool {
	if v.highlighted[path] || !v.Source.ShouldHighlight(v, path) {
		return false
	}
	v.highlighted[path] = true
	v.Source.DidHighlight(v, path)
	v.Invalidate()
	return true
}

// Release removes the highlight of the item at path.
func (v *View) Release(path source.IndexPath) {
	if !v.highlighted[path] {
		return
	}
	delete(v.highlighted, path)
	v.Source.DidUnhighlight(v, path)
	v.Invalidate()
}

// Tap toggles the selection of the item at path.
func (v *View) Tap(path source.IndexPath) {
	if v.selected[path] {
		v.Deselect(path)
		return
	}
	v.Select(path)
}

// Select selects the item at path if the data source allows it, reporting
// whether the selection changed. Without Multiple, the previously selected
// items are deselected first.
func (v *View) Select(path source.IndexPath) bool {
	if v.selected[path] || !v.Source.ShouldSelect(v, path) {
		return false
	}
	if !v.Multiple {
		for _, prev := range v.Selected() {
			delete(v.selected, prev)
			v.Source.DidDeselect(v, prev)
		}
	}
	v.selected[path] = true
	v.Source.DidSelect(v, path)
	v.Invalidate()
	return true
}

// Deselect deselects the item at path if the data source allows it,
// reporting whether the selection changed.
func (v *View) Deselect(path source.IndexPath) bool {
	if !v.selected[path] || !v.Source.ShouldDeselect(v, path) {
		return false
	}
	delete(v.selected, path)
	v.Source.DidDeselect(v, path)
	v.Invalidate()
	return true
}
