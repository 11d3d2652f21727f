/*
Package sourcetest provides an in-memory collection host and recording data
sources for testing data sources without a window.
*/
package sourcetest

import (
	"fmt"

	"gioui.org/layout"
	"git.sr.ht/~gioverse/datasource/source"
)

// Cell is a source.Cell that remembers everything it was configured with.
type Cell struct {
	// Kind is empty for item cells and the supplementary kind otherwise.
	Kind       string
	Identifier string
	// Values are the items the cell was configured to present, in order.
	Values []interface{}
	// Paths are the paths the cell was configured with, in order.
	Paths []source.IndexPath
}

// Record notes that the cell was configured to present item at path.
func (c *Cell) Record(item interface{}, path source.IndexPath) {
	c.Values = append(c.Values, item)
	c.Paths = append(c.Paths, path)
}

// Layout lays out nothing.
func (c *Cell) Layout(gtx layout.Context) layout.Dimensions {
	return layout.Dimensions{}
}

// Dequeue describes one call to View.Dequeue or View.DequeueSupplementary.
type Dequeue struct {
	Kind       string
	Identifier string
	Path       source.IndexPath
}

type reuseKey struct {
	kind, identifier string
}

// View is a source.View emulating a collection widget in memory. Paths
// handed to it are global paths.
type View struct {
	// ReuseLimit caps the number of cells allocated per identifier. Once
	// reached, dequeues hand out the existing cells in rotation, like a
	// widget reusing offscreen cells. Zero allocates a new cell every time.
	ReuseLimit int
	// Dequeued logs every dequeue, in order.
	Dequeued []Dequeue
	// Selected holds the selected paths.
	Selected map[source.IndexPath]bool
	// Invalidations counts calls to Invalidate.
	Invalidations int

	allocs map[reuseKey]source.Allocator
	pools  map[reuseKey][]source.Cell
	next   map[reuseKey]int
	paths  map[source.Cell]source.IndexPath
}

var _ source.View = (*View)(nil)

// NewView returns an empty View.
func NewView() *View {
	return &View{
		Selected: make(map[source.IndexPath]bool),
		allocs:   make(map[reuseKey]source.Allocator),
		pools:    make(map[reuseKey][]source.Cell),
		next:     make(map[reuseKey]int),
		paths:    make(map[source.Cell]source.IndexPath),
	}
}

func (v *View) Register(identifier string, alloc source.Allocator) {
	v.allocs[reuseKey{identifier: identifier}] = alloc
}

func (v *View) RegisterSupplementary(kind, identifier string, alloc source.Allocator) {
	v.allocs[reuseKey{kind: kind, identifier: identifier}] = alloc
}

// Registered reports whether identifier has been registered for kind. Use
// an empty kind for item cells.
func (v *View) Registered(kind, identifier string) bool {
	_, ok := v.allocs[reuseKey{kind: kind, identifier: identifier}]
	return ok
}

func (v *View) Dequeue(identifier string, path source.IndexPath) source.Cell {
	return v.dequeue(reuseKey{identifier: identifier}, path)
}

func (v *View) DequeueSupplementary(kind, identifier string, path source.IndexPath) source.Cell {
	return v.dequeue(reuseKey{kind: kind, identifier: identifier}, path)
}

func (v *View) dequeue(key reuseKey, path source.IndexPath) source.Cell {
	alloc, ok := v.allocs[key]
	if !ok {
		panic(fmt.Errorf("sourcetest: dequeue of unregistered identifier %q (kind %q)", key.identifier, key.kind))
	}
	v.Dequeued = append(v.Dequeued, Dequeue{Kind: key.kind, Identifier: key.identifier, Path: path})
	var cell source.Cell
	if pool := v.pools[key]; v.ReuseLimit > 0 && len(pool) >= v.ReuseLimit {
		cell = pool[v.next[key]%len(pool)]
		v.next[key]++
	} else {
		cell = alloc()
		v.pools[key] = append(pool, cell)
	}
	v.paths[cell] = path
	return cell
}

func (v *View) IndexPath(cell source.Cell) (source.IndexPath, bool) {
	path, ok := v.paths[cell]
	return path, ok
}

func (v *View) IsSelected(path source.IndexPath) bool {
	return v.Selected[path]
}

func (v *View) Invalidate() {
	v.Invalidations++
}

// Query asks ds for the cell of every item, section by section, the way
// the widget does during a full layout pass.
func (v *View) Query(ds source.DataSource) [][]source.Cell {
	cells := make([][]source.Cell, ds.Sections())
	for s := range cells {
		n := ds.Items(s)
		cells[s] = make([]source.Cell, 0, n)
		for i := 0; i < n; i++ {
			cells[s] = append(cells[s], ds.Cell(v, source.Path(s, i)))
		}
	}
	return cells
}
