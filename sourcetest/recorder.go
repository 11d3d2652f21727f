package sourcetest

import (
	"git.sr.ht/~gioverse/datasource/source"
)

// Recorder is a source.DataSource that counts every call made to it and
// remembers the arguments of the most recent one. Count queries are not
// recorded since composites issue them while resolving paths.
type Recorder struct {
	// Name is used as the reuse identifier of its cells and supplementary
	// views.
	Name string
	// Counts holds the number of items of each section.
	Counts []int
	// ItemSize is returned by Size and SupplementarySize.
	ItemSize source.Size
	// Refuse makes every Should* hook return false.
	Refuse bool

	// Calls counts the calls made to each method, by method name.
	Calls map[string]int
	// Path and Kind are the arguments of the most recent call.
	Path source.IndexPath
	Kind string
	// View is the view passed to the most recent call.
	View source.View
}

var _ source.DataSource = (*Recorder)(nil)

// NewRecorder returns a Recorder with one section per count.
func NewRecorder(name string, counts ...int) *Recorder {
	return &Recorder{
		Name:   name,
		Counts: counts,
		Calls:  make(map[string]int),
	}
}

// Total returns the number of calls across all methods.
func (r *Recorder) Total() int {
	total := 0
	for _, n := range r.Calls {
		total += n
	}
	return total
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.Calls = make(map[string]int)
	r.Path, r.Kind, r.View = source.IndexPath{}, "", nil
}

func (r *Recorder) record(method string, v source.View, path source.IndexPath) {
	if r.Calls == nil {
		r.Calls = make(map[string]int)
	}
	r.Calls[method]++
	r.View = v
	r.Path = path
}

func (r *Recorder) Register(v source.View) {
	r.record("Register", v, source.IndexPath{})
	alloc := func(kind string) source.Allocator {
		return func() source.Cell { return &Cell{Kind: kind, Identifier: r.Name} }
	}
	v.Register(r.Name, alloc(""))
	v.RegisterSupplementary(source.Header, r.Name, alloc(source.Header))
	v.RegisterSupplementary(source.Footer, r.Name, alloc(source.Footer))
}

func (r *Recorder) Sections() int {
	return len(r.Counts)
}

func (r *Recorder) Items(section int) int {
	return r.Counts[section]
}

func (r *Recorder) Cell(v source.View, path source.IndexPath) source.Cell {
	r.record("Cell", v, path)
	cell := v.Dequeue(r.Name, path).(*Cell)
	cell.Record(r.Name, path)
	return cell
}

func (r *Recorder) Size(v source.View, path source.IndexPath) source.Size {
	r.record("Size", v, path)
	return r.ItemSize
}

func (r *Recorder) Supplementary(v source.View, kind string, path source.IndexPath) source.Cell {
	r.record("Supplementary", v, path)
	r.Kind = kind
	cell := v.DequeueSupplementary(kind, r.Name, path).(*Cell)
	cell.Record(r.Name, path)
	return cell
}

func (r *Recorder) SupplementarySize(v source.View, kind string, path source.IndexPath) source.Size {
	r.record("SupplementarySize", v, path)
	r.Kind = kind
	return r.ItemSize
}

func (r *Recorder) ShouldHighlight(v source.View, path source.IndexPath) bool {
	r.record("ShouldHighlight", v, path)
	return !r.Refuse
}

func (r *Recorder) DidHighlight(v source.View, path source.IndexPath) {
	r.record("DidHighlight", v, path)
}

func (r *Recorder) DidUnhighlight(v source.View, path source.IndexPath) {
	r.record("DidUnhighlight", v, path)
}

func (r *Recorder) ShouldSelect(v source.View, path source.IndexPath) bool {
	r.record("ShouldSelect", v, path)
	return !r.Refuse
}

func (r *Recorder) DidSelect(v source.View, path source.IndexPath) {
	r.record("DidSelect", v, path)
}

func (r *Recorder) ShouldDeselect(v source.View, path source.IndexPath) bool {
	r.record("ShouldDeselect", v, path)
	return !r.Refuse
}

func (r *Recorder) DidDeselect(v source.View, path source.IndexPath) {
	r.record("DidDeselect", v, path)
}
