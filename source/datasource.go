package source

// View is the collection widget as seen by a data source. All index paths
// passed to and returned from a View are in the addressing of the data
// source that received it.
type View interface {
	// Register associates a reuse identifier with the Allocator used to
	// create cells for it.
	Register(identifier string, alloc Allocator)
	// RegisterSupplementary is Register for supplementary views of a kind.
	RegisterSupplementary(kind, identifier string, alloc Allocator)
	// Dequeue returns the cell for identifier at path, allocating one with
	// the registered Allocator if the path has none yet. Dequeuing an
	// identifier that was never registered panics.
	Dequeue(identifier string, path IndexPath) Cell
	// DequeueSupplementary is Dequeue for supplementary views.
	DequeueSupplementary(kind, identifier string, path IndexPath) Cell
	// IndexPath returns the path that cell currently presents, if the cell
	// is presenting an item visible to the caller.
	IndexPath(cell Cell) (IndexPath, bool)
	// IsSelected reports whether the item at path is selected.
	IsSelected(path IndexPath) bool
	// Invalidate requests a new frame.
	Invalidate()
}

// DataSource supplies the sections, items and cells of a collection and
// reacts to user interaction with them.
//
// The methods are invoked synchronously by the collection during layout
// and event processing and must not block.
type DataSource interface {
	// Register registers every reuse identifier the data source dequeues.
	Register(v View)

	// Sections returns the number of sections.
	Sections() int
	// Items returns the number of items within section.
	Items(section int) int

	// Cell returns the configured cell presenting the item at path.
	Cell(v View, path IndexPath) Cell
	// Size returns the size of the item at path.
	Size(v View, path IndexPath) Size

	// Supplementary returns the configured supplementary view of kind at path.
	Supplementary(v View, kind string, path IndexPath) Cell
	// SupplementarySize returns the size of the supplementary view of kind
	// at path.
	SupplementarySize(v View, kind string, path IndexPath) Size

	ShouldHighlight(v View, path IndexPath) bool
	DidHighlight(v View, path IndexPath)
	DidUnhighlight(v View, path IndexPath)
	ShouldSelect(v View, path IndexPath) bool
	DidSelect(v View, path IndexPath)
	ShouldDeselect(v View, path IndexPath) bool
	DidDeselect(v View, path IndexPath)
}
