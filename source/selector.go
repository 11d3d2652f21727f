package source

// Selector configures the cells of a Basic data source and decides how its
// items respond to highlight and selection. It receives the item value
// alongside the local path so implementations rarely need to reach back
// into the data source.
type Selector[T any, C Cell] interface {
	Configure(v View, cell C, item T, path IndexPath)

	ShouldHighlight(v View, item T, path IndexPath) bool
	DidHighlight(v View, item T, path IndexPath)
	DidUnhighlight(v View, item T, path IndexPath)
	ShouldSelect(v View, item T, path IndexPath) bool
	DidSelect(v View, item T, path IndexPath)
	ShouldDeselect(v View, item T, path IndexPath) bool
	DidDeselect(v View, item T, path IndexPath)
}

// BaseSelector implements every Selector method with the collection's
// default behaviour: everything may be highlighted, selected and
// deselected, and nothing happens when it is. Embed it to override only
// the hooks you need.
type BaseSelector[T any, C Cell] struct{}

func (BaseSelector[T, C]) Configure(View, C, T, IndexPath) {}

func (BaseSelector[T, C]) ShouldHighlight(View, T, IndexPath) bool { return true }

func (BaseSelector[T, C]) DidHighlight(View, T, IndexPath) {}

func (BaseSelector[T, C]) DidUnhighlight(View, T, IndexPath) {}

func (BaseSelector[T, C]) ShouldSelect(View, T, IndexPath) bool { return true }

func (BaseSelector[T, C]) DidSelect(View, T, IndexPath) {}

func (BaseSelector[T, C]) ShouldDeselect(View, T, IndexPath) bool { return true }

func (BaseSelector[T, C]) DidDeselect(View, T, IndexPath) {}
