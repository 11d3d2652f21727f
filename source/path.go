/*
Package source defines the contracts between a collection widget and the
data sources that populate it.

A DataSource owns a homogeneous set of items. It reports how many sections
and items it has, produces a configured Cell for an IndexPath, reports the
Size of that cell and reacts to highlight and selection. The widget talks
to data sources through these methods and data sources talk back to the
widget through the View they are handed.

Index paths are always expressed in the addressing of the receiver. A
data source nested inside a composite only ever sees its own, local,
sections and items.
*/
package source

import (
	"fmt"
	"image"

	"gioui.org/layout"
	"gioui.org/unit"
)

// IndexPath addresses one item within a sectioned collection.
type IndexPath struct {
	Section int
	Item    int
}

// Path is shorthand for IndexPath{Section: section, Item: item}.
func Path(section, item int) IndexPath {
	return IndexPath{Section: section, Item: item}
}

// Less reports whether p sorts before o in section-major order.
func (p IndexPath) Less(o IndexPath) bool {
	if p.Section != o.Section {
		return p.Section < o.Section
	}
	return p.Item < o.Item
}

func (p IndexPath) String() string {
	return fmt.Sprintf("(section: %d, item: %d)", p.Section, p.Item)
}

// Size is the requested size of a cell or supplementary view.
type Size struct {
	Width, Height unit.Dp
}

// Point converts the size to pixels.
func (s Size) Point(m unit.Metric) image.Point {
	return image.Point{X: m.Dp(s.Width), Y: m.Dp(s.Height)}
}

// Cell is anything the collection can lay out in an item or supplementary
// slot. Cells are persistent: the View hands the same Cell back for the same
// reuse identifier and path across frames.
type Cell interface {
	Layout(gtx layout.Context) layout.Dimensions
}

// Allocator creates a new, unconfigured Cell for a reuse identifier.
type Allocator func() Cell

// Supplementary view kinds understood by the collection host.
const (
	Header = "header"
	Footer = "footer"
)
