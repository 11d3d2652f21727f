/*
Package layout provides small layout helpers for collection rows.
*/
package layout

import (
	"gioui.org/layout"
	"gioui.org/unit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Spacing insets a widget equally on its top and bottom edges. Wrapping
// every row of a collection in the same Spacing keeps rows evenly apart.
type Spacing struct {
	Size unit.Dp
}

// DefaultSpacing configures a spacing with a sensible default size.
func DefaultSpacing() Spacing {
	return Spacing{Size: unit.Dp(4)}
}

// Layout the provided widget within the spacing and return their combined
// dimensions.
func (s Spacing) Layout(gtx C, w layout.Widget) D {
	if s.Size == 0 {
		return w(gtx)
	}
	return layout.Inset{
		Top:    s.Size,
		Bottom: s.Size,
	}.Layout(gtx, w)
}
