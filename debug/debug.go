/*
Package debug provides tools for debugging collection layouts.
*/
package debug

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Outline traces a small black outline around the provided widget.
func Outline(gtx C, w layout.Widget) D {
	return widget.Border{
		Color: color.NRGBA{A: 255},
		Width: unit.Dp(1),
	}.Layout(gtx, w)
}

// Label outlines the provided widget and stamps label in its top-left
// corner. The collection uses it to show which global path a cell was laid
// out for.
func Label(gtx C, th *material.Theme, label string, w layout.Widget) D {
	return layout.Stack{}.Layout(gtx,
		layout.Stacked(func(gtx C) D {
			return Outline(gtx, w)
		}),
		layout.Expanded(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			caption := material.Caption(th, label)
			caption.Color = color.NRGBA{R: 200, A: 255}
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, caption.Layout)
		}),
	)
}
