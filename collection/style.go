package collection

import (
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style holds the colors painted behind highlighted and selected items.
// A zero color paints nothing.
type Style struct {
	Highlight color.NRGBA
	Selection color.NRGBA
}

// DefaultStyle derives pale tints of the theme's contrast color.
func DefaultStyle(th *material.Theme) Style {
	return Style{
		Highlight: Tint(th.ContrastBg, 0.85),
		Selection: Tint(th.ContrastBg, 0.65),
	}
}

// background picks the color behind an item. Highlight wins over
// selection while the item is pressed.
func (s Style) background(highlighted, selected bool) color.NRGBA {
	switch {
	case highlighted:
		return s.Highlight
	case selected:
		return s.Selection
	}
	return color.NRGBA{}
}

// fill lays w out over a rectangle of color c covering its dimensions.
func fill(gtx C, c color.NRGBA, w layout.Widget) D {
	if c.A == 0 {
		return w(gtx)
	}
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	content := macro.Stop()
	component.Rect{Color: c, Size: dims.Size}.Layout(gtx)
	content.Add(gtx.Ops)
	return dims
}

// Tint blends c towards white by amount in the range [0,1], in the Lab
// color space.
func Tint(c color.NRGBA, amount float64) color.NRGBA {
	base, ok := colorful.MakeColor(c)
	if !ok {
		return color.NRGBA{}
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return ToNRGBA(base.BlendLab(white, amount))
}

// ToNRGBA converts a colorful.Color to the nearest representable opaque
// color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
