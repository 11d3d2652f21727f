package main

import (
	"fmt"
	"image/color"
	"math/rand"

	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/datasource/collection"
	"git.sr.ht/~gioverse/datasource/source"
	lorem "github.com/drhodes/golorem"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	PDFIcon *widget.Icon = func() *widget.Icon {
		icon, _ := widget.NewIcon(icons.ActionAssignment)
		return icon
	}()
	TextIcon *widget.Icon = func() *widget.Icon {
		icon, _ := widget.NewIcon(icons.ActionDescription)
		return icon
	}()
	CheckIcon *widget.Icon = func() *widget.Icon {
		icon, _ := widget.NewIcon(icons.ActionCheckCircle)
		return icon
	}()
)

// Report is a document listed by the demo.
type Report struct {
	ID    int
	Title string
	Pages int
}

// GenerateReports fabricates n reports numbered from first.
func GenerateReports(first, n int) []Report {
	reports := make([]Report, n)
	for i := range reports {
		reports[i] = Report{
			ID:    first + i,
			Title: lorem.Sentence(2, 6),
			Pages: 1 + rand.Intn(40),
		}
	}
	return reports
}

// ReportCell presents one report as an icon followed by its title.
type ReportCell struct {
	Theme  *material.Theme
	Icon   *widget.Icon
	Accent color.NRGBA
	Report Report
	// Selected mirrors the host's selection at configuration time.
	Selected bool
}

func (c *ReportCell) Layout(gtx C) D {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				icon := c.Icon
				if c.Selected {
					icon = CheckIcon
				}
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(24))
				return icon.Layout(gtx, c.Accent)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				l := material.Body1(c.Theme, c.Report.Title)
				l.MaxLines = 1
				return l.Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				return material.Caption(c.Theme, fmt.Sprintf("#%d · %dp", c.Report.ID, c.Report.Pages)).Layout(gtx)
			}),
		)
	})
}

// reportSelector logs selection of reports and keeps cells' check marks in
// sync with the host.
type reportSelector struct {
	source.BaseSelector[Report, *ReportCell]
	Name string
	// Locked reports cannot be selected.
	Locked map[int]bool
}

func (s *reportSelector) Configure(v source.View, cell *ReportCell, item Report, path source.IndexPath) {
	cell.Selected = v.IsSelected(path)
}

func (s *reportSelector) ShouldSelect(v source.View, item Report, path source.IndexPath) bool {
	return !s.Locked[item.ID]
}

func (s *reportSelector) DidSelect(v source.View, item Report, path source.IndexPath) {
	logger.Printf("%s: selected report %d at %v", s.Name, item.ID, path)
}

func (s *reportSelector) DidDeselect(v source.View, item Report, path source.IndexPath) {
	logger.Printf("%s: deselected report %d at %v", s.Name, item.ID, path)
}

// NewReportSource builds a data source of reports presented with icon. Each
// source gets its own accent color derived from hue.
func NewReportSource(th *material.Theme, identifier string, icon *widget.Icon, hue float64, reports []Report) *source.Basic[Report, *ReportCell] {
	accent := collection.ToNRGBA(colorful.Hcl(hue, 0.6, 0.5))
	ds := source.NewBasic[Report](identifier, func() *ReportCell {
		return &ReportCell{Theme: th, Icon: icon, Accent: accent}
	})
	ds.Values = reports
	ds.ItemSize = source.Size{Height: 44}
	ds.Configure = func(v source.View, cell *ReportCell, item Report, path source.IndexPath) {
		cell.Report = item
	}
	locked := make(map[int]bool)
	for _, r := range reports {
		if r.Pages > 35 {
			locked[r.ID] = true
		}
	}
	ds.SetSelector(&reportSelector{Name: identifier, Locked: locked})
	return ds
}

// TitleCell is a section header or footer.
type TitleCell struct {
	Theme *material.Theme
	Title string
	Kind  string
}

func (c *TitleCell) Layout(gtx C) D {
	return layout.Inset{Left: unit.Dp(8), Top: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
		if c.Kind == source.Footer {
			l := material.Caption(c.Theme, c.Title)
			l.Alignment = text.End
			return l.Layout(gtx)
		}
		return material.H6(c.Theme, c.Title).Layout(gtx)
	})
}

// Titles routes the header and footer of a one-section report source.
func Titles(th *material.Theme, identifier, title string, count int) *source.KindRouter {
	alloc := func(kind string) func() *TitleCell {
		return func() *TitleCell { return &TitleCell{Theme: th, Kind: kind} }
	}
	configure := func(v source.View, cell *TitleCell, item string, path source.IndexPath) {
		cell.Title = item
	}
	header := source.NewBasicSupplementary[string](source.Header, identifier+"-title", alloc(source.Header), &source.Size{Height: 40})
	header.SetSectionedItems([]string{title})
	header.Configure = configure
	footer := source.NewBasicSupplementary[string](source.Footer, identifier+"-count", alloc(source.Footer), nil)
	footer.SetSectionedItems([]string{fmt.Sprintf("%d reports", count)})
	footer.Configure = configure
	footer.SizeFunc = func(item string, path source.IndexPath) source.Size {
		return source.Size{Height: 24}
	}
	r := source.NewKindRouter()
	r.Set(source.Header, header)
	r.Set(source.Footer, footer)
	return r
}
