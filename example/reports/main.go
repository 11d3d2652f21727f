// Package reports demonstrates composing data sources into one collection.
//
// Two report sources each fill their own section, while a third section
// merges two more sources into a single run of items.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/datasource/collection"
	"git.sr.ht/~gioverse/datasource/composite"
	chatlayout "git.sr.ht/~gioverse/datasource/layout"
	"git.sr.ht/~gioverse/datasource/profile"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var logger = log.New(os.Stderr, "reports: ", log.LstdFlags)

var (
	profileKind = profile.None
	headers     = flag.Bool("headers", true, "show a header and footer for every section")
	multiple    = flag.Bool("multiple", false, "allow selecting more than one report")
	debugCells  = flag.Bool("debug", false, "outline cells and label them with their paths")
	count       = flag.Int("count", 25, "reports per source")
)

func init() {
	flag.Var(&profileKind, "profile", fmt.Sprintf("create the provided kind of profile %v", profile.Kinds()))
}

func main() {
	flag.Parse()
	var (
		w = app.NewWindow(
			app.Title("Reports"),
			app.Size(unit.Dp(480), unit.Dp(720)),
		)
		ops op.Ops
		th  = material.NewTheme(gofont.Collection())
		ui  = NewUI(th, w.Invalidate)
	)
	go func() {
		prof := profile.New(profileKind)
		prof.Start()
		defer prof.Stop()
		for event := range w.Events() {
			switch event := event.(type) {
			case system.DestroyEvent:
				prof.Stop()
				if err := event.Err; err != nil {
					logger.Printf("premature window close: %v", err)
					os.Exit(1)
				}
				os.Exit(0)
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, event)
				prof.Record(gtx)
				ui.Layout(gtx, th)
				event.Frame(gtx.Ops)
			}
		}
	}()
	app.Main()
}

// UI holds the collection and the sources it presents.
type UI struct {
	Collection *collection.View
	Root       *composite.Composite
}

// NewUI builds the composite hierarchy:
//
//	multi
//	├── pdf reports       (section 0)
//	├── text reports      (section 1)
//	└── single            (section 2)
//	    ├── archived pdf
//	    └── archived text
func NewUI(th *material.Theme, invalidate func()) *UI {
	n := *count
	pdf := NewReportSource(th, "pdf", PDFIcon, 10, GenerateReports(0, n))
	pdf.Creator = Titles(th, "pdf", "PDF reports", n)
	text := NewReportSource(th, "text", TextIcon, 200, GenerateReports(n, n))
	text.Creator = Titles(th, "text", "Text reports", n)

	archivedPDF := NewReportSource(th, "archived-pdf", PDFIcon, 60, GenerateReports(2*n, n/2))
	archivedPDF.Creator = Titles(th, "archived", "Archive", n)
	archivedText := NewReportSource(th, "archived-text", TextIcon, 260, GenerateReports(2*n+n/2, n-n/2))
	archivedText.Creator = archivedPDF.Creator

	archive := composite.New(composite.Single)
	archive.Add(archivedPDF)
	archive.Add(archivedText)

	root := composite.New(composite.Multi)
	root.Add(pdf)
	root.Add(text)
	root.Add(archive)
	logger.Printf("%d sections, %d archived reports", root.Sections(), archive.Items(0))

	view := collection.New(root)
	view.Headers = *headers
	view.Footers = *headers
	view.Multiple = *multiple
	view.Debug = *debugCells
	view.Style = collection.DefaultStyle(th)
	view.Spacing = chatlayout.DefaultSpacing()
	view.Invalidator = invalidate
	return &UI{Collection: view, Root: root}
}

func (ui *UI) Layout(gtx C, th *material.Theme) D {
	return ui.Collection.Layout(gtx, th)
}
