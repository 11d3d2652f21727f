package collection

import (
	"image"
	"image/color"
	"testing"
	"time"

	"gioui.org/font/gofont"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"git.sr.ht/~gioverse/datasource/composite"
	"git.sr.ht/~gioverse/datasource/source"
	"git.sr.ht/~gioverse/datasource/sourcetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a multi-section composite over two recorders: a with
// sections of 2 and 1 items, b with one section of 3 items.
func fixture() (*View, *sourcetest.Recorder, *sourcetest.Recorder) {
	a := sourcetest.NewRecorder("a", 2, 1)
	b := sourcetest.NewRecorder("b", 3)
	a.ItemSize = source.Size{Height: 20}
	b.ItemSize = source.Size{Width: 50, Height: 10}
	c := composite.New(composite.Multi)
	c.Add(a)
	c.Add(b)
	return New(c), a, b
}

func TestNewRequiresSource(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestUpdatedLen(t *testing.T) {
	v, a, b := fixture()
	assert.Equal(t, 6, v.UpdatedLen())
	assert.Equal(t, 1, a.Calls["Register"])
	assert.Equal(t, 1, b.Calls["Register"])

	v.Headers = true
	assert.Equal(t, 9, v.UpdatedLen())
	v.Footers = true
	assert.Equal(t, 12, v.UpdatedLen())
	assert.Equal(t, 1, a.Calls["Register"], "sources register once")

	a.Counts = append(a.Counts, 4)
	assert.Equal(t, 18, v.UpdatedLen(), "counts are queried every time")
	assert.Equal(t, row{kind: headerRow, path: source.Path(0, 0)}, v.rows[0])
	assert.Equal(t, row{kind: itemRow, path: source.Path(0, 1)}, v.rows[2])
	assert.Equal(t, row{kind: footerRow, path: source.Path(3, 0)}, v.rows[17])
}

func TestDequeueReusesCells(t *testing.T) {
	v, _, _ := fixture()
	v.UpdatedLen()

	first := v.Dequeue("a", source.Path(0, 1))
	assert.Same(t, first, v.Dequeue("a", source.Path(0, 1)))
	assert.NotSame(t, first, v.Dequeue("a", source.Path(0, 0)))
	header := v.DequeueSupplementary(source.Header, "a", source.Path(0, 1))
	assert.NotSame(t, first, header, "supplementary views are kept apart from cells")

	path, ok := v.IndexPath(first)
	require.True(t, ok)
	assert.Equal(t, source.Path(0, 1), path)
	_, ok = v.IndexPath(&sourcetest.Cell{})
	assert.False(t, ok)

	v.Reload()
	assert.NotSame(t, first, v.Dequeue("a", source.Path(0, 1)))
}

func TestDequeueUnregistered(t *testing.T) {
	v, _, _ := fixture()
	v.UpdatedLen()
	assert.Panics(t, func() { v.Dequeue("c", source.Path(0, 0)) })
	assert.Panics(t, func() { v.DequeueSupplementary("badge", "a", source.Path(0, 0)) })
	assert.Panics(t, func() { v.Register("d", nil) })
}

func TestSelectSingle(t *testing.T) {
	v, a, b := fixture()
	v.UpdatedLen()

	require.True(t, v.Select(source.Path(1, 0)))
	assert.Equal(t, 1, a.Calls["ShouldSelect"])
	assert.Equal(t, 1, a.Calls["DidSelect"])
	assert.Equal(t, source.Path(1, 0), a.Path)
	assert.True(t, v.IsSelected(source.Path(1, 0)))

	require.True(t, v.Select(source.Path(2, 2)))
	assert.Equal(t, 1, a.Calls["DidDeselect"], "previous selection is dropped")
	assert.Equal(t, 0, a.Calls["ShouldDeselect"])
	assert.Equal(t, 1, b.Calls["DidSelect"])
	assert.Equal(t, source.Path(0, 2), b.Path, "b sees its local path")
	assert.Equal(t, []source.IndexPath{source.Path(2, 2)}, v.Selected())

	assert.False(t, v.Select(source.Path(2, 2)), "already selected")
	assert.Equal(t, 1, b.Calls["ShouldSelect"])
}

func TestSelectMultiple(t *testing.T) {
	v, a, b := fixture()
	v.Multiple = true
	v.UpdatedLen()

	v.Tap(source.Path(2, 1))
	v.Tap(source.Path(0, 0))
	assert.Equal(t, []source.IndexPath{source.Path(0, 0), source.Path(2, 1)}, v.Selected())
	assert.Equal(t, 0, a.Calls["DidDeselect"]+b.Calls["DidDeselect"])

	v.Tap(source.Path(2, 1))
	assert.Equal(t, 1, b.Calls["ShouldDeselect"])
	assert.Equal(t, 1, b.Calls["DidDeselect"])
	assert.Equal(t, []source.IndexPath{source.Path(0, 0)}, v.Selected())
}

func TestRefusal(t *testing.T) {
	v, a, _ := fixture()
	v.UpdatedLen()

	a.Refuse = true
	assert.False(t, v.Select(source.Path(0, 1)))
	assert.False(t, v.Press(source.Path(0, 1)))
	assert.Equal(t, 0, a.Calls["DidSelect"])
	assert.Equal(t, 0, a.Calls["DidHighlight"])
	assert.Empty(t, v.Selected())

	a.Refuse = false
	require.True(t, v.Select(source.Path(0, 1)))
	a.Refuse = true
	assert.False(t, v.Deselect(source.Path(0, 1)))
	assert.True(t, v.IsSelected(source.Path(0, 1)))
	assert.Equal(t, 0, a.Calls["DidDeselect"])
}

func TestPressRelease(t *testing.T) {
	v, _, b := fixture()
	invalidations := 0
	v.Invalidator = func() { invalidations++ }
	v.UpdatedLen()

	require.True(t, v.Press(source.Path(2, 0)))
	assert.True(t, v.Highlighted(source.Path(2, 0)))
	assert.Equal(t, 1, b.Calls["ShouldHighlight"])
	assert.Equal(t, 1, b.Calls["DidHighlight"])
	assert.False(t, v.Press(source.Path(2, 0)))

	v.Release(source.Path(2, 0))
	v.Release(source.Path(2, 0))
	assert.False(t, v.Highlighted(source.Path(2, 0)))
	assert.Equal(t, 1, b.Calls["DidUnhighlight"])
	assert.Equal(t, 2, invalidations)
}

func TestRefusedPressAsksOnce(t *testing.T) {
	v, _, b := fixture()
	v.UpdatedLen()
	b.Refuse = true
	p := source.Path(2, 1)

	for frame := 0; frame < 3; frame++ {
		v.track(p, true)
	}
	assert.Equal(t, 1, b.Calls["ShouldHighlight"])
	assert.False(t, v.Highlighted(p))

	v.track(p, false)
	v.track(p, true)
	assert.Equal(t, 2, b.Calls["ShouldHighlight"], "a new press asks again")

	b.Refuse = false
	v.track(p, false)
	v.track(p, true)
	v.track(p, true)
	assert.True(t, v.Highlighted(p))
	assert.Equal(t, 3, b.Calls["ShouldHighlight"])
	assert.Equal(t, 1, b.Calls["DidHighlight"])
	v.track(p, false)
	assert.Equal(t, 1, b.Calls["DidUnhighlight"])
}

func newContext(ops *op.Ops) layout.Context {
	return layout.NewContext(ops, system.FrameEvent{
		Now: time.Now(),
		Metric: unit.Metric{
			PxPerDp: 1,
			PxPerSp: 1,
		},
		Size: image.Pt(1000, 1000),
	})
}

func TestLayoutEmptySingleSection(t *testing.T) {
	var ops op.Ops
	gtx := newContext(&ops)
	th := material.NewTheme(gofont.Collection())

	a := sourcetest.NewRecorder("a", 2)
	empty := sourcetest.NewRecorder("empty", 0)
	archive := composite.New(composite.Single)
	archive.Add(empty)
	root := composite.New(composite.Multi)
	root.Add(a)
	root.Add(archive)
	v := New(root)
	v.Headers = true
	v.Footers = true

	assert.NotPanics(t, func() { v.Layout(gtx, th) })
	assert.Equal(t, 2, empty.Calls["Supplementary"])
	assert.Zero(t, empty.Calls["Cell"])
}

func TestLayout(t *testing.T) {
	var ops op.Ops
	gtx := newContext(&ops)
	th := material.NewTheme(gofont.Collection())

	v, a, b := fixture()
	v.Headers = true
	v.Debug = true
	v.Style = DefaultStyle(th)
	v.Select(source.Path(0, 0))
	v.Layout(gtx, th)

	assert.Equal(t, 3, a.Calls["Cell"])
	assert.Equal(t, 3, a.Calls["Size"])
	assert.Equal(t, 2, a.Calls["Supplementary"])
	assert.Equal(t, 3, b.Calls["Cell"])
	assert.Equal(t, 1, b.Calls["Supplementary"])

	// Cells persist across frames.
	ops.Reset()
	v.Layout(gtx, th)
	cell := v.Dequeue("b", source.Path(2, 1)).(*sourcetest.Cell)
	assert.Len(t, cell.Paths, 2)
	assert.Equal(t, source.Path(0, 1), cell.Paths[1])
}

func TestStyleBackground(t *testing.T) {
	s := Style{Highlight: color.NRGBA{R: 1, A: 255}, Selection: color.NRGBA{G: 1, A: 255}}
	assert.Equal(t, s.Highlight, s.background(true, true))
	assert.Equal(t, s.Selection, s.background(false, true))
	assert.Equal(t, color.NRGBA{}, s.background(false, false))
}

func TestTint(t *testing.T) {
	base := DefaultStyle(material.NewTheme(gofont.Collection()))
	assert.Equal(t, uint8(255), base.Highlight.A)
	assert.Greater(t, base.Highlight.R, base.Selection.R, "highlight is paler")
}
