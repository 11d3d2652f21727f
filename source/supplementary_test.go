package source_test

import (
	"testing"

	"gioui.org/unit"
	"git.sr.ht/~gioverse/datasource/source"
	"git.sr.ht/~gioverse/datasource/sourcetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headers(size *source.Size) *source.BasicSupplementary[string, *nameCell] {
	h := source.NewBasicSupplementary[string](source.Header, "title", func() *nameCell { return &nameCell{} }, size)
	h.SetSectionedItems([]string{"people", "places"})
	h.Configure = func(v source.View, cell *nameCell, item string, path source.IndexPath) {
		cell.name = item
	}
	return h
}

func TestBasicSupplementaryView(t *testing.T) {
	h := headers(nil)
	v := sourcetest.NewView()
	h.Register(v)
	require.True(t, v.Registered(source.Header, "title"))

	view := h.View(v, source.Header, source.Path(1, 0))
	require.IsType(t, &nameCell{}, view)
	assert.Equal(t, "places", view.(*nameCell).name)
	assert.Equal(t, sourcetest.Dequeue{Kind: source.Header, Identifier: "title", Path: source.Path(1, 0)}, v.Dequeued[0])
}

func TestBasicSupplementarySize(t *testing.T) {
	fixed := source.Size{Width: 320, Height: 44}
	v := sourcetest.NewView()
	assert.Equal(t, fixed, headers(&fixed).Size(v, source.Header, source.Path(0, 0)))

	h := headers(nil)
	assert.Panics(t, func() { h.Size(v, source.Header, source.Path(0, 0)) }, "no size policy")

	calls := 0
	h.SizeFunc = func(item string, path source.IndexPath) source.Size {
		calls++
		return source.Size{Height: unit.Dp(len(item))}
	}
	assert.Equal(t, source.Size{Height: 6}, h.Size(v, source.Header, source.Path(1, 0)))
	h.Items[1][0] = "everywhere"
	assert.Equal(t, source.Size{Height: 10}, h.Size(v, source.Header, source.Path(1, 0)))
	assert.Equal(t, 2, calls, "sizes are never cached")
}

func TestBasicSupplementaryTypeMismatch(t *testing.T) {
	h := headers(nil)
	v := sourcetest.NewView()
	v.RegisterSupplementary(source.Header, "title", func() source.Cell { return otherCell{} })
	assert.Panics(t, func() { h.View(v, source.Header, source.Path(0, 0)) })
	assert.Panics(t, func() { (&source.BasicSupplementary[string, *nameCell]{Kind: source.Footer}).Register(v) })
}

func TestKindRouter(t *testing.T) {
	fixed := source.Size{Width: 1, Height: 2}
	head := headers(&fixed)
	foot := source.NewBasicSupplementary[string](source.Footer, "count", func() *nameCell { return &nameCell{} }, nil)
	foot.SetSectionedItems([]string{"2 people", "9 places"})
	foot.SizeFunc = func(item string, path source.IndexPath) source.Size {
		return source.Size{Height: 30}
	}

	r := source.NewKindRouter()
	r.Set(source.Header, head)
	r.Set(source.Footer, foot)
	assert.Equal(t, []string{source.Footer, source.Header}, r.Kinds())
	_, ok := r.Creator("badge")
	assert.False(t, ok)

	v := sourcetest.NewView()
	r.Register(v)
	assert.True(t, v.Registered(source.Header, "title"))
	assert.True(t, v.Registered(source.Footer, "count"))

	assert.Equal(t, fixed, r.Size(v, source.Header, source.Path(0, 0)))
	assert.Equal(t, source.Size{Height: 30}, r.Size(v, source.Footer, source.Path(0, 0)))
	assert.Equal(t, "9 places", r.View(v, source.Footer, source.Path(1, 0)).(*nameCell).name)
	assert.Panics(t, func() { r.View(v, "badge", source.Path(0, 0)) })
	assert.Panics(t, func() { r.Set("badge", nil) })
}

func TestBasicForwardsToCreator(t *testing.T) {
	fixed := source.Size{Width: 5, Height: 5}
	r := source.NewKindRouter()
	r.Set(source.Header, headers(&fixed))
	ds := names()
	ds.Creator = r
	v := sourcetest.NewView()
	ds.Register(v)
	assert.True(t, v.Registered(source.Header, "title"))

	assert.Equal(t, fixed, ds.SupplementarySize(v, source.Header, source.Path(0, 0)))
	assert.Equal(t, "people", ds.Supplementary(v, source.Header, source.Path(0, 0)).(*nameCell).name)
}

func TestSizePoint(t *testing.T) {
	s := source.Size{Width: 10, Height: 4}
	p := s.Point(unit.Metric{PxPerDp: 2, PxPerSp: 2})
	assert.Equal(t, 20, p.X)
	assert.Equal(t, 8, p.Y)
}
