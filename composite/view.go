package composite

import "git.sr.ht/~gioverse/datasource/source"

// childView is the source.View handed to one child. It converts the
// child's local paths into the composite's addressing before calling the
// parent view, and the parent's paths back into local ones.
type childView struct {
	parent source.View
	c      *Composite
	child  int
}

func (c *Composite) view(parent source.View, child int) childView {
	return childView{parent: parent, c: c, child: child}
}

func (v childView) Register(identifier string, alloc source.Allocator) {
	v.parent.Register(identifier, alloc)
}

func (v childView) RegisterSupplementary(kind, identifier string, alloc source.Allocator) {
	v.parent.RegisterSupplementary(kind, identifier, alloc)
}

func (v childView) Dequeue(identifier string, path source.IndexPath) source.Cell {
	return v.parent.Dequeue(identifier, v.c.global(v.child, path))
}

func (v childView) DequeueSupplementary(kind, identifier string, path source.IndexPath) source.Cell {
	return v.parent.DequeueSupplementary(kind, identifier, v.c.global(v.child, path))
}

func (v childView) IndexPath(cell source.Cell) (source.IndexPath, bool) {
	global, ok := v.parent.IndexPath(cell)
	if !ok {
		return source.IndexPath{}, false
	}
	return v.c.local(v.child, global)
}

func (v childView) IsSelected(path source.IndexPath) bool {
	return v.parent.IsSelected(v.c.global(v.child, path))
}

func (v childView) Invalidate() {
	v.parent.Invalidate()
}
