/*
Package composite assembles one collection out of several child data
sources.

A Composite is itself a source.DataSource. Every query from the collection
arrives with a global index path; the Composite finds the child owning
that path, translates it into the child's local addressing and forwards
the query to exactly that child. Children talk back to the collection
through a view that performs the reverse translation, so a child never
observes global addressing and composites nest freely.

Resolution scans the children in the order they were added and recomputes
every offset from the children's live counts on each query, so counts may
change between queries without invalidating anything.
*/
package composite

import (
	"fmt"

	"git.sr.ht/~gioverse/datasource/source"
)

// Composite presents an ordered list of child data sources as a single
// data source.
//
// Children are compared by identity in GlobalPath, LocalPath and
// GlobalSection, so they should be pointers.
type Composite struct {
	mode     Mode
	children []source.DataSource
}

var _ source.DataSource = (*Composite)(nil)

// New constructs an empty Composite. The mode cannot be changed afterwards.
// This constructor will panic if mode is not Single or Multi.
func New(mode Mode) *Composite {
	if !mode.valid() {
		panic(fmt.Errorf("composite: invalid mode %d", mode))
	}
	return &Composite{mode: mode}
}

// Mode returns the section mapping mode chosen at construction.
func (c *Composite) Mode() Mode {
	return c.mode
}

// Add appends a child. Children must be added before the collection starts
// querying the composite.
func (c *Composite) Add(ds source.DataSource) {
	if ds == nil {
		panic(fmt.Errorf("composite: cannot add a nil data source"))
	}
	if nested, ok := ds.(*Composite); ok && nested == c {
		panic(fmt.Errorf("composite: cannot add a composite to itself"))
	}
	c.children = append(c.children, ds)
}

// Len returns the number of children.
func (c *Composite) Len() int {
	return len(c.children)
}

// DataSources returns the children in the order they were added. The
// returned slice is a copy.
func (c *Composite) DataSources() []source.DataSource {
	out := make([]source.DataSource, len(c.children))
	copy(out, c.children)
	return out
}

// Owner returns the child owning the item at a global path and the path in
// the child's addressing. It panics if no child owns the item.
func (c *Composite) Owner(global source.IndexPath) (source.DataSource, source.IndexPath) {
	i, local := c.locate(global)
	return c.children[i], local
}

// GlobalPath translates a path local to child ds into global addressing.
// It panics if ds is not a child.
func (c *Composite) GlobalPath(ds source.DataSource, local source.IndexPath) source.IndexPath {
	return c.global(c.indexOf(ds), local)
}

// LocalPath translates a global path into the addressing of child ds,
// reporting false when ds does not own the path.
// It panics if ds is not a child.
func (c *Composite) LocalPath(ds source.DataSource, global source.IndexPath) (source.IndexPath, bool) {
	return c.local(c.indexOf(ds), global)
}

// GlobalSection translates a section of child ds into global addressing.
// In Single mode every child lives in section 0.
func (c *Composite) GlobalSection(ds source.DataSource, section int) int {
	return c.global(c.indexOf(ds), source.Path(section, 0)).Section
}

func (c *Composite) indexOf(ds source.DataSource) int {
	for i, child := range c.children {
		if child == ds {
			return i
		}
	}
	panic(fmt.Errorf("composite: %T is not a child data source", ds))
}

// locate resolves the child owning the item at a global path.
func (c *Composite) locate(global source.IndexPath) (int, source.IndexPath) {
	if c.mode == Single {
		return c.locateItem(global)
	}
	i, section := c.locateSection(global.Section)
	if n := c.children[i].Items(section); global.Item < 0 || global.Item >= n {
		panic(fmt.Errorf("composite: %v out of range, section %d holds %d items", global, global.Section, n))
	}
	return i, source.Path(section, global.Item)
}

// locateSupplementary resolves the child owning the section of a global
// path. The item is not checked, so sections without items still resolve.
// In Single mode the item's owner answers, or the first child reporting a
// section when no child owns the item.
func (c *Composite) locateSupplementary(global source.IndexPath) (int, source.IndexPath) {
	if c.mode == Multi {
		i, section := c.locateSection(global.Section)
		return i, source.Path(section, global.Item)
	}
	if global.Section != 0 || len(c.children) == 0 {
		panic(fmt.Errorf("composite: section %d out of range [0,%d)", global.Section, c.Sections()))
	}
	if global.Item >= 0 && global.Item < c.total() {
		return c.locateItem(global)
	}
	for i, ds := range c.children {
		if ds.Sections() > 0 {
			return i, source.Path(0, global.Item-c.offset(i))
		}
	}
	panic(fmt.Errorf("composite: no child reports a section for %v", global))
}

func (c *Composite) locateSection(section int) (child, local int) {
	if section >= 0 {
		offset := 0
		for i, ds := range c.children {
			n := ds.Sections()
			if section < offset+n {
				return i, section - offset
			}
			offset += n
		}
	}
	panic(fmt.Errorf("composite: section %d out of range [0,%d)", section, c.Sections()))
}

func (c *Composite) locateItem(global source.IndexPath) (int, source.IndexPath) {
	if global.Section == 0 && global.Item >= 0 {
		offset := 0
		for i := range c.children {
			n := c.items(i)
			if global.Item < offset+n {
				return i, source.Path(0, global.Item-offset)
			}
			offset += n
		}
	}
	panic(fmt.Errorf("composite: %v out of range, single section holds %d items", global, c.total()))
}

// items returns the number of items child i contributes to the shared
// section in Single mode.
func (c *Composite) items(i int) int {
	ds := c.children[i]
	switch n := ds.Sections(); {
	case n == 0:
		return 0
	case n == 1:
		return ds.Items(0)
	default:
		panic(fmt.Errorf("composite: single mode child %d (%T) reports %d sections", i, ds, n))
	}
}

func (c *Composite) total() int {
	total := 0
	for i := range c.children {
		total += c.items(i)
	}
	return total
}

// offset returns the global section (Multi) or item (Single) at which child
// i begins.
func (c *Composite) offset(i int) int {
	offset := 0
	for j := 0; j < i; j++ {
		if c.mode == Multi {
			offset += c.children[j].Sections()
		} else {
			offset += c.items(j)
		}
	}
	return offset
}

func (c *Composite) global(i int, local source.IndexPath) source.IndexPath {
	if c.mode == Multi {
		return source.Path(local.Section+c.offset(i), local.Item)
	}
	if local.Section != 0 {
		panic(fmt.Errorf("composite: single mode child %d used section %d", i, local.Section))
	}
	return source.Path(0, local.Item+c.offset(i))
}

func (c *Composite) local(i int, global source.IndexPath) (source.IndexPath, bool) {
	offset := c.offset(i)
	if c.mode == Multi {
		if global.Section < offset || global.Section >= offset+c.children[i].Sections() {
			return source.IndexPath{}, false
		}
		return source.Path(global.Section-offset, global.Item), true
	}
	if global.Section != 0 || global.Item < offset || global.Item >= offset+c.items(i) {
		return source.IndexPath{}, false
	}
	return source.Path(0, global.Item-offset), true
}

// resolve returns the owner of the item at a global path along with the
// view and path it must be queried with.
func (c *Composite) resolve(v source.View, global source.IndexPath) (source.DataSource, source.View, source.IndexPath) {
	i, local := c.locate(global)
	return c.children[i], c.view(v, i), local
}

func (c *Composite) resolveSupplementary(v source.View, global source.IndexPath) (source.DataSource, source.View, source.IndexPath) {
	i, local := c.locateSupplementary(global)
	return c.children[i], c.view(v, i), local
}

// Register registers the reuse identifiers of every child.
func (c *Composite) Register(v source.View) {
	for i, ds := range c.children {
		ds.Register(c.view(v, i))
	}
}

// Sections returns the sum of the children's sections in Multi mode. In
// Single mode it returns 1, or 0 when there are no children.
func (c *Composite) Sections() int {
	if c.mode == Single {
		if len(c.children) == 0 {
			return 0
		}
		return 1
	}
	sections := 0
	for _, ds := range c.children {
		sections += ds.Sections()
	}
	return sections
}

// Items returns the number of items in a global section.
func (c *Composite) Items(section int) int {
	if c.mode == Single {
		if section != 0 || len(c.children) == 0 {
			panic(fmt.Errorf("composite: section %d out of range [0,%d)", section, c.Sections()))
		}
		return c.total()
	}
	i, local := c.locateSection(section)
	return c.children[i].Items(local)
}

func (c *Composite) Cell(v source.View, path source.IndexPath) source.Cell {
	ds, cv, local := c.resolve(v, path)
	return ds.Cell(cv, local)
}

func (c *Composite) Size(v source.View, path source.IndexPath) source.Size {
	ds, cv, local := c.resolve(v, path)
	return ds.Size(cv, local)
}

func (c *Composite) Supplementary(v source.View, kind string, path source.IndexPath) source.Cell {
	ds, cv, local := c.resolveSupplementary(v, path)
	return ds.Supplementary(cv, kind, local)
}

func (c *Composite) SupplementarySize(v source.View, kind string, path source.IndexPath) source.Size {
	ds, cv, local := c.resolveSupplementary(v, path)
	return ds.SupplementarySize(cv, kind, local)
}

func (c *Composite) ShouldHighlight(v source.View, path source.IndexPath) bool {
	ds, cv, local := c.resolve(v, path)
	return ds.ShouldHighlight(cv, local)
}

func (c *Composite) DidHighlight(v source.View, path source.IndexPath) {
	ds, cv, local := c.resolve(v, path)
	ds.DidHighlight(cv, local)
}

func (c *Composite) DidUnhighlight(v source.View, path source.IndexPath) {
	ds, cv, local := c.resolve(v, path)
	ds.DidUnhighlight(cv, local)
}

func (c *Composite) ShouldSelect(v source.View, path source.IndexPath) bool {
	ds, cv, local := c.resolve(v, path)
	return ds.ShouldSelect(cv, local)
}

func (c *Composite) DidSelect(v source.View, path source.IndexPath) {
	ds, cv, local := c.resolve(v, path)
	ds.DidSelect(cv, local)
}

func (c *Composite) ShouldDeselect(v source.View, path source.IndexPath) bool {
	ds, cv, local := c.resolve(v, path)
	return ds.ShouldDeselect(cv, local)
}

func (c *Composite) DidDeselect(v source.View, path source.IndexPath) {
	ds, cv, local := c.resolve(v, path)
	ds.DidDeselect(cv, local)
}
