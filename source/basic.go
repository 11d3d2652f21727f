package source

import "fmt"

// Basic is a single-section DataSource presenting a slice of values of one
// type with cells of one type.
//
// The zero value is not usable: Identifier and New must be set before the
// data source is registered with a View.
type Basic[T any, C Cell] struct {
	// Identifier is the reuse identifier cells are registered and dequeued
	// under.
	Identifier string
	// New allocates an unconfigured cell.
	New func() C
	// Values holds the items, in presentation order.
	Values []T
	// ItemSize is the size of every item, unless SizeFunc is set.
	ItemSize Size
	// SizeFunc, if set, computes the size of each item at query time.
	SizeFunc func(item T, path IndexPath) Size
	// Configure, if set, prepares a dequeued cell to present an item. It
	// runs before Selector.Configure, so the selector sees the configured
	// cell and may override it.
	Configure func(v View, cell C, item T, path IndexPath)
	// Selector, if set, configures cells after Configure and answers
	// highlight and selection queries. Without one every item may be
	// highlighted and selected.
	Selector Selector[T, C]
	// Creator, if set, supplies the supplementary views of this data source.
	Creator SupplementaryCreator
}

// NewBasic returns a Basic dequeuing cells created by alloc under identifier.
func NewBasic[T any, C Cell](identifier string, alloc func() C) *Basic[T, C] {
	return &Basic[T, C]{
		Identifier: identifier,
		New:        alloc,
	}
}

// SetSelector installs the selection handler.
func (b *Basic[T, C]) SetSelector(s Selector[T, C]) {
	b.Selector = s
}

// Item returns the value at path.
func (b *Basic[T, C]) Item(path IndexPath) T {
	return b.Values[path.Item]
}

func (b *Basic[T, C]) Register(v View) {
	switch {
	case b.Identifier == "":
		panic(fmt.Errorf("basic data source: must provide a reuse identifier"))
	case b.New == nil:
		panic(fmt.Errorf("basic data source %q: must provide a cell allocator", b.Identifier))
	}
	v.Register(b.Identifier, func() Cell { return b.New() })
	if b.Creator != nil {
		b.Creator.Register(v)
	}
}

func (b *Basic[T, C]) Sections() int {
	return 1
}

func (b *Basic[T, C]) Items(section int) int {
	if section != 0 {
		panic(fmt.Errorf("basic data source %q: section %d out of range [0,1)", b.Identifier, section))
	}
	return len(b.Values)
}

func (b *Basic[T, C]) Cell(v View, path IndexPath) Cell {
	dequeued := v.Dequeue(b.Identifier, path)
	cell, ok := dequeued.(C)
	if !ok {
		var want C
		panic(fmt.Errorf("basic data source %q: cannot use cell %T as %T", b.Identifier, dequeued, want))
	}
	item := b.Item(path)
	if b.Configure != nil {
		b.Configure(v, cell, item, path)
	}
	if b.Selector != nil {
		b.Selector.Configure(v, cell, item, path)
	}
	return cell
}

func (b *Basic[T, C]) Size(v View, path IndexPath) Size {
	if b.SizeFunc != nil {
		return b.SizeFunc(b.Item(path), path)
	}
	return b.ItemSize
}

func (b *Basic[T, C]) Supplementary(v View, kind string, path IndexPath) Cell {
	return b.creator(kind).View(v, kind, path)
}

func (b *Basic[T, C]) SupplementarySize(v View, kind string, path IndexPath) Size {
	return b.creator(kind).Size(v, kind, path)
}

func (b *Basic[T, C]) creator(kind string) SupplementaryCreator {
	if b.Creator == nil {
		panic(fmt.Errorf("basic data source %q: %s requested without a supplementary creator", b.Identifier, kind))
	}
	return b.Creator
}

func (b *Basic[T, C]) ShouldHighlight(v View, path IndexPath) bool {
	if b.Selector == nil {
		return true
	}
	return b.Selector.ShouldHighlight(v, b.Item(path), path)
}

func (b *Basic[T, C]) DidHighlight(v View, path IndexPath) {
	if b.Selector != nil {
		b.Selector.DidHighlight(v, b.Item(path), path)
	}
}

func (b *Basic[T, C]) DidUnhighlight(v View, path IndexPath) {
	if b.Selector != nil {
		b.Selector.DidUnhighlight(v, b.Item(path), path)
	}
}

func (b *Basic[T, C]) ShouldSelect(v View, path IndexPath) bool {
	if b.Selector == nil {
		return true
	}
	return b.Selector.ShouldSelect(v, b.Item(path), path)
}

func (b *Basic[T, C]) DidSelect(v View, path IndexPath) {
	if b.Selector != nil {
		b.Selector.DidSelect(v, b.Item(path), path)
	}
}

func (b *Basic[T, C]) ShouldDeselect(v View, path IndexPath) bool {
	if b.Selector == nil {
		return true
	}
	return b.Selector.ShouldDeselect(v, b.Item(path), path)
}

func (b *Basic[T, C]) DidDeselect(v View, path IndexPath) {
	if b.Selector != nil {
		b.Selector.DidDeselect(v, b.Item(path), path)
	}
}
