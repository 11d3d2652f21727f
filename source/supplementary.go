package source

import (
	"fmt"
	"sort"
)

// SupplementaryCreator supplies the supplementary views (headers, footers
// and custom kinds) of a data source.
type SupplementaryCreator interface {
	// Register registers every supplementary reuse identifier the creator
	// dequeues.
	Register(v View)
	// View returns the configured view of kind at path.
	View(v View, kind string, path IndexPath) Cell
	// Size returns the size of the view of kind at path.
	Size(v View, kind string, path IndexPath) Size
}

// BasicSupplementary creates one supplementary view per item of Items,
// where Items is indexed by section then item.
type BasicSupplementary[T any, C Cell] struct {
	// Kind is the supplementary kind the identifier is registered for.
	Kind       string
	Identifier string
	New        func() C
	// Items are the values presented by the views, by section and item.
	Items [][]T
	// FixedSize is the size of every view. When nil the size is computed
	// through SizeFunc on every query.
	FixedSize *Size
	SizeFunc  func(item T, path IndexPath) Size
	// Configure, if set, prepares a dequeued view to present an item.
	Configure func(v View, view C, item T, path IndexPath)
}

// NewBasicSupplementary returns a BasicSupplementary of a kind with an
// optional fixed size.
func NewBasicSupplementary[T any, C Cell](kind, identifier string, alloc func() C, size *Size) *BasicSupplementary[T, C] {
	return &BasicSupplementary[T, C]{
		Kind:       kind,
		Identifier: identifier,
		New:        alloc,
		FixedSize:  size,
	}
}

// SetSectionedItems presents one view per section, section i showing
// items[i].
func (s *BasicSupplementary[T, C]) SetSectionedItems(items []T) {
	s.Items = make([][]T, len(items))
	for i, item := range items {
		s.Items[i] = []T{item}
	}
}

// Item returns the value at path.
func (s *BasicSupplementary[T, C]) Item(path IndexPath) T {
	return s.Items[path.Section][path.Item]
}

func (s *BasicSupplementary[T, C]) Register(v View) {
	if s.New == nil {
		panic(fmt.Errorf("supplementary %s %q: must provide a view allocator", s.Kind, s.Identifier))
	}
	v.RegisterSupplementary(s.Kind, s.Identifier, func() Cell { return s.New() })
}

func (s *BasicSupplementary[T, C]) View(v View, kind string, path IndexPath) Cell {
	dequeued := v.DequeueSupplementary(kind, s.Identifier, path)
	view, ok := dequeued.(C)
	if !ok {
		var want C
		panic(fmt.Errorf("supplementary %s %q: cannot use view %T as %T", kind, s.Identifier, dequeued, want))
	}
	if s.Configure != nil {
		s.Configure(v, view, s.Item(path), path)
	}
	return view
}

func (s *BasicSupplementary[T, C]) Size(v View, kind string, path IndexPath) Size {
	if s.FixedSize != nil {
		return *s.FixedSize
	}
	if s.SizeFunc == nil {
		panic(fmt.Errorf("supplementary %s %q: size requested with neither FixedSize nor SizeFunc set", kind, s.Identifier))
	}
	return s.SizeFunc(s.Item(path), path)
}

// KindRouter is a SupplementaryCreator that forwards each kind to the
// creator registered for it.
type KindRouter struct {
	creators map[string]SupplementaryCreator
}

// NewKindRouter returns an empty KindRouter.
func NewKindRouter() *KindRouter {
	return &KindRouter{creators: make(map[string]SupplementaryCreator)}
}

// Set routes kind to creator, replacing any previous creator for it.
func (r *KindRouter) Set(kind string, creator SupplementaryCreator) {
	if creator == nil {
		panic(fmt.Errorf("kind router: nil creator for %s", kind))
	}
	if r.creators == nil {
		r.creators = make(map[string]SupplementaryCreator)
	}
	r.creators[kind] = creator
}

// Creator returns the creator routed for kind.
func (r *KindRouter) Creator(kind string) (SupplementaryCreator, bool) {
	c, ok := r.creators[kind]
	return c, ok
}

// Kinds returns the routed kinds in lexical order.
func (r *KindRouter) Kinds() []string {
	kinds := make([]string, 0, len(r.creators))
	for k := range r.creators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (r *KindRouter) Register(v View) {
	for _, kind := range r.Kinds() {
		r.creators[kind].Register(v)
	}
}

func (r *KindRouter) View(v View, kind string, path IndexPath) Cell {
	return r.route(kind).View(v, kind, path)
}

func (r *KindRouter) Size(v View, kind string, path IndexPath) Size {
	return r.route(kind).Size(v, kind, path)
}

func (r *KindRouter) route(kind string) SupplementaryCreator {
	c, ok := r.creators[kind]
	if !ok {
		panic(fmt.Errorf("kind router: no creator for %s", kind))
	}
	return c
}
