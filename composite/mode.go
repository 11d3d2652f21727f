package composite

// Mode decides how the sections of child data sources are presented.
type Mode uint8

const (
	noMode Mode = iota
	// Single flattens the items of every child into one shared section.
	// Children must have at most one section each.
	Single
	// Multi gives each child its own contiguous run of sections, in the
	// order the children were added.
	Multi
)

// String converts a mode into a printable representation.
func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multi:
		return "multi"
	default:
		return "unknown mode"
	}
}

func (m Mode) valid() bool {
	return m == Single || m == Multi
}
