package views

import (
	"strings"

	"spyglass/internal/application"
	"spyglass/internal/ports"
)

type lineKind int

const (
	lineScalar lineKind = iota
	lineChoice
	lineContainer
	lineCollection
	linePage
	lineReference
	linePad
)

// line is one rendered row of the inspector: enough of the originating
// event to style it, toggle it, page it, or copy its value.
type line struct {
	kind       lineKind
	depth      int
	path       string // container path, for the collapsed set
	name       string
	value      string // copyable value for leaf lines
	count      int
	options    []string
	pageKey    string // identity of the owning paginated collection
	page       int
	maxPage    int
	expandable bool
}

// lineSink is the inspector's EventSink: it turns one traversal pass into
// a flat list of lines. Expansion decisions come from the collapsed set;
// rendered extents per paginated collection are fed back into the page
// store and short windows are padded up to the cached extent so the layout
// does not jump when pages change.
type lineSink struct {
	pages     *application.PageStore
	collapsed map[string]bool

	lines []line
	stack []string // current container/collection path
	depth int
	open  []colScope // open collection scopes
}

// colScope tracks one open collection while its elements stream in.
type colScope struct {
	start int    // index of the first line after BeginCollection
	key   string // set when PageControl arrives; empty if unpaginated
	depth int
}

var _ ports.EventSink = (*lineSink)(nil)

func newLineSink() *lineSink {
	return &lineSink{collapsed: make(map[string]bool)}
}

func (s *lineSink) reset() {
	s.lines = s.lines[:0]
	s.stack = s.stack[:0]
	s.open = s.open[:0]
	s.depth = 0
}

func (s *lineSink) path() string {
	return strings.Join(s.stack, ".")
}

// LabeledValue appends a scalar line
func (s *lineSink) LabeledValue(name, value string) {
	s.lines = append(s.lines, line{kind: lineScalar, depth: s.depth, name: name, value: value})
}

// Choice appends an enumeration line
func (s *lineSink) Choice(name string, options []string, selected int) {
	current := "?"
	if selected >= 0 && selected < len(options) {
		current = options[selected]
	}
	s.lines = append(s.lines, line{
		kind: lineChoice, depth: s.depth, name: name,
		value: current, options: options,
	})
}

// BeginContainer appends a container line and reports the expand decision
// from the collapsed set.
func (s *lineSink) BeginContainer(name string, expandable bool) bool {
	s.stack = append(s.stack, name)
	s.lines = append(s.lines, line{
		kind: lineContainer, depth: s.depth, name: name,
		path: s.path(), expandable: expandable,
	})
	s.depth++
	return expandable && !s.collapsed[s.path()]
}

// EndContainer closes the container scope
func (s *lineSink) EndContainer() {
	s.depth--
	s.stack = s.stack[:len(s.stack)-1]
}

// BeginCollection appends a collection line and opens its scope
func (s *lineSink) BeginCollection(name string, count int) {
	s.stack = append(s.stack, name)
	s.lines = append(s.lines, line{
		kind: lineCollection, depth: s.depth, name: name,
		path: s.path(), count: count,
	})
	s.depth++
	s.open = append(s.open, colScope{start: len(s.lines), depth: s.depth})
}

// PageControl appends the page line and binds the collection's key
func (s *lineSink) PageControl(key string, page, maxPage int) {
	if n := len(s.open); n > 0 {
		s.open[n-1].key = key
		// Attach paging info to the collection line too, so paging keys
		// work with the cursor on either line.
		if i := s.open[n-1].start - 1; i >= 0 {
			s.lines[i].pageKey = key
			s.lines[i].page = page
			s.lines[i].maxPage = maxPage
		}
	}
	s.lines = append(s.lines, line{
		kind: linePage, depth: s.depth,
		pageKey: key, page: page, maxPage: maxPage,
	})
}

// EndCollection closes the scope, records the rendered extent, and pads
// short pages up to the cached extent.
func (s *lineSink) EndCollection() {
	n := len(s.open) - 1
	scope := s.open[n]
	s.open = s.open[:n]

	if scope.key != "" && s.pages != nil {
		rendered := len(s.lines) - scope.start
		s.pages.ObserveExtent(scope.key, rendered)
		for len(s.lines)-scope.start < s.pages.Extent(scope.key) {
			s.lines = append(s.lines, line{kind: linePad, depth: scope.depth})
		}
	}

	s.depth--
	s.stack = s.stack[:len(s.stack)-1]
}

// Reference appends a reference line without selecting it
func (s *lineSink) Reference(name, label string) bool {
	s.lines = append(s.lines, line{kind: lineReference, depth: s.depth, name: name, value: label})
	return false
}
