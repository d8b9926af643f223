// Package textrender renders a traversal event stream as indented plain
// text, for the CLI and for replaying recorded sessions.
package textrender

import (
	"fmt"
	"strings"

	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

const indentStep = "  "

// Renderer is an EventSink that builds an indented text listing. It always
// expands containers and never selects references.
type Renderer struct {
	b     strings.Builder
	depth int
}

var _ ports.EventSink = (*Renderer)(nil)

// New creates an empty renderer
func New() *Renderer { return &Renderer{} }

// String returns the rendered listing so far.
func (r *Renderer) String() string { return r.b.String() }

func (r *Renderer) line(format string, args ...any) {
	r.b.WriteString(strings.Repeat(indentStep, r.depth))
	fmt.Fprintf(&r.b, format, args...)
	r.b.WriteByte('\n')
}

// LabeledValue renders "name: value"
func (r *Renderer) LabeledValue(name, value string) {
	r.line("%s: %s", name, value)
}

// Choice renders the selected option plus the full option set
func (r *Renderer) Choice(name string, options []string, selected int) {
	current := "?"
	if selected >= 0 && selected < len(options) {
		current = options[selected]
	}
	r.line("%s: %s (one of %s)", name, current, strings.Join(options, ", "))
}

// BeginContainer opens an indented block; always expands
func (r *Renderer) BeginContainer(name string, expandable bool) bool {
	if !expandable {
		r.line("%s", name)
	} else {
		r.line("%s:", name)
	}
	r.depth++
	return true
}

// EndContainer closes the block
func (r *Renderer) EndContainer() {
	r.depth--
}

// BeginCollection opens an indented block with the total count
func (r *Renderer) BeginCollection(name string, count int) {
	r.line("%s: (%d items)", name, count)
	r.depth++
}

// PageControl renders the page indicator, one-based for humans
func (r *Renderer) PageControl(key string, page, maxPage int) {
	r.line("‹page %d/%d›", page+1, maxPage+1)
}

// EndCollection closes the block
func (r *Renderer) EndCollection() {
	r.depth--
}

// Reference renders "name -> label" without selecting
func (r *Renderer) Reference(name, label string) bool {
	r.line("%s -> %s", name, label)
	return false
}

// RenderEvents replays a captured event stream through a fresh renderer
// and returns the listing. Used for recorded sessions, where the expand
// decisions were already taken at capture time.
func RenderEvents(events []domain.Event) string {
	r := New()
	for _, ev := range events {
		switch e := ev.(type) {
		case domain.LabeledValue:
			r.LabeledValue(e.Name, e.Value)
		case domain.Choice:
			r.Choice(e.Name, e.Options, e.Selected)
		case domain.BeginContainer:
			r.BeginContainer(e.Name, e.Expandable)
		case domain.EndContainer:
			r.EndContainer()
		case domain.BeginCollection:
			r.BeginCollection(e.Name, e.Count)
		case domain.PageControl:
			r.PageControl(e.Key, e.Page, e.MaxPage)
		case domain.EndCollection:
			r.EndCollection()
		case domain.ReferenceValue:
			r.Reference(e.Name, e.Label)
		}
	}
	return r.String()
}
