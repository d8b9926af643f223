package ports

// EventSink consumes the ordered event stream of one traversal pass.
// Implementations render, capture, or record the events; the only values
// flowing back into the engine are the BeginContainer expand decision and
// the Reference selection flag.
type EventSink interface {
	// LabeledValue reports a scalar leaf.
	LabeledValue(name, value string)

	// Choice reports an enumeration leaf with all named options and the
	// index of the current one.
	Choice(name string, options []string, selected int)

	// BeginContainer opens a record scope and returns whether the sink
	// wants the container's properties. A matching EndContainer follows
	// on every path regardless of the return value.
	BeginContainer(name string, expandable bool) bool

	// EndContainer balances the most recent unmatched BeginContainer.
	EndContainer()

	// BeginCollection opens a sequence scope with its total count.
	BeginCollection(name string, count int)

	// PageControl reports the page selection for a paginated collection.
	// key identifies the collection so the consumer can feed a page
	// change back through the page store before the next pass.
	PageControl(key string, page, maxPage int)

	// EndCollection balances the most recent unmatched BeginCollection.
	EndCollection()

	// Reference reports a handle into an external store and returns
	// whether the consumer selected it.
	Reference(name, label string) bool
}
