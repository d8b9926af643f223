package application

import (
	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

// CaptureSink records the event stream of a pass as domain.Event values.
// It always expands containers and never selects references, making it the
// neutral consumer used by commands, the MCP tools, and tests.
type CaptureSink struct {
	Events []domain.Event
}

var _ ports.EventSink = (*CaptureSink)(nil)

// Reset clears the captured events so the sink can take another pass.
func (c *CaptureSink) Reset() { c.Events = c.Events[:0] }

// LabeledValue records a scalar leaf
func (c *CaptureSink) LabeledValue(name, value string) {
	c.Events = append(c.Events, domain.LabeledValue{Name: name, Value: value})
}

// Choice records an enumeration leaf
func (c *CaptureSink) Choice(name string, options []string, selected int) {
	opts := make([]string, len(options))
	copy(opts, options)
	c.Events = append(c.Events, domain.Choice{Name: name, Options: opts, Selected: selected})
}

// BeginContainer records the scope open and asks for the body
func (c *CaptureSink) BeginContainer(name string, expandable bool) bool {
	c.Events = append(c.Events, domain.BeginContainer{Name: name, Expandable: expandable})
	return true
}

// EndContainer records the scope close
func (c *CaptureSink) EndContainer() {
	c.Events = append(c.Events, domain.EndContainer{})
}

// BeginCollection records the sequence open
func (c *CaptureSink) BeginCollection(name string, count int) {
	c.Events = append(c.Events, domain.BeginCollection{Name: name, Count: count})
}

// PageControl records the page selection
func (c *CaptureSink) PageControl(key string, page, maxPage int) {
	c.Events = append(c.Events, domain.PageControl{Key: key, Page: page, MaxPage: maxPage})
}

// EndCollection records the sequence close
func (c *CaptureSink) EndCollection() {
	c.Events = append(c.Events, domain.EndCollection{})
}

// Reference records the handle without selecting it
func (c *CaptureSink) Reference(name, label string) bool {
	c.Events = append(c.Events, domain.ReferenceValue{Name: name, Label: label})
	return false
}

// RecordingSink tees every event into a session log while delegating the
// expand and select decisions to an inner sink. With a nil inner sink it
// behaves like CaptureSink's always-expand policy.
type RecordingSink struct {
	log       ports.SessionLog
	sessionID int64
	seq       int
	inner     ports.EventSink
	err       error
}

var _ ports.EventSink = (*RecordingSink)(nil)

// NewRecordingSink wraps inner so all events of a pass land in the log
// under the given session.
func NewRecordingSink(log ports.SessionLog, sessionID int64, inner ports.EventSink) *RecordingSink {
	return &RecordingSink{log: log, sessionID: sessionID, inner: inner}
}

// Err returns the first append error, if any. The traversal itself never
// aborts on a logging failure.
func (r *RecordingSink) Err() error { return r.err }

func (r *RecordingSink) record(ev domain.Event) {
	if err := r.log.Append(r.sessionID, r.seq, ev); err != nil && r.err == nil {
		r.err = err
	}
	r.seq++
}

// LabeledValue records and forwards
func (r *RecordingSink) LabeledValue(name, value string) {
	r.record(domain.LabeledValue{Name: name, Value: value})
	if r.inner != nil {
		r.inner.LabeledValue(name, value)
	}
}

// Choice records and forwards
func (r *RecordingSink) Choice(name string, options []string, selected int) {
	r.record(domain.Choice{Name: name, Options: options, Selected: selected})
	if r.inner != nil {
		r.inner.Choice(name, options, selected)
	}
}

// BeginContainer records and forwards the expand decision
func (r *RecordingSink) BeginContainer(name string, expandable bool) bool {
	r.record(domain.BeginContainer{Name: name, Expandable: expandable})
	if r.inner != nil {
		return r.inner.BeginContainer(name, expandable)
	}
	return true
}

// EndContainer records and forwards
func (r *RecordingSink) EndContainer() {
	r.record(domain.EndContainer{})
	if r.inner != nil {
		r.inner.EndContainer()
	}
}

// BeginCollection records and forwards
func (r *RecordingSink) BeginCollection(name string, count int) {
	r.record(domain.BeginCollection{Name: name, Count: count})
	if r.inner != nil {
		r.inner.BeginCollection(name, count)
	}
}

// PageControl records and forwards
func (r *RecordingSink) PageControl(key string, page, maxPage int) {
	r.record(domain.PageControl{Key: key, Page: page, MaxPage: maxPage})
	if r.inner != nil {
		r.inner.PageControl(key, page, maxPage)
	}
}

// EndCollection records and forwards
func (r *RecordingSink) EndCollection() {
	r.record(domain.EndCollection{})
	if r.inner != nil {
		r.inner.EndCollection()
	}
}

// Reference records and forwards the selection decision
func (r *RecordingSink) Reference(name, label string) bool {
	r.record(domain.ReferenceValue{Name: name, Label: label})
	if r.inner != nil {
		return r.inner.Reference(name, label)
	}
	return false
}
