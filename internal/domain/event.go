package domain

import (
	"encoding/json"
	"fmt"
)

// Event is one entry in the ordered stream a traversal pass emits.
// Begin/End pairs are balanced on every pass regardless of adapter
// overrides or early exits.
type Event interface {
	// Kind returns the stable event name used for recording and replay.
	Kind() string
}

// LabeledValue is a scalar leaf: a name and its formatted value.
type LabeledValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Choice is an enumeration leaf: all named options plus the current index.
type Choice struct {
	Name     string   `json:"name"`
	Options  []string `json:"options"`
	Selected int      `json:"selected"`
}

// BeginContainer opens a nested record scope. A matching EndContainer
// always follows, with zero intervening children when Expandable is false
// or the sink declines to expand.
type BeginContainer struct {
	Name       string `json:"name"`
	Expandable bool   `json:"expandable"`
}

// EndContainer balances the most recent unmatched BeginContainer.
type EndContainer struct{}

// BeginCollection opens a sequence scope. Count is the total element
// count, not the number of elements visited this pass.
type BeginCollection struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PageControl reports the page selection for a paginated collection.
// Key identifies the collection instance so a page change can be fed back
// before the next pass. Emitted only when the collection is paginated.
type PageControl struct {
	Key     string `json:"key"`
	Page    int    `json:"page"`
	MaxPage int    `json:"maxPage"`
}

// EndCollection balances the most recent unmatched BeginCollection.
type EndCollection struct{}

// ReferenceValue is a leaf denoting an entity in an external store.
type ReferenceValue struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (LabeledValue) Kind() string    { return "labeled_value" }
func (Choice) Kind() string          { return "choice" }
func (BeginContainer) Kind() string  { return "begin_container" }
func (EndContainer) Kind() string    { return "end_container" }
func (BeginCollection) Kind() string { return "begin_collection" }
func (PageControl) Kind() string     { return "page_control" }
func (EndCollection) Kind() string   { return "end_collection" }
func (ReferenceValue) Kind() string  { return "reference_value" }

// EncodeEvent serializes an event into its kind plus a JSON payload,
// suitable for the session log.
func EncodeEvent(ev Event) (kind string, payload []byte, err error) {
	payload, err = json.Marshal(ev)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s event: %w", ev.Kind(), err)
	}
	return ev.Kind(), payload, nil
}

// DecodeEvent is the inverse of EncodeEvent.
func DecodeEvent(kind string, payload []byte) (Event, error) {
	var ev Event
	switch kind {
	case "labeled_value":
		var e LabeledValue
		ev = &e
	case "choice":
		var e Choice
		ev = &e
	case "begin_container":
		var e BeginContainer
		ev = &e
	case "end_container":
		return EndContainer{}, nil
	case "begin_collection":
		var e BeginCollection
		ev = &e
	case "page_control":
		var e PageControl
		ev = &e
	case "end_collection":
		return EndCollection{}, nil
	case "reference_value":
		var e ReferenceValue
		ev = &e
	default:
		return nil, fmt.Errorf("unknown event kind: %s", kind)
	}
	if err := json.Unmarshal(payload, ev); err != nil {
		return nil, fmt.Errorf("decode %s event: %w", kind, err)
	}
	return deref(ev), nil
}

// deref returns the value form of a decoded event so replayed streams
// compare equal to captured ones.
func deref(ev Event) Event {
	switch e := ev.(type) {
	case *LabeledValue:
		return *e
	case *Choice:
		return *e
	case *BeginContainer:
		return *e
	case *BeginCollection:
		return *e
	case *PageControl:
		return *e
	case *ReferenceValue:
		return *e
	default:
		return ev
	}
}
