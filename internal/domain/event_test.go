package domain

import (
	"reflect"
	"testing"
)

func TestEventCodecRoundTrip(t *testing.T) {
	events := []Event{
		LabeledValue{Name: "x", Value: "1"},
		Choice{Name: "mode", Options: []string{"off", "on"}, Selected: 1},
		BeginContainer{Name: "rec", Expandable: true},
		EndContainer{},
		BeginCollection{Name: "items", Count: 23},
		PageControl{Key: "items@0xbeef", Page: 2, MaxPage: 4},
		EndCollection{},
		ReferenceValue{Name: "target", Label: "entity#7"},
	}

	for _, ev := range events {
		t.Run(ev.Kind(), func(t *testing.T) {
			kind, payload, err := EncodeEvent(ev)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if kind != ev.Kind() {
				t.Errorf("kind = %q, want %q", kind, ev.Kind())
			}
			back, err := DecodeEvent(kind, payload)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(back, ev) {
				t.Errorf("round trip = %#v, want %#v", back, ev)
			}
		})
	}
}

func TestDecodeEventUnknownKind(t *testing.T) {
	if _, err := DecodeEvent("no_such_kind", []byte("{}")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
