package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"spyglass/internal/adapters/reflectval"
	"spyglass/internal/application"
	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

// fakeSessionLog keeps sessions in memory.
type fakeSessionLog struct {
	nextID    int64
	labels    map[int64]string
	events    map[int64][]domain.Event
	appendErr error
}

func newFakeSessionLog() *fakeSessionLog {
	return &fakeSessionLog{
		labels: make(map[int64]string),
		events: make(map[int64][]domain.Event),
	}
}

func (f *fakeSessionLog) BeginSession(label string) (int64, error) {
	f.nextID++
	f.labels[f.nextID] = label
	return f.nextID, nil
}

func (f *fakeSessionLog) Append(sessionID int64, seq int, ev domain.Event) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events[sessionID] = append(f.events[sessionID], ev)
	return nil
}

func (f *fakeSessionLog) Sessions() ([]ports.SessionInfo, error) {
	var infos []ports.SessionInfo
	for id, label := range f.labels {
		infos = append(infos, ports.SessionInfo{ID: id, Label: label, Events: len(f.events[id])})
	}
	return infos, nil
}

func (f *fakeSessionLog) Replay(sessionID int64) ([]domain.Event, error) {
	return f.events[sessionID], nil
}

func (f *fakeSessionLog) Close() error { return nil }

func TestDumpCommand(t *testing.T) {
	root := map[string]any{"x": 1.0, "y": "z"}

	cmd := NewDumpCommand(reflectval.New(), "doc", root)
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	want := []domain.Event{
		domain.BeginContainer{Name: "doc", Expandable: true},
		domain.LabeledValue{Name: "x", Value: "1"},
		domain.LabeledValue{Name: "y", Value: `"z"`},
		domain.EndContainer{},
	}
	if !reflect.DeepEqual(result.Events, want) {
		t.Errorf("events = %#v, want %#v", result.Events, want)
	}
	if result.Message == "" {
		t.Error("expected a summary message")
	}
}

func TestDumpCommandCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewDumpCommand(reflectval.New(), "doc", nil).Execute(ctx); err == nil {
		t.Error("expected context error")
	}
}

func TestRecordThenReplay(t *testing.T) {
	log := newFakeSessionLog()
	root := map[string]any{"x": 1.0, "list": []any{"a", "b"}}

	recorded, err := NewRecordCommand(reflectval.New(), log, "doc.json", root).Execute(context.Background())
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if recorded.Events == 0 {
		t.Fatal("recorded zero events")
	}

	replayed, err := NewReplayCommand(log, recorded.SessionID).Execute(context.Background())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if len(replayed.Events) != recorded.Events {
		t.Errorf("replayed %d events, recorded %d", len(replayed.Events), recorded.Events)
	}

	// A recorded session replays exactly what a plain dump would emit.
	dumped, err := NewDumpCommand(reflectval.New(), "doc.json", root).Execute(context.Background())
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !reflect.DeepEqual(replayed.Events, dumped.Events) {
		t.Errorf("replayed = %#v, want %#v", replayed.Events, dumped.Events)
	}
}

func TestRecordCommandAppendFailure(t *testing.T) {
	log := newFakeSessionLog()
	log.appendErr = errors.New("disk full")

	_, err := NewRecordCommand(reflectval.New(), log, "doc", map[string]any{"x": 1.0}).Execute(context.Background())
	if err == nil {
		t.Error("expected append failure to surface")
	}
}

func TestReplayCommandUnknownSession(t *testing.T) {
	if _, err := NewReplayCommand(newFakeSessionLog(), 42).Execute(context.Background()); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestDumpCommandHonorsOptions(t *testing.T) {
	items := make([]any, 23)
	for i := range items {
		items[i] = float64(i)
	}

	result, err := NewDumpCommand(reflectval.New(), "items", items,
		application.WithPageSize(5)).Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var control *domain.PageControl
	for _, ev := range result.Events {
		if pc, ok := ev.(domain.PageControl); ok {
			control = &pc
			break
		}
	}
	if control == nil {
		t.Fatal("expected a paginated traversal")
	}
	if control.MaxPage != 4 {
		t.Errorf("maxPage = %d, want 4", control.MaxPage)
	}
}
