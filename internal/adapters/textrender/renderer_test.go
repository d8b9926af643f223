package textrender

import (
	"testing"

	"spyglass/internal/adapters/reflectval"
	"spyglass/internal/application"
	"spyglass/internal/domain"
)

func TestRendererOutput(t *testing.T) {
	r := New()
	engine := application.NewEngine(reflectval.New(), r, application.WithPageSize(5))

	root := map[string]any{
		"name":  "probe",
		"ratio": 2.5,
		"tags":  []any{"a", "b"},
	}
	engine.Visit("root", root)

	want := "root:\n" +
		"  name: \"probe\"\n" +
		"  ratio: 2.5\n" +
		"  tags: (2 items)\n" +
		"    [0]: \"a\"\n" +
		"    [1]: \"b\"\n"
	if got := r.String(); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRendererPaginatedCollection(t *testing.T) {
	r := New()
	engine := application.NewEngine(reflectval.New(), r, application.WithPageSize(5))

	items := make([]any, 23)
	for i := range items {
		items[i] = i
	}
	engine.Visit("items", items)

	want := "items: (23 items)\n" +
		"  ‹page 1/5›\n" +
		"  [0]: 0\n" +
		"  [1]: 1\n" +
		"  [2]: 2\n" +
		"  [3]: 3\n" +
		"  [4]: 4\n"
	if got := r.String(); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRendererChoiceAndReference(t *testing.T) {
	r := New()
	r.Choice("mode", []string{"off", "on"}, 1)
	r.Choice("bad", []string{"off", "on"}, 5)
	r.Reference("target", "entity#7")

	want := "mode: on (one of off, on)\n" +
		"bad: ? (one of off, on)\n" +
		"target -> entity#7\n"
	if got := r.String(); got != want {
		t.Errorf("rendered:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderEventsMatchesLiveRender(t *testing.T) {
	root := map[string]any{"x": 1, "list": []any{"a", "b", "c"}}

	live := New()
	application.NewEngine(reflectval.New(), live).Visit("root", root)

	capture := &application.CaptureSink{}
	application.NewEngine(reflectval.New(), capture).Visit("root", root)

	if got := RenderEvents(capture.Events); got != live.String() {
		t.Errorf("replayed render differs:\n%s\nwant:\n%s", got, live.String())
	}
}

func TestRenderEventsCollapsedContainer(t *testing.T) {
	events := []domain.Event{
		domain.BeginContainer{Name: "sealed", Expandable: false},
		domain.EndContainer{},
	}
	if got := RenderEvents(events); got != "sealed\n" {
		t.Errorf("rendered %q, want %q", got, "sealed\n")
	}
}
