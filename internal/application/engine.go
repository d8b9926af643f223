package application

import (
	"reflect"

	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

// Engine performs a depth-first walk over a root value, dispatching each
// node through the adapter registry and falling back to default behavior
// per shape: labeled scalars, scoped containers, paginated collections.
// An Engine is built once and invoked repeatedly (typically once per
// presentation refresh); the page store is the only state that survives
// between calls.
type Engine struct {
	accessor  ports.Accessor
	sink      ports.EventSink
	registry  Registry
	pages     *PageStore
	threshold int
	markers   map[reflect.Type]bool
	onSelect  func(label string)
}

type engineOptions struct {
	adapters   []Adapter
	pageSize   int
	maxEntries int
	threshold  int
	markers    []reflect.Type
	noBuiltins bool
	onSelect   func(label string)
}

// Option configures an Engine at construction time.
type Option func(*engineOptions)

// WithAdapters registers caller-supplied adapters. They are consulted
// before the built-in ones, in the order given, so the first registration
// claiming a type wins.
func WithAdapters(adapters ...Adapter) Option {
	return func(o *engineOptions) { o.adapters = append(o.adapters, adapters...) }
}

// WithPageSize sets the collection page size (default 5).
func WithPageSize(n int) Option {
	return func(o *engineOptions) { o.pageSize = n }
}

// WithPageThreshold sets the count above which a collection is paginated.
// Defaults to the page size.
func WithPageThreshold(n int) Option {
	return func(o *engineOptions) { o.threshold = n }
}

// WithMaxPageState bounds the number of pagination entries kept alive.
func WithMaxPageState(n int) Option {
	return func(o *engineOptions) { o.maxEntries = n }
}

// WithMarkerTypes declares zero-size marker types. Containers of a marker
// type render no properties even when the accessor reports some, keeping
// purely structural records out of the output.
func WithMarkerTypes(types ...reflect.Type) Option {
	return func(o *engineOptions) { o.markers = append(o.markers, types...) }
}

// WithoutBuiltinAdapters disables the default time.Time and error
// adapters.
func WithoutBuiltinAdapters() Option {
	return func(o *engineOptions) { o.noBuiltins = true }
}

// WithSelectHandler installs a callback fired when the sink selects a
// reference value.
func WithSelectHandler(fn func(label string)) Option {
	return func(o *engineOptions) { o.onSelect = fn }
}

// NewEngine builds an engine over the given accessor and sink. The adapter
// chain and page store are fixed for the engine's lifetime.
func NewEngine(accessor ports.Accessor, sink ports.EventSink, opts ...Option) *Engine {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		accessor: accessor,
		sink:     sink,
		pages:    NewPageStore(o.pageSize, o.maxEntries),
		markers:  make(map[reflect.Type]bool, len(o.markers)),
		onSelect: o.onSelect,
	}
	e.threshold = o.threshold
	if e.threshold <= 0 {
		e.threshold = e.pages.PageSize()
	}
	for _, t := range o.markers {
		e.markers[t] = true
	}
	for _, a := range o.adapters {
		e.registry.register(a)
	}
	if !o.noBuiltins {
		for _, a := range builtinAdapters() {
			e.registry.register(a)
		}
	}
	return e
}

// Pages exposes the engine's page store so consumers can feed page
// selections back between passes.
func (e *Engine) Pages() *PageStore { return e.pages }

// Sink returns the engine's event sink.
func (e *Engine) Sink() ports.EventSink { return e.sink }

// Visit walks root depth-first under the given display name, emitting one
// complete event pass. Work per call is bounded by the visible nodes plus
// one page per paginated collection, which is what makes a call per
// refresh affordable.
func (e *Engine) Visit(name string, root any) {
	v := &Visit{engine: e}
	v.Node(domain.Node{Name: name, Value: root})
}

// Visit is the per-call traversal session. It carries the nesting depth
// and is handed to adapters so they can emit events or descend themselves;
// it is discarded when the pass returns.
type Visit struct {
	engine *Engine
	depth  int
}

// Sink returns the event sink for this pass.
func (v *Visit) Sink() ports.EventSink { return v.engine.sink }

// Depth returns the current nesting depth.
func (v *Visit) Depth() int { return v.depth }

// Node visits one value node: adapter dispatch first, then default
// behavior by shape. The returned outcome is Override when the engine (or
// an adapter) took full control of the node's children.
func (v *Visit) Node(n domain.Node) Outcome {
	if n.Type == nil && n.Value != nil {
		n.Type = reflect.TypeOf(n.Value)
	}
	n.Shape = v.engine.accessor.Shape(n.Value)

	if a := v.engine.registry.Resolve(n.Type); a != nil {
		return a.Inspect(v, n)
	}

	sink := v.engine.sink
	switch n.Shape {
	case domain.ShapeScalar:
		sink.LabeledValue(n.Name, domain.FormatValue(n.Value))
	case domain.ShapeEnumeration:
		en := n.Value.(domain.Enumerated)
		sink.Choice(n.Name, en.EnumOptions(), en.EnumIndex())
	case domain.ShapeReference:
		ref := n.Value.(domain.Referent)
		if sink.Reference(n.Name, ref.RefLabel()) && v.engine.onSelect != nil {
			v.engine.onSelect(ref.RefLabel())
		}
	case domain.ShapeContainer:
		v.container(n)
	case domain.ShapeCollection:
		return v.collection(n)
	default:
		// Unsupported shape: best-effort label, never abort the pass.
		sink.LabeledValue(n.Name, domain.FormatValue(n.Value))
	}
	return Handled
}

// container enters a record scope. The deferred EndContainer guarantees
// begin/end pairing on every path out of this function.
func (v *Visit) container(n domain.Node) {
	expandable := !v.engine.markers[n.Type]
	expand := v.engine.sink.BeginContainer(n.Name, expandable)
	defer v.engine.sink.EndContainer()

	if !expandable || !expand {
		return
	}

	v.depth++
	defer func() { v.depth-- }()

	for _, p := range v.engine.accessor.Properties(n.Value) {
		v.Node(domain.Node{
			Name:     p.Name,
			Value:    p.Get(),
			ReadOnly: n.ReadOnly || p.ReadOnly,
		})
	}
}

// collection iterates a sequence. Small collections are visited in full;
// above the threshold the page store bounds the visit to one page and the
// engine reports Override, since it took control of how the children were
// visited. The deferred EndCollection keeps the scope balanced either way.
func (v *Visit) collection(n domain.Node) Outcome {
	acc := v.engine.accessor
	sink := v.engine.sink
	count := acc.Count(n.Value)

	sink.BeginCollection(n.Name, count)
	defer sink.EndCollection()

	v.depth++
	defer func() { v.depth-- }()

	if count <= v.engine.threshold {
		for i := 0; i < count; i++ {
			name, val := acc.Element(n.Value, i)
			v.Node(domain.Node{Name: name, Value: val, ReadOnly: n.ReadOnly})
		}
		return Handled
	}

	key := acc.Identity(n.Value)
	entry := v.engine.pages.GetOrCreate(key, count)
	sink.PageControl(key, entry.Page, v.engine.pages.MaxPage(count))

	lo, hi := v.engine.pages.Window(entry)
	for i := lo; i < hi; i++ {
		name, val := acc.Element(n.Value, i)
		v.Node(domain.Node{Name: name, Value: val, ReadOnly: n.ReadOnly})
	}
	return Override
}
