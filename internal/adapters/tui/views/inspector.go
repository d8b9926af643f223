package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"spyglass/internal/adapters/jsonsource"
	"spyglass/internal/adapters/tui/styles"
	"spyglass/internal/application"
	"spyglass/internal/ports"
)

// InspectorKeyMap defines key bindings for the inspector view
type InspectorKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Collapse key.Binding
	Expand   key.Binding
	Toggle   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var InspectorKeys = InspectorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Collapse: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Expand: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "toggle"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("ctrl+f", "pgdown"),
		key.WithHelp("ctrl+f", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("ctrl+b", "pgup"),
		key.WithHelp("ctrl+b", "prev page"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy value"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// InspectorModel is the model for the value-tree inspector view. Each
// refresh runs one traversal pass through a line-building sink; key
// presses mutate the collapsed set or the page store and trigger the next
// pass.
type InspectorModel struct {
	path   string
	root   any
	engine *application.Engine
	sink   *lineSink

	cursor  int
	scroll  int
	width   int
	height  int
	loading bool
	spin    spinner.Model

	message    string
	messageErr bool
}

// NewInspectorModel creates an inspector for the JSON file at path.
func NewInspectorModel(accessor ports.Accessor, path string, opts ...application.Option) *InspectorModel {
	sink := newLineSink()
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &InspectorModel{
		path:    path,
		sink:    sink,
		spin:    sp,
		loading: true,
	}
	m.engine = application.NewEngine(accessor, sink, opts...)
	sink.pages = m.engine.Pages()
	return m
}

// Init starts loading the file
func (m *InspectorModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadRoot)
}

func (m *InspectorModel) loadRoot() tea.Msg {
	root, err := jsonsource.Load(m.path)
	if err != nil {
		return errMsg{err}
	}
	return rootLoadedMsg{root}
}

type rootLoadedMsg struct {
	root any
}

type errMsg struct {
	err error
}

// SwitchToHelpMsg asks the app to show the help view
type SwitchToHelpMsg struct{}

// refresh runs one traversal pass and rebuilds the rendered lines.
func (m *InspectorModel) refresh() {
	m.sink.reset()
	m.engine.Visit(m.path, m.root)
	if m.cursor >= len(m.sink.lines) {
		m.cursor = len(m.sink.lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update handles messages for the inspector view
func (m *InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rootLoadedMsg:
		m.loading = false
		m.root = msg.root
		m.message = ""
		m.refresh()
		return m, nil

	case errMsg:
		m.loading = false
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *InspectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, InspectorKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, InspectorKeys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }

	case key.Matches(msg, InspectorKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, InspectorKeys.Down):
		if m.cursor < len(m.sink.lines)-1 {
			m.cursor++
		}

	case key.Matches(msg, InspectorKeys.Collapse):
		m.setCollapsed(true)

	case key.Matches(msg, InspectorKeys.Expand):
		m.setCollapsed(false)

	case key.Matches(msg, InspectorKeys.Toggle):
		if ln := m.current(); ln != nil && ln.kind == lineContainer && ln.expandable {
			m.sink.collapsed[ln.path] = !m.sink.collapsed[ln.path]
			m.refresh()
		}

	case key.Matches(msg, InspectorKeys.NextPage):
		m.movePage(1)

	case key.Matches(msg, InspectorKeys.PrevPage):
		m.movePage(-1)

	case key.Matches(msg, InspectorKeys.Copy):
		m.copyValue()

	case key.Matches(msg, InspectorKeys.Reload):
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.loadRoot)
	}

	return m, nil
}

func (m *InspectorModel) current() *line {
	if m.cursor < 0 || m.cursor >= len(m.sink.lines) {
		return nil
	}
	return &m.sink.lines[m.cursor]
}

func (m *InspectorModel) setCollapsed(collapsed bool) {
	ln := m.current()
	if ln == nil || ln.kind != lineContainer || !ln.expandable {
		return
	}
	if m.sink.collapsed[ln.path] == collapsed {
		return
	}
	m.sink.collapsed[ln.path] = collapsed
	m.refresh()
}

// movePage shifts the page of the collection the cursor sits on (or in).
func (m *InspectorModel) movePage(delta int) {
	ln := m.current()
	if ln == nil {
		return
	}
	key, page := ln.pageKey, ln.page
	if key == "" {
		// Fall back to the innermost enclosing paginated collection.
		for i := m.cursor; i >= 0; i-- {
			if m.sink.lines[i].pageKey != "" {
				key, page = m.sink.lines[i].pageKey, m.sink.lines[i].page
				break
			}
		}
	}
	if key == "" {
		return
	}
	m.engine.Pages().SetPage(key, page+delta)
	m.refresh()
}

func (m *InspectorModel) copyValue() {
	ln := m.current()
	if ln == nil || ln.value == "" {
		return
	}
	if err := clipboard.WriteAll(ln.value); err != nil {
		m.message = fmt.Sprintf("copy failed: %v", err)
		m.messageErr = true
		return
	}
	m.message = "copied"
	m.messageErr = false
}

// View renders the inspector view
func (m *InspectorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("spyglass"))
	b.WriteString(" ")
	b.WriteString(styles.Subtitle.Render(m.path))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" loading...")
		return styles.App.Render(b.String())
	}

	visible := m.visibleLines()
	lo, hi := m.window(len(m.sink.lines), visible)
	for i := lo; i < hi; i++ {
		b.WriteString(m.renderLine(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		b.WriteString(RenderMessage(m.message, m.messageErr))
		b.WriteString("\n")
	}
	b.WriteString(RenderHelpLine(
		InspectorKeys.Up, InspectorKeys.Down, InspectorKeys.Toggle,
		InspectorKeys.NextPage, InspectorKeys.Copy,
		InspectorKeys.Help, InspectorKeys.Quit,
	))

	return styles.App.Render(b.String())
}

// visibleLines returns how many tree lines fit in the current height.
func (m *InspectorModel) visibleLines() int {
	// Title, blank, trailing blank, message/help lines, app padding.
	reserved := 8
	if m.height > reserved {
		return m.height - reserved
	}
	return 20
}

// window keeps the cursor inside the visible slice of lines.
func (m *InspectorModel) window(total, visible int) (lo, hi int) {
	if total <= visible {
		return 0, total
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	hi = m.scroll + visible
	if hi > total {
		hi = total
	}
	return m.scroll, hi
}

func (m *InspectorModel) renderLine(i int) string {
	ln := m.sink.lines[i]
	indent := strings.Repeat("  ", ln.depth)

	var text string
	switch ln.kind {
	case lineContainer:
		marker := styles.TreeLeaf
		if ln.expandable {
			marker = styles.TreeExpanded
			if m.sink.collapsed[ln.path] {
				marker = styles.TreeCollapsed
			}
		}
		text = marker + styles.ContainerName.Render(ln.name)

	case lineCollection:
		text = styles.TreeLeaf + styles.NodeName.Render(ln.name) +
			styles.CollectionInfo.Render(fmt.Sprintf(" (%d items)", ln.count))

	case linePage:
		text = styles.TreeLeaf + RenderPageIndicator(ln.page, ln.maxPage)

	case lineChoice:
		text = styles.TreeLeaf + styles.NodeName.Render(ln.name+":") + " " +
			styles.ChoiceValue.Render(ln.value) + " " +
			styles.ChoiceOptions.Render("("+strings.Join(ln.options, " | ")+")")

	case lineReference:
		text = styles.TreeLeaf + styles.NodeName.Render(ln.name+":") + " " +
			styles.ReferenceLabel.Render(ln.value)

	case linePad:
		text = ""

	default:
		text = styles.TreeLeaf + styles.NodeName.Render(ln.name+":") + " " +
			styles.ScalarValue.Render(ln.value)
	}

	row := indent + text
	if i == m.cursor {
		return styles.LineSelected.Render("▸ ") + row
	}
	return "  " + row
}

// SetSize updates the view dimensions
func (m *InspectorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Lines exposes the rendered line count (used by the app status bar).
func (m *InspectorModel) Lines() int { return len(m.sink.lines) }
