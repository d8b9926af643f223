package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Node styles, one per value shape
	NodeName = lipgloss.NewStyle().
			Foreground(Secondary)

	ScalarValue = lipgloss.NewStyle()

	ChoiceValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Blue

	ChoiceOptions = lipgloss.NewStyle().
			Foreground(Muted)

	ContainerName = lipgloss.NewStyle().
			Bold(true)

	CollectionInfo = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	ReferenceLabel = lipgloss.NewStyle().
			Foreground(Warning).
			Underline(true)

	ReadOnlyMark = lipgloss.NewStyle().
			Foreground(Muted)

	LineSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Expansion indicators
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "  "

	// Pagination
	PageIndicator = lipgloss.NewStyle().
			Foreground(Warning)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Section label (help view)
	SectionLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)
