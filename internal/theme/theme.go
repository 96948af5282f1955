package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header       *lipgloss.Style
	Footer       *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	EditorFrame  *lipgloss.Style
	EditorFocus  *lipgloss.Style
	Dialog       *lipgloss.Style
	DialogTitle  *lipgloss.Style
	Placeholder  *lipgloss.Style
	Heading1     *lipgloss.Style
	Heading2     *lipgloss.Style
	Quote        *lipgloss.Style
	Code         *lipgloss.Style
	Rule         *lipgloss.Style
	ListMarker   *lipgloss.Style
	Selection    *lipgloss.Style
	Cursor       *lipgloss.Style
	Popup        *lipgloss.Style
	PopupItem    *lipgloss.Style
	PopupIcon    *lipgloss.Style
	PopupChosen  *lipgloss.Style
	PopupScroll  *lipgloss.Style
	PreviewFrame *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	EditorFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	EditorFocus: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	Dialog: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Heading1: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true),
	),
	Heading2: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	),
	Quote: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
	),
	Code: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("235")),
	),
	Rule: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	ListMarker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Selection: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	Popup: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("244")),
	),
	PopupItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Padding(0, 1),
	),
	PopupIcon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	PopupChosen: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Padding(0, 1),
	),
	PopupScroll: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	PreviewFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
