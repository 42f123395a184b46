package dashboard

import "github.com/charmbracelet/lipgloss"

// MinMenuWidth is the minimum character width for the menu pane.
const MinMenuWidth = 20

// MaxMenuWidth caps the menu pane so wide terminals give room to content.
const MaxMenuWidth = 28

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "240"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	focusedLabel  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedText     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
	activeItem    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	detailBorder  = lipgloss.NewStyle().Foreground(dimColor)
	detailLabel   = lipgloss.NewStyle().Bold(true).PaddingRight(1)
	detailValue   = lipgloss.NewStyle().PaddingLeft(1)
	confirmPrompt = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// ResultStyle returns the style for a status line of the given kind.
func ResultStyle(kind ResultKind) lipgloss.Style {
	switch kind {
	case ResultSuccess:
		return successStyle
	case ResultNotFound:
		return warningStyle
	case ResultError:
		return errorStyle
	default:
		return mutedText
	}
}

// FocusedBorder returns a lipgloss style with an accent-colored rounded border.
func FocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor)
}

// UnfocusedBorder returns a lipgloss style with a dim rounded border.
func UnfocusedBorder() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dimColor)
}

// PaneWidths calculates the menu and content pane widths from a total width.
// The menu gets 1/4 of the width, clamped to [MinMenuWidth, MaxMenuWidth];
// content gets the rest.
func PaneWidths(totalWidth int) (menu, content int) {
	if totalWidth <= 0 {
		return 0, 0
	}
	menu = totalWidth / 4
	if menu < MinMenuWidth {
		menu = MinMenuWidth
	}
	if menu > MaxMenuWidth {
		menu = MaxMenuWidth
	}
	content = totalWidth - menu
	if content < 0 {
		content = 0
	}
	return menu, content
}
