// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Ledger palette. Debits and credits get the strongest colors; chrome stays muted.
var (
	debitColor  = lipgloss.Color("#E5484D")
	creditColor = lipgloss.Color("#30A46C")
	accentColor = lipgloss.Color("#3E63DD")
	noticeColor = lipgloss.Color("#F5A524")
	mutedColor  = lipgloss.Color("#8B8D98")
	ruleColor   = lipgloss.Color("#3A3F4B")
)

// Amount styles.
var (
	ExpenseStyle = lipgloss.NewStyle().Foreground(debitColor)
	IncomeStyle  = lipgloss.NewStyle().Foreground(creditColor)
)

// Text styles shared by the commands.
var (
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	SubtleStyle = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).MarginBottom(1)
	noticeStyle  = lipgloss.NewStyle().Foreground(noticeColor)
	okStyle      = lipgloss.NewStyle().Foreground(creditColor)
	hintStyle    = lipgloss.NewStyle().Foreground(accentColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ruleColor).
			Padding(0, 1)
)

// Table styles used by renderTable.
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(accentColor).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ruleColor)

	TableCellStyle = lipgloss.NewStyle().PaddingRight(2)
)

// ChartIcon marks spending summaries.
const ChartIcon = "📊"

const (
	titleMark  = "₹"
	okMark     = "✔"
	noticeMark = "!"
	hintMark   = "›"
)

// FormatTitle renders a section heading.
func FormatTitle(title string) string {
	return headingStyle.Render(titleMark + " " + title)
}

// FormatSuccess renders a completed step.
func FormatSuccess(message string) string {
	return okStyle.Render(okMark + " " + message)
}

// FormatWarning renders something the user should look at.
func FormatWarning(message string) string {
	return noticeStyle.Render(noticeMark + " " + message)
}

// FormatInfo renders a follow-up hint.
func FormatInfo(message string) string {
	return hintStyle.Render(hintMark + " " + message)
}

// RenderBox draws content in a bordered panel headed by title.
func RenderBox(title, content string) string {
	heading := headingStyle.UnsetMargins().Render(title)
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, content))
}
