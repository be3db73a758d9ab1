package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/sneeze/internal/style"
)

// Page renders page with title at the top, content block and footer at the botttom
// Style of content leave intact
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	if w := lipgloss.Width(footer); width < w {
		width = w
	}

	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)

	// Place content vertically centered within the available height
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	// Assemble the final page
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	return Center(view, termWidth, termHeight)
}

// Center places the view in the middle of the terminal once its size is known.
func Center(view string, termWidth, termHeight int) string {
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Flash reports whether blinking text is in its visible half at the given tick.
func Flash(tick, period int) bool {
	if period <= 0 {
		return true
	}
	return (tick/period)%2 == 0
}
