package model

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/folio/internal/ui/styles"
)

// Container renders content inside a bordered box with the title set into the top border.
func Container(title string, width int, content string, active bool) string {
	if width <= 0 {
		return ""
	}

	var base lipgloss.Style
	if active {
		base = styles.ContainerStyleActive
	} else {
		base = styles.ContainerStyle
	}

	return base.
		Border(styles.TitleBorder(styles.ContainerBorder, width, title)).
		Width(width).
		Render(content)
}
