package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#38bdf8")

	Black    = lipgloss.Color("#0b1120")
	Gray     = lipgloss.Color("#475569")
	GrayDark = lipgloss.Color("#1e293b")
	White    = lipgloss.Color("#e2e8f0")
	Muted    = lipgloss.Color("#94a3b8")

	Red    = lipgloss.Color("#f87171")
	Green  = lipgloss.Color("#4ade80")
	Purple = lipgloss.Color("#a78bfa")
	Yellow = lipgloss.Color("#facc15")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray).Padding(0, 1)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Accent).Padding(0, 1)

	HeaderContainerStyle  = lipgloss.NewStyle()
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Left)
	FooterContainerStyle  = lipgloss.NewStyle()

	FocusedStyle = lipgloss.NewStyle().Foreground(Accent)
	BlurredStyle = lipgloss.NewStyle().Foreground(Gray)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = lipgloss.NewStyle().Foreground(Muted)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Red)

	FocusedSubmitButton    = lipgloss.NewStyle().Foreground(Accent).Bold(true).Render("[ Send Message ]")
	BlurredSubmitButton    = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Send Message"))
	SubmittingSubmitButton = lipgloss.NewStyle().Foreground(Muted).Render("Sending...")

	// Navigation bar. The bar gains a solid background once the page is scrolled.
	NavBar         = lipgloss.NewStyle().Foreground(White).Padding(0, 1)
	NavBarScrolled = NavBar.Background(GrayDark)
	NavBrand       = lipgloss.NewStyle().Foreground(Accent).Bold(true).PaddingRight(2)
	NavItem        = lipgloss.NewStyle().Foreground(Muted).PaddingLeft(1).PaddingRight(1)
	NavItemActive  = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true).PaddingLeft(1).PaddingRight(1)
	NavRule        = lipgloss.NewStyle().Foreground(GrayDark)
	MenuBox        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Accent).Padding(1, 3)
	MenuItem       = lipgloss.NewStyle().Foreground(White)
	MenuItemActive = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	// Page sections.
	Heading     = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SubHeading  = lipgloss.NewStyle().Foreground(Purple).Bold(true)
	Title       = lipgloss.NewStyle().Foreground(White).Bold(true)
	Prose       = lipgloss.NewStyle().Foreground(White)
	Faint       = lipgloss.NewStyle().Foreground(Muted)
	Tag         = lipgloss.NewStyle().Foreground(Black).Background(Purple).PaddingLeft(1).PaddingRight(1).MarginRight(1)
	Bullet      = lipgloss.NewStyle().Foreground(Accent).Render("•")
	StatValue   = lipgloss.NewStyle().Foreground(Accent).Bold(true).Width(8).Align(lipgloss.Right)
	Stars       = lipgloss.NewStyle().Foreground(Yellow)
	SectionGap  = lipgloss.NewStyle().PaddingBottom(1)
	InputLabel  = lipgloss.NewStyle().Foreground(Muted).Width(10)
	FieldNotice = lipgloss.NewStyle().Foreground(Red).PaddingLeft(10)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Bold(true).PaddingRight(2).PaddingLeft(1)
	StatusMessage = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(2).PaddingLeft(1)
	StatusDetail  = lipgloss.NewStyle().Foreground(White).PaddingRight(2)
	StatusSection = lipgloss.NewStyle().Foreground(Purple).Bold(true).PaddingLeft(1).PaddingRight(1)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).PaddingLeft(1).PaddingRight(1)
	StatusVersion = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingLeft(1)

	PanelLabel = lipgloss.NewStyle().Foreground(Gray).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := max(0, width-lipgloss.Width(value))

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, " "+title+" ", border.Top)

	return border
}
