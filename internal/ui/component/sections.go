package component

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/folio/internal/contact"
	"github.com/leighmacdonald/folio/internal/content"
	"github.com/leighmacdonald/folio/internal/ui/model"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

const (
	maxSectionWidth = 100
	skillNameWidth  = 16
	skillBarWidth   = 30
)

// PageData holds the dynamic values rendered alongside the static portfolio.
type PageData struct {
	Stats   contact.Stats
	StatsAt time.Time
	Active  string
	Form    string
	Now     time.Time
}

// SectionRenderer turns the portfolio into one block of text per page section.
type SectionRenderer struct {
	portfolio content.Portfolio
	bar       progress.Model
}

func NewSectionRenderer(portfolio content.Portfolio) *SectionRenderer {
	return &SectionRenderer{
		portfolio: portfolio,
		bar: progress.New(
			progress.WithGradient(string(styles.Accent), string(styles.Purple)),
			progress.WithWidth(skillBarWidth)),
	}
}

// Render returns the named section framed in a titled container, followed by a blank line.
func (r *SectionRenderer) Render(anchor string, width int, data PageData) string {
	outer := min(width, maxSectionWidth)
	// Borders and padding of the container.
	inner := max(10, outer-4)

	var (
		title string
		body  string
	)

	switch anchor {
	case "home":
		title, body = "Home", r.home(inner, data)
	case "about":
		title, body = "About", r.about(inner)
	case "skills":
		title, body = "Skills", r.skills(inner)
	case "projects":
		title, body = "Projects", r.projects(inner)
	case "experience":
		title, body = "Experience", r.experience(inner)
	case "contact":
		title, body = "Contact", r.contact(inner, data)
	default:
		return ""
	}

	return styles.SectionGap.Render(model.Container(title, outer-2, body, anchor == data.Active))
}

func (r *SectionRenderer) home(width int, data PageData) string {
	profile := r.portfolio.Profile
	rows := []string{
		"",
		styles.Title.Render(profile.Name),
		styles.SubHeading.Render(profile.Title),
		"",
		styles.Prose.Render(wordwrap.String(profile.Tagline, width)),
		"",
		styles.Faint.Render(strings.Join(nonEmpty(profile.Location, profile.Email), " · ")),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			stat(data.Stats.TotalProjects, "Projects"),
			stat(data.Stats.Technologies, "Technologies"),
			stat(data.Stats.YearsExperience, "Years"),
			stat(data.Stats.TotalContacts, "Messages")),
	}

	if !data.StatsAt.IsZero() {
		rows = append(rows, styles.Faint.Render("Updated "+humanize.RelTime(data.StatsAt, data.Now, "ago", "from now")))
	}

	rows = append(rows, "", styles.Faint.Render("Press r to download my resume."))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func stat(value int, label string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.StatValue.Render(humanize.Comma(int64(value))+"+"),
		styles.Faint.Render(" "+label+"  "))
}

func (r *SectionRenderer) about(width int) string {
	rows := []string{styles.Prose.Render(wordwrap.String(r.portfolio.Profile.Bio, width)), ""}

	if len(r.portfolio.Statistics) > 0 {
		stats := make([]string, len(r.portfolio.Statistics))
		for idx, item := range r.portfolio.Statistics {
			stats[idx] = lipgloss.JoinHorizontal(lipgloss.Top, styles.StatValue.Render(item.Value), styles.Faint.Render(" "+item.Label))
		}

		rows = append(rows, lipgloss.JoinVertical(lipgloss.Left, stats...), "")
	}

	rows = append(rows, styles.SubHeading.Render("Education"))
	for _, edu := range r.portfolio.Education {
		rows = append(rows,
			styles.Title.Render(edu.Degree),
			styles.Faint.Render(strings.Join(nonEmpty(edu.Institution, edu.Location, edu.Period, edu.GPA), " · ")))

		if len(edu.Courses) > 0 {
			rows = append(rows, styles.Faint.Render(wordwrap.String("Courses: "+strings.Join(edu.Courses, ", "), width)))
		}

		rows = append(rows, "")
	}

	if len(r.portfolio.Testimonials) > 0 {
		rows = append(rows, styles.SubHeading.Render("Testimonials"))
		for _, item := range r.portfolio.Testimonials {
			rows = append(rows,
				styles.Prose.Render(wordwrap.String(fmt.Sprintf("%q", item.Message), width)),
				styles.Stars.Render(strings.Repeat("★", max(0, min(item.Rating, 5))))+" "+
					styles.Faint.Render(strings.Join(nonEmpty(item.Name, item.Position, item.Company), ", ")),
				"")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *SectionRenderer) skills(width int) string {
	rows := make([]string, 0, len(r.portfolio.Skills)*4)

	for _, group := range r.portfolio.Skills {
		rows = append(rows, styles.SubHeading.Render(group.Name))

		for _, skill := range group.Skills {
			line := lipgloss.JoinHorizontal(lipgloss.Top,
				styles.Prose.Width(skillNameWidth).Render(skill.Name),
				r.bar.ViewAs(float64(skill.Level)/100),
				styles.Faint.Render(fmt.Sprintf("  %s", pluralYears(skill.Years))))
			rows = append(rows, lipgloss.NewStyle().MaxWidth(width).Render(line))
		}

		rows = append(rows, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *SectionRenderer) projects(width int) string {
	rows := make([]string, 0, len(r.portfolio.Projects)*6)

	for _, project := range r.portfolio.Projects {
		rows = append(rows,
			styles.Title.Render(project.Title),
			styles.Prose.Render(wordwrap.String(project.Description, width)),
			technologies(project.Technologies, width))

		rows = append(rows, bullets(project.Achievements, width)...)

		if links := nonEmpty(project.GitHubURL, project.LiveURL); len(links) > 0 {
			rows = append(rows, styles.FocusedStyle.Render(strings.Join(links, "  ")))
		}

		rows = append(rows, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *SectionRenderer) experience(width int) string {
	rows := make([]string, 0, len(r.portfolio.Experience)*8)

	for _, job := range r.portfolio.Experience {
		rows = append(rows,
			styles.Title.Render(job.Title)+styles.Faint.Render(" @ ")+styles.SubHeading.Render(job.Company),
			styles.Faint.Render(strings.Join(nonEmpty(job.Period, job.Type, job.Location), " · ")),
			styles.Prose.Render(wordwrap.String(job.Description, width)))

		rows = append(rows, bullets(job.Responsibilities, width)...)
		rows = append(rows, technologies(job.Technologies, width), "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *SectionRenderer) contact(width int, data PageData) string {
	profile := r.portfolio.Profile
	rows := []string{
		styles.Prose.Render(wordwrap.String("Have a project in mind or just want to chat? Send me a message.", width)),
		"",
	}

	for _, row := range [][2]string{
		{"Email", profile.Email},
		{"Phone", profile.Phone},
		{"Location", profile.Location},
		{"LinkedIn", profile.LinkedIn},
		{"GitHub", profile.GitHub},
	} {
		if row[1] != "" {
			rows = append(rows, styles.InputLabel.Render(row[0])+styles.Prose.Render(row[1]))
		}
	}

	rows = append(rows, "", data.Form)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func bullets(items []string, width int) []string {
	rows := make([]string, len(items))
	for idx, item := range items {
		rows[idx] = styles.Bullet + " " + styles.Prose.Render(wordwrap.String(item, max(1, width-2)))
	}

	return rows
}

func technologies(items []string, width int) string {
	if len(items) == 0 {
		return ""
	}

	return styles.Faint.Render(wordwrap.String(strings.Join(items, " · "), width))
}

func pluralYears(years int) string {
	if years == 1 {
		return "1 year"
	}

	return fmt.Sprintf("%d years", years)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if value != "" {
			out = append(out, value)
		}
	}

	return out
}
