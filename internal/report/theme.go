package report

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fuzzscore/internal/category"
)

// Color palette.
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// theme is the set of styles one render uses. Without color every style is
// plain so output stays free of escape sequences.
type theme struct {
	title    lipgloss.Style
	section  lipgloss.Style
	label    lipgloss.Style
	dim      lipgloss.Style
	filled   lipgloss.Style
	empty    lipgloss.Style
	warn     lipgloss.Style
	border   lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	category map[category.Category]lipgloss.Style
}

func newTheme(color bool) theme {
	plain := lipgloss.NewStyle()
	if !color {
		return theme{
			title:   plain,
			section: plain,
			label:   plain,
			dim:     plain,
			filled:  plain,
			empty:   plain,
			warn:    plain,
			border:  plain,
			header:  plain.Padding(0, 1),
			cell:    plain.Padding(0, 1),
			category: map[category.Category]lipgloss.Style{
				category.Low:      plain,
				category.Moderate: plain,
				category.High:     plain,
			},
		}
	}
	return theme{
		title:   lipgloss.NewStyle().Bold(true).Foreground(Primary),
		section: lipgloss.NewStyle().Bold(true).Foreground(Secondary),
		label:   lipgloss.NewStyle().Bold(true),
		dim:     lipgloss.NewStyle().Foreground(TextDim),
		filled:  lipgloss.NewStyle().Foreground(Secondary),
		empty:   lipgloss.NewStyle().Foreground(Border),
		warn:    lipgloss.NewStyle().Foreground(Accent).Bold(true),
		border:  lipgloss.NewStyle().Foreground(Border),
		header:  lipgloss.NewStyle().Bold(true).Foreground(Primary).Padding(0, 1),
		cell:    lipgloss.NewStyle().Padding(0, 1),
		category: map[category.Category]lipgloss.Style{
			category.Low:      lipgloss.NewStyle().Foreground(Error).Bold(true),
			category.Moderate: lipgloss.NewStyle().Foreground(Accent).Bold(true),
			category.High:     lipgloss.NewStyle().Foreground(Success).Bold(true),
		},
	}
}
