package dashboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	client   lipgloss.Style
	detail   lipgloss.Style
	badge    lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	rank     lipgloss.Style
	onTrack  lipgloss.Style
	offTrack lipgloss.Style
	waiting  lipgloss.Style
	warning  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		client:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		rank:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		onTrack:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		offTrack: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		waiting:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}
