package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/medfinder/internal/services"
)

var (
	Primary     = lipgloss.Color("#101F38")
	Accent      = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#6B7280")
	Border      = lipgloss.Color("#2a3850")
	Destructive = lipgloss.Color("#e53935")
	Caution     = lipgloss.Color("#FFC107")
	Notice      = lipgloss.Color("#2196F3")
)

type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Button   lipgloss.Style
	Help     lipgloss.Style
	Info     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Table    table.Styles
	Page     lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
	AlertBox lipgloss.Style
}

func DefaultStyles() Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Border).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("#ffffff")).
		Background(Primary)

	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(Accent).MarginBottom(1),
		Title:    lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),
		Label:    lipgloss.NewStyle().Width(10),
		Button:   lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("#ffffff")).Background(Primary),
		Help:     lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Info:     lipgloss.NewStyle().Foreground(Notice),
		Warning:  lipgloss.NewStyle().Foreground(Caution),
		Error:    lipgloss.NewStyle().Foreground(Destructive),
		Table:    ts,
		Page:     lipgloss.NewStyle().Padding(0, 1),
		TabOn:    lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#ffffff")).Background(Primary),
		TabOff:   lipgloss.NewStyle().Padding(0, 1).Foreground(Muted),
		AlertBox: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginTop(1),
	}
}

// Alert returns the text style for an alert of the given severity.
func (s Styles) Alert(sev services.Severity) lipgloss.Style {
	switch sev {
	case services.Warning:
		return s.Warning
	case services.Error:
		return s.Error
	default:
		return s.Info
	}
}

func (s Styles) alertColor(sev services.Severity) lipgloss.Color {
	switch sev {
	case services.Warning:
		return Caution
	case services.Error:
		return Destructive
	default:
		return Notice
	}
}

// RenderAlert draws o as a bordered box with a bold title.
func (s Styles) RenderAlert(o services.Outcome) string {
	st := s.Alert(o.Severity())
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.Bold(true).Render(o.Title),
		o.Message,
	)
	return s.AlertBox.BorderForeground(s.alertColor(o.Severity())).Render(body)
}
