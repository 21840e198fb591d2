package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/medfinder/internal/models"
	"github.com/dmitrijs2005/medfinder/internal/navigation"
	"github.com/dmitrijs2005/medfinder/internal/services"
)

// Searcher runs symptom searches and keeps the latest results.
type Searcher interface {
	Search(ctx context.Context, symptoms string) services.Outcome
	Results() services.ResultSet
}

var columnWidths = []int{18, 16, 6, 14, 36, 15}

// SearchPage is the symptom search form with its results table.
type SearchPage struct {
	searcher Searcher
	input    textinput.Model
	table    table.Model
	styles   Styles
}

func NewSearchPage(s Searcher, styles Styles) *SearchPage {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Enter Symptoms"
	ti.CharLimit = 255
	ti.Width = 40

	cols := make([]table.Column, len(models.DoctorColumns))
	for i, title := range models.DoctorColumns {
		cols[i] = table.Column{Title: title, Width: columnWidths[i]}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(styles.Table)

	return &SearchPage{searcher: s, input: ti, table: t, styles: styles}
}

func (p *SearchPage) ID() navigation.PageID {
	return navigation.SearchPage
}

func (p *SearchPage) Activate() {
	p.input.Focus()
}

func (p *SearchPage) Deactivate() {
	p.input.Blur()
}

// SetSize fits the results table to the terminal height.
func (p *SearchPage) SetSize(width, height int) {
	p.table.SetWidth(width - 2)
	p.table.SetHeight(max(height-14, 3))
}

// Rows returns the rows currently shown in the table.
func (p *SearchPage) Rows() []table.Row {
	return p.table.Rows()
}

func (p *SearchPage) update(ctx context.Context, msg tea.Msg) (*services.Outcome, bool, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "enter":
			return p.search(ctx), false, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			p.table, cmd = p.table.Update(msg)
			return nil, false, cmd
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return nil, isKey, cmd
}

// search blocks the UI loop for the database round trip, then replaces every
// table row with the new result set.
func (p *SearchPage) search(ctx context.Context) *services.Outcome {
	out := p.searcher.Search(ctx, p.input.Value())

	res := p.searcher.Results()
	rows := make([]table.Row, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = r.Cells()
	}
	p.table.SetRows(rows)
	p.table.GotoTop()

	return &out
}

func (p *SearchPage) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Search Doctors"))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		p.styles.Label.Width(16).Render("Enter Symptoms"),
		p.input.View(),
	))
	b.WriteString("\n\n")
	b.WriteString(p.table.View())
	return b.String()
}
