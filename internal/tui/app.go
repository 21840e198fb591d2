// Package tui is the terminal front end of medfinder: a registration form and
// a doctor search form, one visible at a time, with an alert bar for flow
// outcomes. Database round trips run synchronously inside Update, so the UI
// does not respond to input while a query is in flight.
package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/medfinder/internal/navigation"
	"github.com/dmitrijs2005/medfinder/internal/services"
)

const WindowTitle = "Healthcare App"

// screen is a navigation page that also handles input. update reports
// whether a key was handed to a text input.
type screen interface {
	navigation.Page
	update(ctx context.Context, msg tea.Msg) (out *services.Outcome, edited bool, cmd tea.Cmd)
}

// App is the root bubbletea model.
type App struct {
	ctx          context.Context
	nav          *navigation.Controller
	registration *RegistrationPage
	search       *SearchPage
	alert        *services.Outcome
	styles       Styles
}

// NewApp wires both pages into a navigation controller and hands the
// controller to the registrar, so a successful sign-up opens the search page.
func NewApp(ctx context.Context, r Registrar, s Searcher) (*App, error) {
	styles := DefaultStyles()
	reg := NewRegistrationPage(r, styles)
	search := NewSearchPage(s, styles)

	nav, err := navigation.NewController(reg, search)
	if err != nil {
		return nil, err
	}
	r.SetNavigator(nav)

	return &App{
		ctx:          ctx,
		nav:          nav,
		registration: reg,
		search:       search,
		styles:       styles,
	}, nil
}

// Navigator exposes the controller that owns the visible page.
func (a *App) Navigator() *navigation.Controller {
	return a.nav
}

// Alert returns the outcome currently displayed, if any.
func (a *App) Alert() (services.Outcome, bool) {
	if a.alert == nil {
		return services.Outcome{}, false
	}
	return *a.alert, true
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(WindowTitle)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.search.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "f1":
			a.show(navigation.RegistrationPage)
			return a, nil
		case "f2":
			a.show(navigation.SearchPage)
			return a, nil
		case "esc":
			a.alert = nil
			return a, nil
		}

		out, edited, cmd := a.active().update(a.ctx, msg)
		switch {
		case out != nil && !out.Silent():
			a.alert = out
		case out != nil, edited:
			a.alert = nil
		}
		return a, cmd
	}

	_, _, cmd := a.active().update(a.ctx, msg)
	return a, cmd
}

func (a *App) show(id navigation.PageID) {
	a.alert = nil
	// Both pages are registered in NewApp, so Show cannot fail here.
	_ = a.nav.Show(id)
}

func (a *App) active() screen {
	return a.nav.ActivePage().(screen)
}

func (a *App) tabs() string {
	tab := func(label string, id navigation.PageID) string {
		if a.nav.Active() == id {
			return a.styles.TabOn.Render(label)
		}
		return a.styles.TabOff.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		tab("F1 Register", navigation.RegistrationPage),
		tab("F2 Search", navigation.SearchPage),
	)
}

func (a *App) help() string {
	if a.nav.Active() == navigation.SearchPage {
		return "enter: search • ↑/↓: scroll results • esc: dismiss • ctrl+c: quit"
	}
	return "tab: next field • enter/ctrl+s: register • esc: dismiss • ctrl+c: quit"
}

func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.styles.Header.Render(WindowTitle))
	b.WriteString("\n")
	b.WriteString(a.tabs())
	b.WriteString("\n\n")
	b.WriteString(a.nav.View())
	b.WriteString("\n")

	if a.alert != nil {
		b.WriteString(a.styles.RenderAlert(*a.alert))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render(a.help()))
	return a.styles.Page.Render(b.String())
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(ctx context.Context, r Registrar, s Searcher, opts ...tea.ProgramOption) error {
	app, err := NewApp(ctx, r, s)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	_, err = tea.NewProgram(app, opts...).Run()
	return err
}
