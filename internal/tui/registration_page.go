package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/medfinder/internal/navigation"
	"github.com/dmitrijs2005/medfinder/internal/services"
)

// Registrar stores new users and moves the UI along on success.
type Registrar interface {
	Submit(ctx context.Context, name, email, password string) services.Outcome
	SetNavigator(nav services.Navigator)
}

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

var fieldLabels = []string{"Name", "Email", "Password"}

// RegistrationPage is the sign-up form.
type RegistrationPage struct {
	registrar Registrar
	inputs    []textinput.Model
	focus     int
	styles    Styles
}

func NewRegistrationPage(r Registrar, styles Styles) *RegistrationPage {
	inputs := make([]textinput.Model, len(fieldLabels))
	for i, label := range fieldLabels {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = label
		ti.CharLimit = 255
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'

	return &RegistrationPage{registrar: r, inputs: inputs, styles: styles}
}

func (p *RegistrationPage) ID() navigation.PageID {
	return navigation.RegistrationPage
}

func (p *RegistrationPage) Activate() {
	p.inputs[p.focus].Focus()
}

func (p *RegistrationPage) Deactivate() {
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

// Values returns the current name, email and password.
func (p *RegistrationPage) Values() (string, string, string) {
	return p.inputs[fieldName].Value(), p.inputs[fieldEmail].Value(), p.inputs[fieldPassword].Value()
}

func (p *RegistrationPage) setFocus(i int) tea.Cmd {
	n := len(p.inputs)
	p.inputs[p.focus].Blur()
	p.focus = (i%n + n) % n
	return p.inputs[p.focus].Focus()
}

func (p *RegistrationPage) update(ctx context.Context, msg tea.Msg) (*services.Outcome, bool, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "tab", "down":
			return nil, false, p.setFocus(p.focus + 1)
		case "shift+tab", "up":
			return nil, false, p.setFocus(p.focus - 1)
		case "enter":
			if p.focus < fieldPassword {
				return nil, false, p.setFocus(p.focus + 1)
			}
			return p.submit(ctx), false, nil
		case "ctrl+s":
			return p.submit(ctx), false, nil
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return nil, isKey, cmd
}

// submit blocks the UI loop for the database round trip.
func (p *RegistrationPage) submit(ctx context.Context) *services.Outcome {
	name, email, password := p.Values()
	out := p.registrar.Submit(ctx, name, email, password)
	return &out
}

func (p *RegistrationPage) View() string {
	var b strings.Builder
	b.WriteString(p.styles.Title.Render("Register"))
	b.WriteString("\n")

	for i, label := range fieldLabels {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			p.styles.Label.Render(label),
			p.inputs[i].View(),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.styles.Button.Render("Register"))
	return b.String()
}
