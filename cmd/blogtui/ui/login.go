package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell/blogging-platform/pkg/client"
)

// authResultMsg carries the outcome of a login or register call.
type authResultMsg struct {
	Result *client.AuthResult
	Err    error
}

type LoginModel struct {
	API         *client.Client
	Inputs      []textinput.Model
	FocusIdx    int
	Registering bool
	Err         error
}

const (
	inputName = iota
	inputEmail
	inputPassword
)

func NewLoginModel(api *client.Client) LoginModel {
	inputs := make([]textinput.Model, 3)

	inputs[inputName] = textinput.New()
	inputs[inputName].Placeholder = "Jane Doe"
	inputs[inputName].Prompt = "Name:     "

	inputs[inputEmail] = textinput.New()
	inputs[inputEmail].Placeholder = "you@example.com"
	inputs[inputEmail].Prompt = "Email:    "
	inputs[inputEmail].Focus()

	inputs[inputPassword] = textinput.New()
	inputs[inputPassword].Placeholder = "password"
	inputs[inputPassword].EchoMode = textinput.EchoPassword
	inputs[inputPassword].Prompt = "Password: "

	return LoginModel{
		API:      api,
		Inputs:   inputs,
		FocusIdx: inputEmail,
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			if m.FocusIdx == inputPassword {
				return m, m.submitCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		case tea.KeyCtrlR:
			m.Registering = !m.Registering
			m.Err = nil
			if !m.Registering && m.FocusIdx == inputName {
				m.nextInput()
			}
		}
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *LoginModel) nextInput() {
	m.Inputs[m.FocusIdx].Blur()
	for {
		m.FocusIdx++
		if m.FocusIdx >= len(m.Inputs) {
			m.FocusIdx = 0
		}
		if m.FocusIdx != inputName || m.Registering {
			break
		}
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m *LoginModel) prevInput() {
	m.Inputs[m.FocusIdx].Blur()
	for {
		m.FocusIdx--
		if m.FocusIdx < 0 {
			m.FocusIdx = len(m.Inputs) - 1
		}
		if m.FocusIdx != inputName || m.Registering {
			break
		}
	}
	m.Inputs[m.FocusIdx].Focus()
}

func (m LoginModel) submitCmd() tea.Cmd {
	name := m.Inputs[inputName].Value()
	email := m.Inputs[inputEmail].Value()
	password := m.Inputs[inputPassword].Value()
	registering := m.Registering
	api := m.API

	return func() tea.Msg {
		ctx := context.Background()
		if registering {
			res, err := api.Register(ctx, name, email, password)
			return authResultMsg{Result: res, Err: err}
		}
		res, err := api.Login(ctx, email, password)
		return authResultMsg{Result: res, Err: err}
	}
}

func (m LoginModel) View() string {
	var b strings.Builder

	title := "Inkwell - Sign In"
	if m.Registering {
		title = "Inkwell - Create Account"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	for i := range m.Inputs {
		if i == inputName && !m.Registering {
			continue
		}
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}

	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Tab to switch fields, Enter to submit, Ctrl+R to toggle register"))

	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
