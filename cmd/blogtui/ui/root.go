package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell/blogging-platform/pkg/client"
)

type state int

const (
	stateLogin state = iota
	statePosts
	stateCompose
	stateAdmin
)

// RootModel is the single application state. It owns the API client and the
// signed-in user, and delegates everything else to the per-screen models.
type RootModel struct {
	State    state
	API      *client.Client
	Me       *client.User
	Login    LoginModel
	Posts    PostsModel
	Compose  ComposeModel
	Admin    AdminModel
	Quitting bool
	width    int
	height   int
}

func NewRootModel(api *client.Client) RootModel {
	return RootModel{
		State: stateLogin,
		API:   api,
		Login: NewLoginModel(api),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
	}

	switch m.State {
	case stateLogin:
		if result, ok := msg.(authResultMsg); ok {
			if result.Err != nil {
				m.Login.Err = result.Err
				return m, nil
			}
			m.Me = result.Result.User
			m.State = statePosts
			m.Posts = NewPostsModel(m.API, m.Me, m.width, m.height)
			return m, m.Posts.Init()
		}

		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)

	case statePosts:
		switch msg := msg.(type) {
		case ComposeRequestedMsg:
			m.State = stateCompose
			m.Compose = NewComposeModel(m.API, msg.Post, m.width, m.height)
			return m, m.Compose.Init()
		case tea.KeyMsg:
			if !m.Posts.Reading {
				switch msg.String() {
				case "q":
					m.Quitting = true
					return m, tea.Quit
				case "a":
					if m.Me.Role == "admin" {
						m.State = stateAdmin
						m.Admin = NewAdminModel(m.API, m.Me, m.width, m.height)
						return m, m.Admin.Init()
					}
				}
			}
		}

		newPosts, cmd := m.Posts.Update(msg)
		m.Posts = newPosts
		cmds = append(cmds, cmd)

	case stateCompose:
		if done, ok := msg.(ComposeDoneMsg); ok {
			m.State = statePosts
			if done.Saved {
				m.Posts.Status = "post saved"
				return m, m.Posts.loadCmd(m.Posts.Scope)
			}
			return m, nil
		}

		newCompose, cmd := m.Compose.Update(msg)
		m.Compose = newCompose
		cmds = append(cmds, cmd)

	case stateAdmin:
		if _, ok := msg.(BackToPostsMsg); ok {
			m.State = statePosts
			return m, m.Posts.loadCmd(m.Posts.Scope)
		}

		newAdmin, cmd := m.Admin.Update(msg)
		m.Admin = newAdmin
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case statePosts:
		return m.Posts.View()
	case stateCompose:
		return m.Compose.View()
	case stateAdmin:
		return m.Admin.View()
	}
	return "Unknown state"
}
