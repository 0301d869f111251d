package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell/blogging-platform/pkg/client"
)

type usersLoadedMsg struct {
	Users []client.User
	Err   error
}

type statsLoadedMsg struct {
	Stats *client.Stats
	Err   error
}

type adminActionMsg struct {
	Status string
	Err    error
}

// BackToPostsMsg signals transition back to the posts view.
type BackToPostsMsg struct{}

type AdminModel struct {
	API    *client.Client
	Me     *client.User
	Table  table.Model
	Users  []client.User
	Stats  *client.Stats
	Status string
	Err    error
}

func NewAdminModel(api *client.Client, me *client.User, width, height int) AdminModel {
	columns := []table.Column{
		{Title: "Name", Width: 22},
		{Title: "Email", Width: 30},
		{Title: "Role", Width: 8},
		{Title: "Joined", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-12, 5)),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return AdminModel{
		API:   api,
		Me:    me,
		Table: t,
	}
}

func (m AdminModel) Init() tea.Cmd {
	return tea.Batch(m.loadUsersCmd(), m.loadStatsCmd())
}

func (m AdminModel) loadUsersCmd() tea.Cmd {
	api := m.API
	return func() tea.Msg {
		users, err := api.ListUsers(context.Background())
		return usersLoadedMsg{Users: users, Err: err}
	}
}

func (m AdminModel) loadStatsCmd() tea.Cmd {
	api := m.API
	return func() tea.Msg {
		stats, err := api.GetStats(context.Background())
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (m AdminModel) changeRoleCmd(userID, role string) tea.Cmd {
	api := m.API
	return func() tea.Msg {
		if _, err := api.ChangeRole(context.Background(), userID, role); err != nil {
			return adminActionMsg{Err: err}
		}
		return adminActionMsg{Status: "role updated"}
	}
}

func (m AdminModel) deleteUserCmd(userID string) tea.Cmd {
	api := m.API
	return func() tea.Msg {
		if err := api.DeleteUser(context.Background(), userID); err != nil {
			return adminActionMsg{Err: err}
		}
		return adminActionMsg{Status: "user and their posts deleted"}
	}
}

func (m AdminModel) selected() *client.User {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Users) {
		return nil
	}
	return &m.Users[idx]
}

func (m AdminModel) Update(msg tea.Msg) (AdminModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return BackToPostsMsg{} }
		case "r":
			m.Status = ""
			return m, tea.Batch(m.loadUsersCmd(), m.loadStatsCmd())
		case "p":
			if u := m.selected(); u != nil && u.ID != m.Me.ID {
				return m, m.changeRoleCmd(u.ID, "admin")
			}
		case "u":
			if u := m.selected(); u != nil && u.ID != m.Me.ID {
				return m, m.changeRoleCmd(u.ID, "user")
			}
		case "x":
			if u := m.selected(); u != nil && u.ID != m.Me.ID {
				return m, m.deleteUserCmd(u.ID)
			}
		}

	case usersLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Users = msg.Users
		rows := make([]table.Row, len(msg.Users))
		for i, u := range msg.Users {
			rows[i] = table.Row{u.Name, u.Email, u.Role, u.CreatedAt.Local().Format("2006-01-02")}
		}
		m.Table.SetRows(rows)

	case statsLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Stats = msg.Stats

	case adminActionMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Status = msg.Status
		return m, tea.Batch(m.loadUsersCmd(), m.loadStatsCmd())
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m AdminModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Inkwell - Admin") + "\n\n")

	if m.Stats != nil {
		b.WriteString(statusMessageStyle(fmt.Sprintf(
			"users: %d (admins: %d)   posts: %d (published: %d, drafts: %d)",
			m.Stats.TotalUsers, m.Stats.AdminUsers,
			m.Stats.TotalPosts, m.Stats.PublishedPosts, m.Stats.DraftPosts,
		)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("p promote, u demote, x delete user, r refresh, Esc back"))

	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
