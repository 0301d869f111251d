package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/inkwell/blogging-platform/pkg/client"
)

type postsScope int

const (
	scopePublished postsScope = iota
	scopeMine
)

type postsLoadedMsg struct {
	Scope postsScope
	Posts []client.Post
	Err   error
}

type postDeletedMsg struct {
	Err error
}

// ComposeRequestedMsg asks the root model to open the compose view. When Post
// is nil a new post is being written, otherwise it is being edited.
type ComposeRequestedMsg struct {
	Post *client.Post
}

type PostsModel struct {
	API      *client.Client
	Me       *client.User
	Table    table.Model
	Posts    []client.Post
	Scope    postsScope
	Reading  bool
	Viewport viewport.Model
	Status   string
	Err      error
	height   int
}

func NewPostsModel(api *client.Client, me *client.User, width, height int) PostsModel {
	columns := []table.Column{
		{Title: "Title", Width: 36},
		{Title: "Author", Width: 20},
		{Title: "Status", Width: 10},
		{Title: "Updated", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
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

	vp := viewport.New(max(width-4, 40), max(height-8, 10))

	return PostsModel{
		API:      api,
		Me:       me,
		Table:    t,
		Viewport: vp,
		height:   height,
	}
}

func (m PostsModel) Init() tea.Cmd {
	return m.loadCmd(m.Scope)
}

func (m PostsModel) loadCmd(scope postsScope) tea.Cmd {
	api := m.API
	return func() tea.Msg {
		ctx := context.Background()
		var (
			posts []client.Post
			err   error
		)
		if scope == scopeMine {
			posts, err = api.ListMyPosts(ctx)
		} else {
			posts, err = api.ListPosts(ctx)
		}
		return postsLoadedMsg{Scope: scope, Posts: posts, Err: err}
	}
}

func (m PostsModel) deleteCmd(id string) tea.Cmd {
	api := m.API
	return func() tea.Msg {
		return postDeletedMsg{Err: api.DeletePost(context.Background(), id)}
	}
}

func (m PostsModel) selected() *client.Post {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Posts) {
		return nil
	}
	return &m.Posts[idx]
}

// canEdit mirrors the server's ownership rule so the UI does not offer
// actions that would only come back as 403.
func (m PostsModel) canEdit(p *client.Post) bool {
	return m.Me.Role == "admin" || p.AuthorID == m.Me.ID
}

func (m PostsModel) Update(msg tea.Msg) (PostsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Reading {
			switch msg.String() {
			case "esc", "q":
				m.Reading = false
				return m, nil
			}
			m.Viewport, cmd = m.Viewport.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "r":
			m.Status = ""
			return m, m.loadCmd(m.Scope)
		case "m":
			if m.Scope == scopeMine {
				m.Scope = scopePublished
			} else {
				m.Scope = scopeMine
			}
			m.Status = ""
			return m, m.loadCmd(m.Scope)
		case "n":
			return m, func() tea.Msg { return ComposeRequestedMsg{} }
		case "e":
			if p := m.selected(); p != nil && m.canEdit(p) {
				post := *p
				return m, func() tea.Msg { return ComposeRequestedMsg{Post: &post} }
			}
		case "d":
			if p := m.selected(); p != nil && m.canEdit(p) {
				return m, m.deleteCmd(p.ID)
			}
		case "enter":
			if p := m.selected(); p != nil {
				m.Reading = true
				m.Viewport.SetContent(renderPost(p))
				m.Viewport.GotoTop()
			}
		}

	case postsLoadedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Scope = msg.Scope
		m.Posts = msg.Posts
		rows := make([]table.Row, len(msg.Posts))
		for i, p := range msg.Posts {
			author := p.AuthorName
			if author == "" {
				author = "(deleted)"
			}
			rows[i] = table.Row{p.Title, author, p.Status, p.UpdatedAt.Local().Format("2006-01-02 15:04")}
		}
		m.Table.SetRows(rows)

	case postDeletedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Status = "post deleted"
		return m, m.loadCmd(m.Scope)
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func renderPost(p *client.Post) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + "\n\n")
	author := p.AuthorName
	if author == "" {
		author = "(deleted)"
	}
	b.WriteString(blurredStyle.Render(fmt.Sprintf("by %s on %s", author, p.CreatedAt.Local().Format("Jan 2, 2006"))))
	if p.Status == "draft" {
		b.WriteString("  " + draftBadgeStyle("[draft]"))
	}
	b.WriteString("\n\n")
	b.WriteString(p.Content)
	return b.String()
}

func (m PostsModel) View() string {
	if m.Reading {
		return m.Viewport.View() + "\n\n" + blurredStyle.Render("Esc to go back, up/down to scroll")
	}

	var b strings.Builder
	heading := "Inkwell - Published Posts"
	if m.Scope == scopeMine {
		heading = "Inkwell - My Posts"
	}
	b.WriteString(titleStyle.Render(heading) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")

	help := "Enter read, n new, e edit, d delete, m toggle mine, r refresh, q quit"
	if m.Me.Role == "admin" {
		help += ", a admin"
	}
	b.WriteString(blurredStyle.Render(help))

	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
