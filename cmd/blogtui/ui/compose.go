package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inkwell/blogging-platform/pkg/client"
)

type postSavedMsg struct {
	Post *client.Post
	Err  error
}

// ComposeDoneMsg signals the root model that composing finished; Saved is
// false when the user cancelled.
type ComposeDoneMsg struct {
	Saved bool
}

type ComposeModel struct {
	API     *client.Client
	Editing *client.Post // nil when writing a new post
	Title   textinput.Model
	Body    textarea.Model
	Draft   bool
	OnBody  bool
	Err     error
}

func NewComposeModel(api *client.Client, editing *client.Post, width, height int) ComposeModel {
	title := textinput.New()
	title.Placeholder = "Post title"
	title.Prompt = "Title: "
	title.CharLimit = 200
	title.Focus()

	body := textarea.New()
	body.Placeholder = "Write your post..."
	body.SetWidth(max(width-4, 40))
	body.SetHeight(max(height-10, 8))

	m := ComposeModel{
		API:   api,
		Title: title,
		Body:  body,
	}

	if editing != nil {
		m.Editing = editing
		m.Title.SetValue(editing.Title)
		m.Body.SetValue(editing.Content)
		m.Draft = editing.Status == "draft"
	}

	return m
}

func (m ComposeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ComposeModel) Update(msg tea.Msg) (ComposeModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return ComposeDoneMsg{Saved: false} }
		case tea.KeyCtrlS:
			return m, m.saveCmd()
		case tea.KeyCtrlD:
			m.Draft = !m.Draft
			return m, nil
		case tea.KeyTab:
			if !m.OnBody {
				m.OnBody = true
				m.Title.Blur()
				cmds = append(cmds, m.Body.Focus())
			}
		case tea.KeyShiftTab:
			if m.OnBody {
				m.OnBody = false
				m.Body.Blur()
				m.Title.Focus()
			}
		case tea.KeyEnter:
			if !m.OnBody {
				m.OnBody = true
				m.Title.Blur()
				cmds = append(cmds, m.Body.Focus())
			}
		}

	case postSavedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		return m, func() tea.Msg { return ComposeDoneMsg{Saved: true} }
	}

	var cmd tea.Cmd
	if m.OnBody {
		m.Body, cmd = m.Body.Update(msg)
	} else {
		m.Title, cmd = m.Title.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m ComposeModel) saveCmd() tea.Cmd {
	api := m.API
	editing := m.Editing
	title := m.Title.Value()
	content := m.Body.Value()
	status := "published"
	if m.Draft {
		status = "draft"
	}

	return func() tea.Msg {
		ctx := context.Background()
		if editing == nil {
			post, err := api.CreatePost(ctx, title, content, status)
			return postSavedMsg{Post: post, Err: err}
		}
		post, err := api.UpdatePost(ctx, editing.ID, &title, &content, &status)
		return postSavedMsg{Post: post, Err: err}
	}
}

func (m ComposeModel) View() string {
	var b strings.Builder

	heading := "Inkwell - New Post"
	if m.Editing != nil {
		heading = "Inkwell - Edit Post"
	}
	b.WriteString(titleStyle.Render(heading) + "\n\n")

	b.WriteString(m.Title.View())
	b.WriteString("\n\n")
	b.WriteString(m.Body.View())
	b.WriteString("\n\n")

	status := "published"
	if m.Draft {
		status = "draft"
	}
	b.WriteString(focusedStyle.Render("Status: " + status))
	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Ctrl+S save, Ctrl+D toggle draft, Tab switch field, Esc cancel"))

	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
