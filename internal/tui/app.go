// Package tui is the terminal dashboard for a user's QR codes: list, create,
// edit and delete, mirroring server responses into local view state.
package tui

import (
	"context"
	"fmt"
	"strings"

	"qrkeep/internal/client"
	"qrkeep/internal/identity"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenCreate
	screenEdit
	screenConfirmDelete
)

type appModel struct {
	ctx      context.Context
	api      *client.Client
	provider *identity.Client
	session  string

	state         *client.ViewState
	currentScreen screen
	idx           int
	input         textinput.Model
	editCodeID    string
	pendingDelete string
	spinner       spinner.Model
	status        string
	quitting      bool
}

func newAppModel(ctx context.Context, api *client.Client, provider *identity.Client, session string) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Placeholder = "text or URL"
	input.CharLimit = 0

	return appModel{
		ctx:           ctx,
		api:           api,
		provider:      provider,
		session:       session,
		state:         client.NewViewState(""),
		currentScreen: screenList,
		input:         input,
		spinner:       s,
	}
}

// Run drives the dashboard until the user quits or logs out.
func Run(ctx context.Context, api *client.Client, provider *identity.Client, session string) error {
	api.SetSessionToken(session)
	_, err := tea.NewProgram(newAppModel(ctx, api, provider, session), tea.WithAltScreen()).Run()
	return err
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.resolveUserCmd())
}

// ----- commands -------------------------------------------------------------

func (m appModel) resolveUserCmd() tea.Cmd {
	return func() tea.Msg {
		user, err := m.provider.CurrentUser(m.ctx, m.session)
		if err != nil {
			return userResolvedMsg{err: err}
		}
		return userResolvedMsg{userID: user.ID}
	}
}

func (m appModel) fetchListCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		codes, err := m.api.ListQRCodes(m.ctx, userID)
		return listLoadedMsg{codes: codes, err: err}
	}
}

func (m appModel) createCmd(data string) tea.Cmd {
	userID := m.state.UserID()
	return func() tea.Msg {
		code, err := m.api.Generate(m.ctx, userID, data)
		return codeCreatedMsg{code: code, err: err}
	}
}

func (m appModel) updateCmd(codeID, data string) tea.Cmd {
	userID := m.state.UserID()
	return func() tea.Msg {
		code, err := m.api.UpdateQRCode(m.ctx, codeID, userID, data)
		return codeUpdatedMsg{code: code, err: err}
	}
}

func (m appModel) deleteCmd(codeID string) tea.Cmd {
	userID := m.state.UserID()
	return func() tea.Msg {
		err := m.api.DeleteQRCode(m.ctx, codeID, userID)
		return codeDeletedMsg{codeID: codeID, err: err}
	}
}

func (m appModel) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.provider.DeleteSession(m.ctx, m.session)}
	}
}

// ----- update ---------------------------------------------------------------

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case userResolvedMsg:
		if msg.err != nil {
			m.state.Fail(fmt.Errorf("failed to fetch user details: %w", msg.err))
			return m, nil
		}
		m.state = client.NewViewState(msg.userID)
		m.state.BeginLoading()
		return m, m.fetchListCmd(msg.userID)

	case listLoadedMsg:
		m.state.ApplyList(msg.codes, msg.err)
		return m, nil

	case codeCreatedMsg:
		if msg.err != nil {
			m.state.Fail(msg.err)
			return m, nil
		}
		m.state.Append(*msg.code)
		m.status = "QR code created"
		return m, nil

	case codeUpdatedMsg:
		if msg.err != nil {
			m.state.Fail(msg.err)
			return m, nil
		}
		m.state.Replace(*msg.code)
		m.status = "QR code updated"
		return m, nil

	case codeDeletedMsg:
		if msg.err != nil {
			m.state.Fail(msg.err)
			return m, nil
		}
		m.state.Remove(msg.codeID)
		if m.idx >= len(m.state.Codes()) && m.idx > 0 {
			m.idx--
		}
		m.status = "QR code deleted"
		return m, nil

	case loggedOutMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen == screenCreate || m.currentScreen == screenEdit {
		switch msg.String() {
		case "enter":
			data := strings.TrimSpace(m.input.Value())
			if data == "" {
				return m, nil
			}
			editing := m.currentScreen == screenEdit
			m.currentScreen = screenList
			m.input.Blur()
			if editing {
				return m, m.updateCmd(m.editCodeID, data)
			}
			return m, m.createCmd(data)
		case "esc":
			m.currentScreen = screenList
			m.input.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	if m.currentScreen == screenConfirmDelete {
		switch msg.String() {
		case "y", "enter":
			m.currentScreen = screenList
			return m, m.deleteCmd(m.pendingDelete)
		case "n", "esc":
			m.currentScreen = screenList
			return m, nil
		}
		return m, nil
	}

	codes := m.state.Codes()
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.state.DismissError()
		m.status = ""
		return m, nil
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(codes)-1 {
			m.idx++
		}
	case "n":
		m.currentScreen = screenCreate
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case "e":
		if m.idx < len(codes) {
			m.currentScreen = screenEdit
			m.editCodeID = codes[m.idx].CodeID
			m.input.SetValue(codes[m.idx].Data)
			m.input.Focus()
			return m, textinput.Blink
		}
	case "d":
		if m.idx < len(codes) {
			m.currentScreen = screenConfirmDelete
			m.pendingDelete = codes[m.idx].CodeID
		}
	case "r":
		if m.state.UserID() != "" {
			m.state.BeginLoading()
			return m, m.fetchListCmd(m.state.UserID())
		}
	case "l":
		return m, m.logoutCmd()
	}
	return m, nil
}

// ----- view -----------------------------------------------------------------

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("qrkeep") + "\n\n")

	if lastErr := m.state.Error(); lastErr != "" {
		b.WriteString(errorStyle.Render("! "+lastErr) + "  " + helpStyle.Render("(esc to dismiss)") + "\n\n")
	}

	switch m.currentScreen {
	case screenCreate:
		b.WriteString("New QR code payload:\n\n  " + m.input.View() + "\n\n")
		b.WriteString(helpStyle.Render("enter save · esc cancel"))
	case screenEdit:
		b.WriteString("Edit payload for " + m.editCodeID + ":\n\n  " + m.input.View() + "\n\n")
		b.WriteString(helpStyle.Render("enter save · esc cancel"))
	case screenConfirmDelete:
		b.WriteString("Delete " + m.pendingDelete + "? (y/n)")
	default:
		m.renderList(&b)
	}

	return appStyle.Render(b.String())
}

func (m appModel) renderList(b *strings.Builder) {
	if m.state.Loading() {
		b.WriteString(m.spinner.View() + " Loading QR codes...\n")
		return
	}

	codes := m.state.Codes()
	if len(codes) == 0 {
		b.WriteString("No QR codes yet.\n")
	}
	for i, c := range codes {
		line := fmt.Sprintf("%s  %s", c.CodeID, payloadStyle.Render(c.Data))
		if i == m.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(helpStyle.Render("n new · e edit · d delete · r refresh · l logout · q quit"))
}
