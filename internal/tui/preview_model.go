package tui

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-playbook/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type previewModel struct {
	updates   <-chan models.ConfigState
	state     models.ConfigState
	buildInfo models.AppBuildInfo

	spinner  spinner.Model
	showInfo bool
	status   string
	errMsg   string
	width    int

	// writeClipboard is replaced in tests.
	writeClipboard func(string) error
}

func newPreviewModel(source ConfigSource, buildInfo models.AppBuildInfo) previewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return previewModel{
		updates:        source.Subscribe(),
		state:          source.State(),
		buildInfo:      buildInfo,
		spinner:        s,
		writeClipboard: clipboard.WriteAll,
	}
}

func (m previewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForState(m.updates))
}

// waitForState blocks until the source publishes the next state.
func waitForState(updates <-chan models.ConfigState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-updates
		if !ok {
			return sourceClosedMsg{}
		}
		return stateMsg(state)
	}
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = models.ConfigState(msg)
		return m, waitForState(m.updates)
	case sourceClosedMsg:
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Resolved config copied to clipboard"
		return m, nil
	case spinner.TickMsg:
		if !m.state.IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m previewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showInfo = !m.showInfo
	case key.Matches(msg, keys.esc):
		m.showInfo = false
	case key.Matches(msg, keys.copy):
		if m.state.IsLoading {
			m.status = "Still loading, nothing to copy yet"
			return m, nil
		}
		return m, m.cmdCopy()
	}

	return m, nil
}

func (m previewModel) cmdCopy() tea.Cmd {
	cfg := m.state.Config
	write := m.writeClipboard
	return func() tea.Msg {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: write(string(data))}
	}
}

func (m previewModel) View() string {
	if m.showInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	if m.state.IsLoading {
		body := fmt.Sprintf("%s Loading configuration for %q...", m.spinner.View(), m.state.ClientSlug)
		return renderPage("PLAYBOOK PREVIEW", body, helpLine(keys.buildInfo, keys.quit))
	}

	body := renderCard(m.state, m.width)
	if m.state.Err != "" {
		body += "\n\n" + errorStyle.Render("Showing defaults: "+m.state.Err)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render(m.errMsg)
	}
	if m.status != "" {
		body += "\n\n" + helpStyle.Render(m.status)
	}

	return renderPage("PLAYBOOK PREVIEW", body, helpLine(keys.copy, keys.buildInfo, keys.quit))
}
