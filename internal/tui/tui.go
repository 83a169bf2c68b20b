// Package tui renders the tenant preview in the terminal.
//
// The preview shows a spinner while the tenant configuration loads and then
// a branding card built from the resolved configuration.
package tui

import (
	"context"

	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfigSource publishes the configuration state of a preview session.
type ConfigSource interface {
	State() models.ConfigState
	Subscribe() <-chan models.ConfigState
}

type TUI struct {
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run shows the preview until the user quits or ctx is cancelled.
// Cancellation is not an error.
func (t *TUI) Run(ctx context.Context, source ConfigSource) error {
	model := newPreviewModel(source, t.buildInfo)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	_, err := tea.NewProgram(model, opts...).Run()
	if err != nil && ctx.Err() != nil {
		t.logger.Info().Msg("preview interrupted")
		return nil
	}

	return err
}
