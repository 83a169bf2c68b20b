package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-playbook/internal/logger"
	"github.com/MKhiriev/go-playbook/internal/tui"
)

// App runs one preview session: it starts the configuration load and shows
// the result in the terminal UI.
type App struct {
	provider *ConfigProvider
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(provider *ConfigProvider, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if provider == nil || ui == nil {
		return nil, fmt.Errorf("create preview app: missing provider or ui")
	}
	return &App{provider: provider, ui: ui, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.provider.Start(ctx)
	defer a.provider.Close()

	a.logger.Info().Str("client", a.provider.State().ClientSlug).Msg("preview started")

	if err := a.ui.Run(ctx, a.provider); err != nil {
		return fmt.Errorf("run preview ui: %w", err)
	}
	return nil
}
