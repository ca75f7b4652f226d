package client

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/service"
	"github.com/MKhiriev/go-stock-dashboard/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app requires services and ui")
	}
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run restores the stored session, if any, and blocks in the terminal UI
// until the user quits or the process is interrupted. Cancelling the root
// context abandons requests still in flight.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	notice := ""
	if err := a.services.SessionService.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("stored session was not restored")
		notice = tui.Notice(err)
	}

	err := a.tui.Run(ctx, notice)
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		a.logger.Info().Msg("interrupted")
		return nil
	}
	return err
}
