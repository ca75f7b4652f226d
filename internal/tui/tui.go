package tui

import (
	"context"

	"github.com/MKhiriev/go-stock-dashboard/internal/forms"
	"github.com/MKhiriev/go-stock-dashboard/internal/logger"
	"github.com/MKhiriev/go-stock-dashboard/internal/service"
	"github.com/MKhiriev/go-stock-dashboard/internal/validators"
	"github.com/MKhiriev/go-stock-dashboard/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal dashboard. It owns the form controllers and the
// history cache for the lifetime of the process.
type TUI struct {
	services  *service.ClientServices
	eoq       *forms.EOQController
	rop       *forms.ROPController
	history   *historyCache
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) (*TUI, error) {
	validator := validators.NewOptimizationFormValidator()
	t := &TUI{
		services:  services,
		eoq:       forms.NewEOQController(services.OptimizationService, validator, logger),
		rop:       forms.NewROPController(services.OptimizationService, validator, logger),
		history:   newHistoryCache(services.HistoryService, logger),
		buildInfo: buildInfo,
		logger:    logger,
	}

	// a new calculation is visible in the history and on the dashboard as
	// soon as the result is shown
	refresh := func(ctx context.Context, _ models.OptimizationResult) {
		_, _ = t.history.refresh(ctx)
	}
	t.eoq.OnSuccess(refresh)
	t.rop.OnSuccess(refresh)

	return t, nil
}

// Run shows the dashboard when a session is active and the welcome screen
// otherwise. notice is shown on the welcome screen. Run returns when the user
// quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, notice string) error {
	model := newAppModel(ctx, t, notice)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
