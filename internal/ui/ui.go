package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/backend"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/content"
	zone "github.com/lrstanley/bubblezone"
)

var ErrUIExit = errors.New("ui error returned")

type UI struct {
	program *tea.Program
}

// New builds the program. source may be nil when the backend cannot report statistics.
func New(ctx context.Context, conf config.Config, portfolio content.Portfolio, client backend.Backend,
	source backend.StatsSource, buildVersion string, buildDate string, buildCommit string, configPath string, cachePath string,
) *UI {
	zone.NewGlobal()

	fps := conf.FPS
	if fps <= 0 {
		fps = 60
	}

	return &UI{
		program: tea.NewProgram(
			newRootModel(ctx, conf, portfolio, client, source, buildVersion, buildDate, buildCommit, configPath, cachePath),
			tea.WithMouseCellMotion(),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithFPS(fps)),
	}
}

func (t UI) Run() error {
	if _, err := t.program.Run(); err != nil {
		return errors.Join(err, ErrUIExit)
	}

	return nil
}

func (t UI) Send(msg tea.Msg) {
	t.program.Send(msg)
}
