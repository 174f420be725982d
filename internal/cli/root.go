package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/sdlc/internal/config"
	"github.com/alexanderramin/sdlc/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Projects service.ProjectService
	Config   *config.Config
	Logger   *slog.Logger

	// IsInteractive reports whether stdin is a terminal; forms need one.
	IsInteractive func() bool
	// Now anchors relative dates in styled output.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// plainOutput reports whether output should skip lipgloss styling.
func (a *App) plainOutput(flag bool) bool {
	return flag || (a.Config != nil && a.Config.Color == config.ColorNever)
}

// NewRootCmd creates the top-level "sdlc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "sdlc",
		Short:         "Track software projects through their development lifecycle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newNewCmd(app),
		newShowCmd(app),
		newAdvanceCmd(app),
		newRequireCmd(app),
		newExportCmd(app),
		newCheckCmd(app),
		newPhasesCmd(app),
		newDemoCmd(app),
	)

	return root
}
