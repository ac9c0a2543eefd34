package cli

import (
	"io"
	"time"

	"github.com/alexanderramin/pathwise/internal/resume"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by CLI commands.
type App struct {
	Session *service.Session
	Resumes *resume.Loader
	Logger  zerolog.Logger

	// Now supplies the default schedule start date.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// SetupErr is a startup failure (for example a missing API key) that
	// only matters to commands that call the text generator.
	SetupErr error
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// spinner starts a spinner on w when running interactively.
func (a *App) spinner(w io.Writer, message string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatterSpinner(w, message)
}

// NewRootCmd creates the top-level "pathwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "pathwise",
		Short:         "Career gap analysis and learning project planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newTitlesCmd(app),
		newScheduleCmd(app),
		newDaysCmd(app),
		newSkillsCmd(app),
		newImportCmd(app),
	)

	return root
}
