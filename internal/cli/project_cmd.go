package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/sdlc/internal/cli/formatter"
	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/alexanderramin/sdlc/internal/projectfile"
	"github.com/alexanderramin/sdlc/internal/service"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	var (
		name, description, phase, out string
		reqs, team                    []string
		noOverwrite, interactive      bool
		plain                         bool
	)
	var start, end *dateValue

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a project and export it to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := service.CreateInput{
				Name:             name,
				Description:      description,
				Requirements:     reqs,
				Team:             team,
				Phase:            phase,
				StartDate:        start.date,
				EstimatedEndDate: end.date,
			}

			if interactive {
				if !app.interactive() {
					return fmt.Errorf("--interactive requires a terminal")
				}
				values := projectFormValues{Name: name, Description: description, Phase: phase}
				if err := newProjectForm(&values).Run(); err != nil {
					return err
				}
				var err error
				if in, err = values.toCreateInput(); err != nil {
					return err
				}
			}

			in.Path = out
			if noOverwrite {
				overwrite := false
				in.Overwrite = &overwrite
			}

			p, path, err := app.Projects.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			app.logger().Debug("project created", "path", path, "phase", p.CurrentPhase)

			w := cmd.OutOrStdout()
			if app.plainOutput(plain) {
				fmt.Fprintf(w, "Project exported to: %s\n", path)
				return nil
			}
			fmt.Fprintln(w, formatter.FormatExported("Created "+p.Name, path, fileSize(path)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "description", "", "Project description")
	cmd.Flags().StringArrayVar(&reqs, "req", nil, "Requirement (repeatable)")
	cmd.Flags().StringSliceVar(&team, "team", nil, "Team members (comma-separated or repeated)")
	cmd.Flags().StringVar(&phase, "phase", "", "Current phase (defaults to the first phase)")
	start = dateFlag(cmd.Flags(), "start", "Start date, defaults to today")
	end = dateFlag(cmd.Flags(), "end", "Estimated end date")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to <name>_proyecto.json)")
	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Fail if the output file already exists")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill in the project with a form")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without colors")

	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var asJSON, plain bool

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Display a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return projectfile.Encode(w, p)
			}
			printProject(w, app, p, plain)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the normalized JSON document")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text report")

	return cmd
}

func newAdvanceCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "advance FILE",
		Short: "Move a project to its next lifecycle phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, advanced, err := app.Projects.Advance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if app.plainOutput(plain) {
				if advanced {
					fmt.Fprintf(w, "Advanced to phase: %s (%d%%)\n", p.CurrentPhase, p.ProgressPercentage())
				} else {
					fmt.Fprintf(w, "Project is already in the final phase: %s\n", p.CurrentPhase)
				}
				return nil
			}
			fmt.Fprintln(w, formatter.FormatAdvance(p, advanced))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without colors")

	return cmd
}

func newRequireCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "require FILE TEXT",
		Short: "Add a requirement to a project file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, added, err := app.Projects.AddRequirement(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			switch {
			case app.plainOutput(plain) && added:
				fmt.Fprintf(w, "Requirement added (%d total)\n", len(p.Requirements))
			case app.plainOutput(plain):
				fmt.Fprintln(w, "Requirement already recorded")
			case added:
				fmt.Fprintln(w, formatter.Success(fmt.Sprintf("Requirement added (%d total)", len(p.Requirements))))
			default:
				fmt.Fprintln(w, formatter.Notice("Requirement already recorded"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without colors")

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	var out string
	var noOverwrite, plain bool

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Re-export a project file in normalized form",
		Long: `Loads FILE leniently and writes it back out with defaults applied,
duplicates removed and the derived fields recomputed. Without --out the
file is written to <name>_proyecto.json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Projects.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			path, err := app.Projects.Export(cmd.Context(), p, out, !noOverwrite)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if app.plainOutput(plain) {
				fmt.Fprintf(w, "Project exported to: %s\n", path)
				return nil
			}
			fmt.Fprintln(w, formatter.FormatExported("Exported", path, fileSize(path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to <name>_proyecto.json)")
	cmd.Flags().BoolVar(&noOverwrite, "no-overwrite", false, "Fail if the output file already exists")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without colors")

	return cmd
}

func newCheckCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate a project file against the format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problems, err := app.Projects.Check(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if app.plainOutput(plain) {
				for _, p := range problems {
					fmt.Fprintln(w, p.Error())
				}
			} else {
				fmt.Fprintln(w, formatter.FormatCheck(args[0], problems))
			}
			if len(problems) > 0 {
				return fmt.Errorf("%s: %d problem(s): %w", args[0], len(problems), domain.ErrMalformedInput)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print one problem per line")

	return cmd
}

func newPhasesCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "phases [FILE]",
		Short: "List the lifecycle phases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var current domain.Phase
			if len(args) == 1 {
				p, err := app.Projects.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				current = p.CurrentPhase
			}
			w := cmd.OutOrStdout()
			if app.plainOutput(plain) {
				for i, ph := range domain.Lifecycle() {
					marker := ""
					if ph == current {
						marker = " *"
					}
					fmt.Fprintf(w, "%d. %s%s\n", i+1, ph, marker)
				}
				return nil
			}
			fmt.Fprintln(w, formatter.FormatLifecycle(current))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain numbered list")

	return cmd
}

// fileSize returns the size of path, or 0 when it cannot be read.
func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// printProject writes either the plain report or the styled card.
func printProject(w io.Writer, app *App, p *domain.Project, plain bool) {
	if app.plainOutput(plain) {
		p.Render(w)
		return
	}
	fmt.Fprintln(w, formatter.FormatProject(p, app.now()))
}
