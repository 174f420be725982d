package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sdlc/internal/cli/formatter"
	"github.com/alexanderramin/sdlc/internal/domain"
	"github.com/spf13/cobra"
)

// demoProject is the sample academic-management project used by "sdlc demo".
func demoProject() *domain.Project {
	end := time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC)
	return domain.NewProject(
		"Sistema de Gestión Académica",
		"Proyecto para gestionar estudiantes, cursos y calificaciones.",
		domain.WithRequirements("Registro de estudiantes", "Asignación de cursos"),
		domain.WithPhase(string(domain.PhaseAnalysis)),
		domain.WithTeam("María", "José", "Ana"),
		domain.WithStartDate(time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)),
		domain.WithEstimatedEndDate(&end),
	)
}

func newDemoCmd(app *App) *cobra.Command {
	var out string
	var plain bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk a sample project through add, advance, export and load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			section := func(title string) {
				if app.plainOutput(plain) {
					fmt.Fprintf(w, "\n%s\n", title)
					return
				}
				fmt.Fprintf(w, "\n%s\n", formatter.Header(title))
			}

			p := demoProject()
			printProject(w, app, p, plain)

			if err := p.AddRequirement("Módulo de reportes"); err != nil {
				return err
			}
			section("After adding a requirement")
			printProject(w, app, p, plain)

			if p.AdvancePhase() {
				section("Advanced to the next phase")
			} else {
				section("Project is already in the final phase")
			}
			printProject(w, app, p, plain)

			path, err := app.Projects.Export(cmd.Context(), p, out, true)
			if err != nil {
				return err
			}
			section("Exported")
			if app.plainOutput(plain) {
				fmt.Fprintf(w, "Project exported to: %s\n", path)
			} else {
				fmt.Fprintln(w, formatter.FormatExported("Exported", path, fileSize(path)))
			}

			loaded, err := app.Projects.Get(cmd.Context(), path)
			if err != nil {
				return err
			}
			section("Loaded from the exported file")
			printProject(w, app, loaded, plain)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to <name>_proyecto.json)")
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain text report")

	return cmd
}
