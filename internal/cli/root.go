package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"catalog-cli/internal/store"
	"catalog-cli/internal/tui"
	"catalog-cli/internal/ui"
)

// App holds global flags shared by all commands.
type App struct {
	SeedPath string
	Theme    string
	NoColor  bool
}

// NewRootCommand creates the root command for the catalog CLI.
// Without a subcommand it opens the interactive page.
func NewRootCommand() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "catalog - a single-page catalog manager",
		Long:          "Manage a catalog of named items with descriptions. Items live in memory for the session, seeded once from a data file; nothing is written back.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetTheme(app.Theme)
			if app.NoColor {
				ui.SetColorForcing(false, true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			st, diag := openStore(app)
			return tui.Run(st, diag)
		},
	}

	cmd.PersistentFlags().StringVar(&app.SeedPath, "seed", envOr("CATALOG_SEED", store.DefaultSeedPath), "path to the seed data file (.json or .csv)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("CATALOG_THEME", "classic"), "output theme (classic|neon|mono)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newShowCommand(app))
	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newEditCommand(app))
	cmd.AddCommand(newRemoveCommand(app))

	return cmd
}

// openStore runs the one-shot seed load. A load failure is not fatal:
// the page starts empty with a persistent diagnostic instead.
func openStore(app *App) (*store.Store, string) {
	seed, err := store.LoadSeed(app.SeedPath)
	if err != nil {
		return store.New(nil), "seed load failed: " + err.Error()
	}
	diag := ""
	if seed.Skipped > 0 {
		diag = fmt.Sprintf("skipped %d invalid seed row(s)", seed.Skipped)
	}
	return store.New(seed.Items), diag
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
