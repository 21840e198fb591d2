package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/medfinder/internal/buildinfo"
	"github.com/dmitrijs2005/medfinder/internal/config"
	"github.com/dmitrijs2005/medfinder/internal/services"
)

// ErrFlowFailed is returned by line-mode commands whose outcome was already
// printed as an input or database error.
var ErrFlowFailed = errors.New("flow failed")

func failed(o services.Outcome) error {
	if o.Kind == services.InputError || o.Kind == services.DatabaseError {
		return ErrFlowFailed
	}
	return nil
}

// NewRootCommand builds the medfinder command tree over cfg. Configuration
// flags are read by the config package, so cobra lets unknown flags through.
// The returned func releases what the executed command acquired and must be
// called after Execute.
func NewRootCommand(cfg *config.Config) (*cobra.Command, func() error) {
	var app *App
	cleanup := func() error {
		if app == nil {
			return nil
		}
		return app.Close()
	}

	root := &cobra.Command{
		Use:   "medfinder",
		Short: "Healthcare registration and doctor search",
		Long: `medfinder registers users and finds doctors by symptom.

Without a subcommand it opens the terminal UI. Database and logging settings
come from a JSON file (-c/--config) and flags such as --driver, --host, --port,
--user, --password, --db-name, --dsn, --connect-timeout, --log-file,
--log-level and --logger.`,
		Version:            buildinfo.Version(),
		SilenceUsage:       true,
		SilenceErrors:      true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := NewApp(cfg)
			if err != nil {
				return err
			}
			app = a
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunUI(cmd.Context())
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed [file.yaml]",
		Short: "Load doctors from a YAML file",
		Long: `Inserts every doctor listed under "doctors:" in one transaction.

Example:
  medfinder seed doctors.yaml --driver sqlite --db-name healthcare.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.Seed(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d doctors.\n", n)
			return nil
		},
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register a user from the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.Register(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return failed(o)
		},
	}

	searchCmd := &cobra.Command{
		Use:   "search [symptoms...]",
		Short: "Find doctors whose symptoms contain the given text",
		Long: `Words are joined with single spaces. With no words every doctor matches.

Example:
  medfinder search chest pain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return failed(app.Search(cmd.Context(), cmd.OutOrStdout(), strings.Join(args, " ")))
		},
	}

	// cobra reads the whitelist from the executing command, not its parents.
	for _, c := range []*cobra.Command{migrateCmd, seedCmd, registerCmd, searchCmd} {
		c.FParseErrWhitelist = root.FParseErrWhitelist
		root.AddCommand(c)
	}
	return root, cleanup
}
