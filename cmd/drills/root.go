package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"blogful/internal/config"
	"blogful/internal/infra/adapter/persistence/sqlstore"
	"blogful/internal/infra/db"
	"blogful/internal/repository"
	shopUC "blogful/internal/usecase/shopping"
)

// app holds what every subcommand needs. Tests fill db and driver up front;
// otherwise they come from the environment on first use.
type app struct {
	db     *sql.DB
	driver string
	owned  bool

	handle repository.Handle
	items  *shopUC.Service
	json   bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:          "drills",
		Short:        "Shopping list reports and database chores",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect(cmd.Context())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().BoolVar(&a.json, "json", false, "output results as JSON")

	root.AddCommand(
		newMigrateCmd(a),
		newSeedCmd(a),
		newTruncateCmd(a),
		newSearchCmd(a),
		newPageCmd(a),
		newAddedBeforeCmd(a),
		newCategoryTotalsCmd(a),
	)
	return root
}

func (a *app) connect(ctx context.Context) error {
	if a.db == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		conn, err := db.Open(ctx, cfg.DB())
		if err != nil {
			return err
		}
		a.db, a.driver, a.owned = conn, cfg.Database.Driver, true
	}

	dialect, err := sqlstore.DialectFor(a.driver)
	if err != nil {
		return err
	}
	a.handle = sqlstore.New(a.db, dialect)
	a.items = shopUC.NewService()
	return nil
}

func (a *app) close() error {
	if !a.owned || a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db, a.owned = nil, false
	return err
}

func (a *app) printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
