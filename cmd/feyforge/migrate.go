package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmdrew96/FeyForge-sub001/internal/adapter/postgres"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	open := func(cmd *cobra.Command) (*postgres.Migrator, error) {
		if e.cfg.Database.DSN == "" {
			return nil, errors.New("database.dsn is required")
		}
		return postgres.NewMigrator(cmd.Context(), e.cfg.Database.DSN)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply every pending migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := open(cmd)
				if err != nil {
					return err
				}
				defer m.Close()

				results, err := m.Up(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := open(cmd)
				if err != nil {
					return err
				}
				defer m.Close()

				r, err := m.Down(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate down: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", r.Source.Path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				m, err := open(cmd)
				if err != nil {
					return err
				}
				defer m.Close()

				statuses, err := m.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}
				rows := make([][]any, 0, len(statuses))
				for _, s := range statuses {
					rows = append(rows, []any{s.Source.Version, s.State, s.Source.Path})
				}
				return table(cmd.OutOrStdout(), "VERSION\tSTATE\tFILE", rows)
			},
		},
	)
	return cmd
}
