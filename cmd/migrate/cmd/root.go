package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/config"
	"github.com/karnaval/go-costume-catalog/internal/migrations"

	"github.com/spf13/cobra"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate manages the catalog database schema",
	Long:  `Migrate applies, rolls back and reports the embedded goose migrations against postgres.write.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(upCmd, downCmd, statusCmd, versionCmd)
}

var (
	upCmd = &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, db *sql.DB) error {
			return migrations.Up(ctx, db)
		}),
	}

	downCmd = &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, db *sql.DB) error {
			return migrations.Down(ctx, db)
		}),
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, db *sql.DB) error {
			statuses, err := migrations.Status(ctx, db)
			if err != nil {
				return err
			}
			for _, s := range statuses {
				applied := "pending"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.Format("2006-01-02 15:04:05")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8d %-10s %s\n", s.Source.Version, s.State, applied)
			}
			return nil
		}),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the latest applied migration",
		RunE: withDB(func(ctx context.Context, cmd *cobra.Command, db *sql.DB) error {
			v, err := migrations.Version(ctx, db)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}),
	}
)

func withDB(run func(ctx context.Context, cmd *cobra.Command, db *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := xlog.Init(cfg.App.Name+"-migrate", xlog.WithEnv(cfg.App.Env), xlog.WithLevel(cfg.App.LogLevel)); err != nil {
			return err
		}
		defer xlog.Sync()

		db, err := sql.Open("pgx", cfg.Postgres.Write.DSN())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("failed to reach database: %w", err)
		}

		return run(ctx, cmd, db)
	}
}
