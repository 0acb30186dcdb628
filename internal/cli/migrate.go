package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"perception-quiz-service/internal/config"
	pgmigrations "perception-quiz-service/internal/infra/postgres/migrations"
	"perception-quiz-service/internal/infra/sqlite"
)

// NewMigrateCmd applies database migrations.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath)
		},
	}
}

func runMigrations(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	switch config.StoreKind(cfg.Database.URL) {
	case config.StorePostgres:
		return runMigrationsWithConfig(ctx, cfg)
	case config.StoreSQLite:
		store, err := sqlite.Open(config.SQLitePath(cfg.Database.URL))
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.AutoMigrate(); err != nil {
			return err
		}
		glog.Infof("sqlite schema up to date")
		return nil
	default:
		return fmt.Errorf("database url not configured")
	}
}

func runMigrationsWithConfig(ctx context.Context, cfg config.Config) error {
	if cfg.Database.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Database.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		return err
	}
	if group.IsZero() {
		glog.Infof("no new migrations")
		return nil
	}
	glog.Infof("migrated to %s", group)
	return nil
}
