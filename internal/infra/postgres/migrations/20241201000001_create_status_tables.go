package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
)

//go:embed 20241201000001_create_status_tables.sql
var createStatusTablesSQL string

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			return execScript(ctx, db, createStatusTablesSQL)
		},
		func(ctx context.Context, db *bun.DB) error {
			return execScript(ctx, db, `DROP TABLE IF EXISTS responses; DROP TABLE IF EXISTS sessions`)
		},
	)
}
