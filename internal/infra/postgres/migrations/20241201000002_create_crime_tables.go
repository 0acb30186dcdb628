package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
)

//go:embed 20241201000002_create_crime_tables.sql
var createCrimeTablesSQL string

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			return execScript(ctx, db, createCrimeTablesSQL)
		},
		func(ctx context.Context, db *bun.DB) error {
			return execScript(ctx, db, `DROP TABLE IF EXISTS crime_responses; DROP TABLE IF EXISTS crime_sessions`)
		},
	)
}
