package postgres

import (
	"context"

	kpool "github.com/traininglab/simreg/pkg/conn/db/postgres/pool"
	kschema "github.com/traininglab/simreg/pkg/domain/schema/db"
)

// Statements are executed one by one in a single transaction:
// pgx's extended protocol does not take multi-statement commands.
var ddl = []string{
	`
	CREATE TABLE IF NOT EXISTS "machine" (
		"id" SERIAL NOT NULL PRIMARY KEY,
		"name" varchar(20) NOT NULL UNIQUE,
		"location" varchar(100) NOT NULL
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS "simulation" (
		"id" SERIAL NOT NULL PRIMARY KEY,
		"name" varchar(30) NOT NULL UNIQUE,
		"state" varchar(10) NOT NULL,
		"date_created" timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
		"date_updated" timestamp with time zone,
		"machine_id" int,
		FOREIGN KEY ("machine_id") REFERENCES "machine" ("id")
	)
	`,
	`
	CREATE TABLE IF NOT EXISTS "lossdata" (
		"id" SERIAL NOT NULL PRIMARY KEY,
		"seconds" integer NOT NULL,
		"loss" numeric(10, 5) NOT NULL,
		"simulation_id" int NOT NULL,
		FOREIGN KEY ("simulation_id") REFERENCES "simulation" ("id")
	)
	`,
	`
	CREATE OR REPLACE FUNCTION update_date_updated_column()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.date_updated = CURRENT_TIMESTAMP;
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql
	`,
	`DROP TRIGGER IF EXISTS "update_date_updated_col" ON "simulation"`,
	`
	CREATE TRIGGER "update_date_updated_col"
	BEFORE UPDATE ON "simulation"
	FOR EACH ROW EXECUTE PROCEDURE update_date_updated_column()
	`,
}

type pgSchema struct {
	pool kpool.Pool
}

func New(pool kpool.Pool) kschema.SchemaInterface {
	return &pgSchema{pool: pool}
}

func (s *pgSchema) Ensure(ctx context.Context) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, stmt := range ddl {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
