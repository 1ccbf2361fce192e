package db

import "context"

// SchemaInterface represents the database schema.
type SchemaInterface interface {
	// Ensure creates the tables and the trigger stamping
	// simulation.date_updated, as far as they do not exist yet.
	//
	// It is safe to call on every startup.
	Ensure(ctx context.Context) error
}
