// Package schema embeds the goose migrations for the progression store.
package schema

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose files
const MigrationsDir = "migrations"

// Migrations contains every goose migration, applied in filename order
//
//go:embed migrations/*.sql
var Migrations embed.FS
