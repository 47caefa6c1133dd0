// Package ytsum holds assets embedded into the ytsum binaries.
package ytsum

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
