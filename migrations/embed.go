package migrations

import "embed"

// FS holds the goose migrations; apply them with dir ".".
//
//go:embed *.sql
var FS embed.FS
