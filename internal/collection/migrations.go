// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import "embed"

// Migrations holds the collection store schema, applied at startup.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory of [Migrations] holding the SQL files.
const MigrationsDir = "migrations"
