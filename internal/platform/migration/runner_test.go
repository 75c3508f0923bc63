// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ponydex/internal/platform/migration"
)

/*
TestToPgx5DSN verifies the scheme rewrite expected by golang-migrate.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@localhost:5432/ponydex", "pgx5://u:p@localhost:5432/ponydex"},
		{"postgresql://u:p@localhost/ponydex?sslmode=disable", "pgx5://u:p@localhost/ponydex?sslmode=disable"},
		{"pgx5://u:p@localhost/ponydex", "pgx5://u:p@localhost/ponydex"},
		{"host=localhost dbname=ponydex", "host=localhost dbname=ponydex"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.in))
		})
	}
}
