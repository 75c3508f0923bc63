// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/ponydex/internal/platform/apperr"
	"github.com/taibuivan/ponydex/internal/platform/database/schema"
	"github.com/taibuivan/ponydex/internal/platform/dberr"
)

const resourcePony = "Pony"

// PostgresRepository implements [Repository] on a pgx pool.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a repository over the given pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var ponyColumns = strings.Join(schema.CollectionPony.Columns(), ", ")

func scanPony(row pgx.Row) (*Pony, error) {
	pony := &Pony{}
	err := row.Scan(
		&pony.ID, &pony.Name, &pony.Kind, &pony.Personality, &pony.Skills, &pony.Description,
		&pony.Image, &pony.Category, &pony.Role, &pony.CreatedAt, &pony.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pony, nil
}

func (repository *PostgresRepository) Create(context context.Context, pony *Pony) (*Pony, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s
	`,
		schema.CollectionPony.Table,
		schema.CollectionPony.ID, schema.CollectionPony.Name, schema.CollectionPony.Kind,
		schema.CollectionPony.Personality, schema.CollectionPony.Skills, schema.CollectionPony.Description,
		schema.CollectionPony.Image, schema.CollectionPony.Category, schema.CollectionPony.Role,
		schema.CollectionPony.CreatedAt, schema.CollectionPony.UpdatedAt,
		ponyColumns,
	)

	created, err := scanPony(repository.db.QueryRow(context, query,
		pony.ID, pony.Name, pony.Kind, pony.Personality, pony.Skills, pony.Description,
		pony.Image, pony.Category, pony.Role,
	))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePony)
	}
	return created, nil
}

func (repository *PostgresRepository) Update(context context.Context, pony *Pony) (*Pony, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CollectionPony.Table,
		schema.CollectionPony.Name, schema.CollectionPony.Kind, schema.CollectionPony.Personality,
		schema.CollectionPony.Skills, schema.CollectionPony.Description, schema.CollectionPony.Image,
		schema.CollectionPony.Category, schema.CollectionPony.Role, schema.CollectionPony.UpdatedAt,
		schema.CollectionPony.ID,
		ponyColumns,
	)

	updated, err := scanPony(repository.db.QueryRow(context, query,
		pony.ID, pony.Name, pony.Kind, pony.Personality, pony.Skills, pony.Description,
		pony.Image, pony.Category, pony.Role,
	))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePony)
	}
	return updated, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CollectionPony.Table, schema.CollectionPony.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourcePony)
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound(resourcePony)
	}
	return nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Pony, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		ponyColumns, schema.CollectionPony.Table, schema.CollectionPony.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resourcePony)
	}
	defer rows.Close()

	ponies := []*Pony{}
	for rows.Next() {
		pony, err := scanPony(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourcePony)
		}
		ponies = append(ponies, pony)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourcePony)
	}
	return ponies, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Pony, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		ponyColumns, schema.CollectionPony.Table, schema.CollectionPony.ID,
	)

	pony, err := scanPony(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePony)
	}
	return pony, nil
}
