// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-uo-client/internal/logger"
	"github.com/MKhiriev/go-uo-client/models"
)

const userObjectsTable = "user_objects"

var userObjectColumns = []string{"api_key", "uo_id", "uo_type", "comm_keys", "created_at", "updated_at"}

// userObjectRepository is the SQL implementation of [UserObjectRepository].
// Queries are built with squirrel in the placeholder format of the
// connection, so the same code serves PostgreSQL and SQLite.
type userObjectRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserObjectRepository constructs a [UserObjectRepository] over db.
func NewUserObjectRepository(db *DB, logger *logger.Logger) UserObjectRepository {
	logger.Debug().Msg("creating user object repository")
	return &userObjectRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userObjectRepository) Create(ctx context.Context, rec models.UserObjectRecord) error {
	query, args, err := r.db.builder().
		Insert(userObjectsTable).
		Columns(userObjectColumns...).
		Values(rec.APIKey, int64(rec.ID), rec.Type, rec.SealedKeys, rec.CreatedAt.UTC(), rec.UpdatedAt.UTC()).
		ToSql()
	if err != nil {
		return buildError(err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return ErrUserObjectAlreadyExists
		}
		r.logger.Err(err).Str("func", "*userObjectRepository.Create").Msg("error inserting user object")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userObjectRepository) Update(ctx context.Context, rec models.UserObjectRecord) error {
	query, args, err := r.db.builder().
		Update(userObjectsTable).
		Set("uo_type", rec.Type).
		Set("comm_keys", rec.SealedKeys).
		Set("updated_at", rec.UpdatedAt.UTC()).
		Where(sq.Eq{"api_key": rec.APIKey, "uo_id": int64(rec.ID)}).
		ToSql()
	if err != nil {
		return buildError(err)
	}

	return r.execAffectingOne(ctx, "*userObjectRepository.Update", query, args)
}

func (r *userObjectRepository) Get(ctx context.Context, apiKey string, id uint32) (models.UserObjectRecord, error) {
	query, args, err := r.db.builder().
		Select(userObjectColumns...).
		From(userObjectsTable).
		Where(sq.Eq{"api_key": apiKey, "uo_id": int64(id)}).
		ToSql()
	if err != nil {
		return models.UserObjectRecord{}, buildError(err)
	}

	rec, err := scanUserObject(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.UserObjectRecord{}, ErrUserObjectNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*userObjectRepository.Get").Msg("error scanning user object")
		return models.UserObjectRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *userObjectRepository) List(ctx context.Context, apiKey string) ([]models.UserObjectRecord, error) {
	query, args, err := r.db.builder().
		Select(userObjectColumns...).
		From(userObjectsTable).
		Where(sq.Eq{"api_key": apiKey}).
		OrderBy("uo_id").
		ToSql()
	if err != nil {
		return nil, buildError(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*userObjectRepository.List").Msg("error listing user objects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.UserObjectRecord
	for rows.Next() {
		rec, err := scanUserObject(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *userObjectRepository) Delete(ctx context.Context, apiKey string, id uint32) error {
	query, args, err := r.db.builder().
		Delete(userObjectsTable).
		Where(sq.Eq{"api_key": apiKey, "uo_id": int64(id)}).
		ToSql()
	if err != nil {
		return buildError(err)
	}

	return r.execAffectingOne(ctx, "*userObjectRepository.Delete", query, args)
}

func (r *userObjectRepository) execAffectingOne(ctx context.Context, fn, query string, args []any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserObjectNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserObject(row rowScanner) (models.UserObjectRecord, error) {
	var (
		rec models.UserObjectRecord
		id  int64
	)
	if err := row.Scan(&rec.APIKey, &id, &rec.Type, &rec.SealedKeys, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return models.UserObjectRecord{}, err
	}
	if id < 0 || id > int64(^uint32(0)) {
		return models.UserObjectRecord{}, fmt.Errorf("user object id %d out of range", id)
	}
	rec.ID = uint32(id)

	return rec, nil
}
