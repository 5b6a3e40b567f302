// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"io"
	"net"
	"strings"

	"inkwell/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes covered by the constraint bucket.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// translateStoreError converts a raw driver error into the application error
// taxonomy. This is the single place native store errors are interpreted;
// callers handle gorm.ErrRecordNotFound themselves because only they know the
// resource name and key for a useful NotFound message.
func translateStoreError(err error) error {
	if err == nil {
		return nil
	}

	// Already translated upstream.
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgNotNullViolation:
			return models.NewConstraintViolationError(pgErr.Message, err)
		}
	}

	if isConnectionError(err) {
		return models.NewConnectionError(err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	// sqlite reports constraints as plain strings.
	case strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "foreign key constraint"),
		strings.Contains(msg, "not null constraint"):
		return models.NewConstraintViolationError(err.Error(), err)
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "broken pipe"),
		strings.Contains(msg, "i/o timeout"),
		strings.Contains(msg, "database is closed"):
		return models.NewConnectionError(err)
	}

	// Anything else means the store answered with something the core cannot
	// interpret as the expected shape.
	return models.NewSerializationError(err)
}

func isConnectionError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gorm.ErrInvalidDB)
}
