package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
)

// pg error code for unique_violation.
const uniqueViolationCode = "23505"

// translateError converts store-level failures into the tagged kinds the
// rest of the app matches on. Unknown errors pass through untouched.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		column := constraintColumn(pgErr.ConstraintName, pgErr.TableName)
		message := column + " must be unique"
		if column == "" {
			message = pgErr.Message
		}
		return models.ConstraintError{Violations: []models.FieldError{{
			Field:   column,
			Message: message,
		}}}
	}

	return err
}

// constraintColumn extracts the column name from a unique constraint name.
// GORM's AutoMigrate names unique constraints "uni_<table>_<column>";
// Postgres' own default is "<table>_<column>_key".
func constraintColumn(constraint, table string) string {
	name := strings.TrimSuffix(constraint, "_key")
	for _, prefix := range []string{"uni_" + table + "_", "idx_" + table + "_", table + "_"} {
		if strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix)
		}
	}
	return ""
}
