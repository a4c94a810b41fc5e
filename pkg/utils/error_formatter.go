package utils

import (
	"errors"

	"go.uber.org/zap"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
)

// FormatError reduces any failure to the uniform {field, message} list the
// API responds with, regardless of where the failure came from:
//
//   - schema validation: one entry per violation, in rule order
//   - store constraint breach: one entry per constrained column
//   - not found: a single entry with an empty field and the default message
//   - anything else: same single entry; the cause is logged for diagnostics
//     and never serialized to the caller
func FormatError(err error, defaultMessage string) []models.FieldError {
	var validationErr models.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Violations
	}

	var constraintErr models.ConstraintError
	if errors.As(err, &constraintErr) {
		return constraintErr.Violations
	}

	if err != nil && !errors.Is(err, models.ErrNotFound) {
		zap.L().Error("unexpected error", zap.Error(err))
	}

	return []models.FieldError{{Field: "", Message: defaultMessage}}
}
