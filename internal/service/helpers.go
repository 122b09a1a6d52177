package service

import (
	"errors"
	"time"

	"groceryhub/internal/apierror"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Clock returns the current time; services take one so tests can pin "today".
type Clock func() time.Time

func orNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// notFound maps gorm.ErrRecordNotFound onto a NotFound failure and passes
// every other error through untouched.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound(msg)
	}
	return err
}

func isNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }

func isDuplicate(err error) bool { return errors.Is(err, repository.ErrDuplicate) }

func isCheckViolation(err error) bool { return errors.Is(err, repository.ErrCheck) }

// rejectedBy maps a storage check violation onto a validation failure for
// field; other errors pass through.
func rejectedBy(err error, field string) error {
	if isCheckViolation(err) {
		return apierror.Validation(apierror.CodeRejectedValue, field, field+" was rejected by storage constraints")
	}
	return err
}

// Money columns hold two decimal places.
const moneyPlaces = 2

// validateMoney requires a positive value that fits a decimal column with
// intDigits digits before the point and exactly two after it.
func validateMoney(field, positiveCode string, d decimal.Decimal, intDigits int32) error {
	if !d.IsPositive() {
		return apierror.Validation(positiveCode, field, field+" must be greater than zero")
	}
	if !d.Equal(d.Round(moneyPlaces)) {
		return apierror.Validation(apierror.CodeInvalidPrecision, field, field+" cannot have more than 2 decimal places")
	}
	if d.GreaterThanOrEqual(decimal.New(1, intDigits)) {
		return apierror.Validation(apierror.CodeValueTooLarge, field, field+" is too large")
	}
	return nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierror.Validation(apierror.CodeInvalidID, field, field+" must be a valid UUID")
	}
	return id, nil
}

// parseOptionalID returns nil for an empty string.
func parseOptionalID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := parseID(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDate(field, raw string) (time.Time, error) {
	d, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return time.Time{}, apierror.Validation(apierror.CodeInvalidDate, field, field+" must use the YYYY-MM-DD format")
	}
	return d, nil
}

func parseOptionalDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := parseDate(field, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(model.DateLayout)
	return &s
}
