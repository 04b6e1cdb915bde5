package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/marketplace-api/pkg/apperror"
	"github.com/sangkips/marketplace-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

const dateOnly = "2006-01-02"

// PageRequest holds offset pagination query parameters
type PageRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// Params converts the request into validated pagination params
func (p PageRequest) Params() *pagination.Params {
	params := &pagination.Params{Limit: p.Limit, Offset: p.Offset}
	params.Validate()
	return params
}

// DateRangeRequest holds the reporting window query parameters
type DateRangeRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Range parses the window bounds. Missing bounds are returned as nil so the
// service can apply its defaults.
func (r DateRangeRequest) Range() (start, end *time.Time, err error) {
	var fieldErrors []apperror.FieldError

	start, msg := parseDate(r.StartDate)
	if msg != "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "start_date", Message: msg})
	}
	end, msg = parseDate(r.EndDate)
	if msg != "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "end_date", Message: msg})
	}
	if len(fieldErrors) > 0 {
		return nil, nil, apperror.NewValidationError(fieldErrors)
	}

	if start != nil && end != nil && start.After(*end) {
		return nil, nil, apperror.NewFieldError("start_date", "start_date must not be after end_date")
	}
	return start, end, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates (midnight UTC).
func parseDate(raw string) (*time.Time, string) {
	if raw == "" {
		return nil, ""
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, ""
	}
	if t, err := time.Parse(dateOnly, raw); err == nil {
		return &t, ""
	}
	return nil, "must be an RFC 3339 timestamp or YYYY-MM-DD date"
}

// optionalUUID parses an optional identifier query parameter
func optionalUUID(field, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.NewFieldError(field, "must be a valid UUID")
	}
	return &id, nil
}

// optionalDecimal parses an optional money query parameter
func optionalDecimal(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperror.NewFieldError(field, "must be a number")
	}
	return &d, nil
}
