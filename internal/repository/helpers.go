package repository

import (
	"database/sql"
	"time"
)

// parseNullableTime parses a sql.NullString into a *time.Time using the given layout.
// Returns nil if the value is NULL, empty, or fails to parse.
func parseNullableTime(s sql.NullString, layout string) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(layout, s.String)
	if err != nil {
		return nil
	}
	return &t
}

// nullableTimeToString converts a *time.Time to a value suitable for SQLite storage.
// Returns nil (SQL NULL) if the pointer is nil, otherwise returns the formatted string.
func nullableTimeToString(t *time.Time, layout string) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(layout)
}

// nullableFloatToValue converts a *float64 to a value suitable for SQLite storage.
func nullableFloatToValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// floatFromNull converts a sql.NullFloat64 back to a *float64.
func floatFromNull(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// nullableStringToValue converts a *string to a value suitable for SQLite storage.
func nullableStringToValue(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// stringFromNull converts a sql.NullString back to a *string.
func stringFromNull(s sql.NullString) *string {
	if !s.Valid || s.String == "" {
		return nil
	}
	v := s.String
	return &v
}
