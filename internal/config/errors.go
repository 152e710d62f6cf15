package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	ErrMissingDatabaseHost = errors.New("DB_HOST is required")
	ErrMissingDatabaseName = errors.New("DB_NAME is required")

	// ErrInvalidPriorityThreshold is returned when REPORT_PRIORITY_THRESHOLD is negative.
	ErrInvalidPriorityThreshold = errors.New("invalid priority threshold: must be non-negative")

	// ErrInvalidUserValueLimit is returned when REPORT_USER_VALUE_LIMIT is negative.
	ErrInvalidUserValueLimit = errors.New("invalid user value limit: must be non-negative")
)
