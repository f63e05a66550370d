package db

import "fmt"

// Common errors
var (
	ErrDatabaseConnection = fmt.Errorf("database connection error")
	ErrQueryFailed        = fmt.Errorf("query failed")
	ErrNotConfigured      = fmt.Errorf("database not configured")
)
