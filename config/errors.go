package config

import "fmt"

// Configuration errors
var (
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrReadConfig    = fmt.Errorf("failed to read config file")
)
