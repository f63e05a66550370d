package manual

import "fmt"

// Manual record errors
var (
	ErrNotConfigured = fmt.Errorf("no manual record configured")
	ErrLoad          = fmt.Errorf("failed to load manual record")
	ErrInvalid       = fmt.Errorf("invalid manual record")
)
