package scoring

import "fmt"

// BatchValidationError reports a structurally invalid batch request. Unlike
// per-ticker failures, it fails the whole call before any ticker work
// begins.
type BatchValidationError struct {
	Reason string
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("invalid batch request: %s", e.Reason)
}
