package types

import "fmt"

// FeedError wraps errors from the telemetry feed with additional context.
type FeedError struct {
	Err         error
	Message     string
	Recoverable bool
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("telemetry error: %s: %v", e.Message, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}
