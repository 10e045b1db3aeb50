package domain

import (
	"errors"
	"fmt"
)

// ClaimResult is the outcome of the atomic create-if-absent on an event id.
type ClaimResult int

const (
	// ClaimAcquired means this delivery owns the event and must process it.
	ClaimAcquired ClaimResult = iota
	// ClaimAlreadyProcessed means a previous delivery completed the event.
	ClaimAlreadyProcessed
	// ClaimHeld means another delivery holds a live claim.
	ClaimHeld
)

func (c ClaimResult) String() string {
	switch c {
	case ClaimAcquired:
		return "acquired"
	case ClaimAlreadyProcessed:
		return "already_processed"
	case ClaimHeld:
		return "held"
	default:
		return fmt.Sprintf("claim(%d)", int(c))
	}
}

// SkipError marks an event that is acknowledged without effect because the
// local data needed to apply it is missing or inconsistent.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return "skipped: " + e.Reason
}

// Skip builds a SkipError.
func Skip(format string, args ...any) error {
	return &SkipError{Reason: fmt.Sprintf(format, args...)}
}

// IsSkip reports whether err is a SkipError.
func IsSkip(err error) bool {
	var s *SkipError
	return errors.As(err, &s)
}

// Cache key prefix for processed event ids.
const processedEventPrefix = "evt:processed:"

// ProcessedEventKey is the cache key marking an event as processed.
func ProcessedEventKey(eventID string) string {
	return processedEventPrefix + eventID
}
