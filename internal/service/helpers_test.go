package service

import (
	"encoding/json"
	"testing"
	"time"

	"payment-reconciler/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestLogger() zerolog.Logger {
	return zerolog.Nop()
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

// newEvent builds a verified event whose data.object is obj.
func newEvent(t *testing.T, id string, typ domain.EventType, obj any) *domain.Event {
	t.Helper()
	raw, err := json.Marshal(obj)
	require.NoError(t, err)
	return &domain.Event{ID: id, Type: typ, Created: testNow, Object: raw}
}

func strPtr(s string) *string { return &s }
