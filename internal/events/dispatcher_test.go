package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryDispatcher_DeliversToSubscribersOfType(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventAuthRejected, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})
	d.Subscribe(EventIdentityLookupFault, func(context.Context, Event) error {
		t.Fatal("handler for another type must not run")
		return nil
	})

	event := New(EventAuthRejected, "req-1", AuthOutcomePayload{Code: "TOKEN_EXPIRED", Path: "/api/me", Status: 401})
	require.NoError(t, d.Publish(context.Background(), event))

	require.Len(t, got, 1)
	assert.Equal(t, event.ID, got[0].ID)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, AuthOutcomePayload{Code: "TOKEN_EXPIRED", Path: "/api/me", Status: 401}, got[0].Payload)
}

func TestInMemoryDispatcher_RunsEveryHandlerAndJoinsErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	first := errors.New("first")
	second := errors.New("second")

	calls := 0
	d.Subscribe(EventOptionalAuthSkipped, func(context.Context, Event) error { calls++; return first })
	d.Subscribe(EventOptionalAuthSkipped, func(context.Context, Event) error { calls++; return second })
	d.Subscribe(EventOptionalAuthSkipped, func(context.Context, Event) error { calls++; return nil })

	err := d.Publish(context.Background(), New(EventOptionalAuthSkipped, "", nil))
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.Equal(t, 3, calls)
}

func TestInMemoryDispatcher_RecoversPanickingHandler(t *testing.T) {
	d := NewInMemoryDispatcher()

	delivered := false
	d.Subscribe(EventAuthRejected, func(context.Context, Event) error { panic("boom") })
	d.Subscribe(EventAuthRejected, func(context.Context, Event) error { delivered = true; return nil })

	var err error
	require.NotPanics(t, func() {
		err = d.Publish(context.Background(), New(EventAuthRejected, "", nil))
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked: boom")
	assert.True(t, delivered)
}

func TestSubscribeAll(t *testing.T) {
	d := NewInMemoryDispatcher()

	var seen []EventType
	SubscribeAll(d, func(_ context.Context, e Event) error {
		seen = append(seen, e.Type)
		return nil
	}, EventAuthRejected, EventOptionalAuthSkipped)
	d.Subscribe(EventIdentityLookupFault, nil)

	ctx := context.Background()
	require.NoError(t, d.Publish(ctx, New(EventOptionalAuthSkipped, "", nil)))
	require.NoError(t, d.Publish(ctx, New(EventAuthRejected, "", nil)))
	require.NoError(t, d.Publish(ctx, New(EventIdentityLookupFault, "", nil)))
	assert.Equal(t, []EventType{EventOptionalAuthSkipped, EventAuthRejected}, seen)
}

func TestInMemoryDispatcher_NoSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()
	assert.NoError(t, d.Publish(context.Background(), New(EventAuthRejected, "", nil)))
}

func TestNew_StampsIDAndTime(t *testing.T) {
	a := New(EventIdentityLookupFault, "r", IdentityLookupFaultPayload{Source: "users"})
	b := New(EventIdentityLookupFault, "r", IdentityLookupFaultPayload{Source: "users"})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
	assert.Equal(t, EventIdentityLookupFault, a.Type)
}
