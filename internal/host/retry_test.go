package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetrySucceedsOnceReady(t *testing.T) {
	ready := false
	succeeded := 0
	r := NewRetry(1, time.Millisecond, 5, func() bool { return ready }, func() { succeeded++ }, nil)

	require.NotNil(t, r.Start())
	require.NotNil(t, r.Update(RetryMsg{ID: 1, Attempt: 1}))
	ready = true
	require.Nil(t, r.Update(RetryMsg{ID: 1, Attempt: 2}))
	require.True(t, r.Done())
	require.Equal(t, 2, r.Attempts())
	require.Equal(t, 1, succeeded)

	require.Nil(t, r.Update(RetryMsg{ID: 1, Attempt: 3}))
	require.Equal(t, 1, succeeded)
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	gaveUp := -1
	r := NewRetry(7, time.Millisecond, 3, func() bool { return false }, nil, func(n int) { gaveUp = n })
	for i := 1; i < 3; i++ {
		require.NotNil(t, r.Update(RetryMsg{ID: 7, Attempt: i}))
	}
	require.Nil(t, r.Update(RetryMsg{ID: 7, Attempt: 3}))
	require.True(t, r.Done())
	require.Equal(t, 3, gaveUp)
	require.Nil(t, r.Start())
}

func TestRetryIgnoresOtherIDs(t *testing.T) {
	r := NewRetry(2, time.Millisecond, 3, func() bool { return true }, nil, nil)
	require.Nil(t, r.Update(RetryMsg{ID: 9}))
	require.Zero(t, r.Attempts())
	require.False(t, r.Done())
}
