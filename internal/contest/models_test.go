package contest

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContest() Contest {
	return Contest{
		ID:     uuid.New(),
		Name:   "Summer Giveaway",
		Window: window,
	}
}

func TestCanSelectWinner(t *testing.T) {
	c := newContest()

	assert.False(t, c.CanSelectWinner(window.Start.Add(-time.Hour)), "upcoming")
	assert.False(t, c.CanSelectWinner(window.Start.Add(time.Minute)), "active")
	assert.True(t, c.CanSelectWinner(window.End), "ended")

	entry := uuid.New()
	require.NoError(t, c.RecordWinner(entry, window.End.Add(time.Minute)))
	assert.False(t, c.CanSelectWinner(window.End.Add(2*time.Minute)), "already complete")
}

func TestRecordWinner(t *testing.T) {
	c := newContest()
	entry := uuid.New()
	selectedAt := window.End.Add(5 * time.Minute)

	// Selecting before the contest has ended is rejected.
	err := c.RecordWinner(entry, window.Start.Add(time.Minute))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACTIVE")
	assert.False(t, c.HasWinner())

	require.NoError(t, c.RecordWinner(entry, selectedAt))
	require.True(t, c.HasWinner())
	assert.Equal(t, entry, *c.WinnerEntryID)
	assert.True(t, c.WinnerSelectedAt.Equal(selectedAt))
	assert.Equal(t, StatusComplete, c.StatusAt(selectedAt))

	// Recording twice is rejected: the contest is Complete, not Ended.
	err = c.RecordWinner(uuid.New(), selectedAt.Add(time.Minute))
	require.Error(t, err)
	assert.Equal(t, entry, *c.WinnerEntryID)
}

func TestWindowDuration(t *testing.T) {
	assert.Equal(t, time.Hour, window.Duration())
}
