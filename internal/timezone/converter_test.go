package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalToUTC(t *testing.T) {
	tests := []struct {
		name  string
		local string
		zone  ID
		want  time.Time
	}{
		{
			name:  "eastern daylight time",
			local: "2025-08-20T19:15",
			zone:  "America/New_York",
			want:  time.Date(2025, 8, 20, 23, 15, 0, 0, time.UTC),
		},
		{
			name:  "eastern standard time",
			local: "2025-01-15T19:15",
			zone:  "America/New_York",
			want:  time.Date(2025, 1, 16, 0, 15, 0, 0, time.UTC),
		},
		{
			name:  "utc passthrough",
			local: "2025-08-20T23:15",
			zone:  UTC,
			want:  time.Date(2025, 8, 20, 23, 15, 0, 0, time.UTC),
		},
		{
			name:  "half hour offset zone",
			local: "2025-08-21T04:45",
			zone:  "Asia/Kolkata",
			want:  time.Date(2025, 8, 20, 23, 15, 0, 0, time.UTC),
		},
		{
			name:  "southern hemisphere daylight time",
			local: "2025-01-15T10:00",
			zone:  "Australia/Sydney",
			want:  time.Date(2025, 1, 14, 23, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalToUTC(tt.local, tt.zone)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestLocalToUTC_RepeatedHour(t *testing.T) {
	// US fall-back 2025: Nov 2, clocks repeat 01:00-02:00. 01:30 occurs as
	// EDT (05:30Z) and EST (06:30Z); the standard-time reading wins.
	got, err := LocalToUTC("2025-11-02T01:30", "America/New_York")
	require.NoError(t, err)
	want := time.Date(2025, 11, 2, 6, 30, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestLocalToUTC_SkippedHour(t *testing.T) {
	// US spring-forward 2025: Mar 9, 02:00-03:00 does not exist. 02:30
	// shifts forward by the gap width to 03:30 EDT (07:30Z).
	got, err := LocalToUTC("2025-03-09T02:30", "America/New_York")
	require.NoError(t, err)
	want := time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %v, want %v", got, want)
}

func TestLocalToUTC_InvalidZone(t *testing.T) {
	for _, zone := range []ID{"Mars/Olympus_Mons", "Pacific/Chatham", ""} {
		_, err := LocalToUTC("2025-08-20T19:15", zone)
		var zerr *ZoneError
		require.ErrorAs(t, err, &zerr, "zone %q", zone)
		assert.Equal(t, zone, zerr.Zone)
	}
}

func TestLocalToUTC_Malformed(t *testing.T) {
	for _, local := range []string{
		"08/20/2025 7:15 PM",
		"2025-08-20",
		"2025-08-20T19:15:00Z", // wall-clock strings never carry a zone
		"not a time",
		"",
	} {
		_, err := LocalToUTC(local, "America/New_York")
		var lerr *LocalStringError
		require.ErrorAs(t, err, &lerr, "input %q", local)
		assert.Equal(t, local, lerr.Value)
	}
}

func TestUTCToLocal(t *testing.T) {
	instant := time.Date(2025, 8, 20, 23, 15, 0, 0, time.UTC)
	got, err := UTCToLocal(instant, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-20T19:15", got)

	_, err = UTCToLocal(instant, "Not/AZone")
	var zerr *ZoneError
	require.ErrorAs(t, err, &zerr)
}

func TestRoundTrip(t *testing.T) {
	// localToUtc(utcToLocal(i, z), z) == i for instants whose local reading
	// is unambiguous. Mid-January and mid-July sit well clear of every
	// supported zone's transitions.
	instants := []time.Time{
		time.Date(2025, 1, 15, 4, 30, 0, 0, time.UTC),
		time.Date(2025, 1, 15, 18, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 15, 4, 30, 0, 0, time.UTC),
		time.Date(2025, 7, 15, 23, 45, 0, 0, time.UTC),
	}
	for _, z := range Supported() {
		for _, i := range instants {
			local, err := UTCToLocal(i, z.ID)
			require.NoError(t, err)
			back, err := LocalToUTC(local, z.ID)
			require.NoError(t, err)
			assert.True(t, back.Equal(i), "zone %s instant %v round-tripped to %v", z.ID, i, back)
		}
	}
}

func TestFormatForDisplay(t *testing.T) {
	instant := time.Date(2025, 8, 20, 23, 15, 0, 0, time.UTC)

	short, err := FormatForDisplay(instant, "America/New_York", StyleShort)
	require.NoError(t, err)
	assert.Equal(t, "Aug 20, 7:15 PM", short)

	long, err := FormatForDisplay(instant, "America/New_York", StyleLong)
	require.NoError(t, err)
	assert.Equal(t, "August 20, 2025 at 7:15 PM EDT", long)

	_, err = FormatForDisplay(instant, "Nope", StyleShort)
	var zerr *ZoneError
	require.ErrorAs(t, err, &zerr)
}

func TestParseInstant(t *testing.T) {
	got, err := ParseInstant("2025-08-20T23:15:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 8, 20, 23, 15, 0, 0, time.UTC)))

	// Offset designators are accepted and normalized to UTC.
	got, err = ParseInstant("2025-08-20T19:15:00-04:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 8, 20, 23, 15, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, got.Location())

	// Naive timestamps never cross the boundary.
	for _, s := range []string{"2025-08-20T23:15:00", "2025-08-20 23:15:00", "2025-08-20"} {
		_, err := ParseInstant(s)
		var lerr *LocalStringError
		require.ErrorAs(t, err, &lerr, "input %q", s)
	}
}

func TestFormatInstant(t *testing.T) {
	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	instant := time.Date(2025, 8, 20, 18, 15, 0, 0, loc)
	assert.Equal(t, "2025-08-20T23:15:00Z", FormatInstant(instant))
}
