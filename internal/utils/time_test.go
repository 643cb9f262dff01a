package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ts   int64
	}{
		{name: "epoch", ts: 0},
		{name: "recent", ts: 1700000000},
		{name: "before epoch", ts: -86400},
		{name: "far future", ts: 4102444800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted := TimestampToTime(tt.ts)

			assert.Equal(t, time.UTC, converted.Location())
			assert.Equal(t, tt.ts, TimeToTimestamp(converted))
		})
	}
}

func TestTimeToTimestamp_TruncatesSubSeconds(t *testing.T) {
	moment := time.Date(2024, 5, 1, 12, 0, 0, 999_000_000, time.UTC)

	assert.Equal(t, int64(1714564800), TimeToTimestamp(moment))
}

func TestTimeToTimestamp_IgnoresLocation(t *testing.T) {
	loc := time.FixedZone("UTC-4", -4*60*60)
	local := time.Date(2024, 5, 1, 8, 0, 0, 0, loc)
	utc := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, TimeToTimestamp(utc), TimeToTimestamp(local))
}

func TestTimestampPtrToTime(t *testing.T) {
	assert.Nil(t, TimestampPtrToTime(nil))

	ts := int64(1700000000)
	got := TimestampPtrToTime(&ts)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Unix(ts, 0)))
}

func TestTimePtrToTimestamp(t *testing.T) {
	assert.Nil(t, TimePtrToTimestamp(nil))

	moment := time.Unix(1700000000, 0)
	got := TimePtrToTimestamp(&moment)
	require.NotNil(t, got)
	assert.Equal(t, int64(1700000000), *got)
}
