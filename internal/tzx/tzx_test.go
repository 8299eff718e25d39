package tzx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoneByOffset_RoundTrip(t *testing.T) {
	// ZoneByOffset picks the first zone with a matching offset, so a zone
	// round-trips to itself unless an earlier zone currently shares its
	// offset (Denver/Phoenix do outside daylight saving).
	for _, z := range Zones {
		offset := OffsetHours(z.ID)

		expected := z.ID
		for _, earlier := range Zones {
			if OffsetHours(earlier.ID) == offset {
				expected = earlier.ID
				break
			}
		}

		assert.Equal(t, expected, ZoneByOffset(offset), "zone %s", z.ID)
	}
}

func TestZoneByOffset_UnmatchedDefaultsToEastern(t *testing.T) {
	// +3 is never a US offset.
	assert.Equal(t, DefaultZone, ZoneByOffset(3))
}

func TestOffsetHours_KnownRanges(t *testing.T) {
	tests := []struct {
		id       string
		min, max int
	}{
		{"America/New_York", -5, -4},
		{"America/Chicago", -6, -5},
		{"America/Denver", -7, -6},
		{"America/Phoenix", -7, -7}, // no daylight saving
		{"America/Los_Angeles", -8, -7},
		{"America/Anchorage", -9, -8},
		{"Pacific/Honolulu", -10, -10}, // no daylight saving
	}
	for _, tt := range tests {
		offset := OffsetHours(tt.id)
		require.GreaterOrEqual(t, offset, tt.min, tt.id)
		require.LessOrEqual(t, offset, tt.max, tt.id)
	}
}

func TestOffsetHours_UnknownZone(t *testing.T) {
	assert.Equal(t, 0, OffsetHours("Not/AZone"))
}

func TestIsSupportedAndLabelFor(t *testing.T) {
	assert.True(t, IsSupported("Pacific/Honolulu"))
	assert.False(t, IsSupported("Europe/Riga"))
	assert.Equal(t, "Eastern Time (ET)", LabelFor("America/New_York"))
	assert.Equal(t, "Europe/Riga", LabelFor("Europe/Riga"))
}
