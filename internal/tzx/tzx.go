// Package tzx maps the fixed set of US timezones supported by notification
// profiles to and from signed UTC offset hours. Offsets are computed from
// IANA timezone data at call time, so they follow the current daylight
// saving state rather than a hardcoded table.
package tzx

import "time"

// Zone pairs an IANA timezone identifier with its display label.
type Zone struct {
	ID    string
	Label string
}

// Zones lists the supported timezones in display order. ZoneByOffset
// resolves collisions by first match, so order matters.
var Zones = []Zone{
	{"America/New_York", "Eastern Time (ET)"},
	{"America/Chicago", "Central Time (CT)"},
	{"America/Denver", "Mountain Time (MT)"},
	{"America/Phoenix", "Mountain Time - Arizona (MT)"},
	{"America/Los_Angeles", "Pacific Time (PT)"},
	{"America/Anchorage", "Alaska Time (AKT)"},
	{"Pacific/Honolulu", "Hawaii-Aleutian Time (HAT)"},
}

// DefaultZone is used whenever an offset or identifier matches nothing.
const DefaultZone = "America/New_York"

// IsSupported reports whether id is one of the supported zone identifiers.
func IsSupported(id string) bool {
	for _, z := range Zones {
		if z.ID == id {
			return true
		}
	}
	return false
}

// LabelFor returns the display label for a supported zone identifier, or
// the identifier itself when it is unknown.
func LabelFor(id string) string {
	for _, z := range Zones {
		if z.ID == id {
			return z.Label
		}
	}
	return id
}

// OffsetHours returns the current UTC offset of the zone in whole hours.
// Unknown identifiers report 0.
func OffsetHours(id string) int {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return 0
	}
	_, secs := time.Now().In(loc).Zone()
	return secs / 3600
}

// ZoneByOffset returns the first supported zone whose current UTC offset
// equals hours, or DefaultZone when none matches.
func ZoneByOffset(hours int) string {
	for _, z := range Zones {
		if OffsetHours(z.ID) == hours {
			return z.ID
		}
	}
	return DefaultZone
}
