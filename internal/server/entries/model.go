package entries

// Entry is the daily message for one calendar date plus that month's
// theme. Dates repeat every year, so the key is (month, day) only.
type Entry struct {
	Month int
	Day   int
	Theme string
	Body  string
}
