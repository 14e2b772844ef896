package dates

import "time"

// Layout is the wire format of appointment dates ("2024-01-01"). Dates are
// stored and compared as strings; a malformed date simply matches no
// bookings, which is what keeps the availability query permissive.
const Layout = "2006-01-02"

const DefaultTimezone = "Asia/Dhaka"

func IsValid(date string) bool {
	if date == "" {
		return false
	}
	_, err := time.Parse(Layout, date)
	return err == nil
}

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today returns the current clinic-local calendar date in wire format.
func Today(tz string) string {
	return NowIn(tz).Format(Layout)
}
