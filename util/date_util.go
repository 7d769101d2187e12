package util

import "time"

// DateLayout is the wire format for series dates.
const DateLayout = "2006-01-02"

// FormatBarDate converts a provider bar timestamp (unix seconds, UTC)
// to the wire date format.
func FormatBarDate(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format(DateLayout)
}
