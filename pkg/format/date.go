package format

import (
	"fmt"
	"math"
	"time"

	"github.com/eventify-app/eventify/pkg/validator"
)

// Style selects a date layout.
type Style string

const (
	StyleFull  Style = "full"
	StyleShort Style = "short"
	StyleTime  Style = "time"
)

// InvalidDate is returned by DateString for unparsable input.
const InvalidDate = "Invalid date"

var layouts = map[Style]string{
	StyleFull:  "January 2, 2006 at 03:04 PM",
	StyleShort: "Jan 2, 2006",
	StyleTime:  "03:04 PM",
}

// Date formats t in its own location. Unknown styles fall back to StyleFull.
func Date(t time.Time, style Style) string {
	layout, ok := layouts[style]
	if !ok {
		layout = layouts[StyleFull]
	}
	return t.Format(layout)
}

// DateString parses value with validator.ParseDate and formats it.
func DateString(value string, style Style) string {
	t, err := validator.ParseDate(value)
	if err != nil {
		return InvalidDate
	}
	return Date(t, style)
}

type interval struct {
	unit    string
	seconds float64
	// last and next replace "1 <unit> ago" and "in 1 <unit>" when set.
	last, next string
}

var intervals = []interval{
	{"year", 31536000, "last year", "next year"},
	{"month", 2592000, "last month", "next month"},
	{"week", 604800, "last week", "next week"},
	{"day", 86400, "yesterday", "tomorrow"},
	{"hour", 3600, "", ""},
	{"minute", 60, "", ""},
	{"second", 1, "", ""},
}

// RelativeTime describes t relative to now in English, e.g. "2 hours ago",
// "in 3 days", "yesterday". Differences below one second are "just now".
func RelativeTime(t, now time.Time) string {
	diff := math.Floor(now.Sub(t).Seconds())

	for _, iv := range intervals {
		n := int(math.Floor(math.Abs(diff) / iv.seconds))
		if n < 1 {
			continue
		}

		past := diff > 0
		switch {
		case n == 1 && past && iv.last != "":
			return iv.last
		case n == 1 && !past && iv.next != "":
			return iv.next
		}

		unit := iv.unit
		if n != 1 {
			unit += "s"
		}
		if past {
			return fmt.Sprintf("%d %s ago", n, unit)
		}
		return fmt.Sprintf("in %d %s", n, unit)
	}

	return "just now"
}
