// Package frdate parses free-text French date fragments such as
// "11 février", "11 fév 2025" or "1er janvier" style inputs without the
// ordinal, as typed by admins into the reservation search box.
package frdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// day, month word (accents allowed), optional 4-digit year
var datePattern = regexp.MustCompile(`^(\d{1,2})\s+([a-zàâäéèêëïîôùûüç]+)(?:\s+(\d{4}))?$`)

// Full names, common abbreviations and unaccented variants all map to the
// same month.
var monthNames = map[string]time.Month{
	"janvier": time.January, "janv": time.January, "jan": time.January,
	"février": time.February, "fevrier": time.February, "fév": time.February, "fev": time.February,
	"mars": time.March, "mar": time.March,
	"avril": time.April, "avr": time.April,
	"mai":  time.May,
	"juin": time.June,
	"juillet": time.July, "juil": time.July,
	"août": time.August, "aout": time.August, "aoû": time.August,
	"septembre": time.September, "sept": time.September, "sep": time.September,
	"octobre": time.October, "oct": time.October,
	"novembre": time.November, "nov": time.November,
	"décembre": time.December, "decembre": time.December, "déc": time.December, "dec": time.December,
}

// Parse normalizes input to an ISO calendar date (YYYY-MM-DD). The year
// defaults to the current calendar year when omitted. ok is false when the
// input is not a recognizable, real calendar date.
func Parse(input string) (iso string, ok bool) {
	return parseAt(input, time.Now())
}

func parseAt(input string, now time.Time) (string, bool) {
	trimmed := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(input)), ".", "")
	m := datePattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", false
	}

	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return "", false
	}

	month, known := monthNames[m[2]]
	if !known {
		return "", false
	}

	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	// time.Date normalizes out-of-range days (e.g. 31 november becomes
	// 1 december); a changed day or month means the date was not real.
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Day() != day || d.Month() != month {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day), true
}
