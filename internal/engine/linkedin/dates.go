package linkedin

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

const presentLabel = "Present"

var monthAbbr = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

var (
	rangeRe = regexp.MustCompile(`(?i)(?:\b([a-z]{3,9})\.?\s+)?\b(\d{4})\s*(?:-|–|—|\bto\b)\s*(?:(?:\b([a-z]{3,9})\.?\s+)?(\d{4})\b|\b(present|current|now)\b)`)
	monthYearRe = regexp.MustCompile(`(?i)\b([a-z]{3,9})\.?\s+(\d{4})\b`)
	yrsRe       = regexp.MustCompile(`(?i)(\d+)\s*(?:yrs?|years?)\b`)
	mosRe       = regexp.MustCompile(`(?i)(\d+)\s*(?:mos?|months?)\b`)
)

// DateRange is the parsed form of a LinkedIn date line such as
// "Jan 2020 - Present · 4 yrs 2 mos".
type DateRange struct {
	Start      string // "Jan 2020", "2018", or ""
	End        string // "Mar 2023", "Present", or ""
	StartYear  int
	StartMonth int // 0 when unknown
	EndYear    int
	EndMonth   int
	IsCurrent  bool
	Months     int // total tenure, 0 when unknown
}

// TenureYears is the whole-year part of the tenure.
func (d DateRange) TenureYears() int { return d.Months / 12 }

// TenureRemMonths is the tenure left over after whole years.
func (d DateRange) TenureRemMonths() int { return d.Months % 12 }

// monthNumber maps a month word ("Sep", "September", "Sept") to 1-12, or 0.
func monthNumber(word string) int {
	w := strings.ToLower(word)
	if len(w) < 3 {
		return 0
	}
	for i := 1; i <= 12; i++ {
		full := strings.ToLower(time.Month(i).String())
		if strings.HasPrefix(full, w) {
			return i
		}
	}
	return 0
}

func formatMonthYear(month, year int) string {
	switch {
	case year == 0:
		return ""
	case month == 0:
		return strconv.Itoa(year)
	default:
		return fmt.Sprintf("%s %d", monthAbbr[month], year)
	}
}

// tenureMonths counts months between start and end inclusive; the end
// defaults to now when current. Year-only ranges count whole years.
func tenureMonths(sy, sm, ey, em int, current bool, now time.Time) int {
	if sy == 0 {
		return 0
	}
	if ey == 0 {
		if !current {
			return 0
		}
		ey, em = now.Year(), int(now.Month())
		if sm == 0 {
			sm = 1
		}
	}
	if sm == 0 && em == 0 {
		if ey < sy {
			return 0
		}
		return (ey - sy) * 12
	}
	if sm == 0 {
		sm = 1
	}
	if em == 0 {
		em = 12
	}
	n := (ey-sy)*12 + (em - sm) + 1
	if n < 0 {
		return 0
	}
	return n
}

// ParseDateRange parses "Month Year - Month Year", "Month Year - Present",
// "Year - Year", a lone "Month Year" (start only), or a bare "N yrs M mos" tenure.
// now resolves open-ended ranges.
func ParseDateRange(raw string, now time.Time) DateRange {
	s := engine.NormalizeSpace(raw)
	var d DateRange
	if s == "" {
		return d
	}
	d.IsCurrent = presentRe.MatchString(s)

	if m := rangeRe.FindStringSubmatch(s); m != nil {
		d.StartMonth = monthNumber(m[1])
		d.StartYear, _ = strconv.Atoi(m[2])
		if m[4] != "" {
			d.EndMonth = monthNumber(m[3])
			d.EndYear, _ = strconv.Atoi(m[4])
		}
	} else {
		for _, m := range monthYearRe.FindAllStringSubmatch(s, -1) {
			if mon := monthNumber(m[1]); mon > 0 {
				d.StartMonth = mon
				d.StartYear, _ = strconv.Atoi(m[2])
				break
			}
		}
	}

	d.Start = formatMonthYear(d.StartMonth, d.StartYear)
	switch {
	case d.EndYear > 0:
		d.End = formatMonthYear(d.EndMonth, d.EndYear)
	case d.IsCurrent:
		d.End = presentLabel
	}

	d.Months = tenureMonths(d.StartYear, d.StartMonth, d.EndYear, d.EndMonth, d.IsCurrent, now)
	if d.Months == 0 {
		d.Months = durationMonths(s)
	}
	return d
}

// durationMonths parses "2 yrs 3 mos" style tenure text.
func durationMonths(s string) int {
	total := 0
	if m := yrsRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		total += y * 12
	}
	if m := mosRe.FindStringSubmatch(s); m != nil {
		mo, _ := strconv.Atoi(m[1])
		total += mo
	}
	return total
}

// lastYear returns the last four-digit year in s, or "".
func lastYear(s string) string {
	ys := yearRe.FindAllString(s, -1)
	if len(ys) == 0 {
		return ""
	}
	return ys[len(ys)-1]
}
