package owltime

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// maxEpochDays bounds calendar arithmetic to roughly 270,000 years either
// side of a calendar's epoch.
const maxEpochDays = 100_000_000

// LeapYearRule reports whether a year gains a leap day.
type LeapYearRule func(year int) bool

// GregorianLeapYear is the proleptic Gregorian leap year rule.
func GregorianLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// JulianLeapYear adds a leap day every fourth year.
func JulianLeapYear(year int) bool {
	return year%4 == 0
}

// ParseLeapYearRule returns the rule named by name: gregorian, julian, or
// none (also the empty string).
func ParseLeapYearRule(name string) (LeapYearRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "gregorian":
		return GregorianLeapYear, nil
	case "julian":
		return JulianLeapYear, nil
	default:
		return nil, fmt.Errorf("leap year rule %q: %w", name, ErrInvalidTRS)
	}
}

// CalendarMetrics describes the unit structure of a calendar. The number of
// months is len(MonthDays). In leap years LeapMonth gains one day.
type CalendarMetrics struct {
	SecondsInMinute int
	MinutesInHour   int
	HoursInDay      int
	DaysInWeek      int
	MonthDays       []int
	LeapYearRule    LeapYearRule
	LeapMonth       int
}

// GregorianMetrics are the metrics of the Gregorian calendar.
var GregorianMetrics = CalendarMetrics{
	SecondsInMinute: 60,
	MinutesInHour:   60,
	HoursInDay:      24,
	DaysInWeek:      7,
	MonthDays:       []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	LeapYearRule:    GregorianLeapYear,
	LeapMonth:       2,
}

// MonthCount returns the number of months in a year.
func (m CalendarMetrics) MonthCount() int { return len(m.MonthDays) }

// SecondsInDay returns the length of a day in seconds.
func (m CalendarMetrics) SecondsInDay() int64 {
	return int64(m.SecondsInMinute) * int64(m.MinutesInHour) * int64(m.HoursInDay)
}

// IsLeap reports whether year is a leap year.
func (m CalendarMetrics) IsLeap(year int) bool {
	return m.LeapYearRule != nil && m.LeapYearRule(year)
}

// DaysInMonth returns the length of a 1-based month.
func (m CalendarMetrics) DaysInMonth(year, month int) int {
	days := m.MonthDays[month-1]
	if month == m.LeapMonth && m.IsLeap(year) {
		days++
	}
	return days
}

// DaysInYear returns the length of a year.
func (m CalendarMetrics) DaysInYear(year int) int {
	total := 0
	for _, d := range m.MonthDays {
		total += d
	}
	if m.IsLeap(year) && m.LeapMonth > 0 {
		total++
	}
	return total
}

// CumulativeDays returns, for each month, the number of days in the year
// before that month begins.
func (m CalendarMetrics) CumulativeDays(year int) []int {
	out := make([]int, len(m.MonthDays))
	sum := 0
	for i := range m.MonthDays {
		out[i] = sum
		sum += m.DaysInMonth(year, i+1)
	}
	return out
}

func (m CalendarMetrics) validate() error {
	if m.SecondsInMinute <= 0 || m.MinutesInHour <= 0 || m.HoursInDay <= 0 || m.DaysInWeek <= 0 {
		return fmt.Errorf("calendar metrics must be positive: %w", ErrInvalidTRS)
	}
	if len(m.MonthDays) == 0 {
		return fmt.Errorf("calendar has no months: %w", ErrInvalidTRS)
	}
	for i, d := range m.MonthDays {
		if d <= 0 {
			return fmt.Errorf("month %d has %d days: %w", i+1, d, ErrInvalidTRS)
		}
	}
	if m.LeapYearRule != nil && (m.LeapMonth < 1 || m.LeapMonth > len(m.MonthDays)) {
		return fmt.Errorf("leap month %d out of range: %w", m.LeapMonth, ErrInvalidTRS)
	}
	return nil
}

// Calendar is a calendar reference system. EpochYear begins, on its first
// day of its first month, at Epoch.
type Calendar struct {
	IRI       string
	Name      string
	Epoch     time.Time
	EpochYear int
	Metrics   CalendarMetrics

	// MonthNames and DayNames are optional individuals used for coordinate
	// metadata. EpochWeekday indexes DayNames for the epoch day.
	MonthNames   []string
	DayNames     []string
	EpochWeekday int
}

// Identifier returns the calendar IRI.
func (c *Calendar) Identifier() string { return c.IRI }

func (c *Calendar) validate() error {
	if c.IRI == "" {
		return fmt.Errorf("calendar without IRI: %w", ErrInvalidTRS)
	}
	if err := c.Metrics.validate(); err != nil {
		return fmt.Errorf("calendar %s: %w", c.IRI, err)
	}
	if len(c.MonthNames) > 0 && len(c.MonthNames) != c.Metrics.MonthCount() {
		return fmt.Errorf("calendar %s names %d of %d months: %w",
			c.IRI, len(c.MonthNames), c.Metrics.MonthCount(), ErrInvalidTRS)
	}
	if len(c.DayNames) > 0 && len(c.DayNames) != c.Metrics.DaysInWeek {
		return fmt.Errorf("calendar %s names %d of %d week days: %w",
			c.IRI, len(c.DayNames), c.Metrics.DaysInWeek, ErrInvalidTRS)
	}
	return nil
}

// epochSeconds returns the epoch as fractional Unix seconds.
func (c *Calendar) epochSeconds() float64 {
	return float64(c.Epoch.Unix()) + float64(c.Epoch.Nanosecond())/1e9
}

// FromUnix decomposes fractional Unix seconds into a coordinate of the
// calendar.
func (c *Calendar) FromUnix(seconds float64) (Coordinate, error) {
	m := c.Metrics
	offset := seconds - c.epochSeconds()
	dayLen := m.SecondsInDay()
	if math.IsNaN(offset) || math.Abs(offset) > float64(maxEpochDays)*float64(dayLen) {
		return Coordinate{}, fmt.Errorf("%v seconds out of range for %s: %w", seconds, c.IRI, ErrInvalidCoordinate)
	}
	whole := math.Floor(offset)
	frac := offset - whole

	total := int64(whole)
	days := floorDiv(total, dayLen)
	rem := total - days*dayLen

	perHour := int64(m.SecondsInMinute) * int64(m.MinutesInHour)
	hour := rem / perHour
	rem -= hour * perHour
	minute := rem / int64(m.SecondsInMinute)
	second := float64(rem-minute*int64(m.SecondsInMinute)) + frac

	year := c.EpochYear
	d := days
	for d >= int64(m.DaysInYear(year)) {
		d -= int64(m.DaysInYear(year))
		year++
	}
	for d < 0 {
		year--
		d += int64(m.DaysInYear(year))
	}
	dayOfYear := int(d) + 1

	month := 1
	for d >= int64(m.DaysInMonth(year, month)) {
		d -= int64(m.DaysInMonth(year, month))
		month++
	}

	coord := Coordinate{
		Year:   year,
		Month:  month,
		Day:    int(d) + 1,
		Hour:   int(hour),
		Minute: int(minute),
		Second: second,
		Metadata: CoordinateMetadata{
			TRS:       c.IRI,
			UnitType:  unitSecondIRI,
			DayOfYear: dayOfYear,
		},
	}
	if len(c.MonthNames) > 0 {
		coord.Metadata.MonthOfYear = c.MonthNames[month-1]
	}
	if n := int64(len(c.DayNames)); n > 0 {
		coord.Metadata.DayOfWeek = c.DayNames[floorMod(int64(c.EpochWeekday)+days, n)]
	}
	return coord, nil
}

// CheckCoordinate reports whether coord's fields lie within the calendar's
// month, day and time-of-day ranges.
func (c *Calendar) CheckCoordinate(coord Coordinate) error {
	m := c.Metrics
	switch {
	case coord.Month < 1 || coord.Month > m.MonthCount():
		return fmt.Errorf("month %d in %s: %w", coord.Month, c.IRI, ErrInvalidCoordinate)
	case coord.Day < 1 || coord.Day > m.DaysInMonth(coord.Year, coord.Month):
		return fmt.Errorf("day %d of month %d in %s: %w", coord.Day, coord.Month, c.IRI, ErrInvalidCoordinate)
	case coord.Hour < 0 || coord.Hour >= m.HoursInDay:
		return fmt.Errorf("hour %d in %s: %w", coord.Hour, c.IRI, ErrInvalidCoordinate)
	case coord.Minute < 0 || coord.Minute >= m.MinutesInHour:
		return fmt.Errorf("minute %d in %s: %w", coord.Minute, c.IRI, ErrInvalidCoordinate)
	case coord.Second < 0 || coord.Second >= float64(m.SecondsInMinute):
		return fmt.Errorf("second %v in %s: %w", coord.Second, c.IRI, ErrInvalidCoordinate)
	}
	return nil
}

// ToUnix returns the fractional Unix seconds of a coordinate expressed in
// the calendar.
func (c *Calendar) ToUnix(coord Coordinate) (float64, error) {
	if err := c.CheckCoordinate(coord); err != nil {
		return 0, err
	}

	m := c.Metrics
	var days int64
	if span := coord.Year - c.EpochYear; span > maxEpochDays/365 || span < -maxEpochDays/365 {
		return 0, fmt.Errorf("year %d in %s: %w", coord.Year, c.IRI, ErrInvalidCoordinate)
	}
	for y := c.EpochYear; y < coord.Year; y++ {
		days += int64(m.DaysInYear(y))
	}
	for y := coord.Year; y < c.EpochYear; y++ {
		days -= int64(m.DaysInYear(y))
	}
	days += int64(m.CumulativeDays(coord.Year)[coord.Month-1] + coord.Day - 1)

	secs := days*m.SecondsInDay() +
		int64(coord.Hour)*int64(m.MinutesInHour)*int64(m.SecondsInMinute) +
		int64(coord.Minute)*int64(m.SecondsInMinute)
	return c.epochSeconds() + float64(secs) + coord.Second, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
