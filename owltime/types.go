package owltime

import (
	"fmt"
	"math"
	"strings"
	"time"

	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

// TemporalEntity is either an *Instant or an *Interval.
type TemporalEntity interface {
	temporalEntity()
}

// Instant is a temporal entity with zero extent. Exactly one encoding is set.
type Instant struct {
	IRI      string
	Encoding InstantEncoding
}

// Interval is a temporal entity with extent. Encoding is nil when the
// interval is only known through Allen relations.
type Interval struct {
	IRI      string
	Encoding IntervalEncoding
}

func (*Instant) temporalEntity()  {}
func (*Interval) temporalEntity() {}

// InstantEncoding is one of DateTimeEncoding, DescriptionEncoding or
// PositionEncoding.
type InstantEncoding interface {
	instantEncoding()
}

// DateTimeEncoding positions an instant with an XSD date-time literal.
// Property selects the OWL-Time property used; empty means
// time:inXSDDateTimeStamp.
type DateTimeEncoding struct {
	Value    time.Time
	Property string
}

// DescriptionEncoding positions an instant with a structured date-time
// description whose fields are already decomposed.
type DescriptionEncoding struct {
	Description Coordinate
}

// PositionEncoding positions an instant numerically or nominally in a TRS.
type PositionEncoding struct {
	Position Position
}

func (DateTimeEncoding) instantEncoding()    {}
func (DescriptionEncoding) instantEncoding() {}
func (PositionEncoding) instantEncoding()    {}

// EffectiveProperty returns the OWL-Time property the encoding is stored under.
func (e DateTimeEncoding) EffectiveProperty() string {
	if e.Property == "" {
		return vocab.InXSDDateTimeStamp
	}
	return e.Property
}

// IntervalEncoding is one of TimeSpanEncoding, DurationDescriptionEncoding,
// DurationEncoding or BoundsEncoding.
type IntervalEncoding interface {
	intervalEncoding()
}

// TimeSpanEncoding gives the extent as an xsd:duration lexical form.
type TimeSpanEncoding struct {
	Value string
}

// DurationDescriptionEncoding gives the extent as per-unit fields.
type DurationDescriptionEncoding struct {
	Description Extent
}

// DurationEncoding gives the extent as a value in a temporal unit.
type DurationEncoding struct {
	Value float64
	Unit  string
}

// BoundsEncoding gives the beginning and end instants. Either may be nil.
type BoundsEncoding struct {
	Beginning *Instant
	End       *Instant
}

func (TimeSpanEncoding) intervalEncoding()            {}
func (DurationDescriptionEncoding) intervalEncoding() {}
func (DurationEncoding) intervalEncoding()            {}
func (BoundsEncoding) intervalEncoding()              {}

// Position is a location in a temporal reference system. A non-empty
// Nominal names another temporal entity; otherwise Numeric is the offset
// from the system's origin.
type Position struct {
	TRS     string
	Numeric float64
	Nominal string
}

// IsNominal reports whether the position is nominal.
func (p Position) IsNominal() bool { return p.Nominal != "" }

// CoordinateMetadata describes where a coordinate comes from.
type CoordinateMetadata struct {
	TRS         string
	UnitType    string
	MonthOfYear string
	DayOfWeek   string
	DayOfYear   int
}

// Coordinate is an instant decomposed into calendar fields.
type Coordinate struct {
	Year     int
	Month    int
	Day      int
	Hour     int
	Minute   int
	Second   float64
	Metadata CoordinateMetadata
}

// String formats the coordinate as an ISO 8601 date-time without zone.
func (c Coordinate) String() string {
	year := formatYear(c.Year)
	whole := math.Floor(c.Second)
	sec := fmt.Sprintf("%02d", int(whole))
	if frac := c.Second - whole; frac > 0 {
		sec += strings.TrimRight(strings.TrimPrefix(fmt.Sprintf("%.9f", frac), "0"), "0")
	}
	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%s", year, c.Month, c.Day, c.Hour, c.Minute, sec)
}

// Time converts a Gregorian coordinate to a UTC time.
func (c Coordinate) Time() time.Time {
	whole := math.Floor(c.Second)
	nanos := int((c.Second - whole) * 1e9)
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, int(whole), nanos, time.UTC)
}

// ExtentMetadata describes the system an extent is measured in.
type ExtentMetadata struct {
	TRS      string
	UnitType string
}

// Extent is the length of an interval. Years, months and weeks are kept in
// their own fields; sub-day fields carry into days.
type Extent struct {
	Years    float64
	Months   float64
	Weeks    float64
	Days     float64
	Hours    float64
	Minutes  float64
	Seconds  float64
	Metadata ExtentMetadata
}

// IsZero reports whether every field is zero.
func (e Extent) IsZero() bool {
	return e.Years == 0 && e.Months == 0 && e.Weeks == 0 && e.Days == 0 &&
		e.Hours == 0 && e.Minutes == 0 && e.Seconds == 0
}

func (e Extent) negative() bool {
	return e.Years < 0 || e.Months < 0 || e.Weeks < 0 || e.Days < 0 ||
		e.Hours < 0 || e.Minutes < 0 || e.Seconds < 0
}

// String formats the extent as an xsd:duration.
func (e Extent) String() string {
	var b strings.Builder
	b.WriteString("P")
	write := func(v float64, unit string) {
		if v != 0 {
			b.WriteString(formatNumber(v))
			b.WriteString(unit)
		}
	}
	write(e.Years, "Y")
	write(e.Months, "M")
	write(e.Weeks, "W")
	write(e.Days, "D")
	if e.Hours != 0 || e.Minutes != 0 || e.Seconds != 0 {
		b.WriteString("T")
		write(e.Hours, "H")
		write(e.Minutes, "M")
		write(e.Seconds, "S")
	}
	if b.Len() == 1 {
		return "PT0S"
	}
	return b.String()
}

// Normalize carries seconds into minutes, minutes into hours and hours into
// days using the given metrics. Years, months and weeks are left alone.
func (e Extent) Normalize(m CalendarMetrics) Extent {
	carry := func(lower *float64, upper *float64, size int) {
		if size <= 0 || *lower < float64(size) {
			return
		}
		n := math.Floor(*lower / float64(size))
		*upper += n
		*lower -= n * float64(size)
	}
	carry(&e.Seconds, &e.Minutes, m.SecondsInMinute)
	carry(&e.Minutes, &e.Hours, m.MinutesInHour)
	carry(&e.Hours, &e.Days, m.HoursInDay)
	return e
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.TrimRight(fmt.Sprintf("%f", v), "0")
}
