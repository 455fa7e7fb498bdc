// Package owltime provides IRI constants for the W3C OWL-Time ontology and
// registers its temporal predicates with the semstreams vocabulary registry.
//
// Each term used by the temporal resolver is registered under a dotted
// predicate name (time.position.numeric, time.interval.meets, ...) whose
// metadata carries the OWL-Time IRI and a description.
package owltime

// Namespace is the OWL-Time namespace.
const Namespace = "http://www.w3.org/2006/time#"

// GregorianNamespace holds the Gregorian month individuals.
const GregorianNamespace = "http://www.w3.org/ns/time/gregorian#"

// Class IRIs.
const (
	ClassTemporalEntity             = Namespace + "TemporalEntity"
	ClassInstant                    = Namespace + "Instant"
	ClassInterval                   = Namespace + "Interval"
	ClassProperInterval             = Namespace + "ProperInterval"
	ClassDateTimeInterval           = Namespace + "DateTimeInterval"
	ClassGeneralDateTimeDescription = Namespace + "GeneralDateTimeDescription"
	ClassDateTimeDescription        = Namespace + "DateTimeDescription"
	ClassTimePosition               = Namespace + "TimePosition"
	ClassTemporalDuration           = Namespace + "TemporalDuration"
	ClassDuration                   = Namespace + "Duration"
	ClassGeneralDurationDescription = Namespace + "GeneralDurationDescription"
	ClassDurationDescription        = Namespace + "DurationDescription"
	ClassTRS                        = Namespace + "TRS"
	ClassTemporalUnit               = Namespace + "TemporalUnit"
	ClassMonthOfYear                = Namespace + "MonthOfYear"
	ClassDayOfWeek                  = Namespace + "DayOfWeek"
)

// Feature and boundary properties.
const (
	HasTime      = Namespace + "hasTime"
	HasBeginning = Namespace + "hasBeginning"
	HasEnd       = Namespace + "hasEnd"
)

// Instant encodings.
const (
	InXSDDateTimeStamp = Namespace + "inXSDDateTimeStamp"
	InXSDDateTime      = Namespace + "inXSDDateTime"
	InXSDDate          = Namespace + "inXSDDate"
	InXSDgYear         = Namespace + "inXSDgYear"
	InXSDgYearMonth    = Namespace + "inXSDgYearMonth"
	InDateTime         = Namespace + "inDateTime"
	InTimePosition     = Namespace + "inTimePosition"
	NumericPosition    = Namespace + "numericPosition"
	NominalPosition    = Namespace + "nominalPosition"
)

// Date-time description fields.
const (
	HasTRS                 = Namespace + "hasTRS"
	UnitType               = Namespace + "unitType"
	Year                   = Namespace + "year"
	Month                  = Namespace + "month"
	Day                    = Namespace + "day"
	Hour                   = Namespace + "hour"
	Minute                 = Namespace + "minute"
	Second                 = Namespace + "second"
	MonthOfYear            = Namespace + "monthOfYear"
	DayOfWeek              = Namespace + "dayOfWeek"
	DayOfYear              = Namespace + "dayOfYear"
	TimeZone               = Namespace + "timeZone"
	HasDateTimeDescription = Namespace + "hasDateTimeDescription"
)

// Interval extent encodings.
const (
	HasDuration            = Namespace + "hasDuration"
	HasTemporalDuration    = Namespace + "hasTemporalDuration"
	HasXSDDuration         = Namespace + "hasXSDDuration"
	HasDurationDescription = Namespace + "hasDurationDescription"
	NumericDuration        = Namespace + "numericDuration"
	Years                  = Namespace + "years"
	Months                 = Namespace + "months"
	Weeks                  = Namespace + "weeks"
	Days                   = Namespace + "days"
	Hours                  = Namespace + "hours"
	Minutes                = Namespace + "minutes"
	Seconds                = Namespace + "seconds"
)

// Allen interval relations.
const (
	IntervalBefore       = Namespace + "intervalBefore"
	IntervalAfter        = Namespace + "intervalAfter"
	IntervalMeets        = Namespace + "intervalMeets"
	IntervalMetBy        = Namespace + "intervalMetBy"
	IntervalOverlaps     = Namespace + "intervalOverlaps"
	IntervalOverlappedBy = Namespace + "intervalOverlappedBy"
	IntervalStarts       = Namespace + "intervalStarts"
	IntervalStartedBy    = Namespace + "intervalStartedBy"
	IntervalDuring       = Namespace + "intervalDuring"
	IntervalContains     = Namespace + "intervalContains"
	IntervalFinishes     = Namespace + "intervalFinishes"
	IntervalFinishedBy   = Namespace + "intervalFinishedBy"
	IntervalEquals       = Namespace + "intervalEquals"
)

// Temporal units.
const (
	UnitSecond = Namespace + "unitSecond"
	UnitMinute = Namespace + "unitMinute"
	UnitHour   = Namespace + "unitHour"
	UnitDay    = Namespace + "unitDay"
	UnitWeek   = Namespace + "unitWeek"
	UnitMonth  = Namespace + "unitMonth"
	UnitYear   = Namespace + "unitYear"
)

// Days of the week.
const (
	Monday    = Namespace + "Monday"
	Tuesday   = Namespace + "Tuesday"
	Wednesday = Namespace + "Wednesday"
	Thursday  = Namespace + "Thursday"
	Friday    = Namespace + "Friday"
	Saturday  = Namespace + "Saturday"
	Sunday    = Namespace + "Sunday"
)

// Months of the Gregorian year.
const (
	January   = GregorianNamespace + "January"
	February  = GregorianNamespace + "February"
	March     = GregorianNamespace + "March"
	April     = GregorianNamespace + "April"
	May       = GregorianNamespace + "May"
	June      = GregorianNamespace + "June"
	July      = GregorianNamespace + "July"
	August    = GregorianNamespace + "August"
	September = GregorianNamespace + "September"
	October   = GregorianNamespace + "October"
	November  = GregorianNamespace + "November"
	December  = GregorianNamespace + "December"
)

// Well-known temporal reference systems.
const (
	// Gregorian is the OGC IRI of the ISO 8601 Gregorian calendar.
	Gregorian = "http://www.opengis.net/def/uom/ISO-8601/0/Gregorian"

	// UnixTime is the Unix epoch position system (seconds since 1970-01-01T00:00:00Z).
	UnixTime = "http://dbpedia.org/resource/Unix_time"

	// GPSTime counts seconds since 1980-01-06T00:00:00Z without leap seconds.
	GPSTime = "https://semowl.dev/ontology/trs/GPSTime"
)

// GregorianMonths lists the month individuals in calendar order.
var GregorianMonths = []string{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// DaysOfWeek lists the day individuals starting with Monday.
var DaysOfWeek = []string{
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday,
}
