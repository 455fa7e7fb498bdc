package owltime

import "github.com/c360studio/semstreams/vocabulary"

// Dotted predicate names for the OWL-Time properties read by the resolver.
const (
	FeatureHasTime = "time.feature.has_time"

	InstantDateTimeStamp = "time.instant.xsd_datetime_stamp"
	InstantDateTime      = "time.instant.xsd_datetime"
	InstantDate          = "time.instant.xsd_date"
	InstantGYear         = "time.instant.xsd_gyear"
	InstantGYearMonth    = "time.instant.xsd_gyear_month"
	InstantDescription   = "time.instant.description"
	InstantPosition      = "time.instant.position"

	PositionNumeric = "time.position.numeric"
	PositionNominal = "time.position.nominal"
	PositionTRS     = "time.position.trs"

	DescriptionYear        = "time.description.year"
	DescriptionMonth       = "time.description.month"
	DescriptionDay         = "time.description.day"
	DescriptionHour        = "time.description.hour"
	DescriptionMinute      = "time.description.minute"
	DescriptionSecond      = "time.description.second"
	DescriptionUnitType    = "time.description.unit_type"
	DescriptionMonthOfYear = "time.description.month_of_year"
	DescriptionDayOfWeek   = "time.description.day_of_week"
	DescriptionDayOfYear   = "time.description.day_of_year"

	IntervalBeginning   = "time.interval.beginning"
	IntervalEnd         = "time.interval.end"
	IntervalXSDDuration = "time.interval.xsd_duration"
	IntervalDescription = "time.interval.duration_description"
	IntervalDuration    = "time.interval.duration"

	DurationNumeric = "time.duration.numeric"
	DurationUnit    = "time.duration.unit"
	DurationYears   = "time.duration.years"
	DurationMonths  = "time.duration.months"
	DurationWeeks   = "time.duration.weeks"
	DurationDays    = "time.duration.days"
	DurationHours   = "time.duration.hours"
	DurationMinutes = "time.duration.minutes"
	DurationSeconds = "time.duration.seconds"

	RelationMeets      = "time.interval.meets"
	RelationMetBy      = "time.interval.met_by"
	RelationStarts     = "time.interval.starts"
	RelationStartedBy  = "time.interval.started_by"
	RelationFinishes   = "time.interval.finishes"
	RelationFinishedBy = "time.interval.finished_by"
	RelationEquals     = "time.interval.equals"
)

type registration struct {
	predicate   string
	iri         string
	dataType    string
	description string
}

var registrations = []registration{
	{FeatureHasTime, HasTime, "entity_id", "Links a feature to its temporal entity"},

	{InstantDateTimeStamp, InXSDDateTimeStamp, "time.Time", "Instant position as xsd:dateTimeStamp"},
	{InstantDateTime, InXSDDateTime, "time.Time", "Instant position as xsd:dateTime"},
	{InstantDate, InXSDDate, "string", "Instant position as xsd:date"},
	{InstantGYear, InXSDgYear, "string", "Instant position as xsd:gYear"},
	{InstantGYearMonth, InXSDgYearMonth, "string", "Instant position as xsd:gYearMonth"},
	{InstantDescription, InDateTime, "entity_id", "Instant position as a structured date-time description"},
	{InstantPosition, InTimePosition, "entity_id", "Instant position as a numeric or nominal time position"},

	{PositionNumeric, NumericPosition, "float64", "Numeric offset in a position reference system"},
	{PositionNominal, NominalPosition, "string", "Nominal position naming another temporal entity"},
	{PositionTRS, HasTRS, "entity_id", "Temporal reference system of a position or description"},

	{DescriptionYear, Year, "float64", "Year field of a date-time description"},
	{DescriptionMonth, Month, "float64", "Month field of a date-time description"},
	{DescriptionDay, Day, "float64", "Day field of a date-time description"},
	{DescriptionHour, Hour, "float64", "Hour field of a date-time description"},
	{DescriptionMinute, Minute, "float64", "Minute field of a date-time description"},
	{DescriptionSecond, Second, "float64", "Second field of a date-time description"},
	{DescriptionUnitType, UnitType, "entity_id", "Temporal unit of the description's precision"},
	{DescriptionMonthOfYear, MonthOfYear, "entity_id", "Named month of the description"},
	{DescriptionDayOfWeek, DayOfWeek, "entity_id", "Named day of the week of the description"},
	{DescriptionDayOfYear, DayOfYear, "int", "Ordinal day of the year of the description"},

	{IntervalBeginning, HasBeginning, "entity_id", "Beginning instant of an interval"},
	{IntervalEnd, HasEnd, "entity_id", "End instant of an interval"},
	{IntervalXSDDuration, HasXSDDuration, "string", "Interval extent as xsd:duration"},
	{IntervalDescription, HasDurationDescription, "entity_id", "Interval extent as a structured duration description"},
	{IntervalDuration, HasDuration, "entity_id", "Interval extent as a numeric value with a temporal unit"},

	{DurationNumeric, NumericDuration, "float64", "Numeric value of a duration"},
	{DurationUnit, UnitType, "entity_id", "Temporal unit of a duration"},
	{DurationYears, Years, "float64", "Years component of a duration description"},
	{DurationMonths, Months, "float64", "Months component of a duration description"},
	{DurationWeeks, Weeks, "float64", "Weeks component of a duration description"},
	{DurationDays, Days, "float64", "Days component of a duration description"},
	{DurationHours, Hours, "float64", "Hours component of a duration description"},
	{DurationMinutes, Minutes, "float64", "Minutes component of a duration description"},
	{DurationSeconds, Seconds, "float64", "Seconds component of a duration description"},

	{RelationMeets, IntervalMeets, "entity_id", "Interval ends where the other begins"},
	{RelationMetBy, IntervalMetBy, "entity_id", "Interval begins where the other ends"},
	{RelationStarts, IntervalStarts, "entity_id", "Interval shares its beginning with a longer interval"},
	{RelationStartedBy, IntervalStartedBy, "entity_id", "Interval shares its beginning with a shorter interval"},
	{RelationFinishes, IntervalFinishes, "entity_id", "Interval shares its end with a longer interval"},
	{RelationFinishedBy, IntervalFinishedBy, "entity_id", "Interval shares its end with a shorter interval"},
	{RelationEquals, IntervalEquals, "entity_id", "Interval has the same beginning and end as the other"},
}

// predicateByIRI maps OWL-Time IRIs back to their dotted predicate. unitType
// is shared by descriptions and durations; the description name wins.
var predicateByIRI = make(map[string]string, len(registrations))

func init() {
	for _, r := range registrations {
		vocabulary.Register(r.predicate,
			vocabulary.WithDescription(r.description),
			vocabulary.WithDataType(r.dataType),
			vocabulary.WithIRI(r.iri))
		if _, exists := predicateByIRI[r.iri]; !exists {
			predicateByIRI[r.iri] = r.predicate
		}
	}
}

// PredicateForIRI returns the dotted predicate registered for an OWL-Time IRI.
func PredicateForIRI(iri string) (string, bool) {
	p, ok := predicateByIRI[iri]
	return p, ok
}

// Describe returns the registered description of an OWL-Time IRI, or the
// IRI itself when the term is not registered.
func Describe(iri string) string {
	if p, ok := predicateByIRI[iri]; ok {
		if meta := vocabulary.GetPredicateMetadata(p); meta != nil && meta.Description != "" {
			return meta.Description
		}
	}
	return iri
}
