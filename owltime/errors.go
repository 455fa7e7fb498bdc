package owltime

import "errors"

// Hard failures. A resolver returns one of these, wrapped with context, when
// the ontology references something it cannot interpret. Data that is simply
// absent is reported as a nil result instead.
var (
	// ErrUnregisteredTRS is returned when a temporal reference system IRI is
	// not known to the registry.
	ErrUnregisteredTRS = errors.New("unregistered temporal reference system")

	// ErrNotPositionTRS is returned when a numeric position refers to a
	// calendar instead of a position reference system.
	ErrNotPositionTRS = errors.New("not a position reference system")

	// ErrNotCalendarTRS is returned when a calendar is required but the IRI
	// names a position reference system.
	ErrNotCalendarTRS = errors.New("not a calendar reference system")

	// ErrInvalidTRS is returned when a reference system definition is unusable.
	ErrInvalidTRS = errors.New("invalid temporal reference system")

	// ErrUnknownUnit is returned for temporal units missing from the registry.
	ErrUnknownUnit = errors.New("unknown temporal unit")

	// ErrInvalidCoordinate is returned when coordinate fields are out of range
	// for the calendar they are expressed in.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrIntervalRelationCycle is returned when boundary resolution revisits
	// an interval through Allen relations or nominal positions.
	ErrIntervalRelationCycle = errors.New("cyclic interval relation")

	// ErrNegativeExtent is returned when an interval ends before it begins or
	// a duration is negative.
	ErrNegativeExtent = errors.New("negative extent")

	// ErrNilEntity is returned when a nil temporal entity is declared.
	ErrNilEntity = errors.New("nil temporal entity")

	// ErrEmptyFeature is returned when a feature IRI is empty.
	ErrEmptyFeature = errors.New("empty feature IRI")

	// ErrInvalidLiteral is returned when a temporal literal cannot be parsed.
	ErrInvalidLiteral = errors.New("invalid temporal literal")
)
