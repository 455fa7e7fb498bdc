// Package owltime resolves W3C OWL-Time descriptions stored in an ontology
// into calendar coordinates and extents.
//
// A Resolver reads instants and intervals through graph lookups on the
// ontology and interprets them against a Registry of temporal reference
// systems and units. Lookups distinguish two failure channels: a nil result
// with a nil error means the ontology does not encode the requested value in
// any recognized form, while a non-nil error means the data references
// something the registry cannot interpret.
package owltime

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strconv"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/vocabulary/owl"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Resolver interprets OWL-Time data in ontologies. It holds no per-ontology
// state and may be shared across goroutines once the registry is set up.
type Resolver struct {
	registry *Registry
	logger   *slog.Logger
}

// NewResolver creates a resolver over reg. A nil registry is replaced by
// NewRegistry().
func NewResolver(reg *Registry, opts ...Option) *Resolver {
	if reg == nil {
		reg = NewRegistry()
	}
	r := &Resolver{registry: reg, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns the registry the resolver reads.
func (r *Resolver) Registry() *Registry { return r.registry }

// walk holds the nodes on the current resolution path so that nominal
// positions and Allen relations cannot loop.
type walk map[string]bool

func (w walk) enter(kind, iri string) bool {
	key := kind + " " + iri
	if w[key] {
		return false
	}
	w[key] = true
	return true
}

func (w walk) leave(kind, iri string) {
	delete(w, kind+" "+iri)
}

// TemporalFeature returns the temporal entity linked to feature by
// time:hasTime or one of its sub-properties.
func (r *Resolver) TemporalFeature(ont *ontology.Ontology, feature string) (TemporalEntity, error) {
	if feature == "" {
		return nil, ErrEmptyFeature
	}
	for _, p := range subPropertiesOf(ont, vocab.HasTime) {
		if entity := objectOf(ont, feature, p); entity != "" {
			return r.temporalEntity(ont, entity)
		}
	}
	return nil, nil
}

func (r *Resolver) temporalEntity(ont *ontology.Ontology, iri string) (TemporalEntity, error) {
	enc, err := r.instantEncoding(ont, iri)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		return &Instant{IRI: iri, Encoding: enc}, nil
	}
	if !isInterval(ont, iri) {
		r.logger.Debug("Temporal entity has no recognized encoding", "entity", iri)
		return nil, nil
	}
	ienc, err := r.intervalEncoding(ont, iri)
	if err != nil {
		return nil, err
	}
	return &Interval{IRI: iri, Encoding: ienc}, nil
}

// instantEncoding reads the first encoding present on an instant, trying
// date-time literals, then descriptions, then positions.
func (r *Resolver) instantEncoding(ont *ontology.Ontology, iri string) (InstantEncoding, error) {
	for _, p := range dateTimeProperties {
		if lit, ok := literalOf(ont, iri, p); ok {
			t, err := parseDateTime(p, lit.Value)
			if err != nil {
				return nil, fmt.Errorf("instant %s: %w", iri, err)
			}
			return DateTimeEncoding{Value: t, Property: p}, nil
		}
	}
	if node := objectOf(ont, iri, vocab.InDateTime); node != "" {
		desc, err := r.readDescription(ont, node)
		if err != nil {
			return nil, fmt.Errorf("instant %s: %w", iri, err)
		}
		return DescriptionEncoding{Description: desc}, nil
	}
	if node := objectOf(ont, iri, vocab.InTimePosition); node != "" {
		pos, ok, err := readPosition(ont, node)
		if err != nil {
			return nil, fmt.Errorf("instant %s: %w", iri, err)
		}
		if ok {
			return PositionEncoding{Position: pos}, nil
		}
	}
	return nil, nil
}

// readDescription reads a date-time description. Missing fields default to
// the first month, the first day and midnight in the Gregorian calendar.
func (r *Resolver) readDescription(ont *ontology.Ontology, node string) (Coordinate, error) {
	c := Coordinate{
		Month: 1,
		Day:   1,
		Metadata: CoordinateMetadata{
			TRS:         objectOf(ont, node, vocab.HasTRS),
			UnitType:    objectOf(ont, node, vocab.UnitType),
			MonthOfYear: objectOf(ont, node, vocab.MonthOfYear),
			DayOfWeek:   objectOf(ont, node, vocab.DayOfWeek),
		},
	}
	if c.Metadata.TRS == "" {
		c.Metadata.TRS = vocab.Gregorian
	}

	fields := []struct {
		property string
		dst      *int
	}{
		{vocab.Year, &c.Year},
		{vocab.Month, &c.Month},
		{vocab.Day, &c.Day},
		{vocab.Hour, &c.Hour},
		{vocab.Minute, &c.Minute},
		{vocab.DayOfYear, &c.Metadata.DayOfYear},
	}
	monthSet := false
	for _, f := range fields {
		v, ok, err := integerOf(ont, node, f.property)
		if err != nil {
			return Coordinate{}, fmt.Errorf("description %s: %w", node, err)
		}
		if ok {
			*f.dst = v
			monthSet = monthSet || f.property == vocab.Month
		}
	}
	if lit, ok := literalOf(ont, node, vocab.Second); ok {
		s, err := parseNumber(lit)
		if err != nil {
			return Coordinate{}, fmt.Errorf("description %s: %w", node, err)
		}
		c.Second = s
	}

	if !monthSet && c.Metadata.MonthOfYear != "" {
		if m, ok := r.monthIndex(c.Metadata.TRS, c.Metadata.MonthOfYear); ok {
			c.Month = m
		}
	}
	return c, nil
}

// monthIndex returns the 1-based position of a named month in a calendar.
func (r *Resolver) monthIndex(trs, month string) (int, bool) {
	names := vocab.GregorianMonths
	if cal, err := r.registry.Calendar(trs); err == nil && len(cal.MonthNames) > 0 {
		names = cal.MonthNames
	}
	for i, name := range names {
		if name == month {
			return i + 1, true
		}
	}
	return 0, false
}

// readPosition reads a time position node. ok is false when the node has
// neither a numeric nor a nominal value.
func readPosition(ont *ontology.Ontology, node string) (Position, bool, error) {
	p := Position{TRS: objectOf(ont, node, vocab.HasTRS)}
	if lit, ok := literalOf(ont, node, vocab.NumericPosition); ok {
		v, err := parseNumber(lit)
		if err != nil {
			return Position{}, false, fmt.Errorf("position %s: %w", node, err)
		}
		p.Numeric = v
		return p, true, nil
	}
	if lit, ok := literalOf(ont, node, vocab.NominalPosition); ok && lit.Value != "" {
		p.Nominal = lit.Value
		return p, true, nil
	}
	if obj := objectOf(ont, node, vocab.NominalPosition); obj != "" {
		p.Nominal = obj
		return p, true, nil
	}
	return Position{}, false, nil
}

// CoordinateOfInstant resolves an instant to calendar fields. When calendar
// is non-empty the coordinate is re-expressed in that calendar, which must be
// registered as a calendar reference system.
func (r *Resolver) CoordinateOfInstant(ont *ontology.Ontology, instant, calendar string) (*Coordinate, error) {
	var target *Calendar
	if calendar != "" {
		cal, err := r.registry.Calendar(calendar)
		if err != nil {
			return nil, fmt.Errorf("coordinate of %s: %w", instant, err)
		}
		target = cal
	}

	c, err := r.coordinate(ont, instant, make(walk))
	if err != nil || c == nil {
		return nil, err
	}
	if target == nil {
		return c, nil
	}
	return r.convert(*c, target)
}

func (r *Resolver) coordinate(ont *ontology.Ontology, instant string, w walk) (*Coordinate, error) {
	if !w.enter("instant", instant) {
		return nil, fmt.Errorf("instant %s: %w", instant, ErrIntervalRelationCycle)
	}
	defer w.leave("instant", instant)
	enc, err := r.instantEncoding(ont, instant)
	if err != nil {
		return nil, err
	}

	switch e := enc.(type) {
	case DateTimeEncoding:
		c, err := r.fromUnix(unixSeconds(e), vocab.Gregorian)
		if err != nil {
			return nil, err
		}
		c.Metadata.UnitType = precisionOf(e.EffectiveProperty())
		return c, nil
	case DescriptionEncoding:
		c := e.Description
		cal, err := r.registry.Calendar(c.Metadata.TRS)
		if err != nil {
			return nil, fmt.Errorf("description of %s: %w", instant, err)
		}
		if err := cal.CheckCoordinate(c); err != nil {
			return nil, fmt.Errorf("description of %s: %w", instant, err)
		}
		return &c, nil
	case PositionEncoding:
		return r.positionCoordinate(ont, instant, e.Position, w)
	default:
		r.logger.Debug("Instant has no recognized encoding", "instant", instant)
		return nil, nil
	}
}

func (r *Resolver) positionCoordinate(ont *ontology.Ontology, instant string, p Position, w walk) (*Coordinate, error) {
	if p.IsNominal() {
		if enc, err := r.instantEncoding(ont, p.Nominal); err != nil {
			return nil, err
		} else if enc != nil {
			return r.coordinate(ont, p.Nominal, w)
		}
		return r.boundary(ont, p.Nominal, beginning, w)
	}

	if p.TRS == "" {
		return nil, fmt.Errorf("numeric position of %s has no reference system: %w", instant, ErrUnregisteredTRS)
	}
	ps, err := r.registry.PositionSystem(p.TRS)
	if err != nil {
		return nil, fmt.Errorf("numeric position of %s: %w", instant, err)
	}
	secs, err := r.registry.unixSeconds(ps, p.Numeric)
	if err != nil {
		return nil, err
	}
	return r.fromUnix(secs, vocab.Gregorian)
}

func (r *Resolver) fromUnix(secs float64, calendar string) (*Coordinate, error) {
	cal, err := r.registry.Calendar(calendar)
	if err != nil {
		return nil, err
	}
	c, err := cal.FromUnix(secs)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// convert re-expresses c in target. Only the reference system changes; no
// time zone is applied.
func (r *Resolver) convert(c Coordinate, target *Calendar) (*Coordinate, error) {
	source := c.Metadata.TRS
	if source == "" {
		source = vocab.Gregorian
	}
	if source == target.IRI {
		return &c, nil
	}
	cal, err := r.registry.Calendar(source)
	if err != nil {
		return nil, fmt.Errorf("convert from %s: %w", source, err)
	}
	secs, err := cal.ToUnix(c)
	if err != nil {
		return nil, err
	}
	out, err := target.FromUnix(secs)
	if err != nil {
		return nil, err
	}
	if c.Metadata.UnitType != "" {
		out.Metadata.UnitType = c.Metadata.UnitType
	}
	r.logger.Debug("Converted coordinate", "from", source, "to", target.IRI, "coordinate", out.String())
	return &out, nil
}

func unixSeconds(e DateTimeEncoding) float64 {
	return float64(e.Value.Unix()) + float64(e.Value.Nanosecond())/1e9
}

func precisionOf(property string) string {
	switch property {
	case vocab.InXSDDate:
		return vocab.UnitDay
	case vocab.InXSDgYearMonth:
		return vocab.UnitMonth
	case vocab.InXSDgYear:
		return vocab.UnitYear
	default:
		return vocab.UnitSecond
	}
}

func objectOf(ont *ontology.Ontology, subject, predicate string) string {
	for _, t := range ont.Match(subject, predicate, "") {
		if !t.IsLiteral() {
			return t.Object
		}
	}
	return ""
}

func literalOf(ont *ontology.Ontology, subject, predicate string) (ontology.Literal, bool) {
	for _, t := range ont.Match(subject, predicate, "") {
		if t.IsLiteral() {
			return *t.Value, true
		}
	}
	return ontology.Literal{}, false
}

func integerOf(ont *ontology.Ontology, subject, predicate string) (int, bool, error) {
	lit, ok := literalOf(ont, subject, predicate)
	if !ok {
		return 0, false, nil
	}
	f, err := parseNumber(lit)
	if err != nil {
		return 0, false, err
	}
	if f != math.Trunc(f) {
		return 0, false, fmt.Errorf("%s is not an integer: %w", lit, ErrInvalidLiteral)
	}
	return int(f), true, nil
}

func hasType(ont *ontology.Ontology, iri string, classes ...string) bool {
	for _, t := range ont.Match(iri, owl.RDFType, "") {
		for _, c := range classes {
			if t.Object == c {
				return true
			}
		}
	}
	return false
}

var intervalProperties = []string{
	vocab.HasBeginning, vocab.HasEnd,
	vocab.HasXSDDuration, vocab.HasDurationDescription, vocab.HasDuration,
	vocab.IntervalMeets, vocab.IntervalMetBy,
	vocab.IntervalStarts, vocab.IntervalStartedBy,
	vocab.IntervalFinishes, vocab.IntervalFinishedBy,
	vocab.IntervalEquals,
}

func isInterval(ont *ontology.Ontology, iri string) bool {
	if hasType(ont, iri, vocab.ClassInterval, vocab.ClassProperInterval, vocab.ClassDateTimeInterval) {
		return true
	}
	for _, p := range intervalProperties {
		if len(ont.Match(iri, p, "")) > 0 {
			return true
		}
	}
	return false
}

// subPropertiesOf returns property followed by its transitive
// rdfs:subPropertyOf descendants in sorted order.
func subPropertiesOf(ont *ontology.Ontology, property string) []string {
	seen := map[string]bool{property: true}
	queue := []string{property}
	var found []string
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, t := range ont.Match("", owl.RDFSSubPropertyOf, p) {
			if !seen[t.Subject] {
				seen[t.Subject] = true
				found = append(found, t.Subject)
				queue = append(queue, t.Subject)
			}
		}
	}
	sort.Strings(found)
	return append([]string{property}, found...)
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
