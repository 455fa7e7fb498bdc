package owltime

import (
	"fmt"

	"github.com/c360studio/semowl/ontology"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

var durationFields = []string{
	vocab.Years, vocab.Months, vocab.Weeks, vocab.Days,
	vocab.Hours, vocab.Minutes, vocab.Seconds,
}

// intervalEncoding reads the first extent encoding present on an interval:
// an xsd:duration, a duration description, a unit duration, then explicit
// bounds.
func (r *Resolver) intervalEncoding(ont *ontology.Ontology, iri string) (IntervalEncoding, error) {
	if lit, ok := literalOf(ont, iri, vocab.HasXSDDuration); ok {
		return TimeSpanEncoding{Value: lit.Value}, nil
	}
	if node := objectOf(ont, iri, vocab.HasDurationDescription); node != "" {
		ext, err := readDurationDescription(ont, node)
		if err != nil {
			return nil, fmt.Errorf("interval %s: %w", iri, err)
		}
		return DurationDescriptionEncoding{Description: ext}, nil
	}
	if node := objectOf(ont, iri, vocab.HasDuration); node != "" {
		lit, hasValue := literalOf(ont, node, vocab.NumericDuration)
		unit := objectOf(ont, node, vocab.UnitType)
		if hasValue && unit == "" {
			return nil, fmt.Errorf("interval %s: duration %s has no unit type: %w", iri, node, ErrUnknownUnit)
		}
		if hasValue {
			v, err := parseNumber(lit)
			if err != nil {
				return nil, fmt.Errorf("interval %s: %w", iri, err)
			}
			return DurationEncoding{Value: v, Unit: unit}, nil
		}
	}

	begin := objectOf(ont, iri, vocab.HasBeginning)
	finish := objectOf(ont, iri, vocab.HasEnd)
	if begin == "" && finish == "" {
		return nil, nil
	}
	var bounds BoundsEncoding
	for _, b := range []struct {
		iri string
		dst **Instant
	}{{begin, &bounds.Beginning}, {finish, &bounds.End}} {
		if b.iri == "" {
			continue
		}
		enc, err := r.instantEncoding(ont, b.iri)
		if err != nil {
			return nil, fmt.Errorf("interval %s: %w", iri, err)
		}
		*b.dst = &Instant{IRI: b.iri, Encoding: enc}
	}
	return bounds, nil
}

func readDurationDescription(ont *ontology.Ontology, node string) (Extent, error) {
	ext := Extent{Metadata: ExtentMetadata{TRS: objectOf(ont, node, vocab.HasTRS)}}
	if ext.Metadata.TRS == "" {
		ext.Metadata.TRS = vocab.Gregorian
	}
	dst := []*float64{
		&ext.Years, &ext.Months, &ext.Weeks, &ext.Days,
		&ext.Hours, &ext.Minutes, &ext.Seconds,
	}
	for i, property := range durationFields {
		lit, ok := literalOf(ont, node, property)
		if !ok {
			continue
		}
		v, err := parseNumber(lit)
		if err != nil {
			return Extent{}, fmt.Errorf("duration description %s: %w", node, err)
		}
		*dst[i] = v
	}
	if ext.negative() {
		return Extent{}, fmt.Errorf("duration description %s: %w", node, ErrNegativeExtent)
	}
	return ext, nil
}

// ExtentOfInterval resolves the extent of an interval. Descriptions keep
// years, months and weeks in their own fields while seconds, minutes and
// hours carry up to days. Without an extent encoding the extent is computed
// from the interval's resolved beginning and end.
func (r *Resolver) ExtentOfInterval(ont *ontology.Ontology, interval string) (*Extent, error) {
	enc, err := r.intervalEncoding(ont, interval)
	if err != nil {
		return nil, err
	}

	switch e := enc.(type) {
	case TimeSpanEncoding:
		ext, err := ParseDuration(e.Value)
		if err != nil {
			return nil, fmt.Errorf("interval %s: %w", interval, err)
		}
		ext.Metadata.TRS = vocab.Gregorian
		ext = ext.Normalize(GregorianMetrics)
		return &ext, nil

	case DurationDescriptionEncoding:
		cal, err := r.registry.Calendar(e.Description.Metadata.TRS)
		if err != nil {
			return nil, fmt.Errorf("extent of %s: %w", interval, err)
		}
		ext := e.Description.Normalize(cal.Metrics)
		return &ext, nil

	case DurationEncoding:
		unit, err := r.registry.Unit(e.Unit)
		if err != nil {
			return nil, fmt.Errorf("extent of %s: %w", interval, err)
		}
		if e.Value < 0 {
			return nil, fmt.Errorf("extent of %s: %w", interval, ErrNegativeExtent)
		}
		ext := Extent{Metadata: ExtentMetadata{TRS: vocab.Gregorian, UnitType: e.Unit}}
		unit.add(&ext, e.Value)
		ext = ext.Normalize(GregorianMetrics)
		return &ext, nil

	default:
		return r.computedExtent(ont, interval)
	}
}

// computedExtent is the difference between an interval's beginning and end,
// in days and sub-day fields.
func (r *Resolver) computedExtent(ont *ontology.Ontology, interval string) (*Extent, error) {
	begin, err := r.BeginningOfInterval(ont, interval)
	if err != nil || begin == nil {
		return nil, err
	}
	finish, err := r.EndOfInterval(ont, interval)
	if err != nil || finish == nil {
		return nil, err
	}

	from, err := r.unixOf(*begin)
	if err != nil {
		return nil, fmt.Errorf("extent of %s: %w", interval, err)
	}
	to, err := r.unixOf(*finish)
	if err != nil {
		return nil, fmt.Errorf("extent of %s: %w", interval, err)
	}
	if to < from {
		return nil, fmt.Errorf("extent of %s: ends %s before it begins %s: %w",
			interval, finish, begin, ErrNegativeExtent)
	}

	ext := Extent{
		Seconds:  to - from,
		Metadata: ExtentMetadata{TRS: vocab.Gregorian, UnitType: vocab.UnitSecond},
	}
	ext = ext.Normalize(GregorianMetrics)
	return &ext, nil
}

func (r *Resolver) unixOf(c Coordinate) (float64, error) {
	trs := c.Metadata.TRS
	if trs == "" {
		trs = vocab.Gregorian
	}
	cal, err := r.registry.Calendar(trs)
	if err != nil {
		return 0, err
	}
	return cal.ToUnix(c)
}
