package owltime

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/vocabulary/owl"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

// declarer accumulates the axioms describing one temporal entity.
type declarer struct {
	axioms []ontology.Axiom
}

func mintIRI() string {
	return "urn:uuid:" + uuid.NewString()
}

func (d *declarer) individual(iri string, class string) {
	d.axioms = append(d.axioms,
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindNamedIndividual, IRI: iri}})
	if class != "" {
		d.axioms = append(d.axioms,
			ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindClass, IRI: class}},
			ontology.ClassAssertion{Class: ontology.Class{IRI: class}, Individual: iri})
	}
}

func (d *declarer) link(subject, property, object string) {
	if object == "" {
		return
	}
	d.axioms = append(d.axioms,
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindObjectProperty, IRI: property}},
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindNamedIndividual, IRI: object}},
		ontology.ObjectPropertyAssertion{Property: ontology.ObjectProp(property), Subject: subject, Object: object})
}

func (d *declarer) value(subject, property string, lit ontology.Literal) {
	d.axioms = append(d.axioms,
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindDataProperty, IRI: property}},
		ontology.DataPropertyAssertion{Property: property, Subject: subject, Value: lit})
}

// DeclareInstantFeature adds the axioms linking feature to instant with
// time:hasTime and encoding the instant. An instant without an IRI gets a
// minted urn:uuid IRI, which is returned.
func DeclareInstantFeature(ont *ontology.Ontology, feature string, instant *Instant) (string, error) {
	if feature == "" {
		return "", ErrEmptyFeature
	}
	d := &declarer{}
	iri, err := d.instant(instant)
	if err != nil {
		return "", fmt.Errorf("declare feature %s: %w", feature, err)
	}
	d.individual(feature, "")
	d.link(feature, vocab.HasTime, iri)
	if err := ont.Add(d.axioms...); err != nil {
		return "", fmt.Errorf("declare feature %s: %w", feature, err)
	}
	return iri, nil
}

// DeclareIntervalFeature adds the axioms linking feature to interval with
// time:hasTime and encoding the interval and any bounding instants.
func DeclareIntervalFeature(ont *ontology.Ontology, feature string, interval *Interval) (string, error) {
	if feature == "" {
		return "", ErrEmptyFeature
	}
	d := &declarer{}
	iri, err := d.interval(interval)
	if err != nil {
		return "", fmt.Errorf("declare feature %s: %w", feature, err)
	}
	d.individual(feature, "")
	d.link(feature, vocab.HasTime, iri)
	if err := ont.Add(d.axioms...); err != nil {
		return "", fmt.Errorf("declare feature %s: %w", feature, err)
	}
	return iri, nil
}

// DeclareFeature dispatches on the kind of entity.
func DeclareFeature(ont *ontology.Ontology, feature string, entity TemporalEntity) (string, error) {
	switch e := entity.(type) {
	case *Instant:
		return DeclareInstantFeature(ont, feature, e)
	case *Interval:
		return DeclareIntervalFeature(ont, feature, e)
	default:
		return "", ErrNilEntity
	}
}

func (d *declarer) instant(instant *Instant) (string, error) {
	if instant == nil || instant.Encoding == nil {
		return "", ErrNilEntity
	}
	iri := instant.IRI
	if iri == "" {
		iri = mintIRI()
	}
	d.individual(iri, vocab.ClassInstant)

	switch e := instant.Encoding.(type) {
	case DateTimeEncoding:
		property := e.EffectiveProperty()
		if _, ok := dateTimeDatatypes[property]; !ok {
			return "", fmt.Errorf("date-time property %s: %w", property, ErrInvalidLiteral)
		}
		d.value(iri, property, formatDateTime(property, e.Value))

	case DescriptionEncoding:
		node := mintIRI()
		c := e.Description
		d.individual(node, vocab.ClassGeneralDateTimeDescription)
		d.link(iri, vocab.InDateTime, node)
		d.link(node, vocab.HasTRS, c.Metadata.TRS)
		d.link(node, vocab.UnitType, c.Metadata.UnitType)
		d.link(node, vocab.MonthOfYear, c.Metadata.MonthOfYear)
		d.link(node, vocab.DayOfWeek, c.Metadata.DayOfWeek)
		d.value(node, vocab.Year, ontology.NewLiteral(formatYear(c.Year), owl.XSDGYear))
		d.value(node, vocab.Month, ontology.NewLiteral(fmt.Sprintf("--%02d", c.Month), owl.XSDGMonth))
		d.value(node, vocab.Day, ontology.NewLiteral(fmt.Sprintf("---%02d", c.Day), owl.XSDGDay))
		d.value(node, vocab.Hour, ontology.NewLiteral(fmt.Sprint(c.Hour), owl.XSDNonNegativeInteger))
		d.value(node, vocab.Minute, ontology.NewLiteral(fmt.Sprint(c.Minute), owl.XSDNonNegativeInteger))
		d.value(node, vocab.Second, ontology.NewLiteral(formatDecimal(c.Second), owl.XSDDecimal))
		if c.Metadata.DayOfYear > 0 {
			d.value(node, vocab.DayOfYear, ontology.NewLiteral(fmt.Sprint(c.Metadata.DayOfYear), owl.XSDNonNegativeInteger))
		}

	case PositionEncoding:
		node := mintIRI()
		p := e.Position
		d.individual(node, vocab.ClassTimePosition)
		d.link(iri, vocab.InTimePosition, node)
		d.link(node, vocab.HasTRS, p.TRS)
		if p.IsNominal() {
			d.value(node, vocab.NominalPosition, ontology.NewLiteral(p.Nominal, owl.XSDString))
		} else {
			d.value(node, vocab.NumericPosition, ontology.NewLiteral(formatDecimal(p.Numeric), owl.XSDDecimal))
		}

	default:
		return "", fmt.Errorf("instant encoding %T: %w", e, ErrNilEntity)
	}
	return iri, nil
}

func (d *declarer) interval(interval *Interval) (string, error) {
	if interval == nil {
		return "", ErrNilEntity
	}
	iri := interval.IRI
	if iri == "" {
		iri = mintIRI()
	}
	d.individual(iri, vocab.ClassInterval)

	switch e := interval.Encoding.(type) {
	case nil:
		// Known only through Allen relations.

	case TimeSpanEncoding:
		if _, err := ParseDuration(e.Value); err != nil {
			return "", err
		}
		d.value(iri, vocab.HasXSDDuration, ontology.NewLiteral(e.Value, owl.XSDDuration))

	case DurationDescriptionEncoding:
		ext := e.Description
		if ext.negative() {
			return "", ErrNegativeExtent
		}
		node := mintIRI()
		d.individual(node, vocab.ClassGeneralDurationDescription)
		d.link(iri, vocab.HasDurationDescription, node)
		d.link(node, vocab.HasTRS, ext.Metadata.TRS)
		values := []float64{ext.Years, ext.Months, ext.Weeks, ext.Days, ext.Hours, ext.Minutes, ext.Seconds}
		for i, v := range values {
			if v != 0 {
				d.value(node, durationFields[i], ontology.NewLiteral(formatDecimal(v), owl.XSDDecimal))
			}
		}
		if ext.IsZero() {
			d.value(node, vocab.Seconds, ontology.NewLiteral("0", owl.XSDDecimal))
		}

	case DurationEncoding:
		if e.Value < 0 {
			return "", ErrNegativeExtent
		}
		if e.Unit == "" {
			return "", ErrUnknownUnit
		}
		node := mintIRI()
		d.individual(node, vocab.ClassDuration)
		d.link(iri, vocab.HasDuration, node)
		d.link(node, vocab.UnitType, e.Unit)
		d.value(node, vocab.NumericDuration, ontology.NewLiteral(formatDecimal(e.Value), owl.XSDDecimal))

	case BoundsEncoding:
		for _, b := range []struct {
			instant  *Instant
			property string
		}{{e.Beginning, vocab.HasBeginning}, {e.End, vocab.HasEnd}} {
			if b.instant == nil {
				continue
			}
			inst, err := d.instant(b.instant)
			if err != nil {
				return "", err
			}
			d.link(iri, b.property, inst)
		}
	}
	return iri, nil
}

func formatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}
