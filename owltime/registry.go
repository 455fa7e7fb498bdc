package owltime

import (
	"fmt"
	"sort"
	"sync"
	"time"

	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

const unitSecondIRI = vocab.UnitSecond

// UnitType is the extent field a temporal unit counts in.
type UnitType int

const (
	UnitTypeSecond UnitType = iota + 1
	UnitTypeMinute
	UnitTypeHour
	UnitTypeDay
	UnitTypeWeek
	UnitTypeMonth
	UnitTypeYear
)

var unitTypeNames = map[UnitType]string{
	UnitTypeSecond: "second",
	UnitTypeMinute: "minute",
	UnitTypeHour:   "hour",
	UnitTypeDay:    "day",
	UnitTypeWeek:   "week",
	UnitTypeMonth:  "month",
	UnitTypeYear:   "year",
}

func (t UnitType) String() string {
	if name, ok := unitTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UnitType(%d)", int(t))
}

// ParseUnitType converts a unit type name such as "day" into a UnitType.
func ParseUnitType(name string) (UnitType, error) {
	for t, n := range unitTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unit type %q: %w", name, ErrUnknownUnit)
}

// Unit is a temporal unit. One unit is Factor units of Type; a zero Factor
// means 1.
type Unit struct {
	IRI    string
	Type   UnitType
	Factor float64
}

func (u Unit) factor() float64 {
	if u.Factor == 0 {
		return 1
	}
	return u.Factor
}

// Seconds returns the fixed length of the unit under m. Months and years
// have no fixed length.
func (u Unit) Seconds(m CalendarMetrics) (float64, bool) {
	var base float64
	switch u.Type {
	case UnitTypeSecond:
		base = 1
	case UnitTypeMinute:
		base = float64(m.SecondsInMinute)
	case UnitTypeHour:
		base = float64(m.SecondsInMinute * m.MinutesInHour)
	case UnitTypeDay:
		base = float64(m.SecondsInDay())
	case UnitTypeWeek:
		base = float64(m.SecondsInDay()) * float64(m.DaysInWeek)
	default:
		return 0, false
	}
	return base * u.factor(), true
}

// add places value units into the matching extent field.
func (u Unit) add(e *Extent, value float64) {
	v := value * u.factor()
	switch u.Type {
	case UnitTypeSecond:
		e.Seconds += v
	case UnitTypeMinute:
		e.Minutes += v
	case UnitTypeHour:
		e.Hours += v
	case UnitTypeDay:
		e.Days += v
	case UnitTypeWeek:
		e.Weeks += v
	case UnitTypeMonth:
		e.Months += v
	case UnitTypeYear:
		e.Years += v
	}
}

// PositionSystem is a reference system that counts units from an origin.
type PositionSystem struct {
	IRI    string
	Name   string
	Origin time.Time
	Unit   string
}

// Identifier returns the position system IRI.
func (p *PositionSystem) Identifier() string { return p.IRI }

// TRS is a temporal reference system: a *Calendar or a *PositionSystem.
type TRS interface {
	Identifier() string
}

// Registry holds the reference systems and units known to a resolver.
// Register custom systems during setup; lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	systems map[string]TRS
	units   map[string]Unit
}

// NewRegistry returns a registry seeded with the Gregorian calendar, Unix
// time, GPS time and the OWL-Time units from second to year.
func NewRegistry() *Registry {
	r := &Registry{
		systems: make(map[string]TRS),
		units:   make(map[string]Unit),
	}
	for _, u := range []Unit{
		{IRI: vocab.UnitSecond, Type: UnitTypeSecond},
		{IRI: vocab.UnitMinute, Type: UnitTypeMinute},
		{IRI: vocab.UnitHour, Type: UnitTypeHour},
		{IRI: vocab.UnitDay, Type: UnitTypeDay},
		{IRI: vocab.UnitWeek, Type: UnitTypeWeek},
		{IRI: vocab.UnitMonth, Type: UnitTypeMonth},
		{IRI: vocab.UnitYear, Type: UnitTypeYear},
	} {
		r.units[u.IRI] = u
	}

	r.systems[vocab.Gregorian] = &Calendar{
		IRI:          vocab.Gregorian,
		Name:         "Gregorian",
		Epoch:        time.Unix(0, 0).UTC(),
		EpochYear:    1970,
		Metrics:      GregorianMetrics,
		MonthNames:   vocab.GregorianMonths,
		DayNames:     vocab.DaysOfWeek,
		EpochWeekday: 3,
	}
	r.systems[vocab.UnixTime] = &PositionSystem{
		IRI:    vocab.UnixTime,
		Name:   "Unix time",
		Origin: time.Unix(0, 0).UTC(),
		Unit:   vocab.UnitSecond,
	}
	r.systems[vocab.GPSTime] = &PositionSystem{
		IRI:    vocab.GPSTime,
		Name:   "GPS time",
		Origin: time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC),
		Unit:   vocab.UnitSecond,
	}
	return r
}

// AddTRS registers or replaces a reference system.
func (r *Registry) AddTRS(trs TRS) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch s := trs.(type) {
	case *Calendar:
		if err := s.validate(); err != nil {
			return err
		}
	case *PositionSystem:
		if s.IRI == "" {
			return fmt.Errorf("position system without IRI: %w", ErrInvalidTRS)
		}
		u, ok := r.units[s.Unit]
		if !ok {
			return fmt.Errorf("position system %s unit %s: %w", s.IRI, s.Unit, ErrUnknownUnit)
		}
		if _, fixed := u.Seconds(GregorianMetrics); !fixed {
			return fmt.Errorf("position system %s counts in %s, which has no fixed length: %w",
				s.IRI, u.Type, ErrInvalidTRS)
		}
	default:
		return fmt.Errorf("reference system %T: %w", trs, ErrInvalidTRS)
	}
	r.systems[trs.Identifier()] = trs
	return nil
}

// AddUnit registers or replaces a temporal unit.
func (r *Registry) AddUnit(u Unit) error {
	if u.IRI == "" {
		return fmt.Errorf("unit without IRI: %w", ErrUnknownUnit)
	}
	if _, ok := unitTypeNames[u.Type]; !ok {
		return fmt.Errorf("unit %s: %w", u.IRI, ErrUnknownUnit)
	}
	if u.Factor < 0 {
		return fmt.Errorf("unit %s has negative factor: %w", u.IRI, ErrNegativeExtent)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[u.IRI] = u
	return nil
}

// Lookup returns the reference system registered under iri.
func (r *Registry) Lookup(iri string) (TRS, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	trs, ok := r.systems[iri]
	return trs, ok
}

// Calendar returns the calendar registered under iri.
func (r *Registry) Calendar(iri string) (*Calendar, error) {
	trs, ok := r.Lookup(iri)
	if !ok {
		return nil, fmt.Errorf("%s: %w", iri, ErrUnregisteredTRS)
	}
	cal, ok := trs.(*Calendar)
	if !ok {
		return nil, fmt.Errorf("%s: %w", iri, ErrNotCalendarTRS)
	}
	return cal, nil
}

// PositionSystem returns the position system registered under iri.
func (r *Registry) PositionSystem(iri string) (*PositionSystem, error) {
	trs, ok := r.Lookup(iri)
	if !ok {
		return nil, fmt.Errorf("%s: %w", iri, ErrUnregisteredTRS)
	}
	ps, ok := trs.(*PositionSystem)
	if !ok {
		return nil, fmt.Errorf("%s: %w", iri, ErrNotPositionTRS)
	}
	return ps, nil
}

// Unit returns the unit registered under iri.
func (r *Registry) Unit(iri string) (Unit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.units[iri]
	if !ok {
		return Unit{}, fmt.Errorf("%s: %w", iri, ErrUnknownUnit)
	}
	return u, nil
}

// Systems returns the registered reference system IRIs, sorted.
func (r *Registry) Systems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.systems))
	for iri := range r.systems {
		out = append(out, iri)
	}
	sort.Strings(out)
	return out
}

// Units returns the registered units sorted by IRI.
func (r *Registry) Units() []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Unit, 0, len(r.units))
	for _, u := range r.units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IRI < out[j].IRI })
	return out
}

// unixSeconds converts a numeric position to fractional Unix seconds.
func (r *Registry) unixSeconds(ps *PositionSystem, value float64) (float64, error) {
	u, err := r.Unit(ps.Unit)
	if err != nil {
		return 0, fmt.Errorf("position system %s: %w", ps.IRI, err)
	}
	secs, ok := u.Seconds(GregorianMetrics)
	if !ok {
		return 0, fmt.Errorf("position system %s: %w", ps.IRI, ErrInvalidTRS)
	}
	origin := float64(ps.Origin.Unix()) + float64(ps.Origin.Nanosecond())/1e9
	return origin + value*secs, nil
}
