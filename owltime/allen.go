package owltime

import (
	"fmt"

	"github.com/c360studio/semowl/ontology"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

type boundary int

const (
	beginning boundary = iota
	end
)

func (b boundary) String() string {
	if b == beginning {
		return "beginning"
	}
	return "end"
}

func (b boundary) property() string {
	if b == beginning {
		return vocab.HasBeginning
	}
	return vocab.HasEnd
}

// hop follows an Allen relation from the current interval to another
// interval whose boundary `to` coincides with the wanted one. inverse hops
// match intervals that point at the current interval.
type hop struct {
	predicate string
	inverse   bool
	to        boundary
}

var hops = map[boundary][]hop{
	beginning: {
		{vocab.IntervalStarts, false, beginning},
		{vocab.IntervalStartedBy, false, beginning},
		{vocab.IntervalEquals, false, beginning},
		{vocab.IntervalMetBy, false, end},
		{vocab.IntervalStarts, true, beginning},
		{vocab.IntervalStartedBy, true, beginning},
		{vocab.IntervalEquals, true, beginning},
		{vocab.IntervalMeets, true, end},
	},
	end: {
		{vocab.IntervalFinishes, false, end},
		{vocab.IntervalFinishedBy, false, end},
		{vocab.IntervalEquals, false, end},
		{vocab.IntervalMeets, false, beginning},
		{vocab.IntervalFinishes, true, end},
		{vocab.IntervalFinishedBy, true, end},
		{vocab.IntervalEquals, true, end},
		{vocab.IntervalMetBy, true, beginning},
	},
}

// BeginningOfInterval resolves the beginning instant of an interval. Without
// a time:hasBeginning the interval's Allen relations are followed: an
// interval that starts another shares its beginning, and one met by another
// begins where that one ends.
func (r *Resolver) BeginningOfInterval(ont *ontology.Ontology, interval string) (*Coordinate, error) {
	return r.boundary(ont, interval, beginning, make(walk))
}

// EndOfInterval resolves the end instant of an interval, following finishes
// and meets relations when no time:hasEnd is asserted.
func (r *Resolver) EndOfInterval(ont *ontology.Ontology, interval string) (*Coordinate, error) {
	return r.boundary(ont, interval, end, make(walk))
}

// target is one boundary of one interval.
type target struct {
	interval string
	side     boundary
}

// edge is an asserted Allen relation making two boundaries coincide.
type edge struct {
	to       target
	relation string
}

// boundary searches the boundaries that coincide with the wanted one through
// Allen relations, using an explicit stack and a visited set. Each asserted
// relation is followed once, in either direction. When nothing resolves and
// some relation led back to an already visited boundary the relations are
// cyclic and ErrIntervalRelationCycle is returned.
func (r *Resolver) boundary(ont *ontology.Ontology, interval string, side boundary, w walk) (*Coordinate, error) {
	if !w.enter(side.String(), interval) {
		return nil, fmt.Errorf("%s of %s revisits itself: %w", side, interval, ErrIntervalRelationCycle)
	}
	defer w.leave(side.String(), interval)

	start := target{interval, side}
	visited := map[target]bool{start: true}
	followed := make(map[string]bool)
	stack := []target{start}
	var cycle string

	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c, err := r.encodedBoundary(ont, t, w)
		if err != nil || c != nil {
			return c, err
		}

		var next []target
		for _, e := range edges(ont, t) {
			if followed[e.relation] {
				continue
			}
			followed[e.relation] = true
			if visited[e.to] {
				cycle = e.to.interval
				continue
			}
			visited[e.to] = true
			r.logger.Debug("Following interval relation",
				"from", t.interval, "to", e.to.interval, "boundary", e.to.side.String())
			next = append(next, e.to)
		}
		// Push in reverse so relations are tried in hop table order.
		for i := len(next) - 1; i >= 0; i-- {
			stack = append(stack, next[i])
		}
	}

	if cycle != "" {
		return nil, fmt.Errorf("%s of %s loops through %s: %w", side, interval, cycle, ErrIntervalRelationCycle)
	}
	r.logger.Debug("Interval boundary not encoded", "interval", interval, "boundary", side.String())
	return nil, nil
}

// encodedBoundary resolves a boundary asserted on the interval itself. An
// instant is its own beginning and end.
func (r *Resolver) encodedBoundary(ont *ontology.Ontology, t target, w walk) (*Coordinate, error) {
	if instant := objectOf(ont, t.interval, t.side.property()); instant != "" {
		return r.coordinate(ont, instant, w)
	}
	enc, err := r.instantEncoding(ont, t.interval)
	if err != nil || enc == nil {
		return nil, err
	}
	return r.coordinate(ont, t.interval, w)
}

// edges lists the Allen relations asserted on t's interval that make another
// boundary coincide with t, in hop table order.
func edges(ont *ontology.Ontology, t target) []edge {
	var out []edge
	for _, h := range hops[t.side] {
		if h.inverse {
			for _, m := range ont.Match("", h.predicate, t.interval) {
				out = append(out, edge{target{m.Subject, h.to}, relationKey(m.Subject, h.predicate, t.interval)})
			}
			continue
		}
		for _, m := range ont.Match(t.interval, h.predicate, "") {
			if !m.IsLiteral() {
				out = append(out, edge{target{m.Object, h.to}, relationKey(t.interval, h.predicate, m.Object)})
			}
		}
	}
	return out
}

func relationKey(subject, predicate, object string) string {
	return subject + " " + predicate + " " + object
}
