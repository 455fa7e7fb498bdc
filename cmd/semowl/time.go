package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/owltime"
	"github.com/c360studio/semowl/snapshot"
)

// errNotEncoded is returned when the ontology holds no usable value.
var errNotEncoded = errors.New("no temporal value encoded")

// timeQuery resolves one value for an IRI and prints it.
type timeQuery func(r *owltime.Resolver, ont *ontology.Ontology, iri, calendar string, w io.Writer) error

func timeCmd(g *globals) *cobra.Command {
	var calendar string

	cmd := &cobra.Command{
		Use:   "time",
		Short: "Resolve OWL-Time descriptions",
		Long: `Resolve instants and intervals of a snapshot against the temporal
reference systems of the configuration. Coordinates are printed as ISO 8601
date-times in the requested calendar (Gregorian by default).`,
	}
	cmd.PersistentFlags().StringVar(&calendar, "calendar", "", "Calendar IRI to express coordinates in")

	sub := func(use, short string, query timeQuery) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <snapshot> <iri>",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				resolver, err := newResolver(g)
				if err != nil {
					return err
				}
				ont, err := snapshot.LoadFile(args[0])
				if err != nil {
					return err
				}
				return query(resolver, ont, args[1], calendar, cmd.OutOrStdout())
			},
		}
	}

	cmd.AddCommand(
		sub("coordinate", "Print the calendar coordinate of an instant", queryCoordinate),
		sub("extent", "Print the extent of an interval", queryExtent),
		sub("beginning", "Print the coordinate at which an interval begins", queryBoundary(true)),
		sub("end", "Print the coordinate at which an interval ends", queryBoundary(false)),
		sub("feature", "Print the temporal entity of a feature", queryFeature),
	)
	return cmd
}

func newResolver(g *globals) (*owltime.Resolver, error) {
	reg := owltime.NewRegistry()
	if err := g.cfg.Temporal.Apply(reg); err != nil {
		return nil, fmt.Errorf("temporal config: %w", err)
	}
	return owltime.NewResolver(reg, owltime.WithLogger(g.logger)), nil
}

func queryCoordinate(r *owltime.Resolver, ont *ontology.Ontology, iri, calendar string, w io.Writer) error {
	c, err := r.CoordinateOfInstant(ont, iri, calendar)
	if err != nil {
		return err
	}
	return printCoordinate(w, iri, c)
}

func queryExtent(r *owltime.Resolver, ont *ontology.Ontology, iri, _ string, w io.Writer) error {
	e, err := r.ExtentOfInterval(ont, iri)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("%s: %w", iri, errNotEncoded)
	}
	_, err = fmt.Fprintln(w, e.String())
	return err
}

func queryBoundary(beginning bool) timeQuery {
	return func(r *owltime.Resolver, ont *ontology.Ontology, iri, calendar string, w io.Writer) error {
		var (
			c   *owltime.Coordinate
			err error
		)
		if beginning {
			c, err = r.BeginningOfInterval(ont, iri)
		} else {
			c, err = r.EndOfInterval(ont, iri)
		}
		if err != nil {
			return err
		}
		if c != nil && calendar != "" {
			if c, err = convertCoordinate(r, *c, calendar); err != nil {
				return err
			}
		}
		return printCoordinate(w, iri, c)
	}
}

// convertCoordinate re-expresses a boundary coordinate in calendar by
// declaring it as a scratch instant and resolving that.
func convertCoordinate(r *owltime.Resolver, c owltime.Coordinate, calendar string) (*owltime.Coordinate, error) {
	scratch := ontology.New("urn:semowl:scratch")
	instant := &owltime.Instant{
		IRI:      "urn:semowl:scratch:instant",
		Encoding: owltime.DescriptionEncoding{Description: c},
	}
	if _, err := owltime.DeclareInstantFeature(scratch, "urn:semowl:scratch:feature", instant); err != nil {
		return nil, err
	}
	return r.CoordinateOfInstant(scratch, instant.IRI, calendar)
}

func queryFeature(r *owltime.Resolver, ont *ontology.Ontology, iri, calendar string, w io.Writer) error {
	entity, err := r.TemporalFeature(ont, iri)
	if err != nil {
		return err
	}

	switch e := entity.(type) {
	case *owltime.Instant:
		fmt.Fprintf(w, "instant %s\n", e.IRI)
		return queryCoordinate(r, ont, e.IRI, calendar, w)
	case *owltime.Interval:
		fmt.Fprintf(w, "interval %s\n", e.IRI)
		for _, part := range []struct {
			label string
			query timeQuery
		}{
			{"beginning", queryBoundary(true)},
			{"end", queryBoundary(false)},
			{"extent", queryExtent},
		} {
			fmt.Fprintf(w, "  %s: ", part.label)
			if err := part.query(r, ont, e.IRI, calendar, w); errors.Is(err, errNotEncoded) {
				fmt.Fprintln(w, "unknown")
			} else if err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%s: %w", iri, errNotEncoded)
	}
}

func printCoordinate(w io.Writer, iri string, c *owltime.Coordinate) error {
	if c == nil {
		return fmt.Errorf("%s: %w", iri, errNotEncoded)
	}
	if c.Metadata.TRS != "" {
		_, err := fmt.Fprintf(w, "%s (%s)\n", c, c.Metadata.TRS)
		return err
	}
	_, err := fmt.Fprintln(w, c)
	return err
}
