package owltime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/owltime"
	"github.com/c360studio/semowl/validator"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

func TestDeclareInstantFeature_RoundTrip(t *testing.T) {
	want := time.Date(2023, time.March, 22, 10, 35, 34, 0, time.UTC)
	ont := ontology.New(ex)

	iri, err := owltime.DeclareInstantFeature(ont, ex+"launch", &owltime.Instant{
		Encoding: owltime.DateTimeEncoding{Value: want},
	})
	require.NoError(t, err)
	assert.Regexp(t, `^urn:uuid:`, iri)

	entity, err := newResolver().TemporalFeature(ont, ex+"launch")
	require.NoError(t, err)
	instant, ok := entity.(*owltime.Instant)
	require.True(t, ok, "got %T", entity)
	assert.Equal(t, iri, instant.IRI)

	enc, ok := instant.Encoding.(owltime.DateTimeEncoding)
	require.True(t, ok, "got %T", instant.Encoding)
	assert.True(t, want.Equal(enc.Value), "got %s", enc.Value)
	assert.Equal(t, vocab.InXSDDateTimeStamp, enc.Property)
}

func TestDeclareInstantFeature_Encodings(t *testing.T) {
	tests := []struct {
		name     string
		encoding owltime.InstantEncoding
		want     string
	}{
		{
			name:     "date",
			encoding: owltime.DateTimeEncoding{Value: time.Date(1939, 9, 1, 0, 0, 0, 0, time.UTC), Property: vocab.InXSDDate},
			want:     "1939-09-01T00:00:00",
		},
		{
			name: "description",
			encoding: owltime.DescriptionEncoding{Description: owltime.Coordinate{
				Year: 1939, Month: 9, Day: 1, Hour: 8, Minute: 1, Second: 1,
				Metadata: owltime.CoordinateMetadata{TRS: vocab.Gregorian, UnitType: vocab.UnitSecond},
			}},
			want: "1939-09-01T08:01:01",
		},
		{
			name:     "numeric position",
			encoding: owltime.PositionEncoding{Position: owltime.Position{TRS: vocab.UnixTime, Numeric: -957315600}},
			want:     "1939-08-31T23:00:00",
		},
	}

	r := newResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ont := ontology.New(ex)
			iri, err := owltime.DeclareInstantFeature(ont, ex+"event", &owltime.Instant{IRI: ex + "i", Encoding: tt.encoding})
			require.NoError(t, err)
			assert.Equal(t, ex+"i", iri)

			c, err := r.CoordinateOfInstant(ont, iri, "")
			require.NoError(t, err)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.String())

			v := validator.New(validator.WithLogger(quietLogger()))
			v.AddAllStandardRules()
			rep := v.ApplyToOntology(ont)
			assert.Equal(t, 0, rep.Count(), "declared axioms are consistent: %v", rep.Issues)
		})
	}
}

func TestDeclareIntervalFeature(t *testing.T) {
	r := newResolver()

	t.Run("bounds", func(t *testing.T) {
		ont := ontology.New(ex)
		iri, err := owltime.DeclareIntervalFeature(ont, ex+"war", &owltime.Interval{
			IRI: ex + "ww2",
			Encoding: owltime.BoundsEncoding{
				Beginning: &owltime.Instant{Encoding: owltime.DateTimeEncoding{Value: time.Date(1939, 9, 1, 4, 45, 0, 0, time.UTC)}},
				End:       &owltime.Instant{Encoding: owltime.DateTimeEncoding{Value: time.Date(1945, 9, 2, 4, 45, 0, 0, time.UTC)}},
			},
		})
		require.NoError(t, err)

		ext, err := r.ExtentOfInterval(ont, iri)
		require.NoError(t, err)
		assert.Equal(t, owltime.Extent{
			Days:     2193,
			Metadata: owltime.ExtentMetadata{TRS: vocab.Gregorian, UnitType: vocab.UnitSecond},
		}, *ext)

		entity, err := r.TemporalFeature(ont, ex+"war")
		require.NoError(t, err)
		interval, ok := entity.(*owltime.Interval)
		require.True(t, ok, "got %T", entity)
		assert.IsType(t, owltime.BoundsEncoding{}, interval.Encoding)
	})

	t.Run("duration description", func(t *testing.T) {
		ont := ontology.New(ex)
		iri, err := owltime.DeclareIntervalFeature(ont, ex+"trip", &owltime.Interval{
			Encoding: owltime.DurationDescriptionEncoding{Description: owltime.Extent{Days: 396, Hours: 1, Minutes: 1, Seconds: 1}},
		})
		require.NoError(t, err)

		ext, err := r.ExtentOfInterval(ont, iri)
		require.NoError(t, err)
		assert.Equal(t, "P396DT1H1M1S", ext.String())
	})

	t.Run("duration", func(t *testing.T) {
		ont := ontology.New(ex)
		iri, err := owltime.DeclareIntervalFeature(ont, ex+"nap", &owltime.Interval{
			Encoding: owltime.DurationEncoding{Value: 20, Unit: vocab.UnitMinute},
		})
		require.NoError(t, err)

		ext, err := r.ExtentOfInterval(ont, iri)
		require.NoError(t, err)
		assert.Equal(t, 20.0, ext.Minutes)
	})

	t.Run("time span", func(t *testing.T) {
		ont := ontology.New(ex)
		iri, err := owltime.DeclareFeature(ont, ex+"term", &owltime.Interval{
			Encoding: owltime.TimeSpanEncoding{Value: "P4Y"},
		})
		require.NoError(t, err)

		ext, err := r.ExtentOfInterval(ont, iri)
		require.NoError(t, err)
		assert.Equal(t, 4.0, ext.Years)
	})
}

func TestDeclareFeature_Errors(t *testing.T) {
	ont := ontology.New(ex)
	instant := &owltime.Instant{Encoding: owltime.DateTimeEncoding{Value: time.Now()}}

	_, err := owltime.DeclareInstantFeature(ont, "", instant)
	assert.ErrorIs(t, err, owltime.ErrEmptyFeature)

	_, err = owltime.DeclareInstantFeature(ont, ex+"f", nil)
	assert.ErrorIs(t, err, owltime.ErrNilEntity)

	_, err = owltime.DeclareInstantFeature(ont, ex+"f", &owltime.Instant{})
	assert.ErrorIs(t, err, owltime.ErrNilEntity)

	_, err = owltime.DeclareIntervalFeature(ont, ex+"f", nil)
	assert.ErrorIs(t, err, owltime.ErrNilEntity)

	_, err = owltime.DeclareFeature(ont, ex+"f", nil)
	assert.ErrorIs(t, err, owltime.ErrNilEntity)

	_, err = owltime.DeclareIntervalFeature(ont, ex+"f", &owltime.Interval{
		Encoding: owltime.DurationEncoding{Value: -1, Unit: vocab.UnitDay},
	})
	assert.ErrorIs(t, err, owltime.ErrNegativeExtent)

	_, err = owltime.DeclareIntervalFeature(ont, ex+"f", &owltime.Interval{
		Encoding: owltime.TimeSpanEncoding{Value: "four years"},
	})
	assert.ErrorIs(t, err, owltime.ErrInvalidLiteral)

	assert.Equal(t, 0, ont.AxiomCount(), "failed declarations add nothing")
}
