package owltime_test

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/owltime"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

func TestRegistry_Seeded(t *testing.T) {
	reg := owltime.NewRegistry()

	assert.Equal(t, []string{vocab.UnixTime, vocab.Gregorian, vocab.GPSTime}, reg.Systems())
	assert.Len(t, reg.Units(), 7)

	cal, err := reg.Calendar(vocab.Gregorian)
	require.NoError(t, err)
	assert.Equal(t, 12, cal.Metrics.MonthCount())

	_, err = reg.PositionSystem(vocab.UnixTime)
	require.NoError(t, err)

	_, err = reg.Calendar(vocab.UnixTime)
	assert.ErrorIs(t, err, owltime.ErrNotCalendarTRS)
	_, err = reg.PositionSystem(vocab.Gregorian)
	assert.ErrorIs(t, err, owltime.ErrNotPositionTRS)
	_, err = reg.Calendar("http://example.org/none")
	assert.ErrorIs(t, err, owltime.ErrUnregisteredTRS)

	u, err := reg.Unit(vocab.UnitWeek)
	require.NoError(t, err)
	secs, ok := u.Seconds(owltime.GregorianMetrics)
	assert.True(t, ok)
	assert.Equal(t, 604800.0, secs)

	_, err = reg.Unit("http://example.org/lightyear")
	assert.ErrorIs(t, err, owltime.ErrUnknownUnit)
}

func TestRegistry_AddTRS(t *testing.T) {
	reg := owltime.NewRegistry()

	tests := []struct {
		name    string
		trs     owltime.TRS
		wantErr error
	}{
		{"julian", julianCalendar(), nil},
		{"position in minutes", &owltime.PositionSystem{IRI: ex + "Minutes", Unit: vocab.UnitMinute}, nil},
		{"position without unit", &owltime.PositionSystem{IRI: ex + "P", Unit: ex + "none"}, owltime.ErrUnknownUnit},
		{"position in months", &owltime.PositionSystem{IRI: ex + "P", Unit: vocab.UnitMonth}, owltime.ErrInvalidTRS},
		{"calendar without months", &owltime.Calendar{IRI: ex + "C", Metrics: owltime.CalendarMetrics{
			SecondsInMinute: 60, MinutesInHour: 60, HoursInDay: 24, DaysInWeek: 7,
		}}, owltime.ErrInvalidTRS},
		{"calendar without IRI", &owltime.Calendar{Metrics: owltime.GregorianMetrics}, owltime.ErrInvalidTRS},
		{"leap month out of range", &owltime.Calendar{IRI: ex + "C", Metrics: owltime.CalendarMetrics{
			SecondsInMinute: 60, MinutesInHour: 60, HoursInDay: 24, DaysInWeek: 7,
			MonthDays: []int{30}, LeapYearRule: owltime.JulianLeapYear, LeapMonth: 2,
		}}, owltime.ErrInvalidTRS},
		{"nil", nil, owltime.ErrInvalidTRS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.AddTRS(tt.trs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			_, ok := reg.Lookup(tt.trs.Identifier())
			assert.True(t, ok)
		})
	}
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	reg := owltime.NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reg.Calendar(vocab.Gregorian)
			assert.NoError(t, err)
			_, err = reg.Unit(vocab.UnitDay)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestParseLeapYearRule(t *testing.T) {
	rule, err := owltime.ParseLeapYearRule("Gregorian")
	require.NoError(t, err)
	assert.False(t, rule(1900))
	assert.True(t, rule(2000))

	rule, err = owltime.ParseLeapYearRule("julian")
	require.NoError(t, err)
	assert.True(t, rule(1900))

	rule, err = owltime.ParseLeapYearRule("none")
	require.NoError(t, err)
	assert.Nil(t, rule)

	_, err = owltime.ParseLeapYearRule("lunar")
	assert.ErrorIs(t, err, owltime.ErrInvalidTRS)
}

func TestCalendar_MatchesTimePackage(t *testing.T) {
	reg := owltime.NewRegistry()
	cal, err := reg.Calendar(vocab.Gregorian)
	require.NoError(t, err)

	instants := []time.Time{
		time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1600, time.February, 29, 23, 59, 59, 0, time.UTC),
		time.Date(1900, time.March, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1969, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2000, time.February, 29, 6, 30, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 0, 0, 1, 0, time.UTC),
	}
	for _, want := range instants {
		t.Run(want.Format(time.RFC3339), func(t *testing.T) {
			c, err := cal.FromUnix(float64(want.Unix()))
			require.NoError(t, err)
			assert.Equal(t, want, c.Time())
			assert.Equal(t, want.YearDay(), c.Metadata.DayOfYear)

			back, err := cal.ToUnix(c)
			require.NoError(t, err)
			assert.Equal(t, float64(want.Unix()), back)
		})
	}
}

func TestCalendar_ToUnixRejectsInvalid(t *testing.T) {
	cal, err := owltime.NewRegistry().Calendar(vocab.Gregorian)
	require.NoError(t, err)

	for _, c := range []owltime.Coordinate{
		{Year: 2023, Month: 13, Day: 1},
		{Year: 2023, Month: 2, Day: 29},
		{Year: 2023, Month: 1, Day: 1, Hour: 24},
		{Year: 2023, Month: 1, Day: 1, Second: 60},
	} {
		_, err := cal.ToUnix(c)
		assert.ErrorIs(t, err, owltime.ErrInvalidCoordinate, c.String())
	}

	_, err = cal.FromUnix(math.MaxFloat32)
	assert.ErrorIs(t, err, owltime.ErrInvalidCoordinate)
}

func TestCalendar_CustomMetrics(t *testing.T) {
	// Ten months of 36 days plus a five day festival month, ten hour days.
	decimal := &owltime.Calendar{
		IRI:       ex + "Decimal",
		Epoch:     time.Unix(0, 0).UTC(),
		EpochYear: 1,
		Metrics: owltime.CalendarMetrics{
			SecondsInMinute: 100,
			MinutesInHour:   100,
			HoursInDay:      10,
			DaysInWeek:      10,
			MonthDays:       []int{36, 36, 36, 36, 36, 36, 36, 36, 36, 36, 5},
		},
	}
	require.NoError(t, owltime.NewRegistry().AddTRS(decimal))
	assert.Equal(t, 365, decimal.Metrics.DaysInYear(1))

	day := float64(decimal.Metrics.SecondsInDay())
	c, err := decimal.FromUnix(365*day + 40*day + 5*10000 + 3)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Year)
	assert.Equal(t, 2, c.Month)
	assert.Equal(t, 5, c.Day)
	assert.Equal(t, 5, c.Hour)
	assert.Equal(t, 0, c.Minute)
	assert.Equal(t, 3.0, c.Second)
	assert.Equal(t, ex+"Decimal", c.Metadata.TRS)
}

func TestExtent_Normalize(t *testing.T) {
	ext := owltime.Extent{Seconds: 90061}.Normalize(owltime.GregorianMetrics)
	assert.Equal(t, owltime.Extent{Days: 1, Hours: 1, Minutes: 1, Seconds: 1}, ext)
	assert.Equal(t, "PT0S", owltime.Extent{}.String())
}
