package owltime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/vocabulary/owl"
	vocab "github.com/c360studio/semowl/vocabulary/owltime"
)

// dateTimeProperties lists the literal instant encodings in resolution order.
var dateTimeProperties = []string{
	vocab.InXSDDateTimeStamp,
	vocab.InXSDDateTime,
	vocab.InXSDDate,
	vocab.InXSDgYear,
	vocab.InXSDgYearMonth,
}

var dateTimeLayouts = map[string][]string{
	vocab.InXSDDateTimeStamp: {time.RFC3339Nano},
	vocab.InXSDDateTime:      {time.RFC3339Nano, "2006-01-02T15:04:05.999999999"},
	vocab.InXSDDate:          {"2006-01-02Z07:00", "2006-01-02"},
	vocab.InXSDgYear:         {"2006Z07:00", "2006"},
	vocab.InXSDgYearMonth:    {"2006-01Z07:00", "2006-01"},
}

var dateTimeDatatypes = map[string]string{
	vocab.InXSDDateTimeStamp: owl.XSDDateTimeStamp,
	vocab.InXSDDateTime:      owl.XSDDateTime,
	vocab.InXSDDate:          owl.XSDDate,
	vocab.InXSDgYear:         owl.XSDGYear,
	vocab.InXSDgYearMonth:    owl.XSDGYearMonth,
}

// parseDateTime parses the literal stored under an instant encoding property
// and converts it to UTC. Values without a zone are taken as UTC.
func parseDateTime(property, lexical string) (time.Time, error) {
	lexical = strings.TrimSpace(lexical)
	for _, layout := range dateTimeLayouts[property] {
		if t, err := time.Parse(layout, lexical); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q for %s: %w", lexical, property, ErrInvalidLiteral)
}

// formatDateTime renders t as the literal for an instant encoding property.
func formatDateTime(property string, t time.Time) ontology.Literal {
	t = t.UTC()
	var lexical string
	switch property {
	case vocab.InXSDDate:
		lexical = t.Format("2006-01-02")
	case vocab.InXSDgYear:
		lexical = t.Format("2006")
	case vocab.InXSDgYearMonth:
		lexical = t.Format("2006-01")
	default:
		lexical = t.Format(time.RFC3339Nano)
	}
	return ontology.NewLiteral(lexical, dateTimeDatatypes[property])
}

var (
	gYearPattern  = regexp.MustCompile(`^(-?\d{4,})(Z|[+-]\d{2}:\d{2})?$`)
	gMonthPattern = regexp.MustCompile(`^--(\d{2})(Z|[+-]\d{2}:\d{2})?$`)
	gDayPattern   = regexp.MustCompile(`^---(\d{2})(Z|[+-]\d{2}:\d{2})?$`)
)

// parseNumber reads a numeric description field. The gYear, gMonth and gDay
// forms used by OWL-Time descriptions are accepted alongside plain numbers.
func parseNumber(lit ontology.Literal) (float64, error) {
	v := strings.TrimSpace(lit.Value)
	var pattern *regexp.Regexp
	switch lit.EffectiveDatatype() {
	case owl.XSDGYear:
		pattern = gYearPattern
	case owl.XSDGMonth:
		pattern = gMonthPattern
	case owl.XSDGDay:
		pattern = gDayPattern
	}
	if pattern != nil {
		m := pattern.FindStringSubmatch(v)
		if m == nil {
			return 0, fmt.Errorf("%s: %w", lit, ErrInvalidLiteral)
		}
		v = m[1]
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", lit, ErrInvalidLiteral)
	}
	return f, nil
}

var durationPattern = regexp.MustCompile(
	`^(-)?P(?:(\d+(?:\.\d+)?)Y)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)W)?(?:(\d+(?:\.\d+)?)D)?` +
		`(?:T(?:(\d+(?:\.\d+)?)H)?(?:(\d+(?:\.\d+)?)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseDuration parses an xsd:duration into an extent without carrying
// between fields.
func ParseDuration(lexical string) (Extent, error) {
	lexical = strings.TrimSpace(lexical)
	m := durationPattern.FindStringSubmatch(lexical)
	if m == nil || lexical == "P" || lexical == "-P" || strings.HasSuffix(lexical, "T") {
		return Extent{}, fmt.Errorf("duration %q: %w", lexical, ErrInvalidLiteral)
	}
	if m[1] == "-" {
		return Extent{}, fmt.Errorf("duration %q: %w", lexical, ErrNegativeExtent)
	}
	fields := make([]float64, 7)
	for i := range fields {
		if m[i+2] == "" {
			continue
		}
		f, err := strconv.ParseFloat(m[i+2], 64)
		if err != nil {
			return Extent{}, fmt.Errorf("duration %q: %w", lexical, ErrInvalidLiteral)
		}
		fields[i] = f
	}
	return Extent{
		Years:   fields[0],
		Months:  fields[1],
		Weeks:   fields[2],
		Days:    fields[3],
		Hours:   fields[4],
		Minutes: fields[5],
		Seconds: fields[6],
	}, nil
}
