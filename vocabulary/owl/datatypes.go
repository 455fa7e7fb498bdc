package owl

import (
	"encoding/base64"
	"encoding/hex"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

var (
	integerRe    = regexp.MustCompile(`^[+-]?\d+$`)
	decimalRe    = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	doubleRe     = regexp.MustCompile(`^([+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?|[+-]?INF|NaN)$`)
	dateTimeRe   = regexp.MustCompile(`^-?\d{4,}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
	dateTimeTZRe = regexp.MustCompile(`^-?\d{4,}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`)
	dateRe       = regexp.MustCompile(`^-?\d{4,}-\d{2}-\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	timeRe       = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)
	gYearRe      = regexp.MustCompile(`^-?\d{4,}(Z|[+-]\d{2}:\d{2})?$`)
	gYearMonthRe = regexp.MustCompile(`^-?\d{4,}-\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	gMonthRe     = regexp.MustCompile(`^--\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	gMonthDayRe  = regexp.MustCompile(`^--\d{2}-\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	gDayRe       = regexp.MustCompile(`^---\d{2}(Z|[+-]\d{2}:\d{2})?$`)
	durationRe   = regexp.MustCompile(`^-?P(\d+Y)?(\d+M)?(\d+W)?(\d+D)?(T(\d+H)?(\d+M)?(\d+(\.\d+)?S)?)?$`)
	languageRe   = regexp.MustCompile(`^[a-zA-Z]{1,8}(-[a-zA-Z0-9]{1,8})*$`)
)

// integerBounds holds the inclusive bounds of the bounded XSD integer types.
var integerBounds = map[string][2]string{
	XSDLong:               {"-9223372036854775808", "9223372036854775807"},
	XSDInt:                {"-2147483648", "2147483647"},
	XSDShort:              {"-32768", "32767"},
	XSDByte:               {"-128", "127"},
	XSDUnsignedLong:       {"0", "18446744073709551615"},
	XSDUnsignedInt:        {"0", "4294967295"},
	XSDUnsignedShort:      {"0", "65535"},
	XSDUnsignedByte:       {"0", "255"},
	XSDNonNegativeInteger: {"0", ""},
	XSDPositiveInteger:    {"1", ""},
	XSDNonPositiveInteger: {"", "0"},
	XSDNegativeInteger:    {"", "-1"},
}

// IsValidLexicalForm reports whether value is in the lexical space of the
// given datatype. Unknown datatypes are accepted.
func IsValidLexicalForm(value, datatype string) bool {
	switch datatype {
	case "", XSDString, RDFSLiteral, RDFPlainLiteral, RDFLangString, RDFXMLLiteral, XSDAnyURI:
		return true
	case XSDNormalizedString:
		return !strings.ContainsAny(value, "\r\n\t")
	case XSDToken:
		return !strings.ContainsAny(value, "\r\n\t") &&
			!strings.HasPrefix(value, " ") && !strings.HasSuffix(value, " ") &&
			!strings.Contains(value, "  ")
	case XSDLanguage:
		return languageRe.MatchString(value)
	case XSDBoolean:
		switch value {
		case "true", "false", "1", "0":
			return true
		}
		return false
	case XSDDecimal, Rational, Real:
		return decimalRe.MatchString(value)
	case XSDDouble, XSDFloat:
		return doubleRe.MatchString(value)
	case XSDInteger:
		return integerRe.MatchString(value)
	case XSDDateTime:
		return dateTimeRe.MatchString(value)
	case XSDDateTimeStamp:
		return dateTimeTZRe.MatchString(value)
	case XSDDate:
		return dateRe.MatchString(value)
	case XSDTime:
		return timeRe.MatchString(value)
	case XSDGYear:
		return gYearRe.MatchString(value)
	case XSDGYearMonth:
		return gYearMonthRe.MatchString(value)
	case XSDGMonth:
		return gMonthRe.MatchString(value)
	case XSDGMonthDay:
		return gMonthDayRe.MatchString(value)
	case XSDGDay:
		return gDayRe.MatchString(value)
	case XSDDuration:
		return value != "P" && value != "-P" && !strings.HasSuffix(value, "T") && durationRe.MatchString(value)
	case XSDHexBinary:
		_, err := hex.DecodeString(value)
		return err == nil
	case XSDBase64Binary:
		_, err := base64.StdEncoding.DecodeString(value)
		return err == nil
	}

	if bounds, ok := integerBounds[datatype]; ok {
		return inIntegerBounds(value, bounds)
	}
	return true
}

func inIntegerBounds(value string, bounds [2]string) bool {
	if !integerRe.MatchString(value) {
		return false
	}
	n, ok := new(big.Int).SetString(strings.TrimPrefix(value, "+"), 10)
	if !ok {
		return false
	}
	if bounds[0] != "" {
		lo, _ := new(big.Int).SetString(bounds[0], 10)
		if n.Cmp(lo) < 0 {
			return false
		}
	}
	if bounds[1] != "" {
		hi, _ := new(big.Int).SetString(bounds[1], 10)
		if n.Cmp(hi) > 0 {
			return false
		}
	}
	return true
}

// numericTypes lists datatypes whose value spaces nest inside owl:real.
var numericTypes = map[string]bool{
	Real: true, Rational: true, XSDDecimal: true, XSDInteger: true,
	XSDNonNegativeInteger: true, XSDNonPositiveInteger: true,
	XSDPositiveInteger: true, XSDNegativeInteger: true,
	XSDLong: true, XSDInt: true, XSDShort: true, XSDByte: true,
	XSDUnsignedLong: true, XSDUnsignedInt: true, XSDUnsignedShort: true, XSDUnsignedByte: true,
}

var stringTypes = map[string]bool{
	XSDString: true, XSDNormalizedString: true, XSDToken: true, XSDLanguage: true,
	RDFPlainLiteral: true, RDFLangString: true,
}

// IsCompatibleDatatype reports whether a literal typed with actual may be a
// member of the range datatype. The check follows the XSD derivation
// hierarchy: integers fit decimal ranges, plain strings fit token ranges when
// their lexical form does, and rdfs:Literal accepts everything.
func IsCompatibleDatatype(actual, value, rangeType string) bool {
	if rangeType == "" || rangeType == RDFSLiteral || actual == rangeType {
		return true
	}
	if actual == "" {
		actual = XSDString
	}
	switch {
	case numericTypes[actual] && numericTypes[rangeType]:
		if !integerRe.MatchString(strings.TrimSpace(value)) {
			return rangeType == XSDDecimal || rangeType == Rational || rangeType == Real
		}
		if rangeType == XSDDecimal || rangeType == Rational || rangeType == Real || rangeType == XSDInteger {
			return true
		}
		return IsValidLexicalForm(value, rangeType)
	case stringTypes[actual] && stringTypes[rangeType]:
		return IsValidLexicalForm(value, rangeType)
	case actual == XSDDateTimeStamp && rangeType == XSDDateTime:
		return true
	case actual == XSDFloat && rangeType == XSDDouble:
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	}
	return !IsBuiltinDatatype(rangeType)
}
