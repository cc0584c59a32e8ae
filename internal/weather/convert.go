package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DegreeSuffix is appended to every rendered temperature.
const DegreeSuffix = "°C"

const longDateLayout = "Monday 02 January 2006"

// FahrenheitToCelsius converts f to Celsius rounded to one decimal place.
func FahrenheitToCelsius(f float64) float64 {
	return RoundOneDecimal((f - 32) * 5 / 9)
}

// RoundOneDecimal rounds v to one decimal place. The exact binary value of v
// decides the direction and exact ties go to the even digit.
func RoundOneDecimal(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// FormatTemperature renders v followed by the degree suffix. It does no
// rounding of its own.
func FormatTemperature[T Number](v T) string {
	switch x := any(v).(type) {
	case float64:
		return formatDecimal(x, 64) + DegreeSuffix
	case float32:
		return formatDecimal(float64(x), 32) + DegreeSuffix
	}
	return fmt.Sprint(v) + DegreeSuffix
}

// formatDecimal prints the shortest representation that round-trips, keeping
// at least one fractional digit.
func formatDecimal(v float64, bitSize int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, bitSize)
	}

	s := strconv.FormatFloat(v, 'f', -1, bitSize)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatDate renders an ISO date like "2021-07-06" as "Tuesday 06 July 2021".
// Date-times render their calendar date as written, without applying the offset.
func FormatDate(iso string) (string, error) {
	t, err := parseISODate(iso)
	if err != nil {
		return "", &ParseError{Kind: "date", Input: iso, Err: err}
	}
	return t.Format(longDateLayout), nil
}
