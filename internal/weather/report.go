package weather

import (
	"fmt"
	"strings"
)

// NoDataMessage is the overview returned for an empty dataset.
const NoDataMessage = "No data available."

// GenerateOverview renders the multi-day summary: record count, the lowest
// minimum and highest maximum with their dates, and the average low and high.
func GenerateOverview(ds Dataset) (string, error) {
	if len(ds) == 0 {
		return NoDataMessage, nil
	}

	minTemps := ds.MinTemps()
	maxTemps := ds.MaxTemps()

	// Both columns have len(ds) > 0 entries, so the searches always succeed.
	lowest, _ := FindMin(minTemps)
	highest, _ := FindMax(maxTemps)

	lowestDate, err := FormatDate(ds[lowest.Index].Date)
	if err != nil {
		return "", fmt.Errorf("lowest temperature date: %w", err)
	}
	highestDate, err := FormatDate(ds[highest.Index].Date)
	if err != nil {
		return "", fmt.Errorf("highest temperature date: %w", err)
	}

	avgLow, _ := Mean(minTemps)
	avgHigh, _ := Mean(maxTemps)

	// Averages are rounded again after conversion; displayed digits depend on it.
	lines := []string{
		fmt.Sprintf("%d Day Overview", len(ds)),
		fmt.Sprintf("  The lowest temperature will be %s, and will occur on %s.",
			FormatTemperature(FahrenheitToCelsius(lowest.Value)), lowestDate),
		fmt.Sprintf("  The highest temperature will be %s, and will occur on %s.",
			FormatTemperature(FahrenheitToCelsius(highest.Value)), highestDate),
		fmt.Sprintf("  The average low this week is %s.",
			FormatTemperature(RoundOneDecimal(FahrenheitToCelsius(avgLow)))),
		fmt.Sprintf("  The average high this week is %s.",
			FormatTemperature(RoundOneDecimal(FahrenheitToCelsius(avgHigh)))),
	}
	return joinLines(lines), nil
}

// GenerateDailySummary renders one block per record, in dataset order.
func GenerateDailySummary(ds Dataset) (string, error) {
	lines := make([]string, 0, len(ds)*4)
	for i, rec := range ds {
		date, err := FormatDate(rec.Date)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		lines = append(lines,
			fmt.Sprintf("---- %s ----", date),
			"  Minimum Temperature: "+FormatTemperature(FahrenheitToCelsius(rec.MinTempF)),
			"  Maximum Temperature: "+FormatTemperature(FahrenheitToCelsius(rec.MaxTempF)),
			"",
		)
	}
	return joinLines(lines), nil
}

// joinLines terminates every line with a newline.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
