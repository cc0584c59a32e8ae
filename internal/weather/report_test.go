package weather

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var twoDays = Dataset{
	{Date: "2021-07-05", MinTempF: 50, MaxTempF: 70},
	{Date: "2021-07-06", MinTempF: 30, MaxTempF: 90},
}

var fiveDays = Dataset{
	{Date: "2021-07-02T07:00:00+08:00", MinTempF: 49, MaxTempF: 67},
	{Date: "2021-07-03T07:00:00+08:00", MinTempF: 57, MaxTempF: 68},
	{Date: "2021-07-04T07:00:00+08:00", MinTempF: 56, MaxTempF: 62},
	{Date: "2021-07-05T07:00:00+08:00", MinTempF: 55, MaxTempF: 61},
	{Date: "2021-07-06T07:00:00+08:00", MinTempF: 53, MaxTempF: 62},
}

func TestGenerateOverview_empty(t *testing.T) {
	got, err := GenerateOverview(nil)
	require.NoError(t, err)
	assert.Equal(t, "No data available.", got)
}

func TestGenerateOverview_twoDays(t *testing.T) {
	got, err := GenerateOverview(twoDays)
	require.NoError(t, err)

	want := "2 Day Overview\n" +
		"  The lowest temperature will be -1.1°C, and will occur on Tuesday 06 July 2021.\n" +
		"  The highest temperature will be 32.2°C, and will occur on Tuesday 06 July 2021.\n" +
		"  The average low this week is 4.4°C.\n" +
		"  The average high this week is 26.7°C.\n"
	assert.Equal(t, want, got)
}

func TestGenerateOverview_fiveDays(t *testing.T) {
	got, err := GenerateOverview(fiveDays)
	require.NoError(t, err)

	want := "5 Day Overview\n" +
		"  The lowest temperature will be 9.4°C, and will occur on Friday 02 July 2021.\n" +
		"  The highest temperature will be 20.0°C, and will occur on Saturday 03 July 2021.\n" +
		"  The average low this week is 12.2°C.\n" +
		"  The average high this week is 17.8°C.\n"
	assert.Equal(t, want, got)
}

func TestGenerateOverview_tiesUseLastDate(t *testing.T) {
	ds := Dataset{
		{Date: "2020-06-19", MinTempF: 47, MaxTempF: 46},
		{Date: "2020-06-20", MinTempF: 51, MaxTempF: 67},
		{Date: "2020-06-21", MinTempF: 58, MaxTempF: 72},
		{Date: "2020-06-22", MinTempF: 59, MaxTempF: 71},
		{Date: "2020-06-23", MinTempF: 52, MaxTempF: 71},
		{Date: "2020-06-24", MinTempF: 52, MaxTempF: 67},
		{Date: "2020-06-25", MinTempF: 48, MaxTempF: 66},
		{Date: "2020-06-26", MinTempF: 53, MaxTempF: 66},
		{Date: "2020-06-27", MinTempF: 47, MaxTempF: 72},
	}

	got, err := GenerateOverview(ds)
	require.NoError(t, err)
	assert.Contains(t, got, "The lowest temperature will be 8.3°C, and will occur on Saturday 27 June 2020.")
	assert.Contains(t, got, "The highest temperature will be 22.2°C, and will occur on Saturday 27 June 2020.")
}

func TestGenerateOverview_badDate(t *testing.T) {
	_, err := GenerateOverview(Dataset{{Date: "not-a-date", MinTempF: 1, MaxTempF: 2}})
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "date", perr.Kind)
}

func TestGenerateDailySummary(t *testing.T) {
	got, err := GenerateDailySummary(twoDays)
	require.NoError(t, err)

	want := "---- Monday 05 July 2021 ----\n" +
		"  Minimum Temperature: 10.0°C\n" +
		"  Maximum Temperature: 21.1°C\n" +
		"\n" +
		"---- Tuesday 06 July 2021 ----\n" +
		"  Minimum Temperature: -1.1°C\n" +
		"  Maximum Temperature: 32.2°C\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestGenerateDailySummary_blockPerRecord(t *testing.T) {
	got, err := GenerateDailySummary(fiveDays)
	require.NoError(t, err)

	blocks := strings.Split(strings.TrimSuffix(got, "\n\n"), "\n\n")
	require.Len(t, blocks, len(fiveDays))

	wantHeaders := []string{
		"---- Friday 02 July 2021 ----",
		"---- Saturday 03 July 2021 ----",
		"---- Sunday 04 July 2021 ----",
		"---- Monday 05 July 2021 ----",
		"---- Tuesday 06 July 2021 ----",
	}
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		require.Len(t, lines, 3, "block %d", i)
		assert.Equal(t, wantHeaders[i], lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "  Minimum Temperature: "))
		assert.True(t, strings.HasPrefix(lines[2], "  Maximum Temperature: "))
	}
	assert.Equal(t, "  Maximum Temperature: 19.4°C", strings.Split(blocks[0], "\n")[2])
}

func TestGenerateDailySummary_empty(t *testing.T) {
	got, err := GenerateDailySummary(Dataset{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateDailySummary_duplicatesKept(t *testing.T) {
	ds := Dataset{twoDays[0], twoDays[0]}
	got, err := GenerateDailySummary(ds)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(got, "---- Monday 05 July 2021 ----"))
}

func TestGenerateDailySummary_badDate(t *testing.T) {
	_, err := GenerateDailySummary(Dataset{twoDays[0], {Date: "2021/07/06"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}
