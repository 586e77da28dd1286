package timex

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_ISO(t *testing.T) {
	now := time.Date(2024, 1, 1, 20, 0, 0, 0, time.FixedZone("CST", 8*3600))
	assert.Equal(t, "2024-01-01T12:00:00.000Z", Time(now).ISO())
	assert.True(t, Time{}.IsZero())
}

func TestTime_ScanAndValue(t *testing.T) {
	var tt Time
	require.NoError(t, tt.Scan("2024-03-05T10:11:12Z"))
	assert.Equal(t, int64(1709633472), tt.Time().Unix())

	v, err := tt.Value()
	require.NoError(t, err)
	assert.IsType(t, time.Time{}, v)

	var zero Time
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, tt.Scan([]byte("2024-03-05 10:11:12")))
	assert.Equal(t, 12, tt.Time().Second())

	require.NoError(t, tt.Scan(nil))
	assert.True(t, tt.IsZero())

	assert.Error(t, tt.Scan(42))
}

func TestParseDateIn(t *testing.T) {
	shanghai := time.FixedZone("CST", 8*3600)
	newYork := time.FixedZone("EST", -5*3600)

	tests := []struct {
		name string
		in   string
		loc  *time.Location
		want string
	}{
		{"utc timestamp", "2024-01-05T10:00:00.000Z", time.UTC, "Fri Jan 05 2024"},
		{"crosses midnight east", "2024-01-05T20:00:00.000Z", shanghai, "Sat Jan 06 2024"},
		{"crosses midnight west", "2024-01-05T02:00:00Z", newYork, "Thu Jan 04 2024"},
		{"explicit offset", "2023-12-31T23:30:00+08:00", time.UTC, "Sun Dec 31 2023"},
		{"no offset is local", "2024-07-04T23:59:59", newYork, "Thu Jul 04 2024"},
		{"date only is utc midnight", "2024-03-01", newYork, "Thu Feb 29 2024"},
		{"year month", "2024-02", time.UTC, "Thu Feb 01 2024"},
		{"garbage", "not a date", time.UTC, InvalidDate},
		{"empty", "", time.UTC, InvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDateIn(tt.in, tt.loc))
		})
	}
}

// 固定输入与时区时，输出确定且与 time 包格式化一致
func TestProperty_ParseDateDeterministic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("iso timestamp renders as toDateString", prop.ForAll(
		func(sec int64, offsetHours int) bool {
			loc := time.FixedZone("gen", offsetHours*3600)
			instant := time.Unix(sec, 0)
			iso := instant.UTC().Format(ISOLayout)

			first := ParseDateIn(iso, loc)
			second := ParseDateIn(iso, loc)

			return first == second && first == instant.In(loc).Format(DateStringLayout)
		},
		gen.Int64Range(0, 4102444800),
		gen.IntRange(-12, 14),
	))

	properties.TestingRun(t)
}
