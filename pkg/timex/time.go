// Package timex holds the time helpers shared by the view and the mock backend.
package timex

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	// Layout 数据库中的时间格式
	Layout = "2006-01-02 15:04:05"
	// ISOLayout is the AWSDateTime style used on the GraphQL wire
	ISOLayout = "2006-01-02T15:04:05.000Z"
	// DateStringLayout matches a browser's Date.prototype.toDateString
	DateStringLayout = "Mon Jan 02 2006"
	// InvalidDate is what a browser prints for an unparseable date
	InvalidDate = "Invalid Date"
)

// Time wraps time.Time with database codecs
type Time time.Time

// Now 当前时间
func Now() Time {
	return Time(time.Now())
}

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) IsZero() bool {
	return time.Time(t).IsZero()
}

// ISO formats the time in UTC with millisecond precision
func (t Time) ISO() string {
	return time.Time(t).UTC().Format(ISOLayout)
}

// Value 实现 driver.Valuer
func (t Time) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return time.Time(t), nil
}

// Scan 实现 sql.Scanner
func (t *Time) Scan(v interface{}) error {
	switch val := v.(type) {
	case nil:
		*t = Time{}
	case time.Time:
		*t = Time(val)
	case string:
		return t.scanString(val)
	case []byte:
		return t.scanString(string(val))
	default:
		return fmt.Errorf("timex: cannot scan %T into Time", v)
	}
	return nil
}

func (t *Time) scanString(s string) error {
	for _, layout := range []string{time.RFC3339Nano, Layout, "2006-01-02 15:04:05.999999999-07:00"} {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			*t = Time(parsed)
			return nil
		}
	}
	return fmt.Errorf("timex: cannot parse %q", s)
}

// ParseDate renders an ISO-8601 date string the way a browser's
// toDateString does, in the local time zone.
// ParseDate 将 ISO-8601 字符串格式化为 "Mon Jan 02 2006"
func ParseDate(s string) string {
	return ParseDateIn(s, time.Local)
}

// ParseDateIn is ParseDate for an explicit location.
// Date-only input is read as UTC midnight, date-time input without an
// offset is read in loc, matching ECMAScript date parsing.
func ParseDateIn(s string, loc *time.Location) string {
	t, ok := parseISO(strings.TrimSpace(s), loc)
	if !ok {
		return InvalidDate
	}
	return t.In(loc).Format(DateStringLayout)
}

func parseISO(s string, loc *time.Location) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
