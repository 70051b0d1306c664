package odbcfield

import (
	"cmp"
	"fmt"
	"time"
)

// Date is a calendar date as carried by SQL_DATE_STRUCT.
type Date struct {
	Year, Month, Day int
}

// DateFromTime returns the calendar date of t in t's location.
func DateFromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Time returns midnight UTC of the date. Out-of-range components are normalized by time.Date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Field returns the DATE field for d.
func (d Date) Field() Field {
	return NewDate(d.Year, d.Month, d.Day)
}

// TimeOfDay is a wall-clock time as carried by SQL_TIME_STRUCT.
type TimeOfDay struct {
	Hour, Minute, Second int
}

// TimeOfDayFromTime returns the wall clock of t, dropping fractional seconds.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// Duration returns the time elapsed since midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute + time.Duration(t.Second)*time.Second
}

// Field returns the TIME field for t.
func (t TimeOfDay) Field() Field {
	return NewTime(t.Hour, t.Minute, t.Second)
}

// Timestamp is a date and time as carried by SQL_TIMESTAMP_STRUCT. Fraction is
// in nanoseconds.
type Timestamp struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Fraction             int
}

// TimestampFromTime returns the wall-clock components of t in t's location.
func TimestampFromTime(t time.Time) Timestamp {
	y, m, d := t.Date()
	return Timestamp{
		Year: y, Month: int(m), Day: d,
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		Fraction: t.Nanosecond(),
	}
}

// Time returns ts as a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.Date(ts.Year, time.Month(ts.Month), ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Fraction, time.UTC)
}

// Field returns the TIMESTAMP field for ts.
func (ts Timestamp) Field() Field {
	return NewTimestamp(ts)
}

func (ts Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%09d",
		ts.Year, ts.Month, ts.Day, ts.Hour, ts.Minute, ts.Second, ts.Fraction)
}

func (ts Timestamp) compare(other Timestamp) int {
	for _, c := range [...]int{
		cmp.Compare(ts.Year, other.Year),
		cmp.Compare(ts.Month, other.Month),
		cmp.Compare(ts.Day, other.Day),
		cmp.Compare(ts.Hour, other.Hour),
		cmp.Compare(ts.Minute, other.Minute),
		cmp.Compare(ts.Second, other.Second),
		cmp.Compare(ts.Fraction, other.Fraction),
	} {
		if c != 0 {
			return c
		}
	}
	return 0
}
