package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout is the wire format for all timestamps: zone-naive
// ISO-8601 local date-time, second precision or finer.
const DateTimeLayout = "2006-01-02T15:04:05"

// DateTime is a zone-naive timestamp. It marshals to and from the
// DateTimeLayout form and round-trips through database/sql as a plain
// timestamp column.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func ParseDateTime(s string) (DateTime, error) {
	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: bad timestamp %q", ErrInvalidRequest, s)
	}
	return DateTime{Time: t}, nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateTime) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *DateTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateTime", src)
	}
}

func (d *DateTime) scanString(s string) error {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		return fmt.Errorf("cannot scan %q into DateTime", s)
	}
	d.Time = t
	return nil
}
