package model

import (
	"time"

	"roombook/shared/constant"
)

// Clock is a time of day. The caller's raw token ("09:00 AM") is kept
// for the wire, the minutes-since-midnight value for comparisons, so
// ordering never depends on string collation.
type Clock struct {
	Raw     string
	Minutes int
}

func ParseClock(raw string) (Clock, error) {
	t, err := time.Parse(constant.ClockFormat, raw)
	if err != nil {
		return Clock{}, err
	}

	return Clock{
		Raw:     raw,
		Minutes: t.Hour()*60 + t.Minute(),
	}, nil
}

func (c Clock) String() string {
	return c.Raw
}
