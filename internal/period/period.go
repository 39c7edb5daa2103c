// Package period resolves the dashboard time-window presets into the
// startDate/endDate parameters of the transaction listing.
package period

import (
	"fmt"
	"net/url"
	"time"
)

// Preset names a time window.
type Preset string

const (
	All    Preset = "all"
	Week   Preset = "week"
	Month  Preset = "month"
	Year   Preset = "year"
	Custom Preset = "custom"
)

// DateLayout is the layout of custom range bounds.
const DateLayout = "2006-01-02"

// isoLayout matches the millisecond ISO-8601 form the transaction service
// already receives from browsers.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

// Valid reports whether p is a known preset. The empty preset means All.
func (p Preset) Valid() bool {
	switch p {
	case "", All, Week, Month, Year, Custom:
		return true
	}
	return false
}

// Range is a resolved window. The zero Range means all time.
type Range struct {
	Start    time.Time
	End      time.Time
	dateOnly bool
}

// IsAll reports whether the range is unbounded.
func (r Range) IsAll() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Params returns the query parameters for the range. All time yields no
// parameters at all.
func (r Range) Params() url.Values {
	v := url.Values{}
	if r.IsAll() {
		return v
	}
	if r.dateOnly {
		v.Set("startDate", r.Start.Format(DateLayout))
		v.Set("endDate", r.End.Format(DateLayout))
		return v
	}
	v.Set("startDate", r.Start.UTC().Format(isoLayout))
	v.Set("endDate", r.End.UTC().Format(isoLayout))
	return v
}

// Resolve turns a preset into a range ending at now. Custom uses the given
// YYYY-MM-DD bounds and falls back to all time unless both are set.
func Resolve(p Preset, customStart, customEnd string, now time.Time) (Range, error) {
	switch p {
	case "", All:
		return Range{}, nil
	case Week:
		return Range{Start: now.AddDate(0, 0, -7), End: now}, nil
	case Month:
		return Range{Start: now.AddDate(0, -1, 0), End: now}, nil
	case Year:
		return Range{Start: now.AddDate(-1, 0, 0), End: now}, nil
	case Custom:
		if customStart == "" || customEnd == "" {
			return Range{}, nil
		}
		start, err := time.Parse(DateLayout, customStart)
		if err != nil {
			return Range{}, fmt.Errorf("invalid start date %q, use YYYY-MM-DD", customStart)
		}
		end, err := time.Parse(DateLayout, customEnd)
		if err != nil {
			return Range{}, fmt.Errorf("invalid end date %q, use YYYY-MM-DD", customEnd)
		}
		if end.Before(start) {
			return Range{}, fmt.Errorf("end date %s is before start date %s", customEnd, customStart)
		}
		return Range{Start: start, End: end, dateOnly: true}, nil
	default:
		return Range{}, fmt.Errorf("unknown range %q", p)
	}
}
