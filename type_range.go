package budgify

import "fmt"

// Range represents an inclusive range of dates.
//
// A zero From or To leaves that end of the range open, so the zero Range
// contains every date.
type Range struct{ From, To Date }

// NewRange creates a new date range. If both ends are set and 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Since returns a range open on its upper end.
func Since(from Date) Range { return Range{From: from} }

// Until returns a range open on its lower end.
func Until(to Date) Range { return Range{To: to} }

// IsOpen reports whether the range has no bound at all.
func (r Range) IsOpen() bool { return r.From.IsZero() && r.To.IsZero() }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool {
	if !r.From.IsZero() && date.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && date.After(r.To) {
		return false
	}
	return true
}

func (r Range) String() string {
	switch {
	case r.IsOpen():
		return "all dates"
	case r.From.IsZero():
		return fmt.Sprintf("until %s", r.To)
	case r.To.IsZero():
		return fmt.Sprintf("since %s", r.From)
	case r.From == r.To:
		return r.From.String()
	default:
		return fmt.Sprintf("%s to %s", r.From, r.To)
	}
}
