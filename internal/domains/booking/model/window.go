package model

import "errors"

// ErrWindowTaken is returned by the ledger when a requested window
// overlaps an existing booking on the same room and date.
var ErrWindowTaken = errors.New("room is already booked for the same date and time")

// Window is a half-open [Start, End) interval in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// Overlaps reports whether two windows intersect. Windows that merely
// touch (one ends exactly when the other starts) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return (w.Start >= other.Start && w.Start < other.End) ||
		(w.End > other.Start && w.End <= other.End) ||
		(w.Start <= other.Start && w.End >= other.End)
}

// Available reports whether the candidate window can be booked for the
// given room and date against a snapshot of the ledger.
func Available(ledger []Booking, roomID int, date string, win Window) bool {
	for _, booking := range ledger {
		if booking.RoomID == roomID && booking.Date == date && win.Overlaps(booking.Window()) {
			return false
		}
	}

	return true
}
