package model

import (
	"roombook/shared/model"
)

const (
	EntityName = "booking"

	FieldID           = "id"
	FieldRoomID       = "roomId"
	FieldCustomerName = "customerName"
	FieldDate         = "date"
	FieldStartTime    = "startTime"
	FieldEndTime      = "endTime"
)

// Booking is one reserved window of a room. RoomName is a denormalized
// copy of the room's name at booking time; the room itself is referenced
// by id only. Bookings are immutable once written to the ledger.
type Booking struct {
	ID           int
	RoomID       int
	RoomName     string
	CustomerName string
	Date         string
	StartTime    Clock
	EndTime      Clock
	model.Metadata
}

func (b Booking) Window() Window {
	return Window{Start: b.StartTime.Minutes, End: b.EndTime.Minutes}
}
