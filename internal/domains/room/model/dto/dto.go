package dto

import (
	bookingModel "roombook/internal/domains/booking/model"
	"roombook/internal/domains/room/model"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
)

// CreateRoomRequest deliberately has no roomName field: callers may send
// one, but the registry always generates its own, so it is never bound.
type CreateRoomRequest struct {
	NumberOfSeats int      `json:"numberOfSeats" validate:"required,gt=0"`
	Amenities     []string `json:"amenities"     validate:"required"`
	PricePerHour  float64  `json:"pricePerHour"  validate:"required,gt=0"`
}

// ToModel builds the room draft. Id and name are assigned by the
// registry when the draft is inserted.
func (c *CreateRoomRequest) ToModel() model.Room {
	return model.Room{
		NumberOfSeats: c.NumberOfSeats,
		Amenities:     c.Amenities,
		PricePerHour:  c.PricePerHour,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}
}

type RoomResponse struct {
	ID            int      `json:"id"`
	RoomName      string   `json:"roomName"`
	NumberOfSeats int      `json:"numberOfSeats"`
	Amenities     []string `json:"amenities"`
	PricePerHour  float64  `json:"pricePerHour"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomName = model.Name
	r.NumberOfSeats = model.NumberOfSeats
	r.Amenities = model.Amenities
	r.PricePerHour = model.PricePerHour
}

func RoomResponses(models []model.Room) []RoomResponse {
	responses := make([]RoomResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

// RoomStatusResponse is the read-side join of a room with the first
// booking referencing it. The booking fields stay null for rooms with
// no booking; rooms with several bookings still expose only the first.
type RoomStatusResponse struct {
	RoomName     string  `json:"roomName"`
	BookedStatus string  `json:"bookedStatus"`
	CustomerName *string `json:"customerName"`
	Date         *string `json:"date"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
}

func (r *RoomStatusResponse) FromModels(room model.Room, booking *bookingModel.Booking) {
	r.RoomName = room.Name

	if booking == nil {
		r.BookedStatus = model.StatusAvailable

		return
	}

	r.BookedStatus = model.StatusBooked
	r.CustomerName = &booking.CustomerName
	r.Date = &booking.Date
	r.StartTime = &booking.StartTime.Raw
	r.EndTime = &booking.EndTime.Raw
}
