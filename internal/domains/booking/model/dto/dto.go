package dto

import (
	"time"

	"roombook/internal/domains/booking/model"
	"roombook/shared/constant"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
)

type CreateBookingRequest struct {
	CustomerName string `json:"customerName" validate:"required"`
	Date         string `json:"date"         validate:"required"`
	StartTime    string `json:"startTime"    validate:"required"`
	EndTime      string `json:"endTime"      validate:"required"`
	RoomID       int    `json:"roomId"       validate:"required,gt=0"`
}

// ToModel parses the date and time tokens. The booking id and the
// denormalized room name are filled in later: the id belongs to the
// ledger, the name to the registry lookup.
func (c *CreateBookingRequest) ToModel() (model.Booking, error) {
	if _, err := time.Parse(constant.DateFormat, c.Date); err != nil {
		return model.Booking{}, err
	}

	startTime, err := model.ParseClock(c.StartTime)
	if err != nil {
		return model.Booking{}, err
	}

	endTime, err := model.ParseClock(c.EndTime)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		RoomID:       c.RoomID,
		CustomerName: c.CustomerName,
		Date:         c.Date,
		StartTime:    startTime,
		EndTime:      endTime,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}, nil
}

type BookingResponse struct {
	ID           int    `json:"id"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	RoomID       int    `json:"roomId"`
	RoomName     string `json:"roomName"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerName = model.CustomerName
	r.Date = model.Date
	r.StartTime = model.StartTime.Raw
	r.EndTime = model.EndTime.Raw
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
}

func BookingResponses(models []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

type AvailabilityRequest struct {
	RoomID    int    `json:"roomId"    validate:"required,gt=0"`
	Date      string `json:"date"      validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime"   validate:"required"`
}

type AvailabilityResponse struct {
	RoomID    int    `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}
