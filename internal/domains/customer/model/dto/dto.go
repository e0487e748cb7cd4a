package dto

import (
	bookingModel "roombook/internal/domains/booking/model"
	bookingDto "roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/customer/model"
)

type CustomerResponse struct {
	Name string `json:"name"`
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.Name = model.Name
}

func CustomerResponses(models []model.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(models))
	for i, mod := range models {
		responses[i].FromModel(mod)
	}

	return responses
}

// CustomerStatusResponse is the read-side join of a customer with the
// first booking carrying their name; all fields but the name stay null
// for customers without bookings. Only the first booking is surfaced.
type CustomerStatusResponse struct {
	CustomerName string  `json:"customerName"`
	RoomName     *string `json:"roomName"`
	Date         *string `json:"date"`
	StartTime    *string `json:"startTime"`
	EndTime      *string `json:"endTime"`
}

func (r *CustomerStatusResponse) FromModels(customer model.Customer, booking *bookingModel.Booking) {
	r.CustomerName = customer.Name

	if booking == nil {
		return
	}

	r.RoomName = &booking.RoomName
	r.Date = &booking.Date
	r.StartTime = &booking.StartTime.Raw
	r.EndTime = &booking.EndTime.Raw
}

// BookingCountResponse carries every booking made under one exact name.
type BookingCountResponse struct {
	CustomerName string                       `json:"customerName"`
	BookingCount int                          `json:"bookingCount"`
	Bookings     []bookingDto.BookingResponse `json:"bookings"`
}

func (r *BookingCountResponse) FromModels(customerName string, bookings []bookingModel.Booking) {
	r.CustomerName = customerName
	r.BookingCount = len(bookings)
	r.Bookings = bookingDto.BookingResponses(bookings)
}
