package model

import (
	"fmt"

	"roombook/shared/model"
)

const (
	EntityName = "room"

	FieldID            = "id"
	FieldName          = "roomName"
	FieldNumberOfSeats = "numberOfSeats"
	FieldAmenities     = "amenities"
	FieldPricePerHour  = "pricePerHour"
)

const (
	StatusBooked    = "Booked"
	StatusAvailable = "Available"
)

// Room is one bookable room. The name is always generated from the id;
// rooms are immutable after registration and never deleted.
type Room struct {
	ID            int
	Name          string
	NumberOfSeats int
	Amenities     []string
	PricePerHour  float64
	model.Metadata
}

// GeneratedName derives the registry-assigned room name.
func GeneratedName(id int) string {
	return fmt.Sprintf("Room %d", id)
}
