package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/infras/otel"
	bookingRepository "roombook/internal/domains/booking/repository"
	customerRepository "roombook/internal/domains/customer/repository"
	roomRepository "roombook/internal/domains/room/repository"
	"roombook/internal/seed"
)

func TestSeeder_Load(t *testing.T) {
	ctx := context.Background()
	noop := otel.NewNoop()

	roomRepo := roomRepository.New(noop)
	bookingRepo := bookingRepository.New(noop)
	customerRepo := customerRepository.New(noop)

	seeder := seed.New(roomRepo, bookingRepo, customerRepo)

	err := seeder.Load(ctx)
	assert.NoError(t, err)

	rooms := roomRepo.All(ctx)
	assert.Len(t, rooms, 2)
	assert.Equal(t, "Room 1", rooms[0].Name)
	assert.Equal(t, 50, rooms[0].NumberOfSeats)
	assert.Equal(t, []string{"Projector", "Whiteboard"}, rooms[0].Amenities)
	assert.Equal(t, "Room 2", rooms[1].Name)
	assert.Equal(t, 25, rooms[1].NumberOfSeats)

	bookings := bookingRepo.All(ctx)
	assert.Len(t, bookings, 2)
	assert.Equal(t, 1, bookings[0].ID)
	assert.Equal(t, "Benazir", bookings[0].CustomerName)
	assert.Equal(t, "Room 1", bookings[0].RoomName)
	assert.Equal(t, "2023-09-14", bookings[0].Date)
	assert.Equal(t, "09:00 AM", bookings[0].StartTime.Raw)
	assert.Equal(t, "11:00 AM", bookings[0].EndTime.Raw)
	assert.Equal(t, 2, bookings[1].ID)
	assert.Equal(t, "Reema", bookings[1].CustomerName)
	assert.Equal(t, "Room 2", bookings[1].RoomName)

	customers := customerRepo.All(ctx)
	assert.Len(t, customers, 2)
	assert.Equal(t, "Benazir", customers[0].Name)
	assert.Equal(t, "Reema", customers[1].Name)
}
