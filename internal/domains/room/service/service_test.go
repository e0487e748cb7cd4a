package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/infras/otel"
	bookingModel "roombook/internal/domains/booking/model"
	bookingRepository "roombook/internal/domains/booking/repository"
	roomModel "roombook/internal/domains/room/model"
	"roombook/internal/domains/room/model/dto"
	"roombook/internal/domains/room/repository"
	"roombook/internal/domains/room/service"
	"roombook/shared/failure"
)

func newService(t *testing.T) (service.Room, bookingRepository.Booking) {
	t.Helper()

	noop := otel.NewNoop()
	bookingRepo := bookingRepository.New(noop)

	return service.New(repository.New(noop), bookingRepo, noop), bookingRepo
}

func TestRoomService_Create(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.CreateRoomRequest{
		NumberOfSeats: 50,
		Amenities:     []string{"Projector", "Whiteboard"},
		PricePerHour:  100,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Room 1", first.RoomName)

	second, err := svc.Create(ctx, dto.CreateRoomRequest{
		NumberOfSeats: 25,
		Amenities:     []string{"Blackboard"},
		PricePerHour:  50,
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "Room 2", second.RoomName)
}

func TestRoomService_Get(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateRoomRequest{
		NumberOfSeats: 50,
		Amenities:     []string{"Projector"},
		PricePerHour:  100,
	})
	assert.NoError(t, err)

	room, err := svc.Get(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.RoomName, room.RoomName)
	assert.Equal(t, []string{"Projector"}, room.Amenities)

	_, err = svc.Get(ctx, 99)
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_GetAll(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	assert.Empty(t, svc.GetAll(ctx))

	for range 3 {
		_, err := svc.Create(ctx, dto.CreateRoomRequest{
			NumberOfSeats: 10,
			Amenities:     []string{"Whiteboard"},
			PricePerHour:  20,
		})
		assert.NoError(t, err)
	}

	rooms := svc.GetAll(ctx)
	assert.Len(t, rooms, 3)
	assert.Equal(t, "Room 1", rooms[0].RoomName)
	assert.Equal(t, "Room 3", rooms[2].RoomName)
}

func TestRoomService_WithBookedStatus(t *testing.T) {
	svc, bookingRepo := newService(t)
	ctx := context.Background()

	for range 2 {
		_, err := svc.Create(ctx, dto.CreateRoomRequest{
			NumberOfSeats: 10,
			Amenities:     []string{"Whiteboard"},
			PricePerHour:  20,
		})
		assert.NoError(t, err)
	}

	start, err := bookingModel.ParseClock("09:00 AM")
	assert.NoError(t, err)

	end, err := bookingModel.ParseClock("11:00 AM")
	assert.NoError(t, err)

	_, err = bookingRepo.Insert(ctx, bookingModel.Booking{
		RoomID:       1,
		RoomName:     "Room 1",
		CustomerName: "Benazir",
		Date:         "2023-09-14",
		StartTime:    start,
		EndTime:      end,
	})
	assert.NoError(t, err)

	views := svc.WithBookedStatus(ctx)
	assert.Len(t, views, 2)

	booked := views[0]
	assert.Equal(t, "Room 1", booked.RoomName)
	assert.Equal(t, roomModel.StatusBooked, booked.BookedStatus)
	assert.NotNil(t, booked.CustomerName)
	assert.Equal(t, "Benazir", *booked.CustomerName)
	assert.NotNil(t, booked.StartTime)
	assert.Equal(t, "09:00 AM", *booked.StartTime)

	available := views[1]
	assert.Equal(t, "Room 2", available.RoomName)
	assert.Equal(t, roomModel.StatusAvailable, available.BookedStatus)
	assert.Nil(t, available.CustomerName)
	assert.Nil(t, available.Date)
}

// WithBookedStatus surfaces only the earliest booking of each room even
// when several exist.
func TestRoomService_WithBookedStatus_FirstBookingWins(t *testing.T) {
	svc, bookingRepo := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateRoomRequest{
		NumberOfSeats: 10,
		Amenities:     []string{"Whiteboard"},
		PricePerHour:  20,
	})
	assert.NoError(t, err)

	entries := []struct {
		customerName string
		date         string
	}{
		{customerName: "Benazir", date: "2023-09-14"},
		{customerName: "Reema", date: "2023-09-15"},
	}

	for _, entry := range entries {
		start, parseErr := bookingModel.ParseClock("09:00 AM")
		assert.NoError(t, parseErr)

		end, parseErr := bookingModel.ParseClock("11:00 AM")
		assert.NoError(t, parseErr)

		_, err = bookingRepo.Insert(ctx, bookingModel.Booking{
			RoomID:       1,
			RoomName:     "Room 1",
			CustomerName: entry.customerName,
			Date:         entry.date,
			StartTime:    start,
			EndTime:      end,
		})
		assert.NoError(t, err)
	}

	views := svc.WithBookedStatus(ctx)
	assert.Len(t, views, 1)
	assert.Equal(t, "Benazir", *views[0].CustomerName)
}
