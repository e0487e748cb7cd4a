package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	bookingModel "roombook/internal/domains/booking/model"
	bookingRepo "roombook/internal/domains/booking/repository"
	customerRepo "roombook/internal/domains/customer/repository"
	roomModel "roombook/internal/domains/room/model"
	roomRepo "roombook/internal/domains/room/repository"
	gModel "roombook/shared/model"
	"roombook/shared/timezone"
)

// Seeder loads the initial rooms, bookings and customers into the
// in-memory stores on startup.
type Seeder struct {
	roomRepo     roomRepo.Room
	bookingRepo  bookingRepo.Booking
	customerRepo customerRepo.Customer
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, customerRepo customerRepo.Customer) Seeder {
	return Seeder{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
	}
}

type seedBooking struct {
	roomIndex    int
	customerName string
	date         string
	startTime    string
	endTime      string
}

// Load populates empty stores with the default dataset. Calling it on a
// populated store would shift the sequential ids, so it must run once,
// before the server starts serving.
func (s Seeder) Load(ctx context.Context) error {
	rooms := []roomModel.Room{
		{
			NumberOfSeats: 50,
			Amenities:     []string{"Projector", "Whiteboard"},
			PricePerHour:  100,
			Metadata:      gModel.Metadata{CreatedAt: timezone.Now()},
		},
		{
			NumberOfSeats: 25,
			Amenities:     []string{"Blackboard"},
			PricePerHour:  50,
			Metadata:      gModel.Metadata{CreatedAt: timezone.Now()},
		},
	}

	inserted := make([]roomModel.Room, len(rooms))
	for i, room := range rooms {
		inserted[i] = s.roomRepo.Insert(ctx, room)
	}

	bookings := []seedBooking{
		{roomIndex: 0, customerName: "Benazir", date: "2023-09-14", startTime: "09:00 AM", endTime: "11:00 AM"},
		{roomIndex: 1, customerName: "Reema", date: "2023-09-15", startTime: "10:00 AM", endTime: "12:00 PM"},
	}

	for _, b := range bookings {
		startTime, err := bookingModel.ParseClock(b.startTime)
		if err != nil {
			return fmt.Errorf("parsing seed start time %q: %w", b.startTime, err)
		}

		endTime, err := bookingModel.ParseClock(b.endTime)
		if err != nil {
			return fmt.Errorf("parsing seed end time %q: %w", b.endTime, err)
		}

		room := inserted[b.roomIndex]

		if _, err := s.bookingRepo.Insert(ctx, bookingModel.Booking{
			RoomID:       room.ID,
			RoomName:     room.Name,
			CustomerName: b.customerName,
			Date:         b.date,
			StartTime:    startTime,
			EndTime:      endTime,
			Metadata:     gModel.Metadata{CreatedAt: timezone.Now()},
		}); err != nil {
			return fmt.Errorf("seeding booking for %s: %w", b.customerName, err)
		}

		s.customerRepo.Ensure(ctx, b.customerName)
	}

	log.Info().
		Int("rooms", len(inserted)).
		Int("bookings", len(bookings)).
		Msg("seed data loaded")

	return nil
}
