package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"roombook/infras/otel"
	bookingRepo "roombook/internal/domains/booking/repository"
	"roombook/internal/domains/room/model/dto"
	"roombook/internal/domains/room/repository"
	"roombook/shared/constant"
	"roombook/shared/failure"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context) []dto.RoomResponse
	Get(ctx context.Context, id int) (dto.RoomResponse, error)
	WithBookedStatus(ctx context.Context) []dto.RoomStatusResponse
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Room, bookingRepo bookingRepo.Booking, otl otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		otel:        otl,
	}
}

// Create registers a new room. Field presence is already enforced at the
// handler boundary; the registry assigns id and name.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room := s.repo.Insert(ctx, req.ToModel())

	log.Info().Str("roomName", room.Name).Int("id", room.ID).Msg("room registered")

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) []dto.RoomResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.RoomResponses(s.repo.All(ctx))
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, found := s.repo.FindByID(ctx, id)
	if !found {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	res.FromModel(room)

	return res, nil
}

// WithBookedStatus joins every room against the first booking in ledger
// order that references it. Later bookings of the same room are not
// surfaced by this view.
func (s *serviceImpl) WithBookedStatus(ctx context.Context) []dto.RoomStatusResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WithBookedStatus")
	defer scope.End()

	rooms := s.repo.All(ctx)

	views := make([]dto.RoomStatusResponse, len(rooms))
	for i, room := range rooms {
		if booking, found := s.bookingRepo.FirstByRoom(ctx, room.ID); found {
			views[i].FromModels(room, &booking)

			continue
		}

		views[i].FromModels(room, nil)
	}

	return views
}
