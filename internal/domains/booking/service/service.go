package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"roombook/infras/otel"
	"roombook/internal/domains/booking/model"
	"roombook/internal/domains/booking/model/dto"
	"roombook/internal/domains/booking/repository"
	customerRepo "roombook/internal/domains/customer/repository"
	roomRepo "roombook/internal/domains/room/repository"
	"roombook/shared/constant"
	"roombook/shared/failure"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) []dto.BookingResponse
	Get(ctx context.Context, id int) (dto.BookingResponse, error)
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	otel         otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, customerRepo customerRepo.Customer, otl otel.Otel) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		otel:         otl,
	}
}

// Create books a room for the requested window. The referenced room must
// exist, and the window must not overlap any booking of the same room on
// the same date. A previously unseen customer name is added to the
// directory as a side effect.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	room, found := s.roomRepo.FindByID(ctx, req.RoomID)
	if !found {
		log.Error().Int("roomId", req.RoomID).Msg("room not found")

		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	draft.RoomName = room.Name

	booking, err := s.repo.Insert(ctx, draft)
	if err != nil {
		if errors.Is(err, model.ErrWindowTaken) {
			return res, failure.Conflict(model.ErrWindowTaken.Error()) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.customerRepo.Ensure(ctx, booking.CustomerName)

	log.Info().
		Int("id", booking.ID).
		Str("roomName", booking.RoomName).
		Str("customerName", booking.CustomerName).
		Msg("booking created")

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) []dto.BookingResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.BookingResponses(s.repo.All(ctx))
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, found := s.repo.FindByID(ctx, id)
	if !found {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// Availability runs the overlap check without writing anything.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.roomRepo.Exist(ctx, req.RoomID) {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	startTime, err := model.ParseClock(req.StartTime)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) // nolint:wrapcheck
	}

	endTime, err := model.ParseClock(req.EndTime)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) // nolint:wrapcheck
	}

	res = dto.AvailabilityResponse{
		RoomID:    req.RoomID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: s.repo.Available(ctx, req.RoomID, req.Date, model.Window{Start: startTime.Minutes, End: endTime.Minutes}),
	}

	return res, nil
}
