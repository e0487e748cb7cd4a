package service

import (
	"context"

	"roombook/infras/otel"
	bookingRepo "roombook/internal/domains/booking/repository"
	"roombook/internal/domains/customer/model/dto"
	"roombook/internal/domains/customer/repository"
	"roombook/shared/constant"
)

type Customer interface {
	GetAll(ctx context.Context) []dto.CustomerResponse
	WithBookedStatus(ctx context.Context) []dto.CustomerStatusResponse
	BookingCount(ctx context.Context, customerName string) dto.BookingCountResponse
}

type serviceImpl struct {
	repo        repository.Customer
	bookingRepo bookingRepo.Booking
	otel        otel.Otel
}

func New(repo repository.Customer, bookingRepo bookingRepo.Booking, otl otel.Otel) Customer {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		otel:        otl,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) []dto.CustomerResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()

	return dto.CustomerResponses(s.repo.All(ctx))
}

// WithBookedStatus joins every known customer against the first booking
// in ledger order carrying their name. Further bookings of the same
// customer are not surfaced by this view.
func (s *serviceImpl) WithBookedStatus(ctx context.Context) []dto.CustomerStatusResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WithBookedStatus")
	defer scope.End()

	customers := s.repo.All(ctx)

	views := make([]dto.CustomerStatusResponse, len(customers))
	for i, customer := range customers {
		if booking, found := s.bookingRepo.FirstByCustomer(ctx, customer.Name); found {
			views[i].FromModels(customer, &booking)

			continue
		}

		views[i].FromModels(customer, nil)
	}

	return views
}

// BookingCount collects every booking made under the exact name. An
// unknown or empty name yields a zero count, not an error.
func (s *serviceImpl) BookingCount(ctx context.Context, customerName string) dto.BookingCountResponse {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookingCount")
	defer scope.End()

	res := dto.BookingCountResponse{}
	res.FromModels(customerName, s.bookingRepo.ByCustomer(ctx, customerName))

	return res
}
