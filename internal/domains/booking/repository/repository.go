package repository

import (
	"context"

	"roombook/infras/otel"
	"roombook/internal/domains/booking/model"
	gRepo "roombook/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, draft model.Booking) (model.Booking, error)
	Available(ctx context.Context, roomID int, date string, win model.Window) bool
	FindByID(ctx context.Context, id int) (model.Booking, bool)
	FirstByRoom(ctx context.Context, roomID int) (model.Booking, bool)
	FirstByCustomer(ctx context.Context, customerName string) (model.Booking, bool)
	ByCustomer(ctx context.Context, customerName string) []model.Booking
	All(ctx context.Context) []model.Booking
}

type repositoryImpl struct {
	store *gRepo.Store[model.Booking]
	otel  otel.Otel
}

func New(otl otel.Otel) Booking {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Booking](model.EntityName, otl),
		otel:  otl,
	}
}

// Insert appends the draft with the next sequential id. The availability
// check runs inside the store's critical section, so a concurrent insert
// cannot slip an overlapping window between check and append.
func (repo *repositoryImpl) Insert(ctx context.Context, draft model.Booking) (model.Booking, error) {
	return repo.store.InsertIf(ctx,
		func(items []model.Booking) error {
			if !model.Available(items, draft.RoomID, draft.Date, draft.Window()) {
				return model.ErrWindowTaken
			}

			return nil
		},
		func(id int) model.Booking {
			draft.ID = id

			return draft
		},
	)
}

func (repo *repositoryImpl) Available(ctx context.Context, roomID int, date string, win model.Window) bool {
	return model.Available(repo.store.All(ctx), roomID, date, win)
}

func (repo *repositoryImpl) FindByID(ctx context.Context, id int) (model.Booking, bool) {
	return repo.store.Find(ctx, func(booking model.Booking) bool {
		return booking.ID == id
	})
}

func (repo *repositoryImpl) FirstByRoom(ctx context.Context, roomID int) (model.Booking, bool) {
	return repo.store.Find(ctx, func(booking model.Booking) bool {
		return booking.RoomID == roomID
	})
}

func (repo *repositoryImpl) FirstByCustomer(ctx context.Context, customerName string) (model.Booking, bool) {
	return repo.store.Find(ctx, func(booking model.Booking) bool {
		return booking.CustomerName == customerName
	})
}

func (repo *repositoryImpl) ByCustomer(ctx context.Context, customerName string) []model.Booking {
	return repo.store.Filter(ctx, func(booking model.Booking) bool {
		return booking.CustomerName == customerName
	})
}

func (repo *repositoryImpl) All(ctx context.Context) []model.Booking {
	return repo.store.All(ctx)
}
