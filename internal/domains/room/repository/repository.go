package repository

import (
	"context"

	"roombook/infras/otel"
	"roombook/internal/domains/room/model"
	gRepo "roombook/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, draft model.Room) model.Room
	FindByID(ctx context.Context, id int) (model.Room, bool)
	Exist(ctx context.Context, id int) bool
	All(ctx context.Context) []model.Room
	Count(ctx context.Context) int
}

type repositoryImpl struct {
	store *gRepo.Store[model.Room]
	otel  otel.Otel
}

func New(otl otel.Otel) Room {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Room](model.EntityName, otl),
		otel:  otl,
	}
}

// Insert registers the draft under the next sequential id and the
// generated "Room {id}" name, both assigned inside the store lock.
func (repo *repositoryImpl) Insert(ctx context.Context, draft model.Room) model.Room {
	return repo.store.Insert(ctx, func(id int) model.Room {
		draft.ID = id
		draft.Name = model.GeneratedName(id)

		return draft
	})
}

func (repo *repositoryImpl) FindByID(ctx context.Context, id int) (model.Room, bool) {
	return repo.store.Find(ctx, func(room model.Room) bool {
		return room.ID == id
	})
}

func (repo *repositoryImpl) Exist(ctx context.Context, id int) bool {
	return repo.store.Exist(ctx, func(room model.Room) bool {
		return room.ID == id
	})
}

func (repo *repositoryImpl) All(ctx context.Context) []model.Room {
	return repo.store.All(ctx)
}

func (repo *repositoryImpl) Count(ctx context.Context) int {
	return repo.store.Count(ctx)
}
