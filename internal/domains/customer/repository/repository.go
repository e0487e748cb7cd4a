package repository

import (
	"context"
	"errors"

	"roombook/infras/otel"
	"roombook/internal/domains/customer/model"
	gModel "roombook/shared/model"
	gRepo "roombook/shared/repository"
	"roombook/shared/timezone"
)

// errAlreadyListed makes InsertIf a no-op for known names; it never
// leaves this package.
var errAlreadyListed = errors.New("customer already listed")

type Customer interface {
	Ensure(ctx context.Context, name string) model.Customer
	Exist(ctx context.Context, name string) bool
	All(ctx context.Context) []model.Customer
	Count(ctx context.Context) int
}

type repositoryImpl struct {
	store *gRepo.Store[model.Customer]
	otel  otel.Otel
}

func New(otl otel.Otel) Customer {
	return &repositoryImpl{
		store: gRepo.NewStore[model.Customer](model.EntityName, otl),
		otel:  otl,
	}
}

// Ensure adds the name to the directory unless an entry with exactly
// that name already exists. Idempotent; returns the directory entry
// either way.
func (repo *repositoryImpl) Ensure(ctx context.Context, name string) model.Customer {
	customer, err := repo.store.InsertIf(ctx,
		func(items []model.Customer) error {
			for _, item := range items {
				if item.Name == name {
					return errAlreadyListed
				}
			}

			return nil
		},
		func(int) model.Customer {
			return model.Customer{
				Name: name,
				Metadata: gModel.Metadata{
					CreatedAt: timezone.Now(),
				},
			}
		},
	)
	if err != nil {
		existing, _ := repo.store.Find(ctx, func(item model.Customer) bool {
			return item.Name == name
		})

		return existing
	}

	return customer
}

func (repo *repositoryImpl) Exist(ctx context.Context, name string) bool {
	return repo.store.Exist(ctx, func(item model.Customer) bool {
		return item.Name == name
	})
}

func (repo *repositoryImpl) All(ctx context.Context) []model.Customer {
	return repo.store.All(ctx)
}

func (repo *repositoryImpl) Count(ctx context.Context) int {
	return repo.store.Count(ctx)
}
