package service

import (
	"context"
	"testing"

	"github.com/copdrey/resilience-backend/internal/domain"
	"github.com/copdrey/resilience-backend/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_Create_DefaultsActive(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	product, err := svc.Create(context.Background(), domain.CreateProductInput{
		Name:       "Pack 10 séances",
		Credits:    10,
		PriceCents: 9000,
	})

	require.NoError(t, err)
	assert.True(t, product.Active)
	assert.NotEmpty(t, product.ID)
}

func TestProductService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	cases := []domain.CreateProductInput{
		{Credits: 10, PriceCents: 9000},
		{Name: "Pack", Credits: 0, PriceCents: 9000},
		{Name: "Pack", Credits: 10, PriceCents: 0},
	}
	for _, input := range cases {
		_, err := svc.Create(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestProductService_List_ActiveFilter(t *testing.T) {
	repo := mocks.NewMockProductRepo(t)
	svc := NewProductService(repo)

	active := true
	products := []*domain.CreditProduct{{ID: "p1", Active: true}}
	repo.EXPECT().List(mock.Anything, &active).Return(products, nil)

	res, err := svc.List(context.Background(), &active)

	require.NoError(t, err)
	assert.Len(t, res, 1)
}
