package services

import (
	"testing"

	"flourshop/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(st *fakeProductStore) *ProductService {
	return NewProductService(st, "uploads", zerolog.Nop())
}

func validProductInput() *models.ProductInput {
	return &models.ProductInput{
		Name:     strPtr("Premium Wheat"),
		NameUrdu: strPtr("پریمیم گندم"),
		Price:    strPtr("4500"),
		Category: strPtr(models.CategoryWheat),
	}
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	svc := newProductService(newFakeProductStore())

	product, err := svc.Create(validProductInput())
	require.NoError(t, err)

	assert.Equal(t, models.UnitKg, product.Unit)
	assert.Equal(t, 0, product.Stock)
	assert.Equal(t, "", product.DescriptionEn)
	assert.Equal(t, "", product.DescriptionUrdu)
	assert.Equal(t, "", product.Image)
	assert.NotZero(t, product.ID)
}

func TestCreateProductValidation(t *testing.T) {
	svc := newProductService(newFakeProductStore())

	tests := []struct {
		name    string
		mutate  func(*models.ProductInput)
		message string
	}{
		{"missing name", func(in *models.ProductInput) { in.Name = nil }, "Product name is required"},
		{"missing urdu name", func(in *models.ProductInput) { in.NameUrdu = nil }, "Urdu name is required"},
		{"missing price", func(in *models.ProductInput) { in.Price = nil }, "Price is required"},
		{"bad category", func(in *models.ProductInput) { in.Category = strPtr("rice") }, "Category must be wheat or flour"},
		{"bad unit", func(in *models.ProductInput) { in.Unit = strPtr("ton") }, "Unit must be kg, maan or lb"},
		{"negative stock", func(in *models.ProductInput) { in.Stock = intPtr(-1) }, "Stock cannot be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validProductInput()
			tc.mutate(in)
			_, err := svc.Create(in)
			var validation ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.message, validation.Error())
		})
	}
}

func TestUpdateProductPartialMerge(t *testing.T) {
	st := newFakeProductStore()
	svc := newProductService(st)

	in := validProductInput()
	in.DescriptionEn = strPtr("Top quality grain")
	in.Unit = strPtr(models.UnitMaan)
	in.Stock = intPtr(100)
	created, err := svc.Create(in)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &models.ProductInput{Stock: intPtr(5)})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.NameUrdu, updated.NameUrdu)
	assert.Equal(t, created.DescriptionEn, updated.DescriptionEn)
	assert.Equal(t, created.Price, updated.Price)
	assert.Equal(t, created.Category, updated.Category)
	assert.Equal(t, created.Unit, updated.Unit)
}

func TestUpdateProductRevalidates(t *testing.T) {
	svc := newProductService(newFakeProductStore())

	created, err := svc.Create(validProductInput())
	require.NoError(t, err)

	_, err = svc.Update(created.ID, &models.ProductInput{Category: strPtr("rice")})
	var validation ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestGetProductNotFound(t *testing.T) {
	svc := newProductService(newFakeProductStore())

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	svc := newProductService(newFakeProductStore())

	created, err := svc.Create(validProductInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	// Deleting an absent id is an error, never a silent success.
	assert.ErrorIs(t, svc.Delete(created.ID), ErrProductNotFound)
}

func TestProductRoundTripPreservesCategoryAndUnit(t *testing.T) {
	svc := newProductService(newFakeProductStore())

	in := validProductInput()
	in.Unit = strPtr(models.UnitMaan)
	created, err := svc.Create(in)
	require.NoError(t, err)

	fetched, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryWheat, fetched.Category)
	assert.Equal(t, models.UnitMaan, fetched.Unit)
}
