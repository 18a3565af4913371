package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gametechlabs/stock-api/internal/application/dto"
	"github.com/gametechlabs/stock-api/internal/application/usecase"
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/infrastructure/memory"
)

func seededProductUseCase(t *testing.T) (*usecase.ProductUseCase, *memory.Store, string) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, memory.Seed(store))

	warehouseRepo := memory.NewWarehouseRepository(store)
	warehouses, err := warehouseRepo.List()
	require.NoError(t, err)
	require.Len(t, warehouses, 1)

	uc := usecase.NewProductUseCase(memory.NewProductRepository(store), warehouseRepo)
	return uc, store, warehouses[0].ID
}

func TestCreate_CodigosMonotonicosDesdeP007(t *testing.T) {
	uc, _, whID := seededProductUseCase(t)

	// El catálogo demo deja el contador en 6; los siguientes códigos son P007, P008, ...
	for i := 0; i < 4; i++ {
		out, err := uc.Create(dto.CreateProductRequest{
			Name:            fmt.Sprintf("Producto nuevo %d", i),
			Category:        "Hardware",
			MinThreshold:    2,
			InitialQuantity: 10,
			WarehouseID:     whID,
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("P%03d", 7+i), out.Code)
	}
}

func TestCreate_ValidaEntrada(t *testing.T) {
	uc, _, whID := seededProductUseCase(t)

	cases := []struct {
		name string
		in   dto.CreateProductRequest
		want error
	}{
		{"sin nombre", dto.CreateProductRequest{Category: "Audio", WarehouseID: whID}, domain.ErrInvalidInput},
		{"umbral negativo", dto.CreateProductRequest{Name: "X", MinThreshold: -1, WarehouseID: whID}, domain.ErrInvalidInput},
		{"cantidad inicial negativa", dto.CreateProductRequest{Name: "X", InitialQuantity: -5, WarehouseID: whID}, domain.ErrInvalidInput},
		{"depósito inexistente", dto.CreateProductRequest{Name: "X", WarehouseID: "no-existe"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestList_OrdenadoPorNombreOCodigo(t *testing.T) {
	uc, _, _ := seededProductUseCase(t)

	byName, err := uc.List(usecase.SortByName)
	require.NoError(t, err)
	require.Len(t, byName, 6)
	for i := 1; i < len(byName); i++ {
		assert.LessOrEqual(t, byName[i-1].Name, byName[i].Name)
	}

	byCode, err := uc.List(usecase.SortByCode)
	require.NoError(t, err)
	for i := 1; i < len(byCode); i++ {
		assert.Less(t, byCode[i-1].Code, byCode[i].Code)
	}
}

func TestList_NoReordenaElRegistro(t *testing.T) {
	uc, store, _ := seededProductUseCase(t)

	// Listar ordenado por nombre no debe alterar el orden interno de alta.
	_, err := uc.List(usecase.SortByName)
	require.NoError(t, err)

	internal, err := memory.NewProductRepository(store).List()
	require.NoError(t, err)
	require.Len(t, internal, 6)
	for i, code := range []string{"P001", "P002", "P003", "P004", "P005", "P006"} {
		assert.Equal(t, code, internal[i].Code, "el orden de alta debe conservarse")
	}
}

func TestGetByCode(t *testing.T) {
	uc, _, _ := seededProductUseCase(t)

	out, err := uc.GetByCode("P003")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Monitor Samsung 24\" Curvo FHD", out.Name)
	assert.False(t, out.Critical, "12 >= mínimo 5")

	missing, err := uc.GetByCode("P999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
