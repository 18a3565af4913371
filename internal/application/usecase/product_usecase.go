package usecase

import (
	"sort"
	"time"

	"github.com/gametechlabs/stock-api/internal/application/dto"
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// Criterios de ordenamiento para List.
const (
	SortByCode = "code"
	SortByName = "name"
)

// ProductUseCase alta y consulta del catálogo de productos.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, warehouseRepo repository.WarehouseRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, warehouseRepo: warehouseRepo}
}

// Create valida la entrada, acuña el código y da de alta el producto.
// Umbral mínimo y cantidad inicial negativos se rechazan con ErrInvalidInput.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.MinThreshold < 0 || in.InitialQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	product := &entity.Product{
		Code:         uc.productRepo.NextCode(),
		Name:         in.Name,
		Category:     in.Category,
		MinThreshold: in.MinThreshold,
		Quantity:     in.InitialQuantity,
		Warehouse:    warehouse,
		CreatedAt:    time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo ordenado por nombre o por código. Ordena una copia:
// listar es una consulta pura y nunca reordena el almacenamiento interno.
func (uc *ProductUseCase) List(sortBy string) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	switch sortBy {
	case SortByName:
		sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	default:
		sort.Slice(products, func(i, j int) bool { return products[i].Code < products[j].Code })
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// GetByCode devuelve el producto o nil si no existe.
func (uc *ProductUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	out := &dto.ProductResponse{
		Code:         p.Code,
		Name:         p.Name,
		Category:     p.Category,
		MinThreshold: p.MinThreshold,
		Quantity:     p.Quantity,
		Critical:     p.IsCritical(),
		CreatedAt:    p.CreatedAt,
	}
	if p.Warehouse != nil {
		out.Warehouse = p.Warehouse.Address
	}
	return out
}
