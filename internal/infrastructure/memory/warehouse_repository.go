package memory

import (
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// WarehouseRepository implementa repository.WarehouseRepository sobre el Store.
type WarehouseRepository struct {
	s *Store
}

// NewWarehouseRepository construye el repositorio.
func NewWarehouseRepository(s *Store) *WarehouseRepository {
	return &WarehouseRepository{s: s}
}

// Create agrega el depósito.
func (r *WarehouseRepository) Create(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if warehouse.ID == "" {
		return domain.ErrInvalidInput
	}
	r.s.addWarehouse(warehouse)
	return nil
}

// GetByID devuelve el depósito o nil si no existe.
func (r *WarehouseRepository) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.warehouseByID(id), nil
}

// List devuelve una copia de los depósitos en orden de alta.
func (r *WarehouseRepository) List() ([]*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.warehouseList(), nil
}

var _ repository.WarehouseRepository = (*WarehouseRepository)(nil)
