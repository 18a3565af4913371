package repository

import "github.com/gametechlabs/stock-api/internal/domain/entity"

// WarehouseRepository define el puerto de almacenamiento para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
