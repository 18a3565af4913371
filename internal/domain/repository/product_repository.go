package repository

import "github.com/gametechlabs/stock-api/internal/domain/entity"

// ProductRepository define el puerto de almacenamiento para Product (DIP).
// Las lecturas devuelven instantáneas: mutarlas u ordenarlas para presentación
// nunca altera el estado interno ni observa mutaciones concurrentes.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByCode(code string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	// NextCode acuña el siguiente código de producto (P001, P002, ...).
	// Estrictamente creciente; un código nunca se reutiliza.
	NextCode() string
}
