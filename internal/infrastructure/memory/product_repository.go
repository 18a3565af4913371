package memory

import (
	"fmt"

	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// ProductRepository implementa repository.ProductRepository sobre el Store.
// Las lecturas devuelven instantáneas de valor: el estado vivo lo muta solo el
// TxRunner, y ningún lector fuera del lock comparte sus punteros.
type ProductRepository struct {
	s *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

// cloneProduct copia el producto por valor. El puntero al Warehouse se comparte:
// un depósito es inmutable después del alta.
func cloneProduct(p *entity.Product) *entity.Product {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Create agrega el producto al catálogo guardando una copia propia; el puntero
// del caller no queda compartido. El código debe venir ya acuñado.
func (r *ProductRepository) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if product.Code == "" {
		return domain.ErrInvalidInput
	}
	if r.s.productByCode(product.Code) != nil {
		return domain.ErrDuplicate
	}
	r.s.addProduct(cloneProduct(product))
	return nil
}

// GetByCode devuelve una instantánea del producto, o nil si no existe.
func (r *ProductRepository) GetByCode(code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return cloneProduct(r.s.productByCode(code)), nil
}

// List devuelve instantáneas del catálogo en orden de alta.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	products := r.s.productList()
	out := make([]*entity.Product, len(products))
	for i, p := range products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

// NextCode acuña el siguiente código: P001, P002, ... Nunca se reutiliza un
// código, aunque el contador haya sido sembrado por datos demo.
func (r *ProductRepository) NextCode() string {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.lastCode++
	return fmt.Sprintf("P%03d", r.s.lastCode)
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
