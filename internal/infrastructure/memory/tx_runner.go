package memory

import (
	"context"
	"fmt"

	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// TxRunner implementa inventory.TxRunner sobre el Store: toma el lock una sola vez
// y ejecuta fn con vistas de los repositorios que no vuelven a tomarlo. Así la
// secuencia verificar-mutar-agregar de un movimiento es atómica respecto de
// cualquier otro caller del Store.
//
// No hay rollback: los casos de uso validan antes de mutar y el agregado al
// historial no puede fallar, por lo que un error deja el estado intacto.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn bajo el lock del Store.
func (t *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tx: %w", err)
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&txMovementRepository{s: t.s}, &txProductRepository{s: t.s})
}

// ── vistas sin lock: válidas solo dentro de Run ──────────────────────────────
//
// A diferencia de los repositorios públicos, estas vistas operan sobre el estado
// vivo del Store: un movimiento necesita mutar el producto real bajo el lock.

type txMovementRepository struct {
	s *Store
}

func (r *txMovementRepository) Append(movement entity.Movement) error {
	r.s.appendMovement(movement)
	return nil
}

func (r *txMovementRepository) History() ([]entity.Movement, error) {
	return r.s.movementHistory(), nil
}

type txProductRepository struct {
	s *Store
}

func (r *txProductRepository) Create(product *entity.Product) error {
	r.s.addProduct(product)
	return nil
}

func (r *txProductRepository) GetByCode(code string) (*entity.Product, error) {
	return r.s.productByCode(code), nil
}

func (r *txProductRepository) List() ([]*entity.Product, error) {
	return r.s.productList(), nil
}

func (r *txProductRepository) NextCode() string {
	r.s.lastCode++
	return fmt.Sprintf("P%03d", r.s.lastCode)
}
