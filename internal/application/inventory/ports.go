package inventory

import (
	"context"

	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// TxRunner ejecuta fn con acceso exclusivo al registro, pasando repositorios atados
// a esa sección crítica. Garantiza que verificar-mutar-agregar sea atómico por
// producto: el motor de movimientos depende de esta exclusión.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
