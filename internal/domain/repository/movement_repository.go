package repository

import "github.com/gametechlabs/stock-api/internal/domain/entity"

// MovementRepository define el puerto del historial de movimientos (DIP).
// El historial es solo-agregado: orden de inserción = orden de aplicación,
// sin huecos, sin reordenamientos, sin borrado.
type MovementRepository interface {
	Append(movement entity.Movement) error
	// History devuelve una copia del historial en orden de aplicación.
	History() ([]entity.Movement, error)
}
