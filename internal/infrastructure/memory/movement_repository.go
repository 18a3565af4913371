package memory

import (
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// MovementRepository implementa repository.MovementRepository sobre el Store.
type MovementRepository struct {
	s *Store
}

// NewMovementRepository construye el repositorio.
func NewMovementRepository(s *Store) *MovementRepository {
	return &MovementRepository{s: s}
}

// Append agrega el movimiento al final del historial.
func (r *MovementRepository) Append(movement entity.Movement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.appendMovement(movement)
	return nil
}

// History devuelve una copia del historial en orden de aplicación.
func (r *MovementRepository) History() ([]entity.Movement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.movementHistory(), nil
}

var _ repository.MovementRepository = (*MovementRepository)(nil)
