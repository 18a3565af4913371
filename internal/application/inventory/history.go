package inventory

import (
	"context"

	"github.com/gametechlabs/stock-api/internal/application/dto"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// HistoryUseCase consulta el historial de auditoría de movimientos.
type HistoryUseCase struct {
	movRepo repository.MovementRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(movRepo repository.MovementRepository) *HistoryUseCase {
	return &HistoryUseCase{movRepo: movRepo}
}

// History devuelve el historial completo en orden de aplicación.
func (uc *HistoryUseCase) History(_ context.Context) ([]dto.HistoryEntryResponse, error) {
	movements, err := uc.movRepo.History()
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntryResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.HistoryEntryResponse{
			ID:            m.ID(),
			Type:          m.Type(),
			ProductCode:   m.Product().Code,
			Quantity:      m.Quantity(),
			Actor:         m.Actor().Username,
			Justification: m.Justification(),
			OccurredAt:    m.OccurredAt(),
			Audit:         m.Audit(),
		})
	}
	return out, nil
}
