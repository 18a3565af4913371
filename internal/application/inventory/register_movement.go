package inventory

import (
	"context"

	"github.com/gametechlabs/stock-api/internal/application/dto"
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (IN, OUT, ADJUSTMENT) de
// forma atómica: la validación, la mutación del producto y el agregado al historial
// ocurren dentro del TxRunner. Un movimiento rechazado nunca entra al historial y
// deja el producto exactamente como estaba.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	userRepo repository.UserRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, userRepo repository.UserRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, userRepo: userRepo}
}

// MovementInput entrada para registrar un movimiento. El actor viene siempre
// explícito (del token); no existe una sesión global de usuario.
type MovementInput struct {
	ProductCode   string
	Type          string
	Quantity      int
	Justification string
	ActorUsername string
}

// RegisterMovement valida la entrada, construye la variante y la aplica.
// Devuelve el movimiento registrado con la cantidad resultante y el flag de
// stock crítico para que el caller pueda mostrar la advertencia.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*dto.MovementResponse, error) {
	switch input.Type {
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		if input.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if input.Quantity == 0 || input.Justification == "" {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.ProductCode == "" || input.ActorUsername == "" {
		return nil, domain.ErrInvalidInput
	}

	actor, err := uc.userRepo.FindByUsername(input.ActorUsername)
	if err != nil {
		return nil, err
	}
	if actor == nil {
		return nil, domain.ErrNotFound
	}

	var out dto.MovementResponse
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetByCode(input.ProductCode)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		var mov entity.Movement
		switch input.Type {
		case entity.MovementTypeIN:
			mov, err = entity.NewInbound(input.Quantity, product, actor)
		case entity.MovementTypeOUT:
			mov, err = entity.NewOutbound(input.Quantity, product, actor)
		case entity.MovementTypeADJUSTMENT:
			mov, err = entity.NewAdjustment(input.Quantity, product, actor, input.Justification)
		}
		if err != nil {
			return err
		}

		// Solo OUT puede fallar; en ese caso no se toca el producto ni el historial.
		if err := mov.Apply(); err != nil {
			return err
		}
		if err := movRepo.Append(mov); err != nil {
			return err
		}

		out = dto.MovementResponse{
			ID:          mov.ID(),
			Type:        mov.Type(),
			ProductCode: product.Code,
			Quantity:    mov.Quantity(),
			NewQuantity: product.Quantity,
			Critical:    product.IsCritical(),
			Actor:       actor.Username,
			OccurredAt:  mov.OccurredAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
