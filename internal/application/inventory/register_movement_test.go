package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gametechlabs/stock-api/internal/application/inventory"
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/infrastructure/memory"
)

// fixture arma un registro en memoria con un producto (qty=10, min=5) y un usuario.
type fixture struct {
	store *memory.Store
	uc    *inventory.RegisterMovementUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()

	productRepo := memory.NewProductRepository(store)
	require.NoError(t, productRepo.Create(&entity.Product{
		Code:         "P001",
		Name:         "Mouse Logitech G502 HERO",
		Category:     "Periférico",
		MinThreshold: 5,
		Quantity:     10,
		CreatedAt:    time.Now(),
	}))

	userRepo := memory.NewUserRepository(store)
	require.NoError(t, userRepo.Create(&entity.User{
		ID:       "u-1",
		Username: "admin",
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	}))

	return &fixture{
		store: store,
		uc:    inventory.NewRegisterMovementUseCase(memory.NewTxRunner(store), userRepo),
	}
}

func (f *fixture) productQuantity(t *testing.T, code string) int {
	t.Helper()
	p, err := memory.NewProductRepository(f.store).GetByCode(code)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Quantity
}

func (f *fixture) historyLen(t *testing.T) int {
	t.Helper()
	h, err := memory.NewMovementRepository(f.store).History()
	require.NoError(t, err)
	return len(h)
}

func TestRegisterMovement_EntradaSumaYQuedaEnHistorial(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductCode:   "P001",
		Type:          entity.MovementTypeIN,
		Quantity:      15,
		ActorUsername: "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, 25, out.NewQuantity)
	assert.False(t, out.Critical)
	assert.Equal(t, "admin", out.Actor)
	assert.Equal(t, 1, f.historyLen(t))
}

func TestRegisterMovement_SalidaRechazadaNoDejaRastro(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductCode:   "P001",
		Type:          entity.MovementTypeOUT,
		Quantity:      11,
		ActorUsername: "admin",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, f.productQuantity(t, "P001"), "el producto queda intacto")
	assert.Equal(t, 0, f.historyLen(t), "un movimiento rechazado nunca entra al historial")
}

// Escenario completo: salida ok, salida rechazada, ajuste negativo con aviso de
// stock crítico; el historial termina con exactamente dos entradas.
func TestRegisterMovement_EscenarioCompleto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.RegisterMovement(ctx, inventory.MovementInput{
		ProductCode: "P001", Type: entity.MovementTypeOUT, Quantity: 3, ActorUsername: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, out.NewQuantity)
	assert.False(t, out.Critical)

	_, err = f.uc.RegisterMovement(ctx, inventory.MovementInput{
		ProductCode: "P001", Type: entity.MovementTypeOUT, Quantity: 5, ActorUsername: "admin",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 7, f.productQuantity(t, "P001"))

	out, err = f.uc.RegisterMovement(ctx, inventory.MovementInput{
		ProductCode: "P001", Type: entity.MovementTypeADJUSTMENT, Quantity: -3,
		Justification: "merma detectada en recuento", ActorUsername: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, out.NewQuantity)
	assert.True(t, out.Critical, "4 < mínimo 5: debe avisar stock crítico")

	assert.Equal(t, 2, f.historyLen(t), "la salida rechazada nunca se agregó")
}

func TestRegisterMovement_HistorialEnOrdenDeAplicacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	steps := []inventory.MovementInput{
		{ProductCode: "P001", Type: entity.MovementTypeIN, Quantity: 5, ActorUsername: "admin"},
		{ProductCode: "P001", Type: entity.MovementTypeOUT, Quantity: 2, ActorUsername: "admin"},
		{ProductCode: "P001", Type: entity.MovementTypeADJUSTMENT, Quantity: 1, Justification: "recuento", ActorUsername: "admin"},
	}
	for _, s := range steps {
		_, err := f.uc.RegisterMovement(ctx, s)
		require.NoError(t, err)
	}

	history, err := memory.NewMovementRepository(f.store).History()
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, entity.MovementTypeIN, history[0].Type())
	assert.Equal(t, entity.MovementTypeOUT, history[1].Type())
	assert.Equal(t, entity.MovementTypeADJUSTMENT, history[2].Type())
}

func TestRegisterMovement_EntradasInvalidas(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input inventory.MovementInput
		want  error
	}{
		{"tipo desconocido", inventory.MovementInput{ProductCode: "P001", Type: "TRANSFER", Quantity: 1, ActorUsername: "admin"}, domain.ErrInvalidInput},
		{"entrada con cantidad cero", inventory.MovementInput{ProductCode: "P001", Type: entity.MovementTypeIN, Quantity: 0, ActorUsername: "admin"}, domain.ErrInvalidInput},
		{"salida con cantidad negativa", inventory.MovementInput{ProductCode: "P001", Type: entity.MovementTypeOUT, Quantity: -2, ActorUsername: "admin"}, domain.ErrInvalidInput},
		{"ajuste sin justificación", inventory.MovementInput{ProductCode: "P001", Type: entity.MovementTypeADJUSTMENT, Quantity: -1, ActorUsername: "admin"}, domain.ErrInvalidInput},
		{"ajuste con delta cero", inventory.MovementInput{ProductCode: "P001", Type: entity.MovementTypeADJUSTMENT, Quantity: 0, Justification: "x", ActorUsername: "admin"}, domain.ErrInvalidInput},
		{"producto inexistente", inventory.MovementInput{ProductCode: "P999", Type: entity.MovementTypeIN, Quantity: 1, ActorUsername: "admin"}, domain.ErrNotFound},
		{"actor inexistente", inventory.MovementInput{ProductCode: "P001", Type: entity.MovementTypeIN, Quantity: 1, ActorUsername: "nadie"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.RegisterMovement(ctx, tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	assert.Equal(t, 0, f.historyLen(t))
	assert.Equal(t, 10, f.productQuantity(t, "P001"))
}
