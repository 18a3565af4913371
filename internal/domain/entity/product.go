package entity

import (
	"fmt"
	"time"

	"github.com/gametechlabs/stock-api/internal/domain"
)

// Product representa un producto del stock con su nivel actual y su mínimo recomendado.
// El código (ej. P001) lo asigna el registro al crearlo y nunca cambia.
// Quantity solo se modifica aplicando movimientos; las salidas nunca lo dejan negativo,
// los ajustes sí pueden (son una corrección manual, ver ApplyAdjustment).
type Product struct {
	Code         string
	Name         string
	Category     string
	MinThreshold int
	Quantity     int
	Warehouse    *Warehouse
	CreatedAt    time.Time
}

// ApplyInbound suma una entrada de unidades al stock actual.
func (p *Product) ApplyInbound(quantity int) {
	p.Quantity += quantity
}

// ApplyOutbound resta una salida de unidades. Devuelve ErrInsufficientStock si la
// cantidad pedida supera el stock actual; en ese caso el producto queda intacto.
func (p *Product) ApplyOutbound(quantity int) error {
	if quantity > p.Quantity {
		return domain.ErrInsufficientStock
	}
	p.Quantity -= quantity
	return nil
}

// ApplyAdjustment aplica un ajuste manual, positivo o negativo, sin piso.
// Un ajuste puede dejar el stock negativo (faltante conocido pendiente de corrección).
func (p *Product) ApplyAdjustment(delta int) {
	p.Quantity += delta
}

// IsCritical indica si el stock actual está por debajo del mínimo recomendado.
func (p *Product) IsCritical() bool {
	return p.Quantity < p.MinThreshold
}

// Description devuelve "P001 - Nombre (Categoría)".
func (p *Product) Description() string {
	return fmt.Sprintf("%s - %s (%s)", p.Code, p.Name, p.Category)
}
