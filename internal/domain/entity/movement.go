package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gametechlabs/stock-api/internal/domain"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste manual con justificación
)

// Movement es un movimiento de stock ya construido y listo para aplicarse sobre su
// producto. El conjunto de variantes es cerrado: Inbound, Outbound y Adjustment son
// las únicas implementaciones. Una vez aplicado y registrado en el historial, un
// movimiento es inmutable: no se reaplica ni se retira.
type Movement interface {
	// Apply muta la cantidad del producto según la regla de la variante.
	// Solo Outbound puede fallar (ErrInsufficientStock); en ese caso el
	// producto queda sin cambios.
	Apply() error
	// Audit devuelve la línea de auditoría estable del movimiento.
	Audit() string

	ID() string
	Type() string
	Quantity() int
	Product() *Product
	Actor() *User
	Justification() string
	OccurredAt() time.Time
}

// movement agrupa los datos comunes a las tres variantes.
// La fecha se fija al construir y no cambia.
type movement struct {
	id            string
	kind          string
	quantity      int
	product       *Product
	actor         *User
	justification string
	occurredAt    time.Time
}

func (m *movement) ID() string            { return m.id }
func (m *movement) Type() string          { return m.kind }
func (m *movement) Quantity() int         { return m.quantity }
func (m *movement) Product() *Product     { return m.product }
func (m *movement) Actor() *User          { return m.actor }
func (m *movement) Justification() string { return m.justification }
func (m *movement) OccurredAt() time.Time { return m.occurredAt }

// Audit devuelve "[fecha] TIPO - product=P001 qty=5 actor=admin", más la
// justificación cuando existe (solo ajustes).
func (m *movement) Audit() string {
	line := fmt.Sprintf("[%s] %s - product=%s qty=%d actor=%s",
		m.occurredAt.Format("2006-01-02 15:04:05"), m.kind,
		m.product.Code, m.quantity, m.actor.Username)
	if m.justification != "" {
		line += fmt.Sprintf(" justification=%q", m.justification)
	}
	return line
}

func newMovement(kind string, quantity int, product *Product, actor *User, justification string) (movement, error) {
	if product == nil || actor == nil {
		return movement{}, domain.ErrInvalidInput
	}
	return movement{
		id:            uuid.New().String(),
		kind:          kind,
		quantity:      quantity,
		product:       product,
		actor:         actor,
		justification: justification,
		occurredAt:    time.Now(),
	}, nil
}

// Inbound es una entrada de unidades: suma la cantidad al stock, sin condiciones.
type Inbound struct {
	movement
}

// NewInbound construye una entrada. La cantidad debe ser positiva.
func NewInbound(quantity int, product *Product, actor *User) (*Inbound, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	base, err := newMovement(MovementTypeIN, quantity, product, actor, "")
	if err != nil {
		return nil, err
	}
	return &Inbound{movement: base}, nil
}

func (m *Inbound) Apply() error {
	m.product.ApplyInbound(m.quantity)
	return nil
}

// Outbound es una salida de unidades: resta la cantidad si hay stock suficiente.
type Outbound struct {
	movement
}

// NewOutbound construye una salida. La cantidad debe ser positiva; la verificación
// contra el stock disponible ocurre recién en Apply.
func NewOutbound(quantity int, product *Product, actor *User) (*Outbound, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	base, err := newMovement(MovementTypeOUT, quantity, product, actor, "")
	if err != nil {
		return nil, err
	}
	return &Outbound{movement: base}, nil
}

func (m *Outbound) Apply() error {
	return m.product.ApplyOutbound(m.quantity)
}

// Adjustment es una corrección manual con delta firmado y justificación obligatoria.
// Puede dejar el stock negativo; eso queda visible vía Product.IsCritical y el reporte.
type Adjustment struct {
	movement
}

// NewAdjustment construye un ajuste. El delta puede ser positivo o negativo pero no
// cero, y la justificación no puede estar vacía.
func NewAdjustment(delta int, product *Product, actor *User, justification string) (*Adjustment, error) {
	justification = strings.TrimSpace(justification)
	if delta == 0 || justification == "" {
		return nil, domain.ErrInvalidInput
	}
	base, err := newMovement(MovementTypeADJUSTMENT, delta, product, actor, justification)
	if err != nil {
		return nil, err
	}
	return &Adjustment{movement: base}, nil
}

func (m *Adjustment) Apply() error {
	m.product.ApplyAdjustment(m.quantity)
	return nil
}
