package entity

import "time"

// Warehouse representa un depósito donde se almacenan productos.
// Capacity es informativa: este dominio no la valida contra el stock.
type Warehouse struct {
	ID        string
	Address   string
	Capacity  int
	CreatedAt time.Time
}
