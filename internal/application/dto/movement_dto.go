package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
// Quantity es positiva para IN/OUT; para ADJUSTMENT es un delta con signo y
// justification es obligatoria.
type RegisterMovementRequest struct {
	ProductCode   string `json:"product_code"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	Justification string `json:"justification,omitempty"`
}

// MovementResponse resultado de registrar un movimiento. Critical permite al
// caller mostrar la advertencia de stock crítico sin otra consulta.
type MovementResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ProductCode string    `json:"product_code"`
	Quantity    int       `json:"quantity"`
	NewQuantity int       `json:"new_quantity"`
	Critical    bool      `json:"critical"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// HistoryEntryResponse una línea del historial de auditoría.
type HistoryEntryResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	ProductCode   string    `json:"product_code"`
	Quantity      int       `json:"quantity"`
	Actor         string    `json:"actor"`
	Justification string    `json:"justification,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
	Audit         string    `json:"audit"`
}
