package dto

import "time"

// CreateWarehouseRequest body para POST /api/warehouses.
type CreateWarehouseRequest struct {
	Address  string `json:"address"`
	Capacity int    `json:"capacity"`
}

// WarehouseResponse representación de un depósito hacia afuera.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}
