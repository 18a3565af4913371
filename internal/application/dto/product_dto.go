package dto

import "time"

// CreateProductRequest body para POST /api/products. El código lo asigna el sistema.
type CreateProductRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	MinThreshold    int    `json:"min_threshold"`
	InitialQuantity int    `json:"initial_quantity"`
	WarehouseID     string `json:"warehouse_id"`
}

// ProductResponse representación de un producto hacia afuera.
type ProductResponse struct {
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	MinThreshold int       `json:"min_threshold"`
	Quantity     int       `json:"quantity"`
	Critical     bool      `json:"critical"`
	Warehouse    string    `json:"warehouse,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
