package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gametechlabs/stock-api/internal/application/dto"
	"github.com/gametechlabs/stock-api/internal/application/inventory"
	"github.com/gametechlabs/stock-api/internal/application/reports"
	"github.com/gametechlabs/stock-api/internal/domain"
	"github.com/gametechlabs/stock-api/internal/domain/entity"
)

// InventoryHandler maneja las peticiones HTTP de movimientos e historial (protegido).
type InventoryHandler struct {
	uc      *inventory.RegisterMovementUseCase
	history *inventory.HistoryUseCase
	report  *reports.StockReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	uc *inventory.RegisterMovementUseCase,
	history *inventory.HistoryUseCase,
	report *reports.StockReportUseCase,
) *InventoryHandler {
	return &InventoryHandler{uc: uc, history: history, report: report}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  IN y OUT llevan quantity positiva; ADJUSTMENT lleva delta con signo
//               y justification obligatoria, y requiere rol admin.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "product_code, type, quantity, justification (ajustes)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	username := GetUsername(c)
	if username == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Los ajustes corrigen stock a mano; como en la pantalla original, solo admin.
	if in.Type == entity.MovementTypeADJUSTMENT && GetRole(c) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "los ajustes requieren rol admin"})
	}
	out, err := h.uc.RegisterMovement(c.Context(), inventory.MovementInput{
		ProductCode:   in.ProductCode,
		Type:          in.Type,
		Quantity:      in.Quantity,
		Justification: in.Justification,
		ActorUsername: username,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de movimientos en orden de aplicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.HistoryEntryResponse
// @Router       /api/inventory/history [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	out, err := h.history.History(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":     len(out),
		"movements": out,
	})
}

// Report godoc
// @Summary      Reporte PDF de stock y auditoría
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inventory/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.report.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.pdf"`)
	return c.Send(pdfBytes)
}
