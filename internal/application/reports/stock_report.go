package reports

import (
	"context"
	"sort"

	"github.com/gametechlabs/stock-api/internal/domain/entity"
	"github.com/gametechlabs/stock-api/internal/domain/repository"
)

// StockReportGenerator puerto de generación del reporte de stock y auditoría.
// Lo implementa la infraestructura PDF (Maroto).
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, products []*entity.Product, movements []entity.Movement) ([]byte, error)
}

// StockReportUseCase arma el reporte: catálogo ordenado por código con marca de
// stock crítico, más el historial de auditoría completo.
type StockReportUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
	generator   StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	generator StockReportGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{productRepo: productRepo, movRepo: movRepo, generator: generator}
}

// Generate devuelve los bytes del PDF.
func (uc *StockReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	// Ordena la copia devuelta por List; el orden interno del registro no cambia.
	sort.Slice(products, func(i, j int) bool { return products[i].Code < products[j].Code })

	movements, err := uc.movRepo.History()
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateStockReport(ctx, products, movements)
}
