package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

type productReader interface {
	GetProduct(ctx context.Context, sku string) (catalog.Product, error)
}

// Service answers stock questions against the catalog.
type Service interface {
	LookupStock(ctx context.Context, sku string) (*StockReport, error)
}

type service struct {
	products productReader
}

// NewService builds the inventory service.
func NewService(products productReader) (Service, error) {
	if products == nil {
		return nil, fmt.Errorf("product reader required")
	}
	return &service{products: products}, nil
}

func (s *service) LookupStock(ctx context.Context, sku string) (*StockReport, error) {
	if strings.TrimSpace(sku) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sku is required")
	}
	product, err := s.products.GetProduct(ctx, sku)
	if err != nil {
		return nil, catalog.LookupError(err, fmt.Sprintf("product with sku '%s' not found", sku), "load product")
	}
	return NewStockReport(product), nil
}

// NewStockReport derives the report for a single catalog product.
func NewStockReport(p catalog.Product) *StockReport {
	status := ClassifyStock(p.Stock)
	return &StockReport{
		ProductName:       p.Name,
		SKU:               p.SKU,
		StockQuantity:     p.Stock,
		Price:             p.Price,
		Category:          p.Category,
		WarehouseLocation: p.Warehouse,
		Status:            status,
		StatusLabel:       status.Label(),
	}
}
