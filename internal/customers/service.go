package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	pkgerrors "github.com/angelmondragon/shopdesk/pkg/errors"
)

type catalogReader interface {
	GetCustomer(ctx context.Context, id string) (catalog.Customer, error)
	Products(ctx context.Context) ([]catalog.Product, error)
}

// Service exposes customer segmentation and product recommendations.
type Service interface {
	Profile(ctx context.Context, customerID string) (*CustomerAnalytics, error)
	Recommend(ctx context.Context, customerID, category string) (*RecommendationList, error)
}

type service struct {
	catalog catalogReader
}

// NewService builds the customer service.
func NewService(reader catalogReader) (Service, error) {
	if reader == nil {
		return nil, fmt.Errorf("catalog reader required")
	}
	return &service{catalog: reader}, nil
}

func (s *service) loadCustomer(ctx context.Context, customerID string) (catalog.Customer, error) {
	if strings.TrimSpace(customerID) == "" {
		return catalog.Customer{}, pkgerrors.New(pkgerrors.CodeValidation, "customer_id is required")
	}
	c, err := s.catalog.GetCustomer(ctx, customerID)
	if err != nil {
		return catalog.Customer{}, catalog.LookupError(err, fmt.Sprintf("customer '%s' not found", customerID), "load customer")
	}
	return c, nil
}

func (s *service) Profile(ctx context.Context, customerID string) (*CustomerAnalytics, error) {
	c, err := s.loadCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return &CustomerAnalytics{
		CustomerID:      c.ID,
		Name:            c.Name,
		Email:           c.Email,
		TotalOrders:     c.TotalOrders,
		LifetimeValue:   c.LifetimeValue,
		CustomerSegment: c.Segment,
		EngagementLevel: EngagementFor(c.LifetimeValue),
		Recommendation:  RecommendationFor(c.Segment),
	}, nil
}

// Recommend filters the catalog by category, takes the first
// MaxRecommendations candidates in table order, then drops out-of-stock ones.
func (s *service) Recommend(ctx context.Context, customerID, category string) (*RecommendationList, error) {
	c, err := s.loadCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	category = strings.TrimSpace(category)
	candidates := products
	if category != "" {
		var filtered []catalog.Product
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 {
			return nil, pkgerrors.Newf(pkgerrors.CodeEmptyResult, "no products found in category '%s'", category).
				WithDetails(map[string]any{"category": category})
		}
		candidates = filtered
	}
	if len(candidates) > MaxRecommendations {
		candidates = candidates[:MaxRecommendations]
	}

	recs := make([]Recommendation, 0, len(candidates))
	for _, p := range candidates {
		if p.Stock <= 0 {
			continue
		}
		recs = append(recs, Recommendation{
			ProductName:    p.Name,
			SKU:            p.SKU,
			Price:          p.Price,
			RelevanceScore: RelevanceFor(c.Segment, p.Price),
			Reason:         reasonFor(c.Segment),
		})
	}
	if len(recs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyResult, "no products currently available for recommendation")
	}

	return &RecommendationList{
		Customer:             c.Name,
		CustomerID:           c.ID,
		Segment:              c.Segment,
		Category:             category,
		Recommendations:      recs,
		TotalRecommendations: len(recs),
	}, nil
}
