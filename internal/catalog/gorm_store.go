package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/angelmondragon/shopdesk/pkg/db"
	"github.com/angelmondragon/shopdesk/pkg/db/models"
	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// GormStore keeps the tables in sqlite through gorm.
type GormStore struct {
	client *db.Client
}

var _ Store = (*GormStore)(nil)

// NewGormStore migrates the schema and loads seed when the tables are empty.
func NewGormStore(ctx context.Context, client *db.Client, seed Seed) (*GormStore, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	if err := client.Migrate(ctx, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Customer{}); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	s := &GormStore{client: client}
	if err := s.seedIfEmpty(ctx, seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GormStore) seedIfEmpty(ctx context.Context, seed Seed) error {
	return s.client.WithTx(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Product{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count products: %w", err)
		}
		if count > 0 {
			return nil
		}
		if err := insertSeed(tx, seed); err != nil {
			// another process seeded between the count and the insert
			if db.IsUniqueViolation(err) {
				return nil
			}
			return err
		}
		return nil
	})
}

func insertSeed(tx *gorm.DB, seed Seed) error {
	if len(seed.Products) > 0 {
		rows := make([]models.Product, 0, len(seed.Products))
		for i, p := range seed.Products {
			rows = append(rows, productToRow(p, i))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed products: %w", err)
		}
	}
	for i, o := range seed.Orders {
		row := orderToRow(o, i)
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("seed order %s: %w", row.OrderID, err)
		}
	}
	if len(seed.Customers) > 0 {
		rows := make([]models.Customer, 0, len(seed.Customers))
		for i, c := range seed.Customers {
			rows = append(rows, customerToRow(c, i))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}
	return nil
}

func (s *GormStore) GetProduct(ctx context.Context, sku string) (Product, error) {
	var row models.Product
	err := s.client.DB().WithContext(ctx).Where("sku = ?", NormalizeKey(sku)).Take(&row).Error
	if err != nil {
		return Product{}, translate(err, "load product")
	}
	return productFromRow(row), nil
}

func (s *GormStore) GetOrder(ctx context.Context, id string) (Order, error) {
	var row models.Order
	err := s.client.DB().WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Where("order_id = ?", NormalizeKey(id)).
		Take(&row).Error
	if err != nil {
		return Order{}, translate(err, "load order")
	}
	return orderFromRow(row)
}

func (s *GormStore) GetCustomer(ctx context.Context, id string) (Customer, error) {
	var row models.Customer
	err := s.client.DB().WithContext(ctx).Where("customer_id = ?", NormalizeKey(id)).Take(&row).Error
	if err != nil {
		return Customer{}, translate(err, "load customer")
	}
	return customerFromRow(row), nil
}

func (s *GormStore) Products(ctx context.Context) ([]Product, error) {
	var rows []models.Product
	if err := s.client.DB().WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, productFromRow(row))
	}
	return out, nil
}

func (s *GormStore) Orders(ctx context.Context) ([]Order, error) {
	var rows []models.Order
	err := s.client.DB().WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]Order, 0, len(rows))
	for _, row := range rows {
		o, err := orderFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *GormStore) Customers(ctx context.Context) ([]Customer, error) {
	var rows []models.Customer
	if err := s.client.DB().WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, customerFromRow(row))
	}
	return out, nil
}

// CompareAndSetOrderStatus issues a single conditional UPDATE. When no row
// changes, a follow-up existence check separates not-found from conflict.
func (s *GormStore) CompareAndSetOrderStatus(ctx context.Context, id string, expected, next enums.OrderStatus) error {
	key := NormalizeKey(id)
	conn := s.client.DB().WithContext(ctx)
	res := conn.Model(&models.Order{}).
		Where("order_id = ? AND status = ?", key, expected).
		Update("status", next)
	if res.Error != nil {
		return fmt.Errorf("update order status: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}
	var count int64
	if err := conn.Model(&models.Order{}).Where("order_id = ?", key).Count(&count).Error; err != nil {
		return fmt.Errorf("check order exists: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return ErrStatusConflict
}

func translate(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func productToRow(p Product, position int) models.Product {
	return models.Product{
		SKU:       NormalizeKey(p.SKU),
		Position:  position,
		Name:      p.Name,
		Stock:     p.Stock,
		Price:     p.Price,
		Category:  p.Category,
		Warehouse: p.Warehouse,
	}
}

func productFromRow(row models.Product) Product {
	return Product{
		SKU:       row.SKU,
		Name:      row.Name,
		Stock:     row.Stock,
		Price:     row.Price,
		Category:  row.Category,
		Warehouse: row.Warehouse,
	}
}

func orderToRow(o Order, position int) models.Order {
	id := NormalizeKey(o.ID)
	items := make([]models.OrderItem, 0, len(o.Items))
	for i, sku := range o.Items {
		items = append(items, models.OrderItem{OrderID: id, Position: i, SKU: sku})
	}
	return models.Order{
		OrderID:    id,
		Position:   position,
		CustomerID: o.CustomerID,
		Total:      o.Total,
		Status:     o.Status,
		OrderDate:  o.OrderDate.Format(DateLayout),
		Items:      items,
	}
}

func orderFromRow(row models.Order) (Order, error) {
	date, err := time.Parse(DateLayout, row.OrderDate)
	if err != nil {
		return Order{}, fmt.Errorf("order %s: parse date %q: %w", row.OrderID, row.OrderDate, err)
	}
	items := make([]string, 0, len(row.Items))
	for _, item := range row.Items {
		items = append(items, item.SKU)
	}
	return Order{
		ID:         row.OrderID,
		CustomerID: row.CustomerID,
		Items:      items,
		Total:      row.Total,
		Status:     row.Status,
		OrderDate:  date,
	}, nil
}

func customerToRow(c Customer, position int) models.Customer {
	return models.Customer{
		CustomerID:    NormalizeKey(c.ID),
		Position:      position,
		Name:          c.Name,
		Email:         c.Email,
		TotalOrders:   c.TotalOrders,
		LifetimeValue: c.LifetimeValue,
		Segment:       c.Segment,
	}
}

func customerFromRow(row models.Customer) Customer {
	return Customer{
		ID:            row.CustomerID,
		Name:          row.Name,
		Email:         row.Email,
		TotalOrders:   row.TotalOrders,
		LifetimeValue: row.LifetimeValue,
		Segment:       row.Segment,
	}
}
