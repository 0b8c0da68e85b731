package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// Order is the persisted order header. Items live in order_items.
type Order struct {
	OrderID    string            `gorm:"column:order_id;primaryKey"`
	Position   int               `gorm:"column:position;not null;index"`
	CustomerID string            `gorm:"column:customer_id;not null;index"`
	Total      decimal.Decimal   `gorm:"column:total;type:text;not null"`
	Status     enums.OrderStatus `gorm:"column:status;not null"`
	OrderDate  string            `gorm:"column:order_date;not null"`
	Items      []OrderItem       `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one SKU reference within an order. SKUs are not foreign keys:
// orders may reference products that are not in the catalog.
type OrderItem struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID  string `gorm:"column:order_id;not null;index"`
	Position int    `gorm:"column:position;not null"`
	SKU      string `gorm:"column:sku;not null"`
}

func (OrderItem) TableName() string { return "order_items" }
