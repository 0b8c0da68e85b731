package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the persisted catalog row. Position preserves seed order.
type Product struct {
	SKU       string          `gorm:"column:sku;primaryKey"`
	Position  int             `gorm:"column:position;not null;index"`
	Name      string          `gorm:"column:name;not null"`
	Stock     int             `gorm:"column:stock;not null;default:0"`
	Price     decimal.Decimal `gorm:"column:price;type:text;not null"`
	Category  string          `gorm:"column:category;not null"`
	Warehouse string          `gorm:"column:warehouse;not null"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
