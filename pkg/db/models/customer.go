package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/shopdesk/pkg/enums"
)

// Customer is the persisted customer profile.
type Customer struct {
	CustomerID    string                `gorm:"column:customer_id;primaryKey"`
	Position      int                   `gorm:"column:position;not null;index"`
	Name          string                `gorm:"column:name;not null"`
	Email         string                `gorm:"column:email;not null"`
	TotalOrders   int                   `gorm:"column:total_orders;not null;default:0"`
	LifetimeValue decimal.Decimal       `gorm:"column:lifetime_value;type:text;not null"`
	Segment       enums.CustomerSegment `gorm:"column:segment;not null"`
	CreatedAt     time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}

func (Customer) TableName() string { return "customers" }
