package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

// Order is an immutable record of a completed checkout. Status is the only
// field that changes after creation; Items, Customer, Delivery, Total and
// CreatedAt are frozen at submission time.
type Order struct {
	ID        int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Items     []types.LineItem  `gorm:"column:items;type:jsonb;serializer:json;not null"`
	Customer  types.Customer    `gorm:"column:customer;type:jsonb;serializer:json;not null"`
	Delivery  types.Delivery    `gorm:"column:delivery;type:jsonb;serializer:json;not null"`
	Total     decimal.Decimal   `gorm:"column:total;type:numeric(12,2);not null"`
	Status    enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
