package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/sweetlayers/sweetlayers-backend/pkg/enums"
	"github.com/sweetlayers/sweetlayers-backend/pkg/types"
)

// Cake is a catalog listing a shopper can customize and order.
type Cake struct {
	ID          int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string             `gorm:"column:name;not null"`
	Category    enums.CakeCategory `gorm:"column:category;not null"`
	Description string             `gorm:"column:description"`
	BasePrice   decimal.Decimal    `gorm:"column:base_price;type:numeric(12,2);not null"`
	Images      pq.StringArray     `gorm:"column:images;type:text[];not null;default:ARRAY[]::text[]"`
	Flavors     pq.StringArray     `gorm:"column:flavors;type:text[];not null;default:ARRAY[]::text[]"`
	Allergens   pq.StringArray     `gorm:"column:allergens;type:text[];not null;default:ARRAY[]::text[]"`
	Sizes       types.SizeOptions  `gorm:"column:sizes;type:jsonb;serializer:json"`
	IsActive    bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
