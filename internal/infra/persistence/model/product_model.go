package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table.
// Code stays NULL until the details step so drafts do not collide on the unique index.
type ProductModel struct {
	ID            int64                       `gorm:"primaryKey;autoIncrement"`
	Code          *string                     `gorm:"type:varchar(64);uniqueIndex"`
	Title         string                      `gorm:"type:varchar(255);not null;default:''"`
	VariationType string                      `gorm:"type:varchar(20);not null;default:'NONE'"`
	Description   *string                     `gorm:"type:text"`
	About         datatypes.JSONSlice[string]
	Details       datatypes.JSON
	IsActive      bool                        `gorm:"not null;default:false;index"`
	MerchantID    int64                       `gorm:"not null;index"`
	CategoryID    *int64                      `gorm:"index"`
	Price         decimal.Decimal             `gorm:"type:numeric(12,2);not null;default:0"`
	StockQuantity int                         `gorm:"not null;default:0"`
	CreatedAt     time.Time                   `gorm:"index"`
	UpdatedAt     time.Time

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&RoleModel{},
		&CategoryModel{},
		&UserModel{},
		&UserRoleModel{},
		&ProductModel{},
	}
}
