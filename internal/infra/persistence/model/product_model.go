package model

import "time"

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:numeric(10,2);not null"`
	Category    string  `gorm:"type:varchar(100);not null"`
	Stock       int     `gorm:"not null;default:0"`
	Status      string  `gorm:"type:varchar(20);not null;default:active"`
	CreatedByID int64   `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedBy *UserModel `gorm:"foreignKey:CreatedByID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
