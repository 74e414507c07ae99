package model

import "time"

// ServiceModel mirrors the 'services' table.
type ServiceModel struct {
	ID           int64   `gorm:"primaryKey;autoIncrement"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:text"`
	Price        float64 `gorm:"type:numeric(10,2);not null"`
	Status       string  `gorm:"type:varchar(20);not null;default:active"`
	PricingModel string  `gorm:"type:varchar(50);not null"`
	PricingUnit  string  `gorm:"type:varchar(50);not null"`
	DeliveryTime int     `gorm:"not null"`
	Category     string  `gorm:"type:varchar(100)"`
	CreatedByID  int64   `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CreatedBy *UserModel `gorm:"foreignKey:CreatedByID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
